package cache

import (
	"math/rand"
	"sync"
	"time"

	"github.com/testmanship/exercise-service/internal/models"
)

// Picker draws a random content row, optionally scoped to a topic. The
// random source is injectable so selection is reproducible in tests.
type Picker struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewPicker() *Picker {
	return NewSeededPicker(time.Now().UnixNano())
}

func NewSeededPicker(seed int64) *Picker {
	return &Picker{rng: rand.New(rand.NewSource(seed))}
}

// Topics lists the distinct topics of items in first-seen order. Rows
// without a topic are ignored.
func (p *Picker) Topics(items []models.ExerciseContent) []string {
	seen := make(map[string]bool)
	var topics []string
	for _, item := range items {
		if item.Topic == "" || seen[item.Topic] {
			continue
		}
		seen[item.Topic] = true
		topics = append(topics, item.Topic)
	}
	return topics
}

// PickForTopic draws one row uniformly from the items matching topic. An
// empty topic means draw from all items. The second return is false when
// nothing matches.
func (p *Picker) PickForTopic(items []models.ExerciseContent, topic string) (models.ExerciseContent, bool) {
	var pool []models.ExerciseContent
	if topic == "" {
		pool = items
	} else {
		for _, item := range items {
			if item.Topic == topic {
				pool = append(pool, item)
			}
		}
	}

	if len(pool) == 0 {
		return models.ExerciseContent{}, false
	}

	p.mu.Lock()
	idx := p.rng.Intn(len(pool))
	p.mu.Unlock()
	return pool[idx], true
}
