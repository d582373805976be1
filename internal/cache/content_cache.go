package cache

import (
	"sync"

	"github.com/testmanship/exercise-service/internal/exercises"
	"github.com/testmanship/exercise-service/internal/models"
)

// ContentKey identifies one cached content list: all rows of one exercise
// type belonging to one exercise.
type ContentKey struct {
	ExerciseID   uint
	ExerciseType exercises.ExerciseType
}

// ContentCache holds fetched exercise content in memory so switching
// between type tabs does not refetch. Entries are replaced or cleared as
// a whole; there is no partial update, so readers never observe a
// half-written list.
type ContentCache struct {
	mu      sync.RWMutex
	entries map[ContentKey][]models.ExerciseContent
}

func NewContentCache() *ContentCache {
	return &ContentCache{
		entries: make(map[ContentKey][]models.ExerciseContent),
	}
}

// Put replaces the entry for key with items. The slice is copied, so the
// caller may keep mutating its own copy.
func (c *ContentCache) Put(key ContentKey, items []models.ExerciseContent) {
	copied := make([]models.ExerciseContent, len(items))
	copy(copied, items)

	c.mu.Lock()
	c.entries[key] = copied
	c.mu.Unlock()
}

// Get returns the cached list for key. The second return reports whether
// the entry exists; an existing entry may legitimately be empty.
func (c *ContentCache) Get(key ContentKey) ([]models.ExerciseContent, bool) {
	c.mu.RLock()
	items, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}

	copied := make([]models.ExerciseContent, len(items))
	copy(copied, items)
	return copied, true
}

// Invalidate drops the entry for key. The next Get reports a miss; it is
// the caller's job to refetch.
func (c *ContentCache) Invalidate(key ContentKey) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

// InvalidateExercise drops every type entry cached for one exercise.
func (c *ContentCache) InvalidateExercise(exerciseID uint) {
	c.mu.Lock()
	for key := range c.entries {
		if key.ExerciseID == exerciseID {
			delete(c.entries, key)
		}
	}
	c.mu.Unlock()
}

// Clear empties the cache.
func (c *ContentCache) Clear() {
	c.mu.Lock()
	c.entries = make(map[ContentKey][]models.ExerciseContent)
	c.mu.Unlock()
}

// Len reports how many entries are cached.
func (c *ContentCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
