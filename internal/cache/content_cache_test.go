package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testmanship/exercise-service/internal/exercises"
	"github.com/testmanship/exercise-service/internal/models"
)

func contentRows(topic string, ids ...uint) []models.ExerciseContent {
	rows := make([]models.ExerciseContent, 0, len(ids))
	for _, id := range ids {
		rows = append(rows, models.ExerciseContent{
			ID:           id,
			ExerciseID:   1,
			ExerciseType: string(exercises.Matching),
			Topic:        topic,
		})
	}
	return rows
}

func TestContentCache_PutGet(t *testing.T) {
	c := NewContentCache()
	key := ContentKey{ExerciseID: 1, ExerciseType: exercises.Matching}

	_, ok := c.Get(key)
	assert.False(t, ok, "empty cache should miss")

	c.Put(key, contentRows("Dativ", 1, 2, 3))
	items, ok := c.Get(key)
	require.True(t, ok)
	assert.Len(t, items, 3)

	// Replacing is atomic: old rows are gone, not merged.
	c.Put(key, contentRows("Akkusativ", 9))
	items, ok = c.Get(key)
	require.True(t, ok)
	require.Len(t, items, 1)
	assert.Equal(t, uint(9), items[0].ID)
}

func TestContentCache_CopiesInAndOut(t *testing.T) {
	c := NewContentCache()
	key := ContentKey{ExerciseID: 1, ExerciseType: exercises.Matching}

	rows := contentRows("Dativ", 1)
	c.Put(key, rows)
	rows[0].Topic = "mutated"

	items, ok := c.Get(key)
	require.True(t, ok)
	assert.Equal(t, "Dativ", items[0].Topic, "caller mutations must not leak into the cache")

	items[0].Topic = "mutated again"
	again, _ := c.Get(key)
	assert.Equal(t, "Dativ", again[0].Topic)
}

func TestContentCache_EmptyEntryIsAHit(t *testing.T) {
	c := NewContentCache()
	key := ContentKey{ExerciseID: 2, ExerciseType: exercises.WordSorting}

	c.Put(key, nil)
	items, ok := c.Get(key)
	assert.True(t, ok, "a stored empty list is knowledge, not a miss")
	assert.Empty(t, items)
}

func TestContentCache_Invalidate(t *testing.T) {
	c := NewContentCache()
	key := ContentKey{ExerciseID: 1, ExerciseType: exercises.Matching}
	other := ContentKey{ExerciseID: 1, ExerciseType: exercises.FillInTheBlanks}

	c.Put(key, contentRows("Dativ", 1))
	c.Put(other, contentRows("Dativ", 2))

	c.Invalidate(key)
	_, ok := c.Get(key)
	assert.False(t, ok)
	_, ok = c.Get(other)
	assert.True(t, ok, "invalidation is per key, not per exercise")

	c.Put(key, contentRows("Dativ", 1))
	c.InvalidateExercise(1)
	assert.Equal(t, 0, c.Len())
}

func TestPicker_Topics(t *testing.T) {
	p := NewSeededPicker(1)

	items := append(contentRows("Dativ", 1, 2), contentRows("Akkusativ", 3)...)
	items = append(items, contentRows("", 4)...)

	assert.Equal(t, []string{"Dativ", "Akkusativ"}, p.Topics(items))
	assert.Empty(t, p.Topics(nil))
}

func TestPicker_PickForTopic(t *testing.T) {
	p := NewSeededPicker(42)

	items := append(contentRows("Dativ", 1, 2), contentRows("Akkusativ", 3)...)

	// Topic-scoped draws only return rows from that topic.
	for i := 0; i < 20; i++ {
		row, ok := p.PickForTopic(items, "Akkusativ")
		require.True(t, ok)
		assert.Equal(t, uint(3), row.ID)
	}

	// Empty topic draws from the whole pool.
	seen := make(map[uint]bool)
	for i := 0; i < 50; i++ {
		row, ok := p.PickForTopic(items, "")
		require.True(t, ok)
		seen[row.ID] = true
	}
	assert.Len(t, seen, 3, "every row should eventually be drawn")

	_, ok := p.PickForTopic(items, "Genitiv")
	assert.False(t, ok)
	_, ok = p.PickForTopic(nil, "")
	assert.False(t, ok)
}

func TestPicker_SeededDeterminism(t *testing.T) {
	items := contentRows("Dativ", 1, 2, 3, 4, 5)

	a := NewSeededPicker(7)
	b := NewSeededPicker(7)
	for i := 0; i < 10; i++ {
		rowA, _ := a.PickForTopic(items, "")
		rowB, _ := b.PickForTopic(items, "")
		assert.Equal(t, rowA.ID, rowB.ID)
	}
}
