package exercises

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_TypeMismatchRendersEmptyState(t *testing.T) {
	content := json.RawMessage(`{"exercise_type":"fill-in-the-blanks","sentence":"...","blanks":[]}`)

	r := Resolve("matching", FillInTheBlanks, content)

	assert.True(t, r.Empty)
	assert.Equal(t, Matching, r.Type)
	assert.Nil(t, r.Content)
	assert.NotNil(t, r.Template)
}

func TestResolve_MatchingTypePassesContentThrough(t *testing.T) {
	content := json.RawMessage(`{"exercise_type":"matching","pairs":[{"left":"a","right":"1"}]}`)

	r := Resolve("Matching", Matching, content)

	assert.False(t, r.Empty)
	assert.Equal(t, Matching, r.Type)
	assert.Equal(t, content, r.Content)
}

func TestResolve_UnknownTagFallsBackSilently(t *testing.T) {
	r := Resolve("word search", WordSorting, json.RawMessage(`{}`))

	assert.True(t, r.Empty)
	assert.Equal(t, ExerciseType("word-search"), r.Type)
}

func TestResolve_NoContentRendersTemplate(t *testing.T) {
	r := Resolve("word-sorting", WordSorting, nil)

	assert.True(t, r.Empty)
	require.NotNil(t, r.Template)
	tmpl, ok := r.Template.(*WordSortingContent)
	require.True(t, ok)
	assert.Equal(t, WordSorting, tmpl.ExerciseType)
}

func TestAttempt_CompletesExactlyOnce(t *testing.T) {
	content := mustJSON(t, MatchingContent{
		ExerciseType: Matching,
		Pairs:        []MatchPair{{Left: "a", Right: "1"}, {Left: "b", Right: "2"}},
	})
	answer := mustJSON(t, MatchingAnswer{Pairs: map[string]string{"a": "1", "b": "9"}})

	attempt, err := NewAttempt(Matching, content)
	require.NoError(t, err)
	assert.False(t, attempt.Completed())

	calls := 0
	var gotScore, gotTotal int
	onComplete := func(score, total int) {
		calls++
		gotScore, gotTotal = score, total
	}

	result, err := attempt.Complete(answer, onComplete)
	require.NoError(t, err)
	assert.Equal(t, Result{Score: 1, Total: 2}, result)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, gotScore)
	assert.Equal(t, 2, gotTotal)
	assert.True(t, attempt.Completed())

	// Second submission for the same attempt must not fire the callback
	// again.
	_, err = attempt.Complete(answer, onComplete)
	assert.ErrorIs(t, err, ErrAttemptCompleted)
	assert.Equal(t, 1, calls)
}

func TestNewAttempt_UnknownType(t *testing.T) {
	_, err := NewAttempt("crossword", json.RawMessage(`{}`))
	assert.ErrorIs(t, err, ErrUnknownType)
}
