package exercises

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypes_CompleteAndStable(t *testing.T) {
	types := Types()
	assert.Len(t, types, 16)

	// Every type appears exactly once, and two calls agree on order.
	seen := make(map[ExerciseType]int)
	for _, tag := range types {
		seen[tag]++
	}
	for tag, count := range seen {
		assert.Equalf(t, 1, count, "type %s listed %d times", tag, count)
	}
	assert.Equal(t, types, Types())
}

func TestTemplateFor_AllTypes(t *testing.T) {
	for _, tag := range Types() {
		t.Run(string(tag), func(t *testing.T) {
			tmpl, err := TemplateFor(tag)
			require.NoError(t, err)
			require.NotNil(t, tmpl)
		})
	}
}

func TestTemplateFor_UnknownType(t *testing.T) {
	tmpl, err := TemplateFor("crossword")
	assert.Nil(t, tmpl)
	assert.ErrorIs(t, err, ErrUnknownType)
}

func TestTemplateFor_FreshCopyPerCall(t *testing.T) {
	first, err := TemplateFor(Matching)
	require.NoError(t, err)
	second, err := TemplateFor(Matching)
	require.NoError(t, err)

	firstContent := first.(*MatchingContent)
	firstContent.Pairs[0].Left = "mutated"

	secondContent := second.(*MatchingContent)
	assert.Equal(t, "", secondContent.Pairs[0].Left)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		raw  string
		want ExerciseType
	}{
		{"fill-in-the-blanks", FillInTheBlanks},
		{"Fill In The Blanks", FillInTheBlanks},
		{"  Word   Sorting ", WordSorting},
		{"MATCHING", Matching},
		{"", ExerciseType("")},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.raw))
	}
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid(SentenceReordering))
	assert.False(t, IsValid("verb-tables"))
}

func TestGraderFor_CoversEveryType(t *testing.T) {
	for _, tag := range Types() {
		g, err := GraderFor(tag)
		require.NoErrorf(t, err, "no grader for %s", tag)
		assert.Equal(t, tag, g.Type())
	}
}
