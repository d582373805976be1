package exercises

import (
	"errors"
	"strings"
)

// ExerciseType identifies which interactive exercise format a content
// record uses. The set is closed: adding a type requires a content shape,
// a template and a grader.
type ExerciseType string

const (
	ConjugationTables      ExerciseType = "conjugation-tables"
	DialogueSorting        ExerciseType = "dialogue-sorting"
	DragAndDrop            ExerciseType = "drag-and-drop"
	FillInTheBlanks        ExerciseType = "fill-in-the-blanks"
	GuessTheIdiom          ExerciseType = "guess-the-idiom"
	Matching               ExerciseType = "matching"
	MultipleChoice         ExerciseType = "multiple-choice"
	QuestionFormation      ExerciseType = "question-formation"
	RolePlaying            ExerciseType = "role-playing"
	SentenceCorrection     ExerciseType = "sentence-correction"
	SentenceReordering     ExerciseType = "sentence-reordering"
	SentenceSplitting      ExerciseType = "sentence-splitting"
	SentenceTransformation ExerciseType = "sentence-transformation"
	SpotTheMistake         ExerciseType = "spot-the-mistake"
	WordBuilding           ExerciseType = "word-building"
	WordSorting            ExerciseType = "word-sorting"
)

var (
	ErrUnknownType      = errors.New("unknown exercise type")
	ErrEmptyContent     = errors.New("exercise content has nothing to score")
	ErrInvalidContent   = errors.New("invalid exercise content for type")
	ErrAttemptCompleted = errors.New("attempt already completed")
)

// typeOrder is the canonical listing order. It must stay in sync with the
// template and grader registries; Types and the registry tests enforce that.
var typeOrder = []ExerciseType{
	ConjugationTables,
	DialogueSorting,
	DragAndDrop,
	FillInTheBlanks,
	GuessTheIdiom,
	Matching,
	MultipleChoice,
	QuestionFormation,
	RolePlaying,
	SentenceCorrection,
	SentenceReordering,
	SentenceSplitting,
	SentenceTransformation,
	SpotTheMistake,
	WordBuilding,
	WordSorting,
}

// Types returns all exercise types in fixed, stable order.
func Types() []ExerciseType {
	out := make([]ExerciseType, len(typeOrder))
	copy(out, typeOrder)
	return out
}

// Normalize converts a user-facing tag ("Fill In The Blanks") to its
// canonical form ("fill-in-the-blanks").
func Normalize(raw string) ExerciseType {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.Join(strings.Fields(s), "-")
	return ExerciseType(s)
}

// IsValid reports whether t is one of the registered exercise types.
func IsValid(t ExerciseType) bool {
	_, ok := templates[t]
	return ok
}
