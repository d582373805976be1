package exercises

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Result is the outcome of grading one attempt. Score never exceeds
// Total, and Total equals the cardinality of the scored unit (pairs,
// blanks, questions, ...) at grading time.
type Result struct {
	Score int `json:"score"`
	Total int `json:"total"`
}

// Grader scores a submitted answer against a content payload. Each
// exercise type owns one Grader so its invariants stay local instead of
// living in a shared switch.
type Grader interface {
	Type() ExerciseType
	Grade(content, answer json.RawMessage) (Result, error)
}

var graders = map[ExerciseType]Grader{
	ConjugationTables:      conjugationTablesGrader{},
	DialogueSorting:        dialogueSortingGrader{},
	DragAndDrop:            dragAndDropGrader{},
	FillInTheBlanks:        fillInTheBlanksGrader{},
	GuessTheIdiom:          guessTheIdiomGrader{},
	Matching:               matchingGrader{},
	MultipleChoice:         multipleChoiceGrader{},
	QuestionFormation:      questionFormationGrader{},
	RolePlaying:            rolePlayingGrader{},
	SentenceCorrection:     sentenceCorrectionGrader{},
	SentenceReordering:     sentenceReorderingGrader{},
	SentenceSplitting:      sentenceSplittingGrader{},
	SentenceTransformation: sentenceTransformationGrader{},
	SpotTheMistake:         spotTheMistakeGrader{},
	WordBuilding:           wordBuildingGrader{},
	WordSorting:            wordSortingGrader{},
}

// GraderFor returns the grader registered for the given type.
func GraderFor(t ExerciseType) (Grader, error) {
	g, ok := graders[t]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, t)
	}
	return g, nil
}

// Grade is a convenience wrapper that dispatches on the type tag.
func Grade(t ExerciseType, content, answer json.RawMessage) (Result, error) {
	g, err := GraderFor(t)
	if err != nil {
		return Result{}, err
	}
	return g.Grade(content, answer)
}

// normalizeText is the answer comparison rule used by all text-entry
// graders: trim, case-fold, collapse internal whitespace. Punctuation is
// significant.
func normalizeText(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(s))), " ")
}

func decodeContent(raw json.RawMessage, t ExerciseType, v any) error {
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidContent, t, err)
	}
	return nil
}

func decodeAnswer(raw json.RawMessage, t ExerciseType, v any) error {
	if len(raw) == 0 {
		raw = json.RawMessage("{}")
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("invalid %s answer: %w", t, err)
	}
	return nil
}

func emptyErr(t ExerciseType) error {
	return fmt.Errorf("%w: %s", ErrEmptyContent, t)
}
