package validator

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testmanship/exercise-service/internal/exercises"
)

func TestValidateContent_Matching(t *testing.T) {
	v := NewContentValidator()

	valid := json.RawMessage(`{
		"exercise_type": "matching",
		"pairs": [
			{"left": "der Hund", "right": "the dog"},
			{"left": "die Katze", "right": "the cat"}
		]
	}`)
	assert.NoError(t, v.ValidateContent(exercises.Matching, valid))

	tooFew := json.RawMessage(`{"exercise_type": "matching", "pairs": [{"left": "a", "right": "b"}]}`)
	assert.Error(t, v.ValidateContent(exercises.Matching, tooFew))

	duplicateLeft := json.RawMessage(`{
		"exercise_type": "matching",
		"pairs": [
			{"left": "der Hund", "right": "the dog"},
			{"left": "der Hund", "right": "the hound"}
		]
	}`)
	assert.Error(t, v.ValidateContent(exercises.Matching, duplicateLeft))
}

func TestValidateContent_MultipleChoice(t *testing.T) {
	v := NewContentValidator()

	valid := json.RawMessage(`{
		"exercise_type": "multiple-choice",
		"questions": [{
			"text": "Wie sagt man 'dog'?",
			"options": [
				{"german": "der Hund", "english": "the dog"},
				{"german": "die Katze", "english": "the cat"}
			],
			"correctAnswer": 0
		}]
	}`)
	assert.NoError(t, v.ValidateContent(exercises.MultipleChoice, valid))

	outOfRange := json.RawMessage(`{
		"exercise_type": "multiple-choice",
		"questions": [{
			"text": "Wie sagt man 'dog'?",
			"options": [
				{"german": "der Hund", "english": "the dog"},
				{"german": "die Katze", "english": "the cat"}
			],
			"correctAnswer": 5
		}]
	}`)
	err := v.ValidateContent(exercises.MultipleChoice, outOfRange)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
}

func TestValidateContent_DragAndDrop(t *testing.T) {
	v := NewContentValidator()

	danglingTarget := json.RawMessage(`{
		"exercise_type": "drag-and-drop",
		"items": [{"id": "i1", "content": "laufen", "correctTarget": "missing"}],
		"targets": [{"id": "t1", "label": "Verben"}],
		"instruction": "Sort the words"
	}`)
	err := v.ValidateContent(exercises.DragAndDrop, danglingTarget)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown target")
}

func TestValidateContent_SpotTheMistake(t *testing.T) {
	v := NewContentValidator()

	noMistakes := json.RawMessage(`{
		"exercise_type": "spot-the-mistake",
		"paragraph": "Ich gehe nach Hause.",
		"focus_words": [{"word": "gehe", "position": 1, "isMistake": false, "correctWord": ""}]
	}`)
	err := v.ValidateContent(exercises.SpotTheMistake, noMistakes)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 1 mistake")
}

func TestValidateContent_DialogueSorting_DuplicatePositions(t *testing.T) {
	v := NewContentValidator()

	dup := json.RawMessage(`{
		"exercise_type": "dialogue-sorting",
		"dialogueLines": [
			{"speaker": "A", "text": "Hallo!", "correctPosition": 0},
			{"speaker": "B", "text": "Guten Tag!", "correctPosition": 0}
		]
	}`)
	assert.Error(t, v.ValidateContent(exercises.DialogueSorting, dup))
}

func TestValidateContent_EmptyAndUnknown(t *testing.T) {
	v := NewContentValidator()

	assert.Error(t, v.ValidateContent(exercises.Matching, nil))
	assert.Error(t, v.ValidateContent(exercises.ExerciseType("essay"), json.RawMessage(`{}`)))
}

func TestValidateBatch(t *testing.T) {
	v := NewContentValidator()

	contents := []json.RawMessage{
		json.RawMessage(`{"exercise_type": "fill-in-the-blanks", "sentence": "Ich ___ nach Hause.", "blanks": [{"word": "gehe", "position": 1}]}`),
		json.RawMessage(`{"exercise_type": "fill-in-the-blanks", "sentence": "Du ___ hier.", "blanks": []}`),
	}
	err := v.ValidateBatch(exercises.FillInTheBlanks, contents)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "content 2")

	assert.Error(t, v.ValidateBatch(exercises.FillInTheBlanks, nil))
	assert.NoError(t, v.ValidateBatch(exercises.FillInTheBlanks, contents[:1]))
}

func TestValidator_StructTags(t *testing.T) {
	v := New()

	type payload struct {
		ExerciseType string `json:"exercise_type" validate:"required,exercise_type"`
		Level        string `json:"difficulty_level" validate:"required,difficulty_level"`
	}

	assert.NoError(t, v.Validate(payload{ExerciseType: "word-sorting", Level: "B1"}))

	err := v.Validate(payload{ExerciseType: "essay", Level: "B1"})
	require.Error(t, err)
	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "exercise_type", verrs[0].Field)

	assert.Error(t, v.Validate(payload{ExerciseType: "matching", Level: "D1"}))
}
