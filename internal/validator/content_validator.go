package validator

import (
	"encoding/json"
	"fmt"

	"github.com/testmanship/exercise-service/internal/exercises"
)

// ContentValidator handles exercise-type-specific content validation
type ContentValidator struct{}

// NewContentValidator creates a new content validator
func NewContentValidator() *ContentValidator {
	return &ContentValidator{}
}

// ValidateContent validates an exercise content payload against the shape
// its type tag promises. Content that passes is safe to hand to a player.
func (v *ContentValidator) ValidateContent(exerciseType exercises.ExerciseType, content json.RawMessage) error {
	if len(content) == 0 {
		return fmt.Errorf("content cannot be empty")
	}

	switch exerciseType {
	case exercises.ConjugationTables:
		return v.validateConjugationTables(content)
	case exercises.DialogueSorting:
		return v.validateDialogueSorting(content)
	case exercises.DragAndDrop:
		return v.validateDragAndDrop(content)
	case exercises.FillInTheBlanks:
		return v.validateFillInTheBlanks(content)
	case exercises.GuessTheIdiom:
		return v.validateGuessTheIdiom(content)
	case exercises.Matching:
		return v.validateMatching(content)
	case exercises.MultipleChoice:
		return v.validateMultipleChoice(content)
	case exercises.QuestionFormation:
		return v.validateQuestionFormation(content)
	case exercises.RolePlaying:
		return v.validateRolePlaying(content)
	case exercises.SentenceCorrection:
		return v.validateSentenceCorrection(content)
	case exercises.SentenceReordering:
		return v.validateSentenceReordering(content)
	case exercises.SentenceSplitting:
		return v.validateSentenceSplitting(content)
	case exercises.SentenceTransformation:
		return v.validateSentenceTransformation(content)
	case exercises.SpotTheMistake:
		return v.validateSpotTheMistake(content)
	case exercises.WordBuilding:
		return v.validateWordBuilding(content)
	case exercises.WordSorting:
		return v.validateWordSorting(content)
	default:
		return fmt.Errorf("unsupported exercise type: %s", exerciseType)
	}
}

// ValidateBatch validates multiple content payloads of the same type
func (v *ContentValidator) ValidateBatch(exerciseType exercises.ExerciseType, contents []json.RawMessage) error {
	if len(contents) == 0 {
		return fmt.Errorf("content batch cannot be empty")
	}

	for i, content := range contents {
		if err := v.ValidateContent(exerciseType, content); err != nil {
			return fmt.Errorf("validation failed for content %d: %w", i+1, err)
		}
	}

	return nil
}

// Private validation methods for each exercise type

func (v *ContentValidator) validateConjugationTables(raw json.RawMessage) error {
	var content exercises.ConjugationTablesContent
	if err := json.Unmarshal(raw, &content); err != nil {
		return fmt.Errorf("invalid conjugation tables content: %w", err)
	}

	if content.Verb == "" {
		return fmt.Errorf("verb is required")
	}
	if len(content.Conjugations) == 0 {
		return fmt.Errorf("must have at least 1 conjugation")
	}
	for _, c := range content.Conjugations {
		if c.Pronoun == "" || c.Conjugation == "" {
			return fmt.Errorf("conjugation rows need both pronoun and form")
		}
	}
	return nil
}

func (v *ContentValidator) validateDialogueSorting(raw json.RawMessage) error {
	var content exercises.DialogueSortingContent
	if err := json.Unmarshal(raw, &content); err != nil {
		return fmt.Errorf("invalid dialogue sorting content: %w", err)
	}

	if len(content.DialogueLines) < 2 {
		return fmt.Errorf("must have at least 2 dialogue lines")
	}

	positions := make(map[int]bool)
	for _, line := range content.DialogueLines {
		if line.Text == "" {
			return fmt.Errorf("dialogue line text cannot be empty")
		}
		if line.CorrectPosition < 0 || line.CorrectPosition >= len(content.DialogueLines) {
			return fmt.Errorf("dialogue position %d is out of range", line.CorrectPosition)
		}
		if positions[line.CorrectPosition] {
			return fmt.Errorf("duplicate dialogue position %d", line.CorrectPosition)
		}
		positions[line.CorrectPosition] = true
	}
	return nil
}

func (v *ContentValidator) validateDragAndDrop(raw json.RawMessage) error {
	var content exercises.DragAndDropContent
	if err := json.Unmarshal(raw, &content); err != nil {
		return fmt.Errorf("invalid drag and drop content: %w", err)
	}

	if len(content.Items) == 0 {
		return fmt.Errorf("must have at least 1 item")
	}
	if len(content.Targets) == 0 {
		return fmt.Errorf("must have at least 1 target")
	}

	targetIDs := make(map[string]bool)
	for _, target := range content.Targets {
		if target.ID == "" {
			return fmt.Errorf("target ID cannot be empty")
		}
		targetIDs[target.ID] = true
	}
	for _, item := range content.Items {
		if item.ID == "" || item.Content == "" {
			return fmt.Errorf("items need both ID and content")
		}
		if !targetIDs[item.CorrectTarget] {
			return fmt.Errorf("item '%s' points at unknown target '%s'", item.ID, item.CorrectTarget)
		}
	}
	return nil
}

func (v *ContentValidator) validateFillInTheBlanks(raw json.RawMessage) error {
	var content exercises.FillInTheBlanksContent
	if err := json.Unmarshal(raw, &content); err != nil {
		return fmt.Errorf("invalid fill in the blanks content: %w", err)
	}

	if content.Sentence == "" {
		return fmt.Errorf("sentence is required")
	}
	if len(content.Blanks) == 0 {
		return fmt.Errorf("must have at least 1 blank")
	}
	for _, blank := range content.Blanks {
		if blank.Word == "" {
			return fmt.Errorf("blank word cannot be empty")
		}
	}
	return nil
}

func (v *ContentValidator) validateGuessTheIdiom(raw json.RawMessage) error {
	var content exercises.GuessTheIdiomContent
	if err := json.Unmarshal(raw, &content); err != nil {
		return fmt.Errorf("invalid guess the idiom content: %w", err)
	}

	if len(content.Idioms) == 0 {
		return fmt.Errorf("must have at least 1 idiom")
	}
	for _, idiom := range content.Idioms {
		if idiom.Phrase == "" {
			return fmt.Errorf("idiom phrase cannot be empty")
		}
		if len(idiom.Options) < 2 {
			return fmt.Errorf("idiom '%s' must have at least 2 options", idiom.ID)
		}
		correct := 0
		for _, opt := range idiom.Options {
			if opt.IsCorrect {
				correct++
			}
		}
		if correct != 1 {
			return fmt.Errorf("idiom '%s' must have exactly 1 correct option", idiom.ID)
		}
	}
	return nil
}

func (v *ContentValidator) validateMatching(raw json.RawMessage) error {
	var content exercises.MatchingContent
	if err := json.Unmarshal(raw, &content); err != nil {
		return fmt.Errorf("invalid matching content: %w", err)
	}

	if len(content.Pairs) < 2 {
		return fmt.Errorf("must have at least 2 pairs")
	}
	seen := make(map[string]bool)
	for _, pair := range content.Pairs {
		if pair.Left == "" || pair.Right == "" {
			return fmt.Errorf("matching pairs need both sides")
		}
		if seen[pair.Left] {
			return fmt.Errorf("duplicate left-hand value '%s'", pair.Left)
		}
		seen[pair.Left] = true
	}
	return nil
}

func (v *ContentValidator) validateMultipleChoice(raw json.RawMessage) error {
	var content exercises.MultipleChoiceContent
	if err := json.Unmarshal(raw, &content); err != nil {
		return fmt.Errorf("invalid multiple choice content: %w", err)
	}

	if len(content.Questions) == 0 {
		return fmt.Errorf("must have at least 1 question")
	}
	for i, q := range content.Questions {
		if q.Text == "" {
			return fmt.Errorf("question %d text cannot be empty", i+1)
		}
		if len(q.Options) < 2 {
			return fmt.Errorf("question %d must have at least 2 options", i+1)
		}
		if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
			return fmt.Errorf("question %d correct answer index %d is out of range", i+1, q.CorrectAnswer)
		}
	}
	return nil
}

func (v *ContentValidator) validateQuestionFormation(raw json.RawMessage) error {
	var content exercises.QuestionFormationContent
	if err := json.Unmarshal(raw, &content); err != nil {
		return fmt.Errorf("invalid question formation content: %w", err)
	}

	if len(content.Statements) == 0 {
		return fmt.Errorf("must have at least 1 statement")
	}
	for _, s := range content.Statements {
		if s.Text == "" || s.ExpectedQuestion == "" {
			return fmt.Errorf("statements need both text and expected question")
		}
	}
	return nil
}

func (v *ContentValidator) validateRolePlaying(raw json.RawMessage) error {
	var content exercises.RolePlayingContent
	if err := json.Unmarshal(raw, &content); err != nil {
		return fmt.Errorf("invalid role playing content: %w", err)
	}

	if content.Scenario == "" {
		return fmt.Errorf("scenario is required")
	}
	if len(content.Roles) == 0 {
		return fmt.Errorf("must have at least 1 role")
	}
	for _, role := range content.Roles {
		if len(role.Prompts) == 0 {
			return fmt.Errorf("role '%s' must have at least 1 prompt", role.ID)
		}
		for _, prompt := range role.Prompts {
			if prompt.Text == "" || prompt.ExpectedResponse == "" {
				return fmt.Errorf("prompts need both text and expected response")
			}
		}
	}
	return nil
}

func (v *ContentValidator) validateSentenceCorrection(raw json.RawMessage) error {
	var content exercises.SentenceCorrectionContent
	if err := json.Unmarshal(raw, &content); err != nil {
		return fmt.Errorf("invalid sentence correction content: %w", err)
	}

	if len(content.Sentences) == 0 {
		return fmt.Errorf("must have at least 1 sentence")
	}
	for _, s := range content.Sentences {
		if s.Text == "" || s.Correction == "" {
			return fmt.Errorf("sentences need both text and correction")
		}
	}
	return nil
}

func (v *ContentValidator) validateSentenceReordering(raw json.RawMessage) error {
	var content exercises.SentenceReorderingContent
	if err := json.Unmarshal(raw, &content); err != nil {
		return fmt.Errorf("invalid sentence reordering content: %w", err)
	}

	if len(content.Sentences) == 0 {
		return fmt.Errorf("must have at least 1 sentence")
	}
	for _, s := range content.Sentences {
		if len(s.Segments) < 2 {
			return fmt.Errorf("sentence '%s' must have at least 2 segments", s.ID)
		}
		positions := make(map[int]bool)
		for _, seg := range s.Segments {
			if seg.Position < 0 || seg.Position >= len(s.Segments) {
				return fmt.Errorf("segment position %d is out of range in sentence '%s'", seg.Position, s.ID)
			}
			if positions[seg.Position] {
				return fmt.Errorf("duplicate segment position %d in sentence '%s'", seg.Position, s.ID)
			}
			positions[seg.Position] = true
		}
	}
	return nil
}

func (v *ContentValidator) validateSentenceSplitting(raw json.RawMessage) error {
	var content exercises.SentenceSplittingContent
	if err := json.Unmarshal(raw, &content); err != nil {
		return fmt.Errorf("invalid sentence splitting content: %w", err)
	}

	if len(content.Sentences) == 0 {
		return fmt.Errorf("must have at least 1 sentence")
	}
	for _, s := range content.Sentences {
		if s.Text == "" {
			return fmt.Errorf("sentence text cannot be empty")
		}
		if len(s.ExpectedSplits) < 2 {
			return fmt.Errorf("sentence '%s' must split into at least 2 parts", s.ID)
		}
	}
	return nil
}

func (v *ContentValidator) validateSentenceTransformation(raw json.RawMessage) error {
	var content exercises.SentenceTransformationContent
	if err := json.Unmarshal(raw, &content); err != nil {
		return fmt.Errorf("invalid sentence transformation content: %w", err)
	}

	if len(content.Sentences) == 0 {
		return fmt.Errorf("must have at least 1 sentence")
	}
	for _, s := range content.Sentences {
		if s.Original == "" || s.Transformation == "" {
			return fmt.Errorf("sentences need both original and transformation")
		}
	}
	return nil
}

func (v *ContentValidator) validateSpotTheMistake(raw json.RawMessage) error {
	var content exercises.SpotTheMistakeContent
	if err := json.Unmarshal(raw, &content); err != nil {
		return fmt.Errorf("invalid spot the mistake content: %w", err)
	}

	if content.Paragraph == "" {
		return fmt.Errorf("paragraph is required")
	}
	if len(content.FocusWords) == 0 {
		return fmt.Errorf("must have at least 1 focus word")
	}
	mistakes := 0
	for _, fw := range content.FocusWords {
		if fw.Word == "" {
			return fmt.Errorf("focus word cannot be empty")
		}
		if fw.IsMistake {
			mistakes++
			if fw.CorrectWord == "" {
				return fmt.Errorf("mistake '%s' needs a correction", fw.Word)
			}
		}
	}
	if mistakes == 0 {
		return fmt.Errorf("must have at least 1 mistake to spot")
	}
	return nil
}

func (v *ContentValidator) validateWordBuilding(raw json.RawMessage) error {
	var content exercises.WordBuildingContent
	if err := json.Unmarshal(raw, &content); err != nil {
		return fmt.Errorf("invalid word building content: %w", err)
	}

	if len(content.Words) == 0 {
		return fmt.Errorf("must have at least 1 word")
	}
	for _, w := range content.Words {
		if w.Root == "" || w.Target == "" {
			return fmt.Errorf("words need both root and target")
		}
		if w.Prefix == "" && w.Suffix == "" {
			return fmt.Errorf("word '%s' needs a prefix or a suffix", w.ID)
		}
	}
	return nil
}

func (v *ContentValidator) validateWordSorting(raw json.RawMessage) error {
	var content exercises.WordSortingContent
	if err := json.Unmarshal(raw, &content); err != nil {
		return fmt.Errorf("invalid word sorting content: %w", err)
	}

	if len(content.Categories) < 2 {
		return fmt.Errorf("must have at least 2 categories")
	}
	if len(content.Words) == 0 {
		return fmt.Errorf("must have at least 1 word")
	}

	categoryIDs := make(map[string]bool)
	for _, cat := range content.Categories {
		if cat.ID == "" || cat.Name == "" {
			return fmt.Errorf("categories need both ID and name")
		}
		categoryIDs[cat.ID] = true
	}
	for _, word := range content.Words {
		if word.Text == "" {
			return fmt.Errorf("word text cannot be empty")
		}
		if !categoryIDs[word.Category] {
			return fmt.Errorf("word '%s' belongs to unknown category '%s'", word.ID, word.Category)
		}
	}
	return nil
}
