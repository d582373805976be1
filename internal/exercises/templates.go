package exercises

import "fmt"

// templates holds the canonical blank shape for every exercise type. The
// dashboard renders these as empty-state placeholders when no content is
// available, and the content validator uses them as the reference shape
// for fetched rows. Values are built fresh on every lookup so callers can
// never mutate the canonical copy.
var templates = map[ExerciseType]func() any{
	ConjugationTables: func() any {
		return &ConjugationTablesContent{
			ExerciseType: ConjugationTables,
			Pronouns:     []string{},
			Conjugations: []Conjugation{{}},
		}
	},
	DialogueSorting: func() any {
		return &DialogueSortingContent{
			ExerciseType:  DialogueSorting,
			DialogueLines: []DialogueLine{{Speaker: "Assistant"}},
		}
	},
	DragAndDrop: func() any {
		return &DragAndDropContent{
			ExerciseType: DragAndDrop,
			Items:        []DragDropItem{{}},
			Targets:      []DropTarget{{}},
		}
	},
	FillInTheBlanks: func() any {
		return &FillInTheBlanksContent{
			ExerciseType: FillInTheBlanks,
			Blanks:       []Blank{{}},
		}
	},
	GuessTheIdiom: func() any {
		return &GuessTheIdiomContent{
			ExerciseType: GuessTheIdiom,
			Idioms:       []Idiom{{Options: []IdiomOption{{}}}},
		}
	},
	Matching: func() any {
		return &MatchingContent{
			ExerciseType: Matching,
			Pairs:        []MatchPair{{}},
		}
	},
	MultipleChoice: func() any {
		return &MultipleChoiceContent{
			ExerciseType: MultipleChoice,
			Questions:    []ChoiceQuestion{{Options: []ChoiceOption{{}}}},
		}
	},
	QuestionFormation: func() any {
		return &QuestionFormationContent{
			ExerciseType: QuestionFormation,
			Statements:   []Statement{{}},
		}
	},
	RolePlaying: func() any {
		return &RolePlayingContent{
			ExerciseType: RolePlaying,
			Roles:        []Role{{Prompts: []RolePrompt{{Alternatives: []string{}}}}},
		}
	},
	SentenceCorrection: func() any {
		return &SentenceCorrectionContent{
			ExerciseType: SentenceCorrection,
			Sentences:    []CorrectionSentence{{}},
		}
	},
	SentenceReordering: func() any {
		return &SentenceReorderingContent{
			ExerciseType: SentenceReordering,
			Sentences:    []ReorderingSentence{{Segments: []SentenceSegment{{}}}},
		}
	},
	SentenceSplitting: func() any {
		return &SentenceSplittingContent{
			ExerciseType: SentenceSplitting,
			Sentences:    []SplittingSentence{{ExpectedSplits: []string{}}},
		}
	},
	SentenceTransformation: func() any {
		return &SentenceTransformationContent{
			ExerciseType: SentenceTransformation,
			Sentences:    []TransformationSentence{{}},
		}
	},
	SpotTheMistake: func() any {
		return &SpotTheMistakeContent{
			ExerciseType: SpotTheMistake,
			FocusWords:   []FocusWord{{}},
		}
	},
	WordBuilding: func() any {
		return &WordBuildingContent{
			ExerciseType: WordBuilding,
			Words:        []BuildingWord{{}},
		}
	},
	WordSorting: func() any {
		return &WordSortingContent{
			ExerciseType: WordSorting,
			Categories:   []WordCategory{{}},
			Words:        []SortableWord{{}},
		}
	},
}

// TemplateFor returns the blank canonical shape for the given type.
func TemplateFor(t ExerciseType) (any, error) {
	build, ok := templates[t]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, t)
	}
	return build(), nil
}
