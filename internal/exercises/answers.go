package exercises

// Answer shapes submitted by the dashboard, one per exercise type. Keys
// reference the IDs carried in the matching content shape; positional
// answers are aligned with the content's collection order.

type ConjugationTablesAnswer struct {
	// Conjugations maps pronoun -> entered conjugation.
	Conjugations map[string]string `json:"conjugations"`
	TimeSpent    int               `json:"time_spent,omitempty"`
}

type DialogueSortingAnswer struct {
	// Positions[i] is the position the user assigned to dialogue line i.
	Positions []int `json:"positions"`
	TimeSpent int   `json:"time_spent,omitempty"`
}

type DragAndDropAnswer struct {
	// Drops maps item ID -> target ID the item was dropped on.
	Drops     map[string]string `json:"drops"`
	TimeSpent int               `json:"time_spent,omitempty"`
}

type FillInTheBlanksAnswer struct {
	// Answers[i] is the text entered for blank i, in content order.
	Answers   []string `json:"answers"`
	TimeSpent int      `json:"time_spent,omitempty"`
}

type GuessTheIdiomAnswer struct {
	// Selections maps idiom ID -> chosen option index.
	Selections map[string]int `json:"selections"`
	TimeSpent  int            `json:"time_spent,omitempty"`
}

type MatchingAnswer struct {
	// Pairs maps each left item to the right item the user chose for it.
	Pairs     map[string]string `json:"pairs"`
	TimeSpent int               `json:"time_spent,omitempty"`
}

type MultipleChoiceAnswer struct {
	// Selected[i] is the chosen option index for question i; -1 means
	// unanswered.
	Selected  []int `json:"selected"`
	TimeSpent int   `json:"time_spent,omitempty"`
}

type QuestionFormationAnswer struct {
	// Questions[i] is the question formed for statement i.
	Questions []string `json:"questions"`
	TimeSpent int      `json:"time_spent,omitempty"`
}

type RolePlayingAnswer struct {
	// Responses maps prompt ID -> entered response.
	Responses map[string]string `json:"responses"`
	TimeSpent int               `json:"time_spent,omitempty"`
}

type SentenceCorrectionAnswer struct {
	// Corrections maps sentence ID -> corrected sentence.
	Corrections map[string]string `json:"corrections"`
	TimeSpent   int               `json:"time_spent,omitempty"`
}

type SentenceReorderingAnswer struct {
	// Orders maps sentence ID -> segment IDs in the order the user placed
	// them.
	Orders    map[string][]string `json:"orders"`
	TimeSpent int                 `json:"time_spent,omitempty"`
}

type SentenceSplittingAnswer struct {
	// Splits maps sentence ID -> the sentences the user split it into.
	Splits    map[string][]string `json:"splits"`
	TimeSpent int                 `json:"time_spent,omitempty"`
}

type SentenceTransformationAnswer struct {
	// Transformations[i] is the rewritten form of sentence i.
	Transformations []string `json:"transformations"`
	TimeSpent       int      `json:"time_spent,omitempty"`
}

type SpotTheMistakeAnswer struct {
	// Marked holds the positions the user flagged as mistakes.
	Marked    []int `json:"marked"`
	TimeSpent int   `json:"time_spent,omitempty"`
}

type WordBuildingAnswer struct {
	// Built maps word ID -> the word the user assembled.
	Built     map[string]string `json:"built"`
	TimeSpent int               `json:"time_spent,omitempty"`
}

type WordSortingAnswer struct {
	// Placements maps word ID -> category ID the user sorted it under.
	Placements map[string]string `json:"placements"`
	TimeSpent  int               `json:"time_spent,omitempty"`
}
