package exercises

// Content shapes for the 16 exercise types. Each struct carries the
// exercise_type discriminant so fetched rows can be checked against the
// type the user selected before they are played.

type ConjugationTablesContent struct {
	ExerciseType ExerciseType  `json:"exercise_type"`
	Verb         string        `json:"verb"`
	Tense        string        `json:"tense"`
	Pronouns     []string      `json:"pronouns"`
	Conjugations []Conjugation `json:"conjugations"`
}

type Conjugation struct {
	Pronoun     string `json:"pronoun"`
	Conjugation string `json:"conjugation"`
}

type DialogueSortingContent struct {
	ExerciseType  ExerciseType   `json:"exercise_type"`
	Context       string         `json:"context,omitempty"`
	DialogueLines []DialogueLine `json:"dialogueLines"`
}

type DialogueLine struct {
	Speaker         string `json:"speaker"`
	Text            string `json:"text"`
	CorrectPosition int    `json:"correctPosition"`
}

type DragAndDropContent struct {
	ExerciseType ExerciseType   `json:"exercise_type"`
	Items        []DragDropItem `json:"items"`
	Targets      []DropTarget   `json:"targets"`
	Instruction  string         `json:"instruction"`
}

type DragDropItem struct {
	ID            string `json:"id"`
	Content       string `json:"content"`
	CorrectTarget string `json:"correctTarget"`
}

type DropTarget struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type FillInTheBlanksContent struct {
	ExerciseType ExerciseType `json:"exercise_type"`
	Sentence     string       `json:"sentence"`
	Blanks       []Blank      `json:"blanks"`
}

type Blank struct {
	Word     string `json:"word"`
	Position int    `json:"position"`
}

type GuessTheIdiomContent struct {
	ExerciseType ExerciseType `json:"exercise_type"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Idioms       []Idiom      `json:"idioms"`
}

type Idiom struct {
	ID          string        `json:"id"`
	Phrase      string        `json:"phrase"`
	Meaning     string        `json:"meaning"`
	Context     string        `json:"context"`
	Question    string        `json:"question"`
	Options     []IdiomOption `json:"options"`
	Explanation string        `json:"explanation"`
	Hint        string        `json:"hint,omitempty"`
}

type IdiomOption struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"isCorrect"`
}

type MatchingContent struct {
	ExerciseType ExerciseType `json:"exercise_type"`
	Pairs        []MatchPair  `json:"pairs"`
}

type MatchPair struct {
	Left  string `json:"left"`
	Right string `json:"right"`
}

type MultipleChoiceContent struct {
	ExerciseType ExerciseType     `json:"exercise_type"`
	Questions    []ChoiceQuestion `json:"questions"`
}

type ChoiceQuestion struct {
	Text          string         `json:"text"`
	Options       []ChoiceOption `json:"options"`
	CorrectAnswer int            `json:"correctAnswer"`
	Explanation   string         `json:"explanation,omitempty"`
}

// ChoiceOption keeps the bilingual option pair the dashboard shows
// (target-language text plus its translation).
type ChoiceOption struct {
	German  string `json:"german"`
	English string `json:"english"`
}

type QuestionFormationContent struct {
	ExerciseType ExerciseType `json:"exercise_type"`
	Statements   []Statement  `json:"statements"`
}

type Statement struct {
	Text             string `json:"text"`
	ExpectedQuestion string `json:"expectedQuestion"`
	Hint             string `json:"hint,omitempty"`
}

type RolePlayingContent struct {
	ExerciseType ExerciseType `json:"exercise_type"`
	Scenario     string       `json:"scenario"`
	Context      string       `json:"context"`
	Roles        []Role       `json:"roles"`
}

type Role struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Prompts     []RolePrompt `json:"prompts"`
}

type RolePrompt struct {
	ID               string   `json:"id"`
	Text             string   `json:"text"`
	ExpectedResponse string   `json:"expectedResponse"`
	Alternatives     []string `json:"alternatives,omitempty"`
	Hint             string   `json:"hint,omitempty"`
}

type SentenceCorrectionContent struct {
	ExerciseType ExerciseType         `json:"exercise_type"`
	Sentences    []CorrectionSentence `json:"sentences"`
}

type CorrectionSentence struct {
	ID          string `json:"id"`
	Text        string `json:"text"`
	Correction  string `json:"correction"`
	Hint        string `json:"hint,omitempty"`
	Explanation string `json:"explanation,omitempty"`
	Focus       string `json:"focus,omitempty"`
}

type SentenceReorderingContent struct {
	ExerciseType ExerciseType         `json:"exercise_type"`
	Sentences    []ReorderingSentence `json:"sentences"`
}

type ReorderingSentence struct {
	ID       string            `json:"id"`
	Segments []SentenceSegment `json:"segments"`
	Hint     string            `json:"hint,omitempty"`
}

type SentenceSegment struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Position int    `json:"position"`
}

type SentenceSplittingContent struct {
	ExerciseType ExerciseType        `json:"exercise_type"`
	Sentences    []SplittingSentence `json:"sentences"`
}

type SplittingSentence struct {
	ID             string   `json:"id"`
	Text           string   `json:"text"`
	ExpectedSplits []string `json:"expectedSplits"`
	Hint           string   `json:"hint,omitempty"`
}

type SentenceTransformationContent struct {
	ExerciseType ExerciseType             `json:"exercise_type"`
	Sentences    []TransformationSentence `json:"sentences"`
	Instruction  string                   `json:"instruction"`
}

type TransformationSentence struct {
	Original       string `json:"original"`
	Transformation string `json:"transformation"`
	Hint           string `json:"hint,omitempty"`
}

type SpotTheMistakeContent struct {
	ExerciseType ExerciseType `json:"exercise_type"`
	Paragraph    string       `json:"paragraph"`
	FocusWords   []FocusWord  `json:"focus_words"`
}

type FocusWord struct {
	Word        string `json:"word"`
	Position    int    `json:"position"`
	IsMistake   bool   `json:"isMistake"`
	CorrectWord string `json:"correctWord"`
}

type WordBuildingContent struct {
	ExerciseType ExerciseType   `json:"exercise_type"`
	Words        []BuildingWord `json:"words"`
}

type BuildingWord struct {
	ID          string `json:"id"`
	Root        string `json:"root"`
	Prefix      string `json:"prefix,omitempty"`
	Suffix      string `json:"suffix,omitempty"`
	Target      string `json:"target"`
	Type        string `json:"type"`
	Hint        string `json:"hint,omitempty"`
	Explanation string `json:"explanation,omitempty"`
}

type WordSortingContent struct {
	ExerciseType ExerciseType   `json:"exercise_type"`
	Categories   []WordCategory `json:"categories"`
	Words        []SortableWord `json:"words"`
}

type WordCategory struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type SortableWord struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Category string `json:"category"`
}
