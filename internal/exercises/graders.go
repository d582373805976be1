package exercises

import "encoding/json"

type conjugationTablesGrader struct{}

func (conjugationTablesGrader) Type() ExerciseType { return ConjugationTables }

func (g conjugationTablesGrader) Grade(content, answer json.RawMessage) (Result, error) {
	var c ConjugationTablesContent
	if err := decodeContent(content, g.Type(), &c); err != nil {
		return Result{}, err
	}
	if len(c.Conjugations) == 0 {
		return Result{}, emptyErr(g.Type())
	}
	var a ConjugationTablesAnswer
	if err := decodeAnswer(answer, g.Type(), &a); err != nil {
		return Result{}, err
	}

	score := 0
	for _, conj := range c.Conjugations {
		if normalizeText(a.Conjugations[conj.Pronoun]) == normalizeText(conj.Conjugation) && conj.Conjugation != "" {
			score++
		}
	}
	return Result{Score: score, Total: len(c.Conjugations)}, nil
}

type dialogueSortingGrader struct{}

func (dialogueSortingGrader) Type() ExerciseType { return DialogueSorting }

func (g dialogueSortingGrader) Grade(content, answer json.RawMessage) (Result, error) {
	var c DialogueSortingContent
	if err := decodeContent(content, g.Type(), &c); err != nil {
		return Result{}, err
	}
	if len(c.DialogueLines) == 0 {
		return Result{}, emptyErr(g.Type())
	}
	var a DialogueSortingAnswer
	if err := decodeAnswer(answer, g.Type(), &a); err != nil {
		return Result{}, err
	}

	score := 0
	for i, line := range c.DialogueLines {
		if i < len(a.Positions) && a.Positions[i] == line.CorrectPosition {
			score++
		}
	}
	return Result{Score: score, Total: len(c.DialogueLines)}, nil
}

type dragAndDropGrader struct{}

func (dragAndDropGrader) Type() ExerciseType { return DragAndDrop }

func (g dragAndDropGrader) Grade(content, answer json.RawMessage) (Result, error) {
	var c DragAndDropContent
	if err := decodeContent(content, g.Type(), &c); err != nil {
		return Result{}, err
	}
	if len(c.Items) == 0 {
		return Result{}, emptyErr(g.Type())
	}
	var a DragAndDropAnswer
	if err := decodeAnswer(answer, g.Type(), &a); err != nil {
		return Result{}, err
	}

	score := 0
	for _, item := range c.Items {
		if target, ok := a.Drops[item.ID]; ok && target == item.CorrectTarget {
			score++
		}
	}
	return Result{Score: score, Total: len(c.Items)}, nil
}

type fillInTheBlanksGrader struct{}

func (fillInTheBlanksGrader) Type() ExerciseType { return FillInTheBlanks }

func (g fillInTheBlanksGrader) Grade(content, answer json.RawMessage) (Result, error) {
	var c FillInTheBlanksContent
	if err := decodeContent(content, g.Type(), &c); err != nil {
		return Result{}, err
	}
	if len(c.Blanks) == 0 {
		return Result{}, emptyErr(g.Type())
	}
	var a FillInTheBlanksAnswer
	if err := decodeAnswer(answer, g.Type(), &a); err != nil {
		return Result{}, err
	}

	score := 0
	for i, blank := range c.Blanks {
		if i < len(a.Answers) && normalizeText(a.Answers[i]) == normalizeText(blank.Word) && blank.Word != "" {
			score++
		}
	}
	return Result{Score: score, Total: len(c.Blanks)}, nil
}

type guessTheIdiomGrader struct{}

func (guessTheIdiomGrader) Type() ExerciseType { return GuessTheIdiom }

func (g guessTheIdiomGrader) Grade(content, answer json.RawMessage) (Result, error) {
	var c GuessTheIdiomContent
	if err := decodeContent(content, g.Type(), &c); err != nil {
		return Result{}, err
	}
	if len(c.Idioms) == 0 {
		return Result{}, emptyErr(g.Type())
	}
	var a GuessTheIdiomAnswer
	if err := decodeAnswer(answer, g.Type(), &a); err != nil {
		return Result{}, err
	}

	score := 0
	for _, idiom := range c.Idioms {
		idx, ok := a.Selections[idiom.ID]
		if ok && idx >= 0 && idx < len(idiom.Options) && idiom.Options[idx].IsCorrect {
			score++
		}
	}
	return Result{Score: score, Total: len(c.Idioms)}, nil
}

type matchingGrader struct{}

func (matchingGrader) Type() ExerciseType { return Matching }

func (g matchingGrader) Grade(content, answer json.RawMessage) (Result, error) {
	var c MatchingContent
	if err := decodeContent(content, g.Type(), &c); err != nil {
		return Result{}, err
	}
	if len(c.Pairs) == 0 {
		return Result{}, emptyErr(g.Type())
	}
	var a MatchingAnswer
	if err := decodeAnswer(answer, g.Type(), &a); err != nil {
		return Result{}, err
	}

	score := 0
	for _, pair := range c.Pairs {
		if a.Pairs[pair.Left] == pair.Right {
			score++
		}
	}
	return Result{Score: score, Total: len(c.Pairs)}, nil
}

type multipleChoiceGrader struct{}

func (multipleChoiceGrader) Type() ExerciseType { return MultipleChoice }

func (g multipleChoiceGrader) Grade(content, answer json.RawMessage) (Result, error) {
	var c MultipleChoiceContent
	if err := decodeContent(content, g.Type(), &c); err != nil {
		return Result{}, err
	}
	if len(c.Questions) == 0 {
		return Result{}, emptyErr(g.Type())
	}
	var a MultipleChoiceAnswer
	if err := decodeAnswer(answer, g.Type(), &a); err != nil {
		return Result{}, err
	}

	score := 0
	for i, q := range c.Questions {
		if i < len(a.Selected) && a.Selected[i] == q.CorrectAnswer && a.Selected[i] >= 0 {
			score++
		}
	}
	return Result{Score: score, Total: len(c.Questions)}, nil
}

type questionFormationGrader struct{}

func (questionFormationGrader) Type() ExerciseType { return QuestionFormation }

func (g questionFormationGrader) Grade(content, answer json.RawMessage) (Result, error) {
	var c QuestionFormationContent
	if err := decodeContent(content, g.Type(), &c); err != nil {
		return Result{}, err
	}
	if len(c.Statements) == 0 {
		return Result{}, emptyErr(g.Type())
	}
	var a QuestionFormationAnswer
	if err := decodeAnswer(answer, g.Type(), &a); err != nil {
		return Result{}, err
	}

	score := 0
	for i, st := range c.Statements {
		if i < len(a.Questions) && normalizeText(a.Questions[i]) == normalizeText(st.ExpectedQuestion) && st.ExpectedQuestion != "" {
			score++
		}
	}
	return Result{Score: score, Total: len(c.Statements)}, nil
}

type rolePlayingGrader struct{}

func (rolePlayingGrader) Type() ExerciseType { return RolePlaying }

func (g rolePlayingGrader) Grade(content, answer json.RawMessage) (Result, error) {
	var c RolePlayingContent
	if err := decodeContent(content, g.Type(), &c); err != nil {
		return Result{}, err
	}
	total := 0
	for _, role := range c.Roles {
		total += len(role.Prompts)
	}
	if total == 0 {
		return Result{}, emptyErr(g.Type())
	}
	var a RolePlayingAnswer
	if err := decodeAnswer(answer, g.Type(), &a); err != nil {
		return Result{}, err
	}

	score := 0
	for _, role := range c.Roles {
		for _, prompt := range role.Prompts {
			got := normalizeText(a.Responses[prompt.ID])
			if got == "" {
				continue
			}
			if got == normalizeText(prompt.ExpectedResponse) {
				score++
				continue
			}
			for _, alt := range prompt.Alternatives {
				if got == normalizeText(alt) {
					score++
					break
				}
			}
		}
	}
	return Result{Score: score, Total: total}, nil
}

type sentenceCorrectionGrader struct{}

func (sentenceCorrectionGrader) Type() ExerciseType { return SentenceCorrection }

func (g sentenceCorrectionGrader) Grade(content, answer json.RawMessage) (Result, error) {
	var c SentenceCorrectionContent
	if err := decodeContent(content, g.Type(), &c); err != nil {
		return Result{}, err
	}
	if len(c.Sentences) == 0 {
		return Result{}, emptyErr(g.Type())
	}
	var a SentenceCorrectionAnswer
	if err := decodeAnswer(answer, g.Type(), &a); err != nil {
		return Result{}, err
	}

	score := 0
	for _, s := range c.Sentences {
		if normalizeText(a.Corrections[s.ID]) == normalizeText(s.Correction) && s.Correction != "" {
			score++
		}
	}
	return Result{Score: score, Total: len(c.Sentences)}, nil
}

type sentenceReorderingGrader struct{}

func (sentenceReorderingGrader) Type() ExerciseType { return SentenceReordering }

func (g sentenceReorderingGrader) Grade(content, answer json.RawMessage) (Result, error) {
	var c SentenceReorderingContent
	if err := decodeContent(content, g.Type(), &c); err != nil {
		return Result{}, err
	}
	total := 0
	for _, s := range c.Sentences {
		total += len(s.Segments)
	}
	if total == 0 {
		return Result{}, emptyErr(g.Type())
	}
	var a SentenceReorderingAnswer
	if err := decodeAnswer(answer, g.Type(), &a); err != nil {
		return Result{}, err
	}

	score := 0
	for _, s := range c.Sentences {
		placed := make(map[string]int, len(s.Segments))
		for idx, segID := range a.Orders[s.ID] {
			placed[segID] = idx
		}
		for _, seg := range s.Segments {
			if idx, ok := placed[seg.ID]; ok && idx == seg.Position {
				score++
			}
		}
	}
	return Result{Score: score, Total: total}, nil
}

type sentenceSplittingGrader struct{}

func (sentenceSplittingGrader) Type() ExerciseType { return SentenceSplitting }

func (g sentenceSplittingGrader) Grade(content, answer json.RawMessage) (Result, error) {
	var c SentenceSplittingContent
	if err := decodeContent(content, g.Type(), &c); err != nil {
		return Result{}, err
	}
	if len(c.Sentences) == 0 {
		return Result{}, emptyErr(g.Type())
	}
	var a SentenceSplittingAnswer
	if err := decodeAnswer(answer, g.Type(), &a); err != nil {
		return Result{}, err
	}

	score := 0
	for _, s := range c.Sentences {
		if splitsMatch(a.Splits[s.ID], s.ExpectedSplits) {
			score++
		}
	}
	return Result{Score: score, Total: len(c.Sentences)}, nil
}

func splitsMatch(got, want []string) bool {
	if len(want) == 0 || len(got) != len(want) {
		return false
	}
	for i := range want {
		if normalizeText(got[i]) != normalizeText(want[i]) {
			return false
		}
	}
	return true
}

type sentenceTransformationGrader struct{}

func (sentenceTransformationGrader) Type() ExerciseType { return SentenceTransformation }

func (g sentenceTransformationGrader) Grade(content, answer json.RawMessage) (Result, error) {
	var c SentenceTransformationContent
	if err := decodeContent(content, g.Type(), &c); err != nil {
		return Result{}, err
	}
	if len(c.Sentences) == 0 {
		return Result{}, emptyErr(g.Type())
	}
	var a SentenceTransformationAnswer
	if err := decodeAnswer(answer, g.Type(), &a); err != nil {
		return Result{}, err
	}

	score := 0
	for i, s := range c.Sentences {
		if i < len(a.Transformations) && normalizeText(a.Transformations[i]) == normalizeText(s.Transformation) && s.Transformation != "" {
			score++
		}
	}
	return Result{Score: score, Total: len(c.Sentences)}, nil
}

type spotTheMistakeGrader struct{}

func (spotTheMistakeGrader) Type() ExerciseType { return SpotTheMistake }

func (g spotTheMistakeGrader) Grade(content, answer json.RawMessage) (Result, error) {
	var c SpotTheMistakeContent
	if err := decodeContent(content, g.Type(), &c); err != nil {
		return Result{}, err
	}
	if len(c.FocusWords) == 0 {
		return Result{}, emptyErr(g.Type())
	}
	var a SpotTheMistakeAnswer
	if err := decodeAnswer(answer, g.Type(), &a); err != nil {
		return Result{}, err
	}

	marked := make(map[int]bool, len(a.Marked))
	for _, pos := range a.Marked {
		marked[pos] = true
	}

	score := 0
	for _, fw := range c.FocusWords {
		if marked[fw.Position] == fw.IsMistake {
			score++
		}
	}
	return Result{Score: score, Total: len(c.FocusWords)}, nil
}

type wordBuildingGrader struct{}

func (wordBuildingGrader) Type() ExerciseType { return WordBuilding }

func (g wordBuildingGrader) Grade(content, answer json.RawMessage) (Result, error) {
	var c WordBuildingContent
	if err := decodeContent(content, g.Type(), &c); err != nil {
		return Result{}, err
	}
	if len(c.Words) == 0 {
		return Result{}, emptyErr(g.Type())
	}
	var a WordBuildingAnswer
	if err := decodeAnswer(answer, g.Type(), &a); err != nil {
		return Result{}, err
	}

	score := 0
	for _, w := range c.Words {
		if normalizeText(a.Built[w.ID]) == normalizeText(w.Target) && w.Target != "" {
			score++
		}
	}
	return Result{Score: score, Total: len(c.Words)}, nil
}

type wordSortingGrader struct{}

func (wordSortingGrader) Type() ExerciseType { return WordSorting }

func (g wordSortingGrader) Grade(content, answer json.RawMessage) (Result, error) {
	var c WordSortingContent
	if err := decodeContent(content, g.Type(), &c); err != nil {
		return Result{}, err
	}
	if len(c.Words) == 0 {
		return Result{}, emptyErr(g.Type())
	}
	var a WordSortingAnswer
	if err := decodeAnswer(answer, g.Type(), &a); err != nil {
		return Result{}, err
	}

	score := 0
	for _, w := range c.Words {
		if cat, ok := a.Placements[w.ID]; ok && cat == w.Category {
			score++
		}
	}
	return Result{Score: score, Total: len(c.Words)}, nil
}
