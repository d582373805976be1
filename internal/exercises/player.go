package exercises

import (
	"encoding/json"
	"sync"
)

// Rendering is what the dashboard presents for a type selection. When
// Empty is true the caller shows the blank template placeholder instead
// of content; this is the silent fallback for unknown tags and for
// records whose declared type doesn't match the current selection (stale
// content from a type switch mid-fetch must never be shown).
type Rendering struct {
	Type     ExerciseType    `json:"exercise_type"`
	Empty    bool            `json:"empty"`
	Content  json.RawMessage `json:"content,omitempty"`
	Template any             `json:"template,omitempty"`
}

// Resolve applies the player dispatch rule: normalize the selected tag
// and hand out the content only when the record's declared type matches
// it. Everything else renders as empty-state, never as an error.
func Resolve(selected string, declared ExerciseType, content json.RawMessage) Rendering {
	tag := Normalize(selected)

	if !IsValid(tag) {
		return Rendering{Type: tag, Empty: true}
	}
	if len(content) == 0 || Normalize(string(declared)) != tag {
		tmpl, _ := TemplateFor(tag)
		return Rendering{Type: tag, Empty: true, Template: tmpl}
	}
	return Rendering{Type: tag, Content: content}
}

// Attempt grades one submission for one content record. Complete reports
// its result through the callback exactly once; the total is fixed by the
// content snapshot captured at construction and cannot change if the
// content is refreshed afterwards.
type Attempt struct {
	mu      sync.Mutex
	grader  Grader
	content json.RawMessage
	result  *Result
}

func NewAttempt(t ExerciseType, content json.RawMessage) (*Attempt, error) {
	grader, err := GraderFor(t)
	if err != nil {
		return nil, err
	}
	return &Attempt{grader: grader, content: content}, nil
}

// Complete scores the answer and invokes onComplete(score, total). A
// second call for the same attempt fails with ErrAttemptCompleted and
// does not re-invoke the callback.
func (a *Attempt) Complete(answer json.RawMessage, onComplete func(score, total int)) (Result, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.result != nil {
		return *a.result, ErrAttemptCompleted
	}

	result, err := a.grader.Grade(a.content, answer)
	if err != nil {
		return Result{}, err
	}

	a.result = &result
	if onComplete != nil {
		onComplete(result.Score, result.Total)
	}
	return result, nil
}

// Completed reports whether the attempt has already produced its result.
func (a *Attempt) Completed() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.result != nil
}
