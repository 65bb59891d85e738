package domain

import "time"

// QuestionType enumerates the supported question formats.
type QuestionType string

const (
	QuestionTypeEnumeration    QuestionType = "enumeration"
	QuestionTypeMultipleChoice QuestionType = "multiple_choices"
)

// ChoiceLabels is the fixed alphabet for multiple-choice options.
var ChoiceLabels = []string{"a", "b", "c", "d"}

// Choice is a single selectable option on a multiple-choice question.
type Choice struct {
	Choice string `json:"choice,omitempty"`
}

// Question is one entry in a quiz's ordered question list. The position of a
// question in the list is the index space submitted answers refer to.
type Question struct {
	Question      string       `json:"question"`
	Type          QuestionType `json:"type"`
	CorrectAnswer string       `json:"correct_answer"`
	Choices       []Choice     `json:"choices,omitempty"`
}

// Quiz is an ordered set of graded questions authored by an instructor.
type Quiz struct {
	ID           string
	InstructorID string
	Title        string
	Description  string
	Questions    []Question
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
}

// Assessment mirrors Quiz structurally; assessments are authored question sets
// that are not wired into the submission workflow.
type Assessment struct {
	ID           string
	InstructorID string
	Title        string
	Description  string
	Questions    []Question
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
}
