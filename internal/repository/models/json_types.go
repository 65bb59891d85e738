package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// QuizChoice is one selectable option on a multiple-choice question as stored
// in the QUESTIONS JSON column.
type QuizChoice struct {
	Choice string `json:"choice,omitempty"`
}

// QuizQuestion is the stored form of a single quiz question.
type QuizQuestion struct {
	Question      string       `json:"question"`
	Type          string       `json:"type"`
	CorrectAnswer string       `json:"correct_answer"`
	Choices       []QuizChoice `json:"choices,omitempty"`
}

// QuestionList stores an ordered question sequence as a JSON document in a
// CLOB column. Order is significant: it defines the index space submitted
// answers reference.
type QuestionList []QuizQuestion

// Value implements the driver.Valuer interface
func (q QuestionList) Value() (driver.Value, error) {
	if q == nil {
		return "[]", nil
	}
	jsonData, err := json.Marshal(q)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (q *QuestionList) Scan(value interface{}) error {
	return scanJSONList(value, q, "QuestionList")
}

// SubmissionAnswer is the stored form of one graded answer.
type SubmissionAnswer struct {
	QuestionIndex int    `json:"question_index"`
	StudentAnswer string `json:"student_answer"`
	IsCorrect     bool   `json:"is_correct"`
}

// AnswerList stores graded answers as a JSON document in a CLOB column.
type AnswerList []SubmissionAnswer

// Value implements the driver.Valuer interface
func (a AnswerList) Value() (driver.Value, error) {
	if a == nil {
		return "[]", nil
	}
	jsonData, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (a *AnswerList) Scan(value interface{}) error {
	return scanJSONList(value, a, "AnswerList")
}

func scanJSONList(value interface{}, dest interface{}, typeName string) error {
	if value == nil {
		return resetJSONList(dest)
	}

	var bytesToParse []byte
	switch v := value.(type) {
	case []byte:
		bytesToParse = v
	case string:
		bytesToParse = []byte(v)
	default:
		return errors.New(typeName + " Scan: unsupported type " + fmt.Sprintf("%T", value))
	}

	if len(bytesToParse) == 0 || string(bytesToParse) == "null" {
		return resetJSONList(dest)
	}

	return json.Unmarshal(bytesToParse, dest)
}

func resetJSONList(dest interface{}) error {
	switch d := dest.(type) {
	case *QuestionList:
		*d = QuestionList{}
	case *AnswerList:
		*d = AnswerList{}
	default:
		return fmt.Errorf("unsupported JSON list destination %T", dest)
	}
	return nil
}
