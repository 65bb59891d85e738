package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionListValueAndScan(t *testing.T) {
	list := QuestionList{
		{Question: "2+2?", Type: "enumeration", CorrectAnswer: "4"},
		{Question: "Pick one", Type: "multiple_choices", CorrectAnswer: "a",
			Choices: []QuizChoice{{Choice: "a"}, {Choice: "b"}}},
	}

	v, err := list.Value()
	require.NoError(t, err)
	raw, ok := v.(string)
	require.True(t, ok)

	var scanned QuestionList
	require.NoError(t, scanned.Scan(raw))
	assert.Equal(t, list, scanned)

	// []byte source, as godror returns for CLOB reads
	scanned = nil
	require.NoError(t, scanned.Scan([]byte(raw)))
	assert.Equal(t, list, scanned)
}

func TestQuestionListValueNil(t *testing.T) {
	var list QuestionList
	v, err := list.Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)
}

func TestQuestionListScanNullAndNil(t *testing.T) {
	scanned := QuestionList{{Question: "stale"}}
	require.NoError(t, scanned.Scan(nil))
	assert.Empty(t, scanned)

	scanned = QuestionList{{Question: "stale"}}
	require.NoError(t, scanned.Scan("null"))
	assert.Empty(t, scanned)
}

func TestQuestionListScanUnsupportedType(t *testing.T) {
	var scanned QuestionList
	assert.Error(t, scanned.Scan(42))
}

func TestAnswerListRoundTrip(t *testing.T) {
	list := AnswerList{
		{QuestionIndex: 0, StudentAnswer: "paris", IsCorrect: true},
		{QuestionIndex: 1, StudentAnswer: "5", IsCorrect: false},
	}

	v, err := list.Value()
	require.NoError(t, err)

	var scanned AnswerList
	require.NoError(t, scanned.Scan(v))
	assert.Equal(t, list, scanned)
}
