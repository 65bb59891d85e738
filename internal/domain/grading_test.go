package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoQuestionQuiz() *Quiz {
	return &Quiz{
		ID:           "quiz1",
		InstructorID: "instructor1",
		Title:        "Geography and Math",
		Questions: []Question{
			{Question: "Capital of France?", Type: QuestionTypeEnumeration, CorrectAnswer: "Paris"},
			{Question: "2+2?", Type: QuestionTypeEnumeration, CorrectAnswer: "4"},
		},
	}
}

func TestGradeQuiz(t *testing.T) {
	tests := []struct {
		name          string
		quiz          *Quiz
		submitted     []SubmittedAnswer
		expectedScore float64
		expectedFlags []bool
		expectedCode  ErrorCode
	}{
		{
			name: "half correct scores 50",
			quiz: twoQuestionQuiz(),
			submitted: []SubmittedAnswer{
				{QuestionIndex: 0, StudentAnswer: "paris"},
				{QuestionIndex: 1, StudentAnswer: "5"},
			},
			expectedScore: 50.0,
			expectedFlags: []bool{true, false},
		},
		{
			name: "all correct scores 100",
			quiz: twoQuestionQuiz(),
			submitted: []SubmittedAnswer{
				{QuestionIndex: 0, StudentAnswer: "Paris"},
				{QuestionIndex: 1, StudentAnswer: "4"},
			},
			expectedScore: 100.0,
			expectedFlags: []bool{true, true},
		},
		{
			name: "case insensitive match",
			quiz: &Quiz{
				ID:        "quiz2",
				Questions: []Question{{Question: "Capital of France?", CorrectAnswer: "paris"}},
			},
			submitted:     []SubmittedAnswer{{QuestionIndex: 0, StudentAnswer: "PARIS"}},
			expectedScore: 100.0,
			expectedFlags: []bool{true},
		},
		{
			name: "no trimming applied",
			quiz: &Quiz{
				ID:        "quiz3",
				Questions: []Question{{Question: "Capital of France?", CorrectAnswer: "Paris"}},
			},
			submitted:     []SubmittedAnswer{{QuestionIndex: 0, StudentAnswer: " Paris "}},
			expectedScore: 0.0,
			expectedFlags: []bool{false},
		},
		{
			name:         "zero questions fails fast",
			quiz:         &Quiz{ID: "quiz4"},
			submitted:    []SubmittedAnswer{},
			expectedCode: ErrInvalidQuizState,
		},
		{
			name:         "nil quiz fails fast",
			quiz:         nil,
			submitted:    []SubmittedAnswer{},
			expectedCode: ErrInvalidQuizState,
		},
		{
			name:         "out of range index rejected",
			quiz:         twoQuestionQuiz(),
			submitted:    []SubmittedAnswer{{QuestionIndex: 2, StudentAnswer: "anything"}},
			expectedCode: ErrInvalidAnswerIndex,
		},
		{
			name:         "negative index rejected",
			quiz:         twoQuestionQuiz(),
			submitted:    []SubmittedAnswer{{QuestionIndex: -1, StudentAnswer: "anything"}},
			expectedCode: ErrInvalidAnswerIndex,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			graded, score, err := GradeQuiz(tt.quiz, tt.submitted)

			if tt.expectedCode != "" {
				require.Error(t, err)
				domainErr, ok := err.(*DomainError)
				require.True(t, ok, "expected a DomainError, got %T", err)
				assert.Equal(t, tt.expectedCode, domainErr.Code)
				assert.Nil(t, graded)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedScore, score)
			require.Len(t, graded, len(tt.expectedFlags))
			for i, expected := range tt.expectedFlags {
				assert.Equal(t, expected, graded[i].IsCorrect, "answer %d correctness", i)
				assert.Equal(t, tt.submitted[i].QuestionIndex, graded[i].QuestionIndex)
				assert.Equal(t, tt.submitted[i].StudentAnswer, graded[i].StudentAnswer)
			}
		})
	}
}

// The score denominator is the quiz's full question count, not the answered
// count. Submitting fewer answers than questions exist caps the score.
func TestGradeQuizScoreScaleUsesFullQuestionCount(t *testing.T) {
	quiz := &Quiz{
		ID: "quiz5",
		Questions: []Question{
			{Question: "q1", CorrectAnswer: "a"},
			{Question: "q2", CorrectAnswer: "b"},
			{Question: "q3", CorrectAnswer: "c"},
			{Question: "q4", CorrectAnswer: "d"},
		},
	}

	// Two answers, both correct, out of four questions.
	graded, score, err := GradeQuiz(quiz, []SubmittedAnswer{
		{QuestionIndex: 0, StudentAnswer: "a"},
		{QuestionIndex: 1, StudentAnswer: "b"},
	})

	require.NoError(t, err)
	assert.Equal(t, 50.0, score)
	assert.Len(t, graded, 2)
	assert.LessOrEqual(t, score, 100.0)
}

func TestGradeQuizDoesNotMutateQuiz(t *testing.T) {
	quiz := twoQuestionQuiz()
	original := quiz.Questions[0]

	_, _, err := GradeQuiz(quiz, []SubmittedAnswer{{QuestionIndex: 0, StudentAnswer: "paris"}})

	require.NoError(t, err)
	assert.Equal(t, original, quiz.Questions[0])
	assert.Len(t, quiz.Questions, 2)
}
