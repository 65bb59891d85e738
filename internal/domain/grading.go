package domain

import "strings"

// GradeQuiz grades submitted answers against the quiz's answer key and returns
// the graded answers together with the aggregate score.
//
// Correctness is case-insensitive equality with the question's correct answer;
// no trimming or partial credit. The score denominator is always the quiz's
// full question count, not the number of answers submitted: submitting fewer
// answers than the quiz has questions caps the achievable score below 100.
// This is a deliberate policy, asserted by tests.
//
// GradeQuiz is pure: it never mutates the quiz and touches no storage.
func GradeQuiz(quiz *Quiz, submitted []SubmittedAnswer) ([]Answer, float64, error) {
	if quiz == nil || len(quiz.Questions) == 0 {
		var quizID string
		if quiz != nil {
			quizID = quiz.ID
		}
		return nil, 0, NewInvalidQuizStateError(quizID)
	}

	graded := make([]Answer, 0, len(submitted))
	correct := 0
	for _, sa := range submitted {
		if sa.QuestionIndex < 0 || sa.QuestionIndex >= len(quiz.Questions) {
			return nil, 0, NewInvalidAnswerIndexError(sa.QuestionIndex, len(quiz.Questions))
		}
		question := quiz.Questions[sa.QuestionIndex]
		isCorrect := strings.EqualFold(sa.StudentAnswer, question.CorrectAnswer)
		if isCorrect {
			correct++
		}
		graded = append(graded, Answer{
			QuestionIndex: sa.QuestionIndex,
			StudentAnswer: sa.StudentAnswer,
			IsCorrect:     isCorrect,
		})
	}

	score := float64(correct) / float64(len(quiz.Questions)) * 100
	return graded, score, nil
}
