package assessments

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/quiz-portal/internal/apperrors"
)

func TestGradeMixedAnswers(t *testing.T) {
	questions := []Question{{CorrectAnswer: "A"}, {CorrectAnswer: "B"}}

	result, err := Grade(questions, []string{"A", "C"})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Score)
	assert.Equal(t, 2, result.TotalQuestions)
	assert.Equal(t, 50, result.Percentage)
	assert.Equal(t, []AnswerDetail{
		{QuestionNumber: 1, UserAnswer: "A", CorrectAnswer: "A", IsCorrect: true},
		{QuestionNumber: 2, UserAnswer: "C", CorrectAnswer: "B", IsCorrect: false},
	}, result.Answers)
}

func TestGradeIsCaseSensitive(t *testing.T) {
	result, err := Grade([]Question{{CorrectAnswer: "A"}}, []string{"a"})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Score)
	assert.Equal(t, 0, result.Percentage)
}

func TestGradeLengthMismatch(t *testing.T) {
	_, err := Grade([]Question{{CorrectAnswer: "A"}, {CorrectAnswer: "B"}}, []string{"A"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestGradeEmptyQuestions(t *testing.T) {
	_, err := Grade(nil, nil)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestPercentageRoundsHalfUp(t *testing.T) {
	cases := []struct {
		score, total, want int
	}{
		{0, 3, 0},
		{1, 3, 33},
		{2, 3, 67},
		{1, 8, 13}, // 12.5
		{5, 8, 63}, // 62.5
		{3, 3, 100},
		{1, 200, 1}, // 0.5
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, percentage(tc.score, tc.total), "%d/%d", tc.score, tc.total)
	}
}
