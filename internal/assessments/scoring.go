package assessments

import (
	"fmt"

	"github.com/yourusername/quiz-portal/internal/apperrors"
)

// Question は採点に必要な設問情報です。画面側が送るその他の項目は無視します。
type Question struct {
	CorrectAnswer string `json:"correctAnswer"`
}

// Result は採点結果です。
type Result struct {
	Answers        []AnswerDetail
	Score          int
	TotalQuestions int
	Percentage     int
}

// Grade は回答を正解と照合し、得点と正答率を計算します。
// 回答数と設問数が一致しない場合や設問が無い場合は ErrValidation を返します。
func Grade(questions []Question, answers []string) (*Result, error) {
	if len(questions) == 0 {
		return nil, apperrors.New(apperrors.ErrValidation, "questions must not be empty")
	}
	if len(answers) != len(questions) {
		return nil, apperrors.New(apperrors.ErrValidation,
			fmt.Sprintf("answers has %d entries but there are %d questions", len(answers), len(questions)))
	}

	result := &Result{
		Answers:        make([]AnswerDetail, len(questions)),
		TotalQuestions: len(questions),
	}
	for i, q := range questions {
		correct := answers[i] == q.CorrectAnswer
		if correct {
			result.Score++
		}
		result.Answers[i] = AnswerDetail{
			QuestionNumber: i + 1,
			UserAnswer:     answers[i],
			CorrectAnswer:  q.CorrectAnswer,
			IsCorrect:      correct,
		}
	}
	result.Percentage = percentage(result.Score, result.TotalQuestions)
	return result, nil
}

// percentage は score/total*100 を四捨五入（0.5 は切り上げ）した整数です。
func percentage(score, total int) int {
	return (200*score + total) / (2 * total)
}
