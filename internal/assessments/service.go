package assessments

import (
	"context"

	"github.com/yourusername/quiz-portal/internal/apperrors"
)

// Submission は利用者が送信した回答一式です。
type Submission struct {
	Subject   string
	Questions []Question
	Answers   []string
}

// Service は採点と記録をまとめます。
type Service struct {
	log Log
}

// NewService は Service を作成します。
func NewService(log Log) *Service {
	return &Service{log: log}
}

// Submit は回答を採点してから記録します。
func (s *Service) Submit(ctx context.Context, ownerID string, sub Submission) (*Assessment, error) {
	result, err := Grade(sub.Questions, sub.Answers)
	if err != nil {
		return nil, err
	}

	record := &Assessment{
		OwnerID:        ownerID,
		Subject:        sub.Subject,
		Answers:        result.Answers,
		Score:          result.Score,
		TotalQuestions: result.TotalQuestions,
		Percentage:     result.Percentage,
	}
	if _, err := s.log.Append(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// History は利用者の受験履歴を新しい順に返します。
func (s *Service) History(ctx context.Context, ownerID string) ([]Summary, error) {
	return s.log.ListByOwner(ctx, ownerID)
}

// Get は利用者本人の受験記録を返します。他人の記録は存在しないものとして扱います。
func (s *Service) Get(ctx context.Context, id, ownerID string) (*Assessment, error) {
	record, err := s.log.GetByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, apperrors.New(apperrors.ErrNotFound, "Assessment not found")
	}
	return record, nil
}
