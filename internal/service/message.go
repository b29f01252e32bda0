package service

import (
	"context"

	"github.com/bibliotheca/lending-service/internal/model"
)

func (s *Service) PostMessage(ctx context.Context, userName string, req model.MessageRequest) (model.Message, error) {
	return s.repo.CreateMessage(ctx, model.Message{
		UserName: userName,
		Title:    req.Title,
		Question: req.Question,
	})
}

func (s *Service) ListMessages(ctx context.Context, userName string) ([]model.Message, error) {
	return s.repo.ListMessages(ctx, userName)
}

// AnswerMessage records the admin's response and closes the message.
func (s *Service) AnswerMessage(ctx context.Context, adminName string, req model.AnswerMessageRequest) error {
	return s.repo.AnswerMessage(ctx, req.ID, adminName, req.Response)
}
