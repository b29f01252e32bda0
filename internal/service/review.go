package service

import (
	"context"

	"github.com/bibliotheca/lending-service/internal/errs"
	"github.com/bibliotheca/lending-service/internal/model"
)

func (s *Service) PostReview(ctx context.Context, userName string, req model.ReviewRequest) error {
	exists, err := s.repo.HasReview(ctx, userName, req.BookID)
	if err != nil {
		return err
	}
	if exists {
		return errs.ErrDuplicateReview
	}
	return s.repo.CreateReview(ctx, model.Review{
		UserName:    userName,
		BookID:      req.BookID,
		Rating:      req.Rating,
		Description: req.Description,
		ReviewDate:  s.today(),
	})
}

func (s *Service) HasReviewed(ctx context.Context, userName string, bookID int) (bool, error) {
	return s.repo.HasReview(ctx, userName, bookID)
}

func (s *Service) ListReviews(ctx context.Context, bookID int) ([]model.Review, error) {
	return s.repo.ListReviews(ctx, bookID)
}
