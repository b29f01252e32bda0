package service

import (
	"context"

	"github.com/bibliotheca/lending-service/internal/errs"
	"github.com/bibliotheca/lending-service/internal/model"
	"github.com/bibliotheca/lending-service/internal/repository"
	"go.uber.org/zap"
)

func (s *Service) GetBook(ctx context.Context, bookID int) (model.Book, error) {
	return s.repo.GetBook(ctx, bookID)
}

func (s *Service) ListBooks(ctx context.Context, filter model.ListBooksFilter) ([]model.Book, error) {
	return s.repo.ListBooks(ctx, filter)
}

func (s *Service) AddBook(ctx context.Context, req model.AddBookRequest) (model.Book, error) {
	return s.repo.CreateBook(ctx, model.Book{
		Title:           req.Title,
		Author:          req.Author,
		Description:     req.Description,
		Category:        req.Category,
		Img:             req.Img,
		Copies:          req.Copies,
		CopiesAvailable: req.Copies,
	})
}

// DeleteBook is an administrative override: open loans and reviews for the
// book are removed with it, bypassing the normal return path.
func (s *Service) DeleteBook(ctx context.Context, bookID int) error {
	err := s.repo.WithinTx(ctx, func(r repository.Repository) error {
		if _, err := r.GetBookForUpdate(ctx, bookID); err != nil {
			return err
		}
		if err := r.DeleteLoansByBook(ctx, bookID); err != nil {
			return err
		}
		if err := r.DeleteReviewsByBook(ctx, bookID); err != nil {
			return err
		}
		return r.DeleteBook(ctx, bookID)
	})
	if err != nil {
		return err
	}
	s.log.Info("book deleted", zap.Int("book", bookID))
	return nil
}

func (s *Service) IncreaseQuantity(ctx context.Context, bookID int) error {
	return s.repo.WithinTx(ctx, func(r repository.Repository) error {
		if _, err := r.GetBookForUpdate(ctx, bookID); err != nil {
			return err
		}
		return r.UpdateBookCopies(ctx, bookID, 1, 1)
	})
}

// DecreaseQuantity reports NotFound both for a missing book and for a book
// with nothing left to decrement; callers cannot tell the two apart.
func (s *Service) DecreaseQuantity(ctx context.Context, bookID int) error {
	return s.repo.WithinTx(ctx, func(r repository.Repository) error {
		book, err := r.GetBookForUpdate(ctx, bookID)
		if err != nil {
			return err
		}
		if book.CopiesAvailable <= 0 || book.Copies <= 0 {
			return errs.ErrNotFound
		}
		return r.UpdateBookCopies(ctx, bookID, -1, -1)
	})
}
