package service

import (
	"context"

	"github.com/bibliotheca/lending-service/internal/errs"
	"github.com/bibliotheca/lending-service/internal/model"
	"github.com/bibliotheca/lending-service/internal/repository"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Checkout opens a loan for (userName, bookID) and takes one copy off the
// shelf. The whole read-modify-write runs in one transaction with the book
// row locked, so two concurrent checkouts cannot both take the last copy.
func (s *Service) Checkout(ctx context.Context, userName string, bookID int) (model.Book, error) {
	var book model.Book
	today := s.today()

	err := s.repo.WithinTx(ctx, func(r repository.Repository) error {
		b, err := r.GetBookForUpdate(ctx, bookID)
		if err != nil {
			return err
		}
		if _, err := r.GetLoan(ctx, userName, bookID); err == nil {
			return errs.ErrAlreadyCheckedOut
		} else if !errors.Is(err, errs.ErrNotFound) {
			return err
		}
		if b.CopiesAvailable <= 0 {
			return errs.ErrQuantityExhausted
		}

		loans, err := r.ListLoans(ctx, userName)
		if err != nil {
			return err
		}
		needsReturn := false
		for _, loan := range loans {
			if loan.DueDate.Before(today) {
				needsReturn = true
				break
			}
		}

		acc, accErr := r.GetFeeAccount(ctx, userName)
		if accErr != nil && !errors.Is(accErr, errs.ErrNotFound) {
			return accErr
		}
		// A positive balance blocks checkout. The overdue-loan flag only
		// counts when the balance is already positive; a zero-balance
		// borrower with an overdue loan still gets through. Kept as-is from
		// the upstream contract pending product confirmation.
		if acc.Balance > 0 || (acc.Balance > 0 && needsReturn) {
			return errs.ErrOutstandingFee
		}
		if errors.Is(accErr, errs.ErrNotFound) {
			if err := r.CreateFeeAccount(ctx, userName); err != nil {
				return err
			}
		}

		if err := r.UpdateBookCopies(ctx, bookID, 0, -1); err != nil {
			return err
		}
		if err := r.CreateLoan(ctx, model.Loan{
			UserName:     userName,
			BookID:       bookID,
			CheckoutDate: today,
			DueDate:      today.AddDays(model.LoanPeriodDays),
		}); err != nil {
			return err
		}

		b.CopiesAvailable--
		book = b
		return nil
	})
	if err != nil {
		return model.Book{}, err
	}

	s.events.Publish(model.LoanEvent{Kind: model.LoanEventCheckedOut, UserName: userName, BookID: bookID, Date: today})
	s.log.Debug("checkout", zap.String("user", userName), zap.Int("book", bookID))
	return book, nil
}

// Return closes the loan: the copy goes back on the shelf, overdue days
// accrue on the fee account, and the loan becomes a history record.
func (s *Service) Return(ctx context.Context, userName string, bookID int) error {
	today := s.today()

	err := s.repo.WithinTx(ctx, func(r repository.Repository) error {
		book, err := r.GetBookForUpdate(ctx, bookID)
		if err != nil {
			return err
		}
		loan, err := r.GetLoan(ctx, userName, bookID)
		if err != nil {
			return err
		}

		if err := r.UpdateBookCopies(ctx, bookID, 0, 1); err != nil {
			return err
		}

		if overdueDays := loan.DueDate.DaysUntil(today); overdueDays > 0 {
			if err := r.AddFee(ctx, userName, int64(overdueDays)); err != nil {
				return err
			}
		}

		if err := r.DeleteLoan(ctx, loan.ID); err != nil {
			return err
		}
		return r.CreateHistory(ctx, model.HistoryRecord{
			UserName:     userName,
			Title:        book.Title,
			Author:       book.Author,
			Description:  book.Description,
			Img:          book.Img,
			CheckoutDate: loan.CheckoutDate,
			ReturnedDate: today,
		})
	})
	if err != nil {
		return err
	}

	s.events.Publish(model.LoanEvent{Kind: model.LoanEventReturned, UserName: userName, BookID: bookID, Date: today})
	s.log.Debug("return", zap.String("user", userName), zap.Int("book", bookID))
	return nil
}

// Renew restarts the loan period from today. An already-overdue loan is left
// untouched and the call still succeeds.
func (s *Service) Renew(ctx context.Context, userName string, bookID int) error {
	today := s.today()

	err := s.repo.WithinTx(ctx, func(r repository.Repository) error {
		loan, err := r.GetLoan(ctx, userName, bookID)
		if err != nil {
			return err
		}
		if loan.DueDate.Before(today) {
			return nil
		}
		return r.UpdateLoanDueDate(ctx, loan.ID, today.AddDays(model.LoanPeriodDays))
	})
	if err != nil {
		return err
	}

	s.events.Publish(model.LoanEvent{Kind: model.LoanEventRenewed, UserName: userName, BookID: bookID, Date: today})
	return nil
}

func (s *Service) IsCheckedOutByUser(ctx context.Context, userName string, bookID int) (bool, error) {
	if _, err := s.repo.GetLoan(ctx, userName, bookID); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *Service) CountLoans(ctx context.Context, userName string) (int, error) {
	return s.repo.CountLoans(ctx, userName)
}

// ListShelfLoans returns the borrower's open loans with whole days left until
// due, negative when overdue. Loans whose book no longer exists are skipped.
func (s *Service) ListShelfLoans(ctx context.Context, userName string) ([]model.ShelfLoan, error) {
	loans, err := s.repo.ListLoans(ctx, userName)
	if err != nil {
		return nil, err
	}
	ids := make([]int, 0, len(loans))
	byBook := make(map[int]model.Loan, len(loans))
	for _, loan := range loans {
		ids = append(ids, loan.BookID)
		byBook[loan.BookID] = loan
	}

	books, err := s.repo.GetBooksByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	today := s.today()
	shelf := make([]model.ShelfLoan, 0, len(books))
	for _, book := range books {
		loan, ok := byBook[book.ID]
		if !ok {
			continue
		}
		shelf = append(shelf, model.ShelfLoan{
			Book:     book,
			DaysLeft: today.DaysUntil(loan.DueDate),
		})
	}
	return shelf, nil
}

func (s *Service) ListHistory(ctx context.Context, userName string) ([]model.HistoryRecord, error) {
	return s.repo.ListHistory(ctx, userName)
}
