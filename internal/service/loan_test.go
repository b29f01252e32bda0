package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bibliotheca/lending-service/internal/errs"
	"github.com/bibliotheca/lending-service/internal/model"
	"github.com/bibliotheca/lending-service/internal/repository"
	mock_repository "github.com/bibliotheca/lending-service/internal/repository/mocks"
)

var testToday = model.NewDate(2024, time.March, 10)

func newTestService(t *testing.T) (*Service, *mock_repository.MockRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock_repository.NewMockRepository(ctrl)
	svc := NewService(repo, NewNoopEvents(), zap.NewNop())
	svc.today = func() model.Date { return testToday }
	return svc, repo
}

// expectTx runs the transactional closure against the same mock.
func expectTx(repo *mock_repository.MockRepository) {
	repo.EXPECT().WithinTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, fn func(repository.Repository) error) error {
			return fn(repo)
		})
}

func TestService_Checkout(t *testing.T) {
	t.Parallel()
	const user = "oliver"
	book := model.Book{ID: 1, Title: "The Moonstone", Copies: 3, CopiesAvailable: 2}

	t.Run("first checkout opens a week-long loan", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)

		expectTx(repo)
		repo.EXPECT().GetBookForUpdate(gomock.Any(), 1).Return(book, nil)
		repo.EXPECT().GetLoan(gomock.Any(), user, 1).Return(model.Loan{}, errs.ErrNotFound)
		repo.EXPECT().ListLoans(gomock.Any(), user).Return(nil, nil)
		repo.EXPECT().GetFeeAccount(gomock.Any(), user).Return(model.FeeAccount{}, errs.ErrNotFound)
		repo.EXPECT().CreateFeeAccount(gomock.Any(), user).Return(nil)
		repo.EXPECT().UpdateBookCopies(gomock.Any(), 1, 0, -1).Return(nil)
		repo.EXPECT().CreateLoan(gomock.Any(), model.Loan{
			UserName:     user,
			BookID:       1,
			CheckoutDate: testToday,
			DueDate:      testToday.AddDays(7),
		}).Return(nil)

		got, err := svc.Checkout(context.Background(), user, 1)
		require.NoError(t, err)
		require.Equal(t, 1, got.CopiesAvailable)
	})

	t.Run("zero balance with an overdue loan still gets through", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)

		expectTx(repo)
		repo.EXPECT().GetBookForUpdate(gomock.Any(), 1).Return(book, nil)
		repo.EXPECT().GetLoan(gomock.Any(), user, 1).Return(model.Loan{}, errs.ErrNotFound)
		repo.EXPECT().ListLoans(gomock.Any(), user).Return([]model.Loan{
			{UserName: user, BookID: 9, DueDate: testToday.AddDays(-2)},
		}, nil)
		repo.EXPECT().GetFeeAccount(gomock.Any(), user).Return(model.FeeAccount{UserName: user, Balance: 0}, nil)
		repo.EXPECT().UpdateBookCopies(gomock.Any(), 1, 0, -1).Return(nil)
		repo.EXPECT().CreateLoan(gomock.Any(), gomock.Any()).Return(nil)

		_, err := svc.Checkout(context.Background(), user, 1)
		require.NoError(t, err)
	})

	t.Run("positive balance blocks checkout", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)

		expectTx(repo)
		repo.EXPECT().GetBookForUpdate(gomock.Any(), 1).Return(book, nil)
		repo.EXPECT().GetLoan(gomock.Any(), user, 1).Return(model.Loan{}, errs.ErrNotFound)
		repo.EXPECT().ListLoans(gomock.Any(), user).Return(nil, nil)
		repo.EXPECT().GetFeeAccount(gomock.Any(), user).Return(model.FeeAccount{UserName: user, Balance: 4}, nil)

		_, err := svc.Checkout(context.Background(), user, 1)
		require.ErrorIs(t, err, errs.ErrOutstandingFee)
	})

	t.Run("second checkout of the same book", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)

		expectTx(repo)
		repo.EXPECT().GetBookForUpdate(gomock.Any(), 1).Return(book, nil)
		repo.EXPECT().GetLoan(gomock.Any(), user, 1).Return(model.Loan{UserName: user, BookID: 1}, nil)

		_, err := svc.Checkout(context.Background(), user, 1)
		require.ErrorIs(t, err, errs.ErrAlreadyCheckedOut)
	})

	t.Run("no copies on the shelf", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)

		expectTx(repo)
		repo.EXPECT().GetBookForUpdate(gomock.Any(), 1).
			Return(model.Book{ID: 1, Copies: 3, CopiesAvailable: 0}, nil)
		repo.EXPECT().GetLoan(gomock.Any(), user, 1).Return(model.Loan{}, errs.ErrNotFound)

		_, err := svc.Checkout(context.Background(), user, 1)
		require.ErrorIs(t, err, errs.ErrQuantityExhausted)
	})

	t.Run("unknown book", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)

		expectTx(repo)
		repo.EXPECT().GetBookForUpdate(gomock.Any(), 42).Return(model.Book{}, errs.ErrNotFound)

		_, err := svc.Checkout(context.Background(), user, 42)
		require.ErrorIs(t, err, errs.ErrNotFound)
	})
}

func TestService_Return(t *testing.T) {
	t.Parallel()
	const user = "oliver"
	book := model.Book{ID: 1, Title: "The Moonstone", Author: "Wilkie Collins", Copies: 3, CopiesAvailable: 1}

	t.Run("on time, no fee", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)
		loan := model.Loan{
			ID: 11, UserName: user, BookID: 1,
			CheckoutDate: testToday.AddDays(-5),
			DueDate:      testToday.AddDays(2),
		}

		expectTx(repo)
		repo.EXPECT().GetBookForUpdate(gomock.Any(), 1).Return(book, nil)
		repo.EXPECT().GetLoan(gomock.Any(), user, 1).Return(loan, nil)
		repo.EXPECT().UpdateBookCopies(gomock.Any(), 1, 0, 1).Return(nil)
		repo.EXPECT().DeleteLoan(gomock.Any(), 11).Return(nil)
		repo.EXPECT().CreateHistory(gomock.Any(), model.HistoryRecord{
			UserName:     user,
			Title:        book.Title,
			Author:       book.Author,
			CheckoutDate: loan.CheckoutDate,
			ReturnedDate: testToday,
		}).Return(nil)

		require.NoError(t, svc.Return(context.Background(), user, 1))
	})

	t.Run("three days late accrues three units", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)
		loan := model.Loan{
			ID: 11, UserName: user, BookID: 1,
			CheckoutDate: testToday.AddDays(-10),
			DueDate:      testToday.AddDays(-3),
		}

		expectTx(repo)
		repo.EXPECT().GetBookForUpdate(gomock.Any(), 1).Return(book, nil)
		repo.EXPECT().GetLoan(gomock.Any(), user, 1).Return(loan, nil)
		repo.EXPECT().UpdateBookCopies(gomock.Any(), 1, 0, 1).Return(nil)
		repo.EXPECT().AddFee(gomock.Any(), user, int64(3)).Return(nil)
		repo.EXPECT().DeleteLoan(gomock.Any(), 11).Return(nil)
		repo.EXPECT().CreateHistory(gomock.Any(), gomock.Any()).Return(nil)

		require.NoError(t, svc.Return(context.Background(), user, 1))
	})

	t.Run("due today is not overdue", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)
		loan := model.Loan{
			ID: 11, UserName: user, BookID: 1,
			CheckoutDate: testToday.AddDays(-7),
			DueDate:      testToday,
		}

		expectTx(repo)
		repo.EXPECT().GetBookForUpdate(gomock.Any(), 1).Return(book, nil)
		repo.EXPECT().GetLoan(gomock.Any(), user, 1).Return(loan, nil)
		repo.EXPECT().UpdateBookCopies(gomock.Any(), 1, 0, 1).Return(nil)
		repo.EXPECT().DeleteLoan(gomock.Any(), 11).Return(nil)
		repo.EXPECT().CreateHistory(gomock.Any(), gomock.Any()).Return(nil)

		require.NoError(t, svc.Return(context.Background(), user, 1))
	})

	t.Run("no open loan", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)

		expectTx(repo)
		repo.EXPECT().GetBookForUpdate(gomock.Any(), 1).Return(book, nil)
		repo.EXPECT().GetLoan(gomock.Any(), user, 1).Return(model.Loan{}, errs.ErrNotFound)

		require.ErrorIs(t, svc.Return(context.Background(), user, 1), errs.ErrNotFound)
	})
}

func TestService_Renew(t *testing.T) {
	t.Parallel()
	const user = "oliver"

	t.Run("restarts the period from today", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)
		loan := model.Loan{ID: 11, UserName: user, BookID: 1, DueDate: testToday.AddDays(2)}

		expectTx(repo)
		repo.EXPECT().GetLoan(gomock.Any(), user, 1).Return(loan, nil)
		repo.EXPECT().UpdateLoanDueDate(gomock.Any(), 11, testToday.AddDays(7)).Return(nil)

		require.NoError(t, svc.Renew(context.Background(), user, 1))
	})

	t.Run("overdue loan is left untouched", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)
		loan := model.Loan{ID: 11, UserName: user, BookID: 1, DueDate: testToday.AddDays(-1)}

		expectTx(repo)
		repo.EXPECT().GetLoan(gomock.Any(), user, 1).Return(loan, nil)

		require.NoError(t, svc.Renew(context.Background(), user, 1))
	})

	t.Run("due today is still renewable", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)
		loan := model.Loan{ID: 11, UserName: user, BookID: 1, DueDate: testToday}

		expectTx(repo)
		repo.EXPECT().GetLoan(gomock.Any(), user, 1).Return(loan, nil)
		repo.EXPECT().UpdateLoanDueDate(gomock.Any(), 11, testToday.AddDays(7)).Return(nil)

		require.NoError(t, svc.Renew(context.Background(), user, 1))
	})

	t.Run("no open loan", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)

		expectTx(repo)
		repo.EXPECT().GetLoan(gomock.Any(), user, 1).Return(model.Loan{}, errs.ErrNotFound)

		require.ErrorIs(t, svc.Renew(context.Background(), user, 1), errs.ErrNotFound)
	})
}

func TestService_ListShelfLoans(t *testing.T) {
	t.Parallel()
	const user = "oliver"
	svc, repo := newTestService(t)

	repo.EXPECT().ListLoans(gomock.Any(), user).Return([]model.Loan{
		{ID: 1, UserName: user, BookID: 1, DueDate: testToday.AddDays(5)},
		{ID: 2, UserName: user, BookID: 2, DueDate: testToday.AddDays(-2)},
		{ID: 3, UserName: user, BookID: 3, DueDate: testToday.AddDays(1)}, // book deleted meanwhile
	}, nil)
	repo.EXPECT().GetBooksByIDs(gomock.Any(), []int{1, 2, 3}).Return([]model.Book{
		{ID: 1, Title: "The Moonstone"},
		{ID: 2, Title: "Bleak House"},
	}, nil)

	shelf, err := svc.ListShelfLoans(context.Background(), user)
	require.NoError(t, err)
	require.Len(t, shelf, 2)
	require.Equal(t, 5, shelf[0].DaysLeft)
	require.Equal(t, -2, shelf[1].DaysLeft)
}

func TestService_IsCheckedOutByUser(t *testing.T) {
	t.Parallel()
	const user = "oliver"
	svc, repo := newTestService(t)

	repo.EXPECT().GetLoan(gomock.Any(), user, 1).Return(model.Loan{ID: 11}, nil)
	repo.EXPECT().GetLoan(gomock.Any(), user, 2).Return(model.Loan{}, errs.ErrNotFound)

	checkedOut, err := svc.IsCheckedOutByUser(context.Background(), user, 1)
	require.NoError(t, err)
	require.True(t, checkedOut)

	checkedOut, err = svc.IsCheckedOutByUser(context.Background(), user, 2)
	require.NoError(t, err)
	require.False(t, checkedOut)
}
