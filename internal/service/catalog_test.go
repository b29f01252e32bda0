package service

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/bibliotheca/lending-service/internal/errs"
	"github.com/bibliotheca/lending-service/internal/model"
)

func TestService_AddBook(t *testing.T) {
	t.Parallel()
	svc, repo := newTestService(t)

	repo.EXPECT().
		CreateBook(gomock.Any(), model.Book{
			Title:           "Bleak House",
			Author:          "Charles Dickens",
			Copies:          4,
			CopiesAvailable: 4,
		}).
		Return(model.Book{ID: 5, Title: "Bleak House", Author: "Charles Dickens", Copies: 4, CopiesAvailable: 4}, nil)

	book, err := svc.AddBook(context.Background(), model.AddBookRequest{
		Title:  "Bleak House",
		Author: "Charles Dickens",
		Copies: 4,
	})
	require.NoError(t, err)
	require.Equal(t, 5, book.ID)
}

func TestService_DeleteBook(t *testing.T) {
	t.Parallel()

	t.Run("removes loans and reviews with the book", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)

		expectTx(repo)
		repo.EXPECT().GetBookForUpdate(gomock.Any(), 1).Return(model.Book{ID: 1}, nil)
		repo.EXPECT().DeleteLoansByBook(gomock.Any(), 1).Return(nil)
		repo.EXPECT().DeleteReviewsByBook(gomock.Any(), 1).Return(nil)
		repo.EXPECT().DeleteBook(gomock.Any(), 1).Return(nil)

		require.NoError(t, svc.DeleteBook(context.Background(), 1))
	})

	t.Run("unknown book", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)

		expectTx(repo)
		repo.EXPECT().GetBookForUpdate(gomock.Any(), 42).Return(model.Book{}, errs.ErrNotFound)

		require.ErrorIs(t, svc.DeleteBook(context.Background(), 42), errs.ErrNotFound)
	})
}

func TestService_Quantity(t *testing.T) {
	t.Parallel()

	t.Run("increase", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)

		expectTx(repo)
		repo.EXPECT().GetBookForUpdate(gomock.Any(), 1).Return(model.Book{ID: 1, Copies: 2, CopiesAvailable: 1}, nil)
		repo.EXPECT().UpdateBookCopies(gomock.Any(), 1, 1, 1).Return(nil)

		require.NoError(t, svc.IncreaseQuantity(context.Background(), 1))
	})

	t.Run("decrease", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)

		expectTx(repo)
		repo.EXPECT().GetBookForUpdate(gomock.Any(), 1).Return(model.Book{ID: 1, Copies: 2, CopiesAvailable: 1}, nil)
		repo.EXPECT().UpdateBookCopies(gomock.Any(), 1, -1, -1).Return(nil)

		require.NoError(t, svc.DecreaseQuantity(context.Background(), 1))
	})

	t.Run("decrease with every copy on loan", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)

		expectTx(repo)
		repo.EXPECT().GetBookForUpdate(gomock.Any(), 1).Return(model.Book{ID: 1, Copies: 2, CopiesAvailable: 0}, nil)

		require.ErrorIs(t, svc.DecreaseQuantity(context.Background(), 1), errs.ErrNotFound)
	})
}
