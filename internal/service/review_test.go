package service

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/bibliotheca/lending-service/internal/errs"
	"github.com/bibliotheca/lending-service/internal/model"
)

func TestService_PostReview(t *testing.T) {
	t.Parallel()
	const user = "oliver"

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)
		desc := "great read"

		repo.EXPECT().HasReview(gomock.Any(), user, 1).Return(false, nil)
		repo.EXPECT().CreateReview(gomock.Any(), model.Review{
			UserName:    user,
			BookID:      1,
			Rating:      4.5,
			Description: &desc,
			ReviewDate:  testToday,
		}).Return(nil)

		require.NoError(t, svc.PostReview(context.Background(), user, model.ReviewRequest{
			BookID:      1,
			Rating:      4.5,
			Description: &desc,
		}))
	})

	t.Run("one review per borrower per book", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)

		repo.EXPECT().HasReview(gomock.Any(), user, 1).Return(true, nil)

		err := svc.PostReview(context.Background(), user, model.ReviewRequest{BookID: 1, Rating: 4})
		require.ErrorIs(t, err, errs.ErrDuplicateReview)
	})
}
