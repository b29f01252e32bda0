package service

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/bibliotheca/lending-service/internal/errs"
	"github.com/bibliotheca/lending-service/internal/model"
)

func TestService_Messages(t *testing.T) {
	t.Parallel()
	const user = "oliver"

	t.Run("post opens an unanswered message", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)

		repo.EXPECT().
			CreateMessage(gomock.Any(), model.Message{
				UserName: user,
				Title:    "Lost card",
				Question: "How do I replace it?",
			}).
			Return(model.Message{ID: 1, UserName: user, Title: "Lost card", Question: "How do I replace it?"}, nil)

		msg, err := svc.PostMessage(context.Background(), user, model.MessageRequest{
			Title:    "Lost card",
			Question: "How do I replace it?",
		})
		require.NoError(t, err)
		require.Equal(t, 1, msg.ID)
		require.False(t, msg.Closed)
	})

	t.Run("answer records the admin and closes", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)

		repo.EXPECT().
			AnswerMessage(gomock.Any(), 1, "librarian", "Come to the front desk").
			Return(nil)

		require.NoError(t, svc.AnswerMessage(context.Background(), "librarian", model.AnswerMessageRequest{
			ID:       1,
			Response: "Come to the front desk",
		}))
	})

	t.Run("answering an unknown message", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)

		repo.EXPECT().
			AnswerMessage(gomock.Any(), 42, "librarian", "Come to the front desk").
			Return(errs.ErrNotFound)

		err := svc.AnswerMessage(context.Background(), "librarian", model.AnswerMessageRequest{
			ID:       42,
			Response: "Come to the front desk",
		})
		require.ErrorIs(t, err, errs.ErrNotFound)
	})
}
