package handler_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bibliotheca/lending-service/internal/handler"
)

func TestConsumer_SetupAcrossSessions(t *testing.T) {
	t.Parallel()
	consumer := handler.NewConsumer(func(ctx context.Context, userName string) error {
		return nil
	}, zap.NewNop())

	// A rebalance ends the session and starts a new one with the same
	// handler instance.
	require.NoError(t, consumer.Setup(nil))
	require.NoError(t, consumer.Setup(nil))
	require.NoError(t, consumer.Cleanup(nil))
	require.NoError(t, consumer.Setup(nil))
}
