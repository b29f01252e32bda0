package breaker_test

import (
	"errors"
	"testing"
	"time"

	"github.com/bibliotheca/lending-service/pkg/breaker"
	"github.com/stretchr/testify/require"
)

func TestCircuitBreaker_Call(t *testing.T) {
	okCall := func() error { return nil }
	failCall := func() error { return errors.New("service error") }

	cb := breaker.New(10, 50*time.Millisecond, 0.3, 3)

	for i := 0; i < 20; i++ {
		require.NoError(t, cb.Call(okCall))
	}

	// push the window past the failure threshold
	for i := 0; i < 4; i++ {
		require.Error(t, cb.Call(failCall))
	}
	require.ErrorIs(t, cb.Call(okCall), breaker.ErrOpen)

	// after the cooldown a probe is let through
	time.Sleep(60 * time.Millisecond)
	require.NoError(t, cb.Call(okCall))

	// enough consecutive successes close it again
	for i := 0; i < 5; i++ {
		require.NoError(t, cb.Call(okCall))
	}
	require.NoError(t, cb.Call(okCall))
}

func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	okCall := func() error { return nil }
	failCall := func() error { return errors.New("service error") }

	cb := breaker.New(4, 30*time.Millisecond, 0.5, 2)

	require.Error(t, cb.Call(failCall))
	require.Error(t, cb.Call(failCall))
	require.ErrorIs(t, cb.Call(okCall), breaker.ErrOpen)

	time.Sleep(40 * time.Millisecond)
	// probe fails, breaker must snap open again without waiting for the window
	require.Error(t, cb.Call(failCall))
	require.ErrorIs(t, cb.Call(okCall), breaker.ErrOpen)
}
