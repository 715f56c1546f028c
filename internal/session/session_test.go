package session

import (
	"testing"
	"time"

	"stockpulse/internal/util"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestObservable(t *testing.T) {
	t.Run("starts signed out", func(t *testing.T) {
		o := NewObservable()
		require.False(t, o.Get().Active())
	})

	t.Run("set publishes to subscribers", func(t *testing.T) {
		o := NewObservable()

		var seen []State
		o.Subscribe(func(s State) {
			seen = append(seen, s)
		})

		userID := uuid.New()
		o.Set(State{
			UserID:     &userID,
			Email:      util.StringPointer("trader@example.com"),
			VerifiedAt: time.Now(),
		})

		require.Len(t, seen, 1)
		require.True(t, seen[0].Active())
		require.Equal(t, userID, *seen[0].UserID)
		require.True(t, o.Get().Active())
	})

	t.Run("unsubscribe stops notifications", func(t *testing.T) {
		o := NewObservable()

		calls := 0
		unsubscribe := o.Subscribe(func(State) { calls++ })

		userID := uuid.New()
		o.Set(State{UserID: &userID})
		unsubscribe()
		o.Set(State{})

		require.Equal(t, 1, calls)
	})

	t.Run("signing out clears the state", func(t *testing.T) {
		o := NewObservable()
		userID := uuid.New()

		o.Set(State{UserID: &userID})
		require.True(t, o.Get().Active())

		o.Set(State{})
		require.False(t, o.Get().Active())
	})
}
