package lifecycle

import (
	"errors"
	"testing"
	"time"

	"auction-engine/internal/biddingerrors"
	"auction-engine/internal/models"

	"github.com/stretchr/testify/require"
)

var start = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

func TestLifecycle_AcceptingBidsBoundary(t *testing.T) {
	t.Parallel()

	l := New(start, time.Hour)

	tests := []struct {
		name      string
		at        time.Time
		accepting bool
		state     models.AuctionState
	}{
		{name: "at_start", at: start, accepting: true, state: models.AuctionOpen},
		{name: "just_before_end", at: start.Add(time.Hour - time.Nanosecond), accepting: true, state: models.AuctionOpen},
		{name: "exactly_end", at: start.Add(time.Hour), accepting: false, state: models.AuctionClosed},
		{name: "after_end", at: start.Add(2 * time.Hour), accepting: false, state: models.AuctionClosed},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.accepting, l.IsAcceptingBids(tc.at))
			require.Equal(t, tc.state, l.EffectiveState(tc.at))
			require.Equal(t, models.AuctionOpen, l.State(), "expiry is a derived read")
		})
	}
}

func TestLifecycle_Close(t *testing.T) {
	t.Parallel()

	t.Run("explicit_close", func(t *testing.T) {
		l := New(start, time.Hour)
		now := start.Add(10 * time.Minute)

		require.NoError(t, l.Close(now))
		require.Equal(t, models.AuctionClosed, l.State())
		require.Equal(t, now, l.ClosedAt())
		require.False(t, l.IsAcceptingBids(now))
		require.Zero(t, l.Remaining(now))
	})

	t.Run("close_after_expiry_records_end_time", func(t *testing.T) {
		l := New(start, time.Hour)

		require.NoError(t, l.Close(start.Add(3*time.Hour)))
		require.Equal(t, l.EndTime(), l.ClosedAt())
	})

	t.Run("close_twice", func(t *testing.T) {
		l := New(start, time.Hour)
		require.NoError(t, l.Close(start))

		err := l.Close(start.Add(time.Minute))
		require.True(t, errors.Is(err, biddingerrors.ErrAlreadyEnded), "got: %v", err)
	})

	t.Run("close_settled", func(t *testing.T) {
		l := New(start, time.Hour)
		require.NoError(t, l.Close(start))
		require.NoError(t, l.Settle(start))

		err := l.Close(start)
		require.True(t, errors.Is(err, biddingerrors.ErrAlreadyEnded), "got: %v", err)
	})
}

func TestLifecycle_Settle(t *testing.T) {
	t.Parallel()

	t.Run("not_yet_closed", func(t *testing.T) {
		l := New(start, time.Hour)

		err := l.Settle(start.Add(time.Minute))
		require.True(t, errors.Is(err, biddingerrors.ErrNotYetClosed), "got: %v", err)
		require.Equal(t, models.AuctionOpen, l.State())
	})

	t.Run("after_close", func(t *testing.T) {
		l := New(start, time.Hour)
		require.NoError(t, l.Close(start.Add(time.Minute)))

		settledAt := start.Add(2 * time.Minute)
		require.NoError(t, l.Settle(settledAt))
		require.Equal(t, models.AuctionSettled, l.State())
		require.Equal(t, settledAt, l.SettledAt())
	})

	t.Run("after_expiry_without_close", func(t *testing.T) {
		l := New(start, time.Hour)

		require.NoError(t, l.Settle(start.Add(time.Hour)))
		require.Equal(t, models.AuctionSettled, l.State())
		require.Equal(t, l.EndTime(), l.ClosedAt())
	})

	t.Run("twice", func(t *testing.T) {
		l := New(start, time.Hour)
		require.NoError(t, l.Close(start))
		require.NoError(t, l.Settle(start))

		err := l.Settle(start)
		require.True(t, errors.Is(err, biddingerrors.ErrAlreadySettled), "got: %v", err)
	})
}

func TestLifecycle_Remaining(t *testing.T) {
	t.Parallel()

	l := New(start, time.Hour)
	require.Equal(t, 45*time.Minute, l.Remaining(start.Add(15*time.Minute)))
	require.Zero(t, l.Remaining(start.Add(time.Hour)))
}
