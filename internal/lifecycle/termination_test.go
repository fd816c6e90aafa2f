package lifecycle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"memberships/internal/entity"
)

func goldPlanPeriods(t *testing.T) []*entity.MembershipPeriod {
	t.Helper()
	periods, err := Periods(date(2024, 7, 1), entity.IntervalMonthly, 6, date(2024, 7, 1))
	require.NoError(t, err)
	return periods
}

func TestCheckTermination(t *testing.T) {
	t.Run("ok, two remaining periods", func(t *testing.T) {
		now := date(2024, 11, 15)
		got, err := CheckTermination(entity.StateActive, goldPlanPeriods(t), now)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, date(2024, 11, 1), got[0].Start)
		assert.Equal(t, date(2024, 12, 1), got[1].Start)
	})

	t.Run("ok, pending membership terminates every period", func(t *testing.T) {
		got, err := CheckTermination(entity.StatePending, goldPlanPeriods(t), date(2024, 6, 1))
		require.NoError(t, err)
		assert.Len(t, got, 6)
	})

	t.Run("ok, single remaining period not started yet", func(t *testing.T) {
		periods, err := Periods(date(2024, 7, 1), entity.IntervalWeekly, 1, date(2024, 6, 1))
		require.NoError(t, err)
		got, err := CheckTermination(entity.StatePending, periods, date(2024, 6, 1))
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("err, inside the final period", func(t *testing.T) {
		_, err := CheckTermination(entity.StateActive, goldPlanPeriods(t), date(2024, 12, 15))
		assert.ErrorIs(t, err, ErrFinalPeriodStarted)
	})

	t.Run("err, final period started exactly now", func(t *testing.T) {
		_, err := CheckTermination(entity.StateActive, goldPlanPeriods(t), date(2024, 12, 1))
		assert.ErrorIs(t, err, ErrFinalPeriodStarted)
	})

	t.Run("err, nothing remaining", func(t *testing.T) {
		_, err := CheckTermination(entity.StateActive, goldPlanPeriods(t), date(2025, 1, 1))
		assert.ErrorIs(t, err, ErrNoRemainingPeriods)
	})

	t.Run("err, expired or terminated", func(t *testing.T) {
		for _, st := range []entity.State{entity.StateExpired, entity.StateTerminated} {
			_, err := CheckTermination(st, goldPlanPeriods(t), date(2024, 8, 1))
			assert.ErrorIs(t, err, ErrStateNotTerminable)
		}
	})
}

func TestRemainingPeriods(t *testing.T) {
	periods := goldPlanPeriods(t)
	periods[5].State = entity.StateTerminated

	got := RemainingPeriods(periods, date(2024, 10, 1))
	require.Len(t, got, 2)
	assert.Equal(t, date(2024, 10, 1), got[0].Start)
	assert.Equal(t, date(2024, 11, 1), got[1].Start)

	assert.Empty(t, RemainingPeriods(periods, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)))
}
