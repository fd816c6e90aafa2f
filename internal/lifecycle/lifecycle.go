// Package lifecycle computes membership validity windows, billing periods
// and states. Everything here is a pure function of its arguments; the
// current time is always passed in.
package lifecycle

import (
	"errors"
	"fmt"
	"time"

	"memberships/internal/entity"
)

var (
	ErrUnknownInterval = errors.New("unknown billing interval")
	ErrInvalidCount    = errors.New("billing periods must be positive")
)

// Advance moves t forward by n billing intervals. Monthly and yearly
// steps use calendar months and clamp to the last day of the target
// month: Jan 31 + 1 month is Feb 28/29, Feb 29 + 1 year is Feb 28.
func Advance(t time.Time, interval entity.BillingInterval, n int) (time.Time, error) {
	switch interval {
	case entity.IntervalWeekly:
		return t.AddDate(0, 0, 7*n), nil
	case entity.IntervalMonthly:
		return addMonths(t, n), nil
	case entity.IntervalYearly:
		return addMonths(t, 12*n), nil
	default:
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnknownInterval, interval)
	}
}

// ValidUntil returns the exclusive end of a membership starting at validFrom.
func ValidUntil(validFrom time.Time, interval entity.BillingInterval, periods int) (time.Time, error) {
	if periods <= 0 {
		return time.Time{}, ErrInvalidCount
	}
	return Advance(validFrom, interval, periods)
}

// Periods builds the ordered, contiguous billing periods of a membership.
// Period k ends at validFrom advanced by k+1 intervals; anchoring every
// boundary at validFrom keeps month-end clamping from drifting, so the
// last end always equals ValidUntil.
func Periods(validFrom time.Time, interval entity.BillingInterval, count int, now time.Time) ([]*entity.MembershipPeriod, error) {
	if count <= 0 {
		return nil, ErrInvalidCount
	}
	out := make([]*entity.MembershipPeriod, 0, count)
	start := validFrom
	for k := 1; k <= count; k++ {
		end, err := Advance(validFrom, interval, k)
		if err != nil {
			return nil, err
		}
		out = append(out, &entity.MembershipPeriod{
			Start: start,
			End:   end,
			State: PeriodState(start, end, now),
		})
		start = end
	}
	return out, nil
}

// DeriveState returns the state of a membership window at now:
// pending before validFrom, expired once validUntil has passed, active otherwise.
func DeriveState(validFrom, validUntil, now time.Time) entity.State {
	switch {
	case validFrom.After(now):
		return entity.StatePending
	case validUntil.Before(now):
		return entity.StateExpired
	default:
		return entity.StateActive
	}
}

// PeriodState is DeriveState for the half-open period window [start, end).
func PeriodState(start, end, now time.Time) entity.State {
	switch {
	case start.After(now):
		return entity.StatePending
	case !end.After(now):
		return entity.StateExpired
	default:
		return entity.StateActive
	}
}

// EffectiveState keeps an explicit termination and derives everything else.
func EffectiveState(stored entity.State, validFrom, validUntil, now time.Time) entity.State {
	if stored == entity.StateTerminated {
		return entity.StateTerminated
	}
	return DeriveState(validFrom, validUntil, now)
}

// EffectivePeriodState is EffectiveState for a single period.
func EffectivePeriodState(p *entity.MembershipPeriod, now time.Time) entity.State {
	if p.State == entity.StateTerminated {
		return entity.StateTerminated
	}
	return PeriodState(p.Start, p.End, now)
}

func addMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m+time.Month(n), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	if last := daysIn(first); d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func daysIn(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
