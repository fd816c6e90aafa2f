package lifecycle

import (
	"errors"
	"fmt"
	"time"

	"memberships/internal/entity"
)

var (
	ErrStateNotTerminable = errors.New("membership is not active or pending")
	ErrNoRemainingPeriods = errors.New("no remaining billing periods")
	ErrFinalPeriodStarted = errors.New("the final billing period has already started")
)

// RemainingPeriods returns the periods that end after now and are not
// terminated yet, in their original order.
func RemainingPeriods(periods []*entity.MembershipPeriod, now time.Time) []*entity.MembershipPeriod {
	var out []*entity.MembershipPeriod
	for _, p := range periods {
		if p.State == entity.StateTerminated {
			continue
		}
		if p.End.After(now) {
			out = append(out, p)
		}
	}
	return out
}

// CheckTermination decides whether a membership in the given effective
// state may be terminated at now and returns the periods to terminate.
func CheckTermination(state entity.State, periods []*entity.MembershipPeriod, now time.Time) ([]*entity.MembershipPeriod, error) {
	if state != entity.StateActive && state != entity.StatePending {
		return nil, fmt.Errorf("%w: state is %s", ErrStateNotTerminable, state)
	}

	remaining := RemainingPeriods(periods, now)
	switch {
	case len(remaining) == 0:
		return nil, ErrNoRemainingPeriods
	case len(remaining) == 1 && !remaining[0].Start.After(now):
		return nil, ErrFinalPeriodStarted
	}
	return remaining, nil
}
