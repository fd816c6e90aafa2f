package usecase

import (
	"context"
	"errors"

	"memberships/internal/entity"
)

//go:generate go run github.com/golang/mock/mockgen@v1.6.0 -destination=usecase_mock.go -package=usecase memberships/internal/usecase MembershipRepository,TxManager

var (
	ErrMembershipNotFound    = errors.New("membership not found")
	ErrInvalidMembership     = errors.New("invalid membership")
	ErrInvalidID             = errors.New("invalid id")
	ErrTerminationNotAllowed = errors.New("termination not allowed")
)

// TerminationError explains why a membership cannot be terminated.
// It matches ErrTerminationNotAllowed and its Reason with errors.Is.
type TerminationError struct {
	Reason error
}

func (e *TerminationError) Error() string {
	return ErrTerminationNotAllowed.Error() + ": " + e.Reason.Error()
}

func (e *TerminationError) Unwrap() []error {
	return []error{ErrTerminationNotAllowed, e.Reason}
}

// TxManager runs fn inside one database transaction. The transaction
// travels in the context passed to fn; it is committed when fn returns
// nil and rolled back otherwise.
//
// RunInReadTx runs fn in a read-only transaction whose statements all see
// the same snapshot.
type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
	RunInReadTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// MembershipRepository stores memberships and their periods.
// Every method joins the transaction carried by ctx, if any.
type MembershipRepository interface {
	// SaveMembership - insert a membership, returning it with id and timestamps
	SaveMembership(ctx context.Context, m *entity.Membership) (*entity.Membership, error)
	// SavePeriods - insert billing periods, returning them with ids
	SavePeriods(ctx context.Context, periods []*entity.MembershipPeriod) ([]*entity.MembershipPeriod, error)
	// GetMembershipByID - get a membership by ID
	GetMembershipByID(ctx context.Context, id int64) (*entity.Membership, error)
	// LockMembershipByID - get a membership by ID and lock its row until the transaction ends
	LockMembershipByID(ctx context.Context, id int64) (*entity.Membership, error)
	// ListMemberships - all memberships ordered by ID
	ListMemberships(ctx context.Context) ([]*entity.Membership, error)
	// ListPeriods - periods of the given memberships ordered by membership and start
	ListPeriods(ctx context.Context, membershipIDs []int64) ([]*entity.MembershipPeriod, error)
	// UpdatePeriodsState - set the state of the given periods
	UpdatePeriodsState(ctx context.Context, ids []int64, state entity.State) error
	// UpdateMembershipState - set the state of a membership
	UpdateMembershipState(ctx context.Context, id int64, state entity.State) error
	// DeleteMembership - delete a membership and, by cascade, its periods
	DeleteMembership(ctx context.Context, id int64) error
}
