package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"memberships/internal/entity"
	"memberships/internal/lifecycle"
	"memberships/internal/observability/metrics"
	"memberships/internal/validation"
)

const defaultUserID = 2000

var tracer = otel.Tracer("memberships/internal/usecase")

// Membership coordinates membership use cases via the repository
type Membership struct {
	Repo MembershipRepository
	Tx   TxManager

	validator  *validation.Engine
	log        *slog.Logger
	now        func() time.Time
	userID     int64
	assignedBy string
}

// Option configures the Membership use cases.
type Option func(*Membership)

// WithValidator sets the rule engine used for creation requests.
func WithValidator(v *validation.Engine) Option {
	return func(m *Membership) {
		if v != nil {
			m.validator = v
		}
	}
}

// WithClock sets the time source used for state derivation.
func WithClock(now func() time.Time) Option {
	return func(m *Membership) {
		if now != nil {
			m.now = now
		}
	}
}

// WithLogger sets the logger.
func WithLogger(log *slog.Logger) Option {
	return func(m *Membership) {
		if log != nil {
			m.log = log
		}
	}
}

// WithOwner sets the user every membership belongs to and the default
// assignedBy annotation used when a request has none.
func WithOwner(userID int64, assignedBy string) Option {
	return func(m *Membership) {
		if userID > 0 {
			m.userID = userID
		}
		m.assignedBy = assignedBy
	}
}

// NewMembership creates a use case service with the given repository and transaction manager
func NewMembership(repo MembershipRepository, tx TxManager, opts ...Option) *Membership {
	m := &Membership{
		Repo:   repo,
		Tx:     tx,
		log:    slog.Default(),
		now:    time.Now,
		userID: defaultUserID,
	}
	for _, o := range opts {
		o(m)
	}
	if m.validator == nil {
		m.validator = validation.NewEngine(validation.WithClock(m.now))
	}
	return m
}

// ValidationMode reports how many rule failures a rejected request carries.
func (s *Membership) ValidationMode() validation.Mode {
	return s.validator.Mode()
}

// CreateMembership validates the request, computes the validity window and
// billing periods, and stores everything in one transaction.
func (s *Membership) CreateMembership(ctx context.Context, req *entity.MembershipRequest) (*entity.MembershipWithPeriods, error) {
	ctx, span := tracer.Start(ctx, "Membership.CreateMembership")
	defer span.End()

	cmd, err := s.validator.Validate(req)
	if err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			metrics.ObserveValidationFailure(string(verr.Code()))
		}
		return nil, err
	}

	now := s.now()
	validUntil, err := lifecycle.ValidUntil(cmd.ValidFrom, cmd.BillingInterval, cmd.BillingPeriods)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMembership, err)
	}
	periods, err := lifecycle.Periods(cmd.ValidFrom, cmd.BillingInterval, cmd.BillingPeriods, now)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMembership, err)
	}

	m := &entity.Membership{
		UUID:            newUUID(),
		Name:            cmd.Name,
		UserID:          s.userID,
		RecurringPrice:  cmd.RecurringPrice,
		PaymentMethod:   cmd.PaymentMethod,
		BillingInterval: cmd.BillingInterval,
		BillingPeriods:  cmd.BillingPeriods,
		ValidFrom:       cmd.ValidFrom,
		ValidUntil:      validUntil,
		State:           lifecycle.DeriveState(cmd.ValidFrom, validUntil, now),
		AssignedBy:      cmd.AssignedBy,
	}
	if m.AssignedBy == nil && s.assignedBy != "" {
		a := s.assignedBy
		m.AssignedBy = &a
	}

	var out entity.MembershipWithPeriods
	err = s.Tx.RunInTx(ctx, func(ctx context.Context) error {
		created, err := s.Repo.SaveMembership(ctx, m)
		if err != nil {
			return err
		}
		for _, p := range periods {
			p.UUID = newUUID()
			p.MembershipID = created.ID
		}
		saved, err := s.Repo.SavePeriods(ctx, periods)
		if err != nil {
			return err
		}
		out = entity.MembershipWithPeriods{Membership: created, Periods: saved}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("create membership: %w", err)
	}

	metrics.ObserveCreated(string(m.BillingInterval))
	s.log.Info("membership created",
		slog.Int64("id", out.Membership.ID),
		slog.String("interval", string(m.BillingInterval)),
		slog.Int("periods", len(out.Periods)),
	)
	return &out, nil
}

// ListMemberships returns every membership with its periods, read from one
// snapshot. States are derived at the current time; nothing is written back.
func (s *Membership) ListMemberships(ctx context.Context) ([]*entity.MembershipWithPeriods, error) {
	var (
		ms      []*entity.Membership
		periods []*entity.MembershipPeriod
	)
	err := s.Tx.RunInReadTx(ctx, func(ctx context.Context) error {
		var err error
		ms, err = s.Repo.ListMemberships(ctx)
		if err != nil || len(ms) == 0 {
			return err
		}

		ids := make([]int64, 0, len(ms))
		for _, m := range ms {
			ids = append(ids, m.ID)
		}
		periods, err = s.Repo.ListPeriods(ctx, ids)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list memberships: %w", err)
	}

	byMembership := make(map[int64][]*entity.MembershipPeriod, len(ms))
	for _, p := range periods {
		byMembership[p.MembershipID] = append(byMembership[p.MembershipID], p)
	}

	now := s.now()
	out := make([]*entity.MembershipWithPeriods, 0, len(ms))
	for _, m := range ms {
		out = append(out, withEffectiveStates(m, byMembership[m.ID], now))
	}
	return out, nil
}

// GetMembership fetches one membership with its periods from one snapshot.
func (s *Membership) GetMembership(ctx context.Context, id int64) (*entity.MembershipWithPeriods, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}

	var (
		m       *entity.Membership
		periods []*entity.MembershipPeriod
	)
	err := s.Tx.RunInReadTx(ctx, func(ctx context.Context) error {
		var err error
		if m, err = s.Repo.GetMembershipByID(ctx, id); err != nil {
			return err
		}
		periods, err = s.Repo.ListPeriods(ctx, []int64{id})
		return err
	})
	if errors.Is(err, ErrMembershipNotFound) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("get membership id=%d: %w", id, err)
	}
	return withEffectiveStates(m, periods, s.now()), nil
}

// TerminateMembership marks the membership and all its remaining periods
// as terminated. Eligibility is checked on the locked row, so the check and
// the update are one atomic step.
func (s *Membership) TerminateMembership(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidID
	}
	ctx, span := tracer.Start(ctx, "Membership.TerminateMembership")
	defer span.End()
	span.SetAttributes(attribute.Int64("membership.id", id))

	now := s.now()
	var terminated int
	err := s.Tx.RunInTx(ctx, func(ctx context.Context) error {
		m, err := s.Repo.LockMembershipByID(ctx, id)
		if err != nil {
			return err
		}
		periods, err := s.Repo.ListPeriods(ctx, []int64{id})
		if err != nil {
			return err
		}

		state := lifecycle.EffectiveState(m.State, m.ValidFrom, m.ValidUntil, now)
		remaining, err := lifecycle.CheckTermination(state, periods, now)
		if err != nil {
			return &TerminationError{Reason: err}
		}

		ids := make([]int64, 0, len(remaining))
		for _, p := range remaining {
			ids = append(ids, p.ID)
		}
		if err := s.Repo.UpdatePeriodsState(ctx, ids, entity.StateTerminated); err != nil {
			return err
		}
		if err := s.Repo.UpdateMembershipState(ctx, id, entity.StateTerminated); err != nil {
			return err
		}
		terminated = len(ids)
		return nil
	})

	switch {
	case errors.Is(err, ErrTerminationNotAllowed):
		metrics.ObserveTermination("rejected")
		return err
	case errors.Is(err, ErrMembershipNotFound):
		metrics.ObserveTermination("not_found")
		return err
	case err != nil:
		metrics.ObserveTermination("error")
		return fmt.Errorf("terminate membership id=%d: %w", id, err)
	}

	metrics.ObserveTermination("ok")
	s.log.Info("membership terminated", slog.Int64("id", id), slog.Int("periods", terminated))
	return nil
}

// DeleteMembership removes a membership and its periods, returning the removed record
func (s *Membership) DeleteMembership(ctx context.Context, id int64) (*entity.Membership, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}
	ctx, span := tracer.Start(ctx, "Membership.DeleteMembership")
	defer span.End()
	span.SetAttributes(attribute.Int64("membership.id", id))

	var existing *entity.Membership
	err := s.Tx.RunInTx(ctx, func(ctx context.Context) error {
		m, err := s.Repo.GetMembershipByID(ctx, id)
		if err != nil {
			return err
		}
		if err := s.Repo.DeleteMembership(ctx, id); err != nil {
			return err
		}
		existing = m
		return nil
	})

	switch {
	case errors.Is(err, ErrMembershipNotFound):
		metrics.ObserveDeletion("not_found")
		return nil, err
	case err != nil:
		metrics.ObserveDeletion("error")
		return nil, fmt.Errorf("delete membership id=%d: %w", id, err)
	}

	metrics.ObserveDeletion("ok")
	s.log.Info("membership deleted", slog.Int64("id", id))
	return existing, nil
}

// withEffectiveStates copies m and its periods with states derived at now.
func withEffectiveStates(m *entity.Membership, periods []*entity.MembershipPeriod, now time.Time) *entity.MembershipWithPeriods {
	mc := *m
	mc.State = lifecycle.EffectiveState(m.State, m.ValidFrom, m.ValidUntil, now)

	pc := make([]*entity.MembershipPeriod, 0, len(periods))
	for _, p := range periods {
		cp := *p
		cp.State = lifecycle.EffectivePeriodState(p, now)
		pc = append(pc, &cp)
	}
	return &entity.MembershipWithPeriods{Membership: &mc, Periods: pc}
}

func newUUID() strfmt.UUID {
	return strfmt.UUID(uuid.NewString())
}
