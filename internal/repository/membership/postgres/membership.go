package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-openapi/strfmt"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"memberships/internal/entity"
	"memberships/internal/repository/membership/postgres/sqlc"
	"memberships/internal/usecase"
)

var (
	_ usecase.MembershipRepository = (*MembershipRepository)(nil)
	_ usecase.TxManager            = (*TxManager)(nil)
)

type MembershipRepository struct {
	pool    *pgxpool.Pool
	queries *sqlc.Queries
}

func NewMembershipRepository(pool *pgxpool.Pool) *MembershipRepository {
	return &MembershipRepository{
		pool:    pool,
		queries: sqlc.New(pool),
	}
}

// q returns queries bound to the transaction in ctx, or to the pool.
func (r *MembershipRepository) q(ctx context.Context) *sqlc.Queries {
	if tx, ok := txFrom(ctx); ok {
		return r.queries.WithTx(tx)
	}
	return r.queries
}

func (r *MembershipRepository) SaveMembership(ctx context.Context, m *entity.Membership) (*entity.Membership, error) {
	if m == nil {
		return nil, fmt.Errorf("save membership: %w", usecase.ErrInvalidMembership)
	}
	id, err := uuid.Parse(m.UUID.String())
	if err != nil {
		return nil, fmt.Errorf("save membership: %w: uuid: %w", usecase.ErrInvalidMembership, err)
	}

	out, err := r.q(ctx).CreateMembership(ctx, sqlc.CreateMembershipParams{
		Uuid:            id,
		Name:            m.Name,
		UserID:          m.UserID,
		RecurringPrice:  toNumeric(m.RecurringPrice),
		ValidFrom:       m.ValidFrom,
		ValidUntil:      m.ValidUntil,
		State:           string(m.State),
		AssignedBy:      m.AssignedBy,
		PaymentMethod:   string(m.PaymentMethod),
		BillingInterval: string(m.BillingInterval),
		BillingPeriods:  int32(m.BillingPeriods),
	})
	if err != nil {
		return nil, fmt.Errorf("save membership: %w", err)
	}
	return toMembership(out), nil
}

func (r *MembershipRepository) SavePeriods(ctx context.Context, periods []*entity.MembershipPeriod) ([]*entity.MembershipPeriod, error) {
	q := r.q(ctx)
	out := make([]*entity.MembershipPeriod, 0, len(periods))
	for _, p := range periods {
		id, err := uuid.Parse(p.UUID.String())
		if err != nil {
			return nil, fmt.Errorf("save period: %w: uuid: %w", usecase.ErrInvalidMembership, err)
		}
		row, err := q.CreateMembershipPeriod(ctx, sqlc.CreateMembershipPeriodParams{
			Uuid:         id,
			MembershipID: p.MembershipID,
			StartDate:    p.Start,
			EndDate:      p.End,
			State:        string(p.State),
		})
		if err != nil {
			return nil, fmt.Errorf("save period of membership id=%d: %w", p.MembershipID, err)
		}
		out = append(out, toPeriod(row))
	}
	return out, nil
}

func (r *MembershipRepository) GetMembershipByID(ctx context.Context, id int64) (*entity.Membership, error) {
	m, err := r.q(ctx).GetMembership(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, usecase.ErrMembershipNotFound
		}
		return nil, fmt.Errorf("get membership by id=%d: %w", id, err)
	}
	return toMembership(m), nil
}

func (r *MembershipRepository) LockMembershipByID(ctx context.Context, id int64) (*entity.Membership, error) {
	m, err := r.q(ctx).GetMembershipForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, usecase.ErrMembershipNotFound
		}
		return nil, fmt.Errorf("lock membership by id=%d: %w", id, err)
	}
	return toMembership(m), nil
}

func (r *MembershipRepository) ListMemberships(ctx context.Context) ([]*entity.Membership, error) {
	rows, err := r.q(ctx).ListMemberships(ctx)
	if err != nil {
		return nil, fmt.Errorf("list memberships: %w", err)
	}
	out := make([]*entity.Membership, 0, len(rows))
	for _, item := range rows {
		out = append(out, toMembership(item))
	}
	return out, nil
}

func (r *MembershipRepository) ListPeriods(ctx context.Context, membershipIDs []int64) ([]*entity.MembershipPeriod, error) {
	if len(membershipIDs) == 0 {
		return []*entity.MembershipPeriod{}, nil
	}
	rows, err := r.q(ctx).ListMembershipPeriods(ctx, membershipIDs)
	if err != nil {
		return nil, fmt.Errorf("list periods: %w", err)
	}
	out := make([]*entity.MembershipPeriod, 0, len(rows))
	for _, item := range rows {
		out = append(out, toPeriod(item))
	}
	return out, nil
}

func (r *MembershipRepository) UpdatePeriodsState(ctx context.Context, ids []int64, state entity.State) error {
	if len(ids) == 0 {
		return nil
	}
	rows, err := r.q(ctx).UpdateMembershipPeriodsState(ctx, sqlc.UpdateMembershipPeriodsStateParams{
		State: string(state),
		Ids:   ids,
	})
	if err != nil {
		return fmt.Errorf("update periods state: %w", err)
	}
	if rows != int64(len(ids)) {
		return fmt.Errorf("update periods state: %d of %d rows updated", rows, len(ids))
	}
	return nil
}

func (r *MembershipRepository) UpdateMembershipState(ctx context.Context, id int64, state entity.State) error {
	rows, err := r.q(ctx).UpdateMembershipState(ctx, sqlc.UpdateMembershipStateParams{
		ID:    id,
		State: string(state),
	})
	if err != nil {
		return fmt.Errorf("update membership state: %w", err)
	}
	if rows == 0 {
		return usecase.ErrMembershipNotFound
	}
	return nil
}

func (r *MembershipRepository) DeleteMembership(ctx context.Context, id int64) error {
	rows, err := r.q(ctx).DeleteMembership(ctx, id)
	if err != nil {
		return fmt.Errorf("delete membership: %w", err)
	}
	if rows == 0 {
		return usecase.ErrMembershipNotFound
	}
	return nil
}

func toNumeric(d decimal.Decimal) pgtype.Numeric {
	return pgtype.Numeric{Int: d.Coefficient(), Exp: d.Exponent(), Valid: true}
}

func fromNumeric(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid || n.Int == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(n.Int, n.Exp)
}

func toMembership(m sqlc.Membership) *entity.Membership {
	var assignedBy *string
	if m.AssignedBy != nil {
		a := *m.AssignedBy
		assignedBy = &a
	}
	return &entity.Membership{
		ID:              m.ID,
		UUID:            strfmt.UUID(m.Uuid.String()),
		Name:            m.Name,
		UserID:          m.UserID,
		RecurringPrice:  fromNumeric(m.RecurringPrice),
		PaymentMethod:   entity.PaymentMethod(m.PaymentMethod),
		BillingInterval: entity.BillingInterval(m.BillingInterval),
		BillingPeriods:  int(m.BillingPeriods),
		ValidFrom:       m.ValidFrom,
		ValidUntil:      m.ValidUntil,
		State:           entity.State(m.State),
		AssignedBy:      assignedBy,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func toPeriod(p sqlc.MembershipPeriod) *entity.MembershipPeriod {
	return &entity.MembershipPeriod{
		ID:           p.ID,
		UUID:         strfmt.UUID(p.Uuid.String()),
		MembershipID: p.MembershipID,
		Start:        p.StartDate,
		End:          p.EndDate,
		State:        entity.State(p.State),
	}
}
