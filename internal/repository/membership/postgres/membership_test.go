package postgres

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"testing"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"memberships/internal/entity"
	"memberships/internal/lifecycle"
	"memberships/internal/usecase"
	"memberships/migrations"
)

var pgContainer *postgres.PostgresContainer

func cleanup() {
	if pgContainer != nil {
		_ = pgContainer.Terminate(context.Background())
	}
}

func TestMain(m *testing.M) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cleanup()
		os.Exit(1)
	}()

	c, err := postgres.Run(
		ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("memberships_db"),
		postgres.WithUsername("memberships_user"),
		postgres.WithPassword("memberships_password"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "run container: %v\n", err)
		cleanup()
		os.Exit(1)
	}
	pgContainer = c

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "conn string: %v\n", err)
		cleanup()
		os.Exit(1)
	}
	if err := migrations.Up(connStr); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "migrate up: %v\n", err)
		cleanup()
		os.Exit(1)
	}

	code := m.Run()

	cleanup()
	os.Exit(code)
}

func newPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()
	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)
	_, err = pool.Exec(ctx, `TRUNCATE TABLE memberships, membership_periods RESTART IDENTITY`)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func goldPlan() *entity.Membership {
	return &entity.Membership{
		UUID:            strfmt.UUID(uuid.NewString()),
		Name:            "Gold Plan",
		UserID:          2000,
		RecurringPrice:  decimal.RequireFromString("59.90"),
		PaymentMethod:   entity.PaymentCreditCard,
		BillingInterval: entity.IntervalMonthly,
		BillingPeriods:  6,
		ValidFrom:       date(2024, 7, 1),
		ValidUntil:      date(2025, 1, 1),
		State:           entity.StatePending,
		AssignedBy:      swag.String("Admin"),
	}
}

func periodsFor(t *testing.T, m *entity.Membership) []*entity.MembershipPeriod {
	t.Helper()
	ps, err := lifecycle.Periods(m.ValidFrom, m.BillingInterval, m.BillingPeriods, m.ValidFrom)
	require.NoError(t, err)
	for _, p := range ps {
		p.UUID = strfmt.UUID(uuid.NewString())
		p.MembershipID = m.ID
	}
	return ps
}

func TestMembershipRepository_SaveAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewMembershipRepository(newPool(t))

	created, err := repo.SaveMembership(ctx, goldPlan())
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.True(t, decimal.RequireFromString("59.90").Equal(created.RecurringPrice))
	assert.Equal(t, date(2024, 7, 1), created.ValidFrom)
	assert.Equal(t, date(2025, 1, 1), created.ValidUntil)
	require.NotNil(t, created.AssignedBy)
	assert.Equal(t, "Admin", *created.AssignedBy)

	saved, err := repo.SavePeriods(ctx, periodsFor(t, created))
	require.NoError(t, err)
	require.Len(t, saved, 6)

	got, err := repo.GetMembershipByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.UUID, got.UUID)
	assert.Equal(t, entity.IntervalMonthly, got.BillingInterval)

	periods, err := repo.ListPeriods(ctx, []int64{created.ID})
	require.NoError(t, err)
	require.Len(t, periods, 6)
	assert.Equal(t, date(2024, 7, 1), periods[0].Start)
	assert.Equal(t, date(2025, 1, 1), periods[5].End)

	_, err = repo.GetMembershipByID(ctx, 999)
	assert.ErrorIs(t, err, usecase.ErrMembershipNotFound)
}

func TestMembershipRepository_PriceKeptExactly(t *testing.T) {
	ctx := context.Background()
	repo := NewMembershipRepository(newPool(t))

	tests := []struct {
		name  string
		price string
	}{
		{name: "above ten billion", price: "12345678901.50"},
		{name: "more than two decimals", price: "19.999"},
		{name: "large with fraction", price: "98765432109876.125"},
		{name: "zero", price: "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := goldPlan()
			m.RecurringPrice = decimal.RequireFromString(tt.price)

			created, err := repo.SaveMembership(ctx, m)
			require.NoError(t, err)
			assert.True(t, m.RecurringPrice.Equal(created.RecurringPrice), "saved %s", created.RecurringPrice)

			got, err := repo.GetMembershipByID(ctx, created.ID)
			require.NoError(t, err)
			assert.True(t, m.RecurringPrice.Equal(got.RecurringPrice), "read back %s", got.RecurringPrice)
		})
	}
}

func TestMembershipRepository_IDsAfterDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewMembershipRepository(newPool(t))

	first, err := repo.SaveMembership(ctx, goldPlan())
	require.NoError(t, err)
	second, err := repo.SaveMembership(ctx, goldPlan())
	require.NoError(t, err)
	require.NoError(t, repo.DeleteMembership(ctx, first.ID))

	third, err := repo.SaveMembership(ctx, goldPlan())
	require.NoError(t, err)
	assert.Greater(t, third.ID, second.ID)

	list, err := repo.ListMemberships(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, third.ID, list[1].ID)
}

func TestMembershipRepository_DeleteCascades(t *testing.T) {
	ctx := context.Background()
	pool := newPool(t)
	repo := NewMembershipRepository(pool)

	created, err := repo.SaveMembership(ctx, goldPlan())
	require.NoError(t, err)
	_, err = repo.SavePeriods(ctx, periodsFor(t, created))
	require.NoError(t, err)

	require.NoError(t, repo.DeleteMembership(ctx, created.ID))

	var n int
	require.NoError(t, pool.QueryRow(ctx, `SELECT count(*) FROM membership_periods`).Scan(&n))
	assert.Equal(t, 0, n)

	assert.ErrorIs(t, repo.DeleteMembership(ctx, created.ID), usecase.ErrMembershipNotFound)
}

func TestTxManager_RollsBack(t *testing.T) {
	ctx := context.Background()
	pool := newPool(t)
	repo := NewMembershipRepository(pool)
	tm := NewTxManager(pool)

	expected := errors.New("periods failed")
	err := tm.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := repo.SaveMembership(ctx, goldPlan()); err != nil {
			return err
		}
		return expected
	})
	assert.ErrorIs(t, err, expected)

	list, err := repo.ListMemberships(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestTxManager_ReadTxKeepsSnapshot(t *testing.T) {
	ctx := context.Background()
	pool := newPool(t)
	repo := NewMembershipRepository(pool)
	tm := NewTxManager(pool)

	created, err := repo.SaveMembership(ctx, goldPlan())
	require.NoError(t, err)
	_, err = repo.SavePeriods(ctx, periodsFor(t, created))
	require.NoError(t, err)

	var periods []*entity.MembershipPeriod
	err = tm.RunInReadTx(ctx, func(ctx context.Context) error {
		if _, err := repo.ListMemberships(ctx); err != nil {
			return err
		}
		// committed outside the read transaction
		if err := repo.DeleteMembership(context.Background(), created.ID); err != nil {
			return err
		}
		var err error
		periods, err = repo.ListPeriods(ctx, []int64{created.ID})
		return err
	})
	require.NoError(t, err)
	assert.Len(t, periods, 6)

	list, err := repo.ListMemberships(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestTxManager_ReadTxRejectsWrites(t *testing.T) {
	ctx := context.Background()
	pool := newPool(t)
	repo := NewMembershipRepository(pool)

	err := NewTxManager(pool).RunInReadTx(ctx, func(ctx context.Context) error {
		_, err := repo.SaveMembership(ctx, goldPlan())
		return err
	})
	require.Error(t, err)

	list, err := repo.ListMemberships(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestMembershipUseCases_EndToEnd(t *testing.T) {
	ctx := context.Background()
	pool := newPool(t)
	repo := NewMembershipRepository(pool)
	now := date(2024, 11, 15)
	uc := usecase.NewMembership(repo, NewTxManager(pool), usecase.WithClock(func() time.Time { return now }))

	price := decimal.NewFromInt(60)
	created, err := uc.CreateMembership(ctx, &entity.MembershipRequest{
		Name:            swag.String("Gold Plan"),
		RecurringPrice:  &price,
		PaymentMethod:   swag.String("credit card"),
		BillingInterval: swag.String("monthly"),
		BillingPeriods:  swag.Int64(6),
		ValidFrom:       swag.String("2024-07-01"),
	})
	require.NoError(t, err)
	require.Len(t, created.Periods, 6)

	require.NoError(t, uc.TerminateMembership(ctx, created.Membership.ID))

	got, err := uc.GetMembership(ctx, created.Membership.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StateTerminated, got.Membership.State)
	var terminated int
	for _, p := range got.Periods {
		if p.State == entity.StateTerminated {
			terminated++
		}
	}
	assert.Equal(t, 2, terminated)

	err = uc.TerminateMembership(ctx, created.Membership.ID)
	assert.ErrorIs(t, err, usecase.ErrTerminationNotAllowed)

	_, err = uc.DeleteMembership(ctx, created.Membership.ID)
	require.NoError(t, err)
	_, err = uc.DeleteMembership(ctx, created.Membership.ID)
	assert.ErrorIs(t, err, usecase.ErrMembershipNotFound)
}
