package validation

import (
	"errors"
	"testing"
	"time"

	oaerrors "github.com/go-openapi/errors"
	"github.com/go-openapi/swag"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"memberships/internal/entity"
)

func goldPlan() *entity.MembershipRequest {
	price := decimal.NewFromInt(60)
	return &entity.MembershipRequest{
		Name:            swag.String("Gold Plan"),
		RecurringPrice:  &price,
		PaymentMethod:   swag.String("credit card"),
		BillingInterval: swag.String("monthly"),
		BillingPeriods:  swag.Int64(6),
		ValidFrom:       swag.String("2024-07-01"),
	}
}

func with(mut func(r *entity.MembershipRequest)) *entity.MembershipRequest {
	r := goldPlan()
	mut(r)
	return r
}

func price(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func fixedClock() time.Time {
	return time.Date(2024, 7, 15, 13, 30, 0, 0, time.UTC)
}

func TestEngine_Validate_Codes(t *testing.T) {
	tcases := []struct {
		Name string
		Req  *entity.MembershipRequest
		Want Code
	}{
		{"missing name", with(func(r *entity.MembershipRequest) { r.Name = nil }), CodeMissingMandatoryFields},
		{"blank name", with(func(r *entity.MembershipRequest) { r.Name = swag.String("   ") }), CodeMissingMandatoryFields},
		{"missing price", with(func(r *entity.MembershipRequest) { r.RecurringPrice = nil }), CodeMissingMandatoryFields},
		{"missing payment method", with(func(r *entity.MembershipRequest) { r.PaymentMethod = nil }), CodeMissingMandatoryFields},
		{"missing interval", with(func(r *entity.MembershipRequest) { r.BillingInterval = nil }), CodeMissingMandatoryFields},
		{"missing periods", with(func(r *entity.MembershipRequest) { r.BillingPeriods = nil }), CodeMissingMandatoryFields},
		{"negative price", with(func(r *entity.MembershipRequest) { r.RecurringPrice = price(-1) }), CodeNegativeRecurringPrice},
		{"cash above 100", with(func(r *entity.MembershipRequest) {
			r.PaymentMethod = swag.String("cash")
			r.RecurringPrice = price(150)
		}), CodeCashPriceBelow100},
		{"unknown payment method", with(func(r *entity.MembershipRequest) { r.PaymentMethod = swag.String("bitcoin") }), CodeInvalidPaymentMethod},
		{"unknown interval", with(func(r *entity.MembershipRequest) { r.BillingInterval = swag.String("daily") }), CodeInvalidBillingInterval},
		{"monthly below 6", with(func(r *entity.MembershipRequest) { r.BillingPeriods = swag.Int64(5) }), CodeBillingPeriodsLessThan6Months},
		{"monthly zero", with(func(r *entity.MembershipRequest) { r.BillingPeriods = swag.Int64(0) }), CodeBillingPeriodsLessThan6Months},
		{"monthly above 12", with(func(r *entity.MembershipRequest) { r.BillingPeriods = swag.Int64(13) }), CodeBillingPeriodsMoreThan12Months},
		{"yearly zero", with(func(r *entity.MembershipRequest) {
			r.BillingInterval = swag.String("yearly")
			r.BillingPeriods = swag.Int64(0)
		}), CodeInvalidBillingPeriods},
		{"yearly above 10", with(func(r *entity.MembershipRequest) {
			r.BillingInterval = swag.String("yearly")
			r.BillingPeriods = swag.Int64(11)
		}), CodeBillingPeriodsMoreThan10Years},
		{"weekly above 26", with(func(r *entity.MembershipRequest) {
			r.BillingInterval = swag.String("weekly")
			r.BillingPeriods = swag.Int64(27)
		}), CodeWeeklyBillingCannotExceed6Mon},
		{"weekly negative", with(func(r *entity.MembershipRequest) {
			r.BillingInterval = swag.String("weekly")
			r.BillingPeriods = swag.Int64(-2)
		}), CodeInvalidBillingPeriods},
		{"invalid valid from", with(func(r *entity.MembershipRequest) { r.ValidFrom = swag.String("not-a-date") }), CodeValidFromMustBeAValidDate},
		{"impossible valid from", with(func(r *entity.MembershipRequest) { r.ValidFrom = swag.String("2024-02-30") }), CodeValidFromMustBeAValidDate},
		{"empty valid from", with(func(r *entity.MembershipRequest) { r.ValidFrom = swag.String("") }), CodeValidFromMustBeAValidDate},
	}

	e := NewEngine(WithClock(fixedClock))
	for _, tc := range tcases {
		t.Run(tc.Name, func(t *testing.T) {
			cmd, err := e.Validate(tc.Req)
			assert.Nil(t, cmd)

			var verr *Error
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tc.Want, verr.Code())
			assert.Equal(t, string(tc.Want), err.Error())
			assert.Len(t, verr.Codes(), 1)
		})
	}
}

func TestEngine_Validate_Bounds(t *testing.T) {
	e := NewEngine(WithClock(fixedClock))
	tcases := []struct {
		Interval string
		Periods  []int64
	}{
		{"monthly", []int64{6, 7, 12}},
		{"yearly", []int64{1, 5, 10}},
		{"weekly", []int64{1, 13, 26}},
	}
	for _, tc := range tcases {
		for _, n := range tc.Periods {
			req := with(func(r *entity.MembershipRequest) {
				r.BillingInterval = swag.String(tc.Interval)
				r.BillingPeriods = swag.Int64(n)
			})
			cmd, err := e.Validate(req)
			require.NoError(t, err, "%s %d", tc.Interval, n)
			assert.Equal(t, entity.BillingInterval(tc.Interval), cmd.BillingInterval)
			assert.Equal(t, int(n), cmd.BillingPeriods)
		}
	}
}

func TestEngine_Validate_Normalizes(t *testing.T) {
	e := NewEngine(WithClock(fixedClock))

	t.Run("gold plan", func(t *testing.T) {
		cmd, err := e.Validate(goldPlan())
		require.NoError(t, err)
		assert.Equal(t, "Gold Plan", cmd.Name)
		assert.True(t, decimal.NewFromInt(60).Equal(cmd.RecurringPrice))
		assert.Equal(t, entity.PaymentCreditCard, cmd.PaymentMethod)
		assert.Equal(t, entity.IntervalMonthly, cmd.BillingInterval)
		assert.Equal(t, 6, cmd.BillingPeriods)
		assert.Equal(t, time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), cmd.ValidFrom)
		assert.Nil(t, cmd.AssignedBy)
	})

	t.Run("cash at exactly 100 is allowed", func(t *testing.T) {
		cmd, err := e.Validate(with(func(r *entity.MembershipRequest) {
			r.PaymentMethod = swag.String("cash")
			r.RecurringPrice = price(100)
		}))
		require.NoError(t, err)
		assert.Equal(t, entity.PaymentCash, cmd.PaymentMethod)
	})

	t.Run("credit-card spelling", func(t *testing.T) {
		cmd, err := e.Validate(with(func(r *entity.MembershipRequest) { r.PaymentMethod = swag.String("credit-card") }))
		require.NoError(t, err)
		assert.Equal(t, entity.PaymentCreditCard, cmd.PaymentMethod)
	})

	t.Run("valid from defaults to today", func(t *testing.T) {
		cmd, err := e.Validate(with(func(r *entity.MembershipRequest) { r.ValidFrom = nil }))
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC), cmd.ValidFrom)
	})

	t.Run("valid from date-time is truncated", func(t *testing.T) {
		cmd, err := e.Validate(with(func(r *entity.MembershipRequest) { r.ValidFrom = swag.String("2024-07-01T10:00:00Z") }))
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), cmd.ValidFrom)
	})

	t.Run("assigned by kept when set", func(t *testing.T) {
		cmd, err := e.Validate(with(func(r *entity.MembershipRequest) { r.AssignedBy = swag.String(" Admin ") }))
		require.NoError(t, err)
		require.NotNil(t, cmd.AssignedBy)
		assert.Equal(t, "Admin", *cmd.AssignedBy)
	})
}

func TestEngine_Validate_Priority(t *testing.T) {
	req := with(func(r *entity.MembershipRequest) {
		r.RecurringPrice = price(-5)
		r.BillingInterval = swag.String("daily")
		r.ValidFrom = swag.String("yesterday")
	})

	t.Run("first mode reports the highest priority failure", func(t *testing.T) {
		_, err := NewEngine().Validate(req)
		var verr *Error
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, []Code{CodeNegativeRecurringPrice}, verr.Codes())
	})

	t.Run("all mode reports every failure in order", func(t *testing.T) {
		_, err := NewEngine(WithMode(ModeAll)).Validate(req)
		var verr *Error
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, []Code{
			CodeNegativeRecurringPrice,
			CodeInvalidBillingInterval,
			CodeValidFromMustBeAValidDate,
		}, verr.Codes())
		assert.Equal(t, CodeNegativeRecurringPrice, verr.Code())

		var composite *oaerrors.CompositeError
		require.True(t, errors.As(err, &composite))
		assert.Len(t, composite.Errors, 3)
	})

	t.Run("all mode with an empty request", func(t *testing.T) {
		_, err := NewEngine(WithMode(ModeAll)).Validate(nil)
		var verr *Error
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, []Code{CodeMissingMandatoryFields}, verr.Codes())
	})
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, ModeFirst, m)

	m, err = ParseMode("ALL")
	require.NoError(t, err)
	assert.Equal(t, ModeAll, m)

	_, err = ParseMode("some")
	assert.Error(t, err)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), d)

	d, err = ParseDate("2024-07-01T23:30:00-02:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 7, 2, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("07-2024")
	assert.Error(t, err)
}
