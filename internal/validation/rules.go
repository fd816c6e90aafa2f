package validation

import (
	"strings"

	oaerrors "github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/validate"
	"github.com/shopspring/decimal"

	"memberships/internal/entity"
)

// Code - stable error code returned to API clients
type Code string

const (
	CodeMissingMandatoryFields         Code = "missingMandatoryFields"
	CodeNegativeRecurringPrice         Code = "negativeRecurringPrice"
	CodeCashPriceBelow100              Code = "cashPriceBelow100"
	CodeInvalidPaymentMethod           Code = "invalidPaymentMethod"
	CodeInvalidBillingInterval         Code = "invalidBillingInterval"
	CodeInvalidBillingPeriods          Code = "invalidBillingPeriods"
	CodeBillingPeriodsLessThan6Months  Code = "billingPeriodsLessThan6Months"
	CodeBillingPeriodsMoreThan12Months Code = "billingPeriodsMoreThan12Months"
	CodeBillingPeriodsMoreThan10Years  Code = "billingPeriodsMoreThan10Years"
	CodeWeeklyBillingCannotExceed6Mon  Code = "weeklyBillingCannotExceed6Months"
	CodeValidFromMustBeAValidDate      Code = "validFromMustBeAValidDateString"
)

const in = "body"

// cashPriceLimit is the highest recurring price that may be paid in cash.
var cashPriceLimit = decimal.NewFromInt(100)

var (
	paymentMethods   = []interface{}{string(entity.PaymentCash), string(entity.PaymentCreditCard)}
	billingIntervals = []interface{}{
		string(entity.IntervalWeekly),
		string(entity.IntervalMonthly),
		string(entity.IntervalYearly),
	}
)

// periodBounds holds the inclusive billingPeriods range of one interval
// with the codes used below and above it.
type periodBounds struct {
	min, max           int64
	belowMin, aboveMax Code
}

var boundsByInterval = map[entity.BillingInterval]periodBounds{
	entity.IntervalMonthly: {6, 12, CodeBillingPeriodsLessThan6Months, CodeBillingPeriodsMoreThan12Months},
	entity.IntervalYearly:  {1, 10, CodeInvalidBillingPeriods, CodeBillingPeriodsMoreThan10Years},
	entity.IntervalWeekly:  {1, 26, CodeInvalidBillingPeriods, CodeWeeklyBillingCannotExceed6Mon},
}

// Check inspects a request and returns nil when the rule holds. A check
// whose inputs are absent or already invalid passes, leaving the report
// to the rule that owns that input.
type Check func(r *entity.MembershipRequest) *oaerrors.Validation

// Rule pairs a check with the code reported when it fails. Rules that
// can fail with more than one code return the code through CodeOf.
type Rule struct {
	Code   Code
	Check  Check
	CodeOf func(r *entity.MembershipRequest) Code
}

func (r Rule) code(req *entity.MembershipRequest) Code {
	if r.CodeOf != nil {
		return r.CodeOf(req)
	}
	return r.Code
}

// DefaultRules returns the membership creation rules in priority order.
func DefaultRules() []Rule {
	return []Rule{
		{Code: CodeMissingMandatoryFields, Check: requireFields},
		{Code: CodeNegativeRecurringPrice, Check: nonNegativePrice},
		{Code: CodeCashPriceBelow100, Check: cashPriceLimitCheck},
		{Code: CodeInvalidPaymentMethod, Check: knownPaymentMethod},
		{Code: CodeInvalidBillingInterval, Check: knownBillingInterval},
		{Code: CodeInvalidBillingPeriods, Check: billingPeriodsInBounds, CodeOf: billingPeriodsCode},
		{Code: CodeValidFromMustBeAValidDate, Check: validFromIsDate},
	}
}

func requireFields(r *entity.MembershipRequest) *oaerrors.Validation {
	if err := validate.Required("name", in, r.Name); err != nil {
		return err
	}
	if err := validate.RequiredString("name", in, strings.TrimSpace(*r.Name)); err != nil {
		return err
	}
	if err := validate.Required("recurringPrice", in, r.RecurringPrice); err != nil {
		return err
	}
	if err := validate.Required("paymentMethod", in, r.PaymentMethod); err != nil {
		return err
	}
	if err := validate.Required("billingInterval", in, r.BillingInterval); err != nil {
		return err
	}
	return validate.Required("billingPeriods", in, r.BillingPeriods)
}

func nonNegativePrice(r *entity.MembershipRequest) *oaerrors.Validation {
	if r.RecurringPrice == nil || !r.RecurringPrice.IsNegative() {
		return nil
	}
	return oaerrors.ExceedsMinimum("recurringPrice", in, 0, false, r.RecurringPrice.String())
}

func cashPriceLimitCheck(r *entity.MembershipRequest) *oaerrors.Validation {
	if r.RecurringPrice == nil || r.PaymentMethod == nil {
		return nil
	}
	if normalizePaymentMethod(*r.PaymentMethod) != entity.PaymentCash {
		return nil
	}
	if !r.RecurringPrice.GreaterThan(cashPriceLimit) {
		return nil
	}
	return oaerrors.ExceedsMaximum("recurringPrice", in, cashPriceLimit.InexactFloat64(), false, r.RecurringPrice.String())
}

func knownPaymentMethod(r *entity.MembershipRequest) *oaerrors.Validation {
	if r.PaymentMethod == nil {
		return nil
	}
	return validate.EnumCase("paymentMethod", in, string(normalizePaymentMethod(*r.PaymentMethod)), paymentMethods, true)
}

func knownBillingInterval(r *entity.MembershipRequest) *oaerrors.Validation {
	if r.BillingInterval == nil {
		return nil
	}
	return validate.EnumCase("billingInterval", in, strings.TrimSpace(*r.BillingInterval), billingIntervals, true)
}

func intervalBounds(r *entity.MembershipRequest) (periodBounds, bool) {
	if r.BillingInterval == nil || r.BillingPeriods == nil {
		return periodBounds{}, false
	}
	b, ok := boundsByInterval[entity.BillingInterval(strings.TrimSpace(*r.BillingInterval))]
	return b, ok
}

func billingPeriodsInBounds(r *entity.MembershipRequest) *oaerrors.Validation {
	b, ok := intervalBounds(r)
	if !ok {
		return nil
	}
	if err := validate.MinimumInt("billingPeriods", in, *r.BillingPeriods, b.min, false); err != nil {
		return err
	}
	return validate.MaximumInt("billingPeriods", in, *r.BillingPeriods, b.max, false)
}

func billingPeriodsCode(r *entity.MembershipRequest) Code {
	b, ok := intervalBounds(r)
	if !ok {
		return CodeInvalidBillingPeriods
	}
	if *r.BillingPeriods < b.min {
		return b.belowMin
	}
	return b.aboveMax
}

func validFromIsDate(r *entity.MembershipRequest) *oaerrors.Validation {
	if r.ValidFrom == nil {
		return nil
	}
	v := strings.TrimSpace(*r.ValidFrom)
	if err := validate.FormatOf("validFrom", in, "date", v, strfmt.Default); err == nil {
		return nil
	}
	if err := validate.FormatOf("validFrom", in, "date-time", v, strfmt.Default); err == nil {
		return nil
	}
	return oaerrors.InvalidType("validFrom", in, "date", v)
}

// normalizePaymentMethod maps accepted spellings to the canonical value.
func normalizePaymentMethod(s string) entity.PaymentMethod {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "credit-card" {
		return entity.PaymentCreditCard
	}
	return entity.PaymentMethod(s)
}
