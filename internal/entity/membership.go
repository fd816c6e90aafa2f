package entity

import (
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/shopspring/decimal"
)

// State - lifecycle state of a membership or one of its periods
type State string

const (
	StatePending    State = "pending"
	StateActive     State = "active"
	StateExpired    State = "expired"
	StateTerminated State = "terminated"
)

// PaymentMethod - how the recurring price is paid
type PaymentMethod string

const (
	PaymentCash       PaymentMethod = "cash"
	PaymentCreditCard PaymentMethod = "credit card"
)

// BillingInterval - length of one billing period
type BillingInterval string

const (
	IntervalWeekly  BillingInterval = "weekly"
	IntervalMonthly BillingInterval = "monthly"
	IntervalYearly  BillingInterval = "yearly"
)

// Membership - stored membership with its derived validity window
type Membership struct {
	// ID - sequential identifier, used internally and for ordering
	ID int64
	// UUID - stable identifier exposed to clients
	UUID strfmt.UUID
	// Name - membership plan name
	Name string
	// UserID - owning user
	UserID int64
	// RecurringPrice - price charged every billing period
	RecurringPrice decimal.Decimal
	// PaymentMethod - cash or credit card
	PaymentMethod PaymentMethod
	// BillingInterval - weekly, monthly or yearly
	BillingInterval BillingInterval
	// BillingPeriods - number of billing periods
	BillingPeriods int
	// ValidFrom - first day of the membership (inclusive)
	ValidFrom time.Time
	// ValidUntil - end of the membership (exclusive)
	ValidUntil time.Time
	// State - stored state; only terminated is authoritative, the rest is derived on read
	State State
	// AssignedBy - optional annotation of who assigned the membership
	AssignedBy *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// MembershipPeriod - one billing cycle of a membership
type MembershipPeriod struct {
	ID           int64
	UUID         strfmt.UUID
	MembershipID int64
	// Start - period start (inclusive)
	Start time.Time
	// End - period end (exclusive), equals the next period's start
	End   time.Time
	State State
}

// MembershipWithPeriods - a membership together with its ordered periods
type MembershipWithPeriods struct {
	Membership *Membership
	Periods    []*MembershipPeriod
}

// MembershipRequest - raw creation request, every field may be absent
type MembershipRequest struct {
	Name            *string
	RecurringPrice  *decimal.Decimal
	PaymentMethod   *string
	BillingInterval *string
	BillingPeriods  *int64
	ValidFrom       *string
	AssignedBy      *string
}

// NewMembership - validated and normalized creation command
type NewMembership struct {
	Name            string
	RecurringPrice  decimal.Decimal
	PaymentMethod   PaymentMethod
	BillingInterval BillingInterval
	BillingPeriods  int
	ValidFrom       time.Time
	AssignedBy      *string
}
