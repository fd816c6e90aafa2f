// Package validation checks membership creation requests against an
// ordered list of rules and turns valid requests into typed commands.
package validation

import (
	"errors"
	"fmt"
	"strings"
	"time"

	oaerrors "github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"

	"memberships/internal/entity"
)

// Mode selects how many failures the engine reports.
type Mode string

const (
	// ModeFirst stops at the highest-priority failing rule.
	ModeFirst Mode = "first"
	// ModeAll evaluates every rule and reports each failure in priority order.
	ModeAll Mode = "all"
)

// ParseMode converts a configuration value to a Mode; empty means ModeFirst.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeFirst:
		return ModeFirst, nil
	case ModeAll:
		return ModeAll, nil
	default:
		return "", fmt.Errorf("unknown validation mode %q", s)
	}
}

// Failure is one failing rule.
type Failure struct {
	Code  Code
	Cause *oaerrors.Validation
}

// Error is returned for a rejected request. Failures are in rule
// priority order and never empty.
type Error struct {
	Failures []Failure
}

func (e *Error) Error() string {
	return string(e.Code())
}

// Code returns the highest-priority failure code.
func (e *Error) Code() Code {
	return e.Failures[0].Code
}

// Codes returns every failure code in priority order.
func (e *Error) Codes() []Code {
	out := make([]Code, 0, len(e.Failures))
	for _, f := range e.Failures {
		out = append(out, f.Code)
	}
	return out
}

// Unwrap exposes the underlying field validation errors.
func (e *Error) Unwrap() error {
	causes := make([]error, 0, len(e.Failures))
	for _, f := range e.Failures {
		if f.Cause != nil {
			causes = append(causes, f.Cause)
		}
	}
	return oaerrors.CompositeValidationError(causes...)
}

// Engine evaluates rules in order. It holds no mutable state and is safe
// for concurrent use.
type Engine struct {
	rules []Rule
	mode  Mode
	now   func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithMode sets the reporting mode.
func WithMode(m Mode) Option {
	return func(e *Engine) {
		if m != "" {
			e.mode = m
		}
	}
}

// WithRules replaces the default rule list.
func WithRules(rules []Rule) Option {
	return func(e *Engine) {
		e.rules = rules
	}
}

// WithClock sets the clock used to default validFrom to today.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// NewEngine builds an engine with DefaultRules in ModeFirst.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		rules: DefaultRules(),
		mode:  ModeFirst,
		now:   time.Now,
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Mode reports the engine's reporting mode.
func (e *Engine) Mode() Mode {
	return e.mode
}

// Validate runs the rules against r and returns the normalized command.
func (e *Engine) Validate(r *entity.MembershipRequest) (*entity.NewMembership, error) {
	if r == nil {
		r = &entity.MembershipRequest{}
	}

	var failures []Failure
	for _, rule := range e.rules {
		cause := rule.Check(r)
		if cause == nil {
			continue
		}
		failures = append(failures, Failure{Code: rule.code(r), Cause: cause})
		if e.mode != ModeAll {
			break
		}
	}
	if len(failures) > 0 {
		return nil, &Error{Failures: failures}
	}

	return e.normalize(r)
}

func (e *Engine) normalize(r *entity.MembershipRequest) (*entity.NewMembership, error) {
	validFrom := today(e.now())
	if r.ValidFrom != nil {
		d, err := ParseDate(*r.ValidFrom)
		if err != nil {
			return nil, &Error{Failures: []Failure{{
				Code:  CodeValidFromMustBeAValidDate,
				Cause: oaerrors.InvalidType("validFrom", in, "date", *r.ValidFrom),
			}}}
		}
		validFrom = d
	}

	cmd := &entity.NewMembership{
		Name:            strings.TrimSpace(*r.Name),
		RecurringPrice:  *r.RecurringPrice,
		PaymentMethod:   normalizePaymentMethod(*r.PaymentMethod),
		BillingInterval: entity.BillingInterval(strings.TrimSpace(*r.BillingInterval)),
		BillingPeriods:  int(*r.BillingPeriods),
		ValidFrom:       validFrom,
	}
	if r.AssignedBy != nil {
		if a := strings.TrimSpace(*r.AssignedBy); a != "" {
			cmd.AssignedBy = &a
		}
	}
	return cmd, nil
}

// ParseDate accepts a full date (2006-01-02) or an RFC 3339 date-time,
// and returns midnight UTC of that date.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errors.New("empty date")
	}
	var d strfmt.Date
	if err := d.UnmarshalText([]byte(s)); err == nil {
		return today(time.Time(d)), nil
	}
	dt, err := strfmt.ParseDateTime(s)
	if err != nil {
		return time.Time{}, err
	}
	return today(time.Time(dt)), nil
}

func today(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
