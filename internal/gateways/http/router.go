package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-openapi/strfmt"
	"github.com/shopspring/decimal"

	"memberships/internal/entity"
	"memberships/internal/entity/generated"
	"memberships/internal/usecase"
	"memberships/internal/validation"
)

func setupRouter(r *gin.Engine, u UseCases, log *slog.Logger) {
	r.HandleMethodNotAllowed = true

	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	h := &handlers{u: u, log: log}
	setupMemberships(r, h)
	setupMembershipsID(r, h)
}

type handlers struct {
	u   UseCases
	log *slog.Logger
}

func setupMemberships(r *gin.Engine, h *handlers) {
	r.GET("/memberships", func(c *gin.Context) {
		if !requireAcceptJSON(c) {
			return
		}
		list, err := h.u.Membership.ListMemberships(c.Request.Context())
		if err != nil {
			h.writeError(c, err)
			return
		}

		resp := make([]*generated.MembershipWithPeriods, 0, len(list))
		for _, m := range list {
			resp = append(resp, &generated.MembershipWithPeriods{
				Membership: toMembershipModel(m.Membership),
				Periods:    toPeriodModels(m.Periods),
			})
		}
		c.JSON(http.StatusOK, resp)
	})

	r.POST("/memberships", func(c *gin.Context) {
		if !requireAcceptJSON(c) {
			return
		}
		if c.ContentType() != "" && c.ContentType() != "application/json" {
			c.JSON(http.StatusUnsupportedMediaType, generated.Message{Message: "Use application/json"})
			return
		}

		var input *generated.MembershipInput
		if err := c.ShouldBindJSON(&input); err != nil || input == nil {
			c.JSON(http.StatusBadRequest, generated.Message{Message: "invalid request body"})
			return
		}

		created, err := h.u.Membership.CreateMembership(c.Request.Context(), toMembershipRequest(input))
		if err != nil {
			h.writeError(c, err)
			return
		}

		c.JSON(http.StatusCreated, generated.CreatedMembership{
			Membership:        toMembershipModel(created.Membership),
			MembershipPeriods: toPeriodModels(created.Periods),
		})
	})

	r.OPTIONS("/memberships", func(c *gin.Context) {
		c.Writer.Header().Set("Allow", "POST,OPTIONS,GET")
		c.Status(http.StatusNoContent)
	})
}

func setupMembershipsID(r *gin.Engine, h *handlers) {
	r.GET("/memberships/:id", func(c *gin.Context) {
		if !requireAcceptJSON(c) {
			return
		}
		id, ok := parseID(c)
		if !ok {
			return
		}

		m, err := h.u.Membership.GetMembership(c.Request.Context(), id)
		if errors.Is(err, usecase.ErrMembershipNotFound) {
			c.JSON(http.StatusNotFound, generated.Message{Message: fmt.Sprintf("Membership with ID %d not found", id)})
			return
		}
		if err != nil {
			h.writeError(c, err)
			return
		}

		c.JSON(http.StatusOK, generated.MembershipWithPeriods{
			Membership: toMembershipModel(m.Membership),
			Periods:    toPeriodModels(m.Periods),
		})
	})

	r.POST("/memberships/:id/terminate", func(c *gin.Context) {
		if !requireAcceptJSON(c) {
			return
		}
		id, ok := parseID(c)
		if !ok {
			return
		}

		err := h.u.Membership.TerminateMembership(c.Request.Context(), id)
		if errors.Is(err, usecase.ErrMembershipNotFound) {
			c.JSON(http.StatusNotFound, generated.Message{Message: fmt.Sprintf("Membership with ID %d not found", id)})
			return
		}
		if err != nil {
			h.writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, generated.Message{Message: "Membership terminated successfully"})
	})

	r.DELETE("/memberships/:id", func(c *gin.Context) {
		if !requireAcceptJSON(c) {
			return
		}
		id, ok := parseID(c)
		if !ok {
			return
		}

		_, err := h.u.Membership.DeleteMembership(c.Request.Context(), id)
		if errors.Is(err, usecase.ErrMembershipNotFound) {
			c.JSON(http.StatusNotFound, generated.Message{Message: fmt.Sprintf("Membership with ID %d not found", id)})
			return
		}
		if err != nil {
			h.writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, generated.Message{
			Message: fmt.Sprintf("Membership with ID %d has been successfully deleted", id),
		})
	})

	r.OPTIONS("/memberships/:id", func(c *gin.Context) {
		c.Writer.Header().Set("Allow", "GET,DELETE,OPTIONS")
		c.Status(http.StatusNoContent)
	})

	r.OPTIONS("/memberships/:id/terminate", func(c *gin.Context) {
		c.Writer.Header().Set("Allow", "POST,OPTIONS")
		c.Status(http.StatusNoContent)
	})
}

// writeError maps use case errors to status codes and message bodies.
func (h *handlers) writeError(c *gin.Context, err error) {
	var verr *validation.Error
	var terr *usecase.TerminationError

	switch {
	case errors.As(err, &verr):
		msg := generated.Message{Message: string(verr.Code())}
		if h.u.Membership.ValidationMode() == validation.ModeAll {
			for _, code := range verr.Codes() {
				msg.Errors = append(msg.Errors, string(code))
			}
		}
		c.JSON(http.StatusBadRequest, msg)
	case errors.As(err, &terr):
		c.JSON(http.StatusBadRequest, generated.Message{Message: "Termination not allowed: " + terr.Reason.Error()})
	case errors.Is(err, usecase.ErrInvalidID):
		c.JSON(http.StatusBadRequest, generated.Message{Message: "invalid id"})
	case errors.Is(err, usecase.ErrMembershipNotFound):
		c.JSON(http.StatusNotFound, generated.Message{Message: "Membership not found"})
	case errors.Is(err, usecase.ErrInvalidMembership):
		c.JSON(http.StatusBadRequest, generated.Message{Message: "invalid membership"})
	default:
		h.log.Error("request failed",
			slog.String("path", c.FullPath()),
			slog.String("error", err.Error()),
		)
		c.JSON(http.StatusInternalServerError, generated.Message{Message: "internal error"})
	}
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, generated.Message{Message: "invalid id"})
		return 0, false
	}
	return id, true
}

func toMembershipRequest(in *generated.MembershipInput) *entity.MembershipRequest {
	req := &entity.MembershipRequest{
		Name:            in.Name,
		PaymentMethod:   in.PaymentMethod,
		BillingInterval: in.BillingInterval,
		BillingPeriods:  in.BillingPeriods,
		ValidFrom:       in.ValidFrom,
		AssignedBy:      in.AssignedBy,
	}
	if in.RecurringPrice != nil {
		price := decimal.NewFromFloat(*in.RecurringPrice)
		req.RecurringPrice = &price
	}
	return req
}

func toMembershipModel(m *entity.Membership) *generated.Membership {
	if m == nil {
		return nil
	}
	out := &generated.Membership{
		ID:              m.ID,
		UUID:            m.UUID,
		Name:            m.Name,
		UserID:          m.UserID,
		RecurringPrice:  m.RecurringPrice.InexactFloat64(),
		PaymentMethod:   string(m.PaymentMethod),
		BillingInterval: string(m.BillingInterval),
		BillingPeriods:  int64(m.BillingPeriods),
		ValidFrom:       strfmt.Date(m.ValidFrom),
		ValidUntil:      strfmt.Date(m.ValidUntil),
		State:           string(m.State),
	}
	if m.AssignedBy != nil {
		out.AssignedBy = *m.AssignedBy
	}
	return out
}

func toPeriodModels(periods []*entity.MembershipPeriod) []*generated.MembershipPeriod {
	out := make([]*generated.MembershipPeriod, 0, len(periods))
	for _, p := range periods {
		out = append(out, &generated.MembershipPeriod{
			ID:           p.ID,
			UUID:         p.UUID,
			MembershipID: p.MembershipID,
			Start:        strfmt.Date(p.Start),
			End:          strfmt.Date(p.End),
			State:        string(p.State),
		})
	}
	return out
}

func acceptsJSON(h string) bool {
	if h == "" || h == "*/*" {
		return true
	}
	parts := strings.Split(h, ",")
	for _, p := range parts {
		mt := strings.TrimSpace(strings.SplitN(p, ";", 2)[0])
		if mt == "application/json" || mt == "*/*" {
			return true
		}
	}
	return false
}

func requireAcceptJSON(c *gin.Context) bool {
	if acceptsJSON(c.GetHeader("Accept")) {
		return true
	}
	c.JSON(http.StatusNotAcceptable, generated.Message{Message: "Accept application/json only"})
	return false
}
