// Package contact handles the site's contact form.
package contact

import (
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"portfolio/internal/domain"
	"portfolio/internal/dto"
	apperrors "portfolio/internal/errors"
	"portfolio/internal/web"
)

type Dispatcher interface {
	SubmitContact(ctx context.Context, req domain.ContactRequest) domain.DispatchResult
}

type Controller struct {
	dispatcher Dispatcher
	logger     *zap.Logger
}

func NewController(dispatcher Dispatcher, logger *zap.Logger) *Controller {
	return &Controller{
		dispatcher: dispatcher,
		logger:     logger,
	}
}

func (c *Controller) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	var req dto.ContactRequest
	if !web.DecodeJSON(w, r, c.logger, &req) {
		return
	}

	if err := validate(req); err != nil {
		web.HandleError(w, r, c.logger, err)
		return
	}

	result := c.dispatcher.SubmitContact(context.WithoutCancel(r.Context()), domain.ContactRequest{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Message: strings.TrimSpace(req.Message),
	})

	c.logger.Info("contact message submitted",
		zap.String("traceId", web.TraceID(r.Context())),
		zap.String("outcome", string(result.Outcome)),
		zap.Bool("success", result.Success),
	)

	web.WriteJSON(w, c.logger, http.StatusOK, dto.DispatchResponse{
		Success: result.Success,
		Message: result.Message,
		Outcome: string(result.Outcome),
	})
}

func validate(req dto.ContactRequest) error {
	var details []apperrors.ValidationDetail

	if strings.TrimSpace(req.Name) == "" {
		details = append(details, apperrors.ValidationDetail{Field: "name", Message: "Name is required"})
	}

	if !domain.IsValidEmail(strings.TrimSpace(req.Email)) {
		details = append(details, apperrors.ValidationDetail{Field: "email", Message: "Valid email is required"})
	}

	if strings.TrimSpace(req.Message) == "" {
		details = append(details, apperrors.ValidationDetail{Field: "message", Message: "Message is required"})
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}
	return nil
}
