package controller

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"portfolio/internal/dto"
	apperrors "portfolio/internal/errors"
	"portfolio/internal/session"
	"portfolio/internal/web"
)

type CheckoutUseCase interface {
	Get(ctx context.Context, sess *session.Session) (*dto.CheckoutResponse, error)
	Open(ctx context.Context, sess *session.Session) (*dto.CheckoutResponse, error)
	Proceed(ctx context.Context, sess *session.Session) (*dto.CheckoutResponse, error)
	Back(ctx context.Context, sess *session.Session) (*dto.CheckoutResponse, error)
	UpdateForm(ctx context.Context, sess *session.Session, req dto.UpdateFormRequest) (*dto.CheckoutResponse, error)
	Submit(ctx context.Context, sess *session.Session) (*dto.CheckoutResponse, error)
	Close(ctx context.Context, sess *session.Session) (*dto.CheckoutResponse, error)
	GetOrder(ctx context.Context, sess *session.Session, orderID string) (*dto.OrderResponse, error)
}

type CheckoutController struct {
	useCase CheckoutUseCase
	logger  *zap.Logger
}

func NewCheckoutController(useCase CheckoutUseCase, logger *zap.Logger) *CheckoutController {
	return &CheckoutController{
		useCase: useCase,
		logger:  logger,
	}
}

type transition func(ctx context.Context, sess *session.Session) (*dto.CheckoutResponse, error)

func (c *CheckoutController) GetCheckout(w http.ResponseWriter, r *http.Request) {
	c.handle(w, r, c.useCase.Get)
}

func (c *CheckoutController) Open(w http.ResponseWriter, r *http.Request) {
	c.handle(w, r, c.useCase.Open)
}

func (c *CheckoutController) Proceed(w http.ResponseWriter, r *http.Request) {
	c.handle(w, r, c.useCase.Proceed)
}

func (c *CheckoutController) Back(w http.ResponseWriter, r *http.Request) {
	c.handle(w, r, c.useCase.Back)
}

func (c *CheckoutController) Close(w http.ResponseWriter, r *http.Request) {
	c.handle(w, r, c.useCase.Close)
}

func (c *CheckoutController) Submit(w http.ResponseWriter, r *http.Request) {
	c.handle(w, r, c.useCase.Submit)
}

func (c *CheckoutController) UpdateForm(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateFormRequest
	if !web.DecodeJSON(w, r, c.logger, &req) {
		return
	}

	c.handle(w, r, func(ctx context.Context, sess *session.Session) (*dto.CheckoutResponse, error) {
		return c.useCase.UpdateForm(ctx, sess, req)
	})
}

func (c *CheckoutController) GetOrder(w http.ResponseWriter, r *http.Request) {
	sess, ok := web.RequireSession(w, r, c.logger)
	if !ok {
		return
	}

	resp, err := c.useCase.GetOrder(r.Context(), sess, chi.URLParam(r, "orderId"))
	if err != nil {
		web.HandleError(w, r, c.logger, err)
		return
	}

	web.WriteJSON(w, c.logger, http.StatusOK, resp)
}

func (c *CheckoutController) handle(w http.ResponseWriter, r *http.Request, fn transition) {
	sess, ok := web.RequireSession(w, r, c.logger)
	if !ok {
		return
	}

	resp, err := fn(r.Context(), sess)
	if err != nil {
		// form validation failures carry the flow so the client can show
		// the per-field messages
		if ve, isValidation := apperrors.IsValidationError(err); isValidation && resp != nil {
			web.WriteJSON(w, c.logger, http.StatusBadRequest, dto.ValidationErrorResponse{
				TraceID:  web.TraceID(r.Context()),
				Error:    "VALIDATION_ERROR",
				Message:  ve.Message,
				Details:  ve.Details,
				Checkout: resp,
			})
			return
		}
		web.HandleError(w, r, c.logger, err)
		return
	}

	web.WriteJSON(w, c.logger, http.StatusOK, resp)
}
