package cart

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"portfolio/internal/dto"
	apperrors "portfolio/internal/errors"
	"portfolio/internal/web"
)

type Controller struct {
	useCase UseCase
	logger  *zap.Logger
}

func NewController(useCase UseCase, logger *zap.Logger) *Controller {
	return &Controller{
		useCase: useCase,
		logger:  logger,
	}
}

func (c *Controller) HandleGetCart(w http.ResponseWriter, r *http.Request) {
	sess, ok := web.RequireSession(w, r, c.logger)
	if !ok {
		return
	}

	resp, err := c.useCase.GetCart(r.Context(), sess)
	if err != nil {
		web.HandleError(w, r, c.logger, err)
		return
	}

	web.WriteJSON(w, c.logger, http.StatusOK, resp)
}

func (c *Controller) HandleAddItem(w http.ResponseWriter, r *http.Request) {
	sess, ok := web.RequireSession(w, r, c.logger)
	if !ok {
		return
	}

	var req dto.AddItemRequest
	if !web.DecodeJSON(w, r, c.logger, &req) {
		return
	}

	if req.ServiceID <= 0 {
		msg := "serviceId must be a positive integer"
		if req.ServiceID == 0 {
			msg = "serviceId is required"
		}
		web.WriteValidationError(w, r, c.logger, "validation failed", apperrors.ValidationDetail{
			Field:   "serviceId",
			Message: msg,
		})
		return
	}

	resp, err := c.useCase.AddItem(r.Context(), sess, req.ServiceID)
	if err != nil {
		web.HandleError(w, r, c.logger, err)
		return
	}

	web.WriteJSON(w, c.logger, http.StatusCreated, resp)
}

func (c *Controller) HandleRemoveItem(w http.ResponseWriter, r *http.Request) {
	sess, ok := web.RequireSession(w, r, c.logger)
	if !ok {
		return
	}

	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil || index < 0 {
		web.WriteValidationError(w, r, c.logger, "invalid index", apperrors.ValidationDetail{
			Field:   "index",
			Message: "index must be a non-negative integer",
		})
		return
	}

	resp, err := c.useCase.RemoveItem(r.Context(), sess, index)
	if err != nil {
		web.HandleError(w, r, c.logger, err)
		return
	}

	web.WriteJSON(w, c.logger, http.StatusOK, resp)
}
