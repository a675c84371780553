package catalog

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

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

func (c *Controller) HandleListServices(w http.ResponseWriter, r *http.Request) {
	resp, err := c.useCase.ListServices(r.Context())
	if err != nil {
		web.HandleError(w, r, c.logger, err)
		return
	}

	web.WriteJSON(w, c.logger, http.StatusOK, resp)
}

func (c *Controller) HandleGetService(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "serviceId"))
	if err != nil || id <= 0 {
		web.WriteValidationError(w, r, c.logger, "invalid serviceId", apperrors.ValidationDetail{
			Field:   "serviceId",
			Message: "serviceId must be a positive integer",
		})
		return
	}

	resp, err := c.useCase.GetService(r.Context(), id)
	if err != nil {
		web.HandleError(w, r, c.logger, err)
		return
	}

	web.WriteJSON(w, c.logger, http.StatusOK, resp)
}

func (c *Controller) HandleProfile(w http.ResponseWriter, r *http.Request) {
	resp, err := c.useCase.GetProfile(r.Context())
	if err != nil {
		web.HandleError(w, r, c.logger, err)
		return
	}

	web.WriteJSON(w, c.logger, http.StatusOK, resp)
}
