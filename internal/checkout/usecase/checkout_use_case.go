package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"portfolio/internal/domain"
	"portfolio/internal/dto"
	apperrors "portfolio/internal/errors"
	"portfolio/internal/pricing"
	"portfolio/internal/session"
)

type OrderDispatcher interface {
	SubmitOrder(ctx context.Context, customer domain.CheckoutForm, items []domain.CartLineItem, total domain.Money) domain.DispatchResult
}

type OrderRequestRepository interface {
	Insert(ctx context.Context, order *domain.OrderRequest) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.OrderRequest, error)
}

type Pricer interface {
	ForOffering(o domain.ServiceOffering) pricing.Breakdown
	PayableTotal(items []domain.CartLineItem) domain.Money
}

type Options struct {
	SuccessDelay time.Duration
	FailureDelay time.Duration
	// Now and AfterFunc default to time.Now and time.AfterFunc.
	Now       func() time.Time
	AfterFunc func(d time.Duration, f func())
}

var formFields = []string{domain.FieldName, domain.FieldEmail, domain.FieldPhone}

type CheckoutUseCase struct {
	repo       OrderRequestRepository
	dispatcher OrderDispatcher
	pricer     Pricer
	logger     *zap.Logger
	opts       Options
}

func NewCheckoutUseCase(
	repo OrderRequestRepository,
	dispatcher OrderDispatcher,
	pricer Pricer,
	logger *zap.Logger,
	opts Options,
) *CheckoutUseCase {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.AfterFunc == nil {
		opts.AfterFunc = func(d time.Duration, f func()) { time.AfterFunc(d, f) }
	}

	return &CheckoutUseCase{
		repo:       repo,
		dispatcher: dispatcher,
		pricer:     pricer,
		logger:     logger,
		opts:       opts,
	}
}

func (uc *CheckoutUseCase) Get(ctx context.Context, sess *session.Session) (*dto.CheckoutResponse, error) {
	sess.Lock()
	defer sess.Unlock()

	return uc.respond(sess), nil
}

// Open starts a fresh flow at the summary step. An already open flow is
// left as it is.
func (uc *CheckoutUseCase) Open(ctx context.Context, sess *session.Session) (*dto.CheckoutResponse, error) {
	sess.Lock()
	defer sess.Unlock()

	if sess.Flow == nil {
		sess.Flow = domain.NewCheckoutFlow(uc.opts.Now())
		uc.logger.Info("checkout opened", zap.String("sessionId", sess.ID), zap.String("flowId", sess.Flow.ID.String()))
	}

	return uc.respond(sess), nil
}

func (uc *CheckoutUseCase) Proceed(ctx context.Context, sess *session.Session) (*dto.CheckoutResponse, error) {
	sess.Lock()
	defer sess.Unlock()

	flow, err := uc.editableFlow(sess, domain.StepSummary)
	if err != nil {
		return nil, err
	}

	if sess.Cart.IsEmpty() {
		return nil, apperrors.NewConflictError("cart is empty")
	}

	flow.Step = domain.StepForm
	return uc.respond(sess), nil
}

// Back returns to the summary, keeping whatever was typed into the form.
func (uc *CheckoutUseCase) Back(ctx context.Context, sess *session.Session) (*dto.CheckoutResponse, error) {
	sess.Lock()
	defer sess.Unlock()

	flow, err := uc.editableFlow(sess, domain.StepForm)
	if err != nil {
		return nil, err
	}

	flow.Step = domain.StepSummary
	return uc.respond(sess), nil
}

// UpdateForm sets the given fields and clears only their errors.
func (uc *CheckoutUseCase) UpdateForm(ctx context.Context, sess *session.Session, req dto.UpdateFormRequest) (*dto.CheckoutResponse, error) {
	updates := map[string]*string{
		domain.FieldName:         req.Name,
		domain.FieldEmail:        req.Email,
		domain.FieldPhone:        req.Phone,
		domain.FieldRequirements: req.Requirements,
	}

	sess.Lock()
	defer sess.Unlock()

	flow, err := uc.editableFlow(sess, domain.StepForm)
	if err != nil {
		return nil, err
	}

	changed := 0
	for field, value := range updates {
		if value == nil {
			continue
		}
		flow.Form.Set(field, *value)
		delete(flow.Errors, field)
		changed++
	}

	if changed == 0 {
		return nil, apperrors.NewValidationError("no fields to update", apperrors.ValidationDetail{
			Field:   "body",
			Message: "at least one of name, email, phone or requirements is required",
		})
	}

	return uc.respond(sess), nil
}

// Submit validates the form and hands the order to the dispatcher. On a
// validation failure the flow state is returned along with the error.
// The move to the success step happens after a delay that depends on the
// dispatch result.
func (uc *CheckoutUseCase) Submit(ctx context.Context, sess *session.Session) (*dto.CheckoutResponse, error) {
	sess.Lock()

	flow, err := uc.editableFlow(sess, domain.StepForm)
	if err != nil {
		sess.Unlock()
		return nil, err
	}

	if sess.Cart.IsEmpty() {
		sess.Unlock()
		return nil, apperrors.NewConflictError("cart is empty")
	}

	if errs := flow.Form.Validate(); len(errs) > 0 {
		flow.Errors = errs
		resp := uc.respond(sess)
		sess.Unlock()
		return resp, validationError(errs)
	}

	flow.Errors = domain.FormErrors{}
	flow.IsSubmitting = true
	flowID := flow.ID
	customer := flow.Form
	items := sess.Cart.Items()
	sess.Unlock()

	order, recorded, result := uc.dispatch(ctx, sess.ID, customer, items)

	sess.Lock()
	defer sess.Unlock()

	flow = sess.Flow
	if flow == nil || flow.ID != flowID {
		uc.logger.Info("checkout closed during dispatch, result discarded",
			zap.String("sessionId", sess.ID),
			zap.String("orderId", order.ID.String()),
		)
		return uc.respond(sess), nil
	}

	delay := uc.opts.FailureDelay
	if result.Success {
		delay = uc.opts.SuccessDelay
	}

	flow.IsSubmitting = false
	flow.SubmitMessage = result.Message
	if recorded {
		flow.LastOrderID = order.ID
	}
	flow.PendingStep = domain.StepSuccess
	flow.TransitionAt = uc.opts.Now().Add(delay)

	uc.opts.AfterFunc(delay, func() { uc.completeSubmit(sess, flowID) })

	return uc.respond(sess), nil
}

// Close discards the flow. A dispatch still in flight completes but its
// result is not applied.
func (uc *CheckoutUseCase) Close(ctx context.Context, sess *session.Session) (*dto.CheckoutResponse, error) {
	sess.Lock()
	defer sess.Unlock()

	if sess.Flow != nil {
		uc.logger.Debug("checkout closed", zap.String("sessionId", sess.ID), zap.String("flowId", sess.Flow.ID.String()))
	}
	sess.Flow = nil

	return uc.respond(sess), nil
}

// GetOrder looks up a ledger record submitted from the same session.
func (uc *CheckoutUseCase) GetOrder(ctx context.Context, sess *session.Session, orderID string) (*dto.OrderResponse, error) {
	id, err := uuid.Parse(orderID)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid orderId", apperrors.ValidationDetail{
			Field:   "orderId",
			Message: "orderId must be a UUID",
		})
	}

	order, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if order.SessionID != sess.ID {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("order request with id %s not found", id))
	}

	resp := dto.NewOrderResponse(order)
	return &resp, nil
}

// dispatch runs without the session lock and outlives the request.
// recorded is false when the ledger insert failed.
func (uc *CheckoutUseCase) dispatch(ctx context.Context, sessionID string, customer domain.CheckoutForm, items []domain.CartLineItem) (*domain.OrderRequest, bool, domain.DispatchResult) {
	ctx = context.WithoutCancel(ctx)

	var total domain.Money
	for _, item := range items {
		total += item.ListPrice
	}
	payable := uc.pricer.PayableTotal(items)

	result := uc.dispatcher.SubmitOrder(ctx, customer, items, payable)

	order := &domain.OrderRequest{
		ID:           uuid.New(),
		SessionID:    sessionID,
		Customer:     customer,
		Items:        items,
		Total:        total,
		PayableTotal: payable,
		Outcome:      result.Outcome,
		Message:      result.Message,
		CreatedAt:    uc.opts.Now().UTC(),
	}

	recorded := true
	if err := uc.repo.Insert(ctx, order); err != nil {
		recorded = false
		uc.logger.Error("failed to record order request", zap.String("orderId", order.ID.String()), zap.Error(err))
	}

	uc.logger.Info("order submitted",
		zap.String("sessionId", sessionID),
		zap.String("orderId", order.ID.String()),
		zap.String("outcome", string(result.Outcome)),
		zap.Bool("success", result.Success),
		zap.Bool("recorded", recorded),
		zap.Int("itemCount", len(items)),
		zap.Int64("payableTotal", int64(payable)),
	)

	return order, recorded, result
}

func (uc *CheckoutUseCase) completeSubmit(sess *session.Session, flowID uuid.UUID) {
	sess.Lock()
	defer sess.Unlock()

	flow := sess.Flow
	if flow == nil || flow.ID != flowID || flow.PendingStep != domain.StepSuccess {
		return
	}

	flow.Step = domain.StepSuccess
	flow.Form = domain.CheckoutForm{}
	flow.Errors = domain.FormErrors{}
	flow.PendingStep = ""
	flow.TransitionAt = time.Time{}
}

// editableFlow returns the open flow when it is at step and no submission
// is in progress or awaiting its transition.
func (uc *CheckoutUseCase) editableFlow(sess *session.Session, step domain.CheckoutStep) (*domain.CheckoutFlow, error) {
	flow := sess.Flow
	if flow == nil {
		return nil, apperrors.NewConflictError("checkout is not open")
	}
	if flow.IsSubmitting || flow.PendingStep != "" {
		return nil, apperrors.NewConflictError("order is already being submitted")
	}
	if flow.Step != step {
		return nil, apperrors.NewConflictError(fmt.Sprintf("checkout is at step %s, expected %s", flow.Step, step))
	}
	return flow, nil
}

func (uc *CheckoutUseCase) respond(sess *session.Session) *dto.CheckoutResponse {
	cart := dto.NewCartResponse(&sess.Cart, uc.pricer)
	return dto.NewCheckoutResponse(sess.Flow, &cart)
}

func validationError(errs domain.FormErrors) error {
	details := make([]apperrors.ValidationDetail, 0, len(errs))
	for _, field := range formFields {
		if msg, ok := errs[field]; ok {
			details = append(details, apperrors.ValidationDetail{Field: field, Message: msg})
		}
	}
	return apperrors.NewValidationError("validation failed", details...)
}
