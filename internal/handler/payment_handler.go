package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"bistroboss/internal/model"
	"bistroboss/internal/service"
)

// PaymentHandler handles payment endpoints.
type PaymentHandler struct {
	paymentService service.PaymentService
}

// NewPaymentHandler creates a new payment handler.
func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// ChargeIntentRequest represents a charge intent request. Price is in major currency units.
type ChargeIntentRequest struct {
	Price float64 `json:"price" validate:"required,gt=0"`
}

// ChargeIntentResponse carries the provider secret the client confirms the card payment with.
type ChargeIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// CreateChargeIntent godoc
// @Summary Create a card charge intent
// @Tags payments
// @Accept json
// @Produce json
// @Param request body ChargeIntentRequest true "Order total"
// @Success 200 {object} ChargeIntentResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /create-payment-intent [post]
func (h *PaymentHandler) CreateChargeIntent(c echo.Context) error {
	var req ChargeIntentRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody()
	}

	if err := c.Validate(&req); err != nil {
		return validationError(err)
	}

	secret, err := h.paymentService.CreateChargeIntent(c.Request().Context(), req.Price)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, ChargeIntentResponse{ClientSecret: secret})
}

// RecordPayment godoc
// @Summary Record a confirmed payment
// @Description Stores the payment, then deletes the cart items listed in cartIds.
// @Tags payments
// @Accept json
// @Produce json
// @Param payment body model.Payment true "Payment"
// @Success 200 {object} model.PaymentRecordResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /payments [post]
func (h *PaymentHandler) RecordPayment(c echo.Context) error {
	var payment model.Payment
	if err := c.Bind(&payment); err != nil {
		return invalidBody()
	}
	payment.ID = primitive.NilObjectID

	res, err := h.paymentService.RecordPayment(c.Request().Context(), &payment)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

// ListPayments godoc
// @Summary Payment history of the caller
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param email path string true "Caller email"
// @Success 200 {array} model.Payment
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 500 {object} errors.ErrorResponse
// @Router /payments/{email} [get]
func (h *PaymentHandler) ListPayments(c echo.Context) error {
	email, err := emailParam(c)
	if err != nil {
		return err
	}

	payments, err := h.paymentService.ListPayments(c.Request().Context(), email)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, payments)
}
