package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "bistroboss/internal/errors"
	"bistroboss/internal/model"
)

func TestPaymentHandler_CreateChargeIntent(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMock  func(*MockPaymentService)
		wantStatus int
	}{
		{
			name: "returns client secret",
			body: `{"price":19.99}`,
			setupMock: func(m *MockPaymentService) {
				m.On("CreateChargeIntent", mock.Anything, 19.99).Return("pi_1_secret_abc", nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "zero price",
			body:       `{"price":0}`,
			setupMock:  func(m *MockPaymentService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "price is not a number",
			body:       `{"price":"cheap"}`,
			setupMock:  func(m *MockPaymentService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "provider rejects",
			body: `{"price":5}`,
			setupMock: func(m *MockPaymentService) {
				m.On("CreateChargeIntent", mock.Anything, 5.0).Return("", fmt.Errorf("%w: card_declined", apperrors.ErrChargeFailed))
			},
			wantStatus: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockPaymentService)
			tt.setupMock(svc)
			c, rec := newContext(newTestEcho(), http.MethodPost, "/create-payment-intent", tt.body)

			err := NewPaymentHandler(svc).CreateChargeIntent(c)

			if tt.wantStatus == http.StatusOK {
				require.NoError(t, err)
				assert.JSONEq(t, `{"clientSecret":"pi_1_secret_abc"}`, rec.Body.String())
			} else {
				assert.Equal(t, tt.wantStatus, httpStatus(err))
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestPaymentHandler_RecordPayment(t *testing.T) {
	svc := new(MockPaymentService)
	svc.On("RecordPayment", mock.Anything, mock.MatchedBy(func(p *model.Payment) bool {
		return p.Email == "a@bistro.test" &&
			p.TransactionID == "pi_1" &&
			len(p.CartIDs) == 2 &&
			p.Date.Year() == 2026
	})).Return(&model.PaymentRecordResult{
		PaymentResult: &model.InsertResult{Acknowledged: true, InsertedID: "p1"},
		DeleteResult:  &model.DeleteResult{Acknowledged: true, DeletedCount: 2},
	}, nil)
	body := `{"email":"a@bistro.test","price":16,"transactionId":"pi_1","date":"2026-10-17T12:00:00Z",` +
		`"cartIds":["64b0c0ffee64b0c0ffee64b0","64b0c0ffee64b0c0ffee64b1"],"menuItemIds":["m1","m2"],"status":"pending"}`
	c, rec := newContext(newTestEcho(), http.MethodPost, "/payments", body)

	require.NoError(t, NewPaymentHandler(svc).RecordPayment(c))

	assert.JSONEq(t, `{"paymentResult":{"acknowledged":true,"insertedId":"p1"},"deleteResult":{"acknowledged":true,"deletedCount":2}}`, rec.Body.String())
	svc.AssertExpectations(t)
}

func TestPaymentHandler_RecordPayment_InvalidCartID(t *testing.T) {
	svc := new(MockPaymentService)
	svc.On("RecordPayment", mock.Anything, mock.Anything).Return(nil, apperrors.ErrInvalidID)
	c, _ := newContext(newTestEcho(), http.MethodPost, "/payments", `{"email":"a@bistro.test","cartIds":["bogus"]}`)

	err := NewPaymentHandler(svc).RecordPayment(c)

	assert.Equal(t, http.StatusBadRequest, httpStatus(err))
}

func TestPaymentHandler_ListPayments(t *testing.T) {
	svc := new(MockPaymentService)
	svc.On("ListPayments", mock.Anything, "a@bistro.test").Return([]model.Payment{}, nil)
	c, rec := newContext(newTestEcho(), http.MethodGet, "/payments/a@bistro.test", "")
	c.SetParamNames("email")
	c.SetParamValues("a@bistro.test")

	require.NoError(t, NewPaymentHandler(svc).ListPayments(c))

	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestPaymentHandler_ListPayments_EncodedEmail(t *testing.T) {
	svc := new(MockPaymentService)
	svc.On("ListPayments", mock.Anything, "a@bistro.test").Return([]model.Payment{{Email: "a@bistro.test"}}, nil)
	c, rec := newContext(newTestEcho(), http.MethodGet, "/payments/a%40bistro.test", "")
	c.SetParamNames("email")
	c.SetParamValues("a%40bistro.test")

	require.NoError(t, NewPaymentHandler(svc).ListPayments(c))

	assert.Contains(t, rec.Body.String(), `"email":"a@bistro.test"`)
	svc.AssertExpectations(t)
}
