package checkout_result

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CabinReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-CabinReservationService/internal/integrations/checkout"
	"github.com/m04kA/SMC-CabinReservationService/pkg/logger"
)

type fakeResolver struct {
	userID  int64
	orderID string
	outcome *checkout.Outcome
	result  *checkout.Result
	err     error
}

func (f *fakeResolver) Resolve(_ context.Context, userID int64, orderID string, outcome *checkout.Outcome) (*checkout.Result, error) {
	f.userID, f.orderID, f.outcome = userID, orderID, outcome
	return f.result, f.err
}

func serve(resolver *fakeResolver, body string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.Use(middleware.Auth)
	r.HandleFunc("/checkouts/{orderId}/result", NewHandler(resolver, logger.NewNop()).Handle).Methods(http.MethodPost)

	req := httptest.NewRequest(http.MethodPost, "/checkouts/order_1/result", strings.NewReader(body))
	req.Header.Set(middleware.HeaderUserID, "42")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	resolver := &fakeResolver{result: &checkout.Result{OrderID: "order_1", PaymentID: "pay_1"}}

	rec := serve(resolver, `{"razorpay_payment_id":"pay_1","razorpay_order_id":"order_1","razorpay_signature":"sig"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp OutcomeResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "paid", resp.Status)

	assert.Equal(t, int64(42), resolver.userID)
	assert.Equal(t, "order_1", resolver.orderID)
	assert.Equal(t, "pay_1", resolver.outcome.PaymentID)
	assert.Equal(t, "sig", resolver.outcome.Signature)
	assert.False(t, resolver.outcome.Failed)
}

func TestHandle_PaymentFailedEvent(t *testing.T) {
	resolver := &fakeResolver{result: &checkout.Result{OrderID: "order_1", Failed: true, Description: "Card declined"}}

	rec := serve(resolver, `{"event":"payment.failed","error":{"code":"BAD_REQUEST_ERROR","description":"Card declined","source":"bank"}}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resolver.outcome.Failed)
	assert.Equal(t, "Card declined", resolver.outcome.ErrorDescription)
	assert.Contains(t, rec.Body.String(), `"failed"`)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "unknown session", err: checkout.ErrSessionNotFound, wantStatus: http.StatusNotFound},
		{name: "expired session", err: checkout.ErrSessionExpired, wantStatus: http.StatusGone},
		{name: "already resolved", err: checkout.ErrAlreadyResolved, wantStatus: http.StatusConflict},
		{name: "verify unavailable", err: checkout.ErrVerify, wantStatus: http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&fakeResolver{err: tt.err}, `{"razorpay_payment_id":"pay_1"}`)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}

	rec := serve(&fakeResolver{}, `{`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_OversizedBody(t *testing.T) {
	resolver := &fakeResolver{result: &checkout.Result{OrderID: "order_1", PaymentID: "pay_1"}}

	body := `{"razorpay_payment_id":"` + strings.Repeat("a", 2<<20) + `"}`
	rec := serve(resolver, body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, resolver.outcome, "resolver must not be called")
}
