package razorpay

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CabinReservationService/internal/integrations/checkout"
	"github.com/m04kA/SMC-CabinReservationService/pkg/logger"
)

func TestClient_CreateOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/orders", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "rzp_key", user)
		assert.Equal(t, "secret", pass)

		var body orderRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, int64(24000), body.Amount)
		assert.Equal(t, "INR", body.Currency)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(OrderResponse{
			ID: "order_1", Entity: "order", Amount: body.Amount, Currency: body.Currency, Status: "created",
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "rzp_key", "secret", time.Second, logger.NewNop())
	order, err := c.CreateOrder(context.Background(), &checkout.OrderRequest{AmountMinor: 24000, Currency: "INR", Receipt: "r1"})

	require.NoError(t, err)
	assert.Equal(t, "order_1", order.ID)
	assert.Equal(t, int64(24000), order.AmountMinor)
	assert.Equal(t, "INR", order.Currency)
}

func TestClient_CreateOrder_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, body: `{}`, wantErr: ErrUnauthorized},
		{name: "bad request", status: http.StatusBadRequest, body: `{"error":{"code":"BAD_REQUEST_ERROR","description":"amount invalid"}}`, wantErr: ErrInvalidResponse},
		{name: "empty id", status: http.StatusOK, body: `{"id":""}`, wantErr: ErrInvalidResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := NewClient(srv.URL, "k", "s", time.Second, logger.NewNop())
			_, err := c.CreateOrder(context.Background(), &checkout.OrderRequest{AmountMinor: 100, Currency: "INR"})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClient_VerifyPayment(t *testing.T) {
	c := NewClient("http://unused", "k", "secret", time.Second, logger.NewNop())
	ctx := context.Background()

	valid := Signature("order_1", "pay_1", "secret")

	paymentID, err := c.VerifyPayment(ctx, "order_1", &checkout.Outcome{PaymentID: "pay_1", OrderID: "order_1", Signature: valid})
	require.NoError(t, err)
	assert.Equal(t, "pay_1", paymentID)

	_, err = c.VerifyPayment(ctx, "order_1", &checkout.Outcome{PaymentID: "pay_1", Signature: "deadbeef"})
	assert.ErrorIs(t, err, checkout.ErrVerificationFailed)

	_, err = c.VerifyPayment(ctx, "order_1", &checkout.Outcome{Signature: valid})
	assert.ErrorIs(t, err, checkout.ErrVerificationFailed)

	_, err = c.VerifyPayment(ctx, "order_1", &checkout.Outcome{PaymentID: "pay_1", OrderID: "order_2", Signature: valid})
	assert.ErrorIs(t, err, checkout.ErrVerificationFailed)
}
