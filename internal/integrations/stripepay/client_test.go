package stripepay

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"

	"github.com/m04kA/SMC-CabinReservationService/internal/integrations/checkout"
	"github.com/m04kA/SMC-CabinReservationService/pkg/logger"
)

type fakeIntents struct {
	created   *stripe.PaymentIntentParams
	newResult *stripe.PaymentIntent
	newErr    error
	getResult *stripe.PaymentIntent
	getErr    error
}

func (f *fakeIntents) New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
	f.created = params
	return f.newResult, f.newErr
}

func (f *fakeIntents) Get(_ string, _ *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
	return f.getResult, f.getErr
}

func TestClient_CreateOrder(t *testing.T) {
	intents := &fakeIntents{newResult: &stripe.PaymentIntent{
		ID: "pi_1", Amount: 24000, Currency: "inr", ClientSecret: "pi_1_secret",
	}}
	c := NewWithIntents(intents, logger.NewNop())

	order, err := c.CreateOrder(context.Background(), &checkout.OrderRequest{
		AmountMinor: 24000,
		Currency:    "INR",
		Receipt:     "r1",
		Description: "Booking for 3 nights",
		Notes:       map[string]string{"cabinId": "7"},
	})

	require.NoError(t, err)
	assert.Equal(t, "pi_1", order.ID)
	assert.Equal(t, int64(24000), order.AmountMinor)
	assert.Equal(t, "INR", order.Currency)
	assert.Equal(t, "pi_1_secret", order.ClientSecret)

	require.NotNil(t, intents.created)
	assert.Equal(t, int64(24000), *intents.created.Amount)
	assert.Equal(t, "inr", *intents.created.Currency)
	assert.Equal(t, "7", intents.created.Metadata["cabinId"])
	assert.Equal(t, "r1", intents.created.Metadata["receipt"])
}

func TestClient_CreateOrder_Error(t *testing.T) {
	c := NewWithIntents(&fakeIntents{newErr: errors.New("boom")}, logger.NewNop())

	_, err := c.CreateOrder(context.Background(), &checkout.OrderRequest{AmountMinor: 100, Currency: "INR"})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestClient_VerifyPayment(t *testing.T) {
	tests := []struct {
		name    string
		intents *fakeIntents
		wantID  string
		wantErr error
	}{
		{
			name: "succeeded with charge",
			intents: &fakeIntents{getResult: &stripe.PaymentIntent{
				ID: "pi_1", Status: stripe.PaymentIntentStatusSucceeded, LatestCharge: &stripe.Charge{ID: "ch_1"},
			}},
			wantID: "ch_1",
		},
		{
			name: "succeeded without charge",
			intents: &fakeIntents{getResult: &stripe.PaymentIntent{
				ID: "pi_1", Status: stripe.PaymentIntentStatusSucceeded,
			}},
			wantID: "pi_1",
		},
		{
			name: "requires payment method",
			intents: &fakeIntents{getResult: &stripe.PaymentIntent{
				ID: "pi_1", Status: stripe.PaymentIntentStatusRequiresPaymentMethod,
			}},
			wantErr: checkout.ErrVerificationFailed,
		},
		{
			name: "processing",
			intents: &fakeIntents{getResult: &stripe.PaymentIntent{
				ID: "pi_1", Status: stripe.PaymentIntentStatusProcessing,
			}},
			wantErr: ErrPaymentProcessing,
		},
		{
			name:    "not found",
			intents: &fakeIntents{getErr: &stripe.Error{HTTPStatusCode: http.StatusNotFound}},
			wantErr: checkout.ErrVerificationFailed,
		},
		{
			name:    "transport error",
			intents: &fakeIntents{getErr: errors.New("timeout")},
			wantErr: ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewWithIntents(tt.intents, logger.NewNop())
			id, err := c.VerifyPayment(context.Background(), "pi_1", &checkout.Outcome{})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				if tt.wantErr != checkout.ErrVerificationFailed {
					assert.NotErrorIs(t, err, checkout.ErrVerificationFailed)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, id)
		})
	}
}
