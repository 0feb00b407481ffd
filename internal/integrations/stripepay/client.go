package stripepay

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"

	"github.com/m04kA/SMC-CabinReservationService/internal/integrations/checkout"
)

const providerName = "stripe"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

// PaymentIntents подмножество stripe PaymentIntents API
type PaymentIntents interface {
	New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
	Get(id string, params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
}

// Client провайдер оплаты через Stripe PaymentIntents
type Client struct {
	intents PaymentIntents
	log     Logger
}

// NewClient создает клиента Stripe с секретным ключом
func NewClient(secretKey string, log Logger) *Client {
	sc := client.New(secretKey, nil)
	return NewWithIntents(sc.PaymentIntents, log)
}

// NewWithIntents создает клиента поверх готового PaymentIntents API
func NewWithIntents(intents PaymentIntents, log Logger) *Client {
	return &Client{intents: intents, log: log}
}

// Name имя провайдера
func (c *Client) Name() string {
	return providerName
}

// CreateOrder создает PaymentIntent; его ID служит идентификатором заказа
func (c *Client) CreateOrder(ctx context.Context, req *checkout.OrderRequest) (*checkout.Order, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(req.AmountMinor),
		Currency: stripe.String(strings.ToLower(req.Currency)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	if req.Description != "" {
		params.Description = stripe.String(req.Description)
	}
	params.Context = ctx
	if req.Receipt != "" {
		params.AddMetadata("receipt", req.Receipt)
	}
	for k, v := range req.Notes {
		params.AddMetadata(k, v)
	}

	pi, err := c.intents.New(params)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create payment intent: %v", ErrInternal, err)
	}
	if pi == nil || pi.ID == "" {
		return nil, fmt.Errorf("%w: payment intent id is empty", ErrInvalidResponse)
	}

	c.log.Info("Stripe payment intent %s created, amount=%d %s", pi.ID, pi.Amount, pi.Currency)

	return &checkout.Order{
		ID:           pi.ID,
		AmountMinor:  pi.Amount,
		Currency:     strings.ToUpper(string(pi.Currency)),
		ClientSecret: pi.ClientSecret,
	}, nil
}

// VerifyPayment запрашивает PaymentIntent и подтверждает только succeeded.
// Для processing возвращается ErrPaymentProcessing, его можно повторить.
func (c *Client) VerifyPayment(ctx context.Context, orderID string, _ *checkout.Outcome) (string, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	pi, err := c.intents.Get(orderID, params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) && stripeErr.HTTPStatusCode == http.StatusNotFound {
			return "", fmt.Errorf("%w: payment intent %s not found", checkout.ErrVerificationFailed, orderID)
		}
		return "", fmt.Errorf("%w: failed to get payment intent: %v", ErrInternal, err)
	}

	// processing еще не завершен: ошибка не окончательная, хаб оставит сессию открытой
	if pi.Status == stripe.PaymentIntentStatusProcessing {
		c.log.Info("Stripe payment intent %s is still processing", orderID)
		return "", fmt.Errorf("%w: payment intent %s", ErrPaymentProcessing, orderID)
	}

	if pi.Status != stripe.PaymentIntentStatusSucceeded {
		c.log.Warn("Stripe payment intent %s is in status %s", orderID, pi.Status)
		return "", fmt.Errorf("%w: payment intent status %s", checkout.ErrVerificationFailed, pi.Status)
	}

	if pi.LatestCharge != nil && pi.LatestCharge.ID != "" {
		return pi.LatestCharge.ID, nil
	}
	return pi.ID, nil
}

var _ checkout.Provider = (*Client)(nil)
