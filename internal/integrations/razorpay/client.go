package razorpay

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/m04kA/SMC-CabinReservationService/internal/integrations/checkout"
)

const providerName = "razorpay"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент Razorpay Orders API
type Client struct {
	baseURL    string
	keyID      string
	keySecret  string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента Razorpay
func NewClient(baseURL, keyID, keySecret string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:   baseURL,
		keyID:     keyID,
		keySecret: keySecret,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Name имя провайдера
func (c *Client) Name() string {
	return providerName
}

// CreateOrder создает заказ в Razorpay
func (c *Client) CreateOrder(ctx context.Context, req *checkout.OrderRequest) (*checkout.Order, error) {
	body, err := json.Marshal(orderRequest{
		Amount:   req.AmountMinor,
		Currency: req.Currency,
		Receipt:  req.Receipt,
		Notes:    req.Notes,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode order: %v", ErrInternal, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/orders", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.SetBasicAuth(c.keyID, c.keySecret)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
	case http.StatusUnauthorized:
		return nil, ErrUnauthorized
	default:
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, readError(resp.Body))
	}

	var order OrderResponse
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	if order.ID == "" {
		return nil, fmt.Errorf("%w: order id is empty", ErrInvalidResponse)
	}

	c.log.Info("Razorpay order %s created, amount=%d %s", order.ID, order.Amount, order.Currency)

	return &checkout.Order{
		ID:          order.ID,
		AmountMinor: order.Amount,
		Currency:    order.Currency,
	}, nil
}

// VerifyPayment проверяет подпись razorpay_signature для заказа
func (c *Client) VerifyPayment(_ context.Context, orderID string, outcome *checkout.Outcome) (string, error) {
	if outcome.PaymentID == "" {
		return "", fmt.Errorf("%w: payment id is missing", checkout.ErrVerificationFailed)
	}
	if outcome.OrderID != "" && outcome.OrderID != orderID {
		return "", fmt.Errorf("%w: order mismatch %s != %s", checkout.ErrVerificationFailed, outcome.OrderID, orderID)
	}
	if !VerifySignature(orderID, outcome.PaymentID, outcome.Signature, c.keySecret) {
		c.log.Error("Razorpay signature mismatch for order=%s, payment=%s", orderID, outcome.PaymentID)
		return "", fmt.Errorf("%w: signature mismatch", checkout.ErrVerificationFailed)
	}
	return outcome.PaymentID, nil
}

// Signature hex(HMAC_SHA256(order_id + "|" + payment_id, secret))
func Signature(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature сравнивает подпись за постоянное время
func VerifySignature(orderID, paymentID, signature, secret string) bool {
	if signature == "" {
		return false
	}
	expected := Signature(orderID, paymentID, secret)
	return hmac.Equal([]byte(expected), []byte(signature))
}

func readError(r io.Reader) string {
	body, _ := io.ReadAll(r)
	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error.Description != "" {
		return errResp.Error.Code + ": " + errResp.Error.Description
	}
	return string(body)
}

var _ checkout.Provider = (*Client)(nil)
