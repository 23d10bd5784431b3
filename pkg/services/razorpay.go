package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"math"

	"github.com/razorpay/razorpay-go"
)

// PaymentOrder is the gateway order a client completes checkout against
type PaymentOrder struct {
	OrderID  string  `json:"orderId"`
	Amount   int64   `json:"amount"`
	Currency string  `json:"currency"`
	KeyID    string  `json:"keyId"`
	Receipt  string  `json:"receipt"`
	Total    float64 `json:"total"`
}

// PaymentGateway wraps the Razorpay client
type PaymentGateway struct {
	client    *razorpay.Client
	keyID     string
	keySecret string
	currency  string
}

// NewPaymentGateway returns an error when either key is missing
func NewPaymentGateway(keyID, keySecret, currency string) (*PaymentGateway, error) {
	if keyID == "" || keySecret == "" {
		return nil, errors.New("RAZORPAY_KEY_ID or RAZORPAY_KEY_SECRET not set")
	}
	if currency == "" {
		currency = "INR"
	}
	return &PaymentGateway{
		client:    razorpay.NewClient(keyID, keySecret),
		keyID:     keyID,
		keySecret: keySecret,
		currency:  currency,
	}, nil
}

// CreateOrder creates a Razorpay order for amount, expressed in the major currency unit
func (g *PaymentGateway) CreateOrder(amount float64, receiptID string) (PaymentOrder, error) {
	minor := toMinorUnits(amount)
	receipt := fmt.Sprintf("receipt_%s", receiptID)

	data := map[string]interface{}{
		"amount":   minor,
		"currency": g.currency,
		"receipt":  receipt,
		"notes": map[string]interface{}{
			"sales_order_id": receiptID,
		},
	}

	body, err := g.client.Order.Create(data, nil)
	if err != nil {
		return PaymentOrder{}, fmt.Errorf("failed to create razorpay order: %w", err)
	}

	orderID, _ := body["id"].(string)
	if orderID == "" {
		return PaymentOrder{}, errors.New("razorpay order response has no id")
	}

	return PaymentOrder{
		OrderID:  orderID,
		Amount:   minor,
		Currency: g.currency,
		KeyID:    g.keyID,
		Receipt:  receipt,
		Total:    amount,
	}, nil
}

// VerifySignature checks the checkout signature for orderID|paymentID
func (g *PaymentGateway) VerifySignature(orderID, paymentID, signature string) bool {
	return verifySignature(g.keySecret, orderID, paymentID, signature)
}

func verifySignature(secret, orderID, paymentID, signature string) bool {
	if secret == "" || signature == "" {
		return false
	}
	return hmac.Equal([]byte(sign(secret, orderID, paymentID)), []byte(signature))
}

func sign(secret, orderID, paymentID string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(h.Sum(nil))
}

func toMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
