package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"

	"github.com/go-resty/resty/v2"
)

// RazorpayClient talks to the Razorpay Orders API
type RazorpayClient struct {
	BaseURL   string
	KeyID     string
	KeySecret string
	client    *resty.Client
}

// NewRazorpayClient builds a gateway client from configuration
func NewRazorpayClient(baseURL, keyID, keySecret string) *RazorpayClient {
	return &RazorpayClient{
		BaseURL:   baseURL,
		KeyID:     keyID,
		KeySecret: keySecret,
		client:    resty.New(),
	}
}

// CreateOrder registers an order with the gateway and returns the gateway
// order id. Amount is in paise.
func (rc *RazorpayClient) CreateOrder(amount uint, currency, receipt string) (string, error) {
	resp, err := rc.client.R().
		SetBasicAuth(rc.KeyID, rc.KeySecret).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"amount":   amount,
			"currency": currency,
			"receipt":  receipt,
		}).
		Post(rc.BaseURL + "/orders")
	if err != nil {
		log.Printf("Failed to create gateway order: %v", err)
		return "", err
	}
	if resp.StatusCode() != 200 {
		log.Printf("Gateway order creation failed: %s", resp.String())
		return "", fmt.Errorf("gateway error, code: %d", resp.StatusCode())
	}

	var orderResp struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(resp.Body(), &orderResp); err != nil {
		log.Printf("Failed to parse gateway response: %v", err)
		return "", err
	}
	if orderResp.ID == "" {
		return "", fmt.Errorf("gateway returned no order id")
	}

	return orderResp.ID, nil
}

// VerifyRazorpaySignature checks the payment signature the gateway hands to
// the client after checkout: HMAC-SHA256 over "<orderID>|<paymentID>" keyed
// with the API secret, hex encoded.
func VerifyRazorpaySignature(orderID, paymentID, signature, secret string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
