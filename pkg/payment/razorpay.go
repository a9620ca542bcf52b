package payment

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

// ErrNotConfigured is returned before any network I/O when gateway
// credentials are absent.
var ErrNotConfigured = errors.New("razorpay credentials not configured")

// RazorpayClient creates orders via the Razorpay REST API and verifies
// payment signatures with the shared key secret.
type RazorpayClient struct {
	keyID     string
	keySecret string
	baseURL   string
	client    *http.Client
}

func NewRazorpayClient(keyID, keySecret string) *RazorpayClient {
	return &RazorpayClient{
		keyID:     keyID,
		keySecret: keySecret,
		baseURL:   "https://api.razorpay.com",
		client:    &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *RazorpayClient) KeyID() string { return c.keyID }

func (c *RazorpayClient) Configured() bool { return c.keyID != "" && c.keySecret != "" }

type razorpayOrderReq struct {
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt,omitempty"`
	Notes    map[string]string `json:"notes,omitempty"`
}

type razorpayOrderResp struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Status   string `json:"status"`
}

type razorpayErrorResp struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}

func (c *RazorpayClient) CreateOrder(ctx context.Context, req OrderRequest) (*Order, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}
	body, _ := json.Marshal(razorpayOrderReq{
		Amount:   req.Amount,
		Currency: req.Currency,
		Receipt:  req.Receipt,
		Notes:    req.Notes,
	})
	apiReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/orders", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	apiReq.Header.Set("Content-Type", "application/json")
	apiReq.SetBasicAuth(c.keyID, c.keySecret)
	log.Printf("[razorpay] POST /v1/orders amount=%d currency=%s receipt=%s", req.Amount, req.Currency, req.Receipt)
	resp, err := c.client.Do(apiReq)
	if err != nil {
		return nil, fmt.Errorf("razorpay order create: %w", err)
	}
	defer resp.Body.Close()
	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		var apiErr razorpayErrorResp
		if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Error.Description != "" {
			return nil, fmt.Errorf("razorpay order create: %d %s", resp.StatusCode, apiErr.Error.Description)
		}
		return nil, fmt.Errorf("razorpay order create: %d", resp.StatusCode)
	}
	var out razorpayOrderResp
	if err := json.Unmarshal(respBody, &out); err != nil {
		return nil, fmt.Errorf("razorpay order create: %w", err)
	}
	log.Printf("[razorpay] order created id=%s status=%s", out.ID, out.Status)
	return &Order{ID: out.ID, Amount: out.Amount, Currency: out.Currency, Status: out.Status}, nil
}

// VerifySignature checks the HMAC-SHA256 of "orderID|paymentID" under the key
// secret against the claimed hex signature. This is the sole authenticity
// check for payment confirmations; an unconfigured secret verifies nothing.
func (c *RazorpayClient) VerifySignature(orderID, paymentID, signature string) bool {
	if c.keySecret == "" {
		return false
	}
	mac := hmac.New(sha256.New, []byte(c.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(signature), []byte(expected))
}
