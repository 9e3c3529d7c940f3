package chapa

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"checkout-app/internal/domain/payment"
)

const (
	defaultBaseURL = "https://api.chapa.co"
	requestTimeout = 10 * time.Second

	// The secret shipped in example .env files. A client holding it is
	// treated as unconfigured, same as an empty key.
	placeholderSecret = "CHASECK_TEST-your-secret-key"

	statusSuccess = "success"
)

// Client talks to Chapa's hosted-payment API. The secret key is injected at
// construction; BaseURL and HTTPClient are overridable for tests.
type Client struct {
	secret string

	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(secret string) *Client {
	return &Client{
		secret:     secret,
		BaseURL:    defaultBaseURL,
		HTTPClient: &http.Client{Timeout: requestTimeout},
	}
}

// Configured reports whether the client holds a usable secret key. When
// false, callers bypass the gateway entirely (local test mode).
func (c *Client) Configured() bool {
	return c.secret != "" && c.secret != placeholderSecret
}

type customization struct {
	Title string `json:"title"`
}

type initializeBody struct {
	Amount        string        `json:"amount"`
	Currency      string        `json:"currency"`
	Email         string        `json:"email"`
	FirstName     string        `json:"first_name"`
	LastName      string        `json:"last_name"`
	TxRef         string        `json:"tx_ref"`
	CallbackURL   string        `json:"callback_url"`
	ReturnURL     string        `json:"return_url"`
	Customization customization `json:"customization"`
}

type initializeResponse struct {
	Status string `json:"status"`
	Data   struct {
		CheckoutURL string `json:"checkout_url"`
	} `json:"data"`
}

type verifyResponse struct {
	Status string `json:"status"`
}

// Initialize starts a hosted checkout and returns the URL the customer is
// redirected to. Every failure mode collapses into payment.ErrUnavailable;
// the detail only goes to the log.
func (c *Client) Initialize(ctx context.Context, req payment.InitializeRequest) (string, error) {
	body := initializeBody{
		Amount:        req.Amount,
		Currency:      req.Currency,
		Email:         req.Email,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		TxRef:         req.TxRef,
		CallbackURL:   req.CallbackURL,
		ReturnURL:     req.ReturnURL,
		Customization: customization{Title: truncateTitle(req.Title)},
	}

	payload, err := json.Marshal(body)
	if err != nil {
		log.Println("❌ Chapa initialize: failed to encode request:", err)
		return "", fmt.Errorf("chapa initialize: %w", payment.ErrUnavailable)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.BaseURL+"/v1/transaction/initialize", bytes.NewReader(payload))
	if err != nil {
		log.Println("❌ Chapa initialize: failed to build request:", err)
		return "", fmt.Errorf("chapa initialize: %w", payment.ErrUnavailable)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.secret)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		log.Println("❌ Chapa initialize request failed:", err)
		return "", fmt.Errorf("chapa initialize: %w", payment.ErrUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("❌ Chapa initialize: unexpected status %d for tx_ref=%s", resp.StatusCode, req.TxRef)
		return "", fmt.Errorf("chapa initialize: status %d: %w", resp.StatusCode, payment.ErrUnavailable)
	}

	var out initializeResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		log.Println("❌ Chapa initialize: malformed response body:", err)
		return "", fmt.Errorf("chapa initialize: %w", payment.ErrUnavailable)
	}

	if out.Status != statusSuccess || out.Data.CheckoutURL == "" {
		log.Printf("❌ Chapa initialize: non-success response status=%q for tx_ref=%s", out.Status, req.TxRef)
		return "", fmt.Errorf("chapa initialize: %w", payment.ErrUnavailable)
	}

	log.Printf("✅ Chapa initialize ok for tx_ref=%s", req.TxRef)
	return out.Data.CheckoutURL, nil
}

// Verify re-checks a transaction with the provider. True only on HTTP 200
// with a success status; everything else, including transport errors, is
// false.
func (c *Client) Verify(ctx context.Context, txRef string) bool {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.BaseURL+"/v1/transaction/verify/"+txRef, nil)
	if err != nil {
		log.Println("❌ Chapa verify: failed to build request:", err)
		return false
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.secret)

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		log.Printf("❌ Chapa verify request failed for tx_ref=%s: %v", txRef, err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("❌ Chapa verify: unexpected status %d for tx_ref=%s", resp.StatusCode, txRef)
		return false
	}

	var out verifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		log.Printf("❌ Chapa verify: malformed response body for tx_ref=%s: %v", txRef, err)
		return false
	}

	return out.Status == statusSuccess
}

// Chapa rejects customization titles longer than 16 characters.
func truncateTitle(title string) string {
	r := []rune(title)
	if len(r) <= 16 {
		return title
	}
	return string(r[:16])
}
