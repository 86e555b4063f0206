package payment

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// Gateway is the payment collaborator the controllers talk to. The real
// implementation posts to SSLCommerz; tests substitute a fake.
type Gateway interface {
	CreateSession(order SessionRequest) (string, error)
	ValidateTransaction(valID string) (bool, error)
}

// SessionRequest holds the order fields forwarded to the gateway when a
// payment session is created.
type SessionRequest struct {
	TransactionID string
	TotalAmount   float64
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	ProductName   string
}

type SSLCommerz struct {
	StoreID       string
	StorePassword string
	BaseURL       string
	ServerURL     string
	client        *http.Client
}

// NewSSLCommerz builds the gateway client from environment configuration.
func NewSSLCommerz() *SSLCommerz {
	baseURL := os.Getenv("SSL_BASE_URL")
	if baseURL == "" {
		baseURL = "https://sandbox.sslcommerz.com"
	}
	return &SSLCommerz{
		StoreID:       os.Getenv("SSL_STORE_ID"),
		StorePassword: os.Getenv("SSL_STORE_PASSWORD"),
		BaseURL:       baseURL,
		ServerURL:     os.Getenv("SERVER_URL"),
		client:        &http.Client{Timeout: 30 * time.Second},
	}
}

type sessionResponse struct {
	Status         string `json:"status"`
	FailedReason   string `json:"failedreason"`
	GatewayPageURL string `json:"GatewayPageURL"`
}

// CreateSession registers the order with the gateway and returns the hosted
// payment page URL the client should be redirected to.
func (s *SSLCommerz) CreateSession(order SessionRequest) (string, error) {
	form := url.Values{}
	form.Set("store_id", s.StoreID)
	form.Set("store_passwd", s.StorePassword)
	form.Set("total_amount", fmt.Sprintf("%.2f", order.TotalAmount))
	form.Set("currency", "BDT")
	form.Set("tran_id", order.TransactionID)
	form.Set("success_url", s.ServerURL+"/api/payment/success")
	form.Set("fail_url", s.ServerURL+"/api/payment/fail")
	form.Set("cancel_url", s.ServerURL+"/api/payment/cancel")
	form.Set("ipn_url", s.ServerURL+"/api/payment/ipn")
	form.Set("shipping_method", "NO")
	form.Set("product_name", order.ProductName)
	form.Set("product_category", "Service")
	form.Set("product_profile", "general")
	form.Set("cus_name", order.CustomerName)
	form.Set("cus_email", order.CustomerEmail)
	form.Set("cus_phone", order.CustomerPhone)
	form.Set("cus_add1", "N/A")
	form.Set("cus_city", "N/A")
	form.Set("cus_country", "Bangladesh")

	resp, err := s.client.Post(s.BaseURL+"/gwprocess/v4/api.php", "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("gateway session request failed: %w", err)
	}
	defer resp.Body.Close()

	var session sessionResponse
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return "", fmt.Errorf("failed to decode gateway response: %w", err)
	}

	if session.Status != "SUCCESS" || session.GatewayPageURL == "" {
		return "", errors.New("gateway refused session: " + session.FailedReason)
	}
	return session.GatewayPageURL, nil
}

type validationResponse struct {
	Status string `json:"status"`
	TranID string `json:"tran_id"`
}

// ValidateTransaction asks the gateway's validation API whether a callback is
// genuine. Only VALID/VALIDATED responses are trusted.
func (s *SSLCommerz) ValidateTransaction(valID string) (bool, error) {
	query := url.Values{}
	query.Set("val_id", valID)
	query.Set("store_id", s.StoreID)
	query.Set("store_passwd", s.StorePassword)
	query.Set("format", "json")

	resp, err := s.client.Get(s.BaseURL + "/validator/api/validationserverAPI.php?" + query.Encode())
	if err != nil {
		return false, fmt.Errorf("gateway validation request failed: %w", err)
	}
	defer resp.Body.Close()

	var validation validationResponse
	if err := json.NewDecoder(resp.Body).Decode(&validation); err != nil {
		return false, fmt.Errorf("failed to decode validation response: %w", err)
	}

	return validation.Status == "VALID" || validation.Status == "VALIDATED", nil
}
