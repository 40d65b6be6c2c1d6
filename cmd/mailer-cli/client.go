package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// API response structures
type CareerResponse struct {
	ID          int64  `json:"id"`
	CompanyName string `json:"companyName"`
	CareerLink  string `json:"careerLink"`
}

type ReferralResponse struct {
	ID          int64  `json:"id"`
	CompanyName string `json:"companyName"`
	LinkedInURL string `json:"linkedInUrl"`
}

type EmailLogResponse struct {
	ID     int64     `json:"id"`
	Email  string    `json:"email"`
	SentAt time.Time `json:"sentAt"`
	Status string    `json:"status"`
}

type SendResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Time    string `json:"time"`
	DB      string `json:"db"`
	Cache   string `json:"cache"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// MailerClient represents the API client
type MailerClient struct {
	BaseURL string
	http    *http.Client
}

func NewMailerClient(baseURL string) *MailerClient {
	return &MailerClient{BaseURL: baseURL, http: &http.Client{Timeout: 15 * time.Second}}
}

func (c *MailerClient) makeRequest(method, path string, body interface{}) (*http.Response, error) {
	var reqBody io.Reader

	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, c.BaseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.http.Do(req)
}

func decodeOrError[T any](resp *http.Response) (T, error) {
	var out T
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode >= 300 {
		var apiErr ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
			return out, fmt.Errorf("api error (%d): %s", resp.StatusCode, apiErr.Error)
		}
		return out, fmt.Errorf("api error: %s", resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return out, fmt.Errorf("failed to decode response: %w", err)
	}
	return out, nil
}

func (c *MailerClient) ListCareers() ([]CareerResponse, error) {
	resp, err := c.makeRequest(http.MethodGet, "/api/careers", nil)
	if err != nil {
		return nil, err
	}
	return decodeOrError[[]CareerResponse](resp)
}

func (c *MailerClient) AddCareer(companyName, careerLink string) (CareerResponse, error) {
	resp, err := c.makeRequest(http.MethodPost, "/api/careers", map[string]string{
		"companyName": companyName,
		"careerLink":  careerLink,
	})
	if err != nil {
		return CareerResponse{}, err
	}
	return decodeOrError[CareerResponse](resp)
}

func (c *MailerClient) DeleteCareer(id int64) error {
	resp, err := c.makeRequest(http.MethodDelete, fmt.Sprintf("/api/careers/%d", id), nil)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("career %d not found", id)
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("api error: %s", resp.Status)
	}
	return nil
}

func (c *MailerClient) ListReferrals() ([]ReferralResponse, error) {
	resp, err := c.makeRequest(http.MethodGet, "/api/referrals", nil)
	if err != nil {
		return nil, err
	}
	return decodeOrError[[]ReferralResponse](resp)
}

func (c *MailerClient) AddReferral(companyName, linkedInURL string) (ReferralResponse, error) {
	resp, err := c.makeRequest(http.MethodPost, "/api/referrals", map[string]string{
		"companyName": companyName,
		"linkedInUrl": linkedInURL,
	})
	if err != nil {
		return ReferralResponse{}, err
	}
	return decodeOrError[ReferralResponse](resp)
}

func (c *MailerClient) DeleteReferral(id int64) error {
	resp, err := c.makeRequest(http.MethodDelete, fmt.Sprintf("/api/referrals/%d", id), nil)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("referral %d not found", id)
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("api error: %s", resp.Status)
	}
	return nil
}

func (c *MailerClient) ListEmails() ([]EmailLogResponse, error) {
	resp, err := c.makeRequest(http.MethodGet, "/api/emails", nil)
	if err != nil {
		return nil, err
	}
	return decodeOrError[[]EmailLogResponse](resp)
}

func (c *MailerClient) SendEmail(email string) (SendResponse, error) {
	resp, err := c.makeRequest(http.MethodPost, "/api/send-email", map[string]string{"email": email})
	if err != nil {
		return SendResponse{}, err
	}
	defer func() { _ = resp.Body.Close() }()
	var out SendResponse
	// the send endpoint returns the same payload shape on 200 and 500
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return SendResponse{}, fmt.Errorf("failed to decode response: %w", err)
	}
	return out, nil
}

func (c *MailerClient) Ping() (string, error) {
	resp, err := c.makeRequest(http.MethodGet, "/ping", nil)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("api error: %s", resp.Status)
	}
	return string(body), nil
}

func (c *MailerClient) Health() (HealthResponse, error) {
	resp, err := c.makeRequest(http.MethodGet, "/healthz", nil)
	if err != nil {
		return HealthResponse{}, err
	}
	return decodeOrError[HealthResponse](resp)
}
