// Package client implements the registration form workflow: a reducer-style
// form state machine and the HTTP client it submits through. It is the Go
// counterpart of the registration page, reusable from CLI tooling and tests.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"coderfest/models"
)

// Client talks to the registration API. Every request carries the shared
// anonymous bearer key the site is deployed with.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// New builds a Client for the given API base URL (including the deployment
// prefix, e.g. https://host/api/v1)
func New(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// APIError carries a non-success response from the server, message passed
// through verbatim
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("registration API error (%d): %s", e.StatusCode, e.Message)
}

// Submission is the complete multipart payload of one registration
type Submission struct {
	TeamName      string
	LeaderName    string
	LeaderEmail   string
	LeaderContact string
	CollegeName   string
	Students      []models.StudentDetail

	ProofName        string
	ProofContentType string
	Proof            io.Reader
}

// RegisterResult is the server's acknowledgement of an accepted registration
type RegisterResult struct {
	Success        bool   `json:"success"`
	Message        string `json:"message"`
	RegistrationID string `json:"registrationId"`
}

// Register submits a registration as multipart form data
func (c *Client) Register(ctx context.Context, sub Submission) (RegisterResult, error) {
	var result RegisterResult

	studentsJSON, err := json.Marshal(sub.Students)
	if err != nil {
		return result, fmt.Errorf("encode students: %w", err)
	}

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	fields := map[string]string{
		"teamName":      sub.TeamName,
		"leaderName":    sub.LeaderName,
		"leaderEmail":   sub.LeaderEmail,
		"leaderContact": sub.LeaderContact,
		"collegeName":   sub.CollegeName,
		"students":      string(studentsJSON),
	}
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return result, fmt.Errorf("write field %s: %w", name, err)
		}
	}

	// CreateFormFile would force application/octet-stream; the declared
	// content type of the picked file must survive the trip.
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="paymentProof"; filename="%s"`, escapeQuotes(sub.ProofName)))
	contentType := sub.ProofContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	header.Set("Content-Type", contentType)
	part, err := w.CreatePart(header)
	if err != nil {
		return result, fmt.Errorf("create proof part: %w", err)
	}
	if _, err := io.Copy(part, sub.Proof); err != nil {
		return result, fmt.Errorf("write proof: %w", err)
	}
	if err := w.Close(); err != nil {
		return result, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/register", &body)
	if err != nil {
		return result, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	c.authorize(req)

	if err := c.do(req, &result); err != nil {
		return result, err
	}
	return result, nil
}

// ListRegistrations fetches the full registration set using an admin session
// token from AdminLogin
func (c *Client) ListRegistrations(ctx context.Context, adminToken string) ([]models.Registration, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/registrations", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+adminToken)

	var payload struct {
		Success       bool                  `json:"success"`
		Registrations []models.Registration `json:"registrations"`
	}
	if err := c.do(req, &payload); err != nil {
		return nil, err
	}
	return payload.Registrations, nil
}

// AdminLogin exchanges the admin password for a dashboard session token
func (c *Client) AdminLogin(ctx context.Context, password string) (string, error) {
	body, _ := json.Marshal(map[string]string{"password": password})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/admin/login", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	var payload struct {
		Token string `json:"token"`
	}
	if err := c.do(req, &payload); err != nil {
		return "", err
	}
	return payload.Token, nil
}

// Health checks service liveness
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return err
	}
	var payload struct {
		Status string `json:"status"`
	}
	if err := c.do(req, &payload); err != nil {
		return err
	}
	if payload.Status != "ok" {
		return fmt.Errorf("unexpected health status %q", payload.Status)
	}
	return nil
}

func (c *Client) authorize(req *http.Request) {
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
}

// do executes the request and decodes the JSON response into out. Non-2xx
// responses become an APIError carrying the server's message verbatim.
func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var serverErr struct {
			Error string `json:"error"`
		}
		message := strings.TrimSpace(string(data))
		if json.Unmarshal(data, &serverErr) == nil && serverErr.Error != "" {
			message = serverErr.Error
		}
		return &APIError{StatusCode: resp.StatusCode, Message: message}
	}

	if out == nil {
		return nil
	}
	return json.Unmarshal(data, out)
}

func escapeQuotes(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s)
}
