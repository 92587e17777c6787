package recurly

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/DanielPopoola/ficmart-recurly-gateway/internal/config"
	"github.com/DanielPopoola/ficmart-recurly-gateway/internal/core/domain"
	"github.com/google/uuid"
)

// HTTPClient talks to one Recurly site over its v2 REST API.
type HTTPClient struct {
	baseURL    string
	apiKey     string
	apiVersion string
	httpClient *http.Client
}

// NewHTTPClient builds a client for the site named by creds.
func NewHTTPClient(creds domain.Credentials, cfg config.RecurlyConfig) *HTTPClient {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.recurly.com/v2", creds.Subdomain)
	}

	return &HTTPClient{
		baseURL:    baseURL,
		apiKey:     creds.APIKey,
		apiVersion: cfg.APIVersion,
		httpClient: &http.Client{
			Timeout: cfg.ConnTimeout,
		},
	}
}

func (c *HTTPClient) CreateAccount(ctx context.Context, req domain.AccountRequest) (*domain.Account, error) {
	return doJSON[domain.Account](c, ctx, http.MethodPost, "/accounts", req, nil)
}

func (c *HTTPClient) FindAccount(ctx context.Context, accountCode string) (*domain.Account, error) {
	return doJSON[domain.Account](c, ctx, http.MethodGet, "/accounts/"+url.PathEscape(accountCode), nil, func() error {
		return domain.NewAccountNotFoundError(accountCode)
	})
}

func (c *HTTPClient) CreateTransaction(ctx context.Context, accountCode string, req domain.TransactionRequest) (*domain.Transaction, error) {
	path := "/accounts/" + url.PathEscape(accountCode) + "/transactions"
	return doJSON[domain.Transaction](c, ctx, http.MethodPost, path, req, func() error {
		return domain.NewAccountNotFoundError(accountCode)
	})
}

func (c *HTTPClient) FindTransaction(ctx context.Context, id string) (*domain.Transaction, error) {
	return doJSON[domain.Transaction](c, ctx, http.MethodGet, "/transactions/"+url.PathEscape(id), nil, func() error {
		return domain.NewTransactionNotFoundError(id)
	})
}

func (c *HTTPClient) RefundTransaction(ctx context.Context, id string, amountInCents *float64) (*domain.Transaction, error) {
	path := "/transactions/" + url.PathEscape(id)
	if amountInCents != nil {
		path += "?amount_in_cents=" + strconv.FormatFloat(*amountInCents, 'f', -1, 64)
	}
	return doJSON[domain.Transaction](c, ctx, http.MethodDelete, path, nil, func() error {
		return domain.NewTransactionNotFoundError(id)
	})
}

// doJSON sends one request and decodes the answer into Resp. A 422 body is
// decoded as well so the caller sees the validation errors on the resource.
func doJSON[Resp any](c *HTTPClient, ctx context.Context, method, path string, body any, notFound func() error) (*Resp, error) {
	var reader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("error marshalling json: %w", err)
		}
		reader = bytes.NewReader(jsonData)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	httpReq.SetBasicAuth(c.apiKey, "")
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if c.apiVersion != "" {
		httpReq.Header.Set("X-Api-Version", c.apiVersion)
	}
	if method != http.MethodGet {
		key, ok := domain.IdempotencyKeyFrom(ctx)
		if !ok {
			key = uuid.NewString()
		}
		httpReq.Header.Set("Idempotency-Key", key)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, domain.NewUpstreamError(fmt.Errorf("error making request: %w", err))
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound && notFound != nil:
		return nil, notFound()
	case resp.StatusCode == http.StatusUnprocessableEntity:
		return decodeRejection[Resp](resp)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, domain.NewUpstreamError(readAPIError(resp))
	}

	return decode[Resp](resp.Body)
}

func decode[Resp any](r io.Reader) (*Resp, error) {
	var out Resp
	if err := json.NewDecoder(r).Decode(&out); err != nil && err != io.EOF {
		return nil, fmt.Errorf("error decoding json response: %w", err)
	}
	return &out, nil
}

// decodeRejection decodes a 422 body into the resource. A single error
// object is folded into the resource's errors. A body with neither shape
// is an upstream error, so a rejection never reads as success.
func decodeRejection[Resp any](resp *http.Response) (*Resp, error) {
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.NewUpstreamError(fmt.Errorf("error reading response: %w", err))
	}

	var rejected struct {
		Errors domain.ValidationErrors `json:"errors"`
	}
	if err := json.Unmarshal(raw, &rejected); err == nil && rejected.Errors.HasErrors() {
		var out Resp
		if err := json.Unmarshal(raw, &out); err != nil {
			return nil, fmt.Errorf("error decoding json response: %w", err)
		}
		return &out, nil
	}

	apiErr := parseAPIError(resp.StatusCode, raw)
	if apiErr.Code == "" {
		return nil, domain.NewUpstreamError(apiErr)
	}

	folded, err := json.Marshal(map[string]domain.ValidationErrors{
		"errors": {{Symbol: apiErr.Code, Message: apiErr.Message}},
	})
	if err != nil {
		return nil, fmt.Errorf("error encoding rejection: %w", err)
	}
	var out Resp
	if err := json.Unmarshal(folded, &out); err != nil {
		return nil, fmt.Errorf("error decoding json response: %w", err)
	}
	return &out, nil
}

func readAPIError(resp *http.Response) *APIError {
	raw, _ := io.ReadAll(resp.Body)
	return parseAPIError(resp.StatusCode, raw)
}

func parseAPIError(status int, raw []byte) *APIError {
	apiErr := &APIError{
		StatusCode: status,
		Message:    http.StatusText(status),
	}

	var parsed errorResponse
	if err := json.Unmarshal(raw, &parsed); err == nil && parsed.Error.Symbol != "" {
		apiErr.Code = parsed.Error.Symbol
		if parsed.Error.Description != "" {
			apiErr.Message = parsed.Error.Description
		}
	} else if len(raw) > 0 {
		apiErr.Message = string(raw)
	}
	return apiErr
}
