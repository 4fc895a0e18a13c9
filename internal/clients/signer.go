package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	apperrors "onboarding-backend/internal/errors"
	"onboarding-backend/internal/logger"

	"github.com/go-resty/resty/v2"
)

type createDIDRequest struct {
	Domain string `json:"domain"`
}

type createCredentialRequest struct {
	TemplateID    string            `json:"templateId"`
	Domain        string            `json:"domain"`
	PrivateKeyURL string            `json:"privateKeyUrl"`
	Data          map[string]string `json:"data"`
}

// SignerResponse is the envelope returned by every signer endpoint
type SignerResponse struct {
	Message string                     `json:"message"`
	Data    map[string]json.RawMessage `json:"data"`
}

// SignerClient calls the signer microservice
type SignerClient struct {
	httpClient *resty.Client
}

// NewSignerClient creates a signer client for baseURL
func NewSignerClient(baseURL string, timeout time.Duration) *SignerClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &SignerClient{httpClient: client}
}

// CreateDID mints a did:web document for domain
func (c *SignerClient) CreateDID(ctx context.Context, domain string) (json.RawMessage, error) {
	logger.WithContext(ctx).WithField("domain", domain).Debug("calling signer createWebDID")
	return c.post(ctx, "/createWebDID", createDIDRequest{Domain: domain}, "did")
}

// CreateCredential mints and signs a verifiable credential from a template
func (c *SignerClient) CreateCredential(ctx context.Context, request CredentialRequest) (json.RawMessage, error) {
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"domain":      request.Domain,
		"template_id": request.TemplateID,
	}).Debug("calling signer onBoardToGaiaX")

	return c.post(ctx, "/onBoardToGaiaX", createCredentialRequest{
		TemplateID:    request.TemplateID,
		Domain:        request.Domain,
		PrivateKeyURL: request.PrivateKeyURL,
		Data:          request.Data,
	}, "verifiableCredential")
}

func (c *SignerClient) post(ctx context.Context, path string, body interface{}, field string) (json.RawMessage, error) {
	var response SignerResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&response).
		Post(path)
	if err != nil {
		return nil, fmt.Errorf("failed to call signer %s: %w", path, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("signer %s returned status %d: %s", path, resp.StatusCode(), resp.String())
	}

	document, ok := response.Data[field]
	if !ok || len(document) == 0 || string(document) == "null" {
		return nil, fmt.Errorf("signer %s: %w", path, apperrors.ErrSignerEmptyResponse)
	}
	return document, nil
}
