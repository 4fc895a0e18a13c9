package clients

import (
	"context"
	"fmt"
	"time"

	"onboarding-backend/internal/logger"

	"github.com/go-resty/resty/v2"
)

type offerCredentialRequest struct {
	ConnectionID           string           `json:"connectionId"`
	CredentialDefinitionID string           `json:"credentialDefinitionId"`
	Comment                string           `json:"comment"`
	AutoAcceptCredential   string           `json:"autoAcceptCredential"`
	Attributes             []OfferAttribute `json:"attributes"`
}

type offerCredentialResponse struct {
	Message string `json:"message"`
	Data    struct {
		ID string `json:"id"`
	} `json:"data"`
}

// PCMClient offers credentials through the wallet connection manager
type PCMClient struct {
	httpClient *resty.Client
}

// NewPCMClient creates a credential issuer for baseURL
func NewPCMClient(baseURL string, timeout time.Duration) *PCMClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &PCMClient{httpClient: client}
}

// OfferCredential creates a credential offer and returns its id. Offers are
// never auto-accepted; the holder confirms them in the wallet.
func (c *PCMClient) OfferCredential(ctx context.Context, request OfferRequest) (string, error) {
	var response offerCredentialResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(offerCredentialRequest{
			ConnectionID:           request.ConnectionID,
			CredentialDefinitionID: request.CredentialDefinitionID,
			Comment:                request.Comment,
			AutoAcceptCredential:   "never",
			Attributes:             request.Attributes,
		}).
		SetResult(&response).
		Post("/ocm/attestation/v1/create-offer-credential")
	if err != nil {
		return "", fmt.Errorf("failed to offer credential: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("credential offer returned status %d: %s", resp.StatusCode(), resp.String())
	}
	if response.Data.ID == "" {
		return "", fmt.Errorf("credential offer response has no id")
	}

	logger.WithContext(ctx).WithField("offer_id", response.Data.ID).Debug("credential offered")
	return response.Data.ID, nil
}
