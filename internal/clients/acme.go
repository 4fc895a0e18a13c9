package clients

import (
	"context"
	"crypto"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"golang.org/x/crypto/acme"
)

// ACMEAuthority implements CertificateAuthority with golang.org/x/crypto/acme
type ACMEAuthority struct {
	directoryURL string
	contactEmail string
	httpClient   *http.Client
}

// NewACMEAuthority creates a CA client for the given directory
func NewACMEAuthority(directoryURL, contactEmail string, httpClient *http.Client) *ACMEAuthority {
	return &ACMEAuthority{
		directoryURL: directoryURL,
		contactEmail: contactEmail,
		httpClient:   httpClient,
	}
}

// Session registers accountKey, or looks up its existing account
func (a *ACMEAuthority) Session(ctx context.Context, accountKey crypto.Signer) (ACMESession, error) {
	client := &acme.Client{
		Key:          accountKey,
		DirectoryURL: a.directoryURL,
		HTTPClient:   a.httpClient,
		UserAgent:    "onboarding-backend",
	}

	account := &acme.Account{}
	if a.contactEmail != "" {
		account.Contact = []string{"mailto:" + a.contactEmail}
	}

	if _, err := client.Register(ctx, account, acme.AcceptTOS); err != nil {
		if !errors.Is(err, acme.ErrAccountAlreadyExists) {
			return nil, fmt.Errorf("failed to register acme account: %w", err)
		}
		if _, err := client.GetReg(ctx, ""); err != nil {
			return nil, fmt.Errorf("failed to look up acme account: %w", err)
		}
	}

	return &acmeSession{client: client, issued: make(map[string][][]byte)}, nil
}

type acmeSession struct {
	client *acme.Client

	mu sync.Mutex
	// chains returned by finalization, keyed by certificate URL
	issued map[string][][]byte
}

func (s *acmeSession) NewOrder(ctx context.Context, domain string) (*ACMEOrder, error) {
	order, err := s.client.AuthorizeOrder(ctx, acme.DomainIDs(domain))
	if err != nil {
		return nil, fmt.Errorf("failed to create acme order for %s: %w", domain, err)
	}
	return toACMEOrder(order), nil
}

func (s *acmeSession) Authorization(ctx context.Context, url string) (*ACMEAuthorization, error) {
	authz, err := s.client.GetAuthorization(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch acme authorization: %w", err)
	}
	result := &ACMEAuthorization{
		URI:        authz.URI,
		Status:     ACMEStatus(authz.Status),
		Identifier: authz.Identifier.Value,
	}
	for _, challenge := range authz.Challenges {
		result.Challenges = append(result.Challenges, *toACMEChallenge(challenge))
	}
	return result, nil
}

func (s *acmeSession) DNS01Record(token string) (string, error) {
	return s.client.DNS01ChallengeRecord(token)
}

func (s *acmeSession) AcceptChallenge(ctx context.Context, challenge *ACMEChallenge) (*ACMEChallenge, error) {
	accepted, err := s.client.Accept(ctx, &acme.Challenge{
		Type:  challenge.Type,
		URI:   challenge.URI,
		Token: challenge.Token,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to accept acme challenge: %w", err)
	}
	return toACMEChallenge(accepted), nil
}

func (s *acmeSession) Challenge(ctx context.Context, url string) (*ACMEChallenge, error) {
	challenge, err := s.client.GetChallenge(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch acme challenge: %w", err)
	}
	return toACMEChallenge(challenge), nil
}

// FinalizeOrder submits the CSR. x/crypto/acme waits for issuance inside
// CreateOrderCert, so ctx bounds that wait; the chain is kept for Certificate.
func (s *acmeSession) FinalizeOrder(ctx context.Context, order *ACMEOrder, csr []byte) (*ACMEOrder, error) {
	der, certURL, err := s.client.CreateOrderCert(ctx, order.FinalizeURL, csr, true)
	if err != nil {
		var orderErr *acme.OrderError
		if errors.As(err, &orderErr) {
			finalized := *order
			finalized.Status = ACMEStatus(orderErr.Status)
			return &finalized, nil
		}
		return nil, fmt.Errorf("failed to finalize acme order: %w", err)
	}

	s.mu.Lock()
	s.issued[certURL] = der
	s.mu.Unlock()

	finalized := *order
	finalized.Status = ACMEStatusValid
	finalized.CertURL = certURL
	return &finalized, nil
}

func (s *acmeSession) Order(ctx context.Context, url string) (*ACMEOrder, error) {
	order, err := s.client.GetOrder(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch acme order: %w", err)
	}
	return toACMEOrder(order), nil
}

func (s *acmeSession) Certificate(ctx context.Context, order *ACMEOrder) ([][]byte, error) {
	s.mu.Lock()
	der, ok := s.issued[order.CertURL]
	s.mu.Unlock()
	if ok {
		return der, nil
	}

	der, err := s.client.FetchCert(ctx, order.CertURL, true)
	if err != nil {
		return nil, fmt.Errorf("failed to download certificate: %w", err)
	}
	return der, nil
}

func toACMEOrder(order *acme.Order) *ACMEOrder {
	return &ACMEOrder{
		URI:         order.URI,
		Status:      ACMEStatus(order.Status),
		AuthzURLs:   order.AuthzURLs,
		FinalizeURL: order.FinalizeURL,
		CertURL:     order.CertURL,
	}
}

func toACMEChallenge(challenge *acme.Challenge) *ACMEChallenge {
	result := &ACMEChallenge{
		Type:   challenge.Type,
		URI:    challenge.URI,
		Token:  challenge.Token,
		Status: ACMEStatus(challenge.Status),
	}
	if challenge.Error != nil {
		result.Error = challenge.Error.Error()
	}
	return result
}
