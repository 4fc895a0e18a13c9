package clients

import (
	"context"
	"crypto"
	"encoding/json"
	"time"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/client_mocks.go -package=mocks

// DNSAction is the change applied to a resource record set
type DNSAction string

const (
	DNSActionCreate DNSAction = "CREATE"
	DNSActionUpsert DNSAction = "UPSERT"
	DNSActionDelete DNSAction = "DELETE"
)

// DNSRecord describes one resource record set change
type DNSRecord struct {
	Zone   string
	Name   string
	Type   string
	Value  string
	TTL    int64
	Action DNSAction
}

// DNSProvider applies record set changes to a hosted zone
type DNSProvider interface {
	UpsertRecord(ctx context.Context, record DNSRecord) error
}

// ObjectStore keeps generated documents, keys and certificates
type ObjectStore interface {
	Put(ctx context.Context, key string, data []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
	Presign(ctx context.Context, key string, ttl time.Duration) (string, error)
}

// IngressSpec is the routing rule published for an enterprise host
type IngressSpec struct {
	Name        string
	Host        string
	TLSSecret   string
	ServiceName string
	ServicePort int32
	Path        string
	Annotations map[string]string
}

// Orchestrator publishes TLS secrets and ingress rules
type Orchestrator interface {
	CreateTLSSecret(ctx context.Context, namespace, name string, cert, key []byte) error
	CreateIngress(ctx context.Context, namespace string, spec IngressSpec) error
}

// CredentialRequest asks the signer to mint a verifiable credential
type CredentialRequest struct {
	TemplateID    string
	Domain        string
	PrivateKeyURL string
	Data          map[string]string
}

// SignerService mints DID documents and verifiable credentials
type SignerService interface {
	CreateDID(ctx context.Context, domain string) (json.RawMessage, error)
	CreateCredential(ctx context.Context, request CredentialRequest) (json.RawMessage, error)
}

// OfferAttribute is one name/value pair of a credential offer
type OfferAttribute struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// OfferRequest offers a credential to a holder connection
type OfferRequest struct {
	ConnectionID           string
	CredentialDefinitionID string
	Comment                string
	Attributes             []OfferAttribute
}

// CredentialIssuer offers credentials to the enterprise wallet (PCM)
type CredentialIssuer interface {
	OfferCredential(ctx context.Context, request OfferRequest) (string, error)
}

// ACMEStatus is the status of an ACME order, authorization or challenge
type ACMEStatus string

const (
	ACMEStatusPending    ACMEStatus = "pending"
	ACMEStatusProcessing ACMEStatus = "processing"
	ACMEStatusReady      ACMEStatus = "ready"
	ACMEStatusValid      ACMEStatus = "valid"
	ACMEStatusInvalid    ACMEStatus = "invalid"
)

// ACMEOrder is an order for one certificate
type ACMEOrder struct {
	URI         string
	Status      ACMEStatus
	AuthzURLs   []string
	FinalizeURL string
	CertURL     string
}

// ACMEChallenge is one way of proving control of an identifier
type ACMEChallenge struct {
	Type   string
	URI    string
	Token  string
	Status ACMEStatus
	Error  string
}

// ACMEAuthorization binds an identifier to the challenges the CA offers for it
type ACMEAuthorization struct {
	URI        string
	Status     ACMEStatus
	Identifier string
	Challenges []ACMEChallenge
}

// CertificateAuthority opens account-bound sessions with an ACME directory
type CertificateAuthority interface {
	// Session finds the account bound to accountKey, registering it on first use
	Session(ctx context.Context, accountKey crypto.Signer) (ACMESession, error)
}

// ACMESession is an authenticated ACME account
type ACMESession interface {
	NewOrder(ctx context.Context, domain string) (*ACMEOrder, error)
	Authorization(ctx context.Context, url string) (*ACMEAuthorization, error)
	DNS01Record(token string) (string, error)
	AcceptChallenge(ctx context.Context, challenge *ACMEChallenge) (*ACMEChallenge, error)
	Challenge(ctx context.Context, url string) (*ACMEChallenge, error)
	FinalizeOrder(ctx context.Context, order *ACMEOrder, csr []byte) (*ACMEOrder, error)
	Order(ctx context.Context, url string) (*ACMEOrder, error)
	Certificate(ctx context.Context, order *ACMEOrder) ([][]byte, error)
}
