package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"onboarding-backend/internal/clients"
	"onboarding-backend/internal/database/models"
	"onboarding-backend/internal/logger"
)

const (
	subDomainRecordTTL  = 900
	challengeRecordTTL  = 300
	acmeChallengePrefix = "_acme-challenge."
)

// DomainStep publishes DNS records for enterprise sub-domains
type DomainStep struct {
	dns              clients.DNSProvider
	hostedZoneID     string
	serverIP         string
	propagationDelay time.Duration
}

// NewDomainStep creates a new domain step
func NewDomainStep(dns clients.DNSProvider, hostedZoneID, serverIP string, propagationDelay time.Duration) *DomainStep {
	return &DomainStep{
		dns:              dns,
		hostedZoneID:     hostedZoneID,
		serverIP:         serverIP,
		propagationDelay: propagationDelay,
	}
}

// CreateSubDomain points the enterprise sub-domain at the server IP
func (s *DomainStep) CreateSubDomain(ctx context.Context, enterprise *models.Enterprise) error {
	err := s.dns.UpsertRecord(ctx, clients.DNSRecord{
		Zone:   s.hostedZoneID,
		Name:   enterprise.SubDomainName,
		Type:   "A",
		Value:  s.serverIP,
		TTL:    subDomainRecordTTL,
		Action: clients.DNSActionUpsert,
	})
	if err != nil {
		return fmt.Errorf("failed to create A record for %s: %w", enterprise.SubDomainName, err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"enterprise_id": enterprise.ID,
		"sub_domain":    enterprise.SubDomainName,
		"server_ip":     s.serverIP,
	}).Info("Sub-domain record created")
	return nil
}

// CreateTxtRecord publishes the DNS-01 digest for domain and waits for it to propagate
func (s *DomainStep) CreateTxtRecord(ctx context.Context, domain, value string) error {
	return s.changeTxtRecord(ctx, domain, value, clients.DNSActionUpsert)
}

// DeleteTxtRecord removes the DNS-01 digest for domain and waits for it to propagate
func (s *DomainStep) DeleteTxtRecord(ctx context.Context, domain, value string) error {
	return s.changeTxtRecord(ctx, domain, value, clients.DNSActionDelete)
}

func (s *DomainStep) changeTxtRecord(ctx context.Context, domain, value string, action clients.DNSAction) error {
	name := acmeChallengePrefix + domain
	err := s.dns.UpsertRecord(ctx, clients.DNSRecord{
		Zone:   s.hostedZoneID,
		Name:   name,
		Type:   "TXT",
		Value:  strconv.Quote(value),
		TTL:    challengeRecordTTL,
		Action: action,
	})
	if err != nil {
		return fmt.Errorf("failed to %s TXT record %s: %w", action, name, err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"record": name,
		"action": action,
	}).Debug("Waiting for TXT record change to propagate")
	return sleepContext(ctx, s.propagationDelay)
}

// sleepContext waits for d or until ctx is done
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
