package clients

import (
	"context"
	"fmt"

	"onboarding-backend/internal/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/route53"
	route53types "github.com/aws/aws-sdk-go-v2/service/route53/types"
)

// Route53API is the part of the Route53 client used here
type Route53API interface {
	ChangeResourceRecordSets(ctx context.Context, params *route53.ChangeResourceRecordSetsInput, optFns ...func(*route53.Options)) (*route53.ChangeResourceRecordSetsOutput, error)
}

// Route53DNS implements DNSProvider on AWS Route53
type Route53DNS struct {
	api Route53API
}

// NewRoute53DNS creates a DNS provider from an AWS config
func NewRoute53DNS(cfg aws.Config) *Route53DNS {
	return &Route53DNS{api: route53.NewFromConfig(cfg)}
}

// NewRoute53DNSWithAPI creates a DNS provider over an existing client
func NewRoute53DNSWithAPI(api Route53API) *Route53DNS {
	return &Route53DNS{api: api}
}

// UpsertRecord submits a single-record change batch to the hosted zone
func (d *Route53DNS) UpsertRecord(ctx context.Context, record DNSRecord) error {
	input := &route53.ChangeResourceRecordSetsInput{
		HostedZoneId: aws.String(record.Zone),
		ChangeBatch: &route53types.ChangeBatch{
			Changes: []route53types.Change{{
				Action: route53types.ChangeAction(record.Action),
				ResourceRecordSet: &route53types.ResourceRecordSet{
					Name: aws.String(record.Name),
					Type: route53types.RRType(record.Type),
					TTL:  aws.Int64(record.TTL),
					ResourceRecords: []route53types.ResourceRecord{
						{Value: aws.String(record.Value)},
					},
				},
			}},
		},
	}

	out, err := d.api.ChangeResourceRecordSets(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to %s %s record %s: %w", record.Action, record.Type, record.Name, err)
	}

	if out != nil && out.ChangeInfo != nil {
		logger.WithContext(ctx).WithFields(map[string]interface{}{
			"record": record.Name,
			"type":   record.Type,
			"action": record.Action,
			"status": out.ChangeInfo.Status,
		}).Debug("dns change submitted")
	}
	return nil
}
