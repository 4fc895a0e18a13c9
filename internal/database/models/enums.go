package models

// RegistrationStatus tracks an enterprise through the onboarding chain.
// The declaration order of registrationStatusOrder is significant.
type RegistrationStatus string

const (
	StatusStarted                       RegistrationStatus = "STARTED"
	StatusDomainCreated                 RegistrationStatus = "DOMAIN_CREATED"
	StatusDomainCreationFailed          RegistrationStatus = "DOMAIN_CREATION_FAILED"
	StatusCertificateCreated            RegistrationStatus = "CERTIFICATE_CREATED"
	StatusCertificateCreationFailed     RegistrationStatus = "CERTIFICATE_CREATION_FAILED"
	StatusIngressCreated                RegistrationStatus = "INGRESS_CREATED"
	StatusIngressCreationFailed         RegistrationStatus = "INGRESS_CREATION_FAILED"
	StatusDIDJSONCreated                RegistrationStatus = "DID_JSON_CREATED"
	StatusDIDJSONCreationFailed         RegistrationStatus = "DID_JSON_CREATION_FAILED"
	StatusParticipantJSONCreated        RegistrationStatus = "PARTICIPANT_JSON_CREATED"
	StatusParticipantJSONCreationFailed RegistrationStatus = "PARTICIPANT_JSON_CREATION_FAILED"
)

var registrationStatusOrder = []RegistrationStatus{
	StatusStarted,
	StatusDomainCreated,
	StatusDomainCreationFailed,
	StatusCertificateCreated,
	StatusCertificateCreationFailed,
	StatusIngressCreated,
	StatusIngressCreationFailed,
	StatusDIDJSONCreated,
	StatusDIDJSONCreationFailed,
	StatusParticipantJSONCreated,
	StatusParticipantJSONCreationFailed,
}

// Ordinal returns the 1-based position of the status, or 0 when unknown
func (s RegistrationStatus) Ordinal() int {
	for i, status := range registrationStatusOrder {
		if status == s {
			return i + 1
		}
	}
	return 0
}

// IsValid checks if the RegistrationStatus is valid
func (s RegistrationStatus) IsValid() bool {
	return s.Ordinal() > 0
}

// IsFailed reports whether the status stops the automatic chain
func (s RegistrationStatus) IsFailed() bool {
	switch s {
	case StatusDomainCreationFailed, StatusCertificateCreationFailed, StatusIngressCreationFailed,
		StatusDIDJSONCreationFailed, StatusParticipantJSONCreationFailed:
		return true
	}
	return false
}

// JobType names one onboarding step that the scheduler can run
type JobType string

const (
	JobTypeDomain      JobType = "DOMAIN"
	JobTypeCertificate JobType = "CERTIFICATE"
	JobTypeIngress     JobType = "INGRESS"
	JobTypeDID         JobType = "DID"
	JobTypeParticipant JobType = "PARTICIPANT"
)

// JobTypes lists every job type in chain order
var JobTypes = []JobType{JobTypeDomain, JobTypeCertificate, JobTypeIngress, JobTypeDID, JobTypeParticipant}

// IsValid checks if the JobType is valid
func (t JobType) IsValid() bool {
	switch t {
	case JobTypeDomain, JobTypeCertificate, JobTypeIngress, JobTypeDID, JobTypeParticipant:
		return true
	}
	return false
}

// JobStatus is the lifecycle of a scheduled job row
type JobStatus string

const (
	JobStatusScheduled JobStatus = "SCHEDULED"
	JobStatusRunning   JobStatus = "RUNNING"
	JobStatusCompleted JobStatus = "COMPLETED"
	JobStatusFailed    JobStatus = "FAILED"
)

// IsValid checks if the JobStatus is valid
func (s JobStatus) IsValid() bool {
	switch s {
	case JobStatusScheduled, JobStatusRunning, JobStatusCompleted, JobStatusFailed:
		return true
	}
	return false
}
