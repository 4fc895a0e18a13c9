package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this email"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity && e.Context == t.Context
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// StepError reports a failed onboarding step. It carries the step name so
// callers can log it without parsing the message.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s step failed: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// Entity Not Found Errors
var (
	ErrEnterpriseNotFound            = &NotFoundError{Entity: "enterprise"}
	ErrEnterpriseCertificateNotFound = &NotFoundError{Entity: "enterprise certificate"}
	ErrObjectNotFound                = &NotFoundError{Entity: "object"}
)

// Already Exists Errors
var (
	ErrLegalNameExists     = &AlreadyExistsError{Entity: "enterprise", Context: "with this legal name"}
	ErrEmailExists         = &AlreadyExistsError{Entity: "enterprise", Context: "with this email"}
	ErrSubDomainNameExists = &AlreadyExistsError{Entity: "enterprise", Context: "with this sub domain"}
)

// Onboarding Errors
var (
	ErrUnknownJobType         = errors.New("unknown job type")
	ErrChallengeInvalid       = errors.New("acme challenge is invalid")
	ErrChallengeNotValidated  = errors.New("acme challenge was not validated within the attempt budget")
	ErrOrderInvalid           = errors.New("acme order is invalid")
	ErrOrderNotReady          = errors.New("acme order was not valid within the attempt budget")
	ErrDNS01ChallengeNotFound = errors.New("no dns-01 challenge offered for authorization")
	ErrSignerEmptyResponse    = errors.New("signer returned an empty document")
	ErrFileAccessDenied       = errors.New("file is not publicly accessible")
)

// Authentication Errors
var (
	ErrInvalidAPIKey = &AuthenticationError{Message: "invalid api key"}
	ErrInvalidToken  = &AuthenticationError{Message: "invalid or expired token"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}

// NewStepError wraps err as the failure of the named step
func NewStepError(step string, err error) error {
	return &StepError{Step: step, Err: err}
}
