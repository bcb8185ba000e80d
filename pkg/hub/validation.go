package hub

import (
	"fmt"
	"regexp"
	"strings"
)

// MaxFee is the upper bound for publish and referral fees, in basis points.
const MaxFee = 10_000

var handlePattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_-]{0,98}[a-zA-Z0-9]$`)

// ValidateHandle validates the provided input value.
func ValidateHandle(handle string) error {
	trimmed := strings.TrimSpace(handle)
	if trimmed == "" {
		return fmt.Errorf("handle is required")
	}
	if len(trimmed) > 100 {
		return fmt.Errorf("handle must not exceed 100 characters")
	}
	if !handlePattern.MatchString(trimmed) {
		return fmt.Errorf("handle %q may only contain letters, digits, '-' and '_'", handle)
	}
	return nil
}

// ValidateURI validates the provided input value.
func ValidateURI(uri string) error {
	trimmed := strings.TrimSpace(uri)
	if trimmed == "" {
		return fmt.Errorf("uri is required")
	}
	if !strings.HasPrefix(trimmed, "https://") && !strings.HasPrefix(trimmed, "ar://") && !strings.HasPrefix(trimmed, "ipfs://") {
		return fmt.Errorf("uri must use the https, ar, or ipfs scheme")
	}
	return nil
}

// ValidateFees validates the provided input value.
func ValidateFees(publishFee uint64, referralFee uint64) error {
	if publishFee > MaxFee {
		return fmt.Errorf("publish fee %d exceeds %d basis points", publishFee, MaxFee)
	}
	if referralFee > MaxFee {
		return fmt.Errorf("referral fee %d exceeds %d basis points", referralFee, MaxFee)
	}
	return nil
}

// ValidateCollaboratorOptions validates the provided input value.
func ValidateCollaboratorOptions(options CollaboratorOptions) error {
	if strings.TrimSpace(options.Collaborator) == "" {
		return fmt.Errorf("collaborator public key is required")
	}
	if options.Allowance < -1 {
		return fmt.Errorf("allowance must be -1 (unlimited) or non-negative")
	}
	return nil
}
