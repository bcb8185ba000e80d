package post

import (
	"fmt"
	"regexp"
	"strings"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// ValidateSlug validates the provided input value. Slugs are lowercase
// alphanumerics and hyphens, unique within a hub.
func ValidateSlug(slug string) error {
	if strings.TrimSpace(slug) == "" {
		return fmt.Errorf("slug is required")
	}
	if len(slug) > 100 {
		return fmt.Errorf("slug must not exceed 100 characters")
	}
	if !slugPattern.MatchString(slug) {
		return fmt.Errorf("slug %q must contain only lowercase letters, digits, and hyphens", slug)
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

// ValidateInitViaHubOptions validates the provided input value.
func ValidateInitViaHubOptions(options InitViaHubOptions) error {
	if strings.TrimSpace(options.Hub) == "" {
		return fmt.Errorf("hub public key is required")
	}
	if err := ValidateSlug(options.Slug); err != nil {
		return err
	}
	return ValidateURI(options.URI)
}
