package release

import (
	"fmt"
	"strings"
)

// ValidateInitViaHubOptions validates the provided input value.
func ValidateInitViaHubOptions(options InitViaHubOptions) error {
	if strings.TrimSpace(options.Hub) == "" {
		return fmt.Errorf("hub public key is required")
	}
	if options.Amount == 0 {
		return fmt.Errorf("edition amount must be positive")
	}
	if options.ResalePercentage > PercentageDenominator {
		return fmt.Errorf("resale percentage %d exceeds %d", options.ResalePercentage, PercentageDenominator)
	}
	if strings.TrimSpace(options.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if len(options.Name) > 32 {
		return fmt.Errorf("name must not exceed 32 characters")
	}
	if len(options.Symbol) > 10 {
		return fmt.Errorf("symbol must not exceed 10 characters")
	}
	if err := ValidateMetadataURI(options.MetadataURI); err != nil {
		return err
	}
	return nil
}

// ValidateMetadataURI validates the provided input value.
func ValidateMetadataURI(uri string) error {
	trimmed := strings.TrimSpace(uri)
	if trimmed == "" {
		return fmt.Errorf("metadata uri is required")
	}
	if !strings.HasPrefix(trimmed, "https://") && !strings.HasPrefix(trimmed, "ar://") && !strings.HasPrefix(trimmed, "ipfs://") {
		return fmt.Errorf("metadata uri must use the https, ar, or ipfs scheme")
	}
	return nil
}

// ValidateRevenueShareTransferOptions validates the provided input value.
func ValidateRevenueShareTransferOptions(options RevenueShareTransferOptions) error {
	if strings.TrimSpace(options.Release) == "" {
		return fmt.Errorf("release public key is required")
	}
	if strings.TrimSpace(options.Recipient) == "" {
		return fmt.Errorf("recipient public key is required")
	}
	if options.PercentShare == 0 {
		return fmt.Errorf("percent share must be positive")
	}
	if options.PercentShare > PercentageDenominator {
		return fmt.Errorf("percent share %d exceeds %d", options.PercentShare, PercentageDenominator)
	}
	return nil
}
