package exchange

import (
	"fmt"
	"strings"
)

// ValidateInitOptions validates the provided input value.
func ValidateInitOptions(options InitOptions) error {
	if strings.TrimSpace(options.Release) == "" {
		return fmt.Errorf("release public key is required")
	}
	if options.ExpectedAmount == 0 {
		return fmt.Errorf("expected amount must be positive")
	}
	if options.InitializerAmount == 0 {
		return fmt.Errorf("initializer amount must be positive")
	}
	if options.IsSale && options.InitializerAmount != 1 {
		return fmt.Errorf("a sale escrows exactly one release token")
	}
	if !options.IsSale && options.ExpectedAmount != 1 {
		return fmt.Errorf("a buy offer expects exactly one release token")
	}
	return nil
}

// ValidateAcceptOptions validates the provided input value.
func ValidateAcceptOptions(options AcceptOptions) error {
	if strings.TrimSpace(options.Exchange) == "" {
		return fmt.Errorf("exchange public key is required")
	}
	if options.ExpectedAmount == 0 {
		return fmt.Errorf("expected amount must be positive")
	}
	return nil
}
