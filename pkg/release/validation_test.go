package release

import (
	"strings"
	"testing"
)

func validInitOptions() InitViaHubOptions {
	return InitViaHubOptions{
		Hub:              "hubpk",
		Amount:           100,
		Price:            5_000_000,
		ResalePercentage: 100_000,
		Name:             "First Pressing",
		Symbol:           "NINA",
		MetadataURI:      "ar://metadata",
	}
}

func TestValidateInitViaHubOptions(t *testing.T) {
	if err := ValidateInitViaHubOptions(validInitOptions()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*InitViaHubOptions)
	}{
		{"missing hub", func(o *InitViaHubOptions) { o.Hub = " " }},
		{"zero amount", func(o *InitViaHubOptions) { o.Amount = 0 }},
		{"resale over denominator", func(o *InitViaHubOptions) { o.ResalePercentage = PercentageDenominator + 1 }},
		{"missing name", func(o *InitViaHubOptions) { o.Name = "" }},
		{"name too long", func(o *InitViaHubOptions) { o.Name = strings.Repeat("x", 33) }},
		{"symbol too long", func(o *InitViaHubOptions) { o.Symbol = strings.Repeat("x", 11) }},
		{"missing uri", func(o *InitViaHubOptions) { o.MetadataURI = "" }},
		{"bad uri scheme", func(o *InitViaHubOptions) { o.MetadataURI = "http://metadata" }},
	}
	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			options := validInitOptions()
			testCase.mutate(&options)
			if err := ValidateInitViaHubOptions(options); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestValidateMetadataURI(t *testing.T) {
	for _, uri := range []string{"https://arweave.net/abc", "ar://abc", "ipfs://abc"} {
		if err := ValidateMetadataURI(uri); err != nil {
			t.Fatalf("unexpected error for %s: %v", uri, err)
		}
	}
	for _, uri := range []string{"", "   ", "ftp://abc", "arweave.net/abc"} {
		if err := ValidateMetadataURI(uri); err == nil {
			t.Fatalf("expected error for %q", uri)
		}
	}
}

func TestValidateRevenueShareTransferOptions(t *testing.T) {
	valid := RevenueShareTransferOptions{
		Release:      "releasepk",
		Recipient:    "recipientpk",
		PercentShare: 250_000,
	}
	if err := ValidateRevenueShareTransferOptions(valid); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*RevenueShareTransferOptions)
	}{
		{"missing release", func(o *RevenueShareTransferOptions) { o.Release = "" }},
		{"missing recipient", func(o *RevenueShareTransferOptions) { o.Recipient = "" }},
		{"zero share", func(o *RevenueShareTransferOptions) { o.PercentShare = 0 }},
		{"share over denominator", func(o *RevenueShareTransferOptions) { o.PercentShare = PercentageDenominator + 1 }},
	}
	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			options := valid
			testCase.mutate(&options)
			if err := ValidateRevenueShareTransferOptions(options); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}
