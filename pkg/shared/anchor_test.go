package shared

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"testing"
)

func TestInstructionDiscriminatorLength(t *testing.T) {
	discriminator := InstructionDiscriminator("release_purchase")
	if len(discriminator) != 8 {
		t.Fatalf("expected 8 bytes, got %d", len(discriminator))
	}
}

func TestInstructionDiscriminatorMatchesSha256(t *testing.T) {
	sum := sha256.Sum256([]byte("global:hub_init"))
	discriminator := InstructionDiscriminator("hub_init")
	if !bytes.Equal(discriminator, sum[:8]) {
		t.Fatalf("unexpected discriminator: %x", discriminator)
	}
}

func TestAccountDiscriminatorDiffersFromInstruction(t *testing.T) {
	if bytes.Equal(AccountDiscriminator("Release"), InstructionDiscriminator("Release")) {
		t.Fatal("account and instruction discriminators must differ")
	}
}

func TestEncodeInstructionNoArgs(t *testing.T) {
	data, err := EncodeInstruction("release_close_edition", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(data) != 8 {
		t.Fatalf("expected bare discriminator, got %d bytes", len(data))
	}
}

func TestEncodeInstructionBorshArgs(t *testing.T) {
	type args struct {
		Amount uint64
		URI    string
	}

	data, err := EncodeInstruction("release_update_metadata", args{Amount: 25, URI: "ar://abc"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !bytes.Equal(data[:8], InstructionDiscriminator("release_update_metadata")) {
		t.Fatalf("unexpected discriminator prefix: %x", data[:8])
	}

	payload := data[8:]
	if amount := binary.LittleEndian.Uint64(payload[:8]); amount != 25 {
		t.Fatalf("unexpected amount encoding: %d", amount)
	}
	if length := binary.LittleEndian.Uint32(payload[8:12]); length != 8 {
		t.Fatalf("unexpected string length prefix: %d", length)
	}
	if string(payload[12:]) != "ar://abc" {
		t.Fatalf("unexpected string payload: %q", payload[12:])
	}
}
