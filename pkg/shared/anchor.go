package shared

import (
	"bytes"
	"crypto/sha256"
	"fmt"

	bin "github.com/gagliardetto/binary"
)

// InstructionDiscriminator returns the 8-byte Anchor discriminator for a
// global instruction with the given snake_case name.
func InstructionDiscriminator(name string) []byte {
	sum := sha256.Sum256([]byte("global:" + name))
	return sum[:8]
}

// AccountDiscriminator returns the 8-byte Anchor discriminator for an
// account type with the given CamelCase name.
func AccountDiscriminator(name string) []byte {
	sum := sha256.Sum256([]byte("account:" + name))
	return sum[:8]
}

// EncodeInstruction serializes an Anchor instruction payload: the global
// discriminator for name followed by the Borsh encoding of args. A nil args
// value encodes an argument-free instruction.
func EncodeInstruction(name string, args any) ([]byte, error) {
	data := new(bytes.Buffer)
	data.Write(InstructionDiscriminator(name))

	if args != nil {
		encoder := bin.NewBorshEncoder(data)
		if err := encoder.Encode(args); err != nil {
			return nil, fmt.Errorf("failed to encode %s args: %w", name, err)
		}
	}

	return data.Bytes(), nil
}
