package shared

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gagliardetto/solana-go"
)

type WalletConfig struct {
	PrivateKey string
	Network    string
}

var dotenvLoadOnce sync.Once

// WalletConfigFromEnv performs the requested operation.
func WalletConfigFromEnv() (WalletConfig, error) {
	loadDotEnvIfPresent()

	network := firstNonEmptyEnv("NINA_NETWORK", "SOLANA_NETWORK", "NETWORK")
	if network == "" {
		network = NetworkDevnet
	}

	privateKey := firstNonEmptyEnv("NINA_PRIVATE_KEY", "SOLANA_PRIVATE_KEY", "PRIVATE_KEY")
	if privateKey == "" {
		privateKey = firstNonEmptyEnv("NINA_KEYPAIR_PATH", "SOLANA_KEYPAIR_PATH", "KEYPAIR_PATH")
	}

	switch strings.ToLower(network) {
	case NetworkMainnet:
		if scopedKey := firstNonEmptyEnv("MAINNET_NINA_PRIVATE_KEY", "MAINNET_PRIVATE_KEY"); scopedKey != "" {
			privateKey = scopedKey
		}
	case NetworkDevnet:
		if scopedKey := firstNonEmptyEnv("DEVNET_NINA_PRIVATE_KEY", "DEVNET_PRIVATE_KEY"); scopedKey != "" {
			privateKey = scopedKey
		}
	}

	if privateKey == "" {
		return WalletConfig{}, fmt.Errorf("NINA_PRIVATE_KEY is required")
	}

	return WalletConfig{
		PrivateKey: privateKey,
		Network:    network,
	}, nil
}

func loadDotEnvIfPresent() {
	dotenvLoadOnce.Do(func() {
		cwd, err := os.Getwd()
		if err != nil {
			return
		}

		current := cwd
		for {
			candidate := filepath.Join(current, ".env")
			if _, statErr := os.Stat(candidate); statErr == nil {
				loadDotEnvFile(candidate)
				return
			}

			parent := filepath.Dir(current)
			if parent == current {
				return
			}
			current = parent
		}
	})
}

func loadDotEnvFile(path string) bool {
	file, err := os.Open(path)
	if err != nil {
		return false
	}
	defer file.Close()

	loadedAny := false
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "export ") {
			line = strings.TrimSpace(strings.TrimPrefix(line, "export "))
		}

		separator := strings.Index(line, "=")
		if separator <= 0 {
			continue
		}

		key := strings.TrimSpace(line[:separator])
		if !isValidEnvKey(key) {
			continue
		}
		if _, alreadySet := os.LookupEnv(key); alreadySet {
			continue
		}

		value := strings.TrimSpace(line[separator+1:])
		if len(value) >= 2 {
			first := value[0]
			last := value[len(value)-1]
			if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
				value = value[1 : len(value)-1]
			}
		}

		if setErr := os.Setenv(key, value); setErr == nil {
			loadedAny = true
		}
	}

	return loadedAny
}

func isValidEnvKey(key string) bool {
	if key == "" {
		return false
	}
	for index, character := range key {
		if (character >= 'A' && character <= 'Z') ||
			(character >= 'a' && character <= 'z') ||
			(index > 0 && character >= '0' && character <= '9') ||
			character == '_' {
			continue
		}
		return false
	}
	return true
}

func firstNonEmptyEnv(keys ...string) string {
	for _, key := range keys {
		value := strings.TrimSpace(os.Getenv(key))
		if value != "" {
			return value
		}
	}
	return ""
}

// ParsePrivateKey parses the provided input value. It accepts a base58
// string, a JSON byte array in solana-keygen format, or a path to a
// solana-keygen file.
func ParsePrivateKey(raw string) (solana.PrivateKey, error) {
	candidate := strings.TrimSpace(raw)
	if candidate == "" {
		return nil, fmt.Errorf("private key cannot be empty")
	}

	if strings.HasPrefix(candidate, "[") {
		var keyBytes []byte
		if err := json.Unmarshal([]byte(candidate), &keyBytes); err != nil {
			return nil, fmt.Errorf("failed to parse private key JSON array: %w", err)
		}
		if len(keyBytes) != 64 {
			return nil, fmt.Errorf("private key array must hold 64 bytes, got %d", len(keyBytes))
		}
		return solana.PrivateKey(keyBytes), nil
	}

	base58Key, base58Err := solana.PrivateKeyFromBase58(candidate)
	if base58Err == nil {
		return base58Key, nil
	}

	if _, statErr := os.Stat(candidate); statErr == nil {
		fileKey, fileErr := solana.PrivateKeyFromSolanaKeygenFile(candidate)
		if fileErr == nil {
			return fileKey, nil
		}
		return nil, fmt.Errorf("failed to read keygen file %s: %w", candidate, fileErr)
	}

	return nil, fmt.Errorf("failed to parse private key as base58 (%v) and no keygen file exists at that path", base58Err)
}
