package numbering

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
)

// PaymentPrefix and BillPaymentPrefix are the human-readable reference
// prefixes the remote store expects on payment records.
const (
	PaymentPrefix     = "PMT"
	BillPaymentPrefix = "BP"
)

// GenerateReference builds a human-readable reference number such as
// PMT-4F09A1C2. The suffix is cryptographically random, so references are
// generated without a remote round trip and collisions are negligible.
func GenerateReference(prefix string) (string, error) {
	if prefix == "" {
		return "", fmt.Errorf("prefix must not be empty")
	}
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return fmt.Sprintf("%s-%s", prefix, strings.ToUpper(hex.EncodeToString(b))), nil
}
