package domain

import (
	"crypto/rand"
	"fmt"
	"time"
)

const idAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewOrderID generates a human-readable order identifier of the form
// ORD-<unix-ms>-<9 random base36 chars>. Collisions are negligible but not
// cryptographically excluded.
func NewOrderID() string {
	return "ORD-" + idSuffix()
}

// NewTransactionID generates the matching TXN-<unix-ms>-<random> identifier.
func NewTransactionID() string {
	return "TXN-" + idSuffix()
}

func idSuffix() string {
	buf := make([]byte, 9)
	_, _ = rand.Read(buf)
	for i := range buf {
		buf[i] = idAlphabet[int(buf[i])%len(idAlphabet)]
	}
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), buf)
}
