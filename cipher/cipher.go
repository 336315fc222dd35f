// Package cipher wraps the process-wide symmetric key behind a fail-open
// encrypt/decrypt API: callers always get a string back, never an error.
// A cryptographic fault returns the input unchanged and records a diagnostic,
// so a corrupted or foreign ciphertext is indistinguishable from plaintext
// to the caller.
package cipher

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/nacl/secretbox"

	"streamchat/errors"
	"streamchat/observability"
)

const (
	// KeySize is the master key length in bytes.
	KeySize = 32

	nonceSize = 24
)

// Cipher holds the master key. The key is read-only after construction,
// so Cipher is safe for concurrent use without locking.
type Cipher struct {
	log     *slog.Logger
	monitor *observability.Monitor
	key     [KeySize]byte
}

// GenerateKey returns a fresh random 32-byte key.
func GenerateKey() []byte {
	key := make([]byte, KeySize)
	// rand.Read never fails on supported platforms; it panics internally
	// if the kernel CSPRNG is unavailable.
	_, _ = rand.Read(key)
	return key
}

// LoadMasterKey decodes an externally supplied key (URL-safe base64 of
// 32 bytes). An empty value yields a generated ephemeral key: messages
// encrypted in this process lifetime cannot be decrypted after a restart.
func LoadMasterKey(log *slog.Logger, encoded string) []byte {
	if encoded == "" {
		log.Warn("ENCRYPTION_KEY not set, generating ephemeral master key; ciphertexts will not survive a restart")
		return GenerateKey()
	}
	raw, err := base64.URLEncoding.DecodeString(encoded)
	if err != nil || len(raw) != KeySize {
		log.Warn("ENCRYPTION_KEY is not URL-safe base64 of 32 bytes, generating ephemeral master key")
		return GenerateKey()
	}
	return raw
}

func New(log *slog.Logger, monitor *observability.Monitor, key []byte) (*Cipher, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: got %d", errors.ErrInvalidMasterKey, len(key))
	}
	c := &Cipher{log: log, monitor: monitor}
	copy(c.key[:], key)
	return c, nil
}

// EncryptText encrypts the UTF-8 bytes of plain and re-encodes the sealed
// payload as URL-safe base64. Fail-open: on any fault plain is returned
// unchanged.
func (c *Cipher) EncryptText(plain string) string {
	out, err := c.seal([]byte(plain))
	if err != nil {
		c.fallback("encryption error", err)
		return plain
	}
	return out
}

// DecryptText reverses EncryptText. Fail-open on decode or authentication
// failure; callers must not assume a non-error return implies successful
// decryption.
func (c *Cipher) DecryptText(cipherText string) string {
	out, err := c.open(cipherText)
	if err != nil {
		c.fallback("decryption error", err)
		return cipherText
	}
	return string(out)
}

// EncryptBlob seals an already-base64 attachment payload. The base64 string
// bytes are what is sealed; the result is base64-of-ciphertext, not raw
// ciphertext.
func (c *Cipher) EncryptBlob(base64Data string) string {
	out, err := c.seal([]byte(base64Data))
	if err != nil {
		c.fallback("file encryption error", err)
		return base64Data
	}
	return out
}

// DecryptBlob reverses EncryptBlob with the same fail-open contract.
func (c *Cipher) DecryptBlob(encryptedData string) string {
	out, err := c.open(encryptedData)
	if err != nil {
		c.fallback("file decryption error", err)
		return encryptedData
	}
	return string(out)
}

// seal is the fallible half of encryption: random nonce, secretbox seal,
// URL-safe base64 envelope of nonce||ciphertext.
func (c *Cipher) seal(payload []byte) (string, error) {
	var nonce [nonceSize]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return "", fmt.Errorf("nonce generation: %w", err)
	}
	sealed := secretbox.Seal(nonce[:], payload, &nonce, &c.key)
	return base64.URLEncoding.EncodeToString(sealed), nil
}

func (c *Cipher) open(encoded string) ([]byte, error) {
	raw, err := base64.URLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("base64 decode: %w", err)
	}
	if len(raw) < nonceSize+secretbox.Overhead {
		return nil, fmt.Errorf("ciphertext too short: %d bytes", len(raw))
	}
	var nonce [nonceSize]byte
	copy(nonce[:], raw[:nonceSize])
	plain, ok := secretbox.Open(nil, raw[nonceSize:], &nonce, &c.key)
	if !ok {
		return nil, fmt.Errorf("authentication failed")
	}
	return plain, nil
}

func (c *Cipher) fallback(msg string, err error) {
	c.log.Warn(msg+", returning input unchanged", "error", err)
	if c.monitor != nil {
		c.monitor.IncrCryptoFallbacks()
	}
}
