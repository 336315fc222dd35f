package cipher

import (
	"encoding/base64"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"streamchat/observability"
)

func newTestCipher(t *testing.T) (*Cipher, *observability.Monitor) {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	monitor := observability.NewMonitor()
	c, err := New(log, monitor, GenerateKey())
	require.NoError(t, err)
	return c, monitor
}

func TestCipher_Text_RoundTrip(t *testing.T) {
	req := require.New(t)
	c, _ := newTestCipher(t)

	for _, plain := range []string{"hi", "Hello, this is a secret message!", "héllo wörld 💬", "a"} {
		// When a message is encrypted then decrypted
		encrypted := c.EncryptText(plain)
		decrypted := c.DecryptText(encrypted)

		// Then the original text comes back and the ciphertext is opaque
		req.NotEqual(plain, encrypted)
		req.Equal(plain, decrypted)
	}
}

func TestCipher_Text_Ciphertext_Is_URLSafe_Base64(t *testing.T) {
	req := require.New(t)
	c, _ := newTestCipher(t)

	encrypted := c.EncryptText("payload")

	_, err := base64.URLEncoding.DecodeString(encrypted)
	req.NoError(err)
}

func TestCipher_Blob_RoundTrip(t *testing.T) {
	req := require.New(t)
	c, _ := newTestCipher(t)

	// Given an already-base64 attachment payload
	blob := base64.StdEncoding.EncodeToString([]byte("file bytes here"))

	encrypted := c.EncryptBlob(blob)
	decrypted := c.DecryptBlob(encrypted)

	req.NotEqual(blob, encrypted)
	req.Equal(blob, decrypted)
}

func TestCipher_Decrypt_Garbage_Fails_Open(t *testing.T) {
	req := require.New(t)
	c, monitor := newTestCipher(t)

	for _, garbage := range []string{"not base64 at all!!!", "YWJj", "", "aGVsbG8gd29ybGQ="} {
		// When decrypting input that was never produced by EncryptText
		out := c.DecryptText(garbage)

		// Then the input comes back unchanged, no panic, no error
		req.Equal(garbage, out)
	}
	req.NotZero(monitor.Snapshot().CryptoFallbacks)
}

func TestCipher_Decrypt_With_Foreign_Key_Fails_Open(t *testing.T) {
	req := require.New(t)
	c1, _ := newTestCipher(t)
	c2, monitor := newTestCipher(t)

	// Given a ciphertext produced under a different master key
	foreign := c1.EncryptText("secret")

	// When another process lifetime tries to decrypt it
	out := c2.DecryptText(foreign)

	// Then authentication fails and the ciphertext passes through unchanged
	req.Equal(foreign, out)
	req.Equal(uint64(1), monitor.Snapshot().CryptoFallbacks)
}

func TestCipher_Rejects_Short_Key(t *testing.T) {
	req := require.New(t)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	_, err := New(log, observability.NewMonitor(), []byte("short"))

	req.Error(err)
}

func TestLoadMasterKey_Empty_Generates_Ephemeral(t *testing.T) {
	req := require.New(t)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	key1 := LoadMasterKey(log, "")
	key2 := LoadMasterKey(log, "")

	req.Len(key1, KeySize)
	req.NotEqual(key1, key2)
}

func TestLoadMasterKey_Decodes_Supplied_Key(t *testing.T) {
	req := require.New(t)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	key := GenerateKey()

	loaded := LoadMasterKey(log, base64.URLEncoding.EncodeToString(key))

	req.Equal(key, loaded)
}

func TestLoadMasterKey_Invalid_Encoding_Falls_Back_To_Generated(t *testing.T) {
	req := require.New(t)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	loaded := LoadMasterKey(log, "***not-base64***")

	req.Len(loaded, KeySize)
}
