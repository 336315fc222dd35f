// Package internal holds process-level configuration and logging setup.
package internal

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"streamchat/errors"
)

var validate = validator.New()

// Config is loaded from the environment (see cmd/server). ENCRYPTION_KEY is
// URL-safe base64 of 32 bytes; when absent an ephemeral key is generated and
// previously encrypted content does not survive a restart.
type Config struct {
	Host                 string        `env:"HOST,default=0.0.0.0"`
	Port                 int           `env:"PORT,default=8000" validate:"gt=0,lte=65535"`
	EncryptionKey        string        `env:"ENCRYPTION_KEY"`
	LogLevel             string        `env:"LOG_LEVEL,default=INFO"`
	ConnectionBufferSize int           `env:"CONNECTION_BUFFER_SIZE,default=64" validate:"gt=0"`
	DeliveryTimeout      time.Duration `env:"DELIVERY_TIMEOUT,default=3s" validate:"gt=0"`
	MaxContentLength     int           `env:"MAX_CONTENT_LENGTH,default=4096" validate:"gt=0"`
	CharReplacement      string        `env:"CHARACTER_REPLACEMENT,default=*"`
	MetricInterval       time.Duration `env:"METRIC_INTERVAL,default=30s" validate:"gt=0"`
	RestartInterval      time.Duration `env:"RESTART_INTERVAL,default=200ms" validate:"gt=0"`
	ShutdownTimeout      time.Duration `env:"SHUTDOWN_TIMEOUT,default=5s" validate:"gt=0"`
	UploadsDir           string        `env:"UPLOADS_DIR,default=uploads"`
}

// Validate enforces the struct tags after env unmarshalling.
func (c Config) Validate() error {
	return validate.Struct(c)
}

// Addr is the listen address of the HTTP/WebSocket server.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// CharacterRune guards the replacement value down to a single rune.
func CharacterRune(replacement string) (rune, error) {
	r := []rune(replacement)
	if len(r) != 1 {
		return 0, fmt.Errorf("%w: got %q", errors.ErrInvalidReplacement, replacement)
	}
	return r[0], nil
}
