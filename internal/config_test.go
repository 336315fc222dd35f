package internal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"streamchat/errors"
)

func validConfig() Config {
	return Config{
		Host:                 "0.0.0.0",
		Port:                 8000,
		LogLevel:             "INFO",
		ConnectionBufferSize: 64,
		DeliveryTimeout:      3 * time.Second,
		MaxContentLength:     4096,
		CharReplacement:      "*",
		MetricInterval:       30 * time.Second,
		RestartInterval:      200 * time.Millisecond,
		ShutdownTimeout:      5 * time.Second,
		UploadsDir:           "uploads",
	}
}

func TestConfig_Validate_Accepts_Defaults(t *testing.T) {
	req := require.New(t)

	req.NoError(validConfig().Validate())
}

func TestConfig_Validate_Rejects_Bad_Port(t *testing.T) {
	req := require.New(t)
	config := validConfig()
	config.Port = 70000

	req.Error(config.Validate())
}

func TestConfig_Validate_Rejects_Zero_Buffer(t *testing.T) {
	req := require.New(t)
	config := validConfig()
	config.ConnectionBufferSize = 0

	req.Error(config.Validate())
}

func TestConfig_Addr(t *testing.T) {
	req := require.New(t)
	config := validConfig()
	config.Host = "127.0.0.1"
	config.Port = 9001

	req.Equal("127.0.0.1:9001", config.Addr())
}

func TestCharacterRune_Accepts_Single_Rune(t *testing.T) {
	req := require.New(t)

	r, err := CharacterRune("#")

	req.NoError(err)
	req.Equal('#', r)
}

func TestCharacterRune_Accepts_Multibyte_Rune(t *testing.T) {
	req := require.New(t)

	r, err := CharacterRune("•")

	req.NoError(err)
	req.Equal('•', r)
}

func TestCharacterRune_Rejects_Multiple_Characters(t *testing.T) {
	req := require.New(t)

	_, err := CharacterRune("**")

	req.ErrorIs(err, errors.ErrInvalidReplacement)
}

func TestCharacterRune_Rejects_Empty(t *testing.T) {
	req := require.New(t)

	_, err := CharacterRune("")

	req.ErrorIs(err, errors.ErrInvalidReplacement)
}
