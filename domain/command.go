// Package domain declares the wire-level commands and shared chat entities.
// It contains data only, no behavior beyond trivial accessors.
package domain

// JoinCommand announces a display name for a connected client.
type JoinCommand struct {
	Username string `json:"username"`
}

// PostMessageCommand carries a user message and an optional file attachment.
// FileData is base64 of the raw file bytes, produced by the client.
type PostMessageCommand struct {
	Message   string `json:"message"`
	FileData  string `json:"fileData,omitempty"`
	FileType  string `json:"fileType,omitempty"`
	FileName  string `json:"fileName,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}

// HasAttachment reports whether the command carries file data.
func (c PostMessageCommand) HasAttachment() bool {
	return c.FileData != ""
}

// DecryptRequestCommand asks the server to decrypt a previously
// broadcast payload for the requester only.
type DecryptRequestCommand struct {
	EncryptedMessage string `json:"encrypted_message"`
}
