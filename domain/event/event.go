// Package event declares the outbound events delivered to connected clients.
// Each event knows its wire name; the transport wraps it in a named frame.
package event

// DomainEvent is anything the coordinator can emit to a client sink.
type DomainEvent interface {
	EventName() string
}

// ChatMessage is the broadcast (or targeted) chat payload.
// Encrypted reflects the code path that produced the message, not whether
// encryption actually succeeded: user messages always carry true, system
// messages always carry false.
type ChatMessage struct {
	Username  string `json:"username"`
	Message   string `json:"message"`
	Encrypted bool   `json:"encrypted"`
	Timestamp string `json:"timestamp"`
	FileData  string `json:"fileData,omitempty"`
	FileType  string `json:"fileType,omitempty"`
	FileName  string `json:"fileName,omitempty"`
}

func (ChatMessage) EventName() string { return "chat_message" }

// UserList is the full roster snapshot broadcast to all joined connections.
type UserList struct {
	Users []string `json:"users"`
}

func (UserList) EventName() string { return "user_list" }

// DecryptedMessage answers a decrypt request, targeted to the requester only.
type DecryptedMessage struct {
	Decrypted string `json:"decrypted"`
}

func (DecryptedMessage) EventName() string { return "decrypted_message" }
