//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"

	"streamchat/domain"
	"streamchat/domain/event"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// EventSink is one connection's outbound half. Consume must not block the
// caller beyond the provided context.
type EventSink interface {
	Consume(ctx context.Context, e event.DomainEvent) error
}

type IRegistry interface {
	Connect(connID string, sessionKey []byte, sink EventSink)
	Join(connID, displayName string) bool
	DisplayName(connID string) (string, bool)
	Disconnect(connID string) (string, bool)
	Roster() []string
	JoinedSinks(except ...string) []EventSink
	SinkFor(connID string) (EventSink, bool)
	Size() int
}

// ICipher never fails its caller: on any cryptographic fault the input is
// returned unchanged (fail-open).
type ICipher interface {
	EncryptText(plain string) string
	DecryptText(cipherText string) string
	EncryptBlob(base64Data string) string
	DecryptBlob(encryptedData string) string
}

type ICoordinator interface {
	Connect(ctx context.Context, connID string, sink EventSink)
	Join(ctx context.Context, connID string, cmd domain.JoinCommand)
	Message(ctx context.Context, connID string, cmd domain.PostMessageCommand)
	DecryptRequest(ctx context.Context, connID string, cmd domain.DecryptRequestCommand)
	Disconnect(ctx context.Context, connID string)
}
