package errors

import "fmt"

var (
	ErrWorkerPanic        = fmt.Errorf("worker panic")
	ErrEmptyWords         = fmt.Errorf("no words have been found")
	ErrUnknownConnection  = fmt.Errorf("unknown connection")
	ErrSinkBackpressure   = fmt.Errorf("sink buffer full")
	ErrInvalidMasterKey   = fmt.Errorf("master key must be 32 bytes")
	ErrMalformedFileData  = fmt.Errorf("file data is not valid base64")
	ErrMessageTooLong     = fmt.Errorf("message exceeds maximum length")
	ErrInvalidReplacement = fmt.Errorf("replacement must be a single character")
)
