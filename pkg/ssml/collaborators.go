package ssml

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// RequestIDGenerator yields a fresh single-line id for the X-RequestId header.
// Implementations must be safe for concurrent use.
type RequestIDGenerator interface {
	RequestID() string
}

// TimestampGenerator yields the current time for the X-Timestamp header,
// without the trailing Z. Implementations must be safe for concurrent use.
type TimestampGenerator interface {
	Timestamp() string
}

// RequestIDFunc adapts a plain function to RequestIDGenerator.
type RequestIDFunc func() string

func (f RequestIDFunc) RequestID() string {
	return f()
}

// TimestampFunc adapts a plain function to TimestampGenerator.
type TimestampFunc func() string

func (f TimestampFunc) Timestamp() string {
	return f()
}

// UUIDRequestIDs returns random v4 UUIDs as 32 lower-case hex digits.
func UUIDRequestIDs() RequestIDGenerator {
	return RequestIDFunc(func() string {
		return strings.ReplaceAll(uuid.NewString(), "-", "")
	})
}

const (
	jsDateLayout = "Mon Jan 02 2006 15:04:05"
	jsDateZone   = " GMT+0000 (Coordinated Universal Time)"
)

// JSDateTimestamps formats now() in UTC the way a browser's Date.toString
// does. A nil now means time.Now.
func JSDateTimestamps(now func() time.Time) TimestampGenerator {
	if now == nil {
		now = time.Now
	}

	return TimestampFunc(func() string {
		return now().UTC().Format(jsDateLayout) + jsDateZone
	})
}
