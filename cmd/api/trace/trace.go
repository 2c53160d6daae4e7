package trace

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"strconv"
	"sync/atomic"
)

type ctxKey int

const (
	requestIDKey ctxKey = iota
	spanSeqKey
)

// GenerateID returns a random 16-hex-char identifier for request
// correlation.
func GenerateID() string {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "0000000000000000"
	}
	return hex.EncodeToString(b[:])
}

// WithRequestAndSpan stores the request id and the initial span
// sequence in the context. Inbound requests start at span 0; each
// outbound call claims the next number.
func WithRequestAndSpan(ctx context.Context, requestID string, seq int64) context.Context {
	counter := new(int64)
	*counter = seq
	ctx = context.WithValue(ctx, requestIDKey, requestID)
	return context.WithValue(ctx, spanSeqKey, counter)
}

// RequestID returns the request id stored in the context, if any.
func RequestID(ctx context.Context) string {
	if v, ok := ctx.Value(requestIDKey).(string); ok {
		return v
	}
	return ""
}

// CurrentSpanID returns the current span sequence as a string without
// advancing it.
func CurrentSpanID(ctx context.Context) string {
	if counter, ok := ctx.Value(spanSeqKey).(*int64); ok {
		return strconv.FormatInt(atomic.LoadInt64(counter), 10)
	}
	return ""
}

// NextSpanID advances the span sequence and returns the request id
// together with the claimed span id. Both are empty when the context
// carries no trace state.
func NextSpanID(ctx context.Context) (requestID, spanID string) {
	requestID = RequestID(ctx)
	if requestID == "" {
		return "", ""
	}
	if counter, ok := ctx.Value(spanSeqKey).(*int64); ok {
		return requestID, strconv.FormatInt(atomic.AddInt64(counter, 1), 10)
	}
	return requestID, ""
}
