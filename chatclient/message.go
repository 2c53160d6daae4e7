// Package chatclient implements the client side of the farm chat:
// a per-farm session identity store, a history fetcher, the message
// reconciler and the send pipeline. The HTTP client in this package
// talks to the cmd/api chat endpoints, but any Backend can be
// injected, which is how the tests run the whole pipeline offline.
package chatclient

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Provisional id prefixes. Messages carrying these ids exist only in
// client memory until a history fetch swaps in their durable copies.
const (
	tempUserPrefix      = "temp-user-"
	tempAssistantPrefix = "temp-assistant-"
	errorPrefix         = "error-"
)

// Message is one chat message as the client sees it. CreatedAt is an
// ISO 8601 string; parsing failures are tolerated (see Timestamp).
type Message struct {
	ID        string `json:"id"`
	Role      string `json:"role"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

// Timestamp parses CreatedAt. A malformed timestamp sorts as the Unix
// epoch rather than failing the merge.
func (m Message) Timestamp() time.Time {
	if t, err := time.Parse(time.RFC3339Nano, m.CreatedAt); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, m.CreatedAt); err == nil {
		return t
	}
	return time.Unix(0, 0).UTC()
}

// IsProvisional reports whether the message id was generated client
// side and is not stable across reconciliation.
func (m Message) IsProvisional() bool {
	return strings.HasPrefix(m.ID, tempUserPrefix) ||
		strings.HasPrefix(m.ID, tempAssistantPrefix) ||
		strings.HasPrefix(m.ID, errorPrefix)
}

// NormalizeRole lowercases a role and maps anything that is not a
// known role to assistant. Guards against a store with mixed-case or
// missing roles.
func NormalizeRole(role string) string {
	switch strings.ToLower(strings.TrimSpace(role)) {
	case RoleUser:
		return RoleUser
	case RoleAssistant:
		return RoleAssistant
	default:
		return RoleAssistant
	}
}

// newProvisionalID builds a unique provisional id: source prefix, a
// millisecond timestamp and a random component so ids stay unique even
// within one millisecond.
func newProvisionalID(prefix string, now time.Time) string {
	return fmt.Sprintf("%s%d-%s", prefix, now.UnixMilli(), uuid.NewString()[:8])
}
