package chatclient

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/TheKalyaniMohite/TableGrapeAgent/internal/logger"
)

// Backend is the set of remote operations the conversation needs.
// chatclient.Client is the production implementation; tests inject a
// scripted fake.
type Backend interface {
	SendMessage(ctx context.Context, farmID, message, lang, sessionID string) (SendResult, error)
	History(ctx context.Context, farmID string, limit int) ([]Message, error)
	ClearHistory(ctx context.Context, farmID string) (int64, error)
}

// State is the explicit send-pipeline state. The reentrancy guard and
// stale-response discarding hang off this, not off ad-hoc booleans.
type State int

const (
	StateIdle State = iota
	StateSending
)

// ErrorReplyText is the fixed user-visible assistant message injected
// when a send fails. The raw error never reaches the transcript.
const ErrorReplyText = "Sorry, I encountered an error. Please try again."

const defaultHistoryLimit = 30

// Conversation is the send pipeline plus reconciled message state for
// one farm. All state is guarded by a mutex; network calls happen
// outside the lock so the UI stays responsive.
type Conversation struct {
	farmID   string
	lang     string
	limit    int
	backend  Backend
	sessions *SessionStore

	mu       sync.Mutex
	state    State
	messages []Message
}

// NewConversation wires a conversation for one farm. lang may be
// empty; it is passed through to the backend as-is.
func NewConversation(farmID, lang string, backend Backend, sessions *SessionStore) *Conversation {
	return &Conversation{
		farmID:   farmID,
		lang:     lang,
		limit:    defaultHistoryLimit,
		backend:  backend,
		sessions: sessions,
	}
}

// SetHistoryLimit overrides the history fetch page size.
func (c *Conversation) SetHistoryLimit(limit int) {
	if limit > 0 {
		c.limit = limit
	}
}

// State returns the current pipeline state.
func (c *Conversation) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Messages returns the conversation in display order.
func (c *Conversation) Messages() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	return SortMessages(c.messages)
}

// fetchHistory is the history-fetcher contract: any transport or
// server error is logged and reported as ok=false with an empty
// sequence; absence of history never blocks the conversation.
func (c *Conversation) fetchHistory(ctx context.Context) ([]Message, bool) {
	msgs, err := c.backend.History(ctx, c.farmID, c.limit)
	if err != nil {
		logger.WarnWithFields("chat history fetch failed", logger.Fields{
			"farm_id": c.farmID,
			"error":   err.Error(),
		})
		return nil, false
	}
	return normalizeRoles(msgs), true
}

// LoadHistory pulls the authoritative history and folds it into the
// conversation. A failed fetch leaves the current (possibly empty)
// state untouched; it is not an error.
func (c *Conversation) LoadHistory(ctx context.Context) {
	fetched, ok := c.fetchHistory(ctx)
	if !ok {
		return
	}
	c.mu.Lock()
	c.messages = mergeAuthoritative(c.messages, fetched)
	c.mu.Unlock()
}

// Send runs one pass of the send pipeline. It returns false without
// any state change when the input is empty after trimming or a send
// is already in flight; otherwise it returns true after the pipeline
// settles back to idle.
//
// The optimistic user message is appended before the network call is
// issued and is never rolled back. A send completing after "new chat"
// rotated the session id discards its results instead of resurrecting
// the old thread.
func (c *Conversation) Send(ctx context.Context, text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}

	c.mu.Lock()
	if c.state == StateSending {
		c.mu.Unlock()
		return false
	}
	c.state = StateSending
	sessionID := c.sessions.GetOrCreate(c.farmID)
	now := time.Now().UTC()
	c.messages = append(c.messages, Message{
		ID:        newProvisionalID(tempUserPrefix, now),
		Role:      RoleUser,
		Content:   trimmed,
		CreatedAt: now.Format(time.RFC3339Nano),
	})
	c.mu.Unlock()

	res, err := c.backend.SendMessage(ctx, c.farmID, trimmed, c.lang, sessionID)

	c.mu.Lock()
	c.state = StateIdle
	if c.sessions.Get(c.farmID) != sessionID {
		// "New chat" superseded this send; drop the late result.
		c.mu.Unlock()
		return true
	}
	if err != nil {
		logger.WarnWithFields("chat send failed", logger.Fields{
			"farm_id": c.farmID,
			"error":   err.Error(),
		})
		now := time.Now().UTC()
		c.messages = append(c.messages, Message{
			ID:        newProvisionalID(errorPrefix, now),
			Role:      RoleAssistant,
			Content:   ErrorReplyText,
			CreatedAt: now.Format(time.RFC3339Nano),
		})
		c.mu.Unlock()
		return true
	}

	if res.SessionID != "" && res.SessionID != sessionID {
		c.sessions.Adopt(c.farmID, res.SessionID)
		sessionID = res.SessionID
	}
	replyAt := time.Now().UTC()
	c.messages = append(c.messages, Message{
		ID:        newProvisionalID(tempAssistantPrefix, replyAt),
		Role:      RoleAssistant,
		Content:   res.Reply,
		CreatedAt: replyAt.Format(time.RFC3339Nano),
	})
	c.mu.Unlock()

	// Reload to swap provisional ids for durable ones. On fetch
	// failure the optimistic entries simply stay until a later fetch
	// succeeds; nothing is lost either way.
	fetched, ok := c.fetchHistory(ctx)
	if ok {
		c.mu.Lock()
		if c.sessions.Get(c.farmID) == sessionID {
			c.messages = mergeAuthoritative(c.messages, fetched)
		}
		c.mu.Unlock()
	}
	return true
}

// NewChat starts a fresh thread: best-effort purge of the server-side
// history, then an unconditional session rotation and local clear.
// It works in any pipeline state; an in-flight send finishing later
// sees the rotated session id and discards its result.
func (c *Conversation) NewChat(ctx context.Context) {
	if _, err := c.backend.ClearHistory(ctx, c.farmID); err != nil {
		// The rotate below still isolates the new thread locally; old
		// messages may reappear after a reload until a purge succeeds.
		logger.WarnWithFields("chat history purge failed", logger.Fields{
			"farm_id": c.farmID,
			"error":   err.Error(),
		})
	}

	c.mu.Lock()
	c.sessions.Rotate(c.farmID)
	c.messages = nil
	c.mu.Unlock()
}
