package chatclient_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TheKalyaniMohite/TableGrapeAgent/chatclient"
)

type sendCall struct {
	farmID    string
	message   string
	lang      string
	sessionID string
}

// fakeBackend scripts the remote side of the pipeline. sendGate, when
// set, holds SendMessage open until the test releases it; sendEntered
// signals that the call is in flight.
type fakeBackend struct {
	mu sync.Mutex

	reply      chatclient.SendResult
	sendErr    error
	history    []chatclient.Message
	historyErr error
	clearErr   error

	sendCalls    []sendCall
	historyCalls int
	clearCalls   int

	sendGate    chan struct{}
	sendEntered chan struct{}
}

func (f *fakeBackend) SendMessage(_ context.Context, farmID, message, lang, sessionID string) (chatclient.SendResult, error) {
	f.mu.Lock()
	f.sendCalls = append(f.sendCalls, sendCall{farmID: farmID, message: message, lang: lang, sessionID: sessionID})
	entered := f.sendEntered
	gate := f.sendGate
	reply, err := f.reply, f.sendErr
	f.mu.Unlock()

	if entered != nil {
		entered <- struct{}{}
	}
	if gate != nil {
		<-gate
	}
	return reply, err
}

func (f *fakeBackend) History(_ context.Context, _ string, _ int) ([]chatclient.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.historyCalls++
	if f.historyErr != nil {
		return nil, f.historyErr
	}
	out := make([]chatclient.Message, len(f.history))
	copy(out, f.history)
	return out, nil
}

func (f *fakeBackend) ClearHistory(_ context.Context, _ string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.clearCalls++
	return int64(len(f.history)), f.clearErr
}

func (f *fakeBackend) lastSend() sendCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sendCalls[len(f.sendCalls)-1]
}

func newTestConversation(t *testing.T, backend chatclient.Backend) (*chatclient.Conversation, *chatclient.SessionStore) {
	t.Helper()
	sessions := chatclient.NewSessionStore(t.TempDir())
	conv := chatclient.NewConversation("farm-1", "en", backend, sessions)
	return conv, sessions
}

func TestSendEmptyInputIsNoOp(t *testing.T) {
	backend := &fakeBackend{}
	conv, _ := newTestConversation(t, backend)

	assert.False(t, conv.Send(context.Background(), ""))
	assert.False(t, conv.Send(context.Background(), "   \n\t"))

	assert.Empty(t, backend.sendCalls)
	assert.Empty(t, conv.Messages())
	assert.Equal(t, chatclient.StateIdle, conv.State())
}

func TestSendRoundTrip(t *testing.T) {
	backend := &fakeBackend{
		reply: chatclient.SendResult{Reply: "Net the rows before veraison.", SessionID: "sess-1"},
	}
	conv, sessions := newTestConversation(t, backend)

	require.True(t, conv.Send(context.Background(), "  When should I net?  "))

	call := backend.lastSend()
	assert.Equal(t, "farm-1", call.farmID)
	assert.Equal(t, "When should I net?", call.message)
	assert.Equal(t, "en", call.lang)
	assert.Equal(t, sessions.Get("farm-1"), call.sessionID)

	msgs := conv.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, chatclient.RoleUser, msgs[0].Role)
	assert.Equal(t, "When should I net?", msgs[0].Content)
	assert.True(t, msgs[0].IsProvisional())
	assert.Equal(t, chatclient.RoleAssistant, msgs[1].Role)
	assert.Equal(t, "Net the rows before veraison.", msgs[1].Content)
	assert.Equal(t, chatclient.StateIdle, conv.State())
	assert.Equal(t, 1, backend.historyCalls)
}

func TestSendReconcilesWithFetchedHistory(t *testing.T) {
	backend := &fakeBackend{
		reply: chatclient.SendResult{Reply: "hi", SessionID: "sess-1"},
	}
	conv, _ := newTestConversation(t, backend)

	// the post-send fetch returns durable copies newer than the
	// optimistic entries, so they take over
	later := time.Now().UTC().Add(time.Minute)
	backend.history = []chatclient.Message{
		{ID: "d1", Role: "user", Content: "hello", CreatedAt: later.Format(time.RFC3339Nano)},
		{ID: "d2", Role: "assistant", Content: "hi", CreatedAt: later.Add(time.Second).Format(time.RFC3339Nano)},
	}

	require.True(t, conv.Send(context.Background(), "hello"))

	msgs := conv.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, "d1", msgs[0].ID)
	assert.Equal(t, "d2", msgs[1].ID)
	assert.False(t, msgs[0].IsProvisional())
}

func TestSendFailureAppendsFallbackMessage(t *testing.T) {
	backend := &fakeBackend{sendErr: errors.New("connection refused")}
	conv, _ := newTestConversation(t, backend)

	require.True(t, conv.Send(context.Background(), "hello?"))

	msgs := conv.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, chatclient.RoleUser, msgs[0].Role)
	assert.Equal(t, "hello?", msgs[0].Content)
	assert.Equal(t, chatclient.RoleAssistant, msgs[1].Role)
	assert.Equal(t, chatclient.ErrorReplyText, msgs[1].Content)
	assert.Equal(t, chatclient.StateIdle, conv.State())
	// no reload on a failed send
	assert.Equal(t, 0, backend.historyCalls)
}

func TestSendKeepsOptimisticWhenReloadFails(t *testing.T) {
	backend := &fakeBackend{
		reply:      chatclient.SendResult{Reply: "sure", SessionID: "sess-1"},
		historyErr: errors.New("boom"),
	}
	conv, _ := newTestConversation(t, backend)

	require.True(t, conv.Send(context.Background(), "thanks"))

	msgs := conv.Messages()
	require.Len(t, msgs, 2)
	assert.True(t, msgs[0].IsProvisional())
	assert.True(t, msgs[1].IsProvisional())
	assert.Equal(t, "sure", msgs[1].Content)
}

func TestSendReentrancyGuard(t *testing.T) {
	backend := &fakeBackend{
		reply:       chatclient.SendResult{Reply: "ok"},
		sendGate:    make(chan struct{}),
		sendEntered: make(chan struct{}),
	}
	conv, _ := newTestConversation(t, backend)

	done := make(chan bool, 1)
	go func() {
		done <- conv.Send(context.Background(), "first")
	}()
	<-backend.sendEntered

	assert.Equal(t, chatclient.StateSending, conv.State())
	assert.False(t, conv.Send(context.Background(), "second"))

	close(backend.sendGate)
	assert.True(t, <-done)
	assert.Equal(t, chatclient.StateIdle, conv.State())

	require.Len(t, backend.sendCalls, 1)
	assert.Equal(t, "first", backend.sendCalls[0].message)
}

func TestSendAdoptsServerSessionID(t *testing.T) {
	backend := &fakeBackend{
		reply: chatclient.SendResult{Reply: "ok", SessionID: "server-xyz"},
	}
	conv, sessions := newTestConversation(t, backend)

	local := sessions.GetOrCreate("farm-1")
	require.NotEqual(t, "server-xyz", local)

	require.True(t, conv.Send(context.Background(), "hello"))
	assert.Equal(t, "server-xyz", sessions.Get("farm-1"))

	require.True(t, conv.Send(context.Background(), "again"))
	assert.Equal(t, "server-xyz", backend.lastSend().sessionID)
}

func TestNewChatClearsMessagesAndRotatesSession(t *testing.T) {
	backend := &fakeBackend{
		reply: chatclient.SendResult{Reply: "ok", SessionID: "sess-1"},
	}
	conv, sessions := newTestConversation(t, backend)

	require.True(t, conv.Send(context.Background(), "hello"))
	require.NotEmpty(t, conv.Messages())
	before := sessions.Get("farm-1")

	conv.NewChat(context.Background())

	assert.Equal(t, 1, backend.clearCalls)
	assert.Empty(t, conv.Messages())
	assert.NotEqual(t, before, sessions.Get("farm-1"))
}

func TestNewChatSurvivesPurgeFailure(t *testing.T) {
	backend := &fakeBackend{clearErr: errors.New("api down")}
	conv, sessions := newTestConversation(t, backend)

	before := sessions.GetOrCreate("farm-1")
	conv.NewChat(context.Background())

	// local rotation happens regardless of the server purge
	assert.NotEqual(t, before, sessions.Get("farm-1"))
	assert.Empty(t, conv.Messages())
}

func TestStaleSendDiscardedAfterNewChat(t *testing.T) {
	backend := &fakeBackend{
		reply:       chatclient.SendResult{Reply: "late answer", SessionID: "sess-old"},
		sendGate:    make(chan struct{}),
		sendEntered: make(chan struct{}),
	}
	conv, _ := newTestConversation(t, backend)

	done := make(chan bool, 1)
	go func() {
		done <- conv.Send(context.Background(), "slow question")
	}()
	<-backend.sendEntered

	conv.NewChat(context.Background())
	close(backend.sendGate)
	require.True(t, <-done)

	// the late reply belongs to the rotated-away session and is dropped
	assert.Empty(t, conv.Messages())
	assert.Equal(t, chatclient.StateIdle, conv.State())
}

func TestLoadHistoryPopulatesAndNormalizes(t *testing.T) {
	backend := &fakeBackend{
		history: []chatclient.Message{
			{ID: "d2", Role: "ASSISTANT", Content: "hi", CreatedAt: "2026-03-01T10:00:01Z"},
			{ID: "d1", Role: "User", Content: "hello", CreatedAt: "2026-03-01T10:00:00Z"},
			{ID: "d3", Role: "system", Content: "note", CreatedAt: "2026-03-01T10:00:02Z"},
		},
	}
	conv, _ := newTestConversation(t, backend)

	conv.LoadHistory(context.Background())

	msgs := conv.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, []string{"d1", "d2", "d3"}, []string{msgs[0].ID, msgs[1].ID, msgs[2].ID})
	assert.Equal(t, chatclient.RoleUser, msgs[0].Role)
	assert.Equal(t, chatclient.RoleAssistant, msgs[1].Role)
	assert.Equal(t, chatclient.RoleAssistant, msgs[2].Role)
}

func TestLoadHistoryFetchFailureIsNotFatal(t *testing.T) {
	backend := &fakeBackend{historyErr: errors.New("503")}
	conv, _ := newTestConversation(t, backend)

	conv.LoadHistory(context.Background())

	assert.Empty(t, conv.Messages())
	assert.Equal(t, chatclient.StateIdle, conv.State())
}
