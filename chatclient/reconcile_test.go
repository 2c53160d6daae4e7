package chatclient

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func msgAt(id, role, content, createdAt string) Message {
	return Message{ID: id, Role: role, Content: content, CreatedAt: createdAt}
}

func TestSortMessagesByCreatedAt(t *testing.T) {
	msgs := []Message{
		msgAt("m2", RoleAssistant, "second", "2026-03-01T10:00:05Z"),
		msgAt("m1", RoleUser, "first", "2026-03-01T10:00:00Z"),
		msgAt("m3", RoleUser, "third", "2026-03-01T10:01:00Z"),
	}

	sorted := SortMessages(msgs)

	assert.Equal(t, []string{"m1", "m2", "m3"}, ids(sorted))
	// input order untouched
	assert.Equal(t, "m2", msgs[0].ID)
}

func TestSortMessagesTieBreaksOnID(t *testing.T) {
	ts := "2026-03-01T10:00:00.000Z"
	msgs := []Message{
		msgAt("b", RoleAssistant, "x", ts),
		msgAt("a", RoleUser, "y", ts),
	}

	sorted := SortMessages(msgs)

	assert.Equal(t, []string{"a", "b"}, ids(sorted))
}

func TestSortMessagesMalformedTimestampSortsFirst(t *testing.T) {
	msgs := []Message{
		msgAt("m1", RoleUser, "ok", "2026-03-01T10:00:00Z"),
		msgAt("m2", RoleAssistant, "broken", "not-a-timestamp"),
	}

	sorted := SortMessages(msgs)

	// unparsable timestamps fall back to the epoch
	assert.Equal(t, []string{"m2", "m1"}, ids(sorted))
	assert.True(t, msgs[1].Timestamp().Equal(time.Unix(0, 0).UTC()))
}

func TestNormalizeRole(t *testing.T) {
	assert.Equal(t, RoleUser, NormalizeRole("user"))
	assert.Equal(t, RoleUser, NormalizeRole("  USER "))
	assert.Equal(t, RoleAssistant, NormalizeRole("Assistant"))
	assert.Equal(t, RoleAssistant, NormalizeRole("system"))
	assert.Equal(t, RoleAssistant, NormalizeRole(""))
}

func TestIsProvisional(t *testing.T) {
	now := time.Now().UTC()
	assert.True(t, Message{ID: newProvisionalID(tempUserPrefix, now)}.IsProvisional())
	assert.True(t, Message{ID: newProvisionalID(tempAssistantPrefix, now)}.IsProvisional())
	assert.True(t, Message{ID: newProvisionalID(errorPrefix, now)}.IsProvisional())
	assert.False(t, Message{ID: "0198c6a1-9a7e-7c39-b8a0-50c3f9e1d2aa"}.IsProvisional())
}

func TestMergeAuthoritativeReplacesWithFetched(t *testing.T) {
	current := []Message{
		msgAt("temp-user-100-aaaa", RoleUser, "hello", "2026-03-01T10:00:00Z"),
		msgAt("temp-assistant-101-bbbb", RoleAssistant, "hi there", "2026-03-01T10:00:02Z"),
	}
	fetched := []Message{
		msgAt("d1", RoleUser, "hello", "2026-03-01T10:00:01Z"),
		msgAt("d2", RoleAssistant, "hi there", "2026-03-01T10:00:03Z"),
	}

	merged := mergeAuthoritative(current, fetched)

	// both provisional entries are older than the newest fetched
	// message, so the durable copies fully replace them
	assert.Equal(t, []string{"d1", "d2"}, ids(merged))
}

func TestMergeAuthoritativeKeepsNewerProvisional(t *testing.T) {
	fetched := []Message{
		msgAt("d1", RoleUser, "hello", "2026-03-01T10:00:00Z"),
		msgAt("d2", RoleAssistant, "hi", "2026-03-01T10:00:01Z"),
	}
	current := []Message{
		msgAt("d1", RoleUser, "hello", "2026-03-01T10:00:00Z"),
		msgAt("d2", RoleAssistant, "hi", "2026-03-01T10:00:01Z"),
		// optimistic input not yet persisted server side
		msgAt("temp-user-200-cccc", RoleUser, "and irrigation?", "2026-03-01T10:00:05Z"),
	}

	merged := mergeAuthoritative(current, fetched)

	assert.Equal(t, []string{"d1", "d2", "temp-user-200-cccc"}, ids(merged))
}

func TestMergeAuthoritativeDropsStaleAndNonProvisional(t *testing.T) {
	fetched := []Message{
		msgAt("d5", RoleAssistant, "latest", "2026-03-01T10:05:00Z"),
	}
	current := []Message{
		// durable id absent from the fetch: server deleted it, gone
		msgAt("d1", RoleUser, "old", "2026-03-01T10:00:00Z"),
		// provisional but not newer than the fetch cutoff
		msgAt("temp-user-300-dddd", RoleUser, "older ask", "2026-03-01T10:04:00Z"),
	}

	merged := mergeAuthoritative(current, fetched)

	assert.Equal(t, []string{"d5"}, ids(merged))
}

func TestMergeAuthoritativeKeepsUnpersistedMidWindow(t *testing.T) {
	fetched := []Message{
		msgAt("d1", RoleUser, "hello", "2026-03-01T10:00:00Z"),
		msgAt("d9", RoleAssistant, "much later", "2026-03-01T10:10:00Z"),
	}
	current := []Message{
		// inside the fetched window but the server has no copy yet
		msgAt("temp-user-500-ffff", RoleUser, "did you get this?", "2026-03-01T10:05:00Z"),
	}

	merged := mergeAuthoritative(current, fetched)

	assert.Equal(t, []string{"d1", "temp-user-500-ffff", "d9"}, ids(merged))
}

func TestMergeAuthoritativeDedupesByRoleAndContent(t *testing.T) {
	current := []Message{
		msgAt("temp-user-600-gggg", RoleUser, "harvest when?", "2026-03-01T10:00:02Z"),
	}
	fetched := []Message{
		msgAt("d1", RoleUser, "earlier", "2026-03-01T10:00:00Z"),
		// durable copy of the optimistic message, different id and time
		msgAt("d2", RoleUser, "harvest when?", "2026-03-01T10:00:03Z"),
		msgAt("d3", RoleAssistant, "check brix", "2026-03-01T10:00:04Z"),
	}

	merged := mergeAuthoritative(current, fetched)

	assert.Equal(t, []string{"d1", "d2", "d3"}, ids(merged))
}

func TestMergeAuthoritativeEmptyFetchKeepsProvisional(t *testing.T) {
	current := []Message{
		msgAt("temp-user-400-eeee", RoleUser, "anyone there?", "2026-03-01T10:00:00Z"),
	}

	merged := mergeAuthoritative(current, nil)

	assert.Equal(t, []string{"temp-user-400-eeee"}, ids(merged))
}

func ids(msgs []Message) []string {
	out := make([]string, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, m.ID)
	}
	return out
}
