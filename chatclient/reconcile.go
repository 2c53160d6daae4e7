package chatclient

import "sort"

// SortMessages returns a copy of msgs in display order: ascending
// created_at, with ascending lexicographic id as the tie-break. The
// tie-break matters because a provisional and a durable message can
// land in the same millisecond; with unique ids the order is total
// and deterministic.
func SortMessages(msgs []Message) []Message {
	out := make([]Message, len(msgs))
	copy(out, msgs)
	sort.SliceStable(out, func(i, j int) bool {
		ti, tj := out[i].Timestamp(), out[j].Timestamp()
		if !ti.Equal(tj) {
			return ti.Before(tj)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// normalizeRoles lowercases every role in place, defaulting unknown
// roles to assistant.
func normalizeRoles(msgs []Message) []Message {
	for i := range msgs {
		msgs[i].Role = NormalizeRole(msgs[i].Role)
	}
	return msgs
}

// mergeAuthoritative folds a fetched authoritative history over the
// current in-memory sequence as a non-destructive two-list merge.
// Fetched messages win: a provisional entry whose durable counterpart
// (same role and content) appears in the fetch is replaced by it. A
// provisional entry without a counterpart survives as long as it falls
// inside the fetched window, so an input the server has not persisted
// yet can never silently disappear. Entries older than the fetched
// window scroll away with it.
func mergeAuthoritative(current, fetched []Message) []Message {
	authoritative := SortMessages(fetched)
	if len(authoritative) == 0 {
		var kept []Message
		for _, m := range current {
			if m.IsProvisional() {
				kept = append(kept, m)
			}
		}
		return SortMessages(kept)
	}

	oldest := authoritative[0].Timestamp()

	seen := make(map[string]struct{}, len(authoritative))
	type roleContent struct{ role, content string }
	durable := make(map[roleContent]struct{}, len(authoritative))
	for _, m := range authoritative {
		seen[m.ID] = struct{}{}
		durable[roleContent{NormalizeRole(m.Role), m.Content}] = struct{}{}
	}

	merged := authoritative
	for _, m := range current {
		if !m.IsProvisional() {
			continue
		}
		if _, dup := seen[m.ID]; dup {
			continue
		}
		if !m.Timestamp().After(oldest) {
			continue
		}
		if _, has := durable[roleContent{NormalizeRole(m.Role), m.Content}]; has {
			continue
		}
		merged = append(merged, m)
	}
	return SortMessages(merged)
}
