package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"sync/atomic"
	"time"
)

// ID identifies an entity either by a server-assigned integer or by a
// client-generated draft string of the form "local-<kind>-<timestamp>".
// The two variants never compare equal to each other.
type ID struct {
	persisted int64
	draft     string
	set       bool
}

// PersistedID wraps a server-assigned integer id.
func PersistedID(n int64) ID {
	return ID{persisted: n, set: true}
}

// DraftID wraps a client-generated temporary id.
func DraftID(s string) ID {
	return ID{draft: s, set: s != ""}
}

// lastDraftStamp makes draft timestamps strictly increasing within the
// process so two drafts allocated in the same millisecond stay distinct.
var lastDraftStamp atomic.Int64

func nextDraftStamp() int64 {
	for {
		now := time.Now().UnixMilli()
		last := lastDraftStamp.Load()
		if now <= last {
			now = last + 1
		}
		if lastDraftStamp.CompareAndSwap(last, now) {
			return now
		}
	}
}

// NewDraftID allocates a fresh temporary id for an unsaved entity.
func NewDraftID(kind Kind) ID {
	return DraftID(fmt.Sprintf("local-%s-%d", kind.Prefix(), nextDraftStamp()))
}

// IsZero reports whether no id has been assigned at all.
func (id ID) IsZero() bool { return !id.set }

// IsDraft reports whether the id is a temporary client-side placeholder.
func (id ID) IsDraft() bool { return id.set && id.draft != "" }

// Persisted returns the server-assigned integer id when present.
func (id ID) Persisted() (int64, bool) {
	if id.set && id.draft == "" {
		return id.persisted, true
	}
	return 0, false
}

// Equal compares two ids strictly: a persisted id only matches the same
// persisted integer, a draft id only the same draft string.
func (id ID) Equal(other ID) bool {
	if !id.set || !other.set {
		return false
	}
	if id.draft != "" || other.draft != "" {
		return id.draft == other.draft
	}
	return id.persisted == other.persisted
}

// Key returns a string form usable as a map key. Empty for zero ids.
func (id ID) Key() string {
	if !id.set {
		return ""
	}
	if id.draft != "" {
		return id.draft
	}
	return strconv.FormatInt(id.persisted, 10)
}

func (id ID) String() string { return id.Key() }

// MarshalJSON emits the integer for persisted ids, the raw string for
// drafts, and null when unset.
func (id ID) MarshalJSON() ([]byte, error) {
	if !id.set {
		return []byte("null"), nil
	}
	if id.draft != "" {
		return json.Marshal(id.draft)
	}
	return json.Marshal(id.persisted)
}

// UnmarshalJSON accepts a number (server id), a string (draft id or a
// numeric string some backends produce), or null.
func (id *ID) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		*id = ID{}
		return nil
	}
	var n int64
	if err := json.Unmarshal(data, &n); err == nil {
		*id = PersistedID(n)
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("invalid id value %s", s)
	}
	if str == "" {
		*id = ID{}
		return nil
	}
	if n, err := strconv.ParseInt(str, 10, 64); err == nil {
		*id = PersistedID(n)
		return nil
	}
	*id = DraftID(str)
	return nil
}
