// Package reconcile merges server-confirmed entities back into the
// session-scoped base collections. One generic implementation covers all
// entity kinds; each kind supplies an Identity configuration instead of
// carrying its own copy of the merge logic.
package reconcile

import (
	"strings"

	"github.com/spec-kit/office-admin-service/internal/domain"
)

// MatchKind classifies how a candidate was matched against a collection.
type MatchKind int

const (
	NoMatch MatchKind = iota
	ByIndex
	ByID
	ByNaturalKey
)

// Match is the result of identity resolution.
type Match struct {
	Kind  MatchKind
	Index int
}

// Identity configures identity resolution for one entity kind.
type Identity[T any] struct {
	// ID extracts the entity id. Zero ids never match.
	ID func(T) domain.ID
	// NaturalKey extracts the fallback natural key, or "" when the kind
	// has none. Keys compare case-insensitively after trimming.
	NaturalKey func(T) string
}

func canonicalKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Resolve locates the candidate inside the collection. Precedence is
// explicit index, then id, then natural key; the ordering lets a caller
// force an update to a known row even when the payload's name collides
// with another row.
func (ident Identity[T]) Resolve(list []T, candidate T, index *int) Match {
	if index != nil && *index >= 0 && *index < len(list) {
		return Match{Kind: ByIndex, Index: *index}
	}

	if ident.ID != nil {
		if id := ident.ID(candidate); !id.IsZero() {
			for i, el := range list {
				if ident.ID(el).Equal(id) {
					return Match{Kind: ByID, Index: i}
				}
			}
		}
	}

	if ident.NaturalKey != nil {
		if key := canonicalKey(ident.NaturalKey(candidate)); key != "" {
			for i, el := range list {
				if canonicalKey(ident.NaturalKey(el)) == key {
					return Match{Kind: ByNaturalKey, Index: i}
				}
			}
		}
	}

	return Match{Kind: NoMatch}
}

// Upsert returns a new collection with the candidate replacing its matched
// position, or appended when no match exists. A nil candidate together with
// a valid index removes that position. The input slice is never mutated;
// callers rely on getting a fresh slice to detect change.
func (ident Identity[T]) Upsert(list []T, candidate *T, index *int) []T {
	if candidate == nil {
		if index == nil || *index < 0 || *index >= len(list) {
			return copyOf(list)
		}
		out := make([]T, 0, len(list)-1)
		out = append(out, list[:*index]...)
		out = append(out, list[*index+1:]...)
		return out
	}

	match := ident.Resolve(list, *candidate, index)
	if match.Kind == NoMatch {
		out := make([]T, 0, len(list)+1)
		out = append(out, list...)
		out = append(out, *candidate)
		return out
	}

	out := copyOf(list)
	out[match.Index] = *candidate
	return out
}

// RemoveByIDs filters out every element whose id is in the given set.
// An empty id list is a no-op copy.
func (ident Identity[T]) RemoveByIDs(list []T, ids []domain.ID) []T {
	if len(ids) == 0 {
		return copyOf(list)
	}
	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if key := id.Key(); key != "" {
			drop[key] = struct{}{}
		}
	}
	out := make([]T, 0, len(list))
	for _, el := range list {
		if _, gone := drop[ident.ID(el).Key()]; gone {
			continue
		}
		out = append(out, el)
	}
	return out
}

// DedupeByKey keeps the first occurrence of each non-empty key, walking the
// collection once. Elements with an empty key are dropped.
func DedupeByKey[T any](list []T, key func(T) string) []T {
	seen := make(map[string]struct{}, len(list))
	out := make([]T, 0, len(list))
	for _, el := range list {
		k := key(el)
		if k == "" {
			continue
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, el)
	}
	return out
}

func copyOf[T any](list []T) []T {
	out := make([]T, len(list))
	copy(out, list)
	return out
}
