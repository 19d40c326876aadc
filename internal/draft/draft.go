// Package draft manages the create/edit session for a single entity: a
// small state machine from first edit through save or delete, with pending
// operations suppressed rather than cancelled.
package draft

import (
	"sync"

	"github.com/spec-kit/office-admin-service/internal/domain"
	apperrors "github.com/spec-kit/office-admin-service/pkg/util/errorutil"
)

// State is the lifecycle state of an editor.
type State string

const (
	StateEditing      State = "editing"
	StateSaving       State = "saving"
	StateSaveFailed   State = "save_failed"
	StateDeleting     State = "deleting"
	StateDeleteFailed State = "delete_failed"
	StateSaved        State = "saved"
	StateDeleted      State = "deleted"
)

// Editor tracks one draft of type T. A nil index means the draft is new and
// reconciliation appends; a known index forces replacement of that row.
type Editor[T any] struct {
	mu sync.Mutex

	kind            domain.Kind
	state           State
	index           *int
	value           T
	lastErr         string
	deleteRequested bool
}

// NewBlank opens an editor over a blank template.
func NewBlank[T any](kind domain.Kind, blank T) *Editor[T] {
	return &Editor[T]{kind: kind, state: StateEditing, value: blank}
}

// NewForExisting opens an editor seeded from an existing record at the
// given collection index.
func NewForExisting[T any](kind domain.Kind, value T, index int) *Editor[T] {
	idx := index
	return &Editor[T]{kind: kind, state: StateEditing, value: value, index: &idx}
}

// Kind returns the entity kind under edit.
func (e *Editor[T]) Kind() domain.Kind { return e.kind }

// State returns the current lifecycle state.
func (e *Editor[T]) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Err returns the message of the last failed operation, if any.
func (e *Editor[T]) Err() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lastErr
}

// Value returns the current draft value.
func (e *Editor[T]) Value() T {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.value
}

// Index returns the collection index the draft was opened from, or nil for
// a new draft.
func (e *Editor[T]) Index() *int {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.index == nil {
		return nil
	}
	idx := *e.index
	return &idx
}

// IsNew reports whether the draft has no known collection position.
func (e *Editor[T]) IsNew() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.index == nil
}

// Apply mutates the draft value. Only allowed while the draft is editable;
// a pending save or delete rejects further edits.
func (e *Editor[T]) Apply(mutate func(*T)) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !editable(e.state) {
		return apperrors.NewConflict("draft has a pending operation", nil)
	}
	mutate(&e.value)
	e.state = StateEditing
	e.lastErr = ""
	return nil
}

// BeginSave transitions to Saving. A second save while one is pending is
// rejected, mirroring the disabled save button.
func (e *Editor[T]) BeginSave(final T) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !editable(e.state) {
		return apperrors.NewConflict("save already pending", nil)
	}
	e.state = StateSaving
	e.lastErr = ""
	e.value = final
	return nil
}

// CompleteSave records the reconciled entity and its settled collection
// index so follow-up saves update the same row.
func (e *Editor[T]) CompleteSave(result T, index int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state = StateSaved
	e.value = result
	idx := index
	e.index = &idx
}

// FailSave surfaces the error and returns to Editing with the entered data
// intact so the user can correct and resubmit.
func (e *Editor[T]) FailSave(msg string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state = StateSaveFailed
	e.lastErr = msg
}

// Reopen returns a Saved or failed editor to plain Editing.
func (e *Editor[T]) Reopen() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == StateSaved || e.state == StateSaveFailed || e.state == StateDeleteFailed {
		e.state = StateEditing
	}
}

// RequestDelete arms the two-step delete confirmation.
func (e *Editor[T]) RequestDelete() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !editable(e.state) {
		return apperrors.NewConflict("operation already pending", nil)
	}
	e.deleteRequested = true
	return nil
}

// BeginDelete transitions to Deleting. Requires a prior RequestDelete and
// no pending operation.
func (e *Editor[T]) BeginDelete() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.deleteRequested {
		return apperrors.NewPrecondition("delete was not confirmed")
	}
	if !editable(e.state) {
		return apperrors.NewConflict("operation already pending", nil)
	}
	e.state = StateDeleting
	e.lastErr = ""
	return nil
}

// CompleteDelete marks the record removed.
func (e *Editor[T]) CompleteDelete() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state = StateDeleted
	e.deleteRequested = false
}

// FailDelete surfaces the error; the record stays in the base collection.
func (e *Editor[T]) FailDelete(msg string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state = StateDeleteFailed
	e.lastErr = msg
	e.deleteRequested = false
}

// DeleteRequested reports whether the confirmation step is armed.
func (e *Editor[T]) DeleteRequested() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.deleteRequested
}

func editable(s State) bool {
	switch s {
	case StateEditing, StateSaveFailed, StateDeleteFailed, StateSaved:
		return true
	default:
		return false
	}
}
