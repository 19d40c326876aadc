package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/office-admin-service/internal/domain"
	"github.com/spec-kit/office-admin-service/internal/draft"
	"github.com/spec-kit/office-admin-service/internal/events"
	"github.com/spec-kit/office-admin-service/internal/reconcile"
	"github.com/spec-kit/office-admin-service/internal/session"
	apperrors "github.com/spec-kit/office-admin-service/pkg/util/errorutil"
)

// directory is the generic save/delete orchestration shared by all three
// entity kinds. Each kind binds its identity configuration, upstream calls
// and session accessors here instead of duplicating the flow.
type directory[T any] struct {
	kind     domain.Kind
	identity reconcile.Identity[T]

	idOf     func(T) domain.ID
	nameOf   func(T) string
	statusOf func(T) string
	// rebuild re-runs the entity's make-object step at save time: status
	// derivation and temporary id assignment for new records.
	rebuild func(T) T

	create func(ctx context.Context, token string, v T) (*T, error)
	update func(ctx context.Context, token string, id int64, v T) (*T, error)
	remove func(ctx context.Context, token string, id int64) error

	snapshot   func(*session.Session) []T
	apply      func(*session.Session, func([]T) []T) []T
	putEditor  func(*session.Session, *draft.Editor[T]) string
	getEditor  func(*session.Session, string) (*draft.Editor[T], bool)
	dropEditor func(*session.Session, string)

	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// DraftView is the wire representation of an open editor.
type DraftView[T any] struct {
	EditorID string      `json:"editor_id"`
	State    draft.State `json:"state"`
	Error    string      `json:"error,omitempty"`
	IsNew    bool        `json:"is_new"`
	Index    *int        `json:"index,omitempty"`
	Value    T           `json:"value"`
}

func view[T any](editorID string, ed *draft.Editor[T]) DraftView[T] {
	return DraftView[T]{
		EditorID: editorID,
		State:    ed.State(),
		Error:    ed.Err(),
		IsNew:    ed.IsNew(),
		Index:    ed.Index(),
		Value:    ed.Value(),
	}
}

// openEditor spawns a draft: blank when index is nil, seeded from the
// collection row otherwise.
func (d *directory[T]) openEditor(sess *session.Session, index *int, blank T) (DraftView[T], error) {
	var ed *draft.Editor[T]
	if index == nil {
		ed = draft.NewBlank(d.kind, blank)
	} else {
		list := d.snapshot(sess)
		if *index < 0 || *index >= len(list) {
			return DraftView[T]{}, apperrors.NewNotFound("collection row", map[string]any{"index": *index})
		}
		ed = draft.NewForExisting(d.kind, list[*index], *index)
	}
	id := d.putEditor(sess, ed)
	return view(id, ed), nil
}

func (d *directory[T]) editor(sess *session.Session, editorID string) (*draft.Editor[T], error) {
	ed, ok := d.getEditor(sess, editorID)
	if !ok {
		return nil, apperrors.NewNotFound("draft editor", map[string]any{"editor_id": editorID})
	}
	return ed, nil
}

// save runs the shared flow: finalize the draft, call create or update
// depending on the id kind, fall back to the locally built object when the
// server confirms with an empty body, then reconcile with the draft's
// original index so duplicate avoidance applies.
func (d *directory[T]) save(ctx context.Context, sess *session.Session, editorID string) (DraftView[T], []T, error) {
	ed, err := d.editor(sess, editorID)
	if err != nil {
		return DraftView[T]{}, nil, err
	}

	final := d.rebuild(ed.Value())
	if err := ed.BeginSave(final); err != nil {
		return view(editorID, ed), nil, err
	}

	var resp *T
	if serverID, ok := d.idOf(final).Persisted(); ok {
		resp, err = d.update(ctx, sess.Token(), serverID, final)
	} else {
		resp, err = d.create(ctx, sess.Token(), final)
	}
	if err != nil {
		d.logger.Warn("save failed",
			zap.String("kind", string(d.kind)),
			zap.String("entity", d.nameOf(final)),
			zap.Error(err))
		ed.FailSave(apperrors.ToDomainError(err).Message)
		return view(editorID, ed), nil, err
	}

	result := final
	wasNew := !d.hasServerID(final)
	if resp != nil {
		result = *resp
	}

	index := ed.Index()
	list := d.apply(sess, func(current []T) []T {
		return d.identity.Upsert(current, &result, index)
	})

	settled := d.settledIndex(list, result, index)
	ed.CompleteSave(result, settled)

	d.publish(ctx, sess, wasNew, result, settled)
	return view(editorID, ed), list, nil
}

func (d *directory[T]) hasServerID(v T) bool {
	_, ok := d.idOf(v).Persisted()
	return ok
}

func (d *directory[T]) settledIndex(list []T, result T, index *int) int {
	match := d.identity.Resolve(list, result, index)
	if match.Kind == reconcile.NoMatch {
		return len(list) - 1
	}
	return match.Index
}

// confirmDelete performs the armed delete: upstream call first, then
// removal by the draft's position. A failure leaves the collection intact.
func (d *directory[T]) confirmDelete(ctx context.Context, sess *session.Session, editorID string) ([]T, error) {
	ed, err := d.editor(sess, editorID)
	if err != nil {
		return nil, err
	}

	value := ed.Value()
	serverID, ok := d.idOf(value).Persisted()
	if !ok {
		return nil, apperrors.NewPrecondition("record has no server id yet")
	}
	if err := ed.BeginDelete(); err != nil {
		return nil, err
	}

	if err := d.remove(ctx, sess.Token(), serverID); err != nil {
		d.logger.Warn("delete failed",
			zap.String("kind", string(d.kind)),
			zap.String("entity", d.nameOf(value)),
			zap.Error(err))
		ed.FailDelete(apperrors.ToDomainError(err).Message)
		return nil, err
	}

	index := ed.Index()
	list := d.apply(sess, func(current []T) []T {
		return d.identity.Upsert(current, nil, index)
	})
	ed.CompleteDelete()
	d.dropEditor(sess, editorID)

	d.publishDeleted(ctx, sess, value)
	return list, nil
}

// bulkDelete removes the given ids: upstream delete per persisted id,
// drafts drop locally. The first upstream failure aborts the remainder but
// the already confirmed removals still apply.
func (d *directory[T]) bulkDelete(ctx context.Context, sess *session.Session, ids []domain.ID) ([]T, error) {
	var removed []domain.ID
	var firstErr error
	for _, id := range ids {
		serverID, ok := id.Persisted()
		if !ok {
			removed = append(removed, id)
			continue
		}
		if err := d.remove(ctx, sess.Token(), serverID); err != nil {
			firstErr = err
			break
		}
		removed = append(removed, id)
	}

	list := d.apply(sess, func(current []T) []T {
		return d.identity.RemoveByIDs(current, removed)
	})

	for _, id := range removed {
		d.publishDeletedID(ctx, sess, id)
	}
	return list, firstErr
}

func (d *directory[T]) publish(ctx context.Context, sess *session.Session, created bool, result T, index int) {
	if d.dispatcher == nil {
		return
	}
	eventType := events.EventEntityUpdated
	if created {
		eventType = events.EventEntityCreated
	}
	_ = d.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Kind:      d.kind,
		EntityID:  d.idOf(result),
		Actor:     sess.Username,
		Timestamp: time.Now(),
		Payload: events.EntitySavedPayload{
			Name:   d.nameOf(result),
			Status: d.statusOf(result),
			Index:  index,
		},
	})
}

func (d *directory[T]) publishDeleted(ctx context.Context, sess *session.Session, value T) {
	if d.dispatcher == nil {
		return
	}
	_ = d.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventEntityDeleted,
		Kind:      d.kind,
		EntityID:  d.idOf(value),
		Actor:     sess.Username,
		Timestamp: time.Now(),
		Payload:   events.EntityDeletedPayload{Name: d.nameOf(value)},
	})
}

func (d *directory[T]) publishDeletedID(ctx context.Context, sess *session.Session, id domain.ID) {
	if d.dispatcher == nil {
		return
	}
	_ = d.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventEntityDeleted,
		Kind:      d.kind,
		EntityID:  id,
		Actor:     sess.Username,
		Timestamp: time.Now(),
		Payload:   events.EntityDeletedPayload{},
	})
}
