package dto

import "github.com/spec-kit/office-admin-service/internal/domain"

// OpenEditorRequest opens a draft editor. A nil index starts a blank record;
// otherwise the draft is seeded from the collection row at that position.
type OpenEditorRequest struct {
	Index *int `json:"index"`
}

// BulkDeleteRequest carries the ids selected in an overview table.
type BulkDeleteRequest struct {
	IDs []domain.ID `json:"ids"`
}
