package domain

import "strings"

// Status is the canonical lifecycle state of an entity.
type Status string

const (
	StatusActive   Status = "active"
	StatusDisabled Status = "disabled"
	StatusDraft    Status = "draft"
)

// NormalizeStatus maps the status conventions found on the wire (including
// the German synonyms the upstream API produces) onto the canonical set.
// Unrecognized values default to active.
func NormalizeStatus(raw string) Status {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "disabled", "inactive", "inaktiv", "deaktiviert":
		return StatusDisabled
	case "draft", "entwurf":
		return StatusDraft
	default:
		return StatusActive
	}
}

// StatusDisplay pairs the canonical status with its UI label.
type StatusDisplay struct {
	Type  Status `json:"type"`
	Label string `json:"label"`
}

// DisplayStatus normalizes a raw status string into a display pair.
// The same mapping is applied everywhere status is shown or filtered.
func DisplayStatus(raw string) StatusDisplay {
	switch NormalizeStatus(raw) {
	case StatusDisabled:
		return StatusDisplay{Type: StatusDisabled, Label: "Inaktiv"}
	case StatusDraft:
		return StatusDisplay{Type: StatusDraft, Label: "Entwurf"}
	default:
		return StatusDisplay{Type: StatusActive, Label: "Aktiv"}
	}
}

// DeriveStatus computes the stored status from the hide toggle and the
// required-field completeness of a draft. Status is never set directly.
func DeriveStatus(hidden, requiredFilled bool) Status {
	if hidden {
		return StatusDisabled
	}
	if requiredFilled {
		return StatusActive
	}
	return StatusDraft
}
