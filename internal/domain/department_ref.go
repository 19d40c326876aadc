package domain

import "encoding/json"

// DepartmentRef is a department foreign key as found on the wire: either a
// bare id or an embedded {id, name} object.
type DepartmentRef struct {
	ID       ID
	Name     string
	embedded bool
}

// RefByID builds a plain id reference.
func RefByID(id ID) DepartmentRef {
	return DepartmentRef{ID: id}
}

// RefEmbedded builds an embedded object reference carrying the name.
func RefEmbedded(id ID, name string) DepartmentRef {
	return DepartmentRef{ID: id, Name: name, embedded: true}
}

// IsZero reports whether no department is referenced.
func (r DepartmentRef) IsZero() bool { return r.ID.IsZero() && r.Name == "" }

// Embedded reports whether the reference carried a full object.
func (r DepartmentRef) Embedded() bool { return r.embedded }

// MarshalJSON emits null, the raw id, or the embedded object, matching
// whatever shape the reference was read with.
func (r DepartmentRef) MarshalJSON() ([]byte, error) {
	if r.IsZero() {
		return []byte("null"), nil
	}
	if r.embedded {
		return json.Marshal(struct {
			ID   ID     `json:"id"`
			Name string `json:"name"`
		}{r.ID, r.Name})
	}
	return json.Marshal(r.ID)
}

// UnmarshalJSON accepts null, a bare id, or an {id, name} object.
func (r *DepartmentRef) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*r = DepartmentRef{}
		return nil
	}
	var obj struct {
		ID   ID     `json:"id"`
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &obj); err == nil {
		*r = DepartmentRef{ID: obj.ID, Name: obj.Name, embedded: true}
		return nil
	}
	var id ID
	if err := json.Unmarshal(data, &id); err != nil {
		return err
	}
	*r = DepartmentRef{ID: id}
	return nil
}
