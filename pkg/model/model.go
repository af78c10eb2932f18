package model

// Birthday is the JSON representation of a birthday record as exchanged with
// REST API clients. All fields are optional: a lookup of an unknown id yields
// an empty Birthday.
//
// Date is formatted as yyyy-mm-dd. Photo is a data URI of the form
// "data:image/png;base64,<payload>".
type Birthday struct {
	Id    *int64  `json:"id,omitempty"`
	Name  *string `json:"name,omitempty"`
	Date  *string `json:"date,omitempty"`
	Role  *string `json:"role,omitempty"`
	Photo *string `json:"photo,omitempty"`
}

// IsEmpty reports whether no field is set.
func (b Birthday) IsEmpty() bool {
	return b.Id == nil && b.Name == nil && b.Date == nil && b.Role == nil && b.Photo == nil
}
