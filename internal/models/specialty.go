package models

// Specialty is the optional canonical entity behind raw specialty labels.
// Canonicalization is best-effort upstream, so records may or may not
// reference one.
type Specialty struct {
	ID   string `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}
