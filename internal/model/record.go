package model

import "time"

// RecordMeta carries the identity and timestamp fields shared by every
// record kept in a catalog slot. ID is assigned once at creation and
// never changes; CreatedAt survives wholesale field replacement.
type RecordMeta struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (m *RecordMeta) Meta() *RecordMeta { return m }
