// Package slot persists the application's named key-value slots. Each
// slot holds one JSON document (a whole collection, a snapshot, a
// session field) and every write replaces the slot value as a single
// unit, so readers see either the previous or the next document, never
// a partial one. There is no locking or versioning across store
// handles: concurrent writers are last-write-wins.
package slot

// Well-known slot names.
const (
	SlotProperties        = "properties"
	SlotClients           = "clients"
	SlotPendingEditRecord = "pendingEditRecord"
	SlotEditModeFlag      = "editModeFlag"
	SlotCurrentUser       = "currentUser"
	SlotAuthToken         = "authToken"
	SlotRefreshToken      = "refreshToken"
)

type Store interface {
	// Get returns the raw slot value. ok is false when the slot has
	// never been written or has been deleted.
	Get(key string) (value []byte, ok bool, err error)

	// Put replaces the slot value in one write.
	Put(key string, value []byte) error

	// Delete erases the slot. Deleting an absent slot is a no-op.
	Delete(key string) error
}
