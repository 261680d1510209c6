// Package catalog is the single source of truth for the agency's
// record collections. Each collection lives in one persisted slot as a
// whole JSON array; every operation re-reads the slot before acting, so
// a second store handle over the same slot observes foreign writes on
// its next call (the reload-on-focus behavior of the original views).
package catalog

import (
	"encoding/json"
	"errors"
	"strconv"
	"sync"
	"time"

	"inmosalta_backend/internal/model"
	"inmosalta_backend/pkg/slot"
)

// ErrNotFound reports an update against an id that is not in the
// collection. The collection is left untouched in that case.
var ErrNotFound = errors.New("catalog: record not found")

// Record is satisfied by any entity carrying catalog metadata.
type Record interface {
	Meta() *model.RecordMeta
}

type ptrRecord[T any] interface {
	*T
	Record
}

// Collection manages one entity kind (properties or clients) backed by
// one slot. All operations are strictly ordered per collection handle;
// nothing is cached between calls.
type Collection[T any, P ptrRecord[T]] struct {
	key   string
	slots slot.Store
	seed  []T

	mu   sync.Mutex
	last time.Time // floor for id and timestamp stamps
}

func NewCollection[T any, P ptrRecord[T]](slots slot.Store, key string, seed []T) *Collection[T, P] {
	return &Collection[T, P]{key: key, slots: slots, seed: seed}
}

// LoadAll reads the slot, folds the built-in seed set in and re-persists
// the merged view. Seed records are always present and always first;
// the persisted version of a seed id wins over the pristine built-in,
// and non-seed records follow in their stored order. A slot that is
// absent or fails to parse is treated as empty and reseeded, so one
// corrupt write can never brick the catalog.
func (c *Collection[T, P]) LoadAll() ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loadLocked()
}

// Get returns the record with the given id, if present.
func (c *Collection[T, P]) Get(id string) (T, bool, error) {
	var zero T
	records, err := c.LoadAll()
	if err != nil {
		return zero, false, err
	}
	for _, r := range records {
		if recordID[T, P](&r) == id {
			return r, true, nil
		}
	}
	return zero, false, nil
}

// Create assigns a fresh id, stamps both timestamps, appends the record
// and persists the whole collection.
func (c *Collection[T, P]) Create(rec T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.loadLocked()
	if err != nil {
		var zero T
		return zero, err
	}

	now := c.tick()
	for c.containsID(records, idToken(now)) {
		now = c.tick()
	}

	meta := P(&rec).Meta()
	meta.ID = idToken(now)
	meta.CreatedAt = now
	meta.UpdatedAt = now

	records = append(records, rec)
	if err := c.persistLocked(records); err != nil {
		var zero T
		return zero, err
	}
	return rec, nil
}

// Update applies the caller's mutation to the record with the given id.
// The id and the original createdAt survive whatever apply does to the
// rest of the fields; updatedAt is stamped strictly later than the
// previous value. An unknown id leaves the collection untouched and
// returns ErrNotFound.
func (c *Collection[T, P]) Update(id string, apply func(*T)) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	records, err := c.loadLocked()
	if err != nil {
		return zero, err
	}

	for i := range records {
		meta := P(&records[i]).Meta()
		if meta.ID != id {
			continue
		}
		createdAt := meta.CreatedAt
		apply(&records[i])
		meta.ID = id
		meta.CreatedAt = createdAt
		meta.UpdatedAt = c.tick()
		if err := c.persistLocked(records); err != nil {
			return zero, err
		}
		return records[i], nil
	}
	return zero, ErrNotFound
}

// Delete removes the record with the given id and persists the
// remainder. A missing id is a silent no-op.
func (c *Collection[T, P]) Delete(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.loadLocked()
	if err != nil {
		return err
	}

	kept := records[:0]
	for _, r := range records {
		if recordID[T, P](&r) == id {
			continue
		}
		kept = append(kept, r)
	}
	return c.persistLocked(kept)
}

func (c *Collection[T, P]) loadLocked() ([]T, error) {
	raw, ok, err := c.slots.Get(c.key)
	if err != nil {
		return nil, err
	}

	var persisted []T
	if ok {
		if err := json.Unmarshal(raw, &persisted); err != nil {
			// Corrupt or foreign slot content: treated as absent.
			persisted = nil
		}
	}

	merged := c.merge(persisted)
	if err := c.persistLocked(merged); err != nil {
		return nil, err
	}
	return merged, nil
}

func (c *Collection[T, P]) merge(persisted []T) []T {
	byID := make(map[string]T, len(persisted))
	for _, r := range persisted {
		id := recordID[T, P](&r)
		if _, dup := byID[id]; !dup {
			byID[id] = r
		}
	}

	seedIDs := make(map[string]bool, len(c.seed))
	merged := make([]T, 0, len(c.seed)+len(persisted))
	for _, s := range c.seed {
		id := recordID[T, P](&s)
		seedIDs[id] = true
		if r, ok := byID[id]; ok {
			merged = append(merged, r)
		} else {
			merged = append(merged, s)
		}
	}
	for _, r := range persisted {
		if !seedIDs[recordID[T, P](&r)] {
			merged = append(merged, r)
		}
	}
	return merged
}

func (c *Collection[T, P]) persistLocked(records []T) error {
	raw, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return c.slots.Put(c.key, raw)
}

func (c *Collection[T, P]) containsID(records []T, id string) bool {
	for _, r := range records {
		if recordID[T, P](&r) == id {
			return true
		}
	}
	return false
}

// tick returns the current time, bumped forward when the wall clock has
// not advanced since the last stamp. Keeps millisecond id tokens unique
// and updatedAt strictly increasing within one process. Stamps are UTC
// with no monotonic reading, so a record returned by Create or Update
// compares deep-equal to its copy parsed back out of the slot.
func (c *Collection[T, P]) tick() time.Time {
	now := time.Now().UTC()
	if !now.After(c.last) {
		now = c.last.Add(time.Millisecond)
	}
	c.last = now
	return now
}

func idToken(t time.Time) string {
	return strconv.FormatInt(t.UnixMilli(), 10)
}

func recordID[T any, P ptrRecord[T]](r *T) string {
	return P(r).Meta().ID
}
