// Package handoff carries a single in-flight "edit this record" intent
// from the admin list view to the property form across a navigation
// boundary. No in-memory state survives that transition, so the intent
// is externalized into two slots: a full snapshot of the targeted
// record and a boolean gate. The form honors the intent only when the
// entry marker, the snapshot and the gate agree.
package handoff

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"inmosalta_backend/internal/model"
	"inmosalta_backend/pkg/slot"
)

type Mode string

const (
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
)

// Request is what the list view hands to the navigation layer: the
// entry marker the form must arrive with, plus a timestamp marker used
// purely for log correlation.
type Request struct {
	EditMarker  string `json:"edit"`
	CacheMarker string `json:"ts"`
}

// Resolution is the form view's mount decision. Record is set only in
// edit mode and holds the snapshot captured when "Edit" was clicked,
// independent of later mutations to the stored record.
type Resolution struct {
	Mode   Mode
	Record *model.Property
}

type Handoff struct {
	slots slot.Store
}

func New(slots slot.Store) *Handoff {
	return &Handoff{slots: slots}
}

// Begin records the edit intent: the full snapshot goes into the
// pending slot and the mode gate is set. The returned request carries
// the marker the destination must be entered with.
func (h *Handoff) Begin(p model.Property) (Request, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return Request{}, err
	}
	if err := h.slots.Put(slot.SlotPendingEditRecord, raw); err != nil {
		return Request{}, err
	}
	if err := h.slots.Put(slot.SlotEditModeFlag, []byte("true")); err != nil {
		return Request{}, err
	}
	return Request{
		EditMarker:  p.ID,
		CacheMarker: strconv.FormatInt(time.Now().UnixMilli(), 10),
	}, nil
}

// Resolve is the form view's mount decision. Edit mode requires all
// three preconditions at once: a non-trivial entry marker, a stored
// snapshot and the gate set to true. Any other combination is a
// create-mode visit, and any stale snapshot/flag pair is erased right
// away so it cannot replay into a later unrelated visit. In edit mode
// the slots are intentionally left in place until after save, so a
// reload mid-edit can still recover the in-progress snapshot.
func (h *Handoff) Resolve(marker string) (Resolution, error) {
	pending, err := h.pending()
	if err != nil {
		return Resolution{}, err
	}
	flag, err := h.flagSet()
	if err != nil {
		return Resolution{}, err
	}

	if strings.TrimSpace(marker) == "" || pending == nil || !flag {
		if err := h.Clear(); err != nil {
			return Resolution{}, err
		}
		return Resolution{Mode: ModeCreate}, nil
	}
	return Resolution{Mode: ModeEdit, Record: pending}, nil
}

// Clear resets the protocol to idle.
func (h *Handoff) Clear() error {
	if err := h.slots.Delete(slot.SlotPendingEditRecord); err != nil {
		return err
	}
	return h.slots.Delete(slot.SlotEditModeFlag)
}

func (h *Handoff) pending() (*model.Property, error) {
	raw, ok, err := h.slots.Get(slot.SlotPendingEditRecord)
	if err != nil || !ok {
		return nil, err
	}
	var p model.Property
	if err := json.Unmarshal(raw, &p); err != nil {
		// Unparseable snapshot: same as no snapshot at all.
		return nil, nil
	}
	return &p, nil
}

func (h *Handoff) flagSet() (bool, error) {
	raw, ok, err := h.slots.Get(slot.SlotEditModeFlag)
	if err != nil || !ok {
		return false, err
	}
	return string(raw) == "true", nil
}
