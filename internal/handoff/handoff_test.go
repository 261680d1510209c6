package handoff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inmosalta_backend/internal/model"
	"inmosalta_backend/pkg/slot"
)

func snapshot() model.Property {
	return model.Property{
		RecordMeta: model.RecordMeta{ID: "1"},
		Title:      "Casa X",
		Price:      100,
	}
}

func TestBeginThenResolveEntersEditMode(t *testing.T) {
	slots := slot.NewMemoryStore()
	h := New(slots)

	req, err := h.Begin(snapshot())
	require.NoError(t, err)
	assert.Equal(t, "1", req.EditMarker)
	assert.NotEmpty(t, req.CacheMarker)

	res, err := h.Resolve(req.EditMarker)
	require.NoError(t, err)
	assert.Equal(t, ModeEdit, res.Mode)
	require.NotNil(t, res.Record)
	assert.Equal(t, "Casa X", res.Record.Title)
	assert.Equal(t, float64(100), res.Record.Price)
}

func TestResolveEditLeavesSlotsInPlace(t *testing.T) {
	slots := slot.NewMemoryStore()
	h := New(slots)

	req, err := h.Begin(snapshot())
	require.NoError(t, err)

	_, err = h.Resolve(req.EditMarker)
	require.NoError(t, err)

	// A reload mid-edit resolves the same intent again; cleanup is the
	// save path's job, not the mount's.
	res, err := h.Resolve(req.EditMarker)
	require.NoError(t, err)
	assert.Equal(t, ModeEdit, res.Mode)
	require.NotNil(t, res.Record)
	assert.Equal(t, "Casa X", res.Record.Title)
}

func TestResolveWithoutMarkerClearsStaleIntent(t *testing.T) {
	slots := slot.NewMemoryStore()
	h := New(slots)

	_, err := h.Begin(snapshot())
	require.NoError(t, err)

	// Arriving without the marker (direct "new property" visit) must
	// not pick up the leftover intent.
	res, err := h.Resolve("")
	require.NoError(t, err)
	assert.Equal(t, ModeCreate, res.Mode)
	assert.Nil(t, res.Record)

	// And the stale pair is gone, so a later marker cannot replay it.
	_, ok, err := slots.Get(slot.SlotPendingEditRecord)
	require.NoError(t, err)
	assert.False(t, ok)
	_, ok, err = slots.Get(slot.SlotEditModeFlag)
	require.NoError(t, err)
	assert.False(t, ok)

	res, err = h.Resolve("1")
	require.NoError(t, err)
	assert.Equal(t, ModeCreate, res.Mode)
}

func TestResolveMarkerAloneIsCreate(t *testing.T) {
	h := New(slot.NewMemoryStore())

	// Marker present but no snapshot and no flag: create.
	res, err := h.Resolve("1")
	require.NoError(t, err)
	assert.Equal(t, ModeCreate, res.Mode)
	assert.Nil(t, res.Record)
}

func TestResolveSnapshotWithoutFlagIsCreate(t *testing.T) {
	slots := slot.NewMemoryStore()
	h := New(slots)

	_, err := h.Begin(snapshot())
	require.NoError(t, err)
	require.NoError(t, slots.Delete(slot.SlotEditModeFlag))

	res, err := h.Resolve("1")
	require.NoError(t, err)
	assert.Equal(t, ModeCreate, res.Mode)

	// The orphaned snapshot was erased too.
	_, ok, err := slots.Get(slot.SlotPendingEditRecord)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestResolveFlagWithoutSnapshotIsCreate(t *testing.T) {
	slots := slot.NewMemoryStore()
	h := New(slots)

	require.NoError(t, slots.Put(slot.SlotEditModeFlag, []byte("true")))

	res, err := h.Resolve("1")
	require.NoError(t, err)
	assert.Equal(t, ModeCreate, res.Mode)

	_, ok, err := slots.Get(slot.SlotEditModeFlag)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestResolveBlankMarkerIsTrivial(t *testing.T) {
	h := New(slot.NewMemoryStore())

	_, err := h.Begin(snapshot())
	require.NoError(t, err)

	res, err := h.Resolve("   ")
	require.NoError(t, err)
	assert.Equal(t, ModeCreate, res.Mode)
}

func TestResolveUnparseableSnapshotIsCreate(t *testing.T) {
	slots := slot.NewMemoryStore()
	h := New(slots)

	require.NoError(t, slots.Put(slot.SlotPendingEditRecord, []byte("{broken")))
	require.NoError(t, slots.Put(slot.SlotEditModeFlag, []byte("true")))

	res, err := h.Resolve("1")
	require.NoError(t, err)
	assert.Equal(t, ModeCreate, res.Mode)
}

func TestSnapshotIsIndependentOfLaterEdits(t *testing.T) {
	slots := slot.NewMemoryStore()
	h := New(slots)

	p := snapshot()
	req, err := h.Begin(p)
	require.NoError(t, err)

	// The stored record changes after the intent was captured; the
	// form still mounts with the snapshot taken at click time.
	p.Title = "Casa X Vendida"

	res, err := h.Resolve(req.EditMarker)
	require.NoError(t, err)
	require.NotNil(t, res.Record)
	assert.Equal(t, "Casa X", res.Record.Title)
}

func TestClearIsIdempotent(t *testing.T) {
	h := New(slot.NewMemoryStore())

	_, err := h.Begin(snapshot())
	require.NoError(t, err)

	require.NoError(t, h.Clear())
	require.NoError(t, h.Clear())

	res, err := h.Resolve("1")
	require.NoError(t, err)
	assert.Equal(t, ModeCreate, res.Mode)
}

func TestBeginOverwritesPreviousIntent(t *testing.T) {
	slots := slot.NewMemoryStore()
	h := New(slots)

	_, err := h.Begin(snapshot())
	require.NoError(t, err)

	second := model.Property{RecordMeta: model.RecordMeta{ID: "2"}, Title: "Depto Y"}
	req, err := h.Begin(second)
	require.NoError(t, err)
	assert.Equal(t, "2", req.EditMarker)

	res, err := h.Resolve(req.EditMarker)
	require.NoError(t, err)
	require.NotNil(t, res.Record)
	assert.Equal(t, "Depto Y", res.Record.Title)
}
