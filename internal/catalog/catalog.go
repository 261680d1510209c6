package catalog

import (
	"inmosalta_backend/internal/model"
	"inmosalta_backend/pkg/seed"
	"inmosalta_backend/pkg/slot"
)

type (
	PropertyCollection = Collection[model.Property, *model.Property]
	ClientCollection   = Collection[model.Client, *model.Client]
)

// NewPropertyCollection opens the properties slot with the built-in
// seed catalog.
func NewPropertyCollection(slots slot.Store) *PropertyCollection {
	return NewCollection[model.Property](slots, slot.SlotProperties, seed.Properties())
}

// NewClientCollection opens the clients slot with the built-in CRM
// contacts.
func NewClientCollection(slots slot.Store) *ClientCollection {
	return NewCollection[model.Client](slots, slot.SlotClients, seed.Clients())
}
