// Package seed holds the built-in record sets a fresh catalog starts
// with. Seed ids are small fixed tokens ("1", "2", ...) so they can
// never collide with the millisecond ids assigned to user-created
// records, and the data is fully deterministic so repeated loads of an
// untouched catalog compare deep-equal.
package seed

import (
	"time"

	"inmosalta_backend/internal/model"
)

var seededAt = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

func meta(id string) model.RecordMeta {
	return model.RecordMeta{ID: id, CreatedAt: seededAt, UpdatedAt: seededAt}
}

// Properties returns the default property catalog for the agency.
func Properties() []model.Property {
	properties := []model.Property{
		{
			RecordMeta:  meta("1"),
			Title:       "Casa en Barrio Norte",
			Description: "Casa moderna de tres dormitorios con patio y parrilla, a minutos del centro.",
			Location:    "Barrio Norte, Salta Capital",
			Type:        model.PropertyTypeCasa,
			Status:      model.PropertyStatusAvailable,
			Price:       450000,
			Bedrooms:    3,
			Bathrooms:   2,
			Garage:      1,
			Area:        150,
			YearBuilt:   2015,
			Features:    []string{"Jardín", "Parrilla", "Cochera"},
			Images:      []string{"https://images.unsplash.com/photo-1568605114967-8130f3a36994?w=400"},
		},
		{
			RecordMeta:  meta("2"),
			Title:       "Departamento Céntrico",
			Description: "Departamento de dos ambientes con balcón, frente a la plaza principal.",
			Location:    "Centro, Salta",
			Type:        model.PropertyTypeDepartamento,
			Status:      model.PropertyStatusAvailable,
			Price:       280000,
			Bedrooms:    2,
			Bathrooms:   1,
			Garage:      0,
			Area:        85,
			YearBuilt:   2010,
			Features:    []string{"Balcón", "Aire acondicionado"},
			Images:      []string{"https://images.unsplash.com/photo-1545324418-cc1a3fa10c00?w=400"},
		},
		{
			RecordMeta:  meta("3"),
			Title:       "Casa Quinta en San Lorenzo",
			Description: "Amplia casa quinta con piscina y parque arbolado en San Lorenzo.",
			Location:    "San Lorenzo",
			Type:        model.PropertyTypeCasaQuinta,
			Status:      model.PropertyStatusAvailable,
			Price:       650000,
			Bedrooms:    4,
			Bathrooms:   3,
			Garage:      2,
			Area:        300,
			YearBuilt:   2005,
			Features:    []string{"Piscina", "Jardín", "Parrilla"},
			Images:      []string{"https://images.unsplash.com/photo-1564013799919-ab600027ffc6?w=400"},
		},
	}

	for i := range properties {
		properties[i].Normalize()
	}
	return properties
}

// Clients returns the default CRM contacts.
func Clients() []model.Client {
	clients := []model.Client{
		{
			RecordMeta:           meta("1"),
			Name:                 "Juan Pérez",
			Email:                "juan.perez@mail.com",
			Phone:                "+54 387 4123456",
			Status:               model.ClientStatusLead,
			InterestedProperties: []string{"2"},
			LastContact:          "2024-02-20",
		},
		{
			RecordMeta:           meta("2"),
			Name:                 "María González",
			Email:                "maria.gonzalez@mail.com",
			Phone:                "+54 387 4654321",
			Status:               model.ClientStatusActive,
			InterestedProperties: []string{"3"},
			LastContact:          "2024-02-25",
		},
	}

	for i := range clients {
		clients[i].Normalize()
	}
	return clients
}
