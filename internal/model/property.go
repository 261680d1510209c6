package model

import (
	"github.com/gosimple/slug"

	"inmosalta_backend/pkg/utils/image"
)

// Property Types
type PropertyType string

const (
	PropertyTypeCasa         PropertyType = "Casa"
	PropertyTypeDepartamento PropertyType = "Departamento"
	PropertyTypeCasaQuinta   PropertyType = "Casa Quinta"
	PropertyTypeDuplex       PropertyType = "Duplex"
	PropertyTypeTerreno      PropertyType = "Terreno"
	PropertyTypeLocal        PropertyType = "Local Comercial"
)

// Property Status
type PropertyStatus string

const (
	PropertyStatusAvailable PropertyStatus = "available"
	PropertyStatusSold      PropertyStatus = "sold"
	PropertyStatusRented    PropertyStatus = "rented"
)

func PropertyTypes() []PropertyType {
	return []PropertyType{
		PropertyTypeCasa,
		PropertyTypeDepartamento,
		PropertyTypeCasaQuinta,
		PropertyTypeDuplex,
		PropertyTypeTerreno,
		PropertyTypeLocal,
	}
}

func ValidPropertyStatus(s PropertyStatus) bool {
	switch s {
	case PropertyStatusAvailable, PropertyStatusSold, PropertyStatusRented:
		return true
	}
	return false
}

// AvailableFeatures is the fixed amenity catalog the property form
// offers. Feature sets on a record are restricted to these values.
var AvailableFeatures = []string{
	"Piscina",
	"Jardín",
	"Parrilla",
	"Cochera",
	"Portón automático",
	"Aire acondicionado",
	"Calefacción",
	"Alarma",
	"Cámaras de seguridad",
	"Balcón",
	"Terraza",
	"Vestidor",
	"Lavadero",
	"Cocina integrada",
}

func KnownFeature(name string) bool {
	for _, f := range AvailableFeatures {
		if f == name {
			return true
		}
	}
	return false
}

type Property struct {
	RecordMeta

	Title       string         `json:"title"`
	Slug        string         `json:"slug"`
	Description string         `json:"description"`
	Location    string         `json:"location"`
	Type        PropertyType   `json:"type"`
	Status      PropertyStatus `json:"status"`
	Price       float64        `json:"price"`
	Bedrooms    int            `json:"bedrooms"`
	Bathrooms   int            `json:"bathrooms"`
	Garage      int            `json:"garage"`
	Area        float64        `json:"area"`
	YearBuilt   int            `json:"yearBuilt"`
	Features    []string       `json:"features"`
	Images      []string       `json:"images"`
}

// Normalize applies the catalog defaults before a property is
// persisted: status falls back to available, the slug follows the
// title, unknown or repeated features are dropped and image entries
// that are neither URLs nor data payloads are filtered out.
func (p *Property) Normalize() {
	if p.Status == "" {
		p.Status = PropertyStatusAvailable
	}
	p.Slug = slug.Make(p.Title)
	p.Features = normalizeFeatures(p.Features)
	p.Images = FilterImages(p.Images)
}

func normalizeFeatures(features []string) []string {
	seen := make(map[string]bool, len(features))
	out := make([]string, 0, len(features))
	for _, f := range features {
		if !KnownFeature(f) || seen[f] {
			continue
		}
		seen[f] = true
		out = append(out, f)
	}
	return out
}

// FilterImages keeps only acceptable image entries (remote URLs and
// inlined data payloads), preserving their order.
func FilterImages(images []string) []string {
	out := make([]string, 0, len(images))
	for _, img := range images {
		if !image.ValidEntry(img) {
			continue
		}
		out = append(out, img)
	}
	return out
}
