package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"inmosalta_backend/internal/catalog"
	"inmosalta_backend/internal/model"
)

// PropertyInput carries the property form fields. Numeric values arrive
// as the raw form strings and are coerced, never rejected.
type PropertyInput struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Location    string   `json:"location" validate:"required"`
	Type        string   `json:"type" validate:"required"`
	Status      string   `json:"status"`
	Price       string   `json:"price"`
	Bedrooms    string   `json:"bedrooms"`
	Bathrooms   string   `json:"bathrooms"`
	Garage      string   `json:"garage"`
	Area        string   `json:"area"`
	YearBuilt   string   `json:"yearBuilt"`
	Features    []string `json:"features"`
	Images      []string `json:"images"`
}

// ToProperty maps the form fields onto a record, applying the numeric
// coercions and catalog defaults.
func (in *PropertyInput) ToProperty() model.Property {
	p := model.Property{
		Title:       in.Title,
		Description: in.Description,
		Location:    in.Location,
		Type:        model.PropertyType(in.Type),
		Status:      model.PropertyStatus(in.Status),
		Price:       coerceFloat(in.Price),
		Bedrooms:    coerceInt(in.Bedrooms),
		Bathrooms:   coerceInt(in.Bathrooms),
		Garage:      coerceInt(in.Garage),
		Area:        coerceFloat(in.Area),
		YearBuilt:   coerceYear(in.YearBuilt),
		Features:    in.Features,
		Images:      in.Images,
	}
	p.Normalize()
	return p
}

type PropertyController struct {
	properties *catalog.PropertyCollection
}

func NewPropertyController(properties *catalog.PropertyCollection) *PropertyController {
	return &PropertyController{properties: properties}
}

// ListProperties is the public listing with the catalog filters:
// type, status, price range and a location substring.
func (pc *PropertyController) ListProperties(c *fiber.Ctx) error {
	properties, err := pc.properties.LoadAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch properties",
		})
	}

	filtered := make([]model.Property, 0, len(properties))
	propertyType := c.Query("type")
	status := c.Query("status")
	location := strings.ToLower(c.Query("location"))
	minPrice := coerceFloat(c.Query("min_price"))
	maxPrice := coerceFloat(c.Query("max_price"))

	for _, p := range properties {
		if propertyType != "" && string(p.Type) != propertyType {
			continue
		}
		if status != "" && string(p.Status) != status {
			continue
		}
		if location != "" && !strings.Contains(strings.ToLower(p.Location), location) {
			continue
		}
		if minPrice > 0 && p.Price < minPrice {
			continue
		}
		if maxPrice > 0 && p.Price > maxPrice {
			continue
		}
		filtered = append(filtered, p)
	}

	return c.JSON(filtered)
}

// GetProperty is the public detail view; a missing id is the
// not-found placeholder.
func (pc *PropertyController) GetProperty(c *fiber.Ctx) error {
	property, ok, err := pc.properties.Get(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch property",
		})
	}
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Property not found",
		})
	}
	return c.JSON(property)
}

// GetPropertyBySlug serves the pretty public URLs.
func (pc *PropertyController) GetPropertyBySlug(c *fiber.Ctx) error {
	properties, err := pc.properties.LoadAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch property",
		})
	}
	propertySlug := c.Params("property_slug")
	for _, p := range properties {
		if p.Slug == propertySlug {
			return c.JSON(p)
		}
	}
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error": "Property not found",
	})
}

func (pc *PropertyController) CreateProperty(c *fiber.Ctx) error {
	input := new(PropertyInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}
	if err := validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if input.Status != "" && !model.ValidPropertyStatus(model.PropertyStatus(input.Status)) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid status value",
			"valid_statuses": []model.PropertyStatus{
				model.PropertyStatusAvailable,
				model.PropertyStatusSold,
				model.PropertyStatusRented,
			},
		})
	}

	property, err := pc.properties.Create(input.ToProperty())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not create property",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(property)
}

// UpdateProperty replaces the record's fields wholesale; id and
// createdAt survive the replacement.
func (pc *PropertyController) UpdateProperty(c *fiber.Ctx) error {
	input := new(PropertyInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}
	if err := validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	replacement := input.ToProperty()
	property, err := pc.properties.Update(c.Params("id"), func(p *model.Property) {
		*p = replacement
	})
	if errors.Is(err, catalog.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Property not found",
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not update property",
		})
	}
	return c.JSON(property)
}

// DeleteProperty removes the record. Deleting an id that is already
// gone still answers 204: the caller is not told about the no-op.
func (pc *PropertyController) DeleteProperty(c *fiber.Ctx) error {
	if err := pc.properties.Delete(c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not delete property",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
