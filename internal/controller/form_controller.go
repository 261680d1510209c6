package controller

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"inmosalta_backend/internal/catalog"
	"inmosalta_backend/internal/handoff"
	"inmosalta_backend/internal/model"
	"inmosalta_backend/pkg/logger"
)

// FormController hosts the property form view and the edit-intent
// endpoint of the admin list view. The two cooperate through the
// handoff slots: the list view records which record to edit, the form
// decides create-vs-edit on mount.
type FormController struct {
	properties *catalog.PropertyCollection
	handoff    *handoff.Handoff
}

func NewFormController(properties *catalog.PropertyCollection, h *handoff.Handoff) *FormController {
	return &FormController{properties: properties, handoff: h}
}

// EditIntent is the list view's "Edit" click: it snapshots the record
// as it is right now and answers with the entry parameters the form
// must be navigated to with.
func (fc *FormController) EditIntent(c *fiber.Ctx) error {
	property, ok, err := fc.properties.Get(c.Params("id"))
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

	request, err := fc.handoff.Begin(property)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not record edit request",
		})
	}

	// The ts marker exists for log correlation only; it plays no part
	// in the form's mode decision.
	logger.Log.WithField("edit", request.EditMarker).
		WithField("ts", request.CacheMarker).
		Info("edit intent recorded")

	return c.JSON(fiber.Map{
		"form":   "/api/admin/property-form",
		"params": request,
	})
}

// MountForm is the form view's mount: it resolves the handoff against
// the edit marker in the entry parameters and answers with the mode and
// the prefill state.
func (fc *FormController) MountForm(c *fiber.Ctx) error {
	resolution, err := fc.handoff.Resolve(c.Query("edit"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not resolve form mode",
		})
	}

	if resolution.Mode == handoff.ModeEdit {
		return c.JSON(fiber.Map{
			"mode": resolution.Mode,
			"form": propertyFormState(*resolution.Record),
		})
	}
	return c.JSON(fiber.Map{
		"mode": resolution.Mode,
		"form": emptyFormState(),
	})
}

// SubmitForm saves the form in whichever mode the handoff resolves to.
// An edit submit keeps the original id, lets the catalog preserve
// createdAt from the still-present entry and replaces every other field
// with the submitted values; the handoff is cleared afterwards, so the
// next visit starts idle.
func (fc *FormController) SubmitForm(c *fiber.Ctx) error {
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

	resolution, err := fc.handoff.Resolve(c.Query("edit"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not resolve form mode",
		})
	}

	replacement := input.ToProperty()

	if resolution.Mode == handoff.ModeEdit {
		property, err := fc.properties.Update(resolution.Record.ID, func(p *model.Property) {
			*p = replacement
		})
		// Save concluded either way: the handoff must not outlive it.
		if clearErr := fc.handoff.Clear(); clearErr != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Could not clear edit request",
			})
		}
		if errors.Is(err, catalog.ErrNotFound) {
			// Deleted underneath us, e.g. from another window; the
			// update applies to nothing.
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Property not found",
			})
		}
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Could not update property",
			})
		}
		return c.JSON(fiber.Map{"mode": handoff.ModeEdit, "property": property})
	}

	property, err := fc.properties.Create(replacement)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not create property",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"mode":     handoff.ModeCreate,
		"property": property,
	})
}

// propertyFormState flattens a record back into the form's field
// values, numbers as the strings the inputs hold.
func propertyFormState(p model.Property) fiber.Map {
	return fiber.Map{
		"title":       p.Title,
		"description": p.Description,
		"location":    p.Location,
		"type":        string(p.Type),
		"status":      string(p.Status),
		"price":       strconv.FormatFloat(p.Price, 'f', -1, 64),
		"bedrooms":    strconv.Itoa(p.Bedrooms),
		"bathrooms":   strconv.Itoa(p.Bathrooms),
		"garage":      strconv.Itoa(p.Garage),
		"area":        strconv.FormatFloat(p.Area, 'f', -1, 64),
		"yearBuilt":   strconv.Itoa(p.YearBuilt),
		"features":    p.Features,
		"images":      p.Images,
	}
}

func emptyFormState() fiber.Map {
	return fiber.Map{
		"title":       "",
		"description": "",
		"location":    "",
		"type":        string(model.PropertyTypeCasa),
		"status":      string(model.PropertyStatusAvailable),
		"price":       "",
		"bedrooms":    "",
		"bathrooms":   "",
		"garage":      "",
		"area":        "",
		"yearBuilt":   "",
		"features":    []string{},
		"images":      []string{},
	}
}
