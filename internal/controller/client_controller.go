package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"inmosalta_backend/internal/catalog"
	"inmosalta_backend/internal/model"
)

type ClientInput struct {
	Name                 string   `json:"name" validate:"required"`
	Email                string   `json:"email" validate:"required,email"`
	Phone                string   `json:"phone" validate:"required"`
	Status               string   `json:"status"`
	InterestedProperties []string `json:"interestedProperties"`
}

// ClientController is the CRM surface over the clients collection.
type ClientController struct {
	clients *catalog.ClientCollection
}

func NewClientController(clients *catalog.ClientCollection) *ClientController {
	return &ClientController{clients: clients}
}

func (cc *ClientController) ListClients(c *fiber.Ctx) error {
	clients, err := cc.clients.LoadAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch clients",
		})
	}

	if status := c.Query("status"); status != "" {
		filtered := make([]model.Client, 0, len(clients))
		for _, cl := range clients {
			if string(cl.Status) == status {
				filtered = append(filtered, cl)
			}
		}
		clients = filtered
	}
	return c.JSON(clients)
}

func (cc *ClientController) CreateClient(c *fiber.Ctx) error {
	input := new(ClientInput)
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
	if input.Status != "" && !model.ValidClientStatus(model.ClientStatus(input.Status)) {
		return invalidClientStatus(c)
	}

	client := model.Client{
		Name:                 input.Name,
		Email:                input.Email,
		Phone:                input.Phone,
		Status:               model.ClientStatus(input.Status),
		InterestedProperties: input.InterestedProperties,
	}
	client.Normalize()

	created, err := cc.clients.Create(client)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not create client",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (cc *ClientController) UpdateClient(c *fiber.Ctx) error {
	input := new(ClientInput)
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
	if input.Status != "" && !model.ValidClientStatus(model.ClientStatus(input.Status)) {
		return invalidClientStatus(c)
	}

	client, err := cc.clients.Update(c.Params("id"), func(cl *model.Client) {
		cl.Name = input.Name
		cl.Email = input.Email
		cl.Phone = input.Phone
		if input.Status != "" {
			cl.Status = model.ClientStatus(input.Status)
		}
		if input.InterestedProperties != nil {
			cl.InterestedProperties = input.InterestedProperties
		}
	})
	if errors.Is(err, catalog.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Client not found",
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not update client",
		})
	}
	return c.JSON(client)
}

// UpdateClientStatus moves a contact through the CRM pipeline.
func (cc *ClientController) UpdateClientStatus(c *fiber.Ctx) error {
	input := struct {
		Status string `json:"status"`
	}{}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}
	if !model.ValidClientStatus(model.ClientStatus(input.Status)) {
		return invalidClientStatus(c)
	}

	client, err := cc.clients.Update(c.Params("id"), func(cl *model.Client) {
		cl.Status = model.ClientStatus(input.Status)
	})
	if errors.Is(err, catalog.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Client not found",
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not update client status",
		})
	}
	return c.JSON(fiber.Map{
		"message": "Client status updated successfully",
		"client":  client,
	})
}

// RecordContact stamps a CRM interaction on the client.
func (cc *ClientController) RecordContact(c *fiber.Ctx) error {
	client, err := cc.clients.Update(c.Params("id"), func(cl *model.Client) {
		cl.TouchContact(time.Now())
	})
	if errors.Is(err, catalog.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Client not found",
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not record contact",
		})
	}
	return c.JSON(client)
}

// AddInterest links a property id to the client. The link is
// referential only; it is not checked or cleaned up when the property
// goes away.
func (cc *ClientController) AddInterest(c *fiber.Ctx) error {
	input := struct {
		PropertyID string `json:"propertyId" validate:"required"`
	}{}
	if err := c.BodyParser(&input); err != nil || input.PropertyID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	client, err := cc.clients.Update(c.Params("id"), func(cl *model.Client) {
		if !cl.InterestedIn(input.PropertyID) {
			cl.InterestedProperties = append(cl.InterestedProperties, input.PropertyID)
		}
	})
	if errors.Is(err, catalog.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Client not found",
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not update client",
		})
	}
	return c.JSON(client)
}

func (cc *ClientController) DeleteClient(c *fiber.Ctx) error {
	if err := cc.clients.Delete(c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not delete client",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func invalidClientStatus(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": "Invalid status value",
		"valid_statuses": []model.ClientStatus{
			model.ClientStatusActive,
			model.ClientStatusInactive,
			model.ClientStatusLead,
		},
	})
}
