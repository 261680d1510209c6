package controller

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"inmosalta_backend/internal/catalog"
	"inmosalta_backend/internal/handoff"
	"inmosalta_backend/internal/report"
	"inmosalta_backend/pkg/slot"
)

// testEnv wires the controllers over an in-memory slot store, with the
// routes of the real router but no auth in front.
type testEnv struct {
	app        *fiber.App
	slots      *slot.MemoryStore
	properties *catalog.PropertyCollection
	clients    *catalog.ClientCollection
	handoff    *handoff.Handoff
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	slots := slot.NewMemoryStore()
	properties := catalog.NewPropertyCollection(slots)
	clients := catalog.NewClientCollection(slots)
	h := handoff.New(slots)

	propertyController := NewPropertyController(properties)
	formController := NewFormController(properties, h)
	clientController := NewClientController(clients)
	statsController := NewStatsController(properties, clients, &report.FixedSales{})

	app := fiber.New()
	api := app.Group("/api")

	api.Get("/properties", propertyController.ListProperties)
	api.Get("/properties/:id", propertyController.GetProperty)
	api.Get("/p/:property_slug", propertyController.GetPropertyBySlug)
	api.Post("/properties", propertyController.CreateProperty)
	api.Put("/properties/:id", propertyController.UpdateProperty)
	api.Delete("/properties/:id", propertyController.DeleteProperty)

	admin := api.Group("/admin")
	admin.Post("/properties/:id/edit-intent", formController.EditIntent)
	admin.Get("/property-form", formController.MountForm)
	admin.Post("/property-form", formController.SubmitForm)

	api.Get("/clients", clientController.ListClients)
	api.Post("/clients", clientController.CreateClient)
	api.Put("/clients/:id", clientController.UpdateClient)
	api.Put("/clients/:id/status", clientController.UpdateClientStatus)
	api.Put("/clients/:id/contact", clientController.RecordContact)
	api.Put("/clients/:id/interests", clientController.AddInterest)
	api.Delete("/clients/:id", clientController.DeleteClient)

	api.Get("/dashboard/stats", statsController.GetDashboardStats)
	api.Get("/reports/sales", statsController.GetSalesReport)

	return &testEnv{
		app:        app,
		slots:      slots,
		properties: properties,
		clients:    clients,
		handoff:    h,
	}
}

func (e *testEnv) request(t *testing.T, method, target string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func validPropertyInput() map[string]any {
	return map[string]any{
		"title":       "Duplex en Tres Cerritos",
		"description": "Duplex a estrenar con cochera doble.",
		"location":    "Tres Cerritos, Salta",
		"type":        "Duplex",
		"status":      "available",
		"price":       "320000",
		"bedrooms":    "3",
		"bathrooms":   "2",
		"garage":      "2",
		"area":        "140",
		"yearBuilt":   "2023",
		"features":    []string{"Cochera"},
		"images":      []string{"https://example.com/duplex.jpg"},
	}
}
