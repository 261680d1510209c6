package model

import "time"

// Client Status
type ClientStatus string

const (
	ClientStatusActive   ClientStatus = "active"
	ClientStatusInactive ClientStatus = "inactive"
	ClientStatusLead     ClientStatus = "lead"
)

func ValidClientStatus(s ClientStatus) bool {
	switch s {
	case ClientStatusActive, ClientStatusInactive, ClientStatusLead:
		return true
	}
	return false
}

type Client struct {
	RecordMeta

	Name   string       `json:"name"`
	Email  string       `json:"email"`
	Phone  string       `json:"phone"`
	Status ClientStatus `json:"status"`

	// Referential only: a property id listed here may no longer exist
	// in the properties slot. Deleting a property does not cascade.
	InterestedProperties []string `json:"interestedProperties"`

	LastContact string `json:"lastContact"`
}

// Normalize applies CRM defaults: new contacts enter as leads.
func (c *Client) Normalize() {
	if c.Status == "" {
		c.Status = ClientStatusLead
	}
	if c.InterestedProperties == nil {
		c.InterestedProperties = []string{}
	}
}

// InterestedIn reports whether the client tracks the given property id.
func (c *Client) InterestedIn(propertyID string) bool {
	for _, id := range c.InterestedProperties {
		if id == propertyID {
			return true
		}
	}
	return false
}

// TouchContact stamps the CRM interaction date.
func (c *Client) TouchContact(now time.Time) {
	c.LastContact = now.Format("2006-01-02")
}
