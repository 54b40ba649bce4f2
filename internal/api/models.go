package api

import (
	"github.com/phrazzld/clients-api/internal/domain"
	"github.com/phrazzld/clients-api/internal/service"
)

// ClientRequest is the JSON body accepted by create and update.
// Unknown fields are ignored.
type ClientRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	City   string `json:"city"`
	Active *bool  `json:"active"`
}

func (req ClientRequest) toInput() service.ClientInput {
	return service.ClientInput{
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		City:   req.City,
		Active: req.Active,
	}
}

// ClientListResponse is the data payload of the list endpoint.
type ClientListResponse struct {
	Total   int              `json:"total"`
	Clients []*domain.Client `json:"clients"`
}
