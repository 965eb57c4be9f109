package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

type ClientStatus string

const (
	ClientStatusActive   ClientStatus = "Ativo"
	ClientStatusInactive ClientStatus = "Inativo"
	ClientStatusPending  ClientStatus = "Pendente"
)

func (s ClientStatus) IsValid() bool {
	switch s {
	case ClientStatusActive, ClientStatusInactive, ClientStatusPending:
		return true
	}

	return false
}

type Client struct {
	ID             uuid.UUID    `json:"id"`
	StoreFrontName string       `json:"storeFrontName"`
	CNPJ           string       `json:"cnpj"`
	CompanyName    string       `json:"companyName"`
	CEP            string       `json:"cep"`
	Street         string       `json:"street"`
	Neighborhood   string       `json:"neighborhood"`
	City           string       `json:"city"`
	State          string       `json:"state"`
	Number         string       `json:"number"`
	Complement     string       `json:"complement,omitempty"`
	Status         ClientStatus `json:"status"`
	Phone          string       `json:"phone,omitempty"`
	Email          string       `json:"email,omitempty"`
	ContactPerson  string       `json:"contactPerson,omitempty"`
	AssignedUserID *uuid.UUID   `json:"assignedUserId"`
	AssignedUser   *UserSummary `json:"assignedUser,omitempty"`
	CreatedAt      time.Time    `json:"createdAt"`
	UpdatedAt      time.Time    `json:"updatedAt"`
}

// IsAssignedTo reports whether userID is the client's assigned user.
func (c Client) IsAssignedTo(userID uuid.UUID) bool {
	return c.AssignedUserID != nil && *c.AssignedUserID == userID
}

type CreateClientData struct {
	StoreFrontName string
	CNPJ           string
	CompanyName    string
	CEP            string
	Street         string
	Neighborhood   string
	City           string
	State          string
	Number         string
	Complement     string
	Status         ClientStatus
	Phone          string
	Email          string
	ContactPerson  string
	AssignedUserID *uuid.UUID
}

type UpdateClientData struct {
	StoreFrontName *string
	CNPJ           *string
	CompanyName    *string
	CEP            *string
	Street         *string
	Neighborhood   *string
	City           *string
	State          *string
	Number         *string
	Complement     *string
	Status         *ClientStatus
	Phone          *string
	Email          *string
	ContactPerson  *string
}

// Apply copies every non-nil field of d onto c.
func (d UpdateClientData) Apply(c *Client) {
	setIfNotNil(&c.StoreFrontName, d.StoreFrontName)
	setIfNotNil(&c.CNPJ, d.CNPJ)
	setIfNotNil(&c.CompanyName, d.CompanyName)
	setIfNotNil(&c.CEP, d.CEP)
	setIfNotNil(&c.Street, d.Street)
	setIfNotNil(&c.Neighborhood, d.Neighborhood)
	setIfNotNil(&c.City, d.City)
	setIfNotNil(&c.State, d.State)
	setIfNotNil(&c.Number, d.Number)
	setIfNotNil(&c.Complement, d.Complement)
	setIfNotNil(&c.Status, d.Status)
	setIfNotNil(&c.Phone, d.Phone)
	setIfNotNil(&c.Email, d.Email)
	setIfNotNil(&c.ContactPerson, d.ContactPerson)
}

func setIfNotNil[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

type ClientFilter struct {
	Name           *string
	CNPJ           *string
	City           *string
	Status         *ClientStatus
	AssignedUserID *uuid.UUID
	SortBy         ClientSortCol
	OrderBy        OrderByCol
}

type ClientSortCol string

const (
	ClientSortByStoreFrontName ClientSortCol = "storeFrontName"
	ClientSortByCompanyName    ClientSortCol = "companyName"
	ClientSortByCreatedAt      ClientSortCol = "createdAt"
	ClientSortByStatus         ClientSortCol = "status"
)

func (c ClientSortCol) IsValid() bool {
	switch c {
	case ClientSortByStoreFrontName, ClientSortByCompanyName, ClientSortByCreatedAt, ClientSortByStatus:
		return true
	}

	return false
}

func (c ClientSortCol) Column() string {
	switch c {
	case ClientSortByStoreFrontName:
		return "c.store_front_name"
	case ClientSortByCompanyName:
		return "c.company_name"
	case ClientSortByCreatedAt:
		return "c.created_at"
	case ClientSortByStatus:
		return "c.status"
	}

	return ""
}
