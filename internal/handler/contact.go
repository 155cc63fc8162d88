package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/x67digital/site-api/internal/model"
	"github.com/x67digital/site-api/internal/server"
	"github.com/x67digital/site-api/internal/service"
	"github.com/x67digital/site-api/internal/validation"
)

// ContactHandler serves the contact-form endpoints.
type ContactHandler struct {
	Handler
	contacts *service.ContactService
}

func NewContactHandler(s *server.Server, contacts *service.ContactService) *ContactHandler {
	return &ContactHandler{
		Handler:  NewHandler(s),
		contacts: contacts,
	}
}

// CreateContactRequest is a contact-form submission payload.
type CreateContactRequest struct {
	Name    string  `json:"name" validate:"required,min=2,max=100"`
	Email   string  `json:"email" validate:"required,email"`
	Phone   *string `json:"phone" validate:"omitempty,max=20"`
	Message string  `json:"message" validate:"required,min=10,max=2000"`
}

func (r *CreateContactRequest) Validate() error {
	return validation.Struct(r)
}

// ContactResponse acknowledges a stored submission.
type ContactResponse struct {
	Message   string `json:"message"`
	Success   bool   `json:"success"`
	ContactID string `json:"contact_id,omitempty"`
}

// Create stores a contact submission and triggers its notifications.
func (h *ContactHandler) Create(c echo.Context, req *CreateContactRequest) (*ContactResponse, error) {
	contact, err := h.contacts.Create(c.Request().Context(), req.Name, req.Email, req.Phone, req.Message)
	if err != nil {
		return nil, err
	}

	return &ContactResponse{
		Message:   "Mesajul tău a fost trimis cu succes! Te vom contacta în curând.",
		Success:   true,
		ContactID: contact.ID,
	}, nil
}

// ListContactsRequest carries the admin listing query parameters.
type ListContactsRequest struct {
	Limit int `query:"limit" validate:"omitempty,min=1,max=200"`
	Skip  int `query:"skip" validate:"omitempty,min=0"`
}

func (r *ListContactsRequest) Validate() error {
	return validation.Struct(r)
}

// ContactListResponse is the admin listing payload.
type ContactListResponse struct {
	Contacts []*model.Contact `json:"contacts"`
	Total    int64            `json:"total"`
}

// List returns stored contacts newest-first.
func (h *ContactHandler) List(c echo.Context, req *ListContactsRequest) (*ContactListResponse, error) {
	if req.Limit == 0 {
		req.Limit = 50
	}

	contacts, total, err := h.contacts.List(c.Request().Context(), req.Limit, req.Skip)
	if err != nil {
		return nil, err
	}

	if contacts == nil {
		contacts = []*model.Contact{}
	}

	return &ContactListResponse{
		Contacts: contacts,
		Total:    total,
	}, nil
}
