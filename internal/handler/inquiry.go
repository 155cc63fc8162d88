package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/x67digital/site-api/internal/model"
	"github.com/x67digital/site-api/internal/server"
	"github.com/x67digital/site-api/internal/service"
	"github.com/x67digital/site-api/internal/validation"
)

// InquiryHandler serves the website-template inquiry endpoints.
type InquiryHandler struct {
	Handler
	inquiries *service.InquiryService
}

func NewInquiryHandler(s *server.Server, inquiries *service.InquiryService) *InquiryHandler {
	return &InquiryHandler{
		Handler:   NewHandler(s),
		inquiries: inquiries,
	}
}

// CreateInquiryRequest is a template inquiry payload.
type CreateInquiryRequest struct {
	Name            string  `json:"name" validate:"required,min=2,max=100"`
	Email           string  `json:"email" validate:"required,email"`
	Phone           *string `json:"phone" validate:"omitempty,max=20"`
	BusinessType    string  `json:"business_type" validate:"required"`
	Budget          string  `json:"budget" validate:"required"`
	Functionality   string  `json:"functionality" validate:"required"`
	TemplateID      *string `json:"template_id"`
	AdditionalNotes *string `json:"additional_notes" validate:"omitempty,max=1000"`
}

func (r *CreateInquiryRequest) Validate() error {
	return validation.Struct(r)
}

// InquiryResponse acknowledges a stored inquiry.
type InquiryResponse struct {
	Message   string `json:"message"`
	Success   bool   `json:"success"`
	InquiryID string `json:"inquiry_id,omitempty"`
}

// Create stores an inquiry lead and triggers its notifications.
func (h *InquiryHandler) Create(c echo.Context, req *CreateInquiryRequest) (*InquiryResponse, error) {
	inquiry, err := h.inquiries.Create(c.Request().Context(), service.CreateInquiryInput{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		BusinessType:    req.BusinessType,
		Budget:          req.Budget,
		Functionality:   req.Functionality,
		TemplateID:      req.TemplateID,
		AdditionalNotes: req.AdditionalNotes,
	})
	if err != nil {
		return nil, err
	}

	return &InquiryResponse{
		Message:   "Cererea ta a fost înregistrată! Te vom contacta în curând cu o ofertă personalizată.",
		Success:   true,
		InquiryID: inquiry.ID,
	}, nil
}

// ListInquiriesRequest carries the admin listing query parameters.
type ListInquiriesRequest struct {
	Limit int `query:"limit" validate:"omitempty,min=1,max=200"`
}

func (r *ListInquiriesRequest) Validate() error {
	return validation.Struct(r)
}

// InquiryListResponse is the admin listing payload.
type InquiryListResponse struct {
	Inquiries []*model.Inquiry `json:"inquiries"`
	Total     int64            `json:"total"`
}

// List returns stored inquiries newest-first.
func (h *InquiryHandler) List(c echo.Context, req *ListInquiriesRequest) (*InquiryListResponse, error) {
	if req.Limit == 0 {
		req.Limit = 50
	}

	inquiries, total, err := h.inquiries.List(c.Request().Context(), req.Limit)
	if err != nil {
		return nil, err
	}

	if inquiries == nil {
		inquiries = []*model.Inquiry{}
	}

	return &InquiryListResponse{
		Inquiries: inquiries,
		Total:     total,
	}, nil
}
