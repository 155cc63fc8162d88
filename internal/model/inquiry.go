package model

import (
	"time"

	"github.com/google/uuid"
)

// Inquiry statuses follow the sales lifecycle
// pending -> contacted -> converted | rejected.
const (
	InquiryStatusPending   = "pending"
	InquiryStatusContacted = "contacted"
	InquiryStatusConverted = "converted"
	InquiryStatusRejected  = "rejected"
)

// Inquiry is a website-template inquiry lead.
type Inquiry struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           *string   `json:"phone,omitempty"`
	BusinessType    string    `json:"business_type"`
	Budget          string    `json:"budget"`
	Functionality   string    `json:"functionality"`
	TemplateID      *string   `json:"template_id,omitempty"`
	AdditionalNotes *string   `json:"additional_notes,omitempty"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

// NewInquiry builds an Inquiry with a fresh id, the "pending" status,
// and a server-assigned creation timestamp.
func NewInquiry(name, email string, phone *string, businessType, budget, functionality string, templateID, additionalNotes *string) *Inquiry {
	return &Inquiry{
		ID:              uuid.NewString(),
		Name:            name,
		Email:           email,
		Phone:           phone,
		BusinessType:    businessType,
		Budget:          budget,
		Functionality:   functionality,
		TemplateID:      templateID,
		AdditionalNotes: additionalNotes,
		Status:          InquiryStatusPending,
		CreatedAt:       time.Now().UTC(),
	}
}
