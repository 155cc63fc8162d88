package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/x67digital/site-api/internal/model"
	"github.com/x67digital/site-api/internal/server"
	"github.com/x67digital/site-api/internal/service"
	"github.com/x67digital/site-api/internal/validation"
)

// NewsletterHandler serves the newsletter endpoints.
type NewsletterHandler struct {
	Handler
	newsletter *service.NewsletterService
}

func NewNewsletterHandler(s *server.Server, newsletter *service.NewsletterService) *NewsletterHandler {
	return &NewsletterHandler{
		Handler:    NewHandler(s),
		newsletter: newsletter,
	}
}

// SubscribeRequest is a newsletter signup payload.
type SubscribeRequest struct {
	Email string  `json:"email" validate:"required,email"`
	Name  *string `json:"name" validate:"omitempty,max=100"`
}

func (r *SubscribeRequest) Validate() error {
	return validation.Struct(r)
}

// NewsletterResponse acknowledges a subscribe request. SubscriberID is
// set only when a new subscription was created.
type NewsletterResponse struct {
	Message      string `json:"message"`
	Success      bool   `json:"success"`
	SubscriberID string `json:"subscriber_id,omitempty"`
}

// Subscribe registers an email address for the newsletter. Repeat
// signups succeed without creating duplicates; the message tells the
// caller which case they hit.
func (h *NewsletterHandler) Subscribe(c echo.Context, req *SubscribeRequest) (*NewsletterResponse, error) {
	outcome, subscriber, err := h.newsletter.Subscribe(c.Request().Context(), req.Email, req.Name)
	if err != nil {
		return nil, err
	}

	switch outcome {
	case service.OutcomeAlreadySubscribed:
		return &NewsletterResponse{
			Message: "Ești deja abonat la newsletter!",
			Success: true,
		}, nil

	case service.OutcomeReactivated:
		return &NewsletterResponse{
			Message: "Abonamentul tău a fost reactivat cu succes!",
			Success: true,
		}, nil

	default:
		return &NewsletterResponse{
			Message:      "Te-ai abonat cu succes! Verifică-ți email-ul pentru confirmare.",
			Success:      true,
			SubscriberID: subscriber.ID,
		}, nil
	}
}

// ListSubscribersRequest carries the admin listing query parameters.
type ListSubscribersRequest struct {
	Limit int `query:"limit" validate:"omitempty,min=1,max=500"`
}

func (r *ListSubscribersRequest) Validate() error {
	return validation.Struct(r)
}

// SubscriberListResponse is the admin listing payload.
type SubscriberListResponse struct {
	Subscribers []*model.Subscriber `json:"subscribers"`
	Total       int64               `json:"total"`
}

// List returns active subscribers newest-first.
func (h *NewsletterHandler) List(c echo.Context, req *ListSubscribersRequest) (*SubscriberListResponse, error) {
	if req.Limit == 0 {
		req.Limit = 100
	}

	subscribers, total, err := h.newsletter.ListActive(c.Request().Context(), req.Limit)
	if err != nil {
		return nil, err
	}

	if subscribers == nil {
		subscribers = []*model.Subscriber{}
	}

	return &SubscriberListResponse{
		Subscribers: subscribers,
		Total:       total,
	}, nil
}
