package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/x67digital/site-api/internal/model"
	"github.com/x67digital/site-api/internal/service"
)

func newInquiryTestServer(repo *mockInquiryRepo) (*httptest.Server, func()) {
	e, srv := newTestEcho()
	h := NewInquiryHandler(srv, service.NewInquiryService(srv, repo, newTestMailer()))

	e.POST("/api/inquiries", Handle(h.Handler, h.Create, http.StatusCreated))
	e.GET("/api/inquiries", Handle(h.Handler, h.List, http.StatusOK))

	ts := httptest.NewServer(e)
	return ts, ts.Close
}

func TestInquiryHandler_Create_Success(t *testing.T) {
	var stored *model.Inquiry
	repo := &mockInquiryRepo{
		insertFunc: func(ctx context.Context, inquiry *model.Inquiry) error {
			stored = inquiry
			return nil
		},
	}
	ts, cleanup := newInquiryTestServer(repo)
	defer cleanup()

	resp := postJSON(t, ts.URL+"/api/inquiries", `{
		"name": "Ana Pop",
		"email": "ana@example.com",
		"business_type": "restaurant",
		"budget": "500-1000",
		"functionality": "rezervari online",
		"template_id": "resto-01"
	}`)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	var body InquiryResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Message != "Cererea ta a fost înregistrată! Te vom contacta în curând cu o ofertă personalizată." {
		t.Errorf("unexpected message %q", body.Message)
	}
	if stored == nil {
		t.Fatal("expected inquiry to be persisted")
	}
	if body.InquiryID != stored.ID {
		t.Errorf("expected inquiry_id %q, got %q", stored.ID, body.InquiryID)
	}
	if stored.TemplateID == nil || *stored.TemplateID != "resto-01" {
		t.Errorf("expected template_id forwarded, got %v", stored.TemplateID)
	}
}

func TestInquiryHandler_Create_MissingBudget(t *testing.T) {
	inserted := false
	repo := &mockInquiryRepo{
		insertFunc: func(ctx context.Context, inquiry *model.Inquiry) error {
			inserted = true
			return nil
		},
	}
	ts, cleanup := newInquiryTestServer(repo)
	defer cleanup()

	resp := postJSON(t, ts.URL+"/api/inquiries", `{
		"name": "Ana Pop",
		"email": "ana@example.com",
		"business_type": "restaurant",
		"functionality": "rezervari online"
	}`)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", resp.StatusCode)
	}
	if inserted {
		t.Error("expected no insert for a rejected payload")
	}
}

func TestInquiryHandler_List(t *testing.T) {
	var gotLimit int
	repo := &mockInquiryRepo{
		listFunc: func(ctx context.Context, limit int) ([]*model.Inquiry, error) {
			gotLimit = limit
			return nil, nil
		},
		countFunc: func(ctx context.Context) (int64, error) { return 0, nil },
	}
	ts, cleanup := newInquiryTestServer(repo)
	defer cleanup()

	resp, err := http.Get(ts.URL + "/api/inquiries")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if gotLimit != 50 {
		t.Errorf("expected default limit=50, got %d", gotLimit)
	}

	var body InquiryListResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Inquiries == nil {
		t.Error("expected empty list to encode as [], not null")
	}
}
