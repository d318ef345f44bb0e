package api

import (
	"context"
	"io"
	"net/http"

	"github.com/garnizeh/watchrepair/internal/validation"
	"github.com/garnizeh/watchrepair/pkg/models"
	"github.com/garnizeh/watchrepair/pkg/repository"
)

// RequestsHandler serves the customer-submitted records: quotes and contacts.
type RequestsHandler struct {
	quotes    repository.QuoteRepo
	contacts  repository.ContactRepo
	validator *validation.Validator
}

func NewRequestsHandler(qr repository.QuoteRepo, cr repository.ContactRepo, v *validation.Validator) *RequestsHandler {
	return &RequestsHandler{quotes: qr, contacts: cr, validator: v}
}

type invalidResponse struct {
	Message string                 `json:"message"`
	Errors  []validation.Violation `json:"errors"`
}

// readBody returns the request body, or a violation when it cannot be read.
func readBody(w http.ResponseWriter, r *http.Request) ([]byte, []validation.Violation) {
	b, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, []validation.Violation{{Path: "/", Message: "request body could not be read: " + err.Error()}}
	}
	return b, nil
}

// decodeBody runs check over the request body. It writes the 400 or 500
// response itself and reports whether the handler may continue.
func decodeBody[T any](w http.ResponseWriter, r *http.Request, check func(context.Context, []byte) (T, []validation.Violation, error), invalid, failed string) (T, bool) {
	var zero T
	body, verrs := readBody(w, r)
	if verrs == nil {
		var (
			out T
			err error
		)
		out, verrs, err = check(r.Context(), body)
		if err != nil {
			writeFailure(w, r, failed, err)
			return zero, false
		}
		if len(verrs) == 0 {
			return out, true
		}
	}
	writeJSON(w, invalidResponse{Message: invalid, Errors: verrs}, http.StatusBadRequest)
	return zero, false
}

func (h *RequestsHandler) CreateQuote(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeBody(w, r, h.validator.Quote, "Invalid quote data", "Failed to create quote")
	if !ok {
		return
	}
	q, err := h.quotes.CreateQuote(r.Context(), in)
	if err != nil {
		writeFailure(w, r, "Failed to create quote", err)
		return
	}
	writeJSON(w, q, http.StatusCreated)
}

func (h *RequestsHandler) ListQuotes(w http.ResponseWriter, r *http.Request) {
	items, err := h.quotes.ListQuotes(r.Context())
	if err != nil {
		writeFailure(w, r, "Failed to fetch quotes", err)
		return
	}
	writeJSON(w, listOrEmpty(items), http.StatusOK)
}

func (h *RequestsHandler) GetQuote(w http.ResponseWriter, r *http.Request) {
	serveRecord(w, r, func(id int64) (*models.Quote, error) {
		return h.quotes.GetQuote(r.Context(), id)
	}, "Quote not found", "Failed to fetch quote")
}

func (h *RequestsHandler) UpdateQuoteStatus(w http.ResponseWriter, r *http.Request) {
	status, ok := decodeBody(w, r, h.validator.Status, "Invalid status data", "Failed to update quote")
	if !ok {
		return
	}
	serveRecord(w, r, func(id int64) (*models.Quote, error) {
		return h.quotes.UpdateQuoteStatus(r.Context(), id, status)
	}, "Quote not found", "Failed to update quote")
}

func (h *RequestsHandler) CreateContact(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeBody(w, r, h.validator.Contact, "Invalid contact data", "Failed to create contact")
	if !ok {
		return
	}
	c, err := h.contacts.CreateContact(r.Context(), in)
	if err != nil {
		writeFailure(w, r, "Failed to create contact", err)
		return
	}
	writeJSON(w, c, http.StatusCreated)
}

func (h *RequestsHandler) ListContacts(w http.ResponseWriter, r *http.Request) {
	items, err := h.contacts.ListContacts(r.Context())
	if err != nil {
		writeFailure(w, r, "Failed to fetch contacts", err)
		return
	}
	writeJSON(w, listOrEmpty(items), http.StatusOK)
}

func (h *RequestsHandler) GetContact(w http.ResponseWriter, r *http.Request) {
	serveRecord(w, r, func(id int64) (*models.Contact, error) {
		return h.contacts.GetContact(r.Context(), id)
	}, "Contact not found", "Failed to fetch contact")
}

func (h *RequestsHandler) UpdateContactStatus(w http.ResponseWriter, r *http.Request) {
	status, ok := decodeBody(w, r, h.validator.Status, "Invalid status data", "Failed to update contact")
	if !ok {
		return
	}
	serveRecord(w, r, func(id int64) (*models.Contact, error) {
		return h.contacts.UpdateContactStatus(r.Context(), id, status)
	}, "Contact not found", "Failed to update contact")
}
