package http

import (
	"net/http"

	"home-assessment/domain"
	"home-assessment/service"
)

type PropertyHandler struct {
	service *service.PropertyService
}

func NewPropertyHandler(service *service.PropertyService) *PropertyHandler {
	return &PropertyHandler{service: service}
}

type compareRequest struct {
	IDs []string `json:"ids"`
}

// Collection serves GET and POST /properties.
func (h *PropertyHandler) Collection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		list, err := h.service.List(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, list)

	case http.MethodPost:
		var input domain.SavePropertyInput
		if !decodeJSON(w, r, &input) {
			return
		}
		saved, err := h.service.Save(r.Context(), input)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, saved)

	default:
		methodNotAllowed(w, http.MethodGet, http.MethodPost)
	}
}

// Item serves GET and DELETE /properties/{id}.
func (h *PropertyHandler) Item(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	switch r.Method {
	case http.MethodGet:
		p, err := h.service.Get(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, p)

	case http.MethodDelete:
		if err := h.service.Delete(r.Context(), id); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		methodNotAllowed(w, http.MethodGet, http.MethodDelete)
	}
}

func (h *PropertyHandler) Compare(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, http.MethodPost)
		return
	}

	var input compareRequest
	if !decodeJSON(w, r, &input) {
		return
	}

	entries, err := h.service.Compare(r.Context(), input.IDs)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}
