package contact

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"portfolio-api/internal/httputil"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service Service
	logger  *slog.Logger
}

func NewHandler(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Post("/contacts", h.CreateContact)
	router.Get("/contacts", h.GetAllContacts)
	router.Get("/contacts/{id}", h.GetContact)
	router.Put("/contacts/{id}", h.UpdateContact)
	router.Delete("/contacts/{id}", h.DeleteContact)
}

func (h *Handler) CreateContact(w http.ResponseWriter, r *http.Request) {
	var in CreateInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httputil.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	h.logger.InfoContext(r.Context(), "creating contact", "email", in.Email, "subject", in.Subject)
	contact, err := h.service.CreateContact(r.Context(), in)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	httputil.RespondWithJSON(w, http.StatusCreated, contact)
}

func (h *Handler) GetAllContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.service.GetAllContacts(r.Context())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	httputil.RespondWithJSON(w, http.StatusOK, contacts)
}

func (h *Handler) GetContact(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		httputil.RespondWithError(w, http.StatusBadRequest, "invalid contact ID")
		return
	}

	contact, err := h.service.GetContactByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	httputil.RespondWithJSON(w, http.StatusOK, contact)
}

func (h *Handler) UpdateContact(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		httputil.RespondWithError(w, http.StatusBadRequest, "invalid contact ID")
		return
	}

	var in UpdateInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httputil.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	h.logger.InfoContext(r.Context(), "updating contact", "id", id)
	contact, err := h.service.UpdateContact(r.Context(), id, in)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	httputil.RespondWithJSON(w, http.StatusOK, contact)
}

func (h *Handler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		httputil.RespondWithError(w, http.StatusBadRequest, "invalid contact ID")
		return
	}

	h.logger.InfoContext(r.Context(), "deleting contact", "id", id)
	if err := h.service.DeleteContact(r.Context(), id); err != nil {
		h.handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrContactNotFound) {
		httputil.RespondWithError(w, http.StatusNotFound, err.Error())
		return
	}
	if errors.Is(err, ErrInvalidInput) {
		httputil.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.logger.Error("internal error", "error", err)
	httputil.RespondWithError(w, http.StatusInternalServerError, "internal server error")
}
