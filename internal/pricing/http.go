package pricing

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
	router.Post("/pricings", h.CreatePricing)
	router.Get("/pricings", h.GetAllPricings)
	router.Get("/pricings/{id}", h.GetPricing)
	router.Put("/pricings/{id}", h.UpdatePricing)
	router.Delete("/pricings/{id}", h.DeletePricing)
}

func (h *Handler) CreatePricing(w http.ResponseWriter, r *http.Request) {
	var in CreateInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httputil.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	h.logger.InfoContext(r.Context(), "creating pricing", "service", in.Service)
	pricing, err := h.service.CreatePricing(r.Context(), in)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	httputil.RespondWithJSON(w, http.StatusCreated, pricing)
}

func (h *Handler) GetAllPricings(w http.ResponseWriter, r *http.Request) {
	pricings, err := h.service.GetAllPricings(r.Context())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	httputil.RespondWithJSON(w, http.StatusOK, pricings)
}

func (h *Handler) GetPricing(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		httputil.RespondWithError(w, http.StatusBadRequest, "invalid pricing ID")
		return
	}

	pricing, err := h.service.GetPricingByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	httputil.RespondWithJSON(w, http.StatusOK, pricing)
}

func (h *Handler) UpdatePricing(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		httputil.RespondWithError(w, http.StatusBadRequest, "invalid pricing ID")
		return
	}

	var in UpdateInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httputil.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	h.logger.InfoContext(r.Context(), "updating pricing", "id", id)
	pricing, err := h.service.UpdatePricing(r.Context(), id, in)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	httputil.RespondWithJSON(w, http.StatusOK, pricing)
}

func (h *Handler) DeletePricing(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		httputil.RespondWithError(w, http.StatusBadRequest, "invalid pricing ID")
		return
	}

	h.logger.InfoContext(r.Context(), "deleting pricing", "id", id)
	if err := h.service.DeletePricing(r.Context(), id); err != nil {
		h.handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrPricingNotFound) {
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
