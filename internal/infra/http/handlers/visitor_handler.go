package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/lobbykit/visitor-api/internal/infra/http/middleware"
	"github.com/lobbykit/visitor-api/internal/usecase"
)

type VisitorHandler struct {
	Repo usecase.VisitorRepositoryInterface
}

func NewVisitorHandler(repo usecase.VisitorRepositoryInterface) *VisitorHandler {
	return &VisitorHandler{Repo: repo}
}

func (h *VisitorHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.VisitorInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid JSON body"})
		return
	}

	if errs := usecase.ValidateVisitorInput(input); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, map[string]any{"errors": errs})
		return
	}

	visitor, err := h.Repo.Create(r.Context(), input.Fields())
	if err != nil {
		log.Printf("Error creating visitor: %v", err)
		middleware.RecordVisitorOperation("create", "error")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to create visitor"})
		return
	}

	middleware.RecordVisitorOperation("create", "success")
	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Visitor created successfully",
		"data":    visitor,
	})
}

func (h *VisitorHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	visitors, err := h.Repo.GetAll(r.Context())
	if err != nil {
		log.Printf("Error fetching visitors: %v", err)
		middleware.RecordVisitorOperation("list", "error")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to fetch visitors"})
		return
	}

	middleware.RecordVisitorOperation("list", "success")
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Visitors retrieved successfully",
		"data":    visitors,
		"count":   len(visitors),
	})
}

func (h *VisitorHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := visitorID(w, r)
	if !ok {
		return
	}

	visitor, err := h.Repo.GetByID(r.Context(), id)
	if err != nil {
		log.Printf("Error fetching visitor: %v", err)
		middleware.RecordVisitorOperation("get", "error")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to fetch visitor"})
		return
	}
	if visitor == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Visitor not found"})
		return
	}

	middleware.RecordVisitorOperation("get", "success")
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Visitor retrieved successfully",
		"data":    visitor,
	})
}

func (h *VisitorHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := visitorID(w, r)
	if !ok {
		return
	}

	var input usecase.VisitorInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid JSON body"})
		return
	}

	if errs := usecase.ValidateVisitorInput(input); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, map[string]any{"errors": errs})
		return
	}

	visitor, err := h.Repo.Update(r.Context(), id, input.Fields())
	if err != nil {
		log.Printf("Error updating visitor: %v", err)
		middleware.RecordVisitorOperation("update", "error")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to update visitor"})
		return
	}
	if visitor == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Visitor not found"})
		return
	}

	middleware.RecordVisitorOperation("update", "success")
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Visitor updated successfully",
		"data":    visitor,
	})
}

func (h *VisitorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := visitorID(w, r)
	if !ok {
		return
	}

	deleted, err := h.Repo.Delete(r.Context(), id)
	if err != nil {
		log.Printf("Error deleting visitor: %v", err)
		middleware.RecordVisitorOperation("delete", "error")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to delete visitor"})
		return
	}
	if !deleted {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Visitor not found"})
		return
	}

	middleware.RecordVisitorOperation("delete", "success")
	writeJSON(w, http.StatusOK, map[string]string{"message": "Visitor deleted successfully"})
}

func visitorID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid visitor id"})
		return 0, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
