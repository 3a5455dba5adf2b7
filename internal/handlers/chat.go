package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/pawlog/pawlog/internal/models"
	"github.com/pawlog/pawlog/internal/observability"
	"github.com/pawlog/pawlog/internal/services/assistant"
	"github.com/pawlog/pawlog/internal/validation"
)

// ChatHandler handles assistant chat requests
type ChatHandler struct {
	svc *assistant.Service
}

// NewChatHandler creates a new chat handler
func NewChatHandler(svc *assistant.Service) *ChatHandler {
	return &ChatHandler{svc: svc}
}

// RegisterRoutes registers chat routes on the given router.
// The router should already have the /chat prefix.
func (h *ChatHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("", h.PostMessage).Methods("POST")
	r.HandleFunc("/history", h.GetHistory).Methods("GET")
}

// ChatMessageRequest represents a chat message request
type ChatMessageRequest struct {
	Message string `json:"message" validate:"required"`
}

// ChatExchangeResponse carries the stored user message and the reply it
// produced, in the order they were appended to the log
type ChatExchangeResponse struct {
	UserMessage *models.ChatMessage `json:"userMessage"`
	AIMessage   *models.ChatMessage `json:"aiMessage"`
}

// PostMessage processes one user message and returns the exchanged pair
func (h *ChatHandler) PostMessage(w http.ResponseWriter, r *http.Request) {
	var req ChatMessageRequest
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(&req); err != nil {
		if maxBytesErr, ok := err.(*http.MaxBytesError); ok {
			respondJSONError(w, http.StatusRequestEntityTooLarge, "Request Entity Too Large", fmt.Sprintf("Request body exceeds maximum size of %d bytes", maxBytesErr.Limit))
			return
		}
		respondJSONError(w, http.StatusBadRequest, "Bad Request", "Invalid request body")
		return
	}

	if err := validation.Validate.Struct(req); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			for _, fieldError := range validationErrors {
				respondJSONError(w, http.StatusBadRequest, "Bad Request", fmt.Sprintf("Validation failed: %s", fieldError.Error()))
				return
			}
		}
		respondJSONError(w, http.StatusBadRequest, "Bad Request", "Validation failed")
		return
	}

	user, ai, err := h.svc.Post(req.Message)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	observability.RecordChatExchange()
	respondJSON(w, http.StatusOK, ChatExchangeResponse{
		UserMessage: user,
		AIMessage:   ai,
	})
}

// GetHistory returns the chat log in chronological order
func (h *ChatHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.svc.History())
}
