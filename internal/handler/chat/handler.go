package chat

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"google.golang.org/genai"

	chatModel "github.com/qiscet/campusbot/internal/model/chat"
	"github.com/qiscet/campusbot/internal/service/ai"
	"github.com/qiscet/campusbot/pkg/utils"
)

// User-facing messages deliberately redact internal detail; diagnostics
// go to the server log only.
const (
	genericErrorMessage  = "An unexpected server error occurred. Please check the server logs for details."
	apiErrorPrefix       = "The Gemini AI service is currently unavailable. (API Error: "
	apiErrorExcerptLimit = 50
)

// Handler relays chat requests to the Gemini gateway.
type Handler struct {
	responder ai.Responder
}

// New creates the chat handler. A nil responder means the Gemini client
// failed to initialize; every chat request then short-circuits.
func New(responder ai.Responder) *Handler {
	return &Handler{responder: responder}
}

// RegisterRoutes mounts the chat endpoint.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat", h.handleChat)
}

func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	if h.responder == nil {
		log.Println("[chat] Gemini client is not initialized, rejecting request")
		utils.RespondError(w, http.StatusInternalServerError, genericErrorMessage)
		return
	}

	var payload chatModel.Request
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	reply, err := h.responder.Reply(r.Context(), payload.Message, payload.History)
	if err != nil {
		h.respondChatError(w, err)
		return
	}

	utils.RespondJSON(w, http.StatusOK, reply)
}

// respondChatError is the single mapping step from internal error kind
// to the external {"error": ...} shape.
func (h *Handler) respondChatError(w http.ResponseWriter, err error) {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		log.Printf("[chat] Gemini API call failed: %v", err)
		message := apiErrorPrefix + truncate(apiErr.Error(), apiErrorExcerptLimit) + "...)"
		utils.RespondError(w, http.StatusInternalServerError, message)
		return
	}

	log.Printf("[chat] request failed: %v", err)
	utils.RespondError(w, http.StatusInternalServerError, genericErrorMessage)
}

// truncate cuts s to at most limit runes.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
