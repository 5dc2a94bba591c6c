package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/courtside-ai/courtside-engine/pkg/apperrors"
	"github.com/courtside-ai/courtside-engine/pkg/middleware"
	"github.com/courtside-ai/courtside-engine/pkg/services"
)

// AskRequest is the body of POST /api/ask.
type AskRequest struct {
	Question string `json:"question"`
	Narrate  bool   `json:"narrate,omitempty"`
}

// AskResponse is the success envelope.
type AskResponse struct {
	RequestID string `json:"request_id,omitempty"`
	*services.Answer
}

// RejectionResponse is the envelope for informational questions: an error
// plus actionable example questions, never a dead end.
type RejectionResponse struct {
	Error       string   `json:"error"`
	Suggestions []string `json:"suggestions"`
}

// AskHandler handles natural-language statistics questions.
type AskHandler struct {
	ask         *services.AskService
	suggestions []string
	logger      *zap.Logger
}

// NewAskHandler creates an AskHandler.
func NewAskHandler(ask *services.AskService, suggestions []string, logger *zap.Logger) *AskHandler {
	return &AskHandler{ask: ask, suggestions: suggestions, logger: logger.Named("ask_handler")}
}

// RegisterRoutes registers the ask handler's routes on the given mux.
func (h *AskHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/ask", h.Ask)
}

// Ask handles POST /api/ask.
func (h *AskHandler) Ask(w http.ResponseWriter, r *http.Request) {
	var req AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		h.writeError(w, http.StatusBadRequest, "question is required", "")
		return
	}

	ctx := r.Context()
	answer, err := h.ask.Ask(ctx, req.Question, req.Narrate)
	if err != nil {
		h.writeAskError(w, r, err)
		return
	}

	resp := AskResponse{RequestID: middleware.RequestID(ctx), Answer: answer}
	if err := WriteJSON(w, http.StatusOK, resp); err != nil {
		h.logger.Error("Failed to encode ask response", zap.Error(err))
	}
}

func (h *AskHandler) writeAskError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, apperrors.ErrInformationalQuestion):
		resp := RejectionResponse{
			Error:       "That looks like a general basketball question, not a statistics question. Try one of these:",
			Suggestions: h.suggestions,
		}
		if encErr := WriteJSON(w, http.StatusBadRequest, resp); encErr != nil {
			h.logger.Error("Failed to encode rejection response", zap.Error(encErr))
		}

	case errors.Is(err, apperrors.ErrNotFound):
		h.writeError(w, http.StatusNotFound,
			"No data found for that player. Check the spelling of the name and ask again.", "")

	case errors.Is(err, apperrors.ErrNoPlayerName):
		h.writeError(w, http.StatusBadRequest,
			"I could not find a player name in that question. Include the player's full name and ask again.", "")

	default:
		h.logger.Error("ask pipeline failed",
			zap.String("request_id", middleware.RequestID(r.Context())),
			zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, "failed to answer question", err.Error())
	}
}

func (h *AskHandler) writeError(w http.ResponseWriter, status int, message, details string) {
	if err := ErrorResponse(w, status, message, details); err != nil {
		h.logger.Error("Failed to write error response", zap.Error(err))
	}
}
