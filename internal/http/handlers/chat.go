package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/quillhq/chatdesk/internal/conversation"
	"github.com/quillhq/chatdesk/internal/observability/metrics"
	"github.com/quillhq/chatdesk/pkg/logging"
)

// ChatHandler serves the widget's chat endpoints.
type ChatHandler struct {
	svc            *conversation.Service
	metrics        *metrics.ChatMetrics
	logger         *logging.Logger
	maxUploadBytes int64
}

// NewChatHandler creates the chat endpoints handler. metrics may be nil.
func NewChatHandler(svc *conversation.Service, m *metrics.ChatMetrics, logger *logging.Logger, maxUploadBytes int64) *ChatHandler {
	if logger == nil {
		logger = logging.Default()
	}
	if maxUploadBytes <= 0 {
		maxUploadBytes = 10 << 20
	}
	return &ChatHandler{
		svc:            svc,
		metrics:        m,
		logger:         logger,
		maxUploadBytes: maxUploadBytes,
	}
}

type chatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"sessionId"`
}

// generateSessionID creates a random session identifier.
func generateSessionID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return uuid.New().String()
	}
	return hex.EncodeToString(b)
}

// HandleChat processes a plain chat message.
func (h *ChatHandler) HandleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.metrics.ObserveChatRequest("chat", "bad_request")
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		h.metrics.ObserveChatRequest("chat", "bad_request")
		writeError(w, http.StatusBadRequest, "Message cannot be empty")
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = generateSessionID()
	}

	reply, err := h.svc.Chat(r.Context(), sessionID, req.Message)
	if err != nil {
		h.logger.Error("chat: failed to process message", "session_id", sessionID, "error", err)
		h.metrics.ObserveChatRequest("chat", "error")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.metrics.ObserveChatRequest("chat", "ok")
	writeJSON(w, http.StatusOK, map[string]string{"response": reply})
}

// HandleChatWithFile processes a chat message with an uploaded text file.
func (h *ChatHandler) HandleChatWithFile(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes+(1<<20))

	file, header, err := r.FormFile("file")
	if err != nil {
		h.metrics.ObserveChatRequest("chat_with_file", "bad_request")
		writeError(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, h.maxUploadBytes+1))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			h.metrics.ObserveChatRequest("chat_with_file", "bad_request")
			writeError(w, http.StatusBadRequest, "File too large. Maximum size is 10MB.")
			return
		}
		h.logger.Error("chat: failed to read uploaded file", "filename", header.Filename, "error", err)
		h.metrics.ObserveChatRequest("chat_with_file", "error")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if int64(len(content)) > h.maxUploadBytes {
		h.metrics.ObserveChatRequest("chat_with_file", "bad_request")
		writeError(w, http.StatusBadRequest, "File too large. Maximum size is 10MB.")
		return
	}
	if !utf8.Valid(content) {
		h.metrics.ObserveChatRequest("chat_with_file", "bad_request")
		writeError(w, http.StatusBadRequest, "Could not read file. Please ensure it is a text file.")
		return
	}

	message := r.FormValue("message")

	reply, err := h.svc.ChatWithDocument(r.Context(), message, header.Filename, string(content))
	if err != nil {
		h.logger.Error("chat: failed to process file message", "filename", header.Filename, "error", err)
		h.metrics.ObserveChatRequest("chat_with_file", "error")
		writeError(w, http.StatusInternalServerError, "Error processing file")
		return
	}

	h.metrics.ObserveChatRequest("chat_with_file", "ok")
	writeJSON(w, http.StatusOK, map[string]string{"response": reply})
}
