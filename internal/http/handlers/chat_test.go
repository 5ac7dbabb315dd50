package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillhq/chatdesk/internal/appointments"
	"github.com/quillhq/chatdesk/internal/booking"
	"github.com/quillhq/chatdesk/internal/conversation"
	"github.com/quillhq/chatdesk/pkg/logging"
)

type stubLLM struct {
	reply string
	err   error
}

func (s *stubLLM) Complete(_ context.Context, _ conversation.LLMRequest) (conversation.LLMResponse, error) {
	if s.err != nil {
		return conversation.LLMResponse{}, s.err
	}
	return conversation.LLMResponse{Text: s.reply}, nil
}

func newChatHandler(t *testing.T, llm *stubLLM) *ChatHandler {
	t.Helper()
	logger := logging.New("error")
	store := appointments.NewMemoryStore()
	engine := booking.NewEngine(booking.NewMemorySessionStore(), store, logger)
	svc := conversation.NewService(llm, engine, conversation.NewHistory(20), nil, logger, 1800)
	return NewChatHandler(svc, nil, logger, 64)
}

func postChat(t *testing.T, h *ChatHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.HandleChat(rec, req)
	return rec
}

func TestHandleChat_EmptyMessage(t *testing.T) {
	h := newChatHandler(t, &stubLLM{reply: "hi"})

	for _, body := range []string{`{"message":""}`, `{"message":"   "}`, `{}`} {
		rec := postChat(t, h, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.JSONEq(t, `{"error":"Message cannot be empty"}`, rec.Body.String(), body)
	}
}

func TestHandleChat_MalformedJSON(t *testing.T) {
	h := newChatHandler(t, &stubLLM{reply: "hi"})
	rec := postChat(t, h, `{"message":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleChat_OK(t *testing.T) {
	h := newChatHandler(t, &stubLLM{reply: "We open at 9."})
	rec := postChat(t, h, `{"message":"When do you open?","sessionId":"s1"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"response":"We open at 9."}`, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

func TestHandleChat_BookingFlow(t *testing.T) {
	h := newChatHandler(t, &stubLLM{err: errors.New("must not be called")})
	rec := postChat(t, h, `{"message":"book an appointment","sessionId":"s1"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp["response"], "What should I call you?")
}

func TestHandleChat_LLMFailure(t *testing.T) {
	h := newChatHandler(t, &stubLLM{err: errors.New("quota exceeded")})
	rec := postChat(t, h, `{"message":"hello"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, rec.Body.String())
}

func multipartBody(t *testing.T, filename string, content []byte, message string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if filename != "" {
		part, err := mw.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	if message != "" {
		require.NoError(t, mw.WriteField("message", message))
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func postFile(t *testing.T, h *ChatHandler, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/chat-with-file", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.HandleChatWithFile(rec, req)
	return rec
}

func TestHandleChatWithFile_OK(t *testing.T) {
	h := newChatHandler(t, &stubLLM{reply: "A summary."})
	body, ct := multipartBody(t, "notes.txt", []byte("line one"), "what is this?")

	rec := postFile(t, h, body, ct)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"response":"A summary."}`, rec.Body.String())
}

func TestHandleChatWithFile_NoFile(t *testing.T) {
	h := newChatHandler(t, &stubLLM{reply: "unused"})
	body, ct := multipartBody(t, "", nil, "hello")

	rec := postFile(t, h, body, ct)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"No file uploaded"}`, rec.Body.String())
}

func TestHandleChatWithFile_BinaryRejected(t *testing.T) {
	h := newChatHandler(t, &stubLLM{reply: "unused"})
	body, ct := multipartBody(t, "blob.bin", []byte{0xff, 0xfe, 0x00, 0x80}, "")

	rec := postFile(t, h, body, ct)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Could not read file. Please ensure it is a text file."}`, rec.Body.String())
}

func TestHandleChatWithFile_TooLarge(t *testing.T) {
	// Handler configured with a 64-byte cap in newChatHandler.
	h := newChatHandler(t, &stubLLM{reply: "unused"})
	body, ct := multipartBody(t, "big.txt", bytes.Repeat([]byte("a"), 128), "")

	rec := postFile(t, h, body, ct)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "File too large")
}
