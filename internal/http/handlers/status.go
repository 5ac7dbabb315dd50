package handlers

import "net/http"

// HandleRoot serves the API index.
func HandleRoot(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Chatbot API is running!",
		"endpoints": map[string]string{
			"chat":         "POST /chat",
			"fileUpload":   "POST /chat-with-file",
			"appointments": "GET /appointments",
			"test":         "GET /test",
		},
	})
}

// HandleTest is a trivial liveness probe.
func HandleTest(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Server is working!"})
}
