package handlers

import (
	"net/http"

	"github.com/quillhq/chatdesk/internal/appointments"
	"github.com/quillhq/chatdesk/pkg/logging"
)

// AppointmentsHandler exposes the scheduled appointments list.
type AppointmentsHandler struct {
	store  appointments.Store
	logger *logging.Logger
}

func NewAppointmentsHandler(store appointments.Store, logger *logging.Logger) *AppointmentsHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &AppointmentsHandler{store: store, logger: logger}
}

// HandleList returns every recorded appointment, newest first.
func (h *AppointmentsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	appts, err := h.store.List(r.Context())
	if err != nil {
		h.logger.Error("appointments: failed to list", "error", err)
		writeError(w, http.StatusInternalServerError, "Error reading appointments")
		return
	}
	if appts == nil {
		appts = []appointments.Appointment{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"appointments": appts})
}
