package handlers

import (
	"net/http"

	"krishaBack/internal/models"
	"krishaBack/internal/services"
)

type MessageHandler struct {
	Service *services.MessageService
}

func (h *MessageHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req models.SendMessageRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if _, err := h.Service.SendMessage(r.Context(), req); err != nil {
		writeError(w, r, err)
		return
	}
	writeStatusOK(w)
}

func (h *MessageHandler) GetConversation(w http.ResponseWriter, r *http.Request) {
	fromID, err := intParam(r, "from_id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	toID, err := intParam(r, "to_id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	messages, err := h.Service.GetConversation(r.Context(), fromID, toID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messages)
}
