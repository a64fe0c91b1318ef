package handlers

import (
	"net/http"

	"krishaBack/internal/services"
)

type ChatHandler struct {
	Service *services.ChatService
}

func (h *ChatHandler) GetChatsByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := intParam(r, "user_id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	chats, err := h.Service.GetChatsByUser(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, chats)
}
