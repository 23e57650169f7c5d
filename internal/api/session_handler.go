package api

import (
	"net/http"

	syncengine "belanja-be/internal/sync"
	"belanja-be/internal/utils"

	"github.com/google/uuid"
)

// Clients identify their anonymous session with this header so one client's
// local state never mixes with another's.
const sessionIDHeader = "X-Session-ID"

// SessionHandler exposes the sync engine triggers. Start runs on every app
// boot; Login runs once after authentication and merges that session's
// anonymous state into the account's stores.
type SessionHandler struct {
	engine *syncengine.Engine
}

func NewSessionHandler(engine *syncengine.Engine) *SessionHandler {
	return &SessionHandler{engine: engine}
}

func (h *SessionHandler) Start(w http.ResponseWriter, r *http.Request) {
	userID, authenticated := utils.GetUserIDFromContext(r.Context())
	h.engine.OnStart(r.Context(), sessionID(r), userID, authenticated)
	w.WriteHeader(http.StatusNoContent)
}

func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, errAuthRequired)
		return
	}

	h.engine.OnLogin(r.Context(), sessionID(r), userID)
	w.WriteHeader(http.StatusNoContent)
}

// sessionID never falls back to a shared key: a client that sends no header
// gets a fresh empty session instead of someone else's.
func sessionID(r *http.Request) string {
	if id := r.Header.Get(sessionIDHeader); id != "" {
		return id
	}
	return uuid.NewString()
}
