package api

import (
	"encoding/json"
	"net/http"

	"belanja-be/internal/apperr"
	"belanja-be/internal/utils"
	"belanja-be/internal/wishlist"

	"github.com/gorilla/mux"
)

type WishlistHandler struct {
	svc wishlist.Service
}

func NewWishlistHandler(svc wishlist.Service) *WishlistHandler {
	return &WishlistHandler{svc: svc}
}

type addWishlistRequest struct {
	ProductID string `json:"productId"`
}

func (h *WishlistHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, errAuthRequired)
		return
	}

	lines, err := h.svc.Get(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toWishlistDTO(lines))
}

func (h *WishlistHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, errAuthRequired)
		return
	}

	var req addWishlistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, apperr.BadRequest("invalid JSON body"))
		return
	}

	item, err := h.svc.Add(r.Context(), userID, req.ProductID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"itemId":    item.ID,
		"productId": item.ProductID,
	})
}

func (h *WishlistHandler) Remove(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, errAuthRequired)
		return
	}

	if err := h.svc.Remove(r.Context(), userID, mux.Vars(r)["productId"]); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *WishlistHandler) Clear(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, errAuthRequired)
		return
	}

	if err := h.svc.Clear(r.Context(), userID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
