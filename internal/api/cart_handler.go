package api

import (
	"encoding/json"
	"net/http"

	"belanja-be/internal/apperr"
	"belanja-be/internal/cart"
	syncengine "belanja-be/internal/sync"
	"belanja-be/internal/utils"

	"github.com/gorilla/mux"
)

type CartHandler struct {
	svc    cart.Service
	engine *syncengine.Engine
}

func NewCartHandler(svc cart.Service, engine *syncengine.Engine) *CartHandler {
	return &CartHandler{svc: svc, engine: engine}
}

type addCartRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type updateCartRequest struct {
	Quantity int `json:"quantity"`
}

func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, errAuthRequired)
		return
	}

	view, err := h.svc.Get(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCartViewDTO(view))
}

func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, errAuthRequired)
		return
	}

	var req addCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, apperr.BadRequest("invalid JSON body"))
		return
	}

	// Dirty sync lines retry opportunistically on cart mutations.
	if h.engine.Dirty(userID) {
		h.engine.Flush(r.Context(), userID)
	}

	line, err := h.svc.Add(r.Context(), cart.AddParams{
		UserID:    userID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCartLineDTO(*line))
}

func (h *CartHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, errAuthRequired)
		return
	}

	var req updateCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, apperr.BadRequest("invalid JSON body"))
		return
	}

	if h.engine.Dirty(userID) {
		h.engine.Flush(r.Context(), userID)
	}

	err := h.svc.Update(r.Context(), cart.UpdateParams{
		UserID:   userID,
		ItemID:   mux.Vars(r)["id"],
		Quantity: req.Quantity,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, errAuthRequired)
		return
	}

	if h.engine.Dirty(userID) {
		h.engine.Flush(r.Context(), userID)
	}

	if err := h.svc.Remove(r.Context(), userID, mux.Vars(r)["id"]); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
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
