package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"belanja-be/internal/apperr"
	"belanja-be/internal/order"
	"belanja-be/internal/payment"
	"belanja-be/internal/utils"

	"github.com/gorilla/mux"
)

type OrderHandler struct {
	svc order.Service
}

func NewOrderHandler(svc order.Service) *OrderHandler {
	return &OrderHandler{svc: svc}
}

type createOrderRequest struct {
	ShippingAddress order.Address   `json:"shippingAddress"`
	PaymentDetails  payment.Details `json:"paymentDetails"`
	ShippingMethod  string          `json:"shippingMethod"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, errAuthRequired)
		return
	}

	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, apperr.BadRequest("invalid JSON body"))
		return
	}

	res, err := h.svc.Create(r.Context(), userID, order.CreateInput{
		ShippingAddress: req.ShippingAddress,
		PaymentDetails:  req.PaymentDetails,
		ShippingMethod:  req.ShippingMethod,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, createOrderResponse{
		Order:        toOrderDTO(res.Order),
		ClientSecret: res.ClientSecret,
	})
}

func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, errAuthRequired)
		return
	}

	page := queryInt32(r, "page")
	limit := queryInt32(r, "limit")

	orders, err := h.svc.List(r.Context(), userID, utils.IsAdmin(r.Context()), page, limit)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toOrderDTOs(orders))
}

func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, errAuthRequired)
		return
	}

	o, err := h.svc.GetByID(r.Context(), userID, utils.IsAdmin(r.Context()), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toOrderDTO(o))
}

func (h *OrderHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, errAuthRequired)
		return
	}

	o, err := h.svc.Cancel(r.Context(), userID, utils.IsAdmin(r.Context()), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toOrderDTO(o))
}

func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	if _, ok := utils.GetUserIDFromContext(r.Context()); !ok {
		writeError(w, r, errAuthRequired)
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, apperr.BadRequest("invalid JSON body"))
		return
	}

	o, err := h.svc.UpdateStatus(r.Context(), utils.IsAdmin(r.Context()), mux.Vars(r)["id"], req.Status)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toOrderDTO(o))
}

func queryInt32(r *http.Request, key string) int32 {
	v := r.URL.Query().Get(key)
	if v == "" {
		return 0
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil || n < 0 {
		return 0
	}
	return int32(n)
}
