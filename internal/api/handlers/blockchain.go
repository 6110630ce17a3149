package handlers

import (
	"net/http"

	"github.com/rohits-web03/chainnotes/internal/services"
	"github.com/rohits-web03/chainnotes/internal/utils"
)

// RecordTransaction godoc
// @Summary Record a ledger transaction for a note or todo
// @Tags Blockchain
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param tx body services.RecordInput true "Transaction"
// @Success 201 {object} models.BlockchainTransaction
// @Failure 400 {object} utils.Payload
// @Failure 404 {object} utils.Payload "Item not found"
// @Failure 409 {object} utils.Payload "Transaction already recorded"
// @Router /api/v1/blockchain/transactions [post]
func (h *Handler) RecordTransaction(w http.ResponseWriter, r *http.Request) {
	var in services.RecordInput
	if err := decodeJSON(w, r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	tx, err := h.chain.Record(r.Context(), caller(r), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	utils.JSONResponse(w, http.StatusCreated, tx)
}

// ListTransactions godoc
// @Summary List recorded transactions, newest first
// @Tags Blockchain
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.BlockchainTransaction
// @Router /api/v1/blockchain/transactions [get]
func (h *Handler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	txs, err := h.chain.List(r.Context(), caller(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	utils.JSONResponse(w, http.StatusOK, txs)
}

// Analytics godoc
// @Summary Transaction totals per action
// @Tags Blockchain
// @Produce json
// @Security BearerAuth
// @Success 200 {object} services.Analytics
// @Router /api/v1/blockchain/analytics [get]
func (h *Handler) Analytics(w http.ResponseWriter, r *http.Request) {
	out, err := h.chain.Analytics(r.Context(), caller(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	utils.JSONResponse(w, http.StatusOK, out)
}

// Balance godoc
// @Summary On-chain balance of an address
// @Tags Blockchain
// @Produce json
// @Security BearerAuth
// @Param address path string true "Account address"
// @Success 200 {object} services.Balance
// @Failure 400 {object} utils.Payload
// @Failure 503 {object} utils.Payload "Ledger not configured"
// @Router /api/v1/blockchain/balance/{address} [get]
func (h *Handler) Balance(w http.ResponseWriter, r *http.Request) {
	bal, err := h.chain.Balance(r.Context(), r.PathValue("address"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	utils.JSONResponse(w, http.StatusOK, bal)
}
