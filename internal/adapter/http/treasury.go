package httpadapter

import (
	"encoding/json"
	"net/http"

	"fanvote/internal/core/domain"
	"fanvote/internal/core/port"
)

// handleTreasury returns the accumulated platform fee balance.
func (h *Handler) handleTreasury(w http.ResponseWriter, r *http.Request) {
	balance, err := h.svc.TreasuryBalance(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, struct {
		Balance int64 `json:"balance"`
	}{Balance: balance})
}

// handleVaultBalance returns a campaign's pooled (net of fees) balance.
func (h *Handler) handleVaultBalance(w http.ResponseWriter, r *http.Request) {
	balance, err := h.svc.CampaignVaultBalance(r.Context(), titleParam(r))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, struct {
		Balance int64 `json:"balance"`
	}{Balance: balance})
}

// handleWithdrawFees drains fees from the treasury to a destination
// wallet. Only the configured withdraw authority passes authorization.
func (h *Handler) handleWithdrawFees(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.identity(w, r)
	if !ok {
		return
	}
	var body struct {
		Amount      int64  `json:"amount"`
		Destination string `json:"destination"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	err := h.svc.WithdrawFees(r.Context(), port.WithdrawFeesReq{
		Amount:      body.Amount,
		Destination: domain.Identity(body.Destination),
		Caller:      caller,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
