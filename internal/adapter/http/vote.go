package httpadapter

import (
	"encoding/json"
	"net/http"

	"fanvote/internal/core/domain"
	"fanvote/internal/core/port"
)

type voterRecordResponse struct {
	Address    string `json:"address"`
	Campaign   string `json:"campaign"`
	Voter      string `json:"voter"`
	HasVoted   bool   `json:"has_voted"`
	TotalVoted int64  `json:"total_voted"`
}

func toVoterRecordResponse(rec *domain.VoterRecord) voterRecordResponse {
	return voterRecordResponse{
		Address:    string(rec.Address),
		Campaign:   string(rec.Campaign),
		Voter:      string(rec.Voter),
		HasVoted:   rec.HasVoted,
		TotalVoted: rec.TotalVoted,
	}
}

// handleCastVote commits the caller's tokens to a contestant. The caller
// identity is the voter.
func (h *Handler) handleCastVote(w http.ResponseWriter, r *http.Request) {
	voter, ok := h.identity(w, r)
	if !ok {
		return
	}
	var body struct {
		ContestantID int   `json:"contestant_id"`
		Amount       int64 `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	rec, err := h.svc.CastVote(r.Context(), titleParam(r), port.CastVoteReq{
		ContestantID: body.ContestantID,
		Amount:       body.Amount,
		Voter:        voter,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toVoterRecordResponse(rec))
}

// handleGetVoterRecord returns an identity's vote marker within a
// campaign.
func (h *Handler) handleGetVoterRecord(w http.ResponseWriter, r *http.Request) {
	rec, err := h.svc.GetVoterRecord(r.Context(), titleParam(r), identityParam(r))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toVoterRecordResponse(rec))
}
