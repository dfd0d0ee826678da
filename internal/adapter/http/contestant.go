package httpadapter

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"fanvote/internal/core/domain"
	"fanvote/internal/core/port"
)

type contestantResponse struct {
	Address      string `json:"address"`
	Campaign     string `json:"campaign"`
	ContestantID int    `json:"contestant_id"`
	Name         string `json:"name"`
	ImageURL     string `json:"image_url"`
	Bio          string `json:"bio"`
	VoteCount    int64  `json:"vote_count"`
}

func toContestantResponse(ct *domain.Contestant) contestantResponse {
	return contestantResponse{
		Address:      string(ct.Address),
		Campaign:     string(ct.Campaign),
		ContestantID: ct.ContestantID,
		Name:         ct.Name,
		ImageURL:     ct.ImageURL,
		Bio:          ct.Bio,
		VoteCount:    ct.VoteCount,
	}
}

func contestantIDParam(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "contestantID"))
	if err != nil || id < 0 {
		return 0, false
	}
	return id, true
}

// handleAddContestant appends a contestant to the campaign roster.
func (h *Handler) handleAddContestant(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.identity(w, r)
	if !ok {
		return
	}
	var body struct {
		Name     string `json:"name"`
		ImageURL string `json:"image_url"`
		Bio      string `json:"bio"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	ct, err := h.svc.AddContestant(r.Context(), titleParam(r), port.AddContestantReq{
		Name:     body.Name,
		ImageURL: body.ImageURL,
		Bio:      body.Bio,
		Caller:   caller,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toContestantResponse(ct))
}

// handleEditContestant applies a partial update to a contestant's display
// fields.
func (h *Handler) handleEditContestant(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.identity(w, r)
	if !ok {
		return
	}
	id, ok := contestantIDParam(r)
	if !ok {
		http.Error(w, "invalid contestant id", http.StatusBadRequest)
		return
	}
	var body struct {
		Name     *string `json:"name"`
		ImageURL *string `json:"image_url"`
		Bio      *string `json:"bio"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	ct, err := h.svc.EditContestant(r.Context(), titleParam(r), id, port.EditContestantReq{
		Name:     body.Name,
		ImageURL: body.ImageURL,
		Bio:      body.Bio,
		Caller:   caller,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toContestantResponse(ct))
}

// handleGetContestant returns one contestant by campaign title and
// ordinal.
func (h *Handler) handleGetContestant(w http.ResponseWriter, r *http.Request) {
	id, ok := contestantIDParam(r)
	if !ok {
		http.Error(w, "invalid contestant id", http.StatusBadRequest)
		return
	}
	ct, err := h.svc.GetContestant(r.Context(), titleParam(r), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toContestantResponse(ct))
}

// handleListContestants returns the campaign roster ordered by ordinal.
func (h *Handler) handleListContestants(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListContestants(r.Context(), titleParam(r))
	if err != nil {
		h.writeError(w, err)
		return
	}
	out := make([]contestantResponse, 0, len(list))
	for i := range list {
		out = append(out, toContestantResponse(&list[i]))
	}
	h.writeJSON(w, http.StatusOK, out)
}
