package httpadapter

import (
	"encoding/json"
	"net/http"

	"fanvote/internal/core/domain"
	"fanvote/internal/core/port"
)

type campaignResponse struct {
	Address         string            `json:"address"`
	Title           string            `json:"title"`
	Creator         string            `json:"creator"`
	StartTime       int64             `json:"start_time"`
	EndTime         int64             `json:"end_time"`
	BannerURL       string            `json:"banner_url"`
	FeePercentage   int               `json:"fee_percentage"`
	IsActive        bool              `json:"is_active"`
	TotalVotes      int64             `json:"total_votes"`
	ContestantCount int               `json:"contestant_count"`
	TopVoters       []domain.TopVoter `json:"top_voters"`
}

func toCampaignResponse(c *domain.Campaign) campaignResponse {
	tv := c.TopVoters
	if tv == nil {
		tv = []domain.TopVoter{}
	}
	return campaignResponse{
		Address:         string(c.Address),
		Title:           c.Title,
		Creator:         string(c.Creator),
		StartTime:       c.StartTime,
		EndTime:         c.EndTime,
		BannerURL:       c.BannerURL,
		FeePercentage:   c.FeePercentage,
		IsActive:        c.IsActive,
		TotalVotes:      c.TotalVotes,
		ContestantCount: c.ContestantCount,
		TopVoters:       tv,
	}
}

// handleCreateCampaign opens a new campaign. The caller identity becomes
// the campaign creator.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.identity(w, r)
	if !ok {
		return
	}
	var body struct {
		Title         string `json:"title"`
		StartTime     int64  `json:"start_time"`
		EndTime       int64  `json:"end_time"`
		BannerURL     string `json:"banner_url"`
		FeePercentage int    `json:"fee_percentage"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	c, err := h.svc.CreateCampaign(r.Context(), port.CreateCampaignReq{
		Title:         body.Title,
		StartTime:     body.StartTime,
		EndTime:       body.EndTime,
		BannerURL:     body.BannerURL,
		FeePercentage: body.FeePercentage,
		Creator:       caller,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toCampaignResponse(c))
}

// handleEditCampaign applies a partial update; absent JSON fields leave
// the stored values unchanged.
func (h *Handler) handleEditCampaign(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.identity(w, r)
	if !ok {
		return
	}
	var body struct {
		EndTime       *int64  `json:"end_time"`
		BannerURL     *string `json:"banner_url"`
		FeePercentage *int    `json:"fee_percentage"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	c, err := h.svc.EditCampaign(r.Context(), titleParam(r), port.EditCampaignReq{
		EndTime:       body.EndTime,
		BannerURL:     body.BannerURL,
		FeePercentage: body.FeePercentage,
		Caller:        caller,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResponse(c))
}

// handlePauseCampaign deactivates the campaign.
func (h *Handler) handlePauseCampaign(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.identity(w, r)
	if !ok {
		return
	}
	c, err := h.svc.PauseCampaign(r.Context(), titleParam(r), caller)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResponse(c))
}

// handleActivateCampaign reactivates the campaign.
func (h *Handler) handleActivateCampaign(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.identity(w, r)
	if !ok {
		return
	}
	c, err := h.svc.ActivateCampaign(r.Context(), titleParam(r), caller)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResponse(c))
}

// handleGetCampaign returns one campaign by title.
func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.GetCampaign(r.Context(), titleParam(r))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResponse(c))
}

// handleListCampaigns enumerates campaigns for the browsing pages.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListCampaigns(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	out := make([]campaignResponse, 0, len(list))
	for i := range list {
		out = append(out, toCampaignResponse(&list[i]))
	}
	h.writeJSON(w, http.StatusOK, out)
}
