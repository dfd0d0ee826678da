package httpadapter

import (
	"net/http"

	"log/slog"

	"github.com/go-chi/chi/v5"

	"fanvote/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. It holds a VoteUseCase to execute business logic and a logger for
// structured logging. Routes are registered on a chi.Router for convenient
// method handling.
//
// The caller identity arrives in the X-Wallet-Address header as an opaque
// value; signature verification happens upstream.
type Handler struct {
	svc    port.VoteUseCase
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured. It accepts a
// VoteUseCase implementation and a logger. The returned Handler registers
// handlers for each endpoint on a new chi.Router.
func NewHandler(svc port.VoteUseCase, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/campaigns", h.handleListCampaigns)
		r.Post("/campaigns", h.handleCreateCampaign)
		r.Route("/campaigns/{title}", func(r chi.Router) {
			r.Get("/", h.handleGetCampaign)
			r.Patch("/", h.handleEditCampaign)
			r.Post("/pause", h.handlePauseCampaign)
			r.Post("/activate", h.handleActivateCampaign)
			r.Get("/contestants", h.handleListContestants)
			r.Post("/contestants", h.handleAddContestant)
			r.Get("/contestants/{contestantID}", h.handleGetContestant)
			r.Patch("/contestants/{contestantID}", h.handleEditContestant)
			r.Post("/votes", h.handleCastVote)
			r.Get("/voters/{identity}", h.handleGetVoterRecord)
			r.Get("/vault", h.handleVaultBalance)
		})
		r.Get("/treasury", h.handleTreasury)
		r.Post("/treasury/withdraw", h.handleWithdrawFees)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
