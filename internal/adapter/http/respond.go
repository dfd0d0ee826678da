package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"fanvote/internal/core/domain"
)

// identityHeader carries the already-authenticated caller identity.
const identityHeader = "X-Wallet-Address"

type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON encodes v with the given status. Encoding failures are logged;
// the status line has already been sent at that point.
func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps a protocol failure to a status code and surfaces its
// error code verbatim in the body. Failures outside the taxonomy are
// logged and hidden behind a generic 500.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("internal error", slog.Any("error", err))
	}
	h.writeJSON(w, status, errorResponse{Error: domain.ErrorCode(err)})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrCampaignNotFound),
		errors.Is(err, domain.ErrContestantNotFound),
		errors.Is(err, domain.ErrVoterRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrDuplicateCampaign),
		errors.Is(err, domain.ErrAlreadyVoted),
		errors.Is(err, domain.ErrCampaignNotActiveOrEnded):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusPaymentRequired
	case errors.Is(err, domain.ErrInvalidTimeRange),
		errors.Is(err, domain.ErrEndTimeInPast),
		errors.Is(err, domain.ErrInvalidFeePercentage),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrTitleTooLong),
		errors.Is(err, domain.ErrURLTooLong),
		errors.Is(err, domain.ErrInvalidName),
		errors.Is(err, domain.ErrBioTooLong),
		errors.Is(err, domain.ErrTooManyContestants):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// identity extracts the caller identity header. When it is absent the
// request is rejected with 401 and false is returned.
func (h *Handler) identity(w http.ResponseWriter, r *http.Request) (domain.Identity, bool) {
	id := r.Header.Get(identityHeader)
	if id == "" {
		h.writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "Unauthorized"})
		return "", false
	}
	return domain.Identity(id), true
}

// titleParam returns the {title} path parameter, percent-decoded so
// campaign titles with spaces round-trip through URLs.
func titleParam(r *http.Request) string {
	raw := chi.URLParam(r, "title")
	if title, err := url.PathUnescape(raw); err == nil {
		return title
	}
	return raw
}

// identityParam returns the {identity} path parameter with the same
// decoding as titleParam.
func identityParam(r *http.Request) domain.Identity {
	raw := chi.URLParam(r, "identity")
	if id, err := url.PathUnescape(raw); err == nil {
		return domain.Identity(id)
	}
	return domain.Identity(raw)
}
