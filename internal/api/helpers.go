package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid/v5"

	"github.com/Matheus-hora48/Teste-Conectar/internal/entity"
)

type ResponseError struct {
	Message string            `json:"message"`
	Details []ValidationError `json:"details,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func sendErr(ctx context.Context, w http.ResponseWriter, code int, err error, msg string) {
	if code >= http.StatusInternalServerError {
		slog.ErrorContext(ctx, msg, "error", err.Error(), "http_code", code)
	} else {
		slog.WarnContext(ctx, msg, "error", err.Error(), "http_code", code)
	}

	sendJSON(ctx, w, code, ResponseError{Message: msg})
}

func sendJSON(ctx context.Context, w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		slog.ErrorContext(ctx, "failed to encode response", "error", err.Error(), "http_code", code)
	}
}

// handleServiceErr maps domain errors to the matching status and message.
func handleServiceErr(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entity.ErrUnauthorized):
		sendErr(ctx, w, http.StatusUnauthorized, err, tokenErrMsg(err))
	case errors.Is(err, entity.ErrInvalidCredentials):
		sendErr(ctx, w, http.StatusUnauthorized, err, entity.ErrMsgInvalidCredentials)
	case errors.Is(err, entity.ErrForbidden):
		sendErr(ctx, w, http.StatusForbidden, err, entity.ErrMsgForbidden)
	case errors.Is(err, entity.ErrUserNotFound):
		sendErr(ctx, w, http.StatusNotFound, err, entity.ErrMsgUserNotFound)
	case errors.Is(err, entity.ErrClientNotFound):
		sendErr(ctx, w, http.StatusNotFound, err, entity.ErrMsgClientNotFound)
	case errors.Is(err, entity.ErrDuplicateEmail):
		sendErr(ctx, w, http.StatusBadRequest, err, entity.ErrMsgEmailTaken)
	case errors.Is(err, entity.ErrDuplicateCNPJ):
		sendErr(ctx, w, http.StatusBadRequest, err, entity.ErrMsgCNPJTaken)
	case errors.Is(err, entity.ErrWrongPassword):
		sendErr(ctx, w, http.StatusBadRequest, err, entity.ErrMsgWrongPassword)
	case errors.Is(err, entity.ErrSelfDelete):
		sendErr(ctx, w, http.StatusBadRequest, err, entity.ErrMsgSelfDelete)
	case errors.Is(err, entity.ErrInvalidArgument):
		sendErr(ctx, w, http.StatusBadRequest, err, entity.ErrMsgBadRequest)
	case errors.Is(err, entity.ErrUnknownProvider):
		sendErr(ctx, w, http.StatusNotFound, err, entity.ErrMsgUnknownProvider)
	case errors.Is(err, entity.ErrInvalidOAuthState):
		sendErr(ctx, w, http.StatusUnauthorized, err, entity.ErrMsgOAuthState)
	case errors.Is(err, entity.ErrOAuthProvider),
		errors.Is(err, entity.ErrOAuthProviderLimit),
		errors.Is(err, entity.ErrOAuthEmailMissing):
		sendErr(ctx, w, http.StatusUnauthorized, err, entity.ErrMsgOAuthFailed)
	default:
		sendErr(ctx, w, http.StatusInternalServerError, err, entity.ErrMsgInternal)
	}
}

func tokenErrMsg(err error) string {
	switch {
	case errors.Is(err, entity.ErrTokenExpired):
		return entity.ErrMsgTokenExpired
	case errors.Is(err, entity.ErrTokenMalformed):
		return entity.ErrMsgTokenMalformed
	case errors.Is(err, entity.ErrTokenNotValidYet):
		return entity.ErrMsgTokenNotValidYet
	case errors.Is(err, entity.ErrTokenInvalid):
		return entity.ErrMsgTokenInvalid
	default:
		return entity.ErrMsgUnauthorized
	}
}

func decodeJSON(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

func idParam(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.FromString(chi.URLParam(r, name))
	if err != nil {
		sendErr(r.Context(), w, http.StatusBadRequest, err, entity.ErrMsgBadRequest)
		return uuid.Nil, false
	}

	return id, true
}

func optString(v string) *string {
	if v == "" {
		return nil
	}

	return &v
}

func intQuery(r *http.Request, name string, def int) (int, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def, nil
	}

	return strconv.Atoi(v)
}
