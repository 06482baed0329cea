package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/cyltest/api/domain"
	"github.com/cyltest/api/errs"
	"github.com/cyltest/api/pkg/logger"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ErrorResponse represents error response structure
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// SuccessResponse represents the success response structure
type SuccessResponse[T any] struct {
	Success   bool   `json:"success"`
	Data      *T     `json:"data,omitempty"`
	Timestamp string `json:"timestamp"`
}

type EmptyResponse struct{}

func NewSuccessResponse[T any](data *T) SuccessResponse[T] {
	return SuccessResponse[T]{
		Success:   true,
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

type Params struct {
	fx.In
	Svc domain.Service
}

func NewHandler(params Params) (*Handler, error) {
	return &Handler{
		Svc: params.Svc,
	}, nil
}

type Handler struct {
	Svc domain.Service
}

func (h *Handler) JSONResponse(ctx context.Context, w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		logger.Logger(ctx).Error().Err(err).Msg("Failed to encode JSON response")
		http.Error(w, "Failed to encode JSON response", http.StatusInternalServerError)
	}
}

func (h *Handler) JSONBind(r *http.Request, dst any) error {
	decoder := json.NewDecoder(r.Body)
	err := decoder.Decode(dst)
	if err != nil {
		return err
	}
	return nil
}

func (h *Handler) ErrorResponse(ctx context.Context, w http.ResponseWriter, status int, errMsg string, originalErr error) {
	if originalErr != nil {
		logger.Logger(ctx).Warn().Err(originalErr).Msg(errMsg)
	}
	resp := ErrorResponse{
		Success: false,
		Error:   errMsg,
	}
	h.JSONResponse(ctx, w, status, resp)
}

// HandleError maps service errors to HTTP responses.
func (h *Handler) HandleError(ctx context.Context, w http.ResponseWriter, err error) {
	if httpErr, ok := errs.IsHTTPStatusError(err); ok {
		h.ErrorResponse(ctx, w, httpErr.StatusCode, httpErr.Message, httpErr.OriginalErr)
		return
	}
	switch errors.Cause(err) {
	case domain.ErrNotFound:
		h.ErrorResponse(ctx, w, http.StatusNotFound, "Not found", err)
	case domain.ErrInvalidCredentials:
		h.ErrorResponse(ctx, w, http.StatusUnauthorized, "Invalid credentials", err)
	case domain.ErrPermissionDenied:
		h.ErrorResponse(ctx, w, http.StatusForbidden, "Permission denied", err)
	case domain.ErrNilQueryInput:
		h.ErrorResponse(ctx, w, http.StatusBadRequest, "Invalid query", err)
	default:
		h.ErrorResponse(ctx, w, http.StatusInternalServerError, "Internal server error", err)
	}
}

func (h *Handler) Version(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"message": "Cylinder Test Certificate API Server",
		"version": "1.0.0",
	}
	h.JSONResponse(r.Context(), w, http.StatusOK, response)
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "Cylinder Test Certificate API Server",
	}
	h.JSONResponse(r.Context(), w, http.StatusOK, response)
}

type claimsContextKey struct{}

func (h *Handler) SetClaimsInContext(ctx context.Context, claims domain.Claims) context.Context {
	return context.WithValue(ctx, claimsContextKey{}, claims)
}

func (h *Handler) GetClaimsFromContext(ctx context.Context) (domain.Claims, bool) {
	claims, ok := ctx.Value(claimsContextKey{}).(domain.Claims)
	return claims, ok
}
