package rest

import (
	"errors"
	"net/http"

	"github.com/cyltest/api/domain"
	"github.com/cyltest/api/service"
)

type UpdateSettingRequest struct {
	Category string `json:"category"`
	Key      string `json:"key"`
	Value    string `json:"value"`
}

func (h *Handler) UpdateSetting(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req UpdateSettingRequest
	err := h.JSONBind(r, &req)
	if err != nil {
		h.ErrorResponse(ctx, w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.Category == "" || req.Key == "" {
		h.ErrorResponse(ctx, w, http.StatusUnprocessableEntity, "Category and key are required", errors.New("category or key is empty"))
		return
	}

	claims, ok := h.GetClaimsFromContext(ctx)
	if !ok {
		h.ErrorResponse(ctx, w, http.StatusUnauthorized, "Unauthorized", errors.New("claims not found"))
		return
	}

	err = h.Svc.UpdateSetting(ctx, &claims, req.Category, req.Key, req.Value, service.RequestMetadata(r))
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}

	response := NewSuccessResponse[EmptyResponse](&EmptyResponse{})
	h.JSONResponse(ctx, w, http.StatusOK, response)
}

type SettingInfo struct {
	Category string `json:"category"`
	Key      string `json:"key"`
	Value    string `json:"value"`
}

type ListSettingsResponse struct {
	Settings []SettingInfo `json:"settings"`
}

func (h *Handler) ListSettings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := domain.QuerySettingOptions{}
	if category := r.URL.Query().Get("category"); category != "" {
		query.Categories = []string{category}
	}
	err := h.Svc.QuerySettings(ctx, &query)
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	respData := ListSettingsResponse{}
	for _, setting := range query.Result {
		respData.Settings = append(respData.Settings, SettingInfo{
			Category: setting.Category,
			Key:      setting.Key,
			Value:    setting.Value,
		})
	}
	response := NewSuccessResponse(&respData)
	h.JSONResponse(ctx, w, http.StatusOK, response)
}
