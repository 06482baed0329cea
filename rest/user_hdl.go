package rest

import (
	"errors"
	"net/http"

	"github.com/cyltest/api/domain"
	"github.com/cyltest/api/service"
)

type CreateUserRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Password string `json:"password"`
}

func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req CreateUserRequest
	err := h.JSONBind(r, &req)
	if err != nil {
		h.ErrorResponse(ctx, w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.Email == "" || req.Password == "" {
		h.ErrorResponse(ctx, w, http.StatusUnprocessableEntity, "Email and password are required", errors.New("email or password is empty"))
		return
	}

	claims, ok := h.GetClaimsFromContext(ctx)
	if !ok {
		h.ErrorResponse(ctx, w, http.StatusUnauthorized, "Unauthorized", errors.New("claims not found"))
		return
	}

	user := &domain.User{
		Email:    req.Email,
		Name:     req.Name,
		Role:     req.Role,
		Password: domain.EncryptedPassword(req.Password),
	}
	err = h.Svc.CreateUser(ctx, &claims, user, service.RequestMetadata(r))
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}

	response := NewSuccessResponse[EmptyResponse](&EmptyResponse{})
	h.JSONResponse(ctx, w, http.StatusOK, response)
}

type UserInfo struct {
	ID     string            `json:"id"`
	Email  string            `json:"email"`
	Name   string            `json:"name"`
	Role   string            `json:"role"`
	Status domain.UserStatus `json:"status"`
}

type ListUsersResponse struct {
	Users []UserInfo `json:"users"`
}

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := domain.QueryUserOptions{}
	err := h.Svc.QueryUsers(ctx, &query)
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	respData := ListUsersResponse{}
	for _, user := range query.Result {
		respData.Users = append(respData.Users, UserInfo{
			ID:     user.ID.Hex(),
			Email:  user.Email,
			Name:   user.Name,
			Role:   user.Role,
			Status: user.Status,
		})
	}
	response := NewSuccessResponse(&respData)
	h.JSONResponse(ctx, w, http.StatusOK, response)
}
