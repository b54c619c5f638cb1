package handler

import "github.com/stockroom/inventory-system/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role"     validate:"omitempty,oneof=user admin"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// registerResponse matches the envelope the previous backend emitted.
type registerResponse struct {
	Message string       `json:"message"`
	Data    registerData `json:"data"`
}

type registerData struct {
	User *domain.User `json:"user"`
}

// loginResponse carries the user record and the bearer token.
type loginResponse struct {
	Data        *domain.User `json:"data"`
	AccessToken string       `json:"access_token"`
}
