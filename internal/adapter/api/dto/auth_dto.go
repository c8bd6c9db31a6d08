package dto

import (
	"time"
)

// LoginRequest representa os dados para login
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ActorResponse representa o funcionário autenticado
type ActorResponse struct {
	EmployeeID int64  `json:"employee_id"`
	Username   string `json:"username"`
	Role       string `json:"role"`
}

// LoginResponse representa a resposta de login bem-sucedido
type LoginResponse struct {
	Message     string        `json:"message"`
	User        ActorResponse `json:"user"`
	AccessToken string        `json:"access_token"`
	ExpiresAt   time.Time     `json:"expires_at"`
}

// MeResponse representa os dados do funcionário logado
type MeResponse struct {
	User ActorResponse `json:"user"`
}
