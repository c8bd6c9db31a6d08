package employee

import (
	"context"
	"strings"
)

// Role representa o cargo do funcionário
type Role string

const (
	RoleAdmin   Role = "Admin"
	RoleManager Role = "Manager"
	RoleCashier Role = "Cashier"
)

// StatusResigned marca funcionários desligados, que não podem entrar no sistema
const StatusResigned = "Resigned"

// Employee representa um funcionário com acesso ao caixa
type Employee struct {
	ID           int64  `json:"employee_id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	FullName     string `json:"full_name"`
	Role         Role   `json:"role"`
	Status       string `json:"status"`
}

// IsActive indica se o funcionário pode autenticar
func (e *Employee) IsActive() bool {
	return !strings.EqualFold(e.Status, StatusResigned)
}

// IsPrivileged indica se o cargo pode cancelar vendas e receber pedidos
func (r Role) IsPrivileged() bool {
	return r == RoleAdmin || r == RoleManager
}

// Repository define a consulta de funcionários usada no login
type Repository interface {
	FindByUsername(ctx context.Context, username string) (*Employee, error)
}
