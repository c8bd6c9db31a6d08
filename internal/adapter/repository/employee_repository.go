package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/cafe-pos/internal/domain/employee"
	"github.com/hugohenrick/cafe-pos/pkg/apperror"
	"github.com/jackc/pgx/v5"
)

// EmployeeRepository implementa employee.Repository
type EmployeeRepository struct {
	db DBTX
}

// NewEmployeeRepository cria uma nova instância de EmployeeRepository
func NewEmployeeRepository(db DBTX) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

// FindByUsername implementa employee.Repository.FindByUsername
func (r *EmployeeRepository) FindByUsername(ctx context.Context, username string) (*employee.Employee, error) {
	var e employee.Employee
	var role string
	err := r.db.QueryRow(ctx,
		`SELECT employee_id, username, password, COALESCE(full_name, ''), COALESCE(role, ''), COALESCE(status, '')
		FROM employee WHERE username = $1`,
		username,
	).Scan(&e.ID, &e.Username, &e.PasswordHash, &e.FullName, &role, &e.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NotFound("funcionário não encontrado")
		}
		return nil, fmt.Errorf("erro ao buscar funcionário: %w", err)
	}

	e.Role = employee.Role(role)
	return &e, nil
}
