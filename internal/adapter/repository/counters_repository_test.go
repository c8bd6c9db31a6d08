package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/hugohenrick/cafe-pos/internal/domain/employee"
	"github.com/hugohenrick/cafe-pos/pkg/apperror"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemberRepository_AddPoints(t *testing.T) {
	mock := newMock(t)
	repo := NewMemberRepository(mock)
	ctx := context.Background()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE member SET points = COALESCE(points, 0) + $1 WHERE member_id = $2")).
		WithArgs(int64(7), int64(3)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE member SET points")).
		WithArgs(int64(7), int64(404)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	ok, err := repo.AddPoints(ctx, 3, 7)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.AddPoints(ctx, 404, 7)
	require.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIngredientRepository_IncrementStock(t *testing.T) {
	mock := newMock(t)
	repo := NewIngredientRepository(mock)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE ingredient SET quantity_on_hand = COALESCE(quantity_on_hand, 0) + $1 WHERE ingredient_id = $2")).
		WithArgs(decEq("5"), "A").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE ingredient SET")).
		WithArgs(decEq("1"), "Z").
		WillReturnError(errors.New("conexão perdida"))

	ok, err := repo.IncrementStock(context.Background(), "A", dec("5"))
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = repo.IncrementStock(context.Background(), "Z", dec("1"))
	assert.ErrorContains(t, err, "erro ao atualizar estoque")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMenuRepository_CurrentPrices(t *testing.T) {
	mock := newMock(t)
	repo := NewMenuRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT menu_id, price FROM menu WHERE menu_id = ANY($1)")).
		WithArgs([]int64{1, 2, 3}).
		WillReturnRows(pgxmock.NewRows([]string{"menu_id", "price"}).
			AddRow(int64(1), dec("45")).
			AddRow(int64(2), dec("60")))

	prices, err := repo.CurrentPrices(context.Background(), []int64{1, 2, 3})
	require.NoError(t, err)
	assert.Len(t, prices, 2)
	assert.True(t, prices[1].Equal(dec("45")))
	_, found := prices[3]
	assert.False(t, found)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMenuRepository_CurrentPrices_NoIDs(t *testing.T) {
	mock := newMock(t)
	repo := NewMenuRepository(mock)

	prices, err := repo.CurrentPrices(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, prices)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_FindByUsername(t *testing.T) {
	mock := newMock(t)
	repo := NewEmployeeRepository(mock)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta("FROM employee WHERE username = $1")).
		WithArgs("ana").
		WillReturnRows(pgxmock.NewRows([]string{"employee_id", "username", "password", "full_name", "role", "status"}).
			AddRow(int64(1), "ana", "$2a$10$hash", "Ana Lima", "Manager", "Active"))
	mock.ExpectQuery(regexp.QuoteMeta("FROM employee WHERE username = $1")).
		WithArgs("ghost").
		WillReturnError(pgx.ErrNoRows)

	e, err := repo.FindByUsername(ctx, "ana")
	require.NoError(t, err)
	assert.Equal(t, employee.RoleManager, e.Role)
	assert.True(t, e.IsActive())

	_, err = repo.FindByUsername(ctx, "ghost")
	assert.True(t, apperror.Is(err, apperror.KindNotFound))

	assert.NoError(t, mock.ExpectationsWereMet())
}
