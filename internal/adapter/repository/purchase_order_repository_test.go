package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/hugohenrick/cafe-pos/internal/domain/purchase"
	"github.com/hugohenrick/cafe-pos/pkg/apperror"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var orderLineColumns = []string{"order_id", "order_item_id", "ingredient_id", "ingredient_name", "unit", "quantity", "unit_cost"}

func TestPurchaseOrderRepository_CreateAndAddLine(t *testing.T) {
	mock := newMock(t)
	repo := NewPurchaseOrderRepository(mock)
	ctx := context.Background()
	now := time.Now().UTC()

	o := &purchase.Order{Status: purchase.StatusReceived, SupplierID: ptr(int64(4))}
	withCost := &purchase.Line{IngredientID: "A", Quantity: dec("5"), UnitCost: ptr(dec("12.50"))}
	withoutCost := &purchase.Line{IngredientID: "B", Quantity: dec("3")}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO purchase_order (")).
		WithArgs("Received", ptr(int64(4))).
		WillReturnRows(pgxmock.NewRows([]string{"order_id", "created_at"}).AddRow(int64(8), now))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO purchase_order_item (")).
		WithArgs(int64(8), "A", decEq("5"), decEq("12.50")).
		WillReturnRows(pgxmock.NewRows([]string{"order_item_id"}).AddRow(int64(1)))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO purchase_order_item (")).
		WithArgs(int64(8), "B", decEq("3"), decimal.NullDecimal{}).
		WillReturnRows(pgxmock.NewRows([]string{"order_item_id"}).AddRow(int64(2)))

	require.NoError(t, repo.Create(ctx, o))
	require.NoError(t, repo.AddLine(ctx, o.ID, withCost))
	require.NoError(t, repo.AddLine(ctx, o.ID, withoutCost))

	assert.Equal(t, int64(8), o.ID)
	assert.Equal(t, int64(1), withCost.ID)
	assert.Equal(t, int64(2), withoutCost.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPurchaseOrderRepository_MarkReceived(t *testing.T) {
	mock := newMock(t)
	repo := NewPurchaseOrderRepository(mock)
	ctx := context.Background()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE purchase_order SET order_status = $1")).
		WithArgs("Received", int64(8)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE purchase_order SET order_status = $1")).
		WithArgs("Received", int64(8)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	ok, err := repo.MarkReceived(ctx, 8)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.MarkReceived(ctx, 8)
	require.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPurchaseOrderRepository_Status(t *testing.T) {
	mock := newMock(t)
	repo := NewPurchaseOrderRepository(mock)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT order_status FROM purchase_order")).
		WithArgs(int64(8)).
		WillReturnRows(pgxmock.NewRows([]string{"order_status"}).AddRow("received"))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT order_status FROM purchase_order")).
		WithArgs(int64(9)).
		WillReturnError(pgx.ErrNoRows)

	st, err := repo.Status(ctx, 8)
	require.NoError(t, err)
	assert.True(t, st.IsReceived())

	_, err = repo.Status(ctx, 9)
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
}

func TestPurchaseOrderRepository_Lines(t *testing.T) {
	mock := newMock(t)
	repo := NewPurchaseOrderRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("FROM purchase_order_item poi")).
		WithArgs([]int64{8}).
		WillReturnRows(pgxmock.NewRows(orderLineColumns).
			AddRow(int64(8), int64(1), "A", "Leite", "L", dec("5"), decimal.NewNullDecimal(dec("4.20"))).
			AddRow(int64(8), int64(2), "B", "Café", "kg", dec("3"), nil))

	lines, err := repo.Lines(context.Background(), 8)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	require.NotNil(t, lines[0].UnitCost)
	assert.True(t, lines[0].UnitCost.Equal(dec("4.2")))
	assert.Nil(t, lines[1].UnitCost)
	assert.Equal(t, "Café", lines[1].IngredientName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPurchaseOrderRepository_FindByID(t *testing.T) {
	mock := newMock(t)
	repo := NewPurchaseOrderRepository(mock)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE po.order_id = $1")).
		WithArgs(int64(8)).
		WillReturnRows(pgxmock.NewRows([]string{"order_id", "created_at", "order_status", "supplier_id", "supplier_name"}).
			AddRow(int64(8), now, "Pending", nil, ""))
	mock.ExpectQuery(regexp.QuoteMeta("FROM purchase_order_item poi")).
		WithArgs([]int64{8}).
		WillReturnRows(pgxmock.NewRows(orderLineColumns))

	o, err := repo.FindByID(context.Background(), 8)
	require.NoError(t, err)
	assert.Equal(t, purchase.StatusPending, o.Status)
	assert.Nil(t, o.SupplierID)
	assert.NotNil(t, o.Lines)
	assert.Empty(t, o.Lines)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPurchaseOrderRepository_List(t *testing.T) {
	mock := newMock(t)
	repo := NewPurchaseOrderRepository(mock)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY po.created_at DESC")).
		WithArgs(10, 0).
		WillReturnRows(pgxmock.NewRows([]string{"order_id", "created_at", "order_status", "supplier_id", "supplier_name"}).
			AddRow(int64(9), now, "Received", ptr(int64(2)), "Distribuidora").
			AddRow(int64(8), now, "Pending", nil, ""))
	mock.ExpectQuery(regexp.QuoteMeta("FROM purchase_order_item poi")).
		WithArgs([]int64{9, 8}).
		WillReturnRows(pgxmock.NewRows(orderLineColumns).
			AddRow(int64(9), int64(3), "A", "Leite", "L", dec("2"), nil).
			AddRow(int64(8), int64(1), "B", "Café", "kg", dec("1"), nil))

	orders, err := repo.List(context.Background(), 10, 0)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "Distribuidora", orders[0].SupplierName)
	assert.Equal(t, "A", orders[0].Lines[0].IngredientID)
	assert.Equal(t, "B", orders[1].Lines[0].IngredientID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPurchaseOrderRepository_AddLineUnknownIngredient(t *testing.T) {
	mock := newMock(t)
	repo := NewPurchaseOrderRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO purchase_order_item (")).
		WithArgs(int64(8), "Z", decEq("1"), decimal.NullDecimal{}).
		WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "purchase_order_item_ingredient_id_fkey"})

	err := repo.AddLine(context.Background(), 8, &purchase.Line{IngredientID: "Z", Quantity: dec("1")})

	assert.True(t, apperror.Is(err, apperror.KindValidation))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPurchaseOrderRepository_CreateStoreFailure(t *testing.T) {
	mock := newMock(t)
	repo := NewPurchaseOrderRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO purchase_order (")).
		WithArgs("Pending", (*int64)(nil)).
		WillReturnError(&pgconn.PgError{Code: "40001"})

	err := repo.Create(context.Background(), &purchase.Order{Status: purchase.StatusPending})

	require.Error(t, err)
	assert.False(t, apperror.Is(err, apperror.KindValidation))
}

func TestPurchaseOrderRepository_AddLineCheckViolation(t *testing.T) {
	mock := newMock(t)
	repo := NewPurchaseOrderRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO purchase_order_item (")).
		WithArgs(int64(8), "A", decEq("0.0001"), decimal.NullDecimal{}).
		WillReturnError(&pgconn.PgError{Code: "23514", ConstraintName: "purchase_order_item_quantity_check"})

	err := repo.AddLine(context.Background(), 8, &purchase.Line{IngredientID: "A", Quantity: dec("0.0001")})

	assert.True(t, apperror.Is(err, apperror.KindValidation))
	assert.NoError(t, mock.ExpectationsWereMet())
}
