package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/cafe-pos/internal/domain/purchase"
	"github.com/hugohenrick/cafe-pos/pkg/apperror"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const orderHeaderSelect = `
	SELECT po.order_id, po.created_at, po.order_status, po.supplier_id, COALESCE(su.supplier_name, '')
	FROM purchase_order po
	LEFT JOIN supplier su ON su.supplier_id = po.supplier_id`

const orderLinesSelect = `
	SELECT poi.order_id, poi.order_item_id, poi.ingredient_id, COALESCE(i.ingredient_name, ''),
		COALESCE(i.unit, ''), poi.quantity, poi.unit_cost
	FROM purchase_order_item poi
	LEFT JOIN ingredient i ON i.ingredient_id = poi.ingredient_id
	WHERE poi.order_id = ANY($1)
	ORDER BY poi.order_id, poi.order_item_id`

// PurchaseOrderRepository implementa purchase.Repository e purchase.Reader
type PurchaseOrderRepository struct {
	db DBTX
}

// NewPurchaseOrderRepository cria uma nova instância de PurchaseOrderRepository
func NewPurchaseOrderRepository(db DBTX) *PurchaseOrderRepository {
	return &PurchaseOrderRepository{db: db}
}

// Create implementa purchase.Repository.Create
func (r *PurchaseOrderRepository) Create(ctx context.Context, o *purchase.Order) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO purchase_order (order_status, supplier_id)
		VALUES ($1, $2)
		RETURNING order_id, created_at`,
		string(o.Status), o.SupplierID,
	).Scan(&o.ID, &o.CreatedAt)
	if err != nil {
		return writeError("erro ao criar pedido de compra", err)
	}

	return nil
}

// AddLine implementa purchase.Repository.AddLine
func (r *PurchaseOrderRepository) AddLine(ctx context.Context, orderID int64, l *purchase.Line) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO purchase_order_item (order_id, ingredient_id, quantity, unit_cost)
		VALUES ($1, $2, $3, $4)
		RETURNING order_item_id`,
		orderID, l.IngredientID, l.Quantity, nullDecimal(l.UnitCost),
	).Scan(&l.ID)
	if err != nil {
		return writeError("erro ao criar item do pedido", err)
	}

	return nil
}

// MarkReceived implementa purchase.Repository.MarkReceived
func (r *PurchaseOrderRepository) MarkReceived(ctx context.Context, orderID int64) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE purchase_order SET order_status = $1
		WHERE order_id = $2 AND LOWER(TRIM(order_status)) <> 'received'`,
		string(purchase.StatusReceived), orderID)
	if err != nil {
		return false, fmt.Errorf("erro ao atualizar status do pedido: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Status implementa purchase.Repository.Status
func (r *PurchaseOrderRepository) Status(ctx context.Context, orderID int64) (purchase.Status, error) {
	var status string
	err := r.db.QueryRow(ctx, `SELECT order_status FROM purchase_order WHERE order_id = $1`, orderID).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperror.NotFound("pedido de compra não encontrado")
		}
		return "", fmt.Errorf("erro ao buscar status do pedido: %w", err)
	}
	return purchase.Status(status), nil
}

// Lines implementa purchase.Repository.Lines
func (r *PurchaseOrderRepository) Lines(ctx context.Context, orderID int64) ([]purchase.Line, error) {
	grouped, err := r.linesFor(ctx, []int64{orderID})
	if err != nil {
		return nil, err
	}
	return grouped[orderID], nil
}

// FindByID implementa purchase.Reader.FindByID
func (r *PurchaseOrderRepository) FindByID(ctx context.Context, id int64) (*purchase.Order, error) {
	o, err := scanOrder(r.db.QueryRow(ctx, orderHeaderSelect+` WHERE po.order_id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NotFound("pedido de compra não encontrado")
		}
		return nil, fmt.Errorf("erro ao buscar pedido de compra: %w", err)
	}

	if err := r.attachLines(ctx, []*purchase.Order{o}); err != nil {
		return nil, err
	}

	return o, nil
}

// List implementa purchase.Reader.List
func (r *PurchaseOrderRepository) List(ctx context.Context, limit, offset int) ([]*purchase.Order, error) {
	rows, err := r.db.Query(ctx,
		orderHeaderSelect+` ORDER BY po.created_at DESC, po.order_id DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar pedidos de compra: %w", err)
	}
	defer rows.Close()

	var orders []*purchase.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler pedido de compra: %w", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar pedidos de compra: %w", err)
	}

	if err := r.attachLines(ctx, orders); err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *PurchaseOrderRepository) attachLines(ctx context.Context, orders []*purchase.Order) error {
	if len(orders) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}

	grouped, err := r.linesFor(ctx, ids)
	if err != nil {
		return err
	}

	for _, o := range orders {
		o.Lines = grouped[o.ID]
		if o.Lines == nil {
			o.Lines = []purchase.Line{}
		}
	}

	return nil
}

func (r *PurchaseOrderRepository) linesFor(ctx context.Context, orderIDs []int64) (map[int64][]purchase.Line, error) {
	rows, err := r.db.Query(ctx, orderLinesSelect, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar itens do pedido: %w", err)
	}
	defer rows.Close()

	grouped := make(map[int64][]purchase.Line, len(orderIDs))
	for rows.Next() {
		var orderID int64
		var l purchase.Line
		var cost decimal.NullDecimal
		if err := rows.Scan(&orderID, &l.ID, &l.IngredientID, &l.IngredientName, &l.Unit, &l.Quantity, &cost); err != nil {
			return nil, fmt.Errorf("erro ao ler item do pedido: %w", err)
		}
		if cost.Valid {
			c := cost.Decimal
			l.UnitCost = &c
		}
		grouped[orderID] = append(grouped[orderID], l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar itens do pedido: %w", err)
	}

	return grouped, nil
}

func scanOrder(row pgx.Row) (*purchase.Order, error) {
	var o purchase.Order
	var status string
	if err := row.Scan(&o.ID, &o.CreatedAt, &status, &o.SupplierID, &o.SupplierName); err != nil {
		return nil, err
	}
	o.Status = purchase.Status(status)
	return &o, nil
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(*d)
}
