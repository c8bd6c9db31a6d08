package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/cafe-pos/internal/domain/sale"
	"github.com/hugohenrick/cafe-pos/pkg/apperror"
	"github.com/jackc/pgx/v5"
)

const saleHeaderSelect = `
	SELECT
		s.sale_id, s.created_at, s.subtotal, s.discount_amount, s.net_total,
		s.payment_method, s.employee_id, s.member_id, s.promotion_id,
		COALESCE(e.username, ''), COALESCE(m.member_name, ''), COALESCE(p.promotion_name, '')
	FROM sale s
	LEFT JOIN employee e ON e.employee_id = s.employee_id
	LEFT JOIN member m ON m.member_id = s.member_id
	LEFT JOIN promotion p ON p.promotion_id = s.promotion_id`

const saleLinesSelect = `
	SELECT si.sale_id, si.sale_item_id, si.menu_id, COALESCE(mn.menu_name, ''), si.quantity, si.unit_price
	FROM sale_item si
	LEFT JOIN menu mn ON mn.menu_id = si.menu_id
	WHERE si.sale_id = ANY($1)
	ORDER BY si.sale_id, si.sale_item_id`

// SaleRepository implementa sale.Repository e sale.Reader
type SaleRepository struct {
	db DBTX
}

// NewSaleRepository cria uma nova instância de SaleRepository
func NewSaleRepository(db DBTX) *SaleRepository {
	return &SaleRepository{db: db}
}

// Create implementa sale.Repository.Create
func (r *SaleRepository) Create(ctx context.Context, s *sale.Sale) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO sale (
			subtotal, discount_amount, net_total, payment_method,
			employee_id, member_id, promotion_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING sale_id, created_at`,
		s.Subtotal, s.DiscountAmount, s.NetTotal, s.PaymentMethod,
		s.EmployeeID, s.MemberID, s.PromotionID,
	).Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		return writeError("erro ao criar venda", err)
	}

	return nil
}

// AddLine implementa sale.Repository.AddLine
func (r *SaleRepository) AddLine(ctx context.Context, saleID int64, l *sale.Line) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO sale_item (sale_id, menu_id, quantity, unit_price)
		VALUES ($1, $2, $3, $4)
		RETURNING sale_item_id`,
		saleID, l.MenuID, l.Quantity, l.UnitPrice,
	).Scan(&l.ID)
	if err != nil {
		return writeError("erro ao criar item da venda", err)
	}

	return nil
}

// DeleteLines implementa sale.Repository.DeleteLines
func (r *SaleRepository) DeleteLines(ctx context.Context, saleID int64) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM sale_item WHERE sale_id = $1`, saleID); err != nil {
		return fmt.Errorf("erro ao excluir itens da venda: %w", err)
	}
	return nil
}

// Delete implementa sale.Repository.Delete
func (r *SaleRepository) Delete(ctx context.Context, saleID int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM sale WHERE sale_id = $1`, saleID)
	if err != nil {
		return false, fmt.Errorf("erro ao excluir venda: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// FindByID implementa sale.Reader.FindByID
func (r *SaleRepository) FindByID(ctx context.Context, id int64) (*sale.Sale, error) {
	s, err := scanSale(r.db.QueryRow(ctx, saleHeaderSelect+` WHERE s.sale_id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NotFound("venda não encontrada")
		}
		return nil, fmt.Errorf("erro ao buscar venda: %w", err)
	}

	if err := r.attachLines(ctx, []*sale.Sale{s}); err != nil {
		return nil, err
	}

	return s, nil
}

// List implementa sale.Reader.List
func (r *SaleRepository) List(ctx context.Context, limit, offset int) ([]*sale.Sale, error) {
	rows, err := r.db.Query(ctx,
		saleHeaderSelect+` ORDER BY s.created_at DESC, s.sale_id DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar vendas: %w", err)
	}
	defer rows.Close()

	var sales []*sale.Sale
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler venda: %w", err)
		}
		sales = append(sales, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar vendas: %w", err)
	}

	if err := r.attachLines(ctx, sales); err != nil {
		return nil, err
	}

	return sales, nil
}

// attachLines carrega os itens de todas as vendas em uma única consulta
func (r *SaleRepository) attachLines(ctx context.Context, sales []*sale.Sale) error {
	if len(sales) == 0 {
		return nil
	}

	byID := make(map[int64]*sale.Sale, len(sales))
	ids := make([]int64, 0, len(sales))
	for _, s := range sales {
		s.Lines = []sale.Line{}
		byID[s.ID] = s
		ids = append(ids, s.ID)
	}

	rows, err := r.db.Query(ctx, saleLinesSelect, ids)
	if err != nil {
		return fmt.Errorf("erro ao buscar itens da venda: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var saleID int64
		var l sale.Line
		if err := rows.Scan(&saleID, &l.ID, &l.MenuID, &l.MenuName, &l.Quantity, &l.UnitPrice); err != nil {
			return fmt.Errorf("erro ao ler item da venda: %w", err)
		}
		if s, ok := byID[saleID]; ok {
			s.Lines = append(s.Lines, l)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("erro ao iterar itens da venda: %w", err)
	}

	return nil
}

func scanSale(row pgx.Row) (*sale.Sale, error) {
	var s sale.Sale
	err := row.Scan(
		&s.ID, &s.CreatedAt, &s.Subtotal, &s.DiscountAmount, &s.NetTotal,
		&s.PaymentMethod, &s.EmployeeID, &s.MemberID, &s.PromotionID,
		&s.EmployeeUsername, &s.MemberName, &s.PromotionName,
	)
	if err != nil {
		return nil, err
	}

	s.PointsEarned = s.PointsToAccrue()
	return &s, nil
}
