package sale

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyCart = errors.New("a venda precisa de ao menos um item")
)

// DefaultPaymentMethod é usado quando o caixa não informa a forma de pagamento
const DefaultPaymentMethod = "Cash"

// MoneyScale é o número de casas decimais das colunas monetárias (DECIMAL(12,2))
const MoneyScale int32 = 2

// pointsDivisor: cada 20 unidades do total líquido rendem 1 ponto
var pointsDivisor = decimal.NewFromInt(20)

// CartItem representa uma linha do carrinho enviada pelo caixa
type CartItem struct {
	MenuID    int64
	Quantity  int
	UnitPrice *decimal.Decimal // preço informado manualmente, usado sem consulta ao cardápio
}

// Line representa um item persistido da venda, com o preço congelado no momento do fechamento
type Line struct {
	ID        int64           `json:"sale_item_id,omitempty"`
	MenuID    int64           `json:"menu_id"`
	MenuName  string          `json:"menu_name,omitempty"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// Extension retorna quantidade * preço unitário
func (l Line) Extension() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Sale representa o cabeçalho de uma venda
type Sale struct {
	ID             int64           `json:"sale_id"`
	CreatedAt      time.Time       `json:"created_at"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	NetTotal       decimal.Decimal `json:"net_total"`
	PaymentMethod  string          `json:"payment_method"`
	EmployeeID     int64           `json:"employee_id"`
	MemberID       *int64          `json:"member_id"`
	PromotionID    *int64          `json:"promotion_id"`
	PointsEarned   int64           `json:"points_earned"`
	Lines          []Line          `json:"items"`

	// Campos de leitura (joins)
	EmployeeUsername string `json:"employee_username,omitempty"`
	MemberName       string `json:"member_name,omitempty"`
	PromotionName    string `json:"promotion_name,omitempty"`
}

// NewSale monta uma venda a partir das linhas já precificadas.
// Preços e desconto são arredondados para MoneyScale casas, de modo que o
// subtotal gravado é exatamente a soma das extensões gravadas.
// O total líquido não é limitado a zero.
func NewSale(lines []Line, discount decimal.Decimal, paymentMethod string, employeeID int64, memberID, promotionID *int64) (*Sale, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	discount = discount.Round(MoneyScale)
	for i := range lines {
		lines[i].UnitPrice = lines[i].UnitPrice.Round(MoneyScale)
	}

	if strings.TrimSpace(paymentMethod) == "" {
		paymentMethod = DefaultPaymentMethod
	}

	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(l.Extension())
	}

	return &Sale{
		Subtotal:       subtotal,
		DiscountAmount: discount,
		NetTotal:       subtotal.Sub(discount),
		PaymentMethod:  paymentMethod,
		EmployeeID:     employeeID,
		MemberID:       memberID,
		PromotionID:    promotionID,
		Lines:          lines,
	}, nil
}

// PointsFor calcula os pontos de fidelidade de um total líquido: floor(total / 20).
// Totais negativos não geram pontos.
func PointsFor(netTotal decimal.Decimal) int64 {
	if netTotal.IsNegative() {
		return 0
	}
	return netTotal.Div(pointsDivisor).Floor().IntPart()
}

// PointsToAccrue retorna os pontos que esta venda gera para o membro
func (s *Sale) PointsToAccrue() int64 {
	if s.MemberID == nil {
		return 0
	}
	return PointsFor(s.NetTotal)
}

// PriceLines resolve o preço unitário de cada item do carrinho.
// Preço informado tem precedência e é arredondado para MoneyScale casas;
// item desconhecido no cardápio vale zero.
// Quantidades negativas são mantidas como linhas de quantidade zero.
// Retorna também os ids que não foram encontrados no cardápio.
func PriceLines(items []CartItem, prices map[int64]decimal.Decimal) ([]Line, []int64) {
	lines := make([]Line, 0, len(items))
	var unknown []int64

	for _, it := range items {
		qty := it.Quantity
		if qty < 0 {
			qty = 0
		}

		var unit decimal.Decimal
		if it.UnitPrice != nil {
			unit = *it.UnitPrice
		} else if price, ok := prices[it.MenuID]; ok {
			unit = price
		} else {
			unit = decimal.Zero
			unknown = append(unknown, it.MenuID)
		}

		lines = append(lines, Line{
			MenuID:    it.MenuID,
			Quantity:  qty,
			UnitPrice: unit.Round(MoneyScale),
		})
	}

	return lines, unknown
}

// MenuIDsToLookup retorna os ids de cardápio sem preço informado, sem repetição
func MenuIDsToLookup(items []CartItem) []int64 {
	seen := make(map[int64]struct{}, len(items))
	ids := make([]int64, 0, len(items))
	for _, it := range items {
		if it.UnitPrice != nil {
			continue
		}
		if _, ok := seen[it.MenuID]; ok {
			continue
		}
		seen[it.MenuID] = struct{}{}
		ids = append(ids, it.MenuID)
	}
	return ids
}
