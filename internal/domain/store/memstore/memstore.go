// Package memstore implementa store.UnitOfWork em memória para testes.
// Cada transação roda isolada e desfaz todas as escritas em erro ou panic.
package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/hugohenrick/cafe-pos/internal/domain/ingredient"
	"github.com/hugohenrick/cafe-pos/internal/domain/member"
	"github.com/hugohenrick/cafe-pos/internal/domain/menu"
	"github.com/hugohenrick/cafe-pos/internal/domain/purchase"
	"github.com/hugohenrick/cafe-pos/internal/domain/sale"
	"github.com/hugohenrick/cafe-pos/internal/domain/store"
	"github.com/hugohenrick/cafe-pos/pkg/apperror"
	"github.com/shopspring/decimal"
)

// Operações que aceitam falha injetada via FailOn
const (
	OpMenuPrices      = "menu.prices"
	OpSaleCreate      = "sales.create"
	OpSaleAddLine     = "sales.add_line"
	OpSaleDelete      = "sales.delete"
	OpMemberAddPoints = "members.add_points"
	OpOrderCreate     = "orders.create"
	OpOrderAddLine    = "orders.add_line"
	OpOrderReceive    = "orders.receive"
	OpStockIncrement  = "ingredients.increment"
)

type state struct {
	prices  map[int64]decimal.Decimal
	members map[int64]int64
	stock   map[string]decimal.Decimal
	sales   map[int64]sale.Sale
	orders  map[int64]purchase.Order
	seq     int64
}

func (st *state) clone() *state {
	c := &state{
		prices:  make(map[int64]decimal.Decimal, len(st.prices)),
		members: make(map[int64]int64, len(st.members)),
		stock:   make(map[string]decimal.Decimal, len(st.stock)),
		sales:   make(map[int64]sale.Sale, len(st.sales)),
		orders:  make(map[int64]purchase.Order, len(st.orders)),
		seq:     st.seq,
	}
	for k, v := range st.prices {
		c.prices[k] = v
	}
	for k, v := range st.members {
		c.members[k] = v
	}
	for k, v := range st.stock {
		c.stock[k] = v
	}
	for k, v := range st.sales {
		v.Lines = append([]sale.Line(nil), v.Lines...)
		c.sales[k] = v
	}
	for k, v := range st.orders {
		v.Lines = append([]purchase.Line(nil), v.Lines...)
		c.orders[k] = v
	}
	return c
}

func (st *state) nextID() int64 {
	st.seq++
	return st.seq
}

// Store guarda vendas, pedidos e contadores em memória
type Store struct {
	mu      sync.Mutex
	data    *state
	failOn  map[string]error
	commits int
}

// New cria um Store vazio
func New() *Store {
	return &Store{
		data:   (&state{}).clone(),
		failOn: map[string]error{},
	}
}

// SetPrice cadastra o preço atual de um item do cardápio
func (s *Store) SetPrice(menuID int64, price decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.prices[menuID] = price
}

// AddMember cadastra um membro com saldo inicial
func (s *Store) AddMember(memberID, points int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.members[memberID] = points
}

// AddIngredient cadastra um ingrediente com estoque inicial
func (s *Store) AddIngredient(id string, qty decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.stock[id] = qty
}

// Points retorna o saldo atual do membro
func (s *Store) Points(memberID int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.members[memberID]
}

// Stock retorna o estoque atual do ingrediente
func (s *Store) Stock(id string) decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.stock[id]
}

// SalesCount retorna quantas vendas estão confirmadas
func (s *Store) SalesCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data.sales)
}

// OrdersCount retorna quantos pedidos de compra estão confirmados
func (s *Store) OrdersCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data.orders)
}

// Commits retorna quantas transações foram confirmadas
func (s *Store) Commits() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commits
}

// FailOn faz a operação informada retornar err; nil remove a falha
func (s *Store) FailOn(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		delete(s.failOn, op)
		return
	}
	s.failOn[op] = err
}

// Do implementa store.UnitOfWork.Do serializando as transações
func (s *Store) Do(ctx context.Context, fn func(ctx context.Context, tx store.Tx) error) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.data.clone()
	defer func() {
		if p := recover(); p != nil {
			s.data = snapshot
			panic(p)
		}
	}()

	if err := fn(ctx, &tx{s: s}); err != nil {
		s.data = snapshot
		if _, ok := apperror.As(err); ok {
			return err
		}
		return apperror.Persistence("erro ao gravar no banco de dados", err)
	}

	s.commits++
	return nil
}

// Sales retorna o leitor de vendas confirmadas
func (s *Store) Sales() sale.Reader {
	return saleReader{s: s}
}

// Orders retorna o leitor de pedidos confirmados
func (s *Store) Orders() purchase.Reader {
	return orderReader{s: s}
}

// tx acessa s.data sem travar: Do já detém o lock
type tx struct {
	s *Store
}

func (t *tx) Sales() sale.Repository              { return saleRepo{t} }
func (t *tx) Menu() menu.Repository               { return menuRepo{t} }
func (t *tx) Members() member.Repository          { return memberRepo{t} }
func (t *tx) PurchaseOrders() purchase.Repository { return orderRepo{t} }
func (t *tx) Ingredients() ingredient.Repository  { return ingredientRepo{t} }
func (t *tx) fail(op string) error                { return t.s.failOn[op] }

type menuRepo struct{ t *tx }

func (r menuRepo) CurrentPrices(_ context.Context, ids []int64) (map[int64]decimal.Decimal, error) {
	if err := r.t.fail(OpMenuPrices); err != nil {
		return nil, err
	}
	out := make(map[int64]decimal.Decimal, len(ids))
	for _, id := range ids {
		if p, ok := r.t.s.data.prices[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}

type saleRepo struct{ t *tx }

func (r saleRepo) Create(_ context.Context, sl *sale.Sale) error {
	if err := r.t.fail(OpSaleCreate); err != nil {
		return err
	}
	sl.ID = r.t.s.data.nextID()
	sl.CreatedAt = time.Now().UTC()
	header := *sl
	header.Lines = nil
	r.t.s.data.sales[sl.ID] = header
	return nil
}

func (r saleRepo) AddLine(_ context.Context, saleID int64, l *sale.Line) error {
	if err := r.t.fail(OpSaleAddLine); err != nil {
		return err
	}
	stored, ok := r.t.s.data.sales[saleID]
	if !ok {
		return apperror.NotFound("venda não encontrada")
	}
	l.ID = r.t.s.data.nextID()
	stored.Lines = append(stored.Lines, *l)
	r.t.s.data.sales[saleID] = stored
	return nil
}

func (r saleRepo) DeleteLines(_ context.Context, saleID int64) error {
	if stored, ok := r.t.s.data.sales[saleID]; ok {
		stored.Lines = nil
		r.t.s.data.sales[saleID] = stored
	}
	return nil
}

func (r saleRepo) Delete(_ context.Context, saleID int64) (bool, error) {
	if err := r.t.fail(OpSaleDelete); err != nil {
		return false, err
	}
	if _, ok := r.t.s.data.sales[saleID]; !ok {
		return false, nil
	}
	delete(r.t.s.data.sales, saleID)
	return true, nil
}

type memberRepo struct{ t *tx }

func (r memberRepo) AddPoints(_ context.Context, memberID, points int64) (bool, error) {
	if err := r.t.fail(OpMemberAddPoints); err != nil {
		return false, err
	}
	current, ok := r.t.s.data.members[memberID]
	if !ok {
		return false, nil
	}
	r.t.s.data.members[memberID] = current + points
	return true, nil
}

type ingredientRepo struct{ t *tx }

func (r ingredientRepo) IncrementStock(_ context.Context, id string, qty decimal.Decimal) (bool, error) {
	if err := r.t.fail(OpStockIncrement); err != nil {
		return false, err
	}
	current, ok := r.t.s.data.stock[id]
	if !ok {
		return false, nil
	}
	r.t.s.data.stock[id] = current.Add(qty)
	return true, nil
}

type orderRepo struct{ t *tx }

func (r orderRepo) Create(_ context.Context, o *purchase.Order) error {
	if err := r.t.fail(OpOrderCreate); err != nil {
		return err
	}
	o.ID = r.t.s.data.nextID()
	o.CreatedAt = time.Now().UTC()
	header := *o
	header.Lines = nil
	r.t.s.data.orders[o.ID] = header
	return nil
}

func (r orderRepo) AddLine(_ context.Context, orderID int64, l *purchase.Line) error {
	if err := r.t.fail(OpOrderAddLine); err != nil {
		return err
	}
	stored, ok := r.t.s.data.orders[orderID]
	if !ok {
		return apperror.NotFound("pedido de compra não encontrado")
	}
	// espelha a chave estrangeira purchase_order_item.ingredient_id
	if _, ok := r.t.s.data.stock[l.IngredientID]; !ok {
		return apperror.Validation(fmt.Sprintf("ingrediente %s não encontrado", l.IngredientID))
	}
	l.ID = r.t.s.data.nextID()
	stored.Lines = append(stored.Lines, *l)
	r.t.s.data.orders[orderID] = stored
	return nil
}

func (r orderRepo) MarkReceived(_ context.Context, orderID int64) (bool, error) {
	if err := r.t.fail(OpOrderReceive); err != nil {
		return false, err
	}
	stored, ok := r.t.s.data.orders[orderID]
	if !ok || stored.Status.IsReceived() {
		return false, nil
	}
	stored.Status = purchase.StatusReceived
	r.t.s.data.orders[orderID] = stored
	return true, nil
}

func (r orderRepo) Status(_ context.Context, orderID int64) (purchase.Status, error) {
	stored, ok := r.t.s.data.orders[orderID]
	if !ok {
		return "", apperror.NotFound("pedido de compra não encontrado")
	}
	return stored.Status, nil
}

func (r orderRepo) Lines(_ context.Context, orderID int64) ([]purchase.Line, error) {
	return append([]purchase.Line(nil), r.t.s.data.orders[orderID].Lines...), nil
}

type saleReader struct{ s *Store }

func (r saleReader) FindByID(_ context.Context, id int64) (*sale.Sale, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored, ok := r.s.data.sales[id]
	if !ok {
		return nil, apperror.NotFound("venda não encontrada")
	}
	return copySale(stored), nil
}

func (r saleReader) List(_ context.Context, limit, offset int) ([]*sale.Sale, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	ids := make([]int64, 0, len(r.s.data.sales))
	for id := range r.s.data.sales {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] > ids[j] })

	var out []*sale.Sale
	for _, id := range page(ids, limit, offset) {
		out = append(out, copySale(r.s.data.sales[id]))
	}
	return out, nil
}

type orderReader struct{ s *Store }

func (r orderReader) FindByID(_ context.Context, id int64) (*purchase.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored, ok := r.s.data.orders[id]
	if !ok {
		return nil, apperror.NotFound("pedido de compra não encontrado")
	}
	return copyOrder(stored), nil
}

func (r orderReader) List(_ context.Context, limit, offset int) ([]*purchase.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	ids := make([]int64, 0, len(r.s.data.orders))
	for id := range r.s.data.orders {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] > ids[j] })

	var out []*purchase.Order
	for _, id := range page(ids, limit, offset) {
		out = append(out, copyOrder(r.s.data.orders[id]))
	}
	return out, nil
}

func copySale(s sale.Sale) *sale.Sale {
	s.Lines = append([]sale.Line{}, s.Lines...)
	s.PointsEarned = s.PointsToAccrue()
	return &s
}

func copyOrder(o purchase.Order) *purchase.Order {
	o.Lines = append([]purchase.Line{}, o.Lines...)
	return &o
}

func page(ids []int64, limit, offset int) []int64 {
	if offset >= len(ids) {
		return nil
	}
	ids = ids[offset:]
	if limit > 0 && limit < len(ids) {
		ids = ids[:limit]
	}
	return ids
}
