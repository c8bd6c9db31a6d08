package purchase

import (
	"context"
)

// Repository define as operações de escrita de pedidos de compra
type Repository interface {
	// Create insere o cabeçalho e preenche ID e CreatedAt
	Create(ctx context.Context, o *Order) error

	// AddLine insere um item do pedido
	AddLine(ctx context.Context, orderID int64, l *Line) error

	// MarkReceived muda o status para Received se ainda não estiver recebido.
	// Retorna false quando o pedido não existe ou já foi recebido.
	MarkReceived(ctx context.Context, orderID int64) (bool, error)

	// Status retorna o status atual do pedido
	Status(ctx context.Context, orderID int64) (Status, error)

	// Lines retorna os itens de um pedido
	Lines(ctx context.Context, orderID int64) ([]Line, error)
}

// Reader define as consultas de pedidos de compra
type Reader interface {
	// FindByID busca o pedido com seus itens
	FindByID(ctx context.Context, id int64) (*Order, error)

	// List lista os pedidos mais recentes com seus itens
	List(ctx context.Context, limit, offset int) ([]*Order, error)
}
