package sale

import (
	"context"
)

// Repository define as operações de escrita de vendas, sempre executadas
// dentro de uma unidade de trabalho
type Repository interface {
	// Create insere o cabeçalho e preenche ID e CreatedAt
	Create(ctx context.Context, s *Sale) error

	// AddLine insere um item da venda
	AddLine(ctx context.Context, saleID int64, l *Line) error

	// DeleteLines remove todos os itens da venda
	DeleteLines(ctx context.Context, saleID int64) error

	// Delete remove o cabeçalho; retorna false quando a venda não existe
	Delete(ctx context.Context, saleID int64) (bool, error)
}

// Reader define as consultas de vendas
type Reader interface {
	// FindByID busca a venda com seus itens
	FindByID(ctx context.Context, id int64) (*Sale, error)

	// List lista as vendas mais recentes com seus itens
	List(ctx context.Context, limit, offset int) ([]*Sale, error)
}
