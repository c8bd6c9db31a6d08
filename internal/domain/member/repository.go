package member

import (
	"context"
)

// Repository define as operações sobre o saldo de pontos do membro
type Repository interface {
	// AddPoints soma pontos ao saldo com um único incremento atômico.
	// Retorna false quando o membro não existe.
	AddPoints(ctx context.Context, memberID int64, points int64) (bool, error)
}
