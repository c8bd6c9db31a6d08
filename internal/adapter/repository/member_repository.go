package repository

import (
	"context"
	"fmt"
)

// MemberRepository implementa member.Repository
type MemberRepository struct {
	db DBTX
}

// NewMemberRepository cria uma nova instância de MemberRepository
func NewMemberRepository(db DBTX) *MemberRepository {
	return &MemberRepository{db: db}
}

// AddPoints implementa member.Repository.AddPoints
func (r *MemberRepository) AddPoints(ctx context.Context, memberID int64, points int64) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE member SET points = COALESCE(points, 0) + $1 WHERE member_id = $2`,
		points, memberID)
	if err != nil {
		return false, fmt.Errorf("erro ao somar pontos do membro: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
