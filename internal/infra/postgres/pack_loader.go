package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"triviahost/internal/domain"
	"github.com/jackc/pgx/v4/pgxpool"
)

// PackLoader loads question pack JSONB from Postgres.
type PackLoader struct {
	pool *pgxpool.Pool
}

func NewPackLoader(pool *pgxpool.Pool) *PackLoader {
	return &PackLoader{pool: pool}
}

func (l *PackLoader) LoadPack(ctx context.Context, packID string) (domain.QuestionPack, error) {
	var raw []byte
	err := l.pool.QueryRow(ctx, `SELECT data FROM packs WHERE id=$1`, packID).Scan(&raw)
	if err != nil {
		return domain.QuestionPack{}, fmt.Errorf("load pack: %w", err)
	}
	var pack domain.QuestionPack
	if err := json.Unmarshal(raw, &pack); err != nil {
		return domain.QuestionPack{}, fmt.Errorf("unmarshal pack: %w", err)
	}
	pack.ID = packID
	return pack, nil
}
