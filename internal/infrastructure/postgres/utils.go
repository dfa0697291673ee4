package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/epc-inventory-api/internal/domain/pagination"
)

// Querier lo implementan *pgxpool.Pool y pgx.Tx; los repos no saben si están en una transacción.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// isNoRows pgx.ErrNoRows o un id con formato inválido (22P02): para el llamador ambos son "no existe".
func isNoRows(err error) bool {
	if errors.Is(err, pgx.ErrNoRows) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "22P02" // invalid_text_representation
}

// where acumula condiciones AND con placeholders posicionales.
// Cada "?" de cond se reemplaza por el siguiente $n.
type where struct {
	conds []string
	args  []any
}

func (w *where) add(cond string, args ...any) {
	for _, a := range args {
		w.args = append(w.args, a)
		cond = strings.Replace(cond, "?", fmt.Sprintf("$%d", len(w.args)), 1)
	}
	w.conds = append(w.conds, cond)
}

func (w *where) sql() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}

// page agrega ORDER BY/LIMIT/OFFSET a la consulta y sus argumentos.
// Con la misma fecha de creación se desempata por id para que las páginas sean estables.
func (w *where) page(column, idColumn string, p pagination.Page) string {
	w.args = append(w.args, p.Limit, p.Skip)
	n := len(w.args)
	return fmt.Sprintf(" ORDER BY %s %s, %s %s LIMIT $%d OFFSET $%d",
		column, p.Direction.SQL(), idColumn, p.Direction.SQL(), n-1, n)
}
