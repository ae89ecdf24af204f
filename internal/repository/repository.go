// Package repository handles all interactions with the database.
//
// It contains raw SQL queries and methods to fetch and persist
// users, properties and reservations, abstracting SQL logic away
// from the service layer.
//
// Conventions shared by every repository:
//   - the store client is injected (Querier), never a package-level handle
//   - a single-row lookup that matches nothing returns nil and no error
//   - every store failure is logged and returned wrapped in ErrQueryFailed,
//     keeping the driver error reachable for errors.As (see sqlerr)
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// DefaultLimit caps list results when the caller passes no positive limit.
const DefaultLimit = 10

// ErrQueryFailed marks errors that come from the store rather than from absence of data.
var ErrQueryFailed = errors.New("query failed")

// Querier is the part of the pgx API the repositories need.
// *pgxpool.Pool, *pgx.Conn and pgx.Tx all satisfy it.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// queryFailed logs a store failure and wraps it so callers can tell it apart
// from "nothing found".
func queryFailed(log *zerolog.Logger, op string, err error) error {
	log.Error().Err(err).Str("operation", op).Msg("query failed")
	return fmt.Errorf("%s: %w: %w", op, ErrQueryFailed, err)
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	return limit
}
