package pgsql

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/SscSPs/bankroll_app/internal/apperrors"
	"github.com/SscSPs/bankroll_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
)

// listSessionPage reads one page of a session table newest first. Ordering is
// (start_time DESC, session_id DESC); the cursor is the last row of the previous page.
func listSessionPage[M any](ctx context.Context, q querier, columns, table string, limit int, nextToken *string, cursor func(M) (time.Time, string)) ([]M, *string, error) {
	if limit <= 0 {
		limit = pagination.DefaultLimit
	}
	// We fetch one extra item to determine if there's a next page.
	fetchLimit := limit + 1

	query := "SELECT " + columns + " FROM " + table
	var args []any
	if nextToken != nil && *nextToken != "" {
		lastStart, lastID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewValidationError("invalid nextToken")
		}
		query += " WHERE (start_time, session_id) < ($1, $2)"
		args = append(args, lastStart, lastID)
	}
	query += " ORDER BY start_time DESC, session_id DESC LIMIT $" + strconv.Itoa(len(args)+1) + ";"
	args = append(args, fetchLimit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query %s: %w", table, err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[M])
	if err != nil {
		return nil, nil, fmt.Errorf("failed to scan %s: %w", table, err)
	}

	var nextTokenVal *string
	if len(ms) > limit {
		lastStart, lastID := cursor(ms[limit-1])
		token := pagination.EncodeToken(lastStart, lastID)
		nextTokenVal = &token
		ms = ms[:limit]
	}
	return ms, nextTokenVal, nil
}
