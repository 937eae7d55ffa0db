package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// UserService resolves user IDs against the relational users table. The pool is
// injected at startup.
type UserService struct {
	DB *sql.DB
}

func NewUserService(db *sql.DB) *UserService {
	return &UserService{DB: db}
}

// ResolveNames maps each known user ID to its display name. One parameterized
// IN query covers the single-ID and multi-ID case alike. IDs without a matching
// row, and rows with a NULL name, are simply absent from the result.
func (s *UserService) ResolveNames(ctx context.Context, userIDs []int) (map[int]string, error) {
	names := make(map[int]string, len(userIDs))
	if len(userIDs) == 0 {
		return names, nil
	}

	query := "SELECT id, name FROM users WHERE id IN (" + inPlaceholders(len(userIDs)) + ")"
	args := make([]interface{}, len(userIDs))
	for i, id := range userIDs {
		args[i] = id
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query user names: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id   int
			name sql.NullString
		)
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		if name.Valid {
			names[id] = name.String
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate user rows: %w", err)
	}

	return names, nil
}

// inPlaceholders builds the "?,?,...,?" list for an IN clause of n values.
func inPlaceholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}
