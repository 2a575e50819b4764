package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/kelvinmenegasse/idp-server/internal/auth/domain"
	"github.com/kelvinmenegasse/idp-server/pkg/constant"
)

// Querier is the subset of pgxpool.Pool the repository needs. pgxmock
// satisfies it in tests.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type SessionRepository struct {
	db Querier
}

func NewSessionRepository(db Querier) *SessionRepository {
	return &SessionRepository{db: db}
}

const sessionColumns = `id, account_id, hashed_rt, exp, iat, aud, ip, platform,
	browser_brand, user_agent, register_status, last_used_at, deleted_at`

func scanSession(row pgx.Row) (*domain.RefreshTokenSession, error) {
	var s domain.RefreshTokenSession
	err := row.Scan(&s.ID, &s.AccountID, &s.HashedRt, &s.Exp, &s.Iat, &s.Aud,
		&s.IP, &s.Platform, &s.BrowserBrand, &s.UserAgent,
		&s.RegisterStatus, &s.LastUsedAt, &s.DeletedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SessionRepository) Create(ctx context.Context, session *domain.RefreshTokenSession) (*domain.RefreshTokenSession, error) {
	query := fmt.Sprintf(`INSERT INTO refresh_token_sessions (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING %s`, sessionColumns, sessionColumns)

	row := r.db.QueryRow(ctx, query,
		session.ID, session.AccountID, session.HashedRt, session.Exp, session.Iat,
		session.Aud, session.IP, session.Platform, session.BrowserBrand,
		session.UserAgent, session.RegisterStatus, session.LastUsedAt, session.DeletedAt)

	created, err := scanSession(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create refresh token session: %w", err)
	}
	return created, nil
}

func sessionFilterClause(filter domain.SessionFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	add := func(column string, value any) {
		args = append(args, value)
		conds = append(conds, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if filter.ID != "" {
		add("id", filter.ID)
	}
	if filter.AccountID != "" {
		add("account_id", filter.AccountID)
	}
	if filter.Exp != 0 {
		add("exp", filter.Exp)
	}
	if filter.Iat != 0 {
		add("iat", filter.Iat)
	}
	if filter.Aud != "" {
		add("aud", filter.Aud)
	}
	if filter.RegisterStatus != "" {
		add("register_status", filter.RegisterStatus)
	}

	if len(conds) == 0 {
		return "", nil
	}

	clause := " WHERE " + conds[0]
	for _, c := range conds[1:] {
		clause += " AND " + c
	}
	return clause, args
}

func (r *SessionRepository) FindOne(ctx context.Context, filter domain.SessionFilter) (*domain.RefreshTokenSession, error) {
	clause, args := sessionFilterClause(filter)
	query := fmt.Sprintf(`SELECT %s FROM refresh_token_sessions%s LIMIT 1`, sessionColumns, clause)

	session, err := scanSession(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find refresh token session: %w", err)
	}
	return session, nil
}

func (r *SessionRepository) FindMany(ctx context.Context, filter domain.SessionFilter) ([]*domain.RefreshTokenSession, error) {
	clause, args := sessionFilterClause(filter)
	query := fmt.Sprintf(`SELECT %s FROM refresh_token_sessions%s`, sessionColumns, clause)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list refresh token sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*domain.RefreshTokenSession
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}
	return sessions, rows.Err()
}

func (r *SessionRepository) Update(ctx context.Context, id string, session *domain.RefreshTokenSession) (*domain.RefreshTokenSession, error) {
	query := fmt.Sprintf(`UPDATE refresh_token_sessions
		SET hashed_rt = $1, register_status = $2, last_used_at = $3
		WHERE id = $4 RETURNING %s`, sessionColumns)

	updated, err := scanSession(r.db.QueryRow(ctx, query,
		session.HashedRt, session.RegisterStatus, session.LastUsedAt, id))
	if err != nil {
		return nil, fmt.Errorf("failed to update refresh token session: %w", err)
	}
	return updated, nil
}

// SoftDelete retires a session only while it is still ACTIVE. The status guard
// makes the transition single-winner when two refresh calls race on the same
// session.
func (r *SessionRepository) SoftDelete(ctx context.Context, id string) (*domain.RefreshTokenSession, error) {
	query := fmt.Sprintf(`UPDATE refresh_token_sessions
		SET register_status = $1, deleted_at = now()
		WHERE id = $2 AND register_status = $3
		RETURNING %s`, sessionColumns)

	session, err := scanSession(r.db.QueryRow(ctx, query,
		constant.RegisterStatusRemoved, id, constant.RegisterStatusActive))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("refresh token session %s is not active", id)
		}
		return nil, fmt.Errorf("failed to soft delete refresh token session: %w", err)
	}
	return session, nil
}
