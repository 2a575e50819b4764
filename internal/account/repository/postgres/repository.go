package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/kelvinmenegasse/idp-server/internal/account/domain"
	"github.com/kelvinmenegasse/idp-server/pkg/constant"
)

// Querier is the subset of pgxpool.Pool the repository needs. pgxmock
// satisfies it in tests.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type AccountRepository struct {
	db Querier
}

func NewAccountRepository(db Querier) *AccountRepository {
	return &AccountRepository{db: db}
}

const accountColumns = `id, name, email, cpf, username, password, recovery_key,
	recovery_key_expiration, register_status, created_at, updated_at, deleted_at`

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var a domain.Account
	err := row.Scan(&a.ID, &a.Name, &a.Email, &a.Cpf, &a.Username, &a.Password,
		&a.RecoveryKey, &a.RecoveryKeyExpiration, &a.RegisterStatus,
		&a.CreatedAt, &a.UpdatedAt, &a.DeletedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func scanAccounts(rows pgx.Rows) ([]*domain.Account, error) {
	defer rows.Close()

	var accounts []*domain.Account
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}
	return accounts, rows.Err()
}

func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	query := fmt.Sprintf(`INSERT INTO accounts (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING %s`, accountColumns, accountColumns)

	row := r.db.QueryRow(ctx, query,
		account.ID, account.Name, account.Email, account.Cpf, account.Username,
		account.Password, account.RecoveryKey, account.RecoveryKeyExpiration,
		account.RegisterStatus, account.CreatedAt, account.UpdatedAt, account.DeletedAt)

	created, err := scanAccount(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}
	return created, nil
}

// filterClause turns the non-zero fields of a filter into a WHERE clause.
func filterClause(filter domain.Filter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	add := func(column, value string) {
		if value != "" {
			args = append(args, value)
			conds = append(conds, fmt.Sprintf("%s = $%d", column, len(args)))
		}
	}
	add("id", filter.ID)
	add("username", filter.Username)
	add("cpf", filter.Cpf)
	add("email", filter.Email)
	add("register_status", filter.RegisterStatus)

	if len(conds) == 0 {
		return "", nil
	}

	clause := " WHERE " + conds[0]
	for _, c := range conds[1:] {
		clause += " AND " + c
	}
	return clause, args
}

func (r *AccountRepository) FindOne(ctx context.Context, filter domain.Filter) (*domain.Account, error) {
	clause, args := filterClause(filter)
	query := fmt.Sprintf(`SELECT %s FROM accounts%s LIMIT 1`, accountColumns, clause)

	account, err := scanAccount(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find account: %w", err)
	}
	return account, nil
}

func (r *AccountRepository) FindByUsernameOrCpf(ctx context.Context, username, cpf, registerStatus string) (*domain.Account, error) {
	query := fmt.Sprintf(`SELECT %s FROM accounts WHERE (username = $1 OR cpf = $2)`, accountColumns)
	args := []any{username, cpf}
	if registerStatus != "" {
		query += " AND register_status = $3"
		args = append(args, registerStatus)
	}
	query += " LIMIT 1"

	account, err := scanAccount(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find account by username or cpf: %w", err)
	}
	return account, nil
}

func (r *AccountRepository) Update(ctx context.Context, id string, fields domain.UpdateFields) (*domain.Account, error) {
	var (
		sets []string
		args []any
	)
	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if fields.Name != nil {
		set("name", *fields.Name)
	}
	if fields.Email != nil {
		set("email", *fields.Email)
	}
	if fields.Cpf != nil {
		set("cpf", *fields.Cpf)
	}
	if fields.Username != nil {
		set("username", *fields.Username)
	}
	if fields.Password != nil {
		set("password", *fields.Password)
	}
	if fields.RecoveryKey != nil {
		set("recovery_key", *fields.RecoveryKey)
	}
	if fields.RecoveryKeyExpiration != nil {
		set("recovery_key_expiration", *fields.RecoveryKeyExpiration)
	}

	if len(sets) == 0 {
		return nil, fmt.Errorf("no fields to update")
	}

	setClause := sets[0]
	for _, s := range sets[1:] {
		setClause += ", " + s
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE accounts SET %s, updated_at = now() WHERE id = $%d RETURNING %s`,
		setClause, len(args), accountColumns)

	account, err := scanAccount(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("failed to update account: %w", err)
	}
	return account, nil
}

func (r *AccountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	query := fmt.Sprintf(`SELECT %s FROM accounts WHERE id = $1`, accountColumns)

	account, err := scanAccount(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get account by id: %w", err)
	}
	return account, nil
}

func (r *AccountRepository) GetAll(ctx context.Context) ([]*domain.Account, error) {
	query := fmt.Sprintf(`SELECT %s FROM accounts`, accountColumns)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return scanAccounts(rows)
}

func (r *AccountRepository) GetMany(ctx context.Context, filter domain.Filter) ([]*domain.Account, error) {
	clause, args := filterClause(filter)
	query := fmt.Sprintf(`SELECT %s FROM accounts%s`, accountColumns, clause)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return scanAccounts(rows)
}

func (r *AccountRepository) SoftDelete(ctx context.Context, id string) (*domain.Account, error) {
	query := fmt.Sprintf(`UPDATE accounts
		SET register_status = $1, deleted_at = now(), updated_at = now()
		WHERE id = $2 RETURNING %s`, accountColumns)

	account, err := scanAccount(r.db.QueryRow(ctx, query, constant.RegisterStatusRemoved, id))
	if err != nil {
		return nil, fmt.Errorf("failed to soft delete account: %w", err)
	}
	return account, nil
}

func (r *AccountRepository) Restore(ctx context.Context, id string) (*domain.Account, error) {
	query := fmt.Sprintf(`UPDATE accounts
		SET register_status = $1, deleted_at = NULL, updated_at = now()
		WHERE id = $2 RETURNING %s`, accountColumns)

	account, err := scanAccount(r.db.QueryRow(ctx, query, constant.RegisterStatusActive, id))
	if err != nil {
		return nil, fmt.Errorf("failed to restore account: %w", err)
	}
	return account, nil
}

func (r *AccountRepository) HardDelete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to hard delete account: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("account %s not found", id)
	}
	return nil
}
