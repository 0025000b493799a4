package pgsql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Yousifhashim249/ERP-project/internal/apperrors"
	"github.com/Yousifhashim249/ERP-project/internal/core/domain"
	portsrepo "github.com/Yousifhashim249/ERP-project/internal/core/ports/repositories"
	"github.com/Yousifhashim249/ERP-project/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const accountColumns = `id, code, name, type, parent_id, created_at, updated_at`

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(db querier) *PgxAccountRepository {
	return &PgxAccountRepository{BaseRepository: BaseRepository{db: db}}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepository
var _ portsrepo.AccountRepository = (*PgxAccountRepository)(nil)

func toModelAccount(d domain.Account) models.Account {
	m := models.Account{
		ID:        d.ID,
		Code:      d.Code,
		Name:      d.Name,
		Type:      string(d.Type),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
	if d.ParentID != nil {
		m.ParentID = sql.NullInt64{Int64: *d.ParentID, Valid: true}
	}
	return m
}

func toDomainAccount(m models.Account) domain.Account {
	d := domain.Account{
		ID:        m.ID,
		Code:      m.Code,
		Name:      m.Name,
		Type:      domain.AccountType(m.Type),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.ParentID.Valid {
		parentID := m.ParentID.Int64
		d.ParentID = &parentID
	}
	return d
}

func (r *PgxAccountRepository) findOne(ctx context.Context, resource, where string, arg any) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE ` + where + ` ORDER BY id LIMIT 1`
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		return nil, mapError(err, resource)
	}
	m, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Account])
	if err != nil {
		return nil, mapError(err, resource)
	}
	account := toDomainAccount(m)
	return &account, nil
}

func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	return r.findOne(ctx, fmt.Sprintf("account %d", accountID), `id = $1`, accountID)
}

func (r *PgxAccountRepository) FindAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	return r.findOne(ctx, fmt.Sprintf("account with code %q", code), `code = $1`, code)
}

// FindAccountByName returns the lowest id among accounts sharing the name.
func (r *PgxAccountRepository) FindAccountByName(ctx context.Context, name string) (*domain.Account, error) {
	return r.findOne(ctx, fmt.Sprintf("account named %q", name), `name = $1`, name)
}

func (r *PgxAccountRepository) list(ctx context.Context, query string, args ...any) ([]domain.Account, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, "accounts")
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Account])
	if err != nil {
		return nil, mapError(err, "accounts")
	}
	accounts := make([]domain.Account, 0, len(ms))
	for _, m := range ms {
		accounts = append(accounts, toDomainAccount(m))
	}
	return accounts, nil
}

func (r *PgxAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	return r.list(ctx, `SELECT `+accountColumns+` FROM accounts ORDER BY code`)
}

func (r *PgxAccountRepository) ListChildren(ctx context.Context, parentID int64) ([]domain.Account, error) {
	return r.list(ctx, `SELECT `+accountColumns+` FROM accounts WHERE parent_id = $1 ORDER BY code`, parentID)
}

func (r *PgxAccountRepository) AccountTotals(ctx context.Context, accountID int64) (decimal.Decimal, decimal.Decimal, error) {
	var debit, credit decimal.Decimal
	err := r.db.QueryRow(ctx, `
		SELECT COALESCE(SUM(debit), 0), COALESCE(SUM(credit), 0)
		FROM transaction_lines
		WHERE account_id = $1`, accountID).Scan(&debit, &credit)
	if err != nil {
		return decimal.Zero, decimal.Zero, mapError(err, fmt.Sprintf("totals of account %d", accountID))
	}
	return debit, credit, nil
}

func (r *PgxAccountRepository) ListAccountTotals(ctx context.Context) ([]domain.AccountTotals, error) {
	rows, err := r.db.Query(ctx, `
		SELECT a.id, a.code, a.name, a.type, a.parent_id, a.created_at, a.updated_at,
		       COALESCE(SUM(l.debit), 0) AS total_debit,
		       COALESCE(SUM(l.credit), 0) AS total_credit
		FROM accounts a
		LEFT JOIN transaction_lines l ON l.account_id = a.id
		GROUP BY a.id
		ORDER BY a.code`)
	if err != nil {
		return nil, mapError(err, "account totals")
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.AccountTotals])
	if err != nil {
		return nil, mapError(err, "account totals")
	}
	totals := make([]domain.AccountTotals, 0, len(ms))
	for _, m := range ms {
		totals = append(totals, domain.AccountTotals{
			Account:     toDomainAccount(m.Account),
			TotalDebit:  m.TotalDebit,
			TotalCredit: m.TotalCredit,
		})
	}
	return totals, nil
}

func (r *PgxAccountRepository) CountLines(ctx context.Context, accountID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM transaction_lines WHERE account_id = $1`, accountID).Scan(&count)
	if err != nil {
		return 0, mapError(err, fmt.Sprintf("lines of account %d", accountID))
	}
	return count, nil
}

// SaveAccount inserts a new account and sets its ID and timestamps.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account *domain.Account) error {
	m := toModelAccount(*account)
	err := r.db.QueryRow(ctx, `
		INSERT INTO accounts (code, name, type, parent_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`,
		m.Code, m.Name, m.Type, m.ParentID,
	).Scan(&account.ID, &account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		return mapError(err, fmt.Sprintf("account with code %q", account.Code))
	}
	return nil
}

func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	m := toModelAccount(account)
	tag, err := r.db.Exec(ctx, `
		UPDATE accounts
		SET code = $2, name = $3, type = $4, parent_id = $5, updated_at = now()
		WHERE id = $1`,
		m.ID, m.Code, m.Name, m.Type, m.ParentID,
	)
	if err != nil {
		return mapError(err, fmt.Sprintf("account %d", account.ID))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("account %d", account.ID))
	}
	return nil
}

func (r *PgxAccountRepository) DeleteAccount(ctx context.Context, accountID int64) error {
	resource := fmt.Sprintf("account %d", accountID)
	tag, err := r.db.Exec(ctx, `DELETE FROM accounts WHERE id = $1`, accountID)
	if err != nil {
		return mapDeleteError(err, resource)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(resource)
	}
	return nil
}
