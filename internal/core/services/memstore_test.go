package services_test

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/Yousifhashim249/ERP-project/internal/apperrors"
	"github.com/Yousifhashim249/ERP-project/internal/core/domain"
	portsrepo "github.com/Yousifhashim249/ERP-project/internal/core/ports/repositories"
	"github.com/Yousifhashim249/ERP-project/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

// memState is one snapshot of every table. Rows are stored by value and
// slices are cloned on the way in and out, so a shallow map clone is a
// complete snapshot.
type memState struct {
	nextID         int64
	accounts       map[int64]domain.Account
	entries        map[int64]domain.JournalEntry
	vendorInvoices map[int64]domain.VendorInvoice
	salesInvoices  map[int64]domain.SalesInvoice
	payments       map[int64]domain.Payment
	dailyExpenses  map[int64]domain.DailyExpense
	adjustments    map[int64]domain.Adjustment
}

func newMemState() *memState {
	return &memState{
		accounts:       map[int64]domain.Account{},
		entries:        map[int64]domain.JournalEntry{},
		vendorInvoices: map[int64]domain.VendorInvoice{},
		salesInvoices:  map[int64]domain.SalesInvoice{},
		payments:       map[int64]domain.Payment{},
		dailyExpenses:  map[int64]domain.DailyExpense{},
		adjustments:    map[int64]domain.Adjustment{},
	}
}

func (s *memState) clone() *memState {
	return &memState{
		nextID:         s.nextID,
		accounts:       maps.Clone(s.accounts),
		entries:        maps.Clone(s.entries),
		vendorInvoices: maps.Clone(s.vendorInvoices),
		salesInvoices:  maps.Clone(s.salesInvoices),
		payments:       maps.Clone(s.payments),
		dailyExpenses:  maps.Clone(s.dailyExpenses),
		adjustments:    maps.Clone(s.adjustments),
	}
}

func (s *memState) newID() int64 {
	s.nextID++
	return s.nextID
}

// memStore is an in-memory TransactionManager. A unit of work runs against a
// copy of the committed state that replaces it only when fn succeeds.
type memStore struct {
	mu        sync.Mutex
	state     *memState
	failures  map[string]error
	commits   int
	rollbacks int
}

var _ portsrepo.TransactionManager = (*memStore)(nil)

func newMemStore() *memStore {
	return &memStore{state: newMemState(), failures: map[string]error{}}
}

// failOn makes every later call of the named repository operation fail with err.
func (s *memStore) failOn(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[op] = err
}

func (s *memStore) failure(op string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.failures[op]
}

func (s *memStore) snapshot() *memState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

func (s *memStore) WithinTx(ctx context.Context, fn func(ctx context.Context, repos portsrepo.Repositories) error) error {
	tx := &memTx{store: s, state: s.snapshot()}
	if err := fn(ctx, tx); err != nil {
		s.mu.Lock()
		s.rollbacks++
		s.mu.Unlock()
		return err
	}
	s.mu.Lock()
	s.state = tx.state
	s.commits++
	s.mu.Unlock()
	return nil
}

func (s *memStore) WithinReadOnlyTx(ctx context.Context, fn func(ctx context.Context, repos portsrepo.Repositories) error) error {
	return fn(ctx, &memTx{store: s, state: s.snapshot(), readOnly: true})
}

// addAccount inserts an account directly, outside any unit of work.
func (s *memStore) addAccount(code, name string, accountType domain.AccountType, parentID *int64) domain.Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UTC()
	account := domain.Account{ID: s.state.newID(), Code: code, Name: name, Type: accountType, ParentID: parentID, CreatedAt: now, UpdatedAt: now}
	s.state.accounts[account.ID] = account
	return account
}

type memTx struct {
	store    *memStore
	state    *memState
	readOnly bool
}

var _ portsrepo.Repositories = (*memTx)(nil)

func (t *memTx) check(op string, write bool) error {
	if write && t.readOnly {
		return apperrors.NewTransactionFailure(op, errors.New("cannot write in a read-only transaction"))
	}
	if err := t.store.failure(op); err != nil {
		return err
	}
	return nil
}

func (t *memTx) Accounts() portsrepo.AccountRepository { return memAccounts{t} }
func (t *memTx) Ledger() portsrepo.LedgerRepository    { return memLedger{t} }
func (t *memTx) Reporting() portsrepo.ReportingRepository {
	return memReporting{t}
}

func (t *memTx) VendorInvoices() portsrepo.VendorInvoiceRepository {
	return &memDocs[domain.VendorInvoice, *domain.VendorInvoice]{
		tx:       t,
		resource: "vendor invoice",
		table:    func(s *memState) map[int64]domain.VendorInvoice { return s.vendorInvoices },
		date:     func(v *domain.VendorInvoice) time.Time { return v.Date },
		assign: func(s *memState, v *domain.VendorInvoice) {
			v.ID = s.newID()
			for i := range v.Lines {
				v.Lines[i].ID = s.newID()
			}
		},
		copyRow: func(v domain.VendorInvoice) domain.VendorInvoice {
			v.Lines = slices.Clone(v.Lines)
			return v
		},
		vendor:     func(v *domain.VendorInvoice) *int64 { return &v.VendorID },
		department: func(v *domain.VendorInvoice) *int64 { return v.DepartmentID },
	}
}

func (t *memTx) SalesInvoices() portsrepo.SalesInvoiceRepository {
	return &memDocs[domain.SalesInvoice, *domain.SalesInvoice]{
		tx:       t,
		resource: "sales invoice",
		table:    func(s *memState) map[int64]domain.SalesInvoice { return s.salesInvoices },
		date:     func(v *domain.SalesInvoice) time.Time { return v.Date },
		assign: func(s *memState, v *domain.SalesInvoice) {
			v.ID = s.newID()
			for i := range v.Items {
				v.Items[i].ID = s.newID()
			}
		},
		copyRow: func(v domain.SalesInvoice) domain.SalesInvoice {
			v.Items = slices.Clone(v.Items)
			return v
		},
		department: func(v *domain.SalesInvoice) *int64 { return v.DepartmentID },
	}
}

func (t *memTx) Payments() portsrepo.PaymentRepository {
	return &memDocs[domain.Payment, *domain.Payment]{
		tx:       t,
		resource: "payment",
		table:    func(s *memState) map[int64]domain.Payment { return s.payments },
		date:     func(v *domain.Payment) time.Time { return v.Date },
		assign:   func(s *memState, v *domain.Payment) { v.ID = s.newID() },
		copyRow:  func(v domain.Payment) domain.Payment { return v },
		vendor:   func(v *domain.Payment) *int64 { return &v.VendorID },
	}
}

func (t *memTx) DailyExpenses() portsrepo.DailyExpenseRepository {
	return &memDocs[domain.DailyExpense, *domain.DailyExpense]{
		tx:       t,
		resource: "daily expense",
		table:    func(s *memState) map[int64]domain.DailyExpense { return s.dailyExpenses },
		date:     func(v *domain.DailyExpense) time.Time { return v.Date },
		assign:   func(s *memState, v *domain.DailyExpense) { v.ID = s.newID() },
		copyRow:  func(v domain.DailyExpense) domain.DailyExpense { return v },
	}
}

// Adjustment rows carry no lines; those live on the journal entry.
func (t *memTx) Adjustments() portsrepo.AdjustmentRepository {
	return &memDocs[domain.Adjustment, *domain.Adjustment]{
		tx:       t,
		resource: "adjustment",
		table:    func(s *memState) map[int64]domain.Adjustment { return s.adjustments },
		date:     func(v *domain.Adjustment) time.Time { return v.Date },
		assign:   func(s *memState, v *domain.Adjustment) { v.ID = s.newID() },
		copyRow: func(v domain.Adjustment) domain.Adjustment {
			v.Lines = nil
			return v
		},
	}
}

// --- accounts ---

type memAccounts struct{ tx *memTx }

func (r memAccounts) FindAccountByID(_ context.Context, accountID int64) (*domain.Account, error) {
	if err := r.tx.check("FindAccountByID", false); err != nil {
		return nil, err
	}
	account, ok := r.tx.state.accounts[accountID]
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("account %d", accountID))
	}
	return &account, nil
}

func (r memAccounts) find(match func(domain.Account) bool, resource string) (*domain.Account, error) {
	var found *domain.Account
	for _, a := range r.tx.state.accounts {
		if match(a) && (found == nil || a.ID < found.ID) {
			a := a
			found = &a
		}
	}
	if found == nil {
		return nil, apperrors.NewNotFoundError(resource)
	}
	return found, nil
}

func (r memAccounts) FindAccountByCode(_ context.Context, code string) (*domain.Account, error) {
	return r.find(func(a domain.Account) bool { return a.Code == code }, "account "+code)
}

func (r memAccounts) FindAccountByName(_ context.Context, name string) (*domain.Account, error) {
	return r.find(func(a domain.Account) bool { return a.Name == name }, "account "+name)
}

func (r memAccounts) sorted(match func(domain.Account) bool) []domain.Account {
	var out []domain.Account
	for _, a := range r.tx.state.accounts {
		if match(a) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

func (r memAccounts) ListAccounts(context.Context) ([]domain.Account, error) {
	return r.sorted(func(domain.Account) bool { return true }), nil
}

func (r memAccounts) ListChildren(_ context.Context, parentID int64) ([]domain.Account, error) {
	return r.sorted(func(a domain.Account) bool { return a.ParentID != nil && *a.ParentID == parentID }), nil
}

func (r memAccounts) AccountTotals(_ context.Context, accountID int64) (decimal.Decimal, decimal.Decimal, error) {
	if err := r.tx.check("AccountTotals", false); err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	debit, credit := r.tx.state.totals(accountID)
	return debit, credit, nil
}

func (r memAccounts) ListAccountTotals(context.Context) ([]domain.AccountTotals, error) {
	if err := r.tx.check("ListAccountTotals", false); err != nil {
		return nil, err
	}
	accounts := r.sorted(func(domain.Account) bool { return true })
	out := make([]domain.AccountTotals, 0, len(accounts))
	for _, a := range accounts {
		debit, credit := r.tx.state.totals(a.ID)
		out = append(out, domain.AccountTotals{Account: a, TotalDebit: debit, TotalCredit: credit})
	}
	return out, nil
}

func (r memAccounts) CountLines(_ context.Context, accountID int64) (int, error) {
	count := 0
	for _, e := range r.tx.state.entries {
		for _, l := range e.Lines {
			if l.AccountID == accountID {
				count++
			}
		}
	}
	return count, nil
}

func (r memAccounts) codeTaken(code string, except int64) bool {
	for _, a := range r.tx.state.accounts {
		if a.Code == code && a.ID != except {
			return true
		}
	}
	return false
}

func (r memAccounts) SaveAccount(_ context.Context, account *domain.Account) error {
	if err := r.tx.check("SaveAccount", true); err != nil {
		return err
	}
	if r.codeTaken(account.Code, 0) {
		return fmt.Errorf("%w: account code %s", apperrors.ErrDuplicate, account.Code)
	}
	if account.ParentID != nil {
		if _, ok := r.tx.state.accounts[*account.ParentID]; !ok {
			return apperrors.NewValidationError("account references a row that does not exist")
		}
	}
	now := time.Now().UTC()
	account.ID = r.tx.state.newID()
	account.CreatedAt, account.UpdatedAt = now, now
	r.tx.state.accounts[account.ID] = *account
	return nil
}

func (r memAccounts) UpdateAccount(_ context.Context, account domain.Account) error {
	if err := r.tx.check("UpdateAccount", true); err != nil {
		return err
	}
	if _, ok := r.tx.state.accounts[account.ID]; !ok {
		return apperrors.NewNotFoundError(fmt.Sprintf("account %d", account.ID))
	}
	if r.codeTaken(account.Code, account.ID) {
		return fmt.Errorf("%w: account code %s", apperrors.ErrDuplicate, account.Code)
	}
	account.UpdatedAt = time.Now().UTC()
	r.tx.state.accounts[account.ID] = account
	return nil
}

func (r memAccounts) DeleteAccount(_ context.Context, accountID int64) error {
	if err := r.tx.check("DeleteAccount", true); err != nil {
		return err
	}
	if _, ok := r.tx.state.accounts[accountID]; !ok {
		return apperrors.NewNotFoundError(fmt.Sprintf("account %d", accountID))
	}
	delete(r.tx.state.accounts, accountID)
	return nil
}

func (s *memState) totals(accountID int64) (decimal.Decimal, decimal.Decimal) {
	debit, credit := decimal.Zero, decimal.Zero
	for _, e := range s.entries {
		for _, l := range e.Lines {
			if l.AccountID == accountID {
				debit = debit.Add(l.Debit)
				credit = credit.Add(l.Credit)
			}
		}
	}
	return debit, credit
}

// --- ledger ---

type memLedger struct{ tx *memTx }

func (r memLedger) CreateEntry(_ context.Context, entry *domain.JournalEntry) error {
	if err := r.tx.check("CreateEntry", true); err != nil {
		return err
	}
	for _, l := range entry.Lines {
		if _, ok := r.tx.state.accounts[l.AccountID]; !ok {
			return apperrors.NewValidationError("transaction line references a row that does not exist (account %d)", l.AccountID)
		}
	}
	entry.ID = r.tx.state.newID()
	entry.CreatedAt = time.Now().UTC()
	for i := range entry.Lines {
		entry.Lines[i].ID = r.tx.state.newID()
		entry.Lines[i].JournalEntryID = entry.ID
	}
	stored := *entry
	stored.Lines = slices.Clone(entry.Lines)
	r.tx.state.entries[entry.ID] = stored
	return nil
}

// DeleteEntry mirrors ON DELETE SET NULL on every document's entry reference.
func (r memLedger) DeleteEntry(_ context.Context, entryID int64) error {
	if err := r.tx.check("DeleteEntry", true); err != nil {
		return err
	}
	if _, ok := r.tx.state.entries[entryID]; !ok {
		return apperrors.NewNotFoundError(fmt.Sprintf("journal entry %d", entryID))
	}
	delete(r.tx.state.entries, entryID)
	detach(r.tx.state.vendorInvoices, entryID, func(d *domain.VendorInvoice) **int64 { return &d.JournalEntryID })
	detach(r.tx.state.salesInvoices, entryID, func(d *domain.SalesInvoice) **int64 { return &d.JournalEntryID })
	detach(r.tx.state.payments, entryID, func(d *domain.Payment) **int64 { return &d.JournalEntryID })
	detach(r.tx.state.dailyExpenses, entryID, func(d *domain.DailyExpense) **int64 { return &d.JournalEntryID })
	detach(r.tx.state.adjustments, entryID, func(d *domain.Adjustment) **int64 { return &d.JournalEntryID })
	return nil
}

func detach[T any](table map[int64]T, entryID int64, ref func(*T) **int64) {
	for id, row := range table {
		if p := ref(&row); *p != nil && **p == entryID {
			*p = nil
			table[id] = row
		}
	}
}

func (r memLedger) GetEntry(_ context.Context, entryID int64) (*domain.JournalEntry, error) {
	if err := r.tx.check("GetEntry", false); err != nil {
		return nil, err
	}
	entry, ok := r.tx.state.entries[entryID]
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("journal entry %d", entryID))
	}
	entry.Lines = slices.Clone(entry.Lines)
	return &entry, nil
}

func (r memLedger) ListEntries(_ context.Context, params domain.ListParams) ([]domain.JournalEntry, *string, error) {
	entries := make([]domain.JournalEntry, 0, len(r.tx.state.entries))
	for _, e := range r.tx.state.entries {
		e.Lines = slices.Clone(e.Lines)
		entries = append(entries, e)
	}
	return pageOf(entries, func(e domain.JournalEntry) (time.Time, int64) { return e.Date, e.ID }, params)
}

func (r memLedger) ListLines(_ context.Context, filter domain.LineFilter) ([]domain.LineDetail, error) {
	if err := r.tx.check("ListLines", false); err != nil {
		return nil, err
	}
	var out []domain.LineDetail
	for _, e := range r.tx.state.entries {
		if filter.JournalEntryID != nil && e.ID != *filter.JournalEntryID {
			continue
		}
		if filter.From != nil && e.Date.Before(*filter.From) {
			continue
		}
		if filter.To != nil && e.Date.After(*filter.To) {
			continue
		}
		for _, l := range e.Lines {
			if filter.AccountID != nil && l.AccountID != *filter.AccountID {
				continue
			}
			a := r.tx.state.accounts[l.AccountID]
			out = append(out, domain.LineDetail{
				TransactionLine:  l,
				EntryDate:        e.Date,
				EntryDescription: e.Description,
				AccountCode:      a.Code,
				AccountName:      a.Name,
				AccountType:      a.Type,
			})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].EntryDate.Equal(out[j].EntryDate) {
			return out[i].EntryDate.Before(out[j].EntryDate)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// pageOf orders rows by (date desc, id desc) and applies the keyset token.
func pageOf[T any](rows []T, key func(T) (time.Time, int64), params domain.ListParams) ([]T, *string, error) {
	sort.Slice(rows, func(i, j int) bool {
		di, ii := key(rows[i])
		dj, ij := key(rows[j])
		if !di.Equal(dj) {
			return di.After(dj)
		}
		return ii > ij
	})
	if params.NextToken != nil {
		cursorDate, cursorID, err := pagination.DecodeToken(*params.NextToken)
		if err != nil {
			return nil, nil, apperrors.NewValidationError("%s", err.Error())
		}
		start := len(rows)
		for i, row := range rows {
			d, id := key(row)
			if d.Before(cursorDate) || (d.Equal(cursorDate) && id < cursorID) {
				start = i
				break
			}
		}
		rows = rows[start:]
	}
	limit := pagination.NormalizeLimit(params.Limit)
	if len(rows) <= limit {
		return rows, nil, nil
	}
	rows = rows[:limit]
	d, id := key(rows[limit-1])
	token := pagination.EncodeToken(d, id)
	return rows, &token, nil
}

// --- documents ---

type docPtr[T any] interface {
	*T
	domain.Document
}

type memDocs[T any, PT docPtr[T]] struct {
	tx       *memTx
	resource string
	table    func(*memState) map[int64]T
	date     func(PT) time.Time
	assign   func(*memState, PT)
	copyRow  func(T) T

	// Filter keys; nil when the document does not carry them.
	vendor     func(PT) *int64
	department func(PT) *int64
}

func (r *memDocs[T, PT]) Save(_ context.Context, doc *T) error {
	if err := r.tx.check("Save", true); err != nil {
		return err
	}
	r.assign(r.tx.state, PT(doc))
	r.table(r.tx.state)[PT(doc).DocumentID()] = r.copyRow(*doc)
	return nil
}

func (r *memDocs[T, PT]) AttachEntry(_ context.Context, docID int64, entryID int64) error {
	if err := r.tx.check("AttachEntry", true); err != nil {
		return err
	}
	table := r.table(r.tx.state)
	row, ok := table[docID]
	if !ok {
		return apperrors.NewNotFoundError(fmt.Sprintf("%s %d", r.resource, docID))
	}
	if PT(&row).PostedEntryID() != nil {
		return fmt.Errorf("%w: %s %d is already posted", apperrors.ErrConflict, r.resource, docID)
	}
	if _, ok := r.tx.state.entries[entryID]; !ok {
		return apperrors.NewValidationError("%s references a row that does not exist", r.resource)
	}
	PT(&row).AttachEntry(entryID)
	table[docID] = row
	return nil
}

func (r *memDocs[T, PT]) FindByID(_ context.Context, docID int64) (*T, error) {
	if err := r.tx.check("FindByID", false); err != nil {
		return nil, err
	}
	row, ok := r.table(r.tx.state)[docID]
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("%s %d", r.resource, docID))
	}
	row = r.copyRow(row)
	return &row, nil
}

func (r *memDocs[T, PT]) List(_ context.Context, params domain.ListParams) ([]T, *string, error) {
	table := r.table(r.tx.state)
	rows := make([]T, 0, len(table))
	for _, row := range table {
		if !matchesFilter(r.vendor, PT(&row), params.VendorID) || !matchesFilter(r.department, PT(&row), params.DepartmentID) {
			continue
		}
		rows = append(rows, r.copyRow(row))
	}
	return pageOf(rows, func(row T) (time.Time, int64) {
		return r.date(PT(&row)), PT(&row).DocumentID()
	}, params)
}

// matchesFilter mirrors the SQL rule: an unset filter matches everything, a
// filter on a key the document lacks matches nothing.
func matchesFilter[PT any](key func(PT) *int64, row PT, want *int64) bool {
	if want == nil {
		return true
	}
	if key == nil {
		return false
	}
	got := key(row)
	return got != nil && *got == *want
}

func (r *memDocs[T, PT]) Delete(_ context.Context, docID int64) error {
	if err := r.tx.check("Delete", true); err != nil {
		return err
	}
	table := r.table(r.tx.state)
	if _, ok := table[docID]; !ok {
		return apperrors.NewNotFoundError(fmt.Sprintf("%s %d", r.resource, docID))
	}
	delete(table, docID)
	return nil
}

// --- reporting ---

type memReporting struct{ tx *memTx }

func (r memReporting) TrialBalance(ctx context.Context) ([]domain.TrialBalanceRow, error) {
	totals, err := memAccounts(r).ListAccountTotals(ctx)
	if err != nil {
		return nil, err
	}
	rows := make([]domain.TrialBalanceRow, 0, len(totals))
	for _, t := range totals {
		rows = append(rows, domain.TrialBalanceRow{
			AccountID:   t.ID,
			AccountCode: t.Code,
			AccountName: t.Name,
			AccountType: t.Type,
			TotalDebit:  t.TotalDebit,
			TotalCredit: t.TotalCredit,
		})
	}
	return rows, nil
}

func (r memReporting) ExpenseByMonth(context.Context) ([]domain.ExpenseAnalysisRow, error) {
	type bucket struct {
		accountID int64
		month     time.Time
	}
	sums := map[bucket]decimal.Decimal{}
	for _, e := range r.tx.state.entries {
		month := time.Date(e.Date.Year(), e.Date.Month(), 1, 0, 0, 0, 0, time.UTC)
		for _, l := range e.Lines {
			if r.tx.state.accounts[l.AccountID].Type != domain.Expense {
				continue
			}
			b := bucket{l.AccountID, month}
			sums[b] = sums[b].Add(l.Debit).Sub(l.Credit)
		}
	}
	rows := make([]domain.ExpenseAnalysisRow, 0, len(sums))
	for b, amount := range sums {
		a := r.tx.state.accounts[b.accountID]
		rows = append(rows, domain.ExpenseAnalysisRow{AccountID: a.ID, AccountCode: a.Code, AccountName: a.Name, Month: b.month, Amount: amount})
	}
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].Month.Equal(rows[j].Month) {
			return rows[i].Month.Before(rows[j].Month)
		}
		return rows[i].AccountCode < rows[j].AccountCode
	})
	return rows, nil
}

func (r memReporting) UnpostedDocuments(context.Context) ([]domain.UnpostedDocument, error) {
	var out []domain.UnpostedDocument
	s := r.tx.state
	for _, d := range s.vendorInvoices {
		if d.JournalEntryID == nil {
			out = append(out, domain.UnpostedDocument{Type: domain.DocVendorInvoice, ID: d.ID, Date: d.Date})
		}
	}
	for _, d := range s.salesInvoices {
		if d.JournalEntryID == nil {
			out = append(out, domain.UnpostedDocument{Type: domain.DocSalesInvoice, ID: d.ID, Date: d.Date})
		}
	}
	for _, d := range s.payments {
		if d.JournalEntryID == nil {
			out = append(out, domain.UnpostedDocument{Type: domain.DocPayment, ID: d.ID, Date: d.Date})
		}
	}
	for _, d := range s.dailyExpenses {
		if d.JournalEntryID == nil {
			out = append(out, domain.UnpostedDocument{Type: domain.DocDailyExpense, ID: d.ID, Date: d.Date})
		}
	}
	for _, d := range s.adjustments {
		if d.JournalEntryID == nil {
			out = append(out, domain.UnpostedDocument{Type: domain.DocAdjustment, ID: d.ID, Date: d.Date})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		if out[i].Type != out[j].Type {
			return out[i].Type < out[j].Type
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}
