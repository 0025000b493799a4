package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Yousifhashim249/ERP-project/internal/apperrors"
	"github.com/Yousifhashim249/ERP-project/internal/core/domain"
	portsrepo "github.com/Yousifhashim249/ERP-project/internal/core/ports/repositories"
	"github.com/Yousifhashim249/ERP-project/internal/dto"
	"github.com/Yousifhashim249/ERP-project/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

func parseDocumentDate(value *string) (time.Time, error) {
	date, err := dto.ParseDate(value, time.Now())
	if err != nil {
		return time.Time{}, apperrors.NewValidationError("%s", err.Error())
	}
	return date, nil
}

// resolveTotal applies the invoice total rule: an omitted total is the sum of
// the lines, a given total must match it.
func resolveTotal(given *decimal.Decimal, computed decimal.Decimal) (decimal.Decimal, error) {
	if given != nil && !given.Equal(computed) {
		return decimal.Zero, apperrors.NewValidationError("total %s does not match line total %s", given.StringFixed(2), computed.StringFixed(2))
	}
	if !computed.IsPositive() {
		return decimal.Zero, apperrors.NewValidationError("total must be greater than zero")
	}
	if !accounting.IsCurrencyAmount(computed) {
		return decimal.Zero, apperrors.NewValidationError("line total %s has more than %d decimal places", computed.String(), accounting.AmountScale)
	}
	return computed, nil
}

func checkQuantityPrice(i int, quantity, price decimal.Decimal) error {
	if !quantity.IsPositive() {
		return apperrors.NewValidationError("line %d: quantity must be greater than zero", i+1)
	}
	if price.IsNegative() {
		return apperrors.NewValidationError("line %d: price cannot be negative", i+1)
	}
	// Stored line values must add up to the posted total, so nothing may round on save.
	if !accounting.IsQuantity(quantity) {
		return apperrors.NewValidationError("line %d: quantity %s has more than %d decimal places", i+1, quantity.String(), accounting.QuantityScale)
	}
	if !accounting.IsCurrencyAmount(price) {
		return apperrors.NewValidationError("line %d: price %s has more than %d decimal places", i+1, price.String(), accounting.AmountScale)
	}
	return nil
}

// --- Vendor invoices ---

func (s *documentService) CreateVendorInvoice(ctx context.Context, req dto.CreateVendorInvoiceRequest) (*domain.VendorInvoice, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	date, err := parseDocumentDate(req.Date)
	if err != nil {
		return nil, err
	}

	inv := &domain.VendorInvoice{
		VendorID:     req.VendorID,
		DepartmentID: req.DepartmentID,
		Date:         date,
		Kind:         req.Kind,
		Lines:        make([]domain.VendorInvoiceLine, len(req.Lines)),
	}
	for i, l := range req.Lines {
		if err := checkQuantityPrice(i, l.Quantity, l.UnitPrice); err != nil {
			return nil, err
		}
		inv.Lines[i] = domain.VendorInvoiceLine{ProductName: strings.TrimSpace(l.ProductName), Quantity: l.Quantity, UnitPrice: l.UnitPrice}
	}
	if inv.Total, err = resolveTotal(req.Total, inv.LinesTotal()); err != nil {
		return nil, err
	}

	template := domain.TemplateVendorInvoiceConsumable
	if inv.Kind == domain.VendorInvoiceInventory {
		template = domain.TemplateVendorInvoiceInventory
	}

	_, err = createDocument(ctx, s, domain.DocVendorInvoice, vendorInvoices, inv, func(inv *domain.VendorInvoice) domain.PostingRequest {
		return domain.PostingRequest{
			Template:    template,
			Date:        inv.Date,
			Description: fmt.Sprintf("Vendor invoice #%d, vendor %d", inv.ID, inv.VendorID),
			Amount:      inv.Total,
		}
	})
	if err != nil {
		return nil, err
	}
	return inv, nil
}

func (s *documentService) GetVendorInvoice(ctx context.Context, id int64) (*domain.VendorInvoice, error) {
	return getDocument(ctx, s, vendorInvoices, id)
}

func (s *documentService) ListVendorInvoices(ctx context.Context, params domain.ListParams) ([]domain.VendorInvoice, *string, error) {
	return listDocuments(ctx, s, domain.DocVendorInvoice, listFilters{vendor: true, department: true}, vendorInvoices, params)
}

func (s *documentService) DeleteVendorInvoice(ctx context.Context, id int64) error {
	return deleteDocument[domain.VendorInvoice, *domain.VendorInvoice](ctx, s, domain.DocVendorInvoice, vendorInvoices, id)
}

// --- Sales invoices ---

func (s *documentService) CreateSalesInvoice(ctx context.Context, req dto.CreateSalesInvoiceRequest) (*domain.SalesInvoice, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	date, err := parseDocumentDate(req.Date)
	if err != nil {
		return nil, err
	}

	inv := &domain.SalesInvoice{
		CustomerName: strings.TrimSpace(req.CustomerName),
		DepartmentID: req.DepartmentID,
		Date:         date,
		Items:        make([]domain.SalesInvoiceItem, len(req.Items)),
	}
	for i, it := range req.Items {
		if err := checkQuantityPrice(i, it.Quantity, it.Price); err != nil {
			return nil, err
		}
		inv.Items[i] = domain.SalesInvoiceItem{ProductID: it.ProductID, Quantity: it.Quantity, Price: it.Price}
	}
	if inv.Total, err = resolveTotal(req.Total, inv.ItemsTotal()); err != nil {
		return nil, err
	}

	_, err = createDocument(ctx, s, domain.DocSalesInvoice, salesInvoices, inv, func(inv *domain.SalesInvoice) domain.PostingRequest {
		return domain.PostingRequest{
			Template:    domain.TemplateSalesInvoice,
			Date:        inv.Date,
			Description: fmt.Sprintf("Sales invoice #%d, %s", inv.ID, inv.CustomerName),
			Amount:      inv.Total,
		}
	})
	if err != nil {
		return nil, err
	}
	return inv, nil
}

func (s *documentService) GetSalesInvoice(ctx context.Context, id int64) (*domain.SalesInvoice, error) {
	return getDocument(ctx, s, salesInvoices, id)
}

func (s *documentService) ListSalesInvoices(ctx context.Context, params domain.ListParams) ([]domain.SalesInvoice, *string, error) {
	return listDocuments(ctx, s, domain.DocSalesInvoice, listFilters{department: true}, salesInvoices, params)
}

func (s *documentService) DeleteSalesInvoice(ctx context.Context, id int64) error {
	return deleteDocument[domain.SalesInvoice, *domain.SalesInvoice](ctx, s, domain.DocSalesInvoice, salesInvoices, id)
}

// --- Payments ---

func (s *documentService) CreatePayment(ctx context.Context, req dto.CreatePaymentRequest) (*domain.Payment, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	date, err := parseDocumentDate(req.Date)
	if err != nil {
		return nil, err
	}
	if !req.Amount.IsPositive() {
		return nil, apperrors.NewValidationError("payment amount must be greater than zero")
	}

	payment := &domain.Payment{
		VendorID:  req.VendorID,
		Date:      date,
		Amount:    req.Amount,
		AccountID: req.AccountID,
		Reference: strings.TrimSpace(req.Reference),
	}

	_, err = createDocument(ctx, s, domain.DocPayment, payments, payment, func(p *domain.Payment) domain.PostingRequest {
		description := fmt.Sprintf("Payment #%d to vendor %d", p.ID, p.VendorID)
		if p.Reference != "" {
			description += ", ref " + p.Reference
		}
		return domain.PostingRequest{
			Template:        domain.TemplateVendorPayment,
			Date:            p.Date,
			Description:     description,
			Amount:          p.Amount,
			CreditAccountID: &p.AccountID,
		}
	})
	if err != nil {
		return nil, err
	}
	return payment, nil
}

func (s *documentService) GetPayment(ctx context.Context, id int64) (*domain.Payment, error) {
	return getDocument(ctx, s, payments, id)
}

func (s *documentService) ListPayments(ctx context.Context, params domain.ListParams) ([]domain.Payment, *string, error) {
	return listDocuments(ctx, s, domain.DocPayment, listFilters{vendor: true}, payments, params)
}

func (s *documentService) DeletePayment(ctx context.Context, id int64) error {
	return deleteDocument[domain.Payment, *domain.Payment](ctx, s, domain.DocPayment, payments, id)
}

// --- Daily expenses ---

func (s *documentService) CreateDailyExpense(ctx context.Context, req dto.CreateDailyExpenseRequest) (*domain.DailyExpense, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	date, err := parseDocumentDate(req.Date)
	if err != nil {
		return nil, err
	}
	if !req.Amount.IsPositive() {
		return nil, apperrors.NewValidationError("expense amount must be greater than zero")
	}

	expense := &domain.DailyExpense{
		Date:             date,
		Description:      strings.TrimSpace(req.Description),
		Amount:           req.Amount,
		ExpenseAccountID: req.ExpenseAccountID,
		CreditAccountID:  req.CreditAccountID,
	}

	_, err = createDocument(ctx, s, domain.DocDailyExpense, dailyExpenses, expense, func(e *domain.DailyExpense) domain.PostingRequest {
		return domain.PostingRequest{
			Template:        domain.TemplateDailyExpense,
			Date:            e.Date,
			Description:     e.Description,
			Amount:          e.Amount,
			DebitAccountID:  &e.ExpenseAccountID,
			CreditAccountID: &e.CreditAccountID,
		}
	})
	if err != nil {
		return nil, err
	}
	return expense, nil
}

func (s *documentService) GetDailyExpense(ctx context.Context, id int64) (*domain.DailyExpense, error) {
	return getDocument(ctx, s, dailyExpenses, id)
}

func (s *documentService) ListDailyExpenses(ctx context.Context, params domain.ListParams) ([]domain.DailyExpense, *string, error) {
	return listDocuments(ctx, s, domain.DocDailyExpense, listFilters{}, dailyExpenses, params)
}

func (s *documentService) DeleteDailyExpense(ctx context.Context, id int64) error {
	return deleteDocument[domain.DailyExpense, *domain.DailyExpense](ctx, s, domain.DocDailyExpense, dailyExpenses, id)
}

// --- Manual adjustments ---

func (s *documentService) CreateAdjustment(ctx context.Context, req dto.CreateAdjustmentRequest) (*domain.Adjustment, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	date, err := parseDocumentDate(req.Date)
	if err != nil {
		return nil, err
	}

	adj := &domain.Adjustment{
		Date:        date,
		Description: strings.TrimSpace(req.Description),
		Lines:       req.ToLines(),
	}

	entry, err := createDocument(ctx, s, domain.DocAdjustment, adjustments, adj, func(a *domain.Adjustment) domain.PostingRequest {
		return domain.PostingRequest{
			Template:    domain.TemplateManualAdjustment,
			Date:        a.Date,
			Description: a.Description,
			Lines:       a.Lines,
		}
	})
	if err != nil {
		return nil, err
	}
	adj.Lines = entry.Lines
	return adj, nil
}

// GetAdjustment returns the adjustment with the lines of its journal entry.
func (s *documentService) GetAdjustment(ctx context.Context, id int64) (*domain.Adjustment, error) {
	var adj *domain.Adjustment
	err := s.txManager.WithinReadOnlyTx(ctx, func(ctx context.Context, repos portsrepo.Repositories) error {
		var err error
		if adj, err = repos.Adjustments().FindByID(ctx, id); err != nil {
			return err
		}
		if adj.JournalEntryID == nil {
			return nil
		}
		entry, err := repos.Ledger().GetEntry(ctx, *adj.JournalEntryID)
		if err != nil {
			return err
		}
		adj.Lines = entry.Lines
		return nil
	})
	if err != nil {
		return nil, err
	}
	return adj, nil
}

func (s *documentService) ListAdjustments(ctx context.Context, params domain.ListParams) ([]domain.Adjustment, *string, error) {
	return listDocuments(ctx, s, domain.DocAdjustment, listFilters{}, adjustments, params)
}

func (s *documentService) DeleteAdjustment(ctx context.Context, id int64) error {
	return deleteDocument[domain.Adjustment, *domain.Adjustment](ctx, s, domain.DocAdjustment, adjustments, id)
}
