package dto

import (
	"time"

	"github.com/Yousifhashim249/ERP-project/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Code     string             `json:"code" binding:"required,max=32"`
	Name     string             `json:"name" binding:"required,max=255"`
	Type     domain.AccountType `json:"type" binding:"required,oneof=ASSET LIABILITY EQUITY REVENUE EXPENSE"`
	ParentID *int64             `json:"parentID" binding:"omitempty,gt=0"`
	// OpeningBalance, when positive, is posted on the account's normal side
	// against the opening balance equity account.
	OpeningBalance *decimal.Decimal `json:"openingBalance"`
	OpeningDate    *string          `json:"openingDate" binding:"omitempty,datetime=2006-01-02"`
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateAccountRequest struct {
	Code        *string             `json:"code" binding:"omitempty,min=1,max=32"`
	Name        *string             `json:"name" binding:"omitempty,min=1,max=255"`
	Type        *domain.AccountType `json:"type" binding:"omitempty,oneof=ASSET LIABILITY EQUITY REVENUE EXPENSE"`
	ParentID    *int64              `json:"parentID" binding:"omitempty,gt=0"`
	ClearParent bool                `json:"clearParent"`
}

// ToDomain converts the request into a field-by-field account update.
func (r UpdateAccountRequest) ToDomain() domain.AccountUpdate {
	return domain.AccountUpdate{
		Code:        r.Code,
		Name:        r.Name,
		Type:        r.Type,
		ParentID:    r.ParentID,
		ClearParent: r.ClearParent,
	}
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	ID        int64              `json:"id"`
	Code      string             `json:"code"`
	Name      string             `json:"name"`
	Type      domain.AccountType `json:"type"`
	ParentID  *int64             `json:"parentID,omitempty"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

// ToAccountResponse converts a domain account to its response shape.
func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		ID:        a.ID,
		Code:      a.Code,
		Name:      a.Name,
		Type:      a.Type,
		ParentID:  a.ParentID,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// ToAccountListResponse converts a list of domain accounts.
func ToAccountListResponse(accounts []domain.Account) []AccountResponse {
	resp := make([]AccountResponse, 0, len(accounts))
	for i := range accounts {
		resp = append(resp, ToAccountResponse(&accounts[i]))
	}
	return resp
}

// AccountBalanceResponse defines the data returned for an account balance query.
// Balance is reported on the normal side of the account's type.
type AccountBalanceResponse struct {
	AccountID int64              `json:"accountID"`
	Code      string             `json:"code"`
	Name      string             `json:"name"`
	Type      domain.AccountType `json:"type"`
	Balance   decimal.Decimal    `json:"balance"`
}

// ToAccountBalanceResponse converts an account and its derived balance.
func ToAccountBalanceResponse(a domain.Account, balance decimal.Decimal) AccountBalanceResponse {
	return AccountBalanceResponse{AccountID: a.ID, Code: a.Code, Name: a.Name, Type: a.Type, Balance: balance}
}

// ResolveAccountQuery is the query of the resolve endpoint.
type ResolveAccountQuery struct {
	Q string `form:"q" binding:"required"`
}
