package domain

// AccountRole names an account the posting templates need by function rather than by id.
type AccountRole string

const (
	RoleAccountsPayable      AccountRole = "ACCOUNTS_PAYABLE"
	RoleAccountsReceivable   AccountRole = "ACCOUNTS_RECEIVABLE"
	RoleSalesRevenue         AccountRole = "SALES_REVENUE"
	RoleConsumablesExpense   AccountRole = "CONSUMABLES_EXPENSE"
	RoleInventory            AccountRole = "INVENTORY"
	RoleOpeningBalanceEquity AccountRole = "OPENING_BALANCE_EQUITY"
)

// AccountRoles is every role that must be mapped before the engine can post.
var AccountRoles = []AccountRole{
	RoleAccountsPayable,
	RoleAccountsReceivable,
	RoleSalesRevenue,
	RoleConsumablesExpense,
	RoleInventory,
	RoleOpeningBalanceEquity,
}
