package handlers

import (
	"net/http"

	portssvc "github.com/Yousifhashim249/ERP-project/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

type reportingHandler struct {
	reportingService portssvc.ReportingService
}

// RegisterReportingRoutes registers the read-only financial report routes.
func RegisterReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := &reportingHandler{reportingService: reportingService}

	reports := rg.Group("/reports")
	{
		reports.GET("/ledger", h.getLedger)
		reports.GET("/trial-balance", h.getTrialBalance)
		reports.GET("/income-statement", h.getIncomeStatement)
		reports.GET("/balance-sheet", h.getBalanceSheet)
		reports.GET("/expense-analysis", h.getExpenseAnalysis)
	}
}

// getLedger godoc
// @Summary General ledger
// @Description Every transaction line by date with the running balance of its account
// @Tags reports
// @Produce  json
// @Success 200 {array} domain.LedgerRow
// @Failure 500 {object} dto.ErrorResponse "Failed to build ledger"
// @Security BearerAuth
// @Router /reports/ledger [get]
func (h *reportingHandler) getLedger(c *gin.Context) {
	rows, err := h.reportingService.LedgerView(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to build ledger")
		return
	}
	c.JSON(http.StatusOK, rows)
}

// getTrialBalance godoc
// @Summary Trial balance
// @Description Total debits and credits per account, with grand totals that must agree
// @Tags reports
// @Produce  json
// @Success 200 {object} domain.TrialBalance
// @Failure 500 {object} dto.ErrorResponse "Failed to build trial balance"
// @Security BearerAuth
// @Router /reports/trial-balance [get]
func (h *reportingHandler) getTrialBalance(c *gin.Context) {
	report, err := h.reportingService.TrialBalance(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to build trial balance")
		return
	}
	c.JSON(http.StatusOK, report)
}

// getIncomeStatement godoc
// @Summary Income statement
// @Description Revenue, expense and net income over all posted entries
// @Tags reports
// @Produce  json
// @Success 200 {object} domain.IncomeStatement
// @Failure 500 {object} dto.ErrorResponse "Failed to build income statement"
// @Security BearerAuth
// @Router /reports/income-statement [get]
func (h *reportingHandler) getIncomeStatement(c *gin.Context) {
	report, err := h.reportingService.IncomeStatement(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to build income statement")
		return
	}
	c.JSON(http.StatusOK, report)
}

// getBalanceSheet godoc
// @Summary Balance sheet
// @Description Assets, liabilities and equity on their normal sides
// @Tags reports
// @Produce  json
// @Success 200 {object} domain.BalanceSheet
// @Failure 500 {object} dto.ErrorResponse "Failed to build balance sheet"
// @Security BearerAuth
// @Router /reports/balance-sheet [get]
func (h *reportingHandler) getBalanceSheet(c *gin.Context) {
	report, err := h.reportingService.BalanceSheet(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to build balance sheet")
		return
	}
	c.JSON(http.StatusOK, report)
}

// getExpenseAnalysis godoc
// @Summary Expense analysis
// @Description Net spend per expense account per calendar month
// @Tags reports
// @Produce  json
// @Success 200 {object} domain.ExpenseAnalysis
// @Failure 500 {object} dto.ErrorResponse "Failed to build expense analysis"
// @Security BearerAuth
// @Router /reports/expense-analysis [get]
func (h *reportingHandler) getExpenseAnalysis(c *gin.Context) {
	report, err := h.reportingService.ExpenseAnalysis(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to build expense analysis")
		return
	}
	c.JSON(http.StatusOK, report)
}
