package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/Yousifhashim249/ERP-project/internal/core/domain"
	portssvc "github.com/Yousifhashim249/ERP-project/internal/core/ports/services"
	"github.com/Yousifhashim249/ERP-project/internal/dto"
	"github.com/Yousifhashim249/ERP-project/internal/middleware"
	"github.com/gin-gonic/gin"
)

// documentHandler serves the create/get/list/delete routes shared by every
// business document. T is the document, R its create request.
type documentHandler[T any, R any] struct {
	kind   string
	create func(context.Context, R) (*T, error)
	get    func(context.Context, int64) (*T, error)
	list   func(context.Context, domain.ListParams) ([]T, *string, error)
	remove func(context.Context, int64) error
}

func (h *documentHandler[T, R]) register(rg *gin.RouterGroup, path string) {
	g := rg.Group(path)
	{
		g.POST("", h.createDocument)
		g.GET("", h.listDocuments)
		g.GET("/:documentID", h.getDocument)
		g.DELETE("/:documentID", h.deleteDocument)
	}
}

// RegisterDocumentRoutes registers the document lifecycle routes. Creating a
// document posts its journal entry; deleting it unwinds the entry.
func RegisterDocumentRoutes(rg *gin.RouterGroup, svc portssvc.DocumentSvcFacade) {
	(&documentHandler[domain.VendorInvoice, dto.CreateVendorInvoiceRequest]{
		kind:   "vendor invoice",
		create: svc.CreateVendorInvoice,
		get:    svc.GetVendorInvoice,
		list:   svc.ListVendorInvoices,
		remove: svc.DeleteVendorInvoice,
	}).register(rg, "/vendor-invoices")

	(&documentHandler[domain.SalesInvoice, dto.CreateSalesInvoiceRequest]{
		kind:   "sales invoice",
		create: svc.CreateSalesInvoice,
		get:    svc.GetSalesInvoice,
		list:   svc.ListSalesInvoices,
		remove: svc.DeleteSalesInvoice,
	}).register(rg, "/sales-invoices")

	(&documentHandler[domain.Payment, dto.CreatePaymentRequest]{
		kind:   "payment",
		create: svc.CreatePayment,
		get:    svc.GetPayment,
		list:   svc.ListPayments,
		remove: svc.DeletePayment,
	}).register(rg, "/payments")

	(&documentHandler[domain.DailyExpense, dto.CreateDailyExpenseRequest]{
		kind:   "daily expense",
		create: svc.CreateDailyExpense,
		get:    svc.GetDailyExpense,
		list:   svc.ListDailyExpenses,
		remove: svc.DeleteDailyExpense,
	}).register(rg, "/daily-expenses")

	(&documentHandler[domain.Adjustment, dto.CreateAdjustmentRequest]{
		kind:   "adjustment",
		create: svc.CreateAdjustment,
		get:    svc.GetAdjustment,
		list:   svc.ListAdjustments,
		remove: svc.DeleteAdjustment,
	}).register(rg, "/adjustments")

	rg.GET("/documents/unposted", listUnposted(svc))
}

func (h *documentHandler[T, R]) createDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("document_type", h.kind))
	var req R
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "request format")
		return
	}

	doc, err := h.create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create "+h.kind)
		return
	}

	if d, ok := any(doc).(domain.Document); ok {
		attrs := []any{slog.Int64("document_id", d.DocumentID())}
		if entryID := d.PostedEntryID(); entryID != nil {
			attrs = append(attrs, slog.Int64("journal_entry_id", *entryID))
		}
		logger.Info("Document created and posted", attrs...)
	}
	c.JSON(http.StatusCreated, doc)
}

func (h *documentHandler[T, R]) getDocument(c *gin.Context) {
	id, ok := idParam(c, "documentID")
	if !ok {
		return
	}

	doc, err := h.get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to retrieve "+h.kind)
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (h *documentHandler[T, R]) listDocuments(c *gin.Context) {
	var params dto.DocumentListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, err, "query parameters")
		return
	}

	docs, next, err := h.list(c.Request.Context(), params.ToDomain())
	if err != nil {
		respondError(c, err, "Failed to list "+h.kind+"s")
		return
	}
	c.JSON(http.StatusOK, dto.NewListResponse(docs, next))
}

func (h *documentHandler[T, R]) deleteDocument(c *gin.Context) {
	id, ok := idParam(c, "documentID")
	if !ok {
		return
	}

	if err := h.remove(c.Request.Context(), id); err != nil {
		respondError(c, err, "Failed to delete "+h.kind)
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Document deleted and unwound",
		slog.String("document_type", h.kind), slog.Int64("document_id", id))
	c.Status(http.StatusNoContent)
}

// listUnposted godoc
// @Summary List unposted documents
// @Description Documents without a journal entry. A healthy ledger returns an empty list.
// @Tags documents
// @Produce  json
// @Success 200 {array} domain.UnpostedDocument
// @Security BearerAuth
// @Router /documents/unposted [get]
func listUnposted(svc portssvc.DocumentSvcFacade) gin.HandlerFunc {
	return func(c *gin.Context) {
		docs, err := svc.ListUnposted(c.Request.Context())
		if err != nil {
			respondError(c, err, "Failed to list unposted documents")
			return
		}
		if docs == nil {
			docs = []domain.UnpostedDocument{}
		}
		c.JSON(http.StatusOK, docs)
	}
}
