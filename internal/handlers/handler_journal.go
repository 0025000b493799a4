package handlers

import (
	"net/http"

	"github.com/Yousifhashim249/ERP-project/internal/core/domain"
	portssvc "github.com/Yousifhashim249/ERP-project/internal/core/ports/services"
	"github.com/Yousifhashim249/ERP-project/internal/dto"
	"github.com/gin-gonic/gin"
)

// journalHandler exposes posted entries read-only. Entries are only ever
// created and removed through their documents.
type journalHandler struct {
	postingService portssvc.JournalReaderSvc
}

// RegisterJournalRoutes registers the read-only journal entry routes.
func RegisterJournalRoutes(rg *gin.RouterGroup, postingService portssvc.JournalReaderSvc) {
	h := &journalHandler{postingService: postingService}

	entries := rg.Group("/journal-entries")
	{
		entries.GET("", h.listEntries)
		entries.GET("/:entryID", h.getEntry)
	}
}

// listEntries godoc
// @Summary List journal entries
// @Description Pages entries newest first with their lines
// @Tags journal
// @Produce  json
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListResponse[domain.JournalEntry]
// @Failure 400 {object} dto.ErrorResponse "Invalid paging parameters"
// @Security BearerAuth
// @Router /journal-entries [get]
func (h *journalHandler) listEntries(c *gin.Context) {
	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, err, "query parameters")
		return
	}

	entries, next, err := h.postingService.ListEntries(c.Request.Context(), params.ToDomain())
	if err != nil {
		respondError(c, err, "Failed to list journal entries")
		return
	}
	c.JSON(http.StatusOK, dto.NewListResponse[domain.JournalEntry](entries, next))
}

// getEntry godoc
// @Summary Get a journal entry
// @Tags journal
// @Produce  json
// @Param   entryID path int true "Journal entry ID"
// @Success 200 {object} domain.JournalEntry
// @Failure 404 {object} dto.ErrorResponse "Entry not found"
// @Security BearerAuth
// @Router /journal-entries/{entryID} [get]
func (h *journalHandler) getEntry(c *gin.Context) {
	entryID, ok := idParam(c, "entryID")
	if !ok {
		return
	}

	entry, err := h.postingService.GetEntry(c.Request.Context(), entryID)
	if err != nil {
		respondError(c, err, "Failed to retrieve journal entry")
		return
	}
	c.JSON(http.StatusOK, entry)
}
