package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ExportSnapshot godoc
// @Summary      Export ledger snapshot
// @Description  Write every ledger table as JSON to object storage. Owner only.
// @Tags         audit
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object}  usecase.SnapshotResult
// @Failure      403  {object}  ErrorResponse
// @Router       /audit/snapshots [post]
func (h *LedgerHandler) ExportSnapshot(c *gin.Context) {
	result, err := h.useCases.Audit.ExportSnapshot(c.Request.Context(), h.call(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}
