package http

import (
	"net/http"

	"content-ledger/services/ledger/internal/entity"

	"github.com/gin-gonic/gin"
)

type RateContentRequest struct {
	Rating uint64 `json:"rating"`
}

type ReportContentRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// RateContent godoc
// @Summary      Rate content
// @Description  Rate a purchased content item from 1 to 5
// @Tags         ratings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Content ID"
// @Param        request body RateContentRequest true "Rating"
// @Success      200  {object}  entity.ContentAvgRating
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "No access grant"
// @Failure      404  {object}  ErrorResponse
// @Router       /contents/{id}/ratings [post]
func (h *LedgerHandler) RateContent(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var req RateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	avg, err := h.useCases.Rating.RateContent(c.Request.Context(), h.call(c), id, req.Rating)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, avg)
}

// GetAverageRating godoc
// @Summary      Get average rating
// @Tags         ratings
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Content ID"
// @Success      200  {object}  entity.ContentAvgRating
// @Router       /contents/{id}/ratings [get]
func (h *LedgerHandler) GetAverageRating(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	avg, err := h.useCases.Rating.GetAverageRating(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, avg)
}

// GetRating godoc
// @Summary      Get a user's rating
// @Tags         ratings
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Content ID"
// @Param        user_id path string true "User ID"
// @Success      200  {object}  entity.ContentRating
// @Failure      404  {object}  ErrorResponse
// @Router       /contents/{id}/ratings/{user_id} [get]
func (h *LedgerHandler) GetRating(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	rating, err := h.useCases.Rating.GetRating(c.Request.Context(), id, c.Param("user_id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	if rating == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Rating not found"})
		return
	}

	c.JSON(http.StatusOK, rating)
}

// ReportContent godoc
// @Summary      Report content
// @Description  File an abuse report. Each user may report a content item once.
// @Tags         reports
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Content ID"
// @Param        request body ReportContentRequest true "Reason"
// @Success      201  {object}  entity.ContentReport
// @Failure      404  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /contents/{id}/reports [post]
func (h *LedgerHandler) ReportContent(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var req ReportContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if len(req.Reason) > entity.MaxReportReasonLength {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "reason exceeds 256 bytes"})
		return
	}

	report, err := h.useCases.Report.ReportContent(c.Request.Context(), h.call(c), id, req.Reason)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, report)
}

// GetReport godoc
// @Summary      Get a report
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Content ID"
// @Param        reporter_id path string true "Reporter ID"
// @Success      200  {object}  entity.ContentReport
// @Failure      404  {object}  ErrorResponse
// @Router       /contents/{id}/reports/{reporter_id} [get]
func (h *LedgerHandler) GetReport(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	report, err := h.useCases.Report.GetReport(c.Request.Context(), id, c.Param("reporter_id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	if report == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Report not found"})
		return
	}

	c.JSON(http.StatusOK, report)
}
