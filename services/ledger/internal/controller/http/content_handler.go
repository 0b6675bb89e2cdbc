package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type CreateContentRequest struct {
	ID                *uint64 `json:"id" binding:"required"`
	Price             uint64  `json:"price"`
	RoyaltyPercentage uint64  `json:"royalty_percentage"`
}

type TransferOwnershipRequest struct {
	NewOwner string `json:"new_owner" binding:"required"`
}

// CreateContent godoc
// @Summary      Register content
// @Description  Register a content item with an unconstrained royalty. Owner only.
// @Tags         contents
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateContentRequest true "Content"
// @Success      201  {object}  entity.ContentItem
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Duplicate id"
// @Router       /contents [post]
func (h *LedgerHandler) CreateContent(c *gin.Context) {
	var req CreateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	content, err := h.useCases.Content.CreateContent(c.Request.Context(), h.call(c), *req.ID, req.Price, req.RoyaltyPercentage)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, content)
}

// CreatePremiumContent godoc
// @Summary      Register premium content
// @Description  Register a content item owned by the caller with a royalty between 1 and 50 percent
// @Tags         contents
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateContentRequest true "Content"
// @Success      201  {object}  entity.ContentItem
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Duplicate id"
// @Router       /contents/premium [post]
func (h *LedgerHandler) CreatePremiumContent(c *gin.Context) {
	var req CreateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	content, err := h.useCases.Content.CreatePremiumContent(c.Request.Context(), h.call(c), *req.ID, req.Price, req.RoyaltyPercentage)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, content)
}

// GetContent godoc
// @Summary      Get content
// @Tags         contents
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Content ID"
// @Success      200  {object}  entity.ContentItem
// @Failure      404  {object}  ErrorResponse
// @Router       /contents/{id} [get]
func (h *LedgerHandler) GetContent(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	content, err := h.useCases.Content.GetContentDetails(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if content == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Content not found"})
		return
	}

	c.JSON(http.StatusOK, content)
}

// TransferOwnership godoc
// @Summary      Transfer content ownership
// @Description  Hand a content item and its future royalties to another identity. Current creator only.
// @Tags         contents
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Content ID"
// @Param        request body TransferOwnershipRequest true "New owner"
// @Success      200  {object}  entity.ContentItem
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /contents/{id}/transfer [post]
func (h *LedgerHandler) TransferOwnership(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var req TransferOwnershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	content, err := h.useCases.Content.TransferContentOwnership(c.Request.Context(), h.call(c), id, req.NewOwner)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, content)
}

// PurchaseAccess godoc
// @Summary      Purchase premium access
// @Description  Pay the content price from the caller's wallet and record an access grant. Repeat purchases charge again.
// @Tags         access
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Content ID"
// @Success      200  {object}  usecase.Purchase
// @Failure      402  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /contents/{id}/purchase [post]
func (h *LedgerHandler) PurchaseAccess(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	purchase, err := h.useCases.Access.PurchaseContentAccess(c.Request.Context(), h.call(c), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, purchase)
}

// HasAccess godoc
// @Summary      Check premium access
// @Tags         access
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Content ID"
// @Param        user_id path string true "User ID"
// @Success      200  {object}  map[string]interface{}
// @Router       /contents/{id}/access/{user_id} [get]
func (h *LedgerHandler) HasAccess(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	userID := c.Param("user_id")

	granted, err := h.useCases.Access.HasPremiumAccess(c.Request.Context(), id, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"content_id": id,
		"user_id":    userID,
		"access":     granted,
	})
}
