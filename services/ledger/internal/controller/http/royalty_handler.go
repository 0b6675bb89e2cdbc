package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetRoyaltyBalance godoc
// @Summary      Get royalty balance
// @Description  Accrued, unpaid royalties of a creator. Zero when nothing has accrued.
// @Tags         royalties
// @Produce      json
// @Security     BearerAuth
// @Param        creator_id path string true "Creator ID"
// @Success      200  {object}  map[string]interface{}
// @Router       /royalties/{creator_id} [get]
func (h *LedgerHandler) GetRoyaltyBalance(c *gin.Context) {
	creatorID := c.Param("creator_id")

	balance, err := h.useCases.Royalty.GetRoyaltyBalance(c.Request.Context(), creatorID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"creator": creatorID,
		"balance": balance,
	})
}

// WithdrawRoyalties godoc
// @Summary      Withdraw royalties
// @Description  Pay the caller's whole royalty balance into their wallet
// @Tags         royalties
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      402  {object}  ErrorResponse
// @Router       /royalties/withdraw [post]
func (h *LedgerHandler) WithdrawRoyalties(c *gin.Context) {
	amount, err := h.useCases.Royalty.WithdrawRoyalties(c.Request.Context(), h.call(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Royalties withdrawn",
		"amount":  amount,
	})
}
