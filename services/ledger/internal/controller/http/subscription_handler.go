package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type GrantSubscriptionRequest struct {
	SubscriberID string `json:"subscriber_id" binding:"required"`
	CreatorID    string `json:"creator_id" binding:"required"`
	Duration     uint64 `json:"duration"`
}

type ExtendSubscriptionRequest struct {
	CreatorID string `json:"creator_id" binding:"required"`
	Duration  uint64 `json:"duration"`
}

// GrantSubscription godoc
// @Summary      Grant subscription
// @Description  Open a subscription running for duration from now. Owner only.
// @Tags         subscriptions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body GrantSubscriptionRequest true "Subscription"
// @Success      201  {object}  entity.Subscription
// @Failure      403  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /subscriptions [post]
func (h *LedgerHandler) GrantSubscription(c *gin.Context) {
	var req GrantSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	subscription, err := h.useCases.Subscription.GrantSubscription(c.Request.Context(), h.call(c), req.SubscriberID, req.CreatorID, req.Duration)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, subscription)
}

// ExtendSubscription godoc
// @Summary      Extend subscription
// @Description  Push the expiry out by duration. Owner or the subscriber.
// @Tags         subscriptions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        subscriber_id path string true "Subscriber ID"
// @Param        request body ExtendSubscriptionRequest true "Extension"
// @Success      200  {object}  entity.Subscription
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /subscriptions/{subscriber_id}/extend [post]
func (h *LedgerHandler) ExtendSubscription(c *gin.Context) {
	var req ExtendSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	subscription, err := h.useCases.Subscription.ExtendSubscription(c.Request.Context(), h.call(c), c.Param("subscriber_id"), req.CreatorID, req.Duration)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, subscription)
}

// GetSubscription godoc
// @Summary      Get subscription
// @Tags         subscriptions
// @Produce      json
// @Security     BearerAuth
// @Param        subscriber_id path string true "Subscriber ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /subscriptions/{subscriber_id} [get]
func (h *LedgerHandler) GetSubscription(c *gin.Context) {
	subscription, err := h.useCases.Subscription.GetSubscription(c.Request.Context(), c.Param("subscriber_id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	if subscription == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Subscription not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"subscription": subscription,
		"active":       subscription.ActiveAt(h.clock.Height()),
	})
}
