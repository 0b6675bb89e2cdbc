package http

import (
	"errors"
	"net/http"
	"strconv"

	"content-ledger/pkg/logger"
	"content-ledger/services/ledger/internal/entity"
	"content-ledger/services/ledger/internal/usecase"

	"github.com/gin-gonic/gin"
)

// UseCases groups the ledger operations served over HTTP.
type UseCases struct {
	Content      usecase.ContentUseCase
	Access       usecase.AccessUseCase
	Royalty      usecase.RoyaltyUseCase
	Subscription usecase.SubscriptionUseCase
	Rating       usecase.RatingUseCase
	Report       usecase.ReportUseCase
	Wallet       usecase.WalletUseCase
	Audit        usecase.AuditUseCase
}

type LedgerHandler struct {
	useCases UseCases
	clock    usecase.Clock
	logger   *logger.Logger
}

func NewLedgerHandler(useCases UseCases, clock usecase.Clock, logger *logger.Logger) *LedgerHandler {
	if clock == nil {
		clock = usecase.UnixClock{}
	}
	return &LedgerHandler{
		useCases: useCases,
		clock:    clock,
		logger:   logger,
	}
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  uint32 `json:"code,omitempty"`
}

// call stamps the authenticated caller and the current height.
func (h *LedgerHandler) call(c *gin.Context) usecase.Call {
	return usecase.Call{
		Caller: c.GetString("user_id"),
		Height: h.clock.Height(),
	}
}

func statusForError(err error) int {
	var ledgerErr *entity.LedgerError
	if !errors.As(err, &ledgerErr) {
		return http.StatusInternalServerError
	}

	switch ledgerErr {
	case entity.ErrNotAuthorized:
		return http.StatusForbidden
	case entity.ErrContentNotFound, entity.ErrSubscriptionNotFound:
		return http.StatusNotFound
	case entity.ErrSubscriptionExists, entity.ErrAlreadyReported:
		return http.StatusConflict
	case entity.ErrInsufficientBalance, entity.ErrTransferFailed:
		return http.StatusPaymentRequired
	case entity.ErrInvalidAmount, entity.ErrInvalidRoyalty, entity.ErrInvalidRating:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (h *LedgerHandler) respondError(c *gin.Context, err error) {
	var ledgerErr *entity.LedgerError
	if errors.As(err, &ledgerErr) {
		c.JSON(statusForError(err), ErrorResponse{Error: ledgerErr.Name, Code: ledgerErr.Code})
		return
	}

	h.logger.Error("Request %s %s failed: %v", c.Request.Method, c.FullPath(), err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
}

func parseUintParam(c *gin.Context, name string) (uint64, bool) {
	value, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + name})
		return 0, false
	}
	return value, true
}

// RegisterRoutes mounts every ledger endpoint on group.
func (h *LedgerHandler) RegisterRoutes(group *gin.RouterGroup) {
	group.POST("/contents", h.CreateContent)
	group.POST("/contents/premium", h.CreatePremiumContent)
	group.GET("/contents/:id", h.GetContent)
	group.POST("/contents/:id/transfer", h.TransferOwnership)
	group.POST("/contents/:id/purchase", h.PurchaseAccess)
	group.GET("/contents/:id/access/:user_id", h.HasAccess)
	group.POST("/contents/:id/ratings", h.RateContent)
	group.GET("/contents/:id/ratings", h.GetAverageRating)
	group.GET("/contents/:id/ratings/:user_id", h.GetRating)
	group.POST("/contents/:id/reports", h.ReportContent)
	group.GET("/contents/:id/reports/:reporter_id", h.GetReport)

	group.GET("/royalties/:creator_id", h.GetRoyaltyBalance)
	group.POST("/royalties/withdraw", h.WithdrawRoyalties)

	group.POST("/subscriptions", h.GrantSubscription)
	group.POST("/subscriptions/:subscriber_id/extend", h.ExtendSubscription)
	group.GET("/subscriptions/:subscriber_id", h.GetSubscription)

	group.GET("/wallet", h.GetWallet)
	group.POST("/wallet/topup", h.TopUp)
	group.GET("/wallet/transactions", h.GetTransactions)

	group.POST("/audit/snapshots", h.ExportSnapshot)
}
