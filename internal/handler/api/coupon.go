package api

import (
	"net/http"
	"strconv"

	reqdto "issuance-engine/internal/handler/dto/request"
	resdto "issuance-engine/internal/handler/dto/response"
	"issuance-engine/internal/handler/httperr"
	"issuance-engine/internal/handler/middleware"
	"issuance-engine/internal/usecase/commands"
	"issuance-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CouponHandler struct {
	cmds commands.CouponCommands
	q    queries.CouponQueries
}

func NewCouponHandler(cmds commands.CouponCommands, q queries.CouponQueries) *CouponHandler {
	return &CouponHandler{cmds: cmds, q: q}
}

// @Summary Issue coupon batch
// @Description Allocate a contiguous block of serials for the period and create that many coupons
// @Tags coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCouponBatchRequest true "Batch request"
// @Success 201 {object} resdto.CouponBatchResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response "quota exceeded"
// @Router /coupons/batches [post]
func (h *CouponHandler) CreateBatch(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortUnauthorized(c, errUnauthenticated)
		return
	}
	var req reqdto.CreateCouponBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBadRequest(c, err, "Invalid request")
		return
	}
	result, err := h.cmds.IssueBatch(c.Request.Context(), req.ToCommand(), actorID)
	if err != nil {
		httperr.AbortWithKind(c, err, "")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBatchResult(result))
}

// @Summary Issue individual coupon
// @Description Create one personalised coupon; does not consume the monthly quota
// @Tags coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateSingleCouponRequest true "Single coupon request"
// @Success 201 {object} resdto.CouponResponse
// @Failure 400 {object} httperr.Response
// @Router /coupons/single [post]
func (h *CouponHandler) CreateSingle(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortUnauthorized(c, errUnauthenticated)
		return
	}
	var req reqdto.CreateSingleCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBadRequest(c, err, "Invalid request")
		return
	}
	view, err := h.cmds.IssueSingle(c.Request.Context(), req.ToCommand(), actorID)
	if err != nil {
		httperr.AbortWithKind(c, err, "")
		return
	}
	c.Header("Location", "/api/coupons/"+view.Code)
	c.JSON(http.StatusCreated, resdto.FromCouponView(view))
}

// @Summary Redeem coupon
// @Description Public redemption; succeeds exactly once per code
// @Tags coupons
// @Accept json
// @Produce json
// @Param code path string true "Coupon code"
// @Param request body reqdto.RedeemCouponRequest true "Redeemer details"
// @Success 200 {object} resdto.CouponResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response "already redeemed or expired"
// @Router /public/coupons/{code}/redeem [post]
func (h *CouponHandler) Redeem(c *gin.Context) {
	var req reqdto.RedeemCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBadRequest(c, err, "Invalid request")
		return
	}
	view, err := h.cmds.Redeem(c.Request.Context(), req.ToCommand(c.Param("code")))
	if err != nil {
		httperr.AbortWithKind(c, err, "")
		return
	}
	c.JSON(http.StatusOK, resdto.FromCouponView(view))
}

// @Summary Admin redeem coupon
// @Description Redeem on behalf of a customer, recording the operator
// @Tags coupons
// @Produce json
// @Security BearerAuth
// @Param code path string true "Coupon code"
// @Success 200 {object} resdto.CouponResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /coupons/{code}/admin-redeem [post]
func (h *CouponHandler) AdminRedeem(c *gin.Context) {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortUnauthorized(c, errUnauthenticated)
		return
	}
	view, err := h.cmds.AdminRedeem(c.Request.Context(), c.Param("code"), adminID)
	if err != nil {
		httperr.AbortWithKind(c, err, "")
		return
	}
	c.JSON(http.StatusOK, resdto.FromCouponView(view))
}

// @Summary Get coupon
// @Tags coupons
// @Produce json
// @Security BearerAuth
// @Param code path string true "Coupon code"
// @Success 200 {object} resdto.CouponResponse
// @Failure 404 {object} httperr.Response
// @Router /coupons/{code} [get]
func (h *CouponHandler) Get(c *gin.Context) {
	view, err := h.q.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		httperr.AbortWithKind(c, err, "")
		return
	}
	c.JSON(http.StatusOK, resdto.FromCouponView(view))
}

// @Summary List coupons of a period
// @Tags coupons
// @Produce json
// @Security BearerAuth
// @Param period query string true "Period YYYYMM"
// @Param limit query int false "Max items (default 50)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {array} resdto.CouponResponse
// @Failure 400 {object} httperr.Response
// @Router /coupons [get]
func (h *CouponHandler) List(c *gin.Context) {
	limit := queries.DefaultLimit
	if v := c.Query("limit"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil {
			limit = queries.ValidateLimit(iv)
		}
	}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}
	items, next, err := h.q.ListByPeriod(c.Request.Context(), c.Query("period"), cursor, limit)
	if err != nil {
		httperr.AbortWithKind(c, err, "")
		return
	}
	resp := gin.H{"coupons": resdto.FromCouponList(items)}
	if next != nil {
		resp["next_cursor"] = next.After
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Quota usage
// @Description Issued count against the monthly ceiling
// @Tags coupons
// @Produce json
// @Security BearerAuth
// @Param period path string true "Period YYYYMM"
// @Success 200 {object} resdto.QuotaUsageResponse
// @Failure 400 {object} httperr.Response
// @Router /coupons/quota/{period} [get]
func (h *CouponHandler) Quota(c *gin.Context) {
	usage, err := h.q.QuotaUsage(c.Request.Context(), c.Param("period"))
	if err != nil {
		httperr.AbortWithKind(c, err, "")
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuotaUsage(usage))
}
