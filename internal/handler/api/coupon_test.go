//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"issuance-engine/internal/domain/actor"
	"issuance-engine/internal/domain/coupon"
	"issuance-engine/internal/domain/sequence"
	"issuance-engine/internal/handler/api"
	resdto "issuance-engine/internal/handler/dto/response"
	"issuance-engine/internal/pkg/errs"
	"issuance-engine/internal/usecase/commands"
	"issuance-engine/internal/usecase/queries"
	"issuance-engine/tests/common/builder"
	"issuance-engine/tests/common/httptest"
	"issuance-engine/tests/common/testutil"
	commandsmock "issuance-engine/tests/mock/commands"
	queriesmock "issuance-engine/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CouponHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCouponCommands
	mockQueries  *queriesmock.MockCouponQueries
	handler      *api.CouponHandler
	operatorID   uuid.UUID
}

func (s *CouponHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCouponCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCouponQueries(s.mockCtrl)
	s.handler = api.NewCouponHandler(s.mockCommands, s.mockQueries)
	s.operatorID = uuid.New()

	s.router.POST("/coupons/batches", fakeAuth(s.operatorID, actor.RoleOperator), s.handler.CreateBatch)
	s.router.POST("/coupons/single", fakeAuth(s.operatorID, actor.RoleOperator), s.handler.CreateSingle)
	s.router.POST("/coupons/:code/admin-redeem", fakeAuth(s.operatorID, actor.RoleOperator), s.handler.AdminRedeem)
	s.router.GET("/coupons/quota/:period", s.handler.Quota)
	s.router.GET("/coupons/:code", s.handler.Get)
	s.router.GET("/coupons", s.handler.List)
	s.router.POST("/public/coupons/:code/redeem", s.handler.Redeem)
}

func (s *CouponHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCouponHandlerSuite(t *testing.T) {
	suite.Run(t, new(CouponHandlerTestSuite))
}

// fakeAuth stands in for the JWT middleware: no header means 401.
func fakeAuth(userID uuid.UUID, role actor.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"kind": "UNAUTHENTICATED", "message": "Unauthorized"}})
			return
		}
		c.Set("user_id", userID)
		c.Set("user_role", role)
		c.Next()
	}
}

type testCaseCoupon struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreateBatch
// ================================================================================

func (s *CouponHandlerTestSuite) TestCreateBatch() {
	url := "/coupons/batches"
	b := builder.NewCouponBuilder()
	reqBody := b.BuildBatchRequestDTO()
	result := b.BuildBatchResult()

	s.Run("success: returns 201 with the first and last code", func() {
		s.mockCommands.EXPECT().
			IssueBatch(gomock.Any(), reqBody.ToCommand(), s.operatorID).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.CouponBatchResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("202505", body.Period)
		s.Equal(int64(10), body.CreatedCount)
		s.Equal("DI-202505-0001", body.FirstCode)
		s.Equal("DI-202505-0010", body.LastCode)
	})

	s.Run("error: 400 Bad Request on binding errors", func() {
		cases := []testCaseCoupon{
			{name: "count zero", mutate: testutil.Field("count", 0), expectCode: http.StatusBadRequest},
			{name: "count missing", mutate: testutil.Field("count", nil), expectCode: http.StatusBadRequest},
			{name: "month_key too short", mutate: testutil.Field("month_key", "20255"), expectCode: http.StatusBadRequest},
			{name: "month_key not numeric", mutate: testutil.Field("month_key", "2025AB"), expectCode: http.StatusBadRequest},
			{name: "legacy period not numeric", mutate: testutil.Field("period", "2025AB"), expectCode: http.StatusBadRequest},
			{name: "month_key and legacy period together", mutate: testutil.Field("period", "202506"), expectCode: http.StatusBadRequest},
			{name: "template missing", mutate: testutil.Field("template", nil), expectCode: http.StatusBadRequest},
			{name: "title missing", mutate: testutil.Nested("template", testutil.Field("title", nil)), expectCode: http.StatusBadRequest},
			{name: "title too long", mutate: testutil.Nested("template", testutil.Field("title", strings.Repeat("t", 121))), expectCode: http.StatusBadRequest},
			{name: "background url malformed", mutate: testutil.Nested("template", testutil.Field("bg_image_url", "not a url")), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorKind(s.T(), rec, tc.expectCode, string(errs.KindInvalidArgument))
			})
		}
	})

	s.Run("success: legacy period is read as the month key", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("month_key", nil), testutil.Field("period", "202506"))
		s.mockCommands.EXPECT().
			IssueBatch(gomock.Any(), gomock.Any(), s.operatorID).
			DoAndReturn(func(_ any, req commands.IssueBatchRequest, _ uuid.UUID) (*commands.IssueBatchResult, error) {
				s.Equal("202506", req.Period)
				return result, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("success: omitted month_key is passed through empty", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("month_key", nil))
		s.mockCommands.EXPECT().
			IssueBatch(gomock.Any(), gomock.Any(), s.operatorID).
			DoAndReturn(func(_ any, req commands.IssueBatchRequest, _ uuid.UUID) (*commands.IssueBatchResult, error) {
				s.Empty(req.Period)
				return result, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 409 with quota detail when the ceiling would be crossed", func() {
		key, _ := sequence.NewCounterKey(sequence.DomainCoupons, "202505")
		quotaErr := errs.FailedPrecondition(&sequence.QuotaExceededError{Key: key, Current: 590, Requested: 20, Ceiling: 600})
		s.mockCommands.EXPECT().IssueBatch(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, quotaErr).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		detail := httptest.AssertErrorKind(s.T(), rec, http.StatusConflict, string(errs.KindFailedPrecondition))
		s.EqualValues(590, detail["current"])
		s.EqualValues(20, detail["requested"])
		s.EqualValues(600, detail["ceiling"])
		s.EqualValues(10, detail["remaining"])
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: internal errors hide their message", func() {
		s.mockCommands.EXPECT().IssueBatch(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("connection reset by peer")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		httptest.AssertErrorKind(s.T(), rec, http.StatusInternalServerError, string(errs.KindInternal))
		s.NotContains(rec.Body.String(), "connection reset")
	})
}

// ================================================================================
// TestCreateSingle
// ================================================================================

func (s *CouponHandlerTestSuite) TestCreateSingle() {
	url := "/coupons/single"
	b := builder.NewCouponBuilder().With(func(b *builder.CouponBuilder) {
		b.Code = "IND-1746889200000-AB12CD"
		b.Period = "202505"
	})
	reqBody := b.BuildSingleRequestDTO()
	view := b.BuildView()
	view.IsIndividual = true
	view.RecipientName = b.RecipientName
	view.SenderName = b.SenderName

	s.Run("success: returns 201 with Location", func() {
		s.mockCommands.EXPECT().
			IssueSingle(gomock.Any(), reqBody.ToCommand(), s.operatorID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.CouponResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(view.Code, body.Code)
		s.True(body.IsIndividual)
		s.Equal("Ana", body.Recipient)
		httptest.AssertLocation(s.T(), rec, "/api/coupons/"+view.Code)
	})

	s.Run("error: 400 Bad Request on binding errors", func() {
		cases := []testCaseCoupon{
			{name: "recipient missing", mutate: testutil.Field("recipient_name", nil), expectCode: http.StatusBadRequest},
			{name: "sender missing", mutate: testutil.Field("sender_name", nil), expectCode: http.StatusBadRequest},
			{name: "recipient too long", mutate: testutil.Field("recipient_name", strings.Repeat("r", 121)), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorKind(s.T(), rec, tc.expectCode, string(errs.KindInvalidArgument))
			})
		}
	})

	s.Run("error: domain validation maps to 400", func() {
		s.mockCommands.EXPECT().IssueSingle(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.InvalidArgument(coupon.ErrInvalidExpiry)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "expiry must be after issue time")
	})
}

// ================================================================================
// TestRedeem
// ================================================================================

func (s *CouponHandlerTestSuite) TestRedeem() {
	code := "DI-202505-0007"
	url := "/public/coupons/" + code + "/redeem"
	b := builder.NewCouponBuilder().With(func(b *builder.CouponBuilder) { b.Code = code })
	reqBody := b.BuildRedeemRequestDTO()
	redeemedAt := time.Date(2025, 5, 12, 10, 0, 0, 0, time.UTC)

	s.Run("success: public redemption needs no token", func() {
		s.mockCommands.EXPECT().
			Redeem(gomock.Any(), reqBody.ToCommand(code)).
			Return(b.BuildRedeemedView(redeemedAt), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.CouponResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("redeemed", body.Status)
		s.Equal(b.RedeemerName, body.RedeemedBy)
		s.Require().NotNil(body.RedeemedAt)
		s.Equal(redeemedAt.Unix(), *body.RedeemedAt)
	})

	s.Run("error: 400 Bad Request on binding errors", func() {
		cases := []testCaseCoupon{
			{name: "name missing", mutate: testutil.Field("name", nil), expectCode: http.StatusBadRequest},
			{name: "contact missing", mutate: testutil.Field("contact", nil), expectCode: http.StatusBadRequest},
			{name: "unknown channel", mutate: testutil.Field("channel", "fax"), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorKind(s.T(), rec, tc.expectCode, string(errs.KindInvalidArgument))
			})
		}
	})

	s.Run("error: maps redemption failures to proper statuses", func() {
		cases := []struct {
			name   string
			err    error
			status int
			kind   errs.Kind
		}{
			{name: "already redeemed", err: errs.FailedPrecondition(coupon.ErrAlreadyRedeemed), status: http.StatusConflict, kind: errs.KindFailedPrecondition},
			{name: "expired", err: errs.FailedPrecondition(coupon.ErrCouponExpired), status: http.StatusConflict, kind: errs.KindFailedPrecondition},
			{name: "unknown code", err: errs.NotFound(commands.ErrCouponNotFound), status: http.StatusNotFound, kind: errs.KindNotFound},
			{name: "malformed code", err: errs.InvalidArgument(coupon.ErrInvalidCode), status: http.StatusBadRequest, kind: errs.KindInvalidArgument},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Redeem(gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorKind(s.T(), rec, tc.status, string(tc.kind))
			})
		}
	})
}

// ================================================================================
// TestAdminRedeem
// ================================================================================

func (s *CouponHandlerTestSuite) TestAdminRedeem() {
	code := "DI-202505-0003"
	url := "/coupons/" + code + "/admin-redeem"
	view := builder.NewCouponBuilder().With(func(b *builder.CouponBuilder) { b.Code = code }).
		BuildRedeemedView(time.Date(2025, 5, 12, 10, 0, 0, 0, time.UTC))

	s.Run("success: records the operator", func() {
		s.mockCommands.EXPECT().AdminRedeem(gomock.Any(), code, s.operatorID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestGet / TestList / TestQuota
// ================================================================================

func (s *CouponHandlerTestSuite) TestGet() {
	view := builder.NewCouponBuilder().BuildView()

	s.Run("success: returns 200 with CouponResponse", func() {
		s.mockQueries.EXPECT().GetByCode(gomock.Any(), view.Code).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/coupons/"+view.Code, nil, "")

		var body resdto.CouponResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.Code, body.Code)
		s.Equal("active", body.Status)
		s.Equal(view.IssuedAt.Unix(), body.IssuedAt)
	})

	s.Run("error: 404 when missing", func() {
		s.mockQueries.EXPECT().GetByCode(gomock.Any(), "DI-202505-0999").
			Return(nil, errs.NotFound(queries.ErrCouponNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/coupons/DI-202505-0999", nil, "")
		httptest.AssertErrorKind(s.T(), rec, http.StatusNotFound, string(errs.KindNotFound))
	})
}

func (s *CouponHandlerTestSuite) TestList() {
	first := builder.NewCouponBuilder().BuildView()
	second := builder.NewCouponBuilder().With(func(b *builder.CouponBuilder) { b.Code = "DI-202505-0002" }).BuildView()

	s.Run("success: returns the page and the next cursor", func() {
		s.mockQueries.EXPECT().ListByPeriod(gomock.Any(), "202505", nil, 2).
			Return([]*queries.CouponView{first, second}, &queries.Cursor{After: "next-token"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/coupons?period=202505&limit=2", nil, "")

		var body struct {
			Coupons    []resdto.CouponResponse `json:"coupons"`
			NextCursor string                  `json:"next_cursor"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Coupons, 2)
		s.Equal("DI-202505-0002", body.Coupons[1].Code)
		s.Equal("next-token", body.NextCursor)
	})

	s.Run("success: cursor is forwarded and last page has no next_cursor", func() {
		s.mockQueries.EXPECT().
			ListByPeriod(gomock.Any(), "202505", &queries.Cursor{After: "next-token"}, queries.DefaultLimit).
			Return([]*queries.CouponView{second}, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/coupons?period=202505&after=next-token", nil, "")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.NotContains(body, "next_cursor")
	})

	s.Run("error: invalid period maps to 400", func() {
		s.mockQueries.EXPECT().ListByPeriod(gomock.Any(), "2025", nil, queries.DefaultLimit).
			Return(nil, nil, errs.InvalidArgument(sequence.ErrInvalidPeriod)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/coupons?period=2025", nil, "")
		httptest.AssertErrorKind(s.T(), rec, http.StatusBadRequest, string(errs.KindInvalidArgument))
	})
}

func (s *CouponHandlerTestSuite) TestQuota() {
	s.Run("success: reports remaining quota", func() {
		s.mockQueries.EXPECT().QuotaUsage(gomock.Any(), "202505").
			Return(&queries.QuotaUsage{Period: "202505", Issued: 590, Ceiling: 600, Remaining: 10}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/coupons/quota/202505", nil, "")

		var body resdto.QuotaUsageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(resdto.QuotaUsageResponse{Period: "202505", Issued: 590, Ceiling: 600, Remaining: 10}, body)
	})
}
