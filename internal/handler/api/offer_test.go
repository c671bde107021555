//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"issuance-engine/internal/domain/actor"
	"issuance-engine/internal/domain/offer"
	"issuance-engine/internal/handler/api"
	resdto "issuance-engine/internal/handler/dto/response"
	"issuance-engine/internal/pkg/errs"
	"issuance-engine/internal/usecase/commands"
	"issuance-engine/tests/common/builder"
	"issuance-engine/tests/common/httptest"
	"issuance-engine/tests/common/testutil"
	commandsmock "issuance-engine/tests/mock/commands"
	queriesmock "issuance-engine/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OfferHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockOfferCommands
	mockQueries  *queriesmock.MockOfferQueries
	handler      *api.OfferHandler
	operatorID   uuid.UUID
}

func (s *OfferHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockOfferCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockOfferQueries(s.mockCtrl)
	s.handler = api.NewOfferHandler(s.mockCommands, s.mockQueries)
	s.operatorID = uuid.New()

	auth := fakeAuth(s.operatorID, actor.RoleOperator)
	s.router.POST("/offers", auth, s.handler.Create)
	s.router.PUT("/offers/:id", auth, s.handler.Update)
	s.router.PATCH("/offers/:id/status", auth, s.handler.UpdateStatus)
	s.router.GET("/offers/:id", s.handler.Get)
	s.router.GET("/public/offers/:id/open.gif", s.handler.TrackOpen)
}

func (s *OfferHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOfferHandlerSuite(t *testing.T) {
	suite.Run(t, new(OfferHandlerTestSuite))
}

type testCaseOffer struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func firstItem(m map[string]any) map[string]any {
	return m["items"].([]any)[0].(map[string]any)
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *OfferHandlerTestSuite) TestCreate() {
	url := "/offers"
	b := builder.NewOfferBuilder()
	reqBody := b.BuildRequestDTO()
	result := b.BuildResult()

	s.Run("success: returns 201 Created with Location and number", func() {
		s.mockCommands.EXPECT().
			CreateOffer(gomock.Any(), gomock.Any(), s.operatorID).
			DoAndReturn(func(_ any, in commands.OfferInput, _ uuid.UUID) (*commands.OfferResult, error) {
				s.Equal(b.CustomerID, in.CustomerID)
				s.Require().Len(in.Items, 1)
				s.True(in.Items[0].Price.Equal(decimal.RequireFromString("150")))
				s.Require().NotNil(in.IssueDate)
				s.Equal("2025-05-10", in.IssueDate.Format("2006-01-02"))
				s.False(in.SendEmail)
				return result, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.OfferResultResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(b.ID.String(), body.OfferID)
		s.Equal("OFFERTA-2025-0001", body.OfferNumber)
		s.Equal("draft", body.Status)
		httptest.AssertLocation(s.T(), rec, "/api/offers/"+b.ID.String())
	})

	s.Run("error: 400 Bad Request on binding errors", func() {
		cases := []testCaseOffer{
			{name: "customer missing", mutate: testutil.Field("customer_id", nil), expectCode: http.StatusBadRequest},
			{name: "customer not a uuid", mutate: testutil.Field("customer_id", "acme"), expectCode: http.StatusBadRequest},
			{name: "items missing", mutate: testutil.Field("items", nil), expectCode: http.StatusBadRequest},
			{name: "items empty", mutate: testutil.Field("items", []any{}), expectCode: http.StatusBadRequest},
			{name: "item description missing", mutate: func(m map[string]any) {
				delete(firstItem(m), "description")
			}, expectCode: http.StatusBadRequest},
			{name: "issue date malformed", mutate: testutil.Field("issue_date", "10/05/2025"), expectCode: http.StatusBadRequest},
			{name: "title too long", mutate: testutil.Field("document_title", strings.Repeat("x", 201)), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorKind(s.T(), rec, tc.expectCode, string(errs.KindInvalidArgument))
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		cases := []struct {
			name   string
			err    error
			status int
			kind   errs.Kind
		}{
			{name: "negative price", err: errs.InvalidArgument(offer.ErrNegativePrice), status: http.StatusBadRequest, kind: errs.KindInvalidArgument},
			{name: "customer not found", err: errs.NotFound(commands.ErrCustomerNotFound), status: http.StatusNotFound, kind: errs.KindNotFound},
			{name: "customer without email", err: errs.FailedPrecondition(commands.ErrNoContactAddress), status: http.StatusConflict, kind: errs.KindFailedPrecondition},
			{name: "storage failure", err: errors.New("retries exhausted"), status: http.StatusInternalServerError, kind: errs.KindInternal},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateOffer(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorKind(s.T(), rec, tc.status, string(tc.kind))
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestUpdate
// ================================================================================

func (s *OfferHandlerTestSuite) TestUpdate() {
	b := builder.NewOfferBuilder().With(func(b *builder.OfferBuilder) { b.SendEmail = true })
	url := "/offers/" + b.ID.String()
	reqBody := b.BuildRequestDTO()

	s.Run("success: send_email is forwarded", func() {
		sent := b.BuildResult()
		sent.Status = "sent"
		s.mockCommands.EXPECT().
			UpdateOffer(gomock.Any(), b.ID, gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, in commands.OfferInput) (*commands.OfferResult, error) {
				s.True(in.SendEmail)
				return sent, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")

		var body resdto.OfferResultResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("sent", body.Status)
	})

	s.Run("error: 409 when the offer already left draft", func() {
		s.mockCommands.EXPECT().UpdateOffer(gomock.Any(), b.ID, gomock.Any()).
			Return(nil, errs.FailedPrecondition(offer.ErrNotDraft)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")
		httptest.AssertErrorKind(s.T(), rec, http.StatusConflict, string(errs.KindFailedPrecondition))
	})

	s.Run("error: 400 on a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/offers/not-a-uuid", reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

// ================================================================================
// TestUpdateStatus
// ================================================================================

func (s *OfferHandlerTestSuite) TestUpdateStatus() {
	offerID := uuid.New()
	customerID := uuid.New()
	url := "/offers/" + offerID.String() + "/status"
	reqBody := map[string]any{"customer_id": customerID.String(), "status": "Aceptada"}

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().UpdateOfferStatus(gomock.Any(), offerID, customerID, "Aceptada").Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
		s.Empty(rec.Body.String())
	})

	s.Run("error: status missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			map[string]any{"customer_id": customerID.String()}, "bearer-token")
		httptest.AssertErrorKind(s.T(), rec, http.StatusBadRequest, string(errs.KindInvalidArgument))
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		cases := []struct {
			name   string
			err    error
			status int
		}{
			{name: "unknown label", err: errs.InvalidArgument(offer.ErrInvalidOutcome), status: http.StatusBadRequest},
			{name: "wrong customer", err: errs.NotFound(commands.ErrOfferNotFound), status: http.StatusNotFound},
			{name: "still a draft", err: errs.FailedPrecondition(offer.ErrInvalidTransition), status: http.StatusConflict},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().UpdateOfferStatus(gomock.Any(), offerID, customerID, "Aceptada").Return(tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.status, "")
			})
		}
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *OfferHandlerTestSuite) TestGet() {
	b := builder.NewOfferBuilder()
	view := b.BuildView()

	s.Run("success: returns 200 with totals and effective rate", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), b.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/offers/"+b.ID.String(), nil, "")

		var body resdto.OfferResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("OFFERTA-2025-0001", body.Number)
		s.Equal("357.00", body.Total)
		s.Equal("19.00", body.EffectiveTaxRate)
		s.Require().Len(body.Items, 1)
		s.Equal("300.00", body.Items[0].Subtotal)
	})

	s.Run("error: 404 when missing", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), b.ID).Return(nil, errs.NotFound(commands.ErrOfferNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/offers/"+b.ID.String(), nil, "")
		httptest.AssertErrorKind(s.T(), rec, http.StatusNotFound, string(errs.KindNotFound))
	})
}

// ================================================================================
// TestTrackOpen
// ================================================================================

func (s *OfferHandlerTestSuite) TestTrackOpen() {
	offerID := uuid.New()
	customerID := uuid.New()
	assertPixel := func(path string) {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path, nil, "")
		s.Equal(http.StatusOK, rec.Code)
		s.Equal(api.TrackingPixel, rec.Body.Bytes())
		s.Len(rec.Body.Bytes(), 43)
		httptest.AssertPixelHeaders(s.T(), rec)
	}

	s.Run("success: marks the offer seen", func() {
		s.mockCommands.EXPECT().TrackEmailOpen(gomock.Any(), offerID, customerID).Return(true, nil).Times(1)
		assertPixel("/public/offers/" + offerID.String() + "/open.gif?customer=" + customerID.String())
	})

	s.Run("success: repeated opens still answer with the pixel", func() {
		s.mockCommands.EXPECT().TrackEmailOpen(gomock.Any(), offerID, customerID).Return(false, nil).Times(1)
		assertPixel("/public/offers/" + offerID.String() + "/open.gif?customer=" + customerID.String())
	})

	s.Run("pixel: usecase failure is swallowed", func() {
		s.mockCommands.EXPECT().TrackEmailOpen(gomock.Any(), offerID, customerID).
			Return(false, errs.NotFound(commands.ErrOfferNotFound)).Times(1)
		assertPixel("/public/offers/" + offerID.String() + "/open.gif?customer=" + customerID.String())
	})

	s.Run("pixel: malformed ids never reach the usecase", func() {
		assertPixel("/public/offers/not-a-uuid/open.gif?customer=" + customerID.String())
		assertPixel("/public/offers/" + offerID.String() + "/open.gif")
		assertPixel("/public/offers/" + offerID.String() + "/open.gif?customer=nope")
	})
}
