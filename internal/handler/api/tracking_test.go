//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"storefront/internal/handler/api"
	resdto "storefront/internal/handler/dto/response"
	"storefront/internal/handler/middleware"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/ptr"
	"storefront/internal/usecase/commands"
	"storefront/tests/common/httptest"
	"storefront/tests/common/testutil"
	commandsmock "storefront/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TrackingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockTrackingCommands
}

func (s *TrackingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockTrackingCommands(s.mockCtrl)
	h := api.NewTrackingHandler(s.mockCommands)

	s.router.POST("/orders/track", fakeAuth, h.Track)
	s.router.POST("/orders/track/recover", h.Recover)
}

func (s *TrackingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestTrackingHandlerSuite(t *testing.T) {
	suite.Run(t, new(TrackingHandlerTestSuite))
}

func (s *TrackingHandlerTestSuite) TestTrack() {
	shipped := &commands.TrackingResult{
		Status:         "shipped",
		TrackingNumber: ptr.Of("1Z999"),
		TrackingURL:    ptr.Of("https://track.example/1Z999"),
		Carrier:        ptr.Of("UPS"),
	}

	s.Run("by tracking token, anonymous", func() {
		s.mockCommands.EXPECT().
			Track(gomock.Any(), commands.TrackRequest{TrackingToken: "tok_abc", Refresh: true}).
			Return(shipped, nil).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/orders/track",
			map[string]any{"trackingToken": "tok_abc", "refresh": true}, "")

		var got resdto.TrackingResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &got)
		s.Equal("shipped", got.Status)
		s.Equal("1Z999", *got.TrackingNumber)
		s.Equal("UPS", *got.Carrier)
	})

	s.Run("by order id carries the actor", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().
			Track(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req commands.TrackRequest) (*commands.TrackingResult, error) {
				s.Require().NotNil(req.OrderID)
				s.Equal(id, *req.OrderID)
				s.Require().NotNil(req.Actor)
				s.Equal(customerID, req.Actor.UserID)
				return &commands.TrackingResult{Status: "confirmed"}, nil
			}).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/orders/track",
			map[string]any{"orderId": id.String()}, customerToken)

		var got map[string]any
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &got)
		s.Equal("confirmed", got["status"])
		s.Contains(got, "tracking_number")
		s.Nil(got["tracking_number"])
	})

	s.Run("not found", func() {
		s.mockCommands.EXPECT().Track(gomock.Any(), gomock.Any()).Return(nil, errs.ErrOrderNotFound).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/orders/track",
			map[string]any{"trackingToken": "nope"}, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "not found")
	})

	s.Run("store failure", func() {
		s.mockCommands.EXPECT().Track(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down")).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/orders/track",
			map[string]any{"trackingToken": "tok"}, "")
		s.Equal(http.StatusInternalServerError, w.Code)
	})

	invalid := []struct {
		name string
		body map[string]any
	}{
		{name: "no identifier", body: map[string]any{"refresh": true}},
		{name: "empty identifiers", body: map[string]any{"orderId": "", "trackingToken": ""}},
		{name: "malformed order id", body: map[string]any{"orderId": "not-a-uuid"}},
	}
	for _, tt := range invalid {
		s.Run(tt.name, func() {
			w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/orders/track", tt.body, "")
			s.Equal(http.StatusBadRequest, w.Code)
		})
	}
}

func (s *TrackingHandlerTestSuite) TestRecover() {
	valid := map[string]any{"email": "ada@example.com", "challengeToken": "cf-token"}

	s.Run("success", func() {
		s.mockCommands.EXPECT().
			RecoverByEmail(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req commands.RecoverRequest) error {
				s.Equal("ada@example.com", req.Email)
				s.Equal("cf-token", req.ChallengeToken)
				s.NotEmpty(req.RemoteIP)
				return nil
			}).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/orders/track/recover", valid, "")
		var got map[string]bool
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &got)
		s.True(got["success"])
	})

	s.Run("challenge rejected", func() {
		s.mockCommands.EXPECT().RecoverByEmail(gomock.Any(), gomock.Any()).Return(errs.ErrChallengeFailed).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/orders/track/recover", valid, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "Verification failed")
	})

	invalid := []struct {
		name   string
		mutate func(map[string]any)
	}{
		{name: "missing email", mutate: testutil.Field("email", nil)},
		{name: "malformed email", mutate: testutil.Field("email", "not-an-email")},
		{name: "missing challenge token", mutate: testutil.Field("challengeToken", nil)},
	}
	for _, tt := range invalid {
		s.Run(tt.name, func() {
			body := testutil.DtoMap(s.T(), valid, tt.mutate)
			w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/orders/track/recover", body, "")
			s.Equal(http.StatusBadRequest, w.Code)
		})
	}
}
