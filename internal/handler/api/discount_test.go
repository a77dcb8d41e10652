//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"storefront/internal/domain/discount"
	"storefront/internal/handler/api"
	resdto "storefront/internal/handler/dto/response"
	"storefront/internal/handler/middleware"
	"storefront/internal/usecase/queries"
	"storefront/tests/common/httptest"
	"storefront/tests/common/testutil"
	queriesmock "storefront/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DiscountHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockDiscountQueries
}

func (s *DiscountHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockDiscountQueries(s.mockCtrl)
	h := api.NewDiscountHandler(s.mockQueries)

	s.router.POST("/discounts/validate", fakeAuth, h.Validate)
}

func (s *DiscountHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDiscountHandlerSuite(t *testing.T) {
	suite.Run(t, new(DiscountHandlerTestSuite))
}

func (s *DiscountHandlerTestSuite) TestValidate() {
	url := "/discounts/validate"
	reqBody := map[string]any{"code": "summer20", "subtotal": 10000}

	s.Run("valid code for anonymous caller", func() {
		s.mockQueries.EXPECT().
			Validate(gomock.Any(), "summer20", int64(10000), false).
			Return(&queries.DiscountValidation{
				Valid:          true,
				Code:           "SUMMER20",
				Kind:           "percentage",
				Value:          20,
				DiscountAmount: 2000,
			}, nil).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		var got resdto.DiscountValidationResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &got)
		s.True(got.Valid)
		s.Equal("percentage", got.DiscountType)
		s.Equal(int64(2000), got.DiscountAmount)
	})

	s.Run("signed-in caller is authenticated", func() {
		s.mockQueries.EXPECT().
			Validate(gomock.Any(), "summer20", int64(10000), true).
			Return(&queries.DiscountValidation{Valid: true, Code: "SUMMER20"}, nil).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, customerToken)
		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("ineligible code is 200 with a message and no counters", func() {
		s.mockQueries.EXPECT().
			Validate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&queries.DiscountValidation{
				Message: discount.MessageExhausted,
				Reason:  string(discount.ReasonExhausted),
			}, nil).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		var got map[string]any
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &got)
		s.Equal(false, got["valid"])
		s.Equal(discount.MessageExhausted, got["message"])
		s.NotContains(got, "current_uses")
		s.NotContains(got, "max_uses")
		s.NotContains(got, "reason")
	})

	s.Run("zero subtotal is accepted", func() {
		s.mockQueries.EXPECT().
			Validate(gomock.Any(), "summer20", int64(0), false).
			Return(&queries.DiscountValidation{Valid: true}, nil).Times(1)

		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("subtotal", 0))
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("store failure", func() {
		s.mockQueries.EXPECT().
			Validate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("db down")).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusInternalServerError, "Failed to validate")
	})

	invalid := []struct {
		name   string
		mutate func(map[string]any)
	}{
		{name: "missing code", mutate: testutil.Field("code", nil)},
		{name: "missing subtotal", mutate: testutil.Field("subtotal", nil)},
		{name: "negative subtotal", mutate: testutil.Field("subtotal", -1)},
	}
	for _, tt := range invalid {
		s.Run(tt.name, func() {
			body := testutil.DtoMap(s.T(), reqBody, tt.mutate)
			w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
			s.Equal(http.StatusBadRequest, w.Code)
		})
	}
}
