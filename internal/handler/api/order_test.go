//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"storefront/internal/handler/api"
	resdto "storefront/internal/handler/dto/response"
	"storefront/internal/handler/middleware"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/ptr"
	"storefront/internal/usecase/queries"
	"storefront/tests/common/httptest"
	commandsmock "storefront/tests/mock/commands"
	queriesmock "storefront/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OrderHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockOrderCommands
	mockQueries  *queriesmock.MockOrderQueries
}

func (s *OrderHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockOrderCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockOrderQueries(s.mockCtrl)
	h := api.NewOrderHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/orders", fakeAuth, h.List)
	s.router.GET("/orders/:id", fakeAuth, h.Get)
	s.router.POST("/orders/claim", fakeAuth, h.Claim)
}

func (s *OrderHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOrderHandlerSuite(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}

func orderView() *queries.OrderView {
	shipped := time.Date(2024, 6, 4, 9, 0, 0, 0, time.UTC)
	return &queries.OrderView{
		ID:     uuid.New(),
		UserID: ptr.Of(customerID),
		Status: "shipped",
		Items: []queries.OrderItemView{
			{ProductID: "classic-tee-black", Name: "Classic Tee", Size: "M", Color: "Black", Quantity: 2, UnitPrice: 2500},
		},
		Subtotal:        5000,
		ShippingCost:    500,
		DiscountAmount:  1000,
		Total:           4500,
		DiscountCode:    ptr.Of("SUMMER20"),
		ShippingName:    "Ada Lovelace",
		ShippingAddress: queries.AddressView{Line1: "1 Main St", City: "Springfield", PostalCode: "12345", Country: "US"},
		CustomerEmail:   "ada@example.com",
		TrackingNumber:  ptr.Of("1Z999"),
		Carrier:         ptr.Of("UPS"),
		ShippedAt:       &shipped,
		CreatedAt:       time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC),
	}
}

func (s *OrderHandlerTestSuite) TestList() {
	s.Run("first page with next cursor", func() {
		v := orderView()
		s.mockQueries.EXPECT().
			ListMine(gomock.Any(), customerID, (*queries.Cursor)(nil), 5).
			Return([]*queries.OrderView{v}, &queries.Cursor{After: "next-page"}, nil).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders?limit=5", nil, customerToken)

		var got struct {
			Orders     []resdto.OrderResponse `json:"orders"`
			NextCursor string                 `json:"next_cursor"`
		}
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &got)
		s.Require().Len(got.Orders, 1)
		s.Equal(v.ID.String(), got.Orders[0].ID)
		s.Equal(int64(4500), got.Orders[0].Total)
		s.Equal(v.ShippedAt.Unix(), *got.Orders[0].ShippedAt)
		s.Equal("Black", got.Orders[0].Items[0].Color)
		s.Equal("next-page", got.NextCursor)
	})

	s.Run("cursor is passed through", func() {
		s.mockQueries.EXPECT().
			ListMine(gomock.Any(), customerID, &queries.Cursor{After: "abc"}, 0).
			Return(nil, nil, nil).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders?after=abc", nil, customerToken)
		var got map[string]any
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &got)
		s.NotContains(got, "next_cursor")
	})

	s.Run("invalid cursor", func() {
		s.mockQueries.EXPECT().
			ListMine(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil, queries.ErrInvalidCursor).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders?after=garbage", nil, customerToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid cursor")
	})

	s.Run("anonymous", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders", nil, "")
		s.Equal(http.StatusUnauthorized, w.Code)
	})
}

func (s *OrderHandlerTestSuite) TestGet() {
	s.Run("own order", func() {
		v := orderView()
		s.mockQueries.EXPECT().GetMine(gomock.Any(), v.ID, customerID).Return(v, nil).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/"+v.ID.String(), nil, customerToken)
		var got resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &got)
		s.Equal("SUMMER20", *got.DiscountCode)
		s.Equal("Springfield", got.ShippingAddress.City)
	})

	s.Run("someone else's order is not found", func() {
		s.mockQueries.EXPECT().GetMine(gomock.Any(), gomock.Any(), customerID).Return(nil, queries.ErrOrderNotFound).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/"+uuid.NewString(), nil, customerToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Order not found")
	})

	s.Run("malformed id", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/xyz", nil, customerToken)
		s.Equal(http.StatusBadRequest, w.Code)
	})
}

func (s *OrderHandlerTestSuite) TestClaim() {
	s.Run("claims guest orders", func() {
		s.mockCommands.EXPECT().ClaimGuestOrders(gomock.Any(), gomock.Any()).Return(int64(2), nil).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/orders/claim", nil, customerToken)
		var got resdto.ClaimOrdersResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &got)
		s.Equal(int64(2), got.Claimed)
	})

	s.Run("anonymous", func() {
		s.mockCommands.EXPECT().ClaimGuestOrders(gomock.Any(), gomock.Nil()).Return(int64(0), errs.ErrUnauthenticated).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/orders/claim", nil, "")
		s.Equal(http.StatusUnauthorized, w.Code)
	})

	s.Run("store failure", func() {
		s.mockCommands.EXPECT().ClaimGuestOrders(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("db down")).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/orders/claim", nil, customerToken)
		s.Equal(http.StatusInternalServerError, w.Code)
	})
}
