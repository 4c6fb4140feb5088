//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"slotbook/internal/handler/api"
	reqdto "slotbook/internal/handler/dto/request"
	resdto "slotbook/internal/handler/dto/response"
	"slotbook/internal/pkg/errs"
	"slotbook/internal/usecase/commands"
	"slotbook/internal/usecase/queries"
	"slotbook/tests/common/httptest"
	"slotbook/tests/common/testutil"
	commandsmock "slotbook/tests/mock/commands"
	queriesmock "slotbook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type HostHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockHostCommands
	mockQueries  *queriesmock.MockHostQueries
	hostID       uuid.UUID
}

func (s *HostHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockHostCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockHostQueries(s.mockCtrl)
	s.hostID = uuid.New()

	h := api.NewHostHandler(s.mockCommands, s.mockQueries)
	s.router.POST("/hosts", h.Register)
	s.router.GET("/me", fakeAuth(s.hostID), h.Me)
	s.router.PUT("/me", fakeAuth(s.hostID), h.UpdateMe)
}

func (s *HostHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestHostHandlerSuite(t *testing.T) {
	suite.Run(t, new(HostHandlerTestSuite))
}

func (s *HostHandlerTestSuite) view() *queries.HostView {
	now := time.Date(2030, 1, 1, 8, 0, 0, 0, time.UTC)
	return &queries.HostView{
		ID:        s.hostID,
		Username:  "ada",
		Name:      "Ada Lovelace",
		Email:     "ada@example.com",
		Timezone:  "Europe/London",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (s *HostHandlerTestSuite) TestRegister() {
	reqBody := reqdto.RegisterHostRequest{
		Username: "ada",
		Name:     "Ada Lovelace",
		Email:    "ada@example.com",
		Timezone: "Europe/London",
	}

	s.Run("success: returns 201 with a bearer token", func() {
		s.mockCommands.EXPECT().Register(gomock.Any(), reqBody.ToInput()).
			Return(&commands.RegisterHostResult{Host: s.view(), AccessToken: "signed"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/hosts", reqBody, "")

		var response resdto.RegisterHostResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("signed", response.AccessToken)
		s.Equal("Bearer", response.TokenType)
		s.Equal(s.hostID, response.Host.ID)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []testCaseBooking{
			{name: "username too short", mutate: testutil.Field("username", "ab"), expectCode: http.StatusBadRequest},
			{name: "missing timezone", mutate: testutil.Field("timezone", nil), expectCode: http.StatusBadRequest},
			{name: "invalid email", mutate: testutil.Field("email", "ada"), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/hosts", testutil.DtoMap(s.T(), reqBody, tc.mutate), "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
			})
		}
	})

	s.Run("error: 409 Conflict when the username is taken", func() {
		s.mockCommands.EXPECT().Register(gomock.Any(), gomock.Any()).
			Return(nil, errs.Wrap(errs.ErrUsernameTaken, "ada")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/hosts", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Username already taken")
	})
}

func (s *HostHandlerTestSuite) TestMe() {
	s.Run("success: returns the authenticated host", func() {
		s.mockQueries.EXPECT().Profile(gomock.Any(), s.hostID).Return(s.view(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me", nil, "token")

		var response resdto.HostResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Europe/London", response.Timezone)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

func (s *HostHandlerTestSuite) TestUpdateMe() {
	reqBody := reqdto.UpdateProfileRequest{Name: "Ada King", Email: "ada@example.com", Timezone: "Asia/Tokyo"}

	s.Run("success: returns the updated profile", func() {
		updated := s.view()
		updated.Name = "Ada King"
		updated.Timezone = "Asia/Tokyo"
		s.mockCommands.EXPECT().UpdateProfile(gomock.Any(), s.hostID, reqBody.ToInput()).Return(updated, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/me", reqBody, "token")

		var response resdto.HostResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Ada King", response.Name)
	})

	s.Run("error: 400 Bad Request for an unknown timezone", func() {
		s.mockCommands.EXPECT().UpdateProfile(gomock.Any(), s.hostID, gomock.Any()).
			Return(nil, errs.Validation(errs.New("unknown IANA timezone"))).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/me", reqBody, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}
