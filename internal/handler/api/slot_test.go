//go:build unit

package api_test

import (
	"context"
	"net/http"
	"net/url"
	"testing"
	"time"

	"slotbook/internal/handler/api"
	resdto "slotbook/internal/handler/dto/response"
	"slotbook/internal/pkg/errs"
	"slotbook/internal/usecase/queries"
	"slotbook/tests/common/builder"
	"slotbook/tests/common/httptest"
	queriesmock "slotbook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SlotHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockSlotQueries
	hostID      uuid.UUID
	eventTypeID uuid.UUID
}

func (s *SlotHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockSlotQueries(s.mockCtrl)
	s.hostID = uuid.New()
	s.eventTypeID = uuid.New()

	h := api.NewSlotHandler(s.mockQueries)
	s.router.GET("/hosts/:hostId/event-types/:eventTypeId/slots", h.List)
}

func (s *SlotHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSlotHandlerSuite(t *testing.T) {
	suite.Run(t, new(SlotHandlerTestSuite))
}

func (s *SlotHandlerTestSuite) path(from, to string) string {
	q := url.Values{}
	if from != "" {
		q.Set("from", from)
	}
	if to != "" {
		q.Set("to", to)
	}
	return "/hosts/" + s.hostID.String() + "/event-types/" + s.eventTypeID.String() + "/slots?" + q.Encode()
}

func (s *SlotHandlerTestSuite) TestList() {
	from := builder.Monday
	to := builder.Monday.Add(24 * time.Hour)

	s.Run("success: returns slots in UTC", func() {
		views := []queries.SlotView{
			{Start: builder.At(9, 0), End: builder.At(9, 30)},
			{Start: builder.At(9, 30), End: builder.At(10, 0)},
		}
		s.mockQueries.EXPECT().ListSlots(gomock.Any(), s.hostID, s.eventTypeID, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ uuid.UUID, gotFrom, gotTo time.Time) ([]queries.SlotView, error) {
				s.True(gotFrom.Equal(from))
				s.True(gotTo.Equal(to))
				return views, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			s.path("2030-01-07T01:00:00+01:00", to.Format(time.RFC3339)), nil, "")

		var response resdto.SlotListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response.Slots, 2)
		s.True(response.Slots[0].Start.Equal(builder.At(9, 0)))
		s.Contains(rec.Body.String(), `"start":"2030-01-07T09:00:00Z"`)
	})

	s.Run("success: empty list is an empty array", func() {
		s.mockQueries.EXPECT().ListSlots(gomock.Any(), s.hostID, s.eventTypeID, gomock.Any(), gomock.Any()).
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			s.path(from.Format(time.RFC3339), to.Format(time.RFC3339)), nil, "")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"slots":[]}`, rec.Body.String())
	})

	s.Run("error: 400 Bad Request on malformed window", func() {
		cases := map[string]string{
			"missing from":  s.path("", to.Format(time.RFC3339)),
			"missing to":    s.path(from.Format(time.RFC3339), ""),
			"not RFC3339":   s.path("2030-01-07", to.Format(time.RFC3339)),
			"bad eventType": "/hosts/" + s.hostID.String() + "/event-types/x/slots",
		}
		for name, p := range cases {
			s.Run(name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, p, nil, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			queriesError   error
			expectedStatus int
		}{
			{name: "window too long", queriesError: queries.ErrWindowTooLong, expectedStatus: http.StatusBadRequest},
			{name: "no availability", queriesError: queries.ErrNoAvailability, expectedStatus: http.StatusNotFound},
			{name: "inactive", queriesError: errs.ErrEventTypeInactive, expectedStatus: http.StatusGone},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().ListSlots(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.queriesError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
					s.path(from.Format(time.RFC3339), to.Format(time.RFC3339)), nil, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})
}
