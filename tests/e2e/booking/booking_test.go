//go:build e2e

package booking_test

import (
	"encoding/json"
	"net/http"
	"net/url"
	"sync"
	"testing"
	"time"

	reqdto "slotbook/internal/handler/dto/request"
	resdto "slotbook/internal/handler/dto/response"
	"slotbook/tests/common/authtest"
	"slotbook/tests/common/dbtest"
	"slotbook/tests/common/httptest"
	"slotbook/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type BookingE2ESuite struct {
	e2e.SharedSuite
}

func TestBookingE2E(t *testing.T) {
	suite.Run(t, new(BookingE2ESuite))
}

type bookableHost struct {
	token       string
	hostID      uuid.UUID
	eventTypeID uuid.UUID
	monday      time.Time
}

// nextMonday returns a Monday at least a week ahead so the notice window never interferes.
func nextMonday() time.Time {
	d := time.Now().UTC().Truncate(24*time.Hour).AddDate(0, 0, 7)
	for d.Weekday() != time.Monday {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

func (s *BookingE2ESuite) setupHost(username string) bookableHost {
	token, hostID := authtest.RegisterHost(s.T(), s.Router, username, "UTC")

	weekly := reqdto.WeeklyAvailabilityRequest{Days: []reqdto.WeeklyDayRequest{
		{DayOfWeek: "monday", Intervals: []reqdto.IntervalRequest{{Start: "09:00", End: "17:00"}}},
		{DayOfWeek: "tuesday", Intervals: []reqdto.IntervalRequest{{Start: "09:00", End: "10:00"}}},
	}}
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPut, "/api/me/availability/weekly", weekly, token)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/me/event-types", reqdto.CreateEventTypeRequest{
		Title:           "Intro call",
		Slug:            "intro",
		DurationMinutes: 30,
	}, token)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var et resdto.EventTypeResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &et))

	return bookableHost{token: token, hostID: hostID, eventTypeID: et.ID, monday: nextMonday()}
}

func (h bookableHost) bookingsPath() string {
	return "/api/hosts/" + h.hostID.String() + "/event-types/" + h.eventTypeID.String() + "/bookings"
}

func (h bookableHost) slotsPath(from, to time.Time) string {
	q := url.Values{}
	q.Set("from", from.Format(time.RFC3339))
	q.Set("to", to.Format(time.RFC3339))
	return "/api/hosts/" + h.hostID.String() + "/event-types/" + h.eventTypeID.String() + "/slots?" + q.Encode()
}

func (s *BookingE2ESuite) listSlots(h bookableHost) []resdto.SlotResponse {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, h.slotsPath(h.monday, h.monday.Add(24*time.Hour)), nil, "")
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var res resdto.SlotListResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	return res.Slots
}

func reserveBody(start time.Time, email string) reqdto.ReserveSlotRequest {
	return reqdto.ReserveSlotRequest{
		SlotStart: start,
		Attendee:  reqdto.AttendeeRequest{Name: "Grace Hopper", Email: email},
	}
}

func (s *BookingE2ESuite) TestBookingFlow() {
	s.Run("reserve, conflict, cancel and rebook", func() {
		h := s.setupHost("ada")
		slot := h.monday.Add(10 * time.Hour)

		slots := s.listSlots(h)
		s.Require().Len(slots, 16)
		s.True(slots[0].Start.Equal(h.monday.Add(9 * time.Hour)))

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, h.bookingsPath(), reserveBody(slot, "grace@example.com"), "")
		s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
		var booked resdto.BookingResponse
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &booked))
		s.Equal("confirmed", booked.Status)
		s.Equal("/api/bookings/"+booked.ID.String(), w.Header().Get("Location"))
		s.Len(s.listSlots(h), 15)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, h.bookingsPath(), reserveBody(slot, "alan@example.com"), "")
		s.Require().Equal(http.StatusConflict, w.Code, w.Body.String())
		var conflict struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
			AlternativeSlots []resdto.SlotResponse `json:"alternativeSlots"`
		}
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &conflict))
		s.Equal("Slot is no longer available", conflict.Error.Message)
		s.Require().NotEmpty(conflict.AlternativeSlots)
		for _, alt := range conflict.AlternativeSlots {
			s.False(alt.Start.Equal(slot))
		}

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/bookings/"+booked.ID.String()+"/cancel",
			reqdto.CancelBookingRequest{Reason: "double booked"}, "")
		s.Require().Equal(http.StatusNoContent, w.Code, w.Body.String())
		s.Equal("cancelled", dbtest.BookingStatus(s.T(), s.DB, booked.ID))
		s.Len(s.listSlots(h), 16)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/bookings/"+booked.ID.String()+"/cancel", nil, "")
		s.Equal(http.StatusNoContent, w.Code)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, h.bookingsPath(), reserveBody(slot, "alan@example.com"), "")
		s.Equal(http.StatusCreated, w.Code, w.Body.String())
		s.Equal(1, dbtest.CountActiveBookings(s.T(), s.DB, h.hostID))
	})

	s.Run("off-grid slot is rejected", func() {
		h := s.setupHost("bob")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, h.bookingsPath(),
			reserveBody(h.monday.Add(10*time.Hour+10*time.Minute), "grace@example.com"), "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity, "Slot is not offered")
	})

	s.Run("host sees bookings", func() {
		h := s.setupHost("cleo")
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, h.bookingsPath(),
			reserveBody(h.monday.Add(9*time.Hour), "grace@example.com"), "")
		s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/me/bookings", nil, h.token)
		s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
		s.Contains(w.Body.String(), "grace@example.com")

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/me/bookings", nil, "")
		s.Equal(http.StatusUnauthorized, w.Code)
	})

	s.Run("public link resolves to the event type", func() {
		h := s.setupHost("eve")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/u/eve", nil, "")
		s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
		var page resdto.PublicHostResponse
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &page))
		s.Equal(h.hostID, page.ID)
		s.Require().Len(page.EventTypes, 1)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/u/eve/intro", nil, "")
		s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
		var et resdto.PublicEventTypePageResponse
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &et))
		s.Equal(h.eventTypeID, et.EventType.ID)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/u/eve/missing", nil, "")
		s.Equal(http.StatusNotFound, w.Code)
	})
}

func (s *BookingE2ESuite) TestConcurrentReservations() {
	s.Run("exactly one of many racing requests wins", func() {
		h := s.setupHost("dora")
		slot := h.monday.Add(11 * time.Hour)

		const n = 10
		codes := make([]int, n)
		var wg sync.WaitGroup
		for i := range n {
			wg.Add(1)
			go func() {
				defer wg.Done()
				w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, h.bookingsPath(),
					reserveBody(slot, "racer@example.com"), "")
				codes[i] = w.Code
			}()
		}
		wg.Wait()

		created, conflicts := 0, 0
		for _, c := range codes {
			switch c {
			case http.StatusCreated:
				created++
			case http.StatusConflict:
				conflicts++
			}
		}
		s.Equal(1, created)
		s.Equal(n-1, conflicts)
		s.Equal(1, dbtest.CountActiveBookings(s.T(), s.DB, h.hostID))
	})
}
