package response

import (
	"time"

	"slotbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type HostResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Timezone  string    `json:"timezone"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type RegisterHostResponse struct {
	Host        *HostResponse `json:"host"`
	AccessToken string        `json:"accessToken"`
	TokenType   string        `json:"tokenType"`
}

func FromHostView(v *queries.HostView) *HostResponse {
	return &HostResponse{
		ID:        v.ID,
		Username:  v.Username,
		Name:      v.Name,
		Email:     v.Email,
		Timezone:  v.Timezone,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

type IntervalResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type WeeklyDayResponse struct {
	DayOfWeek string             `json:"dayOfWeek"`
	Intervals []IntervalResponse `json:"intervals"`
}

type WeeklyAvailabilityResponse struct {
	Days []WeeklyDayResponse `json:"days"`
}

type OverrideResponse struct {
	Date      string             `json:"date"`
	Status    string             `json:"status"`
	Intervals []IntervalResponse `json:"intervals"`
}

type OverrideListResponse struct {
	Overrides []OverrideResponse `json:"overrides"`
}

func fromIntervalViews(vs []queries.IntervalView) []IntervalResponse {
	out := make([]IntervalResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, IntervalResponse(v))
	}
	return out
}

func FromWeeklyRuleViews(vs []queries.WeeklyRuleView) WeeklyAvailabilityResponse {
	days := make([]WeeklyDayResponse, 0, len(vs))
	for _, v := range vs {
		days = append(days, WeeklyDayResponse{DayOfWeek: v.DayOfWeek, Intervals: fromIntervalViews(v.Intervals)})
	}
	return WeeklyAvailabilityResponse{Days: days}
}

func FromOverrideViews(vs []queries.OverrideView) OverrideListResponse {
	out := make([]OverrideResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, OverrideResponse{Date: v.Date, Status: v.Status, Intervals: fromIntervalViews(v.Intervals)})
	}
	return OverrideListResponse{Overrides: out}
}
