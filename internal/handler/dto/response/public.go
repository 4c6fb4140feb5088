package response

import (
	"slotbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type PublicEventTypeResponse struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Slug            string    `json:"slug"`
	Description     string    `json:"description"`
	DurationMinutes int       `json:"durationMinutes"`
}

type PublicHostResponse struct {
	ID         uuid.UUID                 `json:"id"`
	Username   string                    `json:"username"`
	Name       string                    `json:"name"`
	Timezone   string                    `json:"timezone"`
	EventTypes []PublicEventTypeResponse `json:"eventTypes,omitempty"`
}

type PublicEventTypePageResponse struct {
	Host      PublicHostResponse      `json:"host"`
	EventType PublicEventTypeResponse `json:"eventType"`
}

func FromPublicHostView(v *queries.PublicHostView) *PublicHostResponse {
	r := publicHost(v)
	r.EventTypes = make([]PublicEventTypeResponse, 0, len(v.EventTypes))
	for _, et := range v.EventTypes {
		r.EventTypes = append(r.EventTypes, PublicEventTypeResponse(et))
	}
	return &r
}

func FromPublicEventTypePageView(v *queries.PublicEventTypePageView) *PublicEventTypePageResponse {
	return &PublicEventTypePageResponse{
		Host:      publicHost(&v.Host),
		EventType: PublicEventTypeResponse(v.EventType),
	}
}

func publicHost(v *queries.PublicHostView) PublicHostResponse {
	return PublicHostResponse{ID: v.ID, Username: v.Username, Name: v.Name, Timezone: v.Timezone}
}
