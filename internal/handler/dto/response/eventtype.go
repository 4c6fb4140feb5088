package response

import (
	"time"

	"slotbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type EventTypeResponse struct {
	ID                   uuid.UUID `json:"id"`
	HostID               uuid.UUID `json:"hostId"`
	Title                string    `json:"title"`
	Slug                 string    `json:"slug"`
	Description          string    `json:"description"`
	DurationMinutes      int       `json:"durationMinutes"`
	BufferBeforeMinutes  int       `json:"bufferBeforeMinutes"`
	BufferAfterMinutes   int       `json:"bufferAfterMinutes"`
	SlotStepMinutes      int       `json:"slotStepMinutes"`
	MinimumNoticeMinutes int       `json:"minimumNoticeMinutes"`
	Active               bool      `json:"active"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

func FromEventTypeView(v *queries.EventTypeView) *EventTypeResponse {
	return &EventTypeResponse{
		ID:                   v.ID,
		HostID:               v.HostID,
		Title:                v.Title,
		Slug:                 v.Slug,
		Description:          v.Description,
		DurationMinutes:      v.DurationMinutes,
		BufferBeforeMinutes:  v.BufferBeforeMinutes,
		BufferAfterMinutes:   v.BufferAfterMinutes,
		SlotStepMinutes:      v.SlotStepMinutes,
		MinimumNoticeMinutes: v.MinimumNoticeMinutes,
		Active:               v.Active,
		CreatedAt:            v.CreatedAt,
		UpdatedAt:            v.UpdatedAt,
	}
}

func FromEventTypeViews(vs []*queries.EventTypeView) []*EventTypeResponse {
	out := make([]*EventTypeResponse, len(vs))
	for i, v := range vs {
		out[i] = FromEventTypeView(v)
	}
	return out
}
