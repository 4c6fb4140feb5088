package request

import (
	"slotbook/internal/usecase/commands"
)

type CreateEventTypeRequest struct {
	Title                string `json:"title" binding:"required,max=200"`
	Slug                 string `json:"slug" binding:"required,max=64"`
	Description          string `json:"description" binding:"max=1000"`
	DurationMinutes      int    `json:"durationMinutes" binding:"required,min=1,max=1440"`
	BufferBeforeMinutes  int    `json:"bufferBeforeMinutes" binding:"min=0,max=1440"`
	BufferAfterMinutes   int    `json:"bufferAfterMinutes" binding:"min=0,max=1440"`
	SlotStepMinutes      int    `json:"slotStepMinutes" binding:"min=0,max=1440"`
	MinimumNoticeMinutes int    `json:"minimumNoticeMinutes" binding:"min=0,max=525600"`
	Active               *bool  `json:"active"`
}

func (r CreateEventTypeRequest) ToInput() commands.EventTypeInput {
	return commands.EventTypeInput{
		Title:                r.Title,
		Slug:                 r.Slug,
		Description:          r.Description,
		DurationMinutes:      r.DurationMinutes,
		BufferBeforeMinutes:  r.BufferBeforeMinutes,
		BufferAfterMinutes:   r.BufferAfterMinutes,
		SlotStepMinutes:      r.SlotStepMinutes,
		MinimumNoticeMinutes: r.MinimumNoticeMinutes,
		Active:               r.Active,
	}
}

type UpdateEventTypeRequest struct {
	Title                *string `json:"title" binding:"omitempty,max=200"`
	Slug                 *string `json:"slug" binding:"omitempty,max=64"`
	Description          *string `json:"description" binding:"omitempty,max=1000"`
	DurationMinutes      *int    `json:"durationMinutes" binding:"omitempty,min=1,max=1440"`
	BufferBeforeMinutes  *int    `json:"bufferBeforeMinutes" binding:"omitempty,min=0,max=1440"`
	BufferAfterMinutes   *int    `json:"bufferAfterMinutes" binding:"omitempty,min=0,max=1440"`
	SlotStepMinutes      *int    `json:"slotStepMinutes" binding:"omitempty,min=0,max=1440"`
	MinimumNoticeMinutes *int    `json:"minimumNoticeMinutes" binding:"omitempty,min=0,max=525600"`
	Active               *bool   `json:"active"`
}

func (r UpdateEventTypeRequest) ToPatch() commands.EventTypePatch {
	return commands.EventTypePatch{
		Title:                r.Title,
		Slug:                 r.Slug,
		Description:          r.Description,
		DurationMinutes:      r.DurationMinutes,
		BufferBeforeMinutes:  r.BufferBeforeMinutes,
		BufferAfterMinutes:   r.BufferAfterMinutes,
		SlotStepMinutes:      r.SlotStepMinutes,
		MinimumNoticeMinutes: r.MinimumNoticeMinutes,
		Active:               r.Active,
	}
}
