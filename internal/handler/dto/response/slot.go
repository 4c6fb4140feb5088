package response

import (
	"time"

	"slotbook/internal/domain/slot"
	"slotbook/internal/usecase/queries"
)

type SlotResponse struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type SlotListResponse struct {
	Slots []SlotResponse `json:"slots"`
}

func FromSlotViews(vs []queries.SlotView) SlotListResponse {
	out := make([]SlotResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, SlotResponse{Start: v.Start.UTC(), End: v.End.UTC()})
	}
	return SlotListResponse{Slots: out}
}

// FromSlots renders alternatives carried by a conflict.
func FromSlots(ss []slot.Slot) []SlotResponse {
	return FromSlotViews(queries.NewSlotViews(ss)).Slots
}
