package request

import "time"

type ListSlotsQuery struct {
	From time.Time `form:"from" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	To   time.Time `form:"to" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
}

type OverridesQuery struct {
	From string `form:"from" binding:"required"`
	To   string `form:"to" binding:"required"`
}

type BookingListQuery struct {
	Scope string `form:"scope" binding:"omitempty,oneof=upcoming past"`
}
