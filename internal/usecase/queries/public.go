package queries

import (
	"context"

	"slotbook/internal/domain/eventtype"
	"slotbook/internal/pkg/errs"
	"slotbook/internal/usecase/shared"

	"github.com/jinzhu/copier"
)

// PublicQueries resolves the public booking link /{username}/{slug}.
//
//go:generate mockgen -source=public.go -destination=../../../tests/mock/queries/public_mock.go -package=queriesmock
type PublicQueries interface {
	// HostPage returns the host's public profile and its active event types.
	HostPage(ctx context.Context, username string) (*PublicHostView, error)
	// EventTypePage returns one active event type of the host.
	EventTypePage(ctx context.Context, username, slug string) (*PublicEventTypePageView, error)
}

type publicQueriesImpl struct {
	hosts      shared.HostStore
	eventTypes shared.EventTypeStore
}

func NewPublicQueries(hosts shared.HostStore, eventTypes shared.EventTypeStore) PublicQueries {
	return &publicQueriesImpl{hosts: hosts, eventTypes: eventTypes}
}

func (q *publicQueriesImpl) HostPage(ctx context.Context, username string) (*PublicHostView, error) {
	h, err := q.hosts.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	items, err := q.eventTypes.ListByHost(ctx, h.ID())
	if err != nil {
		return nil, err
	}

	var v PublicHostView
	if err := copier.Copy(&v, h); err != nil {
		return nil, errs.Wrap(err, "map public host view")
	}
	v.EventTypes = make([]PublicEventTypeView, 0, len(items))
	for _, et := range items {
		if et.Active() {
			v.EventTypes = append(v.EventTypes, newPublicEventTypeView(et))
		}
	}
	return &v, nil
}

// EventTypePage hides inactive event types behind NotFound so a disabled link
// looks the same as a missing one.
func (q *publicQueriesImpl) EventTypePage(ctx context.Context, username, slug string) (*PublicEventTypePageView, error) {
	h, err := q.hosts.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	et, err := q.eventTypes.GetBySlug(ctx, h.ID(), slug)
	if err != nil {
		return nil, err
	}
	if !et.Active() {
		return nil, errs.Wrapf(errs.ErrNotFound, "event type %s/%s is inactive", username, slug)
	}

	var page PublicEventTypePageView
	if err := copier.Copy(&page.Host, h); err != nil {
		return nil, errs.Wrap(err, "map public host view")
	}
	page.EventType = newPublicEventTypeView(et)
	return &page, nil
}

func newPublicEventTypeView(et *eventtype.EventType) PublicEventTypeView {
	return PublicEventTypeView{
		ID:              et.ID(),
		Title:           et.Title(),
		Slug:            et.Slug(),
		Description:     et.Description(),
		DurationMinutes: minutes(et.Duration()),
	}
}
