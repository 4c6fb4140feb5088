package commands

import (
	"context"
	"log/slog"

	"slotbook/internal/domain/host"
	"slotbook/internal/infra"
	"slotbook/internal/pkg/clock"
	"slotbook/internal/pkg/errs"
	"slotbook/internal/pkg/jwt"
	"slotbook/internal/usecase/queries"
	"slotbook/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrTokenGeneration = errs.New("token generation failed")

type RegisterHostInput struct {
	Username string
	Name     string
	Email    string
	Timezone string
}

type ProfileInput struct {
	Name     string
	Email    string
	Timezone string
}

type RegisterHostResult struct {
	Host        *queries.HostView
	AccessToken string
}

//go:generate mockgen -source=host.go -destination=../../../tests/mock/commands/host_mock.go -package=commandsmock
type HostCommands interface {
	Register(ctx context.Context, in RegisterHostInput) (*RegisterHostResult, error)
	UpdateProfile(ctx context.Context, hostID uuid.UUID, in ProfileInput) (*queries.HostView, error)
}

type hostCommandsImpl struct {
	hosts      shared.HostStore
	jwtService *jwt.Service
	clock      clock.Clock
	logger     *slog.Logger
}

func NewHostCommands(hosts shared.HostStore, jwtService *jwt.Service, clk clock.Clock, logger *slog.Logger) HostCommands {
	return &hostCommandsImpl{
		hosts:      hosts,
		jwtService: jwtService,
		clock:      clk,
		logger:     logger,
	}
}

func (c *hostCommandsImpl) Register(ctx context.Context, in RegisterHostInput) (*RegisterHostResult, error) {
	h, err := host.NewHost(in.Username, in.Name, in.Email, in.Timezone, c.clock.Now())
	if err != nil {
		return nil, errs.Validation(err)
	}
	if err := c.hosts.Create(ctx, h); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Wrapf(errs.ErrUsernameTaken, "username %q", h.Username())
		}
		return nil, err
	}

	token, err := c.jwtService.GenerateToken(h.ID(), h.Username())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	view, err := queries.NewHostView(h)
	if err != nil {
		return nil, err
	}
	c.logger.Info("host registered", "host_id", h.ID(), "username", h.Username())
	return &RegisterHostResult{Host: view, AccessToken: token}, nil
}

func (c *hostCommandsImpl) UpdateProfile(ctx context.Context, hostID uuid.UUID, in ProfileInput) (*queries.HostView, error) {
	h, err := c.hosts.Get(ctx, hostID)
	if err != nil {
		return nil, err
	}
	if err := h.UpdateProfile(in.Name, in.Email, in.Timezone, c.clock.Now()); err != nil {
		return nil, errs.Validation(err)
	}
	if err := c.hosts.Update(ctx, h); err != nil {
		return nil, err
	}
	return queries.NewHostView(h)
}
