package bootstrap

import (
	"time"

	"slotbook/internal/pkg/config"
	"slotbook/internal/pkg/errs"
	"slotbook/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config) (*jwt.Service, error) {
	d, err := time.ParseDuration(cfg.JWT.Duration)
	if err != nil {
		return nil, errs.Wrap(err, "invalid JWT_DURATION")
	}
	return jwt.NewService(cfg.JWT.Secret, d), nil
}
