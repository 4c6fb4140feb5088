//go:build unit

package host_test

import (
	"testing"
	"time"

	"slotbook/internal/domain/host"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

type profile struct {
	username, name, email, timezone string
}

func validProfile() profile {
	return profile{username: "ada", name: "Ada Lovelace", email: "ada@example.com", timezone: "Europe/London"}
}

func TestNewHost(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		p := validProfile()
		h, err := host.NewHost(" ada ", p.name, p.email, p.timezone, now)

		require.NoError(t, err)
		assert.Equal(t, "ada", h.Username())
		assert.Equal(t, "Europe/London", h.Timezone())
		assert.Equal(t, now, h.CreatedAt())
	})

	cases := []struct {
		name   string
		mutate func(*profile)
		errIs  error
	}{
		{name: "username too short", mutate: func(p *profile) { p.username = "ab" }, errIs: host.ErrInvalidUsername},
		{name: "username uppercase", mutate: func(p *profile) { p.username = "Ada" }, errIs: host.ErrInvalidUsername},
		{name: "blank name", mutate: func(p *profile) { p.name = "  " }, errIs: host.ErrInvalidName},
		{name: "bad email", mutate: func(p *profile) { p.email = "ada@" }, errIs: host.ErrInvalidEmail},
		{name: "empty timezone", mutate: func(p *profile) { p.timezone = "" }, errIs: host.ErrInvalidTimezone},
		{name: "unknown timezone", mutate: func(p *profile) { p.timezone = "Mars/Olympus" }, errIs: host.ErrInvalidTimezone},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := validProfile()
			tc.mutate(&p)

			_, err := host.NewHost(p.username, p.name, p.email, p.timezone, now)

			assert.ErrorIs(t, err, tc.errIs)
		})
	}
}

func TestUpdateProfile(t *testing.T) {
	p := validProfile()
	h, err := host.NewHost(p.username, p.name, p.email, p.timezone, now)
	require.NoError(t, err)
	later := now.Add(time.Hour)

	t.Run("invalid input leaves the host unchanged", func(t *testing.T) {
		err := h.UpdateProfile("Ada King", "ada@example.com", "Nowhere/City", later)

		assert.ErrorIs(t, err, host.ErrInvalidTimezone)
		assert.Equal(t, "Ada Lovelace", h.Name())
		assert.Equal(t, now, h.UpdatedAt())
	})

	t.Run("valid update", func(t *testing.T) {
		require.NoError(t, h.UpdateProfile("Ada King", "king@example.com", "Asia/Tokyo", later))

		assert.Equal(t, "Ada King", h.Name())
		assert.Equal(t, "king@example.com", h.Email())
		assert.Equal(t, "Asia/Tokyo", h.Location().String())
		assert.Equal(t, later, h.UpdatedAt())
	})
}
