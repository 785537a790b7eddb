package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Fixtures provides factory functions for creating test data.
type Fixtures struct {
	t      *testing.T
	testDB *TestDB
	ctx    context.Context
}

func NewFixtures(t *testing.T, testDB *TestDB) *Fixtures {
	t.Helper()
	return &Fixtures{t: t, testDB: testDB, ctx: context.Background()}
}

// --- User Fixtures ---

type UserOpts struct {
	Name  string
	Email string
	Role  string
}

func (f *Fixtures) CreateUser(opts ...func(*UserOpts)) User {
	f.t.Helper()
	o := UserOpts{
		Name:  "Test User",
		Email: fmt.Sprintf("user-%s@example.com", uuid.NewString()[:8]),
		Role:  RoleReceiver,
	}
	for _, fn := range opts {
		fn(&o)
	}

	user, err := f.testDB.Store.CreateUser(f.ctx, CreateUserParams{
		Name:         o.Name,
		Email:        o.Email,
		Role:         o.Role,
		PasswordHash: "hashed",
	})
	require.NoError(f.t, err, "failed to create test user")
	return user
}

func (f *Fixtures) CreateCreator() User {
	f.t.Helper()
	return f.CreateUser(func(o *UserOpts) { o.Role = RoleCreator })
}

// --- Countdown Fixtures ---

type CountdownOpts struct {
	Title     string
	TotalDays int
	StartDate *time.Time
	Type      string
	QRRewards LegacyQRRewards
}

func (f *Fixtures) CreateCountdown(creatorID uuid.UUID, opts ...func(*CountdownOpts)) Countdown {
	f.t.Helper()
	o := CountdownOpts{Title: "Advent for Sam", TotalDays: 24, Type: "story"}
	for _, fn := range opts {
		fn(&o)
	}

	countdown, err := f.testDB.Store.CreateCountdown(f.ctx, CreateCountdownParams{
		CreatorID:   creatorID,
		Title:       o.Title,
		ThemeColors: JSONB{"primary": "#b22222"},
		StartDate:   o.StartDate,
		TotalDays:   o.TotalDays,
		Type:        o.Type,
		QRRewards:   o.QRRewards,
	})
	require.NoError(f.t, err, "failed to create test countdown")
	return countdown
}
