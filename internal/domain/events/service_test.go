package events_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"barkly-backend/internal/adapters/storage/memory"
	"barkly-backend/internal/apperr"
	"barkly-backend/internal/domain/customevents"
	"barkly-backend/internal/domain/dogs"
	"barkly-backend/internal/domain/events"
)

type fixture struct {
	store   *memory.Store
	dogs    *dogs.Service
	customs *customevents.Service
	events  *events.Service
}

func newFixture() *fixture {
	store := memory.NewStore()
	dogsSvc := dogs.NewService(store.Dogs(), store)
	customsSvc := customevents.NewService(store.CustomEvents(), store)
	return &fixture{
		store:   store,
		dogs:    dogsSvc,
		customs: customsSvc,
		events:  events.NewService(store.Events(), dogsSvc, customsSvc, store),
	}
}

func (f *fixture) dog(t *testing.T, userID, name string) string {
	t.Helper()
	d, err := f.dogs.Create(context.Background(), userID, dogs.CreateInput{Name: name})
	require.NoError(t, err)
	return d.ID
}

func TestCreate_RequiresExactlyOneType(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	dogID := f.dog(t, "u1", "Rocco")

	base := events.CreateInput{
		DogID:     dogID,
		Date:      time.Now(),
		TimeOfDay: events.Morning,
	}

	_, err := f.events.Create(ctx, "u1", base)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrInvalidInput))
	assert.EqualError(t, err, "Either event_type or custom_event_id must be provided")

	ce, err := f.customs.Create(ctx, "u1", customevents.CreateInput{Name: "Zoomies"})
	require.NoError(t, err)

	both := base
	both.EventType = events.TypePoo
	both.CustomEventID = ce.ID
	_, err = f.events.Create(ctx, "u1", both)
	require.Error(t, err)
	assert.EqualError(t, err, "Cannot specify both event_type and custom_event_id")

	ok := base
	ok.EventType = events.TypePoo
	created, err := f.events.Create(ctx, "u1", ok)
	require.NoError(t, err)
	assert.Equal(t, events.TypePoo, created.EventType)
	assert.NotEmpty(t, created.ID)
}

func TestCreate_ValidatesEnumsAndRanges(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	dogID := f.dog(t, "u1", "Rocco")

	in := events.CreateInput{
		DogID:     dogID,
		EventType: "Sparkles",
		Date:      time.Now(),
		TimeOfDay: events.Morning,
	}
	_, err := f.events.Create(ctx, "u1", in)
	assert.EqualError(t, err, "Invalid event type")

	in.EventType = events.TypePoo
	in.TimeOfDay = "Midnight"
	_, err = f.events.Create(ctx, "u1", in)
	assert.EqualError(t, err, "Invalid time of day")

	in.TimeOfDay = events.Overnight
	bad := 8
	in.PooQuality = &bad
	_, err = f.events.Create(ctx, "u1", in)
	assert.EqualError(t, err, "poo_quality must be between 1 and 7")

	good := 3
	in.PooQuality = &good
	created, err := f.events.Create(ctx, "u1", in)
	require.NoError(t, err)
	require.NotNil(t, created.PooQuality)
	assert.Equal(t, 3, *created.PooQuality)
}

func TestOwnership_ForeignDogAndEvent(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	dogID := f.dog(t, "owner", "Rocco")

	// crear evento sobre perro ajeno
	_, err := f.events.Create(ctx, "intruder", events.CreateInput{
		DogID:     dogID,
		EventType: events.TypeVomit,
		Date:      time.Now(),
		TimeOfDay: events.Evening,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
	assert.EqualError(t, err, "Dog not found or access denied")

	created, err := f.events.Create(ctx, "owner", events.CreateInput{
		DogID:     dogID,
		EventType: events.TypeVomit,
		Date:      time.Now(),
		TimeOfDay: events.Evening,
	})
	require.NoError(t, err)

	// el evento existe: acceso ajeno por id da forbidden, no not found
	_, err = f.events.Get(ctx, "intruder", created.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrForbidden))
	assert.EqualError(t, err, "Access denied")

	// id inexistente da not found
	_, err = f.events.Get(ctx, "owner", "no-such-id")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
	assert.EqualError(t, err, "Event not found")

	// filtro de listado sobre perro ajeno
	_, err = f.events.List(ctx, "intruder", dogID)
	require.Error(t, err)
	assert.EqualError(t, err, "Access denied to this dog")
}

func TestUpdate_PartialAndReparent(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	dogID := f.dog(t, "u1", "Rocco")
	otherDog := f.dog(t, "u1", "Luna")
	foreignDog := f.dog(t, "u2", "Max")

	notes := "después de comer"
	created, err := f.events.Create(ctx, "u1", events.CreateInput{
		DogID:     dogID,
		EventType: events.TypeNausea,
		Date:      time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC),
		TimeOfDay: events.Morning,
		Notes:     notes,
	})
	require.NoError(t, err)

	// update parcial: solo time_of_day, el resto queda
	tod := events.Afternoon
	updated, err := f.events.Update(ctx, "u1", created.ID, events.UpdateInput{TimeOfDay: &tod})
	require.NoError(t, err)
	assert.Equal(t, events.Afternoon, updated.TimeOfDay)
	assert.Equal(t, notes, updated.Notes)
	assert.Equal(t, created.Date, updated.Date)

	// mover a un perro ajeno falla
	_, err = f.events.Update(ctx, "u1", created.ID, events.UpdateInput{DogID: &foreignDog})
	require.Error(t, err)
	assert.EqualError(t, err, "New dog not found or access denied")

	// mover a otro perro propio anda
	updated, err = f.events.Update(ctx, "u1", created.ID, events.UpdateInput{DogID: &otherDog})
	require.NoError(t, err)
	assert.Equal(t, otherDog, updated.DogID)
}

func TestUpdate_EmptyTypeCannotClearEvent(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	dogID := f.dog(t, "u1", "Rocco")

	created, err := f.events.Create(ctx, "u1", events.CreateInput{
		DogID:     dogID,
		EventType: events.TypePoo,
		Date:      time.Now(),
		TimeOfDay: events.Morning,
	})
	require.NoError(t, err)

	// "" no es miembro del enum: rechazado, no des-setea el tipo
	empty := events.EventType("")
	_, err = f.events.Update(ctx, "u1", created.ID, events.UpdateInput{EventType: &empty})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrInvalidInput))
	assert.EqualError(t, err, "Invalid event type")

	got, err := f.events.Get(ctx, "u1", created.ID)
	require.NoError(t, err)
	assert.Equal(t, events.TypePoo, got.EventType)

	// custom_event_id vacío tampoco es un escape: el lookup da 404
	emptyID := ""
	_, err = f.events.Update(ctx, "u1", created.ID, events.UpdateInput{CustomEventID: &emptyID})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
	assert.EqualError(t, err, "Custom event not found or access denied")

	got, err = f.events.Get(ctx, "u1", created.ID)
	require.NoError(t, err)
	assert.Empty(t, got.CustomEventID)
	assert.Equal(t, events.TypePoo, got.EventType)
}

func TestList_OrdersByDateDesc(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	dogID := f.dog(t, "u1", "Rocco")

	dates := []time.Time{
		time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC),
	}
	for _, d := range dates {
		_, err := f.events.Create(ctx, "u1", events.CreateInput{
			DogID:     dogID,
			EventType: events.TypeItchy,
			Date:      d,
			TimeOfDay: events.Morning,
		})
		require.NoError(t, err)
	}

	out, err := f.events.List(ctx, "u1", "")
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.True(t, out[0].Date.After(out[1].Date))
	assert.True(t, out[1].Date.After(out[2].Date))
}

func TestParseDateTime_AcceptedLayouts(t *testing.T) {
	cases := []string{
		"2026-08-30T10:00:00Z",
		"2026-08-30T10:00:00",
		"2026-08-30",
	}
	for _, c := range cases {
		_, err := events.ParseDateTime(c)
		assert.NoError(t, err, c)
	}

	_, err := events.ParseDateTime("30/08/2026")
	assert.Error(t, err)
}
