package schedule

import (
	"context"
	"errors"
	"testing"

	"swiftmove/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeBlackoutRepo struct {
	blackouts map[string]bool
	err       error
}

func (f *fakeBlackoutRepo) ListBlackouts(_ context.Context) ([]models.BlackoutDate, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.BlackoutDate
	for date := range f.blackouts {
		out = append(out, models.BlackoutDate{Date: date})
	}
	return out, nil
}

func (f *fakeBlackoutRepo) IsBlackout(_ context.Context, date string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.blackouts[date], nil
}

func (f *fakeBlackoutRepo) CreateBlackout(_ context.Context, blackout *models.BlackoutDate) error {
	f.blackouts[blackout.Date] = true
	return nil
}

func (f *fakeBlackoutRepo) DeleteBlackout(_ context.Context, date string) error {
	delete(f.blackouts, date)
	return nil
}

type fakeDateBookings struct {
	byDate map[string][]models.Booking
}

func (f *fakeDateBookings) Create(_ context.Context, _ *models.Booking) error { return nil }

func (f *fakeDateBookings) GetByID(_ context.Context, _ string) (*models.Booking, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeDateBookings) GetByCheckoutSession(_ context.Context, _ string) (*models.Booking, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeDateBookings) UpdatePricing(_ context.Context, _ string, _ models.PricingState, _ string) error {
	return nil
}

func (f *fakeDateBookings) UpdateContact(_ context.Context, _ string, _ models.ContactInfo) error {
	return nil
}

func (f *fakeDateBookings) UpdateCheckout(_ context.Context, _ string, _ string, _ bool) error {
	return nil
}

func (f *fakeDateBookings) UpdatePaymentStatus(_ context.Context, _ string, _ string) error {
	return nil
}

func (f *fakeDateBookings) ListByDate(_ context.Context, date string) ([]models.Booking, error) {
	return f.byDate[date], nil
}

func (f *fakeDateBookings) List(_ context.Context, _ int64) ([]models.Booking, error) {
	return nil, nil
}

func newScheduleService(blackouts map[string]bool, byDate map[string][]models.Booking) *DefaultScheduleService {
	if blackouts == nil {
		blackouts = map[string]bool{}
	}
	if byDate == nil {
		byDate = map[string][]models.Booking{}
	}
	return &DefaultScheduleService{
		Repo:        &fakeBlackoutRepo{blackouts: blackouts},
		BookingRepo: &fakeDateBookings{byDate: byDate},
		Logger:      zap.NewNop(),
	}
}

func TestAvailableSlotsDefaultDay(t *testing.T) {
	svc := newScheduleService(nil, nil)

	day, err := svc.AvailableSlots(context.Background(), "2026-09-15")
	require.NoError(t, err)
	assert.Equal(t, "2026-09-15", day.Date)
	assert.Equal(t, DefaultTimeSlots, day.Slots)
}

func TestAvailableSlotsBlackoutHasNone(t *testing.T) {
	svc := newScheduleService(map[string]bool{"2026-09-15": true}, nil)

	day, err := svc.AvailableSlots(context.Background(), "2026-09-15")
	require.NoError(t, err)
	assert.Empty(t, day.Slots)
}

func TestAvailableSlotsFiltersFullOnes(t *testing.T) {
	byDate := map[string][]models.Booking{
		"2026-09-15": {
			{Time: "10:00 - 12:00"},
			{Time: "10:00 - 12:00"},
			{Time: "14:00 - 16:00"},
		},
	}
	svc := newScheduleService(nil, byDate)

	day, err := svc.AvailableSlots(context.Background(), "2026-09-15")
	require.NoError(t, err)
	// Two bookings fill a slot at the default capacity; one does not.
	assert.NotContains(t, day.Slots, "10:00 - 12:00")
	assert.Contains(t, day.Slots, "14:00 - 16:00")
	assert.Contains(t, day.Slots, "08:00 - 10:00")
}

func TestAvailableSlotsCustomCapacity(t *testing.T) {
	byDate := map[string][]models.Booking{
		"2026-09-15": {{Time: "10:00 - 12:00"}},
	}
	svc := newScheduleService(nil, byDate)
	svc.MaxPerSlot = 1

	day, err := svc.AvailableSlots(context.Background(), "2026-09-15")
	require.NoError(t, err)
	assert.NotContains(t, day.Slots, "10:00 - 12:00")
}

func TestIsDateAvailable(t *testing.T) {
	svc := newScheduleService(map[string]bool{"2026-09-15": true}, nil)
	ctx := context.Background()

	available, err := svc.IsDateAvailable(ctx, "2026-09-15")
	require.NoError(t, err)
	assert.False(t, available)

	available, err = svc.IsDateAvailable(ctx, "2026-09-16")
	require.NoError(t, err)
	assert.True(t, available)
}

func TestIsDateAvailableFalseWhenFullyBooked(t *testing.T) {
	// Every slot at capacity closes the whole date, not just its slots.
	full := make([]models.Booking, 0, len(DefaultTimeSlots)*2)
	for _, slot := range DefaultTimeSlots {
		full = append(full, models.Booking{Time: slot}, models.Booking{Time: slot})
	}
	svc := newScheduleService(nil, map[string][]models.Booking{"2026-09-15": full})

	available, err := svc.IsDateAvailable(context.Background(), "2026-09-15")
	require.NoError(t, err)
	assert.False(t, available)
}

func TestIsSlotAvailable(t *testing.T) {
	byDate := map[string][]models.Booking{
		"2026-09-15": {
			{Time: "10:00 - 12:00"},
			{Time: "10:00 - 12:00"},
		},
	}
	svc := newScheduleService(nil, byDate)
	ctx := context.Background()

	open, err := svc.IsSlotAvailable(ctx, "2026-09-15", "10:00 - 12:00")
	require.NoError(t, err)
	assert.False(t, open)

	open, err = svc.IsSlotAvailable(ctx, "2026-09-15", "08:00 - 10:00")
	require.NoError(t, err)
	assert.True(t, open)

	// Unknown slot strings are never available.
	open, err = svc.IsSlotAvailable(ctx, "2026-09-15", "23:00 - 01:00")
	require.NoError(t, err)
	assert.False(t, open)
}

func TestBlackoutRepoErrorSurfaces(t *testing.T) {
	svc := newScheduleService(nil, nil)
	svc.Repo = &fakeBlackoutRepo{err: errors.New("mongo down")}

	_, err := svc.AvailableSlots(context.Background(), "2026-09-15")
	assert.Error(t, err)

	_, err = svc.IsDateAvailable(context.Background(), "2026-09-15")
	assert.Error(t, err)
}
