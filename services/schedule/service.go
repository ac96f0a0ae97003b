package schedule

import (
	"context"

	"swiftmove/models"

	"go.uber.org/zap"
)

func (s *DefaultScheduleService) slots() []string {
	if len(s.Slots) > 0 {
		return s.Slots
	}
	return DefaultTimeSlots
}

func (s *DefaultScheduleService) maxPerSlot() int {
	if s.MaxPerSlot > 0 {
		return s.MaxPerSlot
	}
	return 2
}

// AvailableSlots returns the time slots still bookable on a date. A blackout
// date has no slots at all.
func (s *DefaultScheduleService) AvailableSlots(ctx context.Context, date string) (models.DaySlots, error) {
	day := models.DaySlots{Date: date, Slots: []string{}}

	blackout, err := s.Repo.IsBlackout(ctx, date)
	if err != nil {
		return day, err
	}
	if blackout {
		return day, nil
	}

	bookings, err := s.BookingRepo.ListByDate(ctx, date)
	if err != nil {
		return day, err
	}
	taken := make(map[string]int, len(bookings))
	for _, b := range bookings {
		taken[b.Time]++
	}

	for _, slot := range s.slots() {
		if taken[slot] < s.maxPerSlot() {
			day.Slots = append(day.Slots, slot)
		}
	}
	return day, nil
}

// Blackouts lists all blackout dates.
func (s *DefaultScheduleService) Blackouts(ctx context.Context) ([]models.BlackoutDate, error) {
	return s.Repo.ListBlackouts(ctx)
}

// IsDateAvailable reports whether any slot can still be booked on the date.
// Blackouts and a fully booked calendar both close the date.
func (s *DefaultScheduleService) IsDateAvailable(ctx context.Context, date string) (bool, error) {
	day, err := s.AvailableSlots(ctx, date)
	if err != nil {
		return false, err
	}
	return len(day.Slots) > 0, nil
}

// IsSlotAvailable reports whether one specific slot is still open on a date.
func (s *DefaultScheduleService) IsSlotAvailable(ctx context.Context, date, slot string) (bool, error) {
	day, err := s.AvailableSlots(ctx, date)
	if err != nil {
		return false, err
	}
	for _, open := range day.Slots {
		if open == slot {
			return true, nil
		}
	}
	if s.Logger != nil {
		s.Logger.Debug("slot unavailable", zap.String("date", date), zap.String("slot", slot))
	}
	return false, nil
}
