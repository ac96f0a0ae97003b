package schedule

import (
	"context"

	bookingRepo "swiftmove/database/repository/booking"
	scheduleRepo "swiftmove/database/repository/schedule"
	"swiftmove/models"

	"go.uber.org/zap"
)

// DefaultTimeSlots are the bookable windows offered on a normal day.
var DefaultTimeSlots = []string{
	"08:00 - 10:00",
	"10:00 - 12:00",
	"12:00 - 14:00",
	"14:00 - 16:00",
	"16:00 - 18:00",
}

// ScheduleService exposes the scheduling data the quote wizard is
// constrained against.
type ScheduleService interface {
	AvailableSlots(ctx context.Context, date string) (models.DaySlots, error)
	Blackouts(ctx context.Context) ([]models.BlackoutDate, error)
	IsDateAvailable(ctx context.Context, date string) (bool, error)
	IsSlotAvailable(ctx context.Context, date, slot string) (bool, error)
}

// DefaultScheduleService implements ScheduleService on the blackout and
// booking repositories.
type DefaultScheduleService struct {
	Repo        scheduleRepo.ScheduleRepository
	BookingRepo bookingRepo.BookingRepository
	Slots       []string
	MaxPerSlot  int
	Logger      *zap.Logger
}
