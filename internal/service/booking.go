package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Devstrike-DigTech/aideesigns-storefront/internal/backend"
	"github.com/Devstrike-DigTech/aideesigns-storefront/internal/cache"
	"github.com/Devstrike-DigTech/aideesigns-storefront/internal/domain"
	apperrors "github.com/Devstrike-DigTech/aideesigns-storefront/pkg/errors"
)

// slotWindowMonths is how far ahead of the current month slots are fetched
// for the booking calendar.
const slotWindowMonths = 3

// BookingAPI is the slice of the backend client the booking flow needs.
type BookingAPI interface {
	Slots(ctx context.Context, from, to string) ([]domain.ProductionSlot, error)
	CreateBooking(ctx context.Context, req backend.CreateBookingRequest) (*domain.Booking, error)
}

type bookingService struct {
	api    BookingAPI
	cache  ReadCache
	logger *zap.Logger
}

// NewBookingService creates the booking read/submit service.
func NewBookingService(api BookingAPI, readCache ReadCache, logger *zap.Logger) *bookingService {
	return &bookingService{
		api:    api,
		cache:  readCache,
		logger: logger,
	}
}

// SlotWindow returns the fetch range for the booking calendar: the first of
// the current month through the last day of the month three months out.
func SlotWindow(now time.Time) (from, to string) {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, slotWindowMonths+1, -1)
	return start.Format("2006-01-02"), end.Format("2006-01-02")
}

// Slots returns the production slots for the date range, cached by range.
func (s *bookingService) Slots(ctx context.Context, from, to string) ([]domain.ProductionSlot, error) {
	var slots []domain.ProductionSlot
	if err := s.cache.GetJSON(ctx, cache.SlotsKey(from, to), &slots); err == nil {
		return slots, nil
	}

	slots, err := s.api.Slots(ctx, from, to)
	if err != nil {
		return nil, err
	}

	s.cache.SetJSON(ctx, cache.SlotsKey(from, to), slots)
	return slots, nil
}

// CalendarDay is one selectable (or not) cell of the booking calendar.
type CalendarDay struct {
	Day               int    `json:"day"`
	Date              string `json:"date"`
	Selectable        bool   `json:"selectable"`
	RemainingCapacity int    `json:"remainingCapacity"`
}

// CalendarMonth is the view model for one month of the date picker.
// LeadingBlanks is the number of empty cells before day 1 on a
// Sunday-first grid.
type CalendarMonth struct {
	Year          int           `json:"year"`
	Month         int           `json:"month"`
	Label         string        `json:"label"`
	LeadingBlanks int           `json:"leadingBlanks"`
	Days          []CalendarDay `json:"days"`
}

// BuildCalendar derives the month grid from the fetched slots. A day is
// selectable if and only if a bookable slot exists for that calendar date;
// days with no slot record, closed days, and days with zero remaining
// capacity all render unselectable. Slot dates are compared at midnight
// granularity. Slots with unparsable dates are skipped.
func (s *bookingService) BuildCalendar(year int, month time.Month, slots []domain.ProductionSlot) CalendarMonth {
	bookable := make(map[time.Time]domain.ProductionSlot, len(slots))
	for _, slot := range slots {
		if !slot.Bookable() {
			continue
		}
		date, err := slot.Date()
		if err != nil {
			s.logger.Warn("Skipping slot with malformed date",
				zap.String("slot_id", slot.ID),
				zap.String("production_date", slot.ProductionDate),
			)
			continue
		}
		bookable[date] = slot
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	cal := CalendarMonth{
		Year:          year,
		Month:         int(month),
		Label:         first.Format("January 2006"),
		LeadingBlanks: int(first.Weekday()),
		Days:          make([]CalendarDay, 0, daysInMonth),
	}

	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		cell := CalendarDay{
			Day:  day,
			Date: date.Format("2006-01-02"),
		}
		if slot, ok := bookable[date]; ok {
			cell.Selectable = true
			cell.RemainingCapacity = slot.RemainingCapacity
		}
		cal.Days = append(cal.Days, cell)
	}

	return cal
}

// CreateBooking validates a preferred date was supplied and submits the
// booking. Business rejections from the backend pass through with their
// message intact.
func (s *bookingService) CreateBooking(ctx context.Context, input BookingInput) (*domain.Booking, error) {
	if _, err := time.Parse("2006-01-02", input.PreferredDate); err != nil {
		return nil, &apperrors.ErrInvalidInput{Message: "preferred date must be YYYY-MM-DD"}
	}

	booking, err := s.api.CreateBooking(ctx, backend.CreateBookingRequest{
		CustomerName:        input.CustomerName,
		Phone:               input.Phone,
		Email:               input.Email,
		OutfitType:          input.OutfitType,
		Notes:               input.Notes,
		InspirationImageURL: input.InspirationImageURL,
		PreferredDate:       input.PreferredDate,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Booking submitted",
		zap.String("booking_id", booking.ID),
		zap.String("preferred_date", input.PreferredDate),
	)

	return booking, nil
}
