package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/coolcare_patna/backend/internal/db"
	"github.com/coolcare_patna/backend/internal/models"
)

// Danapur has no night crew, so emergency dispatch is never offered
// there.
const emergencyExcludedArea = "Danapur"

var standardSlots = []models.TimeSlot{
	{Start: "09:00", End: "11:00", Label: "Morning"},
	{Start: "11:00", End: "13:00", Label: "Late Morning"},
	{Start: "14:00", End: "16:00", Label: "Afternoon"},
	{Start: "16:00", End: "18:00", Label: "Evening"},
}

// Emergency coverage extends the day into early-morning and late-night
// windows.
var emergencyExtraSlots = []models.TimeSlot{
	{Start: "06:00", End: "08:00", Label: "Early Morning"},
	{Start: "18:00", End: "20:00", Label: "Late Evening"},
	{Start: "20:00", End: "22:00", Label: "Night"},
	{Start: "22:00", End: "00:00", Label: "Late Night"},
}

const (
	defaultDaySlotCapacity   = 3
	defaultNightSlotCapacity = 2
)

// knownDateCapacity overrides the default pattern for specific dates,
// keyed by "2006-01-02" then slot label. A zero count marks the slot
// fully booked.
var knownDateCapacity = map[string]map[string]int{
	"2026-03-10": {"Morning": 1, "Late Morning": 0, "Afternoon": 2, "Evening": 0},
	"2026-03-11": {"Morning": 0, "Late Morning": 1, "Afternoon": 1, "Evening": 3, "Night": 0},
	"2026-03-15": {"Morning": 3, "Late Morning": 3, "Afternoon": 0, "Evening": 2, "Early Morning": 1},
}

type AvailabilityService struct {
	Store  *db.Store
	Logger zerolog.Logger
}

// Check produces the slot template for the date, overlays known
// capacity counts, and recommends up to three open slots. Slots
// shorter than the requested duration are marked unavailable.
func (s *AvailabilityService) Check(ctx context.Context, q models.AvailabilityQuery) (models.Envelope[models.AvailabilityResult], error) {
	if err := s.Store.Delay(ctx); err != nil {
		return models.Envelope[models.AvailabilityResult]{}, err
	}
	if _, err := time.Parse("2006-01-02", q.Date); err != nil {
		return models.Envelope[models.AvailabilityResult]{}, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrValidation)
	}

	emergencyServiced := !strings.EqualFold(strings.TrimSpace(q.Area), emergencyExcludedArea)
	emergency := q.Emergency && emergencyServiced

	template := make([]models.TimeSlot, 0, len(standardSlots)+len(emergencyExtraSlots))
	template = append(template, standardSlots...)
	if emergency {
		template = append(template, emergencyExtraSlots...)
	}

	overrides := knownDateCapacity[q.Date]
	result := models.AvailabilityResult{
		Date:              q.Date,
		Area:              q.Area,
		Emergency:         q.Emergency,
		EmergencyServiced: emergencyServiced,
	}
	for _, slot := range template {
		remaining := defaultCapacity(slot, emergency)
		if overrides != nil {
			if n, ok := overrides[slot.Label]; ok {
				remaining = n
			}
		}
		fits := q.DurationMin <= 0 || slotMinutes(slot) >= q.DurationMin
		sa := models.SlotAvailability{Slot: slot, Available: remaining > 0 && fits, Remaining: remaining}
		result.Slots = append(result.Slots, sa)
		if sa.Available && len(result.RecommendedSlots) < 3 {
			result.RecommendedSlots = append(result.RecommendedSlots, slot)
		}
	}

	return models.Ok(result, "availability computed"), nil
}

// slotMinutes computes the window length. An end of "00:00" wraps to
// midnight.
func slotMinutes(s models.TimeSlot) int {
	start, err := time.Parse("15:04", s.Start)
	if err != nil {
		return 0
	}
	end, err := time.Parse("15:04", s.End)
	if err != nil {
		return 0
	}
	d := end.Sub(start)
	if d <= 0 {
		d += 24 * time.Hour
	}
	return int(d.Minutes())
}

func defaultCapacity(slot models.TimeSlot, emergency bool) int {
	if isNightSlot(slot.Label) {
		if emergency {
			return defaultNightSlotCapacity
		}
		return 0
	}
	return defaultDaySlotCapacity
}

func isNightSlot(label string) bool {
	switch label {
	case "Early Morning", "Late Evening", "Night", "Late Night":
		return true
	default:
		return false
	}
}
