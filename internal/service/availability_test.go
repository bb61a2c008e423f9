package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/coolcare_patna/backend/internal/db"
	"github.com/coolcare_patna/backend/internal/models"
)

func newAvailabilityService() *AvailabilityService {
	return &AvailabilityService{Store: db.New(db.Options{}), Logger: zerolog.Nop()}
}

func TestCheckKnownDateExcludesBookedSlot(t *testing.T) {
	s := newAvailabilityService()
	resp, err := s.Check(context.Background(), models.AvailabilityQuery{Date: "2026-03-10", Area: "Boring Road"})
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	res := *resp.Data

	var evening *models.SlotAvailability
	for i := range res.Slots {
		if res.Slots[i].Slot.Label == "Evening" {
			evening = &res.Slots[i]
		}
	}
	if evening == nil {
		t.Fatalf("Evening slot missing from template")
	}
	if evening.Available || evening.Remaining != 0 {
		t.Fatalf("expected Evening unavailable on 2026-03-10, got %+v", evening)
	}
	for _, rec := range res.RecommendedSlots {
		if rec.Label == "Evening" || rec.Label == "Late Morning" {
			t.Fatalf("booked slot %s recommended", rec.Label)
		}
	}
}

func TestCheckUnknownDateDefaultPattern(t *testing.T) {
	s := newAvailabilityService()
	resp, err := s.Check(context.Background(), models.AvailabilityQuery{Date: "2026-07-01", Area: "Kankarbagh"})
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	res := *resp.Data
	if len(res.Slots) != 4 {
		t.Fatalf("expected the four-slot daytime template, got %d slots", len(res.Slots))
	}
	for _, sl := range res.Slots {
		if !sl.Available || sl.Remaining != 3 {
			t.Fatalf("expected default open daytime slot, got %+v", sl)
		}
	}
	if len(res.RecommendedSlots) != 3 {
		t.Fatalf("expected 3 recommendations, got %d", len(res.RecommendedSlots))
	}
}

func TestCheckEmergencyExtendsTemplate(t *testing.T) {
	s := newAvailabilityService()
	resp, err := s.Check(context.Background(), models.AvailabilityQuery{Date: "2026-07-01", Area: "Kankarbagh", Emergency: true})
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	res := *resp.Data
	if len(res.Slots) != 8 {
		t.Fatalf("expected extended emergency template, got %d slots", len(res.Slots))
	}
	night := false
	for _, sl := range res.Slots {
		if sl.Slot.Label == "Night" {
			night = true
			if !sl.Available || sl.Remaining != 2 {
				t.Fatalf("expected night slot open for emergency, got %+v", sl)
			}
		}
	}
	if !night {
		t.Fatalf("night slot missing from emergency template")
	}
}

func TestCheckExcludedAreaNeverEmergency(t *testing.T) {
	s := newAvailabilityService()
	resp, err := s.Check(context.Background(), models.AvailabilityQuery{Date: "2026-07-01", Area: "Danapur", Emergency: true})
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	res := *resp.Data
	if res.EmergencyServiced {
		t.Fatalf("expected Danapur marked emergency-unserviced")
	}
	if len(res.Slots) != 4 {
		t.Fatalf("expected standard template only for excluded area, got %d slots", len(res.Slots))
	}
}

func TestCheckDurationLimitsSlots(t *testing.T) {
	s := newAvailabilityService()
	ctx := context.Background()

	// Every window is two hours; a longer job fits nowhere.
	resp, err := s.Check(ctx, models.AvailabilityQuery{Date: "2026-07-01", Area: "Kankarbagh", DurationMin: 150})
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	for _, sl := range resp.Data.Slots {
		if sl.Available {
			t.Fatalf("slot %s available for a 150-minute job", sl.Slot.Label)
		}
	}
	if len(resp.Data.RecommendedSlots) != 0 {
		t.Fatalf("expected no recommendations, got %d", len(resp.Data.RecommendedSlots))
	}

	// A job that exactly fills the window still fits.
	resp, err = s.Check(ctx, models.AvailabilityQuery{Date: "2026-07-01", Area: "Kankarbagh", DurationMin: 120})
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	for _, sl := range resp.Data.Slots {
		if !sl.Available {
			t.Fatalf("slot %s unavailable for a 120-minute job", sl.Slot.Label)
		}
	}
}

func TestCheckRejectsBadDate(t *testing.T) {
	s := newAvailabilityService()
	if _, err := s.Check(context.Background(), models.AvailabilityQuery{Date: "10-03-2026", Area: "Boring Road"}); err == nil {
		t.Fatalf("expected validation error for malformed date")
	}
}
