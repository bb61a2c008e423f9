package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/coolcare_patna/backend/internal/db"
	"github.com/coolcare_patna/backend/internal/models"
)

func newTechnicianService() *TechnicianService {
	return &TechnicianService{Store: db.New(db.Options{}), Logger: zerolog.Nop()}
}

func TestTechniciansListMinRatingAndExperience(t *testing.T) {
	s := newTechnicianService()
	minRating := 4.8
	minExp := 9
	resp, err := s.List(context.Background(), models.TechnicianFilters{
		MinRating: &minRating, MinExperience: &minExp,
	}, models.ListParams{Limit: 100})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	// tech-002 (4.9, 12y) and tech-004 (4.9, 9y).
	if resp.Pagination.Total != 2 {
		t.Fatalf("expected 2 technicians, got %d", resp.Pagination.Total)
	}
	for _, tech := range resp.Data {
		if tech.Rating < minRating || tech.ExperienceYears < minExp {
			t.Fatalf("filter leaked %s", tech.ID)
		}
	}
}

func TestTechniciansListAreaAnyOf(t *testing.T) {
	s := newTechnicianService()
	resp, err := s.List(context.Background(), models.TechnicianFilters{
		Areas: []string{"danapur", "ashok rajpath"},
	}, models.ListParams{Limit: 100})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	// tech-002 and tech-005 cover Ashok Rajpath, tech-004 covers Danapur.
	if resp.Pagination.Total != 3 {
		t.Fatalf("expected 3 technicians across the two areas, got %d", resp.Pagination.Total)
	}
}

func TestSetAvailabilityFlipsFlagOnly(t *testing.T) {
	s := newTechnicianService()
	ctx := context.Background()

	resp, err := s.SetAvailability(ctx, "tech-001", models.TechnicianAvailabilityRequest{Available: false, Reason: "on leave"})
	if err != nil {
		t.Fatalf("set availability: %v", err)
	}
	if resp.Data.Available {
		t.Fatalf("expected availability off")
	}
	if resp.Data.Rating != 4.8 || resp.Data.CompletedJobs != 1240 {
		t.Fatalf("availability toggle must not touch other fields: %+v", resp.Data)
	}

	// Seeded appointment assigned to tech-001 is untouched.
	apt, _ := s.Store.FindAppointment("apt-001")
	if apt.TechnicianID != "tech-001" {
		t.Fatalf("existing appointment changed by availability toggle")
	}
}

func TestSetAvailabilityMissingTechnician(t *testing.T) {
	s := newTechnicianService()
	if _, err := s.SetAvailability(context.Background(), "tech-missing", models.TechnicianAvailabilityRequest{Available: true}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestTeamDirectory(t *testing.T) {
	s := newTechnicianService()
	resp, err := s.Team(context.Background())
	if err != nil {
		t.Fatalf("team: %v", err)
	}
	if len(resp.Data) != 4 {
		t.Fatalf("expected 4 team members, got %d", len(resp.Data))
	}
}
