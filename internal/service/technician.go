package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/coolcare_patna/backend/internal/db"
	"github.com/coolcare_patna/backend/internal/models"
	"github.com/coolcare_patna/backend/internal/query"
)

type TechnicianService struct {
	Store  *db.Store
	Logger zerolog.Logger
}

func (s *TechnicianService) List(ctx context.Context, f models.TechnicianFilters, p models.ListParams) (models.PaginatedEnvelope[models.Technician], error) {
	if err := s.Store.Delay(ctx); err != nil {
		return models.PaginatedEnvelope[models.Technician]{}, err
	}

	preds := []func(models.Technician) bool{}
	if f.Specialization != "" {
		spec := models.ServiceCategory(strings.ToLower(f.Specialization))
		preds = append(preds, func(t models.Technician) bool {
			for _, c := range t.Specializations {
				if c == spec {
					return true
				}
			}
			return false
		})
	}
	if len(f.Areas) > 0 {
		preds = append(preds, func(t models.Technician) bool {
			for _, want := range f.Areas {
				if query.ContainsFold(t.Areas, want) {
					return true
				}
			}
			return false
		})
	}
	if f.Available != nil {
		preds = append(preds, func(t models.Technician) bool { return t.Available == *f.Available })
	}
	if f.EmergencyAvailable != nil {
		preds = append(preds, func(t models.Technician) bool { return t.EmergencyAvailable == *f.EmergencyAvailable })
	}
	if f.MinRating != nil {
		preds = append(preds, func(t models.Technician) bool { return t.Rating >= *f.MinRating })
	}
	if f.MinExperience != nil {
		preds = append(preds, func(t models.Technician) bool { return t.ExperienceYears >= *f.MinExperience })
	}

	less := technicianSort(p.SortBy)
	data, pg := query.Apply(s.Store.Technicians(), preds, less, strings.EqualFold(p.SortOrder, "desc"), p.Page, p.Limit)
	return models.PaginatedEnvelope[models.Technician]{Data: data, Pagination: pg}, nil
}

func (s *TechnicianService) Get(ctx context.Context, id string) (models.Envelope[models.Technician], error) {
	if err := s.Store.Delay(ctx); err != nil {
		return models.Envelope[models.Technician]{}, err
	}
	t, ok := s.Store.FindTechnician(id)
	if !ok {
		return models.NotFound[models.Technician](fmt.Sprintf("technician %s not found", id)), nil
	}
	return models.Ok(t, "technician retrieved"), nil
}

// SetAvailability flips the availability flag. Existing appointments
// are untouched; this affects future assignment only.
func (s *TechnicianService) SetAvailability(ctx context.Context, id string, req models.TechnicianAvailabilityRequest) (models.Envelope[models.Technician], error) {
	if err := s.Store.Delay(ctx); err != nil {
		return models.Envelope[models.Technician]{}, err
	}
	t, ok := s.Store.FindTechnician(id)
	if !ok {
		return models.Envelope[models.Technician]{}, fmt.Errorf("%w: technician %s", ErrNotFound, id)
	}
	t.Available = req.Available
	if err := s.Store.SaveTechnician(t); err != nil {
		return models.Envelope[models.Technician]{}, fmt.Errorf("%w: technician %s", ErrNotFound, id)
	}
	s.Logger.Info().
		Str("technician_id", id).
		Bool("available", req.Available).
		Str("reason", req.Reason).
		Msg("technician availability updated")
	return models.Ok(t, "availability updated"), nil
}

// Team returns the public-facing member directory. No filters apply;
// the list is small and read-only.
func (s *TechnicianService) Team(ctx context.Context) (models.PaginatedEnvelope[models.TeamMember], error) {
	if err := s.Store.Delay(ctx); err != nil {
		return models.PaginatedEnvelope[models.TeamMember]{}, err
	}
	data, pg := query.Apply(s.Store.Team(), nil, nil, false, 1, query.MaxLimit)
	return models.PaginatedEnvelope[models.TeamMember]{Data: data, Pagination: pg}, nil
}

func technicianSort(key string) func(a, b models.Technician) bool {
	switch key {
	case "rating":
		return func(a, b models.Technician) bool { return a.Rating < b.Rating }
	case "experience":
		return func(a, b models.Technician) bool { return a.ExperienceYears < b.ExperienceYears }
	case "jobs":
		return func(a, b models.Technician) bool { return a.CompletedJobs < b.CompletedJobs }
	case "name":
		return func(a, b models.Technician) bool { return a.Name < b.Name }
	default:
		return nil
	}
}
