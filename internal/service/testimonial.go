package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/coolcare_patna/backend/internal/db"
	"github.com/coolcare_patna/backend/internal/models"
	"github.com/coolcare_patna/backend/internal/query"
)

type TestimonialService struct {
	Store  *db.Store
	Logger zerolog.Logger
}

func (s *TestimonialService) List(ctx context.Context, f models.TestimonialFilters, p models.ListParams) (models.PaginatedEnvelope[models.Testimonial], error) {
	if err := s.Store.Delay(ctx); err != nil {
		return models.PaginatedEnvelope[models.Testimonial]{}, err
	}

	preds := []func(models.Testimonial) bool{}
	if f.Rating != nil {
		preds = append(preds, func(t models.Testimonial) bool { return t.Rating == *f.Rating })
	}
	if f.MinRating != nil {
		preds = append(preds, func(t models.Testimonial) bool { return t.Rating >= *f.MinRating })
	}
	if f.Service != "" {
		preds = append(preds, func(t models.Testimonial) bool { return query.MatchAnyField(f.Service, t.ServiceName) })
	}
	if f.Area != "" {
		preds = append(preds, func(t models.Testimonial) bool { return query.MatchAnyField(f.Area, t.Area) })
	}
	if f.Verified != nil {
		preds = append(preds, func(t models.Testimonial) bool { return t.Verified == *f.Verified })
	}
	if f.From != "" {
		from, err := time.Parse("2006-01-02", f.From)
		if err != nil {
			return models.PaginatedEnvelope[models.Testimonial]{}, fmt.Errorf("%w: from must be YYYY-MM-DD", ErrValidation)
		}
		preds = append(preds, func(t models.Testimonial) bool { return !t.Date.Before(from) })
	}
	if f.To != "" {
		to, err := time.Parse("2006-01-02", f.To)
		if err != nil {
			return models.PaginatedEnvelope[models.Testimonial]{}, fmt.Errorf("%w: to must be YYYY-MM-DD", ErrValidation)
		}
		preds = append(preds, func(t models.Testimonial) bool { return !t.Date.After(to.Add(24*time.Hour - time.Nanosecond)) })
	}

	less := testimonialSort(p.SortBy)
	data, pg := query.Apply(s.Store.Testimonials(), preds, less, strings.EqualFold(p.SortOrder, "desc"), p.Page, p.Limit)
	return models.PaginatedEnvelope[models.Testimonial]{Data: data, Pagination: pg}, nil
}

// Create validates and stores a testimonial. Regardless of the input,
// new entries are unverified until moderation verifies them.
func (s *TestimonialService) Create(ctx context.Context, req models.CreateTestimonialRequest) (models.Envelope[models.Testimonial], error) {
	if err := s.Store.Delay(ctx); err != nil {
		return models.Envelope[models.Testimonial]{}, err
	}
	if strings.TrimSpace(req.CustomerName) == "" {
		return models.Envelope[models.Testimonial]{}, fmt.Errorf("%w: customer name is required", ErrValidation)
	}
	if strings.TrimSpace(req.Comment) == "" {
		return models.Envelope[models.Testimonial]{}, fmt.Errorf("%w: comment is required", ErrValidation)
	}
	if req.Rating < 1 || req.Rating > 5 {
		return models.Envelope[models.Testimonial]{}, fmt.Errorf("%w: rating must be between 1 and 5", ErrValidation)
	}

	t := models.Testimonial{
		ID:           "tst-" + uuid.NewString(),
		CustomerName: strings.TrimSpace(req.CustomerName),
		Area:         strings.TrimSpace(req.Area),
		ServiceName:  strings.TrimSpace(req.ServiceName),
		Rating:       req.Rating,
		Comment:      strings.TrimSpace(req.Comment),
		Date:         time.Now().UTC(),
		Verified:     false,
		Image:        req.Image,
	}
	s.Store.InsertTestimonial(t)
	s.Logger.Info().Str("testimonial_id", t.ID).Int("rating", t.Rating).Msg("testimonial created")
	return models.Ok(t, "testimonial submitted for review"), nil
}

// Verify marks a testimonial as moderated. Verifying an already
// verified entry is a no-op.
func (s *TestimonialService) Verify(ctx context.Context, id string) (models.Envelope[models.Testimonial], error) {
	if err := s.Store.Delay(ctx); err != nil {
		return models.Envelope[models.Testimonial]{}, err
	}
	t, ok := s.Store.FindTestimonial(id)
	if !ok {
		return models.Envelope[models.Testimonial]{}, fmt.Errorf("%w: testimonial %s", ErrNotFound, id)
	}
	if !t.Verified {
		t.Verified = true
		if err := s.Store.SaveTestimonial(t); err != nil {
			return models.Envelope[models.Testimonial]{}, fmt.Errorf("%w: testimonial %s", ErrNotFound, id)
		}
	}
	return models.Ok(t, "testimonial verified"), nil
}

func (s *TestimonialService) Delete(ctx context.Context, id string) (models.Envelope[models.Testimonial], error) {
	if err := s.Store.Delay(ctx); err != nil {
		return models.Envelope[models.Testimonial]{}, err
	}
	t, ok := s.Store.FindTestimonial(id)
	if !ok {
		return models.Envelope[models.Testimonial]{}, fmt.Errorf("%w: testimonial %s", ErrNotFound, id)
	}
	if err := s.Store.DeleteTestimonial(id); err != nil {
		return models.Envelope[models.Testimonial]{}, fmt.Errorf("%w: testimonial %s", ErrNotFound, id)
	}
	return models.Ok(t, "testimonial deleted"), nil
}

func testimonialSort(key string) func(a, b models.Testimonial) bool {
	switch key {
	case "rating":
		return func(a, b models.Testimonial) bool { return a.Rating < b.Rating }
	case "date":
		return func(a, b models.Testimonial) bool { return a.Date.Before(b.Date) }
	default:
		return nil
	}
}
