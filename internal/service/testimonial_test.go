package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/coolcare_patna/backend/internal/db"
	"github.com/coolcare_patna/backend/internal/models"
)

func newTestimonialService() *TestimonialService {
	return &TestimonialService{Store: db.New(db.Options{}), Logger: zerolog.Nop()}
}

func TestCreateTestimonialRatingBounds(t *testing.T) {
	s := newTestimonialService()
	ctx := context.Background()

	for _, rating := range []int{0, -1, 6, 100} {
		_, err := s.Create(ctx, models.CreateTestimonialRequest{
			CustomerName: "X", Comment: "Y", Rating: rating,
		})
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("rating %d: expected validation error, got %v", rating, err)
		}
	}
}

func TestCreateTestimonialForcesUnverified(t *testing.T) {
	s := newTestimonialService()
	resp, err := s.Create(context.Background(), models.CreateTestimonialRequest{
		CustomerName: "Ravi", Comment: "Great service", Rating: 5, Verified: true,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if resp.Data.Verified {
		t.Fatalf("new testimonial must be unverified regardless of input")
	}
}

func TestCreateTestimonialRequiredFields(t *testing.T) {
	s := newTestimonialService()
	ctx := context.Background()
	if _, err := s.Create(ctx, models.CreateTestimonialRequest{Comment: "no name", Rating: 4}); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error for missing name, got %v", err)
	}
	if _, err := s.Create(ctx, models.CreateTestimonialRequest{CustomerName: "A", Rating: 4}); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error for missing comment, got %v", err)
	}
}

func TestListMinRatingFilter(t *testing.T) {
	s := newTestimonialService()
	min := 4
	resp, err := s.List(context.Background(), models.TestimonialFilters{MinRating: &min}, models.ListParams{Limit: 100})
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	expected := 0
	for _, fixture := range s.Store.Testimonials() {
		if fixture.Rating >= min {
			expected++
		}
	}
	if resp.Pagination.Total != expected {
		t.Fatalf("expected %d results, got %d", expected, resp.Pagination.Total)
	}
	for _, got := range resp.Data {
		if got.Rating < min {
			t.Fatalf("entry %s below minRating: %d", got.ID, got.Rating)
		}
	}
}

func TestListTestimonialsRejectsMalformedDateFilter(t *testing.T) {
	s := newTestimonialService()
	if _, err := s.List(context.Background(), models.TestimonialFilters{From: "02-2026"}, models.ListParams{}); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error for malformed from, got %v", err)
	}
}

func TestVerifyIdempotent(t *testing.T) {
	s := newTestimonialService()
	ctx := context.Background()

	first, err := s.Verify(ctx, "tst-004")
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if !first.Data.Verified {
		t.Fatalf("expected verified after first call")
	}
	second, err := s.Verify(ctx, "tst-004")
	if err != nil {
		t.Fatalf("second verify: %v", err)
	}
	if !second.Data.Verified {
		t.Fatalf("expected verified to remain set")
	}
}

func TestDeleteMissingTestimonialErrors(t *testing.T) {
	s := newTestimonialService()
	if _, err := s.Delete(context.Background(), "tst-missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not-found error for mutation target, got %v", err)
	}
}
