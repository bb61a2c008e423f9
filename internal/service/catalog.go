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

// CatalogService serves the read-only service catalog. Services are
// immutable after seed; there are no mutation operations.
type CatalogService struct {
	Store  *db.Store
	Logger zerolog.Logger
}

func (s *CatalogService) List(ctx context.Context, f models.ServiceFilters, p models.ListParams) (models.PaginatedEnvelope[models.Service], error) {
	if err := s.Store.Delay(ctx); err != nil {
		return models.PaginatedEnvelope[models.Service]{}, err
	}

	preds := []func(models.Service) bool{}
	if f.Category != "" {
		cat := models.ServiceCategory(strings.ToLower(f.Category))
		preds = append(preds, func(v models.Service) bool { return v.Category == cat })
	}
	if f.MinPrice != nil || f.MaxPrice != nil {
		preds = append(preds, func(v models.Service) bool { return query.InRange(v.Price.Min, f.MinPrice, f.MaxPrice) })
	}
	if f.ACType != "" {
		ac := models.ACType(strings.ToLower(f.ACType))
		preds = append(preds, func(v models.Service) bool {
			for _, t := range v.ACTypes {
				if t == ac {
					return true
				}
			}
			return false
		})
	}
	if f.Emergency != nil {
		preds = append(preds, func(v models.Service) bool { return v.Emergency == *f.Emergency })
	}
	if f.Search != "" {
		preds = append(preds, func(v models.Service) bool {
			fields := append([]string{v.Name, v.Description}, v.Features...)
			return query.MatchAnyField(f.Search, fields...)
		})
	}

	less := serviceSort(p.SortBy)
	data, pg := query.Apply(s.Store.Services(), preds, less, strings.EqualFold(p.SortOrder, "desc"), p.Page, p.Limit)
	return models.PaginatedEnvelope[models.Service]{Data: data, Pagination: pg}, nil
}

func (s *CatalogService) Get(ctx context.Context, id string) (models.Envelope[models.Service], error) {
	if err := s.Store.Delay(ctx); err != nil {
		return models.Envelope[models.Service]{}, err
	}
	svc, ok := s.Store.FindService(id)
	if !ok {
		return models.NotFound[models.Service](fmt.Sprintf("service %s not found", id)), nil
	}
	return models.Ok(svc, "service retrieved"), nil
}

func serviceSort(key string) func(a, b models.Service) bool {
	switch key {
	case "price":
		return func(a, b models.Service) bool { return a.Price.Min < b.Price.Min }
	case "duration":
		return func(a, b models.Service) bool { return a.DurationMin < b.DurationMin }
	case "name":
		return func(a, b models.Service) bool { return a.Name < b.Name }
	default:
		return nil
	}
}
