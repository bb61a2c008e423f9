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

type CustomerService struct {
	Store  *db.Store
	Logger zerolog.Logger
}

func (s *CustomerService) List(ctx context.Context, f models.CustomerFilters, p models.ListParams) (models.PaginatedEnvelope[models.Customer], error) {
	if err := s.Store.Delay(ctx); err != nil {
		return models.PaginatedEnvelope[models.Customer]{}, err
	}

	preds := []func(models.Customer) bool{}
	if f.Type != "" {
		ct := models.CustomerType(strings.ToLower(f.Type))
		preds = append(preds, func(c models.Customer) bool { return c.Type == ct })
	}
	if f.Area != "" {
		preds = append(preds, func(c models.Customer) bool {
			for _, a := range c.Addresses {
				if query.MatchAnyField(f.Area, a.Area, a.ServiceArea) {
					return true
				}
			}
			return false
		})
	}
	if f.HasEmail != nil {
		preds = append(preds, func(c models.Customer) bool { return (c.Email != "") == *f.HasEmail })
	}
	if f.Search != "" {
		preds = append(preds, func(c models.Customer) bool {
			fields := []string{c.Name, c.Phone, c.Email}
			for _, a := range c.Addresses {
				fields = append(fields, a.Street, a.Area, a.City, a.Pincode, a.ServiceArea)
			}
			return query.MatchAnyField(f.Search, fields...)
		})
	}
	if f.Tier != "" {
		tier := strings.ToLower(f.Tier)
		preds = append(preds, func(c models.Customer) bool { return c.LoyaltyTier() == tier })
	}

	less := customerSort(p.SortBy)
	data, pg := query.Apply(s.Store.Customers(), preds, less, strings.EqualFold(p.SortOrder, "desc"), p.Page, p.Limit)
	return models.PaginatedEnvelope[models.Customer]{Data: data, Pagination: pg}, nil
}

func (s *CustomerService) Get(ctx context.Context, id string) (models.Envelope[models.Customer], error) {
	if err := s.Store.Delay(ctx); err != nil {
		return models.Envelope[models.Customer]{}, err
	}
	c, ok := s.Store.FindCustomer(id)
	if !ok {
		return models.NotFound[models.Customer](fmt.Sprintf("customer %s not found", id)), nil
	}
	return models.Ok(c, "customer retrieved"), nil
}

// Create registers a new customer. Phone is the unique key: a second
// registration with the same phone fails with a conflict.
func (s *CustomerService) Create(ctx context.Context, req models.CreateCustomerRequest) (models.Envelope[models.Customer], error) {
	if err := s.Store.Delay(ctx); err != nil {
		return models.Envelope[models.Customer]{}, err
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Phone) == "" {
		return models.Envelope[models.Customer]{}, fmt.Errorf("%w: name and phone are required", ErrValidation)
	}
	if _, exists := s.Store.FindCustomerByPhone(req.Phone); exists {
		return models.Envelope[models.Customer]{}, fmt.Errorf("%w: customer with phone %s already exists", ErrConflict, req.Phone)
	}

	ctype := req.Type
	if ctype == "" {
		ctype = models.CustomerResidential
	}
	now := time.Now().UTC()
	addr := buildAddress(req.Address)
	addr.IsDefault = true

	c := models.Customer{
		ID:             "cust-" + uuid.NewString(),
		Name:           strings.TrimSpace(req.Name),
		Phone:          strings.TrimSpace(req.Phone),
		Email:          strings.TrimSpace(req.Email),
		AlternatePhone: strings.TrimSpace(req.AlternatePhone),
		Addresses:      []models.Address{addr},
		Type:           ctype,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	s.Store.InsertCustomer(c)
	s.Logger.Info().Str("customer_id", c.ID).Msg("customer created")
	return models.Ok(c, "customer registered"), nil
}

func (s *CustomerService) Update(ctx context.Context, id string, req models.UpdateCustomerRequest) (models.Envelope[models.Customer], error) {
	if err := s.Store.Delay(ctx); err != nil {
		return models.Envelope[models.Customer]{}, err
	}
	c, ok := s.Store.FindCustomer(id)
	if !ok {
		return models.Envelope[models.Customer]{}, fmt.Errorf("%w: customer %s", ErrNotFound, id)
	}
	if req.Name != "" {
		c.Name = strings.TrimSpace(req.Name)
	}
	if req.Email != "" {
		c.Email = strings.TrimSpace(req.Email)
	}
	if req.AlternatePhone != "" {
		c.AlternatePhone = strings.TrimSpace(req.AlternatePhone)
	}
	c.UpdatedAt = time.Now().UTC()
	if err := s.Store.SaveCustomer(c); err != nil {
		return models.Envelope[models.Customer]{}, fmt.Errorf("%w: customer %s", ErrNotFound, id)
	}
	return models.Ok(c, "customer updated"), nil
}

// AddAddress appends an address. Setting it default clears the flag on
// every other address first so exactly one default remains.
func (s *CustomerService) AddAddress(ctx context.Context, customerID string, req models.AddressInput) (models.Envelope[models.Customer], error) {
	if err := s.Store.Delay(ctx); err != nil {
		return models.Envelope[models.Customer]{}, err
	}
	c, ok := s.Store.FindCustomer(customerID)
	if !ok {
		return models.Envelope[models.Customer]{}, fmt.Errorf("%w: customer %s", ErrNotFound, customerID)
	}

	addr := buildAddress(req)
	if len(c.Addresses) == 0 {
		addr.IsDefault = true
	}
	if addr.IsDefault {
		for i := range c.Addresses {
			c.Addresses[i].IsDefault = false
		}
	}
	c.Addresses = append(c.Addresses, addr)
	c.UpdatedAt = time.Now().UTC()
	if err := s.Store.SaveCustomer(c); err != nil {
		return models.Envelope[models.Customer]{}, fmt.Errorf("%w: customer %s", ErrNotFound, customerID)
	}
	return models.Ok(c, "address added"), nil
}

func (s *CustomerService) UpdateAddress(ctx context.Context, customerID, addressID string, req models.AddressInput) (models.Envelope[models.Customer], error) {
	if err := s.Store.Delay(ctx); err != nil {
		return models.Envelope[models.Customer]{}, err
	}
	c, ok := s.Store.FindCustomer(customerID)
	if !ok {
		return models.Envelope[models.Customer]{}, fmt.Errorf("%w: customer %s", ErrNotFound, customerID)
	}

	idx := -1
	for i := range c.Addresses {
		if c.Addresses[i].ID == addressID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.Envelope[models.Customer]{}, fmt.Errorf("%w: address %s", ErrNotFound, addressID)
	}

	updated := buildAddress(req)
	updated.ID = addressID
	if updated.IsDefault {
		for i := range c.Addresses {
			c.Addresses[i].IsDefault = false
		}
	} else if c.Addresses[idx].IsDefault {
		// The only default cannot be un-marked by an update.
		updated.IsDefault = true
	}
	c.Addresses[idx] = updated
	c.UpdatedAt = time.Now().UTC()
	if err := s.Store.SaveCustomer(c); err != nil {
		return models.Envelope[models.Customer]{}, fmt.Errorf("%w: customer %s", ErrNotFound, customerID)
	}
	return models.Ok(c, "address updated"), nil
}

// DeleteAddress removes an address. Deleting the last remaining
// address is rejected; if the deleted address was default, the first
// remaining one becomes default.
func (s *CustomerService) DeleteAddress(ctx context.Context, customerID, addressID string) (models.Envelope[models.Customer], error) {
	if err := s.Store.Delay(ctx); err != nil {
		return models.Envelope[models.Customer]{}, err
	}
	c, ok := s.Store.FindCustomer(customerID)
	if !ok {
		return models.Envelope[models.Customer]{}, fmt.Errorf("%w: customer %s", ErrNotFound, customerID)
	}
	if len(c.Addresses) <= 1 {
		return models.Envelope[models.Customer]{}, fmt.Errorf("%w: customer must keep at least one address", ErrValidation)
	}

	idx := -1
	for i := range c.Addresses {
		if c.Addresses[i].ID == addressID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.Envelope[models.Customer]{}, fmt.Errorf("%w: address %s", ErrNotFound, addressID)
	}

	wasDefault := c.Addresses[idx].IsDefault
	c.Addresses = append(c.Addresses[:idx], c.Addresses[idx+1:]...)
	if wasDefault && len(c.Addresses) > 0 {
		c.Addresses[0].IsDefault = true
	}
	c.UpdatedAt = time.Now().UTC()
	if err := s.Store.SaveCustomer(c); err != nil {
		return models.Envelope[models.Customer]{}, fmt.Errorf("%w: customer %s", ErrNotFound, customerID)
	}
	return models.Ok(c, "address deleted"), nil
}

func buildAddress(req models.AddressInput) models.Address {
	addrType := req.Type
	if addrType == "" {
		addrType = "home"
	}
	city := req.City
	if city == "" {
		city = "Patna"
	}
	state := req.State
	if state == "" {
		state = "Bihar"
	}
	serviceArea := req.ServiceArea
	if serviceArea == "" {
		serviceArea = req.Area
	}
	return models.Address{
		ID:          "addr-" + uuid.NewString(),
		Type:        addrType,
		Street:      strings.TrimSpace(req.Street),
		Area:        strings.TrimSpace(req.Area),
		City:        city,
		State:       state,
		Pincode:     strings.TrimSpace(req.Pincode),
		Landmarks:   req.Landmarks,
		IsDefault:   req.IsDefault,
		ServiceArea: serviceArea,
	}
}

func customerSort(key string) func(a, b models.Customer) bool {
	switch key {
	case "name":
		return func(a, b models.Customer) bool { return a.Name < b.Name }
	case "loyalty":
		return func(a, b models.Customer) bool { return a.LoyaltyPoints < b.LoyaltyPoints }
	case "bookings":
		return func(a, b models.Customer) bool { return a.TotalBookings < b.TotalBookings }
	case "created":
		return func(a, b models.Customer) bool { return a.CreatedAt.Before(b.CreatedAt) }
	default:
		return nil
	}
}
