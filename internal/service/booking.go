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

type BookingService struct {
	Store  *db.Store
	Logger zerolog.Logger
}

// Create books an appointment. The inline customer is upserted by
// phone: an existing customer with the same phone is reused, otherwise
// one is registered with the booking address as default. The priority
// is derived from the requested urgency and the estimate comes from
// the referenced service's price table, with an emergency surcharge.
func (s *BookingService) Create(ctx context.Context, req models.CreateBookingRequest) (models.Envelope[models.Appointment], error) {
	if err := s.Store.Delay(ctx); err != nil {
		return models.Envelope[models.Appointment]{}, err
	}
	if strings.TrimSpace(req.ServiceID) == "" || strings.TrimSpace(req.Customer.Phone) == "" {
		return models.Envelope[models.Appointment]{}, fmt.Errorf("%w: service_id and customer phone are required", ErrValidation)
	}
	svc, ok := s.Store.FindService(req.ServiceID)
	if !ok {
		return models.Envelope[models.Appointment]{}, fmt.Errorf("%w: unknown service %s", ErrValidation, req.ServiceID)
	}
	scheduledAt, err := time.Parse("2006-01-02", req.PreferredDate)
	if err != nil {
		return models.Envelope[models.Appointment]{}, fmt.Errorf("%w: preferred_date must be YYYY-MM-DD", ErrValidation)
	}

	now := time.Now().UTC()
	customer, exists := s.Store.FindCustomerByPhone(strings.TrimSpace(req.Customer.Phone))
	addr := buildAddress(req.Address)
	if exists {
		if !hasMatchingAddress(customer.Addresses, addr) {
			if addr.IsDefault {
				for i := range customer.Addresses {
					customer.Addresses[i].IsDefault = false
				}
			}
			customer.Addresses = append(customer.Addresses, addr)
		}
		customer.TotalBookings++
		customer.UpdatedAt = now
		if err := s.Store.SaveCustomer(customer); err != nil {
			return models.Envelope[models.Appointment]{}, err
		}
	} else {
		addr.IsDefault = true
		customer = models.Customer{
			ID:             "cust-" + uuid.NewString(),
			Name:           strings.TrimSpace(req.Customer.Name),
			Phone:          strings.TrimSpace(req.Customer.Phone),
			Email:          strings.TrimSpace(req.Customer.Email),
			AlternatePhone: strings.TrimSpace(req.Customer.AlternatePhone),
			Addresses:      []models.Address{addr},
			Type:           models.CustomerResidential,
			TotalBookings:  1,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		s.Store.InsertCustomer(customer)
	}

	priority := models.DerivePriority(req.Urgency)
	emergency := priority == models.PriorityEmergency

	estimate := svc.Price.Min
	if emergency {
		estimate += estimate * 30 / 100
	}

	pick := PickTechnician(s.Store.Technicians(), svc.Category, addr.ServiceArea, emergency)

	apt := models.Appointment{
		ID:           "apt-" + uuid.NewString(),
		CustomerID:   customer.ID,
		ServiceID:    svc.ID,
		ScheduledAt:  scheduledAt,
		TimeSlot:     req.PreferredTimeSlot,
		DurationMin:  svc.DurationMin,
		Status:       models.StatusScheduled,
		Priority:     priority,
		TechnicianID: pick.TechnicianID,
		ACDetails:    req.ACDetails,
		Address:      addr,
		Pricing:      models.Pricing{Estimated: estimate},
		Notes:        strings.TrimSpace(req.Notes),
		Source:       req.Source,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.Store.InsertAppointment(apt)

	s.Logger.Info().
		Str("appointment_id", apt.ID).
		Str("customer_id", customer.ID).
		Str("priority", string(priority)).
		Str("technician_id", pick.TechnicianID).
		Msg("booking created")

	msg := fmt.Sprintf("Booking confirmed for %s on %s (%s). Reference: %s", svc.Name, req.PreferredDate, req.PreferredTimeSlot.Label, apt.ID)
	return models.Ok(apt, msg), nil
}

func (s *BookingService) Get(ctx context.Context, id string) (models.Envelope[models.Appointment], error) {
	if err := s.Store.Delay(ctx); err != nil {
		return models.Envelope[models.Appointment]{}, err
	}
	a, ok := s.Store.FindAppointment(id)
	if !ok {
		return models.NotFound[models.Appointment](fmt.Sprintf("booking %s not found", id)), nil
	}
	return models.Ok(a, "booking retrieved"), nil
}

func (s *BookingService) List(ctx context.Context, f models.BookingFilters, p models.ListParams) (models.PaginatedEnvelope[models.Appointment], error) {
	if err := s.Store.Delay(ctx); err != nil {
		return models.PaginatedEnvelope[models.Appointment]{}, err
	}

	var customerIDs map[string]bool
	if f.Phone != "" {
		customerIDs = map[string]bool{}
		if c, ok := s.Store.FindCustomerByPhone(f.Phone); ok {
			customerIDs[c.ID] = true
		}
	}

	preds := []func(models.Appointment) bool{}
	if f.Status != "" {
		st := models.BookingStatus(strings.ToLower(f.Status))
		preds = append(preds, func(a models.Appointment) bool { return a.Status == st })
	}
	if f.Priority != "" {
		pr := models.Priority(strings.ToLower(f.Priority))
		preds = append(preds, func(a models.Appointment) bool { return a.Priority == pr })
	}
	if customerIDs != nil {
		preds = append(preds, func(a models.Appointment) bool { return customerIDs[a.CustomerID] })
	}
	if f.Area != "" {
		preds = append(preds, func(a models.Appointment) bool {
			return query.MatchAnyField(f.Area, a.Address.Area, a.Address.ServiceArea)
		})
	}
	if f.From != "" {
		from, err := time.Parse("2006-01-02", f.From)
		if err != nil {
			return models.PaginatedEnvelope[models.Appointment]{}, fmt.Errorf("%w: from must be YYYY-MM-DD", ErrValidation)
		}
		preds = append(preds, func(a models.Appointment) bool { return !a.ScheduledAt.Before(from) })
	}
	if f.To != "" {
		to, err := time.Parse("2006-01-02", f.To)
		if err != nil {
			return models.PaginatedEnvelope[models.Appointment]{}, fmt.Errorf("%w: to must be YYYY-MM-DD", ErrValidation)
		}
		preds = append(preds, func(a models.Appointment) bool { return !a.ScheduledAt.After(to.Add(24*time.Hour - time.Nanosecond)) })
	}

	less := bookingSort(p.SortBy)
	data, pg := query.Apply(s.Store.Appointments(), preds, less, strings.EqualFold(p.SortOrder, "desc"), p.Page, p.Limit)
	return models.PaginatedEnvelope[models.Appointment]{Data: data, Pagination: pg}, nil
}

// UpdateStatus overwrites the booking status. Terminal bookings
// (completed, cancelled) reject further transitions.
func (s *BookingService) UpdateStatus(ctx context.Context, id string, status models.BookingStatus) (models.Envelope[models.Appointment], error) {
	if err := s.Store.Delay(ctx); err != nil {
		return models.Envelope[models.Appointment]{}, err
	}
	a, ok := s.Store.FindAppointment(id)
	if !ok {
		return models.Envelope[models.Appointment]{}, fmt.Errorf("%w: booking %s", ErrNotFound, id)
	}
	if a.Status.Terminal() {
		return models.Envelope[models.Appointment]{}, fmt.Errorf("%w: booking %s is already %s", ErrConflict, id, a.Status)
	}
	a.Status = status
	a.UpdatedAt = time.Now().UTC()
	if err := s.Store.SaveAppointment(a); err != nil {
		return models.Envelope[models.Appointment]{}, fmt.Errorf("%w: booking %s", ErrNotFound, id)
	}
	return models.Ok(a, fmt.Sprintf("booking status set to %s", status)), nil
}

// Cancel moves the booking to cancelled and appends the reason to the
// notes. There is no structured audit trail.
func (s *BookingService) Cancel(ctx context.Context, id, reason string) (models.Envelope[models.Appointment], error) {
	if err := s.Store.Delay(ctx); err != nil {
		return models.Envelope[models.Appointment]{}, err
	}
	a, ok := s.Store.FindAppointment(id)
	if !ok {
		return models.Envelope[models.Appointment]{}, fmt.Errorf("%w: booking %s", ErrNotFound, id)
	}
	if a.Status.Terminal() {
		return models.Envelope[models.Appointment]{}, fmt.Errorf("%w: booking %s is already %s", ErrConflict, id, a.Status)
	}
	a.Status = models.StatusCancelled
	a.Notes = appendNote(a.Notes, "Cancelled: "+reason)
	a.UpdatedAt = time.Now().UTC()
	if err := s.Store.SaveAppointment(a); err != nil {
		return models.Envelope[models.Appointment]{}, fmt.Errorf("%w: booking %s", ErrNotFound, id)
	}
	return models.Ok(a, "booking cancelled"), nil
}

func (s *BookingService) Reschedule(ctx context.Context, id string, req models.RescheduleBookingRequest) (models.Envelope[models.Appointment], error) {
	if err := s.Store.Delay(ctx); err != nil {
		return models.Envelope[models.Appointment]{}, err
	}
	newDate, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return models.Envelope[models.Appointment]{}, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrValidation)
	}
	a, ok := s.Store.FindAppointment(id)
	if !ok {
		return models.Envelope[models.Appointment]{}, fmt.Errorf("%w: booking %s", ErrNotFound, id)
	}
	if a.Status.Terminal() {
		return models.Envelope[models.Appointment]{}, fmt.Errorf("%w: booking %s is already %s", ErrConflict, id, a.Status)
	}
	a.ScheduledAt = newDate
	a.TimeSlot = req.TimeSlot
	a.Status = models.StatusRescheduled
	a.Notes = appendNote(a.Notes, "Rescheduled: "+req.Reason)
	a.UpdatedAt = time.Now().UTC()
	if err := s.Store.SaveAppointment(a); err != nil {
		return models.Envelope[models.Appointment]{}, fmt.Errorf("%w: booking %s", ErrNotFound, id)
	}
	return models.Ok(a, "booking rescheduled"), nil
}

// Stats aggregates bookings by status and priority over an optional
// date-bounded window. The average rating is computed from verified
// testimonials.
func (s *BookingService) Stats(ctx context.Context, from, to *time.Time) (models.Envelope[models.BookingStats], error) {
	if err := s.Store.Delay(ctx); err != nil {
		return models.Envelope[models.BookingStats]{}, err
	}

	stats := models.BookingStats{
		ByStatus:   map[string]int{},
		ByPriority: map[string]int{},
		From:       from,
		To:         to,
	}
	for _, a := range s.Store.Appointments() {
		if from != nil && a.ScheduledAt.Before(*from) {
			continue
		}
		if to != nil && a.ScheduledAt.After(*to) {
			continue
		}
		stats.Total++
		stats.ByStatus[string(a.Status)]++
		stats.ByPriority[string(a.Priority)]++
	}

	var sum, n int
	for _, t := range s.Store.Testimonials() {
		if t.Verified {
			sum += t.Rating
			n++
		}
	}
	if n > 0 {
		stats.AverageRating = float64(sum) / float64(n)
	}

	return models.Ok(stats, "booking statistics computed"), nil
}

func appendNote(notes, entry string) string {
	if notes == "" {
		return entry
	}
	return notes + " | " + entry
}

func hasMatchingAddress(addrs []models.Address, candidate models.Address) bool {
	for _, a := range addrs {
		if strings.EqualFold(a.Street, candidate.Street) && strings.EqualFold(a.Pincode, candidate.Pincode) {
			return true
		}
	}
	return false
}

func bookingSort(key string) func(a, b models.Appointment) bool {
	switch key {
	case "scheduled":
		return func(a, b models.Appointment) bool { return a.ScheduledAt.Before(b.ScheduledAt) }
	case "created":
		return func(a, b models.Appointment) bool { return a.CreatedAt.Before(b.CreatedAt) }
	case "priority":
		rank := map[models.Priority]int{models.PriorityLow: 0, models.PriorityMedium: 1, models.PriorityHigh: 2, models.PriorityEmergency: 3}
		return func(a, b models.Appointment) bool { return rank[a.Priority] < rank[b.Priority] }
	default:
		return nil
	}
}
