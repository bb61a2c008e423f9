// Package db holds the in-memory data store. All state lives inside a
// Store value passed into the services; nothing is package-level and
// everything resets on process restart.
package db

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/coolcare_patna/backend/internal/models"
)

var ErrNoRows = errors.New("db: no rows")

type Options struct {
	SimulatedLatency bool
	LatencyMin       time.Duration
	LatencyMax       time.Duration
}

type Store struct {
	mu   sync.RWMutex
	opts Options

	services     []models.Service
	customers    []models.Customer
	appointments []models.Appointment
	technicians  []models.Technician
	team         []models.TeamMember
	testimonials []models.Testimonial
}

// New builds a store seeded with the static fixture collections.
func New(opts Options) *Store {
	s := &Store{opts: opts}
	s.services = seedServices()
	s.customers = seedCustomers()
	s.appointments = seedAppointments()
	s.technicians = seedTechnicians()
	s.team = seedTeam()
	s.testimonials = seedTestimonials()
	return s
}

func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

// Delay simulates network latency with a bounded uniform sleep. It
// honors context cancellation so abandoned callers do not pile up.
func (s *Store) Delay(ctx context.Context) error {
	if !s.opts.SimulatedLatency {
		return ctx.Err()
	}
	min, max := s.opts.LatencyMin, s.opts.LatencyMax
	if max <= min {
		max = min + time.Millisecond
	}
	d := min + time.Duration(rand.Int63n(int64(max-min)))
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

func (s *Store) Services() []models.Service {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Service, len(s.services))
	copy(out, s.services)
	return out
}

func (s *Store) FindService(id string) (models.Service, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, svc := range s.services {
		if svc.ID == id {
			return svc, true
		}
	}
	return models.Service{}, false
}

func (s *Store) Customers() []models.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Customer, len(s.customers))
	for i, c := range s.customers {
		out[i] = cloneCustomer(c)
	}
	return out
}

func (s *Store) FindCustomer(id string) (models.Customer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.customers {
		if c.ID == id {
			return cloneCustomer(c), true
		}
	}
	return models.Customer{}, false
}

func (s *Store) FindCustomerByPhone(phone string) (models.Customer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.customers {
		if c.Phone == phone {
			return cloneCustomer(c), true
		}
	}
	return models.Customer{}, false
}

func (s *Store) InsertCustomer(c models.Customer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customers = append(s.customers, cloneCustomer(c))
}

// SaveCustomer replaces the stored record with the same id.
func (s *Store) SaveCustomer(c models.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.customers {
		if s.customers[i].ID == c.ID {
			s.customers[i] = cloneCustomer(c)
			return nil
		}
	}
	return ErrNoRows
}

func (s *Store) Appointments() []models.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Appointment, len(s.appointments))
	copy(out, s.appointments)
	return out
}

func (s *Store) FindAppointment(id string) (models.Appointment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.appointments {
		if a.ID == id {
			return a, true
		}
	}
	return models.Appointment{}, false
}

func (s *Store) InsertAppointment(a models.Appointment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appointments = append(s.appointments, a)
}

func (s *Store) SaveAppointment(a models.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.appointments {
		if s.appointments[i].ID == a.ID {
			s.appointments[i] = a
			return nil
		}
	}
	return ErrNoRows
}

func (s *Store) Technicians() []models.Technician {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Technician, len(s.technicians))
	copy(out, s.technicians)
	return out
}

func (s *Store) FindTechnician(id string) (models.Technician, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.technicians {
		if t.ID == id {
			return t, true
		}
	}
	return models.Technician{}, false
}

func (s *Store) SaveTechnician(t models.Technician) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.technicians {
		if s.technicians[i].ID == t.ID {
			s.technicians[i] = t
			return nil
		}
	}
	return ErrNoRows
}

func (s *Store) Team() []models.TeamMember {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.TeamMember, len(s.team))
	copy(out, s.team)
	return out
}

func (s *Store) Testimonials() []models.Testimonial {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Testimonial, len(s.testimonials))
	copy(out, s.testimonials)
	return out
}

func (s *Store) FindTestimonial(id string) (models.Testimonial, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.testimonials {
		if t.ID == id {
			return t, true
		}
	}
	return models.Testimonial{}, false
}

func (s *Store) InsertTestimonial(t models.Testimonial) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.testimonials = append(s.testimonials, t)
}

func (s *Store) SaveTestimonial(t models.Testimonial) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.testimonials {
		if s.testimonials[i].ID == t.ID {
			s.testimonials[i] = t
			return nil
		}
	}
	return ErrNoRows
}

func (s *Store) DeleteTestimonial(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.testimonials {
		if s.testimonials[i].ID == id {
			s.testimonials = append(s.testimonials[:i], s.testimonials[i+1:]...)
			return nil
		}
	}
	return ErrNoRows
}

func cloneCustomer(c models.Customer) models.Customer {
	out := c
	out.Addresses = make([]models.Address, len(c.Addresses))
	copy(out.Addresses, c.Addresses)
	return out
}
