package models

import "time"

type ServiceCategory string

const (
	CategoryMaintenance  ServiceCategory = "maintenance"
	CategoryRepair       ServiceCategory = "repair"
	CategoryInstallation ServiceCategory = "installation"
	CategoryCleaning     ServiceCategory = "cleaning"
	CategoryEmergency    ServiceCategory = "emergency"
)

type ACType string

const (
	ACTypeWindow   ACType = "window"
	ACTypeSplit    ACType = "split"
	ACTypeCentral  ACType = "central"
	ACTypeCassette ACType = "cassette"
	ACTypeTower    ACType = "tower"
	ACTypePortable ACType = "portable"
)

type Price struct {
	Min      int    `json:"min"`
	Max      int    `json:"max,omitempty"`
	Currency string `json:"currency"`
}

type Warranty struct {
	DurationDays int    `json:"duration_days"`
	Coverage     string `json:"coverage"`
}

type Service struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       Price           `json:"price"`
	DurationMin int             `json:"duration_min"`
	Category    ServiceCategory `json:"category"`
	Features    []string        `json:"features"`
	Emergency   bool            `json:"emergency"`
	ACTypes     []ACType        `json:"ac_types"`
	Warranty    *Warranty       `json:"warranty,omitempty"`
}

type CustomerType string

const (
	CustomerResidential CustomerType = "residential"
	CustomerCommercial  CustomerType = "commercial"
)

type Address struct {
	ID          string   `json:"id"`
	Type        string   `json:"type"`
	Street      string   `json:"street"`
	Area        string   `json:"area"`
	City        string   `json:"city"`
	State       string   `json:"state"`
	Pincode     string   `json:"pincode"`
	Landmarks   []string `json:"landmarks,omitempty"`
	IsDefault   bool     `json:"is_default"`
	ServiceArea string   `json:"service_area"`
}

type Customer struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	Phone          string       `json:"phone"`
	Email          string       `json:"email,omitempty"`
	AlternatePhone string       `json:"alternate_phone,omitempty"`
	Addresses      []Address    `json:"addresses"`
	Type           CustomerType `json:"type"`
	LoyaltyPoints  int          `json:"loyalty_points"`
	TotalBookings  int          `json:"total_bookings"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

// LoyaltyTier buckets the point balance: bronze <100, silver 100-299,
// gold 300-699, platinum >=700.
func (c Customer) LoyaltyTier() string {
	switch {
	case c.LoyaltyPoints >= 700:
		return "platinum"
	case c.LoyaltyPoints >= 300:
		return "gold"
	case c.LoyaltyPoints >= 100:
		return "silver"
	default:
		return "bronze"
	}
}

type BookingStatus string

const (
	StatusScheduled   BookingStatus = "scheduled"
	StatusConfirmed   BookingStatus = "confirmed"
	StatusInProgress  BookingStatus = "in-progress"
	StatusCompleted   BookingStatus = "completed"
	StatusCancelled   BookingStatus = "cancelled"
	StatusRescheduled BookingStatus = "rescheduled"
)

// Terminal reports whether the status admits no further transitions.
func (s BookingStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

type Priority string

const (
	PriorityLow       Priority = "low"
	PriorityMedium    Priority = "medium"
	PriorityHigh      Priority = "high"
	PriorityEmergency Priority = "emergency"
)

// DerivePriority maps the customer-facing urgency field to the internal
// scheduling priority: emergency -> emergency, urgent -> high,
// anything else -> medium.
func DerivePriority(urgency string) Priority {
	switch urgency {
	case "emergency":
		return PriorityEmergency
	case "urgent":
		return PriorityHigh
	default:
		return PriorityMedium
	}
}

type ACDetails struct {
	Brand          string   `json:"brand"`
	Model          string   `json:"model,omitempty"`
	Type           ACType   `json:"type"`
	Capacity       string   `json:"capacity"`
	AgeYears       int      `json:"age_years"`
	UnderWarranty  bool     `json:"under_warranty"`
	ReportedIssues []string `json:"reported_issues,omitempty"`
}

type Charge struct {
	Label  string `json:"label"`
	Amount int    `json:"amount"`
}

type Pricing struct {
	Estimated         int      `json:"estimated"`
	Actual            int      `json:"actual,omitempty"`
	AdditionalCharges []Charge `json:"additional_charges,omitempty"`
}

type Appointment struct {
	ID           string        `json:"id"`
	CustomerID   string        `json:"customer_id"`
	ServiceID    string        `json:"service_id"`
	ScheduledAt  time.Time     `json:"scheduled_at"`
	TimeSlot     TimeSlot      `json:"time_slot"`
	DurationMin  int           `json:"duration_min"`
	Status       BookingStatus `json:"status"`
	Priority     Priority      `json:"priority"`
	TechnicianID string        `json:"technician_id,omitempty"`
	ACDetails    ACDetails     `json:"ac_details"`
	Address      Address       `json:"address"`
	Pricing      Pricing       `json:"pricing"`
	Notes        string        `json:"notes,omitempty"`
	Source       string        `json:"source,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

type WorkingHours struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type Technician struct {
	ID                 string            `json:"id"`
	Name               string            `json:"name"`
	Phone              string            `json:"phone"`
	Email              string            `json:"email,omitempty"`
	Specializations    []ServiceCategory `json:"specializations"`
	ExperienceYears    int               `json:"experience_years"`
	Certifications     []string          `json:"certifications"`
	Rating             float64           `json:"rating"`
	CompletedJobs      int               `json:"completed_jobs"`
	Areas              []string          `json:"areas"`
	WorkingHours       WorkingHours      `json:"working_hours"`
	Available          bool              `json:"available"`
	EmergencyAvailable bool              `json:"emergency_available"`
	ProfileImage       string            `json:"profile_image,omitempty"`
}

// TeamMember is the public-facing profile shown on the team page. It is
// a separate read-only directory entity, not the operational Technician
// record.
type TeamMember struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Role            string   `json:"role"`
	ExperienceYears int      `json:"experience_years"`
	Specializations []string `json:"specializations"`
	Bio             string   `json:"bio"`
	Certifications  []string `json:"certifications"`
	Contact         string   `json:"contact"`
}

type Testimonial struct {
	ID           string    `json:"id"`
	CustomerName string    `json:"customer_name"`
	Area         string    `json:"area"`
	ServiceName  string    `json:"service_name"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	Date         time.Time `json:"date"`
	Verified     bool      `json:"verified"`
	Image        string    `json:"image,omitempty"`
}

// TimeSlot is a value type, not an independently identified entity.
type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Label string `json:"label"`
}

type SlotAvailability struct {
	Slot      TimeSlot `json:"slot"`
	Available bool     `json:"available"`
	Remaining int      `json:"remaining"`
}

type AvailabilityResult struct {
	Date              string             `json:"date"`
	Area              string             `json:"area"`
	Emergency         bool               `json:"emergency"`
	EmergencyServiced bool               `json:"emergency_serviced"`
	Slots             []SlotAvailability `json:"slots"`
	RecommendedSlots  []TimeSlot         `json:"recommended_slots"`
}

type BookingStats struct {
	Total         int            `json:"total"`
	ByStatus      map[string]int `json:"by_status"`
	ByPriority    map[string]int `json:"by_priority"`
	AverageRating float64        `json:"average_rating"`
	From          *time.Time     `json:"from,omitempty"`
	To            *time.Time     `json:"to,omitempty"`
}
