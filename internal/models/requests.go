package models

// List parameters shared by every entity listing: page/limit plus
// entity-specific filters and a single sort key with direction.
type ListParams struct {
	Page      int    `form:"page"`
	Limit     int    `form:"limit"`
	SortBy    string `form:"sortBy"`
	SortOrder string `form:"sortOrder"`
}

type ServiceFilters struct {
	Category  string `form:"category"`
	MinPrice  *int   `form:"minPrice"`
	MaxPrice  *int   `form:"maxPrice"`
	ACType    string `form:"acType"`
	Emergency *bool  `form:"emergency"`
	Search    string `form:"q"`
}

type CustomerFilters struct {
	Type     string `form:"type"`
	Area     string `form:"area"`
	HasEmail *bool  `form:"hasEmail"`
	Search   string `form:"q"`
	Tier     string `form:"tier"`
}

type TechnicianFilters struct {
	Specialization     string   `form:"specialization"`
	Areas              []string `form:"area"`
	Available          *bool    `form:"available"`
	EmergencyAvailable *bool    `form:"emergencyAvailable"`
	MinRating          *float64 `form:"minRating"`
	MinExperience      *int     `form:"minExperience"`
}

type TestimonialFilters struct {
	Rating    *int   `form:"rating"`
	MinRating *int   `form:"minRating"`
	Service   string `form:"service"`
	Area      string `form:"area"`
	Verified  *bool  `form:"verified"`
	From      string `form:"from"`
	To        string `form:"to"`
}

type BookingFilters struct {
	Status   string `form:"status"`
	Priority string `form:"priority"`
	Phone    string `form:"phone"`
	Area     string `form:"area"`
	From     string `form:"from"`
	To       string `form:"to"`
}

type CustomerInput struct {
	Name           string `json:"name" validate:"required"`
	Phone          string `json:"phone" validate:"required"`
	Email          string `json:"email,omitempty" validate:"omitempty,email"`
	AlternatePhone string `json:"alternate_phone,omitempty"`
}

type CreateCustomerRequest struct {
	CustomerInput
	Type    CustomerType `json:"type" validate:"omitempty,oneof=residential commercial"`
	Address AddressInput `json:"address" validate:"required"`
}

type UpdateCustomerRequest struct {
	Name           string `json:"name,omitempty"`
	Email          string `json:"email,omitempty" validate:"omitempty,email"`
	AlternatePhone string `json:"alternate_phone,omitempty"`
}

type AddressInput struct {
	Type        string   `json:"type" validate:"omitempty,oneof=home office other"`
	Street      string   `json:"street" validate:"required"`
	Area        string   `json:"area" validate:"required"`
	City        string   `json:"city"`
	State       string   `json:"state"`
	Pincode     string   `json:"pincode" validate:"required"`
	Landmarks   []string `json:"landmarks,omitempty"`
	IsDefault   bool     `json:"is_default"`
	ServiceArea string   `json:"service_area"`
}

type CreateBookingRequest struct {
	ServiceID         string        `json:"service_id" validate:"required"`
	Customer          CustomerInput `json:"customer" validate:"required"`
	PreferredDate     string        `json:"preferred_date" validate:"required"`
	PreferredTimeSlot TimeSlot      `json:"preferred_time_slot" validate:"required"`
	ACDetails         ACDetails     `json:"ac_details"`
	Address           AddressInput  `json:"address" validate:"required"`
	Urgency           string        `json:"urgency" validate:"omitempty,oneof=normal urgent emergency"`
	Notes             string        `json:"notes,omitempty"`
	Source            string        `json:"source,omitempty"`
}

type UpdateStatusRequest struct {
	Status BookingStatus `json:"status" validate:"required,oneof=scheduled confirmed in-progress completed cancelled rescheduled"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason" validate:"required"`
}

type RescheduleBookingRequest struct {
	Date     string   `json:"date" validate:"required"`
	TimeSlot TimeSlot `json:"time_slot" validate:"required"`
	Reason   string   `json:"reason" validate:"required"`
}

type CreateTestimonialRequest struct {
	CustomerName string `json:"customer_name" validate:"required"`
	Area         string `json:"area"`
	ServiceName  string `json:"service_name"`
	Rating       int    `json:"rating" validate:"required"`
	Comment      string `json:"comment" validate:"required"`
	Image        string `json:"image,omitempty"`
	// Accepted but ignored: new testimonials are always unverified.
	Verified bool `json:"verified,omitempty"`
}

type TechnicianAvailabilityRequest struct {
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

type AvailabilityQuery struct {
	Date        string `form:"date" validate:"required"`
	Area        string `form:"area" validate:"required"`
	Emergency   bool   `form:"emergency"`
	DurationMin int    `form:"duration"`
}
