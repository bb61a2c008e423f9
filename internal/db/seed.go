package db

import (
	"time"

	"github.com/coolcare_patna/backend/internal/models"
)

func seedServices() []models.Service {
	return []models.Service{
		{
			ID:          "svc-basic-service",
			Name:        "Basic AC Service",
			Description: "Filter cleaning, coil wash, drain check and performance report for a single unit.",
			Price:       models.Price{Min: 499, Max: 699, Currency: "INR"},
			DurationMin: 60,
			Category:    models.CategoryMaintenance,
			Features:    []string{"Filter deep clean", "Condenser coil wash", "Drain line flush", "Cooling performance check"},
			ACTypes:     []models.ACType{models.ACTypeWindow, models.ACTypeSplit, models.ACTypeTower, models.ACTypePortable},
			Warranty:    &models.Warranty{DurationDays: 30, Coverage: "Free revisit if cooling issue recurs"},
		},
		{
			ID:          "svc-deep-clean",
			Name:        "Jet Pump Deep Cleaning",
			Description: "High pressure jet pump cleaning of indoor and outdoor units with foam wash.",
			Price:       models.Price{Min: 799, Max: 1099, Currency: "INR"},
			DurationMin: 90,
			Category:    models.CategoryCleaning,
			Features:    []string{"Jet pump wash", "Anti-bacterial foam", "Blower cleaning", "Outdoor unit wash"},
			ACTypes:     []models.ACType{models.ACTypeWindow, models.ACTypeSplit, models.ACTypeCassette},
			Warranty:    &models.Warranty{DurationDays: 45, Coverage: "Free re-clean within warranty window"},
		},
		{
			ID:          "svc-gas-refill",
			Name:        "Gas Leak Repair & Refill",
			Description: "Leak detection, brazing and full refrigerant top-up with pressure test.",
			Price:       models.Price{Min: 2499, Max: 3499, Currency: "INR"},
			DurationMin: 120,
			Category:    models.CategoryRepair,
			Features:    []string{"Leak detection", "Brazing repair", "R32/R410A refill", "Vacuum and pressure test"},
			ACTypes:     []models.ACType{models.ACTypeWindow, models.ACTypeSplit, models.ACTypeCassette, models.ACTypeTower},
			Warranty:    &models.Warranty{DurationDays: 90, Coverage: "Refill covered if same leak point fails"},
		},
		{
			ID:          "svc-pcb-repair",
			Name:        "PCB & Electrical Repair",
			Description: "Control board diagnosis and repair, capacitor and sensor replacement.",
			Price:       models.Price{Min: 1299, Max: 4999, Currency: "INR"},
			DurationMin: 120,
			Category:    models.CategoryRepair,
			Features:    []string{"PCB diagnosis", "Capacitor replacement", "Sensor calibration", "Wiring check"},
			ACTypes:     []models.ACType{models.ACTypeSplit, models.ACTypeCassette, models.ACTypeCentral},
		},
		{
			ID:          "svc-installation",
			Name:        "Split AC Installation",
			Description: "Complete installation with copper piping, wall mounting and commissioning.",
			Price:       models.Price{Min: 1499, Max: 2499, Currency: "INR"},
			DurationMin: 180,
			Category:    models.CategoryInstallation,
			Features:    []string{"Wall mounting", "Up to 3m copper piping", "Vacuum commissioning", "Demo and handover"},
			ACTypes:     []models.ACType{models.ACTypeSplit, models.ACTypeCassette},
			Warranty:    &models.Warranty{DurationDays: 180, Coverage: "Installation workmanship"},
		},
		{
			ID:          "svc-uninstall",
			Name:        "AC Uninstallation & Shifting",
			Description: "Safe gas lock, dismounting and packing for relocation within Patna.",
			Price:       models.Price{Min: 699, Max: 999, Currency: "INR"},
			DurationMin: 90,
			Category:    models.CategoryInstallation,
			Features:    []string{"Gas lock", "Safe dismounting", "Bubble wrap packing"},
			ACTypes:     []models.ACType{models.ACTypeWindow, models.ACTypeSplit},
		},
		{
			ID:          "svc-emergency",
			Name:        "Emergency Breakdown Visit",
			Description: "Same-day visit for total cooling failure, water leakage or burning smell.",
			Price:       models.Price{Min: 999, Currency: "INR"},
			DurationMin: 60,
			Category:    models.CategoryEmergency,
			Features:    []string{"2-hour response window", "Night visits", "On-the-spot minor repairs"},
			Emergency:   true,
			ACTypes:     []models.ACType{models.ACTypeWindow, models.ACTypeSplit, models.ACTypeCassette, models.ACTypeTower, models.ACTypeCentral, models.ACTypePortable},
		},
		{
			ID:          "svc-amc-gold",
			Name:        "Gold AMC Plan",
			Description: "Annual Maintenance Contract: three scheduled services a year plus priority breakdown support.",
			Price:       models.Price{Min: 2999, Max: 4499, Currency: "INR"},
			DurationMin: 60,
			Category:    models.CategoryMaintenance,
			Features:    []string{"3 services per year", "Yearly cadence", "Priority breakdown visits", "10% off spare parts"},
			ACTypes:     []models.ACType{models.ACTypeWindow, models.ACTypeSplit, models.ACTypeCassette, models.ACTypeTower},
			Warranty:    &models.Warranty{DurationDays: 365, Coverage: "All scheduled visits under contract"},
		},
	}
}

func seedCustomers() []models.Customer {
	created := time.Date(2025, 11, 12, 9, 30, 0, 0, time.UTC)
	return []models.Customer{
		{
			ID:    "cust-001",
			Name:  "Rakesh Sinha",
			Phone: "+91-9431012345",
			Email: "rakesh.sinha@example.com",
			Addresses: []models.Address{
				{
					ID: "addr-001", Type: "home", Street: "14 Boring Road", Area: "Boring Road",
					City: "Patna", State: "Bihar", Pincode: "800001",
					Landmarks: []string{"Near AN College"}, IsDefault: true, ServiceArea: "Boring Road",
				},
			},
			Type: models.CustomerResidential, LoyaltyPoints: 120, TotalBookings: 4,
			CreatedAt: created, UpdatedAt: created,
		},
		{
			ID:    "cust-002",
			Name:  "Meera Traders",
			Phone: "+91-9835067890",
			Addresses: []models.Address{
				{
					ID: "addr-002", Type: "office", Street: "2nd Floor, Maurya Tower", Area: "Fraser Road",
					City: "Patna", State: "Bihar", Pincode: "800001",
					IsDefault: true, ServiceArea: "Fraser Road",
				},
				{
					ID: "addr-003", Type: "other", Street: "Warehouse 7, Transport Nagar", Area: "Kankarbagh",
					City: "Patna", State: "Bihar", Pincode: "800020",
					IsDefault: false, ServiceArea: "Kankarbagh",
				},
			},
			Type: models.CustomerCommercial, LoyaltyPoints: 340, TotalBookings: 11,
			CreatedAt: created, UpdatedAt: created,
		},
		{
			ID:    "cust-003",
			Name:  "Anjali Verma",
			Phone: "+91-7004098765",
			Email: "anjali.v@example.com",
			Addresses: []models.Address{
				{
					ID: "addr-004", Type: "home", Street: "C-9 Patliputra Colony", Area: "Patliputra Colony",
					City: "Patna", State: "Bihar", Pincode: "800013",
					Landmarks: []string{"Opposite water tank"}, IsDefault: true, ServiceArea: "Patliputra Colony",
				},
			},
			Type: models.CustomerResidential, LoyaltyPoints: 45, TotalBookings: 1,
			CreatedAt: created, UpdatedAt: created,
		},
	}
}

func seedAppointments() []models.Appointment {
	created := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	return []models.Appointment{
		{
			ID: "apt-001", CustomerID: "cust-001", ServiceID: "svc-basic-service",
			ScheduledAt: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
			TimeSlot:    models.TimeSlot{Start: "09:00", End: "11:00", Label: "Morning"},
			DurationMin: 60, Status: models.StatusConfirmed, Priority: models.PriorityMedium,
			TechnicianID: "tech-001",
			ACDetails:    models.ACDetails{Brand: "Voltas", Type: models.ACTypeSplit, Capacity: "1.5 ton", AgeYears: 3},
			Address: models.Address{
				ID: "addr-001", Type: "home", Street: "14 Boring Road", Area: "Boring Road",
				City: "Patna", State: "Bihar", Pincode: "800001", IsDefault: true, ServiceArea: "Boring Road",
			},
			Pricing: models.Pricing{Estimated: 499}, Source: "website",
			CreatedAt: created, UpdatedAt: created,
		},
		{
			ID: "apt-002", CustomerID: "cust-002", ServiceID: "svc-gas-refill",
			ScheduledAt: time.Date(2026, 3, 12, 14, 0, 0, 0, time.UTC),
			TimeSlot:    models.TimeSlot{Start: "14:00", End: "16:00", Label: "Afternoon"},
			DurationMin: 120, Status: models.StatusScheduled, Priority: models.PriorityHigh,
			ACDetails: models.ACDetails{Brand: "Daikin", Type: models.ACTypeCassette, Capacity: "2 ton", AgeYears: 5, ReportedIssues: []string{"No cooling", "Hissing sound"}},
			Address: models.Address{
				ID: "addr-002", Type: "office", Street: "2nd Floor, Maurya Tower", Area: "Fraser Road",
				City: "Patna", State: "Bihar", Pincode: "800001", IsDefault: true, ServiceArea: "Fraser Road",
			},
			Pricing: models.Pricing{Estimated: 2499}, Notes: "Call before arrival.",
			Source:    "phone",
			CreatedAt: created, UpdatedAt: created,
		},
	}
}

func seedTechnicians() []models.Technician {
	return []models.Technician{
		{
			ID: "tech-001", Name: "Santosh Kumar", Phone: "+91-9801112233",
			Specializations: []models.ServiceCategory{models.CategoryMaintenance, models.CategoryCleaning},
			ExperienceYears: 8, Certifications: []string{"Voltas Authorized", "Blue Star Trained"},
			Rating: 4.8, CompletedJobs: 1240,
			Areas:        []string{"Boring Road", "Patliputra Colony", "Rajendra Nagar"},
			WorkingHours: models.WorkingHours{Start: "09:00", End: "19:00"},
			Available:    true, EmergencyAvailable: false,
		},
		{
			ID: "tech-002", Name: "Imran Ansari", Phone: "+91-9801445566",
			Specializations: []models.ServiceCategory{models.CategoryRepair, models.CategoryEmergency},
			ExperienceYears: 12, Certifications: []string{"Daikin Certified", "R32 Handling"},
			Rating: 4.9, CompletedJobs: 2050,
			Areas:        []string{"Fraser Road", "Boring Road", "Ashok Rajpath", "Kankarbagh"},
			WorkingHours: models.WorkingHours{Start: "08:00", End: "22:00"},
			Available:    true, EmergencyAvailable: true,
		},
		{
			ID: "tech-003", Name: "Dhiraj Yadav", Phone: "+91-9801778899",
			Specializations: []models.ServiceCategory{models.CategoryInstallation, models.CategoryRepair},
			ExperienceYears: 6, Certifications: []string{"LG Installation Partner"},
			Rating: 4.5, CompletedJobs: 760,
			Areas:        []string{"Kankarbagh", "Rajendra Nagar", "Bailey Road"},
			WorkingHours: models.WorkingHours{Start: "09:00", End: "18:00"},
			Available:    true, EmergencyAvailable: false,
		},
		{
			ID: "tech-004", Name: "Vikash Prasad", Phone: "+91-9801990011",
			Specializations: []models.ServiceCategory{models.CategoryRepair, models.CategoryEmergency, models.CategoryMaintenance},
			ExperienceYears: 9, Certifications: []string{"Hitachi Trained", "Inverter AC Specialist"},
			Rating: 4.9, CompletedJobs: 1580,
			Areas:        []string{"Bailey Road", "Danapur", "Boring Road"},
			WorkingHours: models.WorkingHours{Start: "07:00", End: "23:00"},
			Available:    true, EmergencyAvailable: true,
		},
		{
			ID: "tech-005", Name: "Rohit Raj", Phone: "+91-9801223344",
			Specializations: []models.ServiceCategory{models.CategoryCleaning, models.CategoryMaintenance},
			ExperienceYears: 3, Certifications: []string{"Jet Pump Operations"},
			Rating: 4.2, CompletedJobs: 310,
			Areas:        []string{"Patliputra Colony", "Ashok Rajpath"},
			WorkingHours: models.WorkingHours{Start: "10:00", End: "18:00"},
			Available:    false, EmergencyAvailable: false,
		},
	}
}

func seedTeam() []models.TeamMember {
	return []models.TeamMember{
		{
			ID: "team-001", Name: "Santosh Kumar", Role: "Senior Service Engineer",
			ExperienceYears: 8, Specializations: []string{"Preventive maintenance", "Deep cleaning"},
			Bio:            "Leads the maintenance crew and has serviced every major AC brand sold in Bihar.",
			Certifications: []string{"Voltas Authorized"}, Contact: "+91-9801112233",
		},
		{
			ID: "team-002", Name: "Imran Ansari", Role: "Lead Repair Technician",
			ExperienceYears: 12, Specializations: []string{"Gas charging", "Compressor replacement"},
			Bio:            "Twelve years of breakdown repair experience, on call for night emergencies.",
			Certifications: []string{"Daikin Certified", "R32 Handling"}, Contact: "+91-9801445566",
		},
		{
			ID: "team-003", Name: "Pooja Kumari", Role: "Customer Success Manager",
			ExperienceYears: 5, Specializations: []string{"AMC onboarding", "Scheduling"},
			Bio:            "Coordinates bookings and keeps AMC customers on their yearly service cadence.",
			Contact:        "+91-9801667788",
		},
		{
			ID: "team-004", Name: "Dhiraj Yadav", Role: "Installation Specialist",
			ExperienceYears: 6, Specializations: []string{"Split AC installation", "Copper piping"},
			Bio:            "Handles new installations and relocations across the city.",
			Certifications: []string{"LG Installation Partner"}, Contact: "+91-9801778899",
		},
	}
}

func seedTestimonials() []models.Testimonial {
	return []models.Testimonial{
		{
			ID: "tst-001", CustomerName: "Rakesh Sinha", Area: "Boring Road", ServiceName: "Basic AC Service",
			Rating: 5, Comment: "Technician arrived on time and the cooling is noticeably better.",
			Date: time.Date(2026, 2, 18, 0, 0, 0, 0, time.UTC), Verified: true,
		},
		{
			ID: "tst-002", CustomerName: "Sunil Gupta", Area: "Kankarbagh", ServiceName: "Gas Leak Repair & Refill",
			Rating: 4, Comment: "Leak found and fixed the same day. Slightly pricey but worth it.",
			Date: time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC), Verified: true,
		},
		{
			ID: "tst-003", CustomerName: "Meera Traders", Area: "Fraser Road", ServiceName: "Gold AMC Plan",
			Rating: 5, Comment: "All our office units are covered under AMC now. Very systematic service.",
			Date: time.Date(2026, 1, 28, 0, 0, 0, 0, time.UTC), Verified: true,
		},
		{
			ID: "tst-004", CustomerName: "Anjali Verma", Area: "Patliputra Colony", ServiceName: "Jet Pump Deep Cleaning",
			Rating: 4, Comment: "Deep cleaning removed the musty smell completely.",
			Date: time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC), Verified: false,
		},
		{
			ID: "tst-005", CustomerName: "Firoz Alam", Area: "Ashok Rajpath", ServiceName: "Emergency Breakdown Visit",
			Rating: 5, Comment: "AC died at 10 pm in May. They came within two hours. Lifesavers.",
			Date: time.Date(2025, 5, 22, 0, 0, 0, 0, time.UTC), Verified: true,
		},
		{
			ID: "tst-006", CustomerName: "Kavita Singh", Area: "Rajendra Nagar", ServiceName: "Split AC Installation",
			Rating: 3, Comment: "Installation was fine but the team arrived an hour late.",
			Date: time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC), Verified: true,
		},
		{
			ID: "tst-007", CustomerName: "Amit Jha", Area: "Bailey Road", ServiceName: "PCB & Electrical Repair",
			Rating: 4, Comment: "Board repaired instead of replaced, saved me a few thousand rupees.",
			Date: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), Verified: false,
		},
		{
			ID: "tst-008", CustomerName: "Neha Prakash", Area: "Boring Road", ServiceName: "Basic AC Service",
			Rating: 2, Comment: "Service was okay but I had to reschedule twice.",
			Date: time.Date(2025, 3, 30, 0, 0, 0, 0, time.UTC), Verified: false,
		},
	}
}
