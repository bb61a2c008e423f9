package service

import (
	"sort"

	"github.com/coolcare_patna/backend/internal/models"
	"github.com/coolcare_patna/backend/internal/query"
)

type AssignmentResult struct {
	TechnicianID string
	Assigned     bool
	Candidates   []models.Technician
	ReasonCode   string
	ReasonText   string
}

// FilterEligibleTechnicians narrows the pool to technicians who
// specialize in the category, cover the area (case-insensitive), are
// marked available and, for emergencies, also emergency-available.
func FilterEligibleTechnicians(technicians []models.Technician, category models.ServiceCategory, area string, emergency bool) []models.Technician {
	out := make([]models.Technician, 0, len(technicians))
	for _, t := range technicians {
		if !t.Available {
			continue
		}
		if emergency && !t.EmergencyAvailable {
			continue
		}
		if !hasSpecialization(t.Specializations, category) {
			continue
		}
		if !query.ContainsFold(t.Areas, area) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// PickTechnician ranks candidates by rating descending with experience
// years descending as the tie-break, and returns the top pick. An
// empty candidate set yields an unassigned result, not an error. The
// pick is advisory: it reserves nothing on the technician's calendar.
func PickTechnician(technicians []models.Technician, category models.ServiceCategory, area string, emergency bool) AssignmentResult {
	eligible := FilterEligibleTechnicians(technicians, category, area, emergency)
	if len(eligible) == 0 {
		return AssignmentResult{
			ReasonCode: "NO_ELIGIBLE_TECHNICIANS",
			ReasonText: "No available technician covers this category and area",
		}
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		if eligible[i].Rating == eligible[j].Rating {
			return eligible[i].ExperienceYears > eligible[j].ExperienceYears
		}
		return eligible[i].Rating > eligible[j].Rating
	})

	return AssignmentResult{
		TechnicianID: eligible[0].ID,
		Assigned:     true,
		Candidates:   eligible,
		ReasonCode:   "ASSIGNED_BY_RANK",
		ReasonText:   "Top-rated eligible technician selected",
	}
}

func hasSpecialization(specs []models.ServiceCategory, target models.ServiceCategory) bool {
	for _, s := range specs {
		if s == target {
			return true
		}
	}
	return false
}
