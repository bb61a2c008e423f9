package service

import (
	"testing"

	"github.com/coolcare_patna/backend/internal/models"
)

func testTechnicians() []models.Technician {
	return []models.Technician{
		{
			ID: "t1", Rating: 4.5, ExperienceYears: 10, Available: true,
			Specializations: []models.ServiceCategory{models.CategoryRepair},
			Areas:           []string{"Boring Road"},
		},
		{
			ID: "t2", Rating: 4.9, ExperienceYears: 6, Available: true, EmergencyAvailable: true,
			Specializations: []models.ServiceCategory{models.CategoryRepair, models.CategoryEmergency},
			Areas:           []string{"Boring Road", "Kankarbagh"},
		},
		{
			ID: "t3", Rating: 4.9, ExperienceYears: 12, Available: true,
			Specializations: []models.ServiceCategory{models.CategoryRepair},
			Areas:           []string{"boring road"},
		},
		{
			ID: "t4", Rating: 5.0, ExperienceYears: 15, Available: false,
			Specializations: []models.ServiceCategory{models.CategoryRepair},
			Areas:           []string{"Boring Road"},
		},
	}
}

func TestPickTechnicianTopRating(t *testing.T) {
	res := PickTechnician(testTechnicians(), models.CategoryRepair, "Boring Road", false)
	if !res.Assigned {
		t.Fatalf("expected an assignment, got %+v", res)
	}
	// t2 and t3 share the top rating; t3 has more experience.
	if res.TechnicianID != "t3" {
		t.Fatalf("expected t3 (rating tie broken by experience), got %s", res.TechnicianID)
	}
	for _, c := range res.Candidates {
		if c.Rating > 4.9 {
			t.Fatalf("unavailable technician leaked into candidates: %s", c.ID)
		}
	}
}

func TestPickTechnicianAreaCaseInsensitive(t *testing.T) {
	res := PickTechnician(testTechnicians(), models.CategoryRepair, "BORING ROAD", false)
	if !res.Assigned {
		t.Fatalf("expected area match to ignore case, got %+v", res)
	}
}

func TestPickTechnicianEmergencyNeedsFlag(t *testing.T) {
	res := PickTechnician(testTechnicians(), models.CategoryRepair, "Boring Road", true)
	if !res.Assigned || res.TechnicianID != "t2" {
		t.Fatalf("expected only the emergency-available t2, got %+v", res)
	}
}

func TestPickTechnicianUnknownCategoryUnassigned(t *testing.T) {
	res := PickTechnician(testTechnicians(), models.CategoryInstallation, "Boring Road", false)
	if res.Assigned || res.TechnicianID != "" {
		t.Fatalf("expected unassigned result, got %+v", res)
	}
	if res.ReasonCode != "NO_ELIGIBLE_TECHNICIANS" {
		t.Fatalf("expected NO_ELIGIBLE_TECHNICIANS, got %s", res.ReasonCode)
	}
}

func TestPickTechnicianUncoveredArea(t *testing.T) {
	res := PickTechnician(testTechnicians(), models.CategoryRepair, "Danapur", false)
	if res.Assigned {
		t.Fatalf("expected unassigned for uncovered area, got %+v", res)
	}
}

func TestFilterEligibleSelectedHasMaxRating(t *testing.T) {
	techs := testTechnicians()
	res := PickTechnician(techs, models.CategoryRepair, "Boring Road", false)
	eligible := FilterEligibleTechnicians(techs, models.CategoryRepair, "Boring Road", false)
	var picked models.Technician
	for _, e := range eligible {
		if e.ID == res.TechnicianID {
			picked = e
		}
	}
	for _, e := range eligible {
		if picked.Rating < e.Rating {
			t.Fatalf("picked %s rating %.1f below candidate %s rating %.1f", picked.ID, picked.Rating, e.ID, e.Rating)
		}
	}
}
