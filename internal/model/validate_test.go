package model

import (
	"strings"
	"testing"
)

func validProfile() *UserProfile {
	return &UserProfile{
		ExperienceLevel: "intermediate",
		JobRole:         "backend developer",
		Interests:       []string{"machine learning", "mlops"},
		LearningStyle:   "hands-on",
		TimeCommitment:  "10 hours/week",
		Goals:           "move into an ML engineering role",
	}
}

func TestValidateProfileOK(t *testing.T) {
	if err := ValidateProfile(validProfile()); err != nil {
		t.Fatalf("expected valid profile, got %v", err)
	}
}

func TestValidateProfileMissingFields(t *testing.T) {
	p := validProfile()
	p.Goals = ""
	if err := ValidateProfile(p); err == nil {
		t.Fatal("expected error for empty goals")
	}

	p = validProfile()
	p.Interests = nil
	if err := ValidateProfile(p); err == nil {
		t.Fatal("expected error for missing interests")
	}
}

func TestValidateProfileTooLong(t *testing.T) {
	p := validProfile()
	p.Goals = strings.Repeat("g", 2001)
	if err := ValidateProfile(p); err == nil {
		t.Fatal("expected error for oversized goals")
	}
}

func TestParseInterests(t *testing.T) {
	got := ParseInterests(" nlp , , computer vision,")
	if len(got) != 2 || got[0] != "nlp" || got[1] != "computer vision" {
		t.Fatalf("unexpected interests %v", got)
	}
	if out := ParseInterests(""); out != nil {
		t.Fatalf("expected nil for empty input, got %v", out)
	}
}
