package registry

import (
	"encoding/json"
	"fmt"
	"os"
)

// BuiltinSeed returns the stock Mergington High School activity catalog.
// Each call returns a fresh copy, so test harnesses can reset freely.
func BuiltinSeed() map[string]Activity {
	return map[string]Activity{
		"Chess Club": {
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		"Programming Class": {
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		"Gym Class": {
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
		"Basketball Team": {
			Description:     "Practice drills and compete in inter-school basketball games",
			Schedule:        "Tuesdays and Thursdays, 4:00 PM - 6:00 PM",
			MaxParticipants: 15,
			Participants:    []string{"james@mergington.edu", "lucas@mergington.edu"},
		},
		"Swimming Club": {
			Description:     "Develop swimming techniques and participate in swim meets",
			Schedule:        "Mondays and Wednesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 25,
			Participants:    []string{"ava@mergington.edu", "mia@mergington.edu"},
		},
		"Art Studio": {
			Description:     "Explore painting, drawing, and mixed media art techniques",
			Schedule:        "Wednesdays, 3:30 PM - 5:30 PM",
			MaxParticipants: 18,
			Participants:    []string{"isabella@mergington.edu", "charlotte@mergington.edu"},
		},
		"Drama Club": {
			Description:     "Acting, improvisation, and theater production performances",
			Schedule:        "Tuesdays and Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 24,
			Participants:    []string{"ethan@mergington.edu", "amelia@mergington.edu"},
		},
		"Science Olympiad": {
			Description:     "Team-based science competitions covering biology, chemistry, and physics",
			Schedule:        "Thursdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 16,
			Participants:    []string{"william@mergington.edu", "harper@mergington.edu"},
		},
		"Debate Team": {
			Description:     "Develop critical thinking and public speaking through competitive debates",
			Schedule:        "Mondays and Wednesdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 14,
			Participants:    []string{"benjamin@mergington.edu", "evelyn@mergington.edu"},
		},
	}
}

// LoadSeedFile reads an activity catalog from a JSON file shaped like the
// GET /activities response. Schools can override the stock catalog without
// rebuilding; the file is read once at startup.
func LoadSeedFile(path string) (map[string]Activity, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var seed map[string]Activity
	if err := json.Unmarshal(b, &seed); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	if len(seed) == 0 {
		return nil, fmt.Errorf("seed file %s contains no activities", path)
	}
	for name, a := range seed {
		if err := validateSeedActivity(name, a); err != nil {
			return nil, err
		}
	}
	return seed, nil
}

func validateSeedActivity(name string, a Activity) error {
	if name == "" {
		return fmt.Errorf("seed activity with empty name")
	}
	if a.MaxParticipants <= 0 {
		return fmt.Errorf("seed activity %q: max_participants must be positive, got %d", name, a.MaxParticipants)
	}
	if len(a.Participants) > a.MaxParticipants {
		return fmt.Errorf("seed activity %q: %d participants exceeds capacity %d", name, len(a.Participants), a.MaxParticipants)
	}
	seen := make(map[string]struct{}, len(a.Participants))
	for _, p := range a.Participants {
		if p == "" {
			return fmt.Errorf("seed activity %q: empty participant email", name)
		}
		if _, dup := seen[p]; dup {
			return fmt.Errorf("seed activity %q: duplicate participant %s", name, p)
		}
		seen[p] = struct{}{}
	}
	return nil
}
