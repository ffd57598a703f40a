package registry

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mergington/activities/internal/domain"
)

// SeedActivities returns the built-in activity catalog the registry starts
// with. Each call returns a fresh map.
func SeedActivities() map[string]domain.Activity {
	return map[string]domain.Activity{
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
		"Basketball": {
			Description:     "Practice basketball skills and play friendly matches",
			Schedule:        "Wednesdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 15,
			Participants:    []string{"james@mergington.edu", "amelia@mergington.edu"},
		},
		"Tennis Club": {
			Description:     "Learn tennis fundamentals and compete in doubles matches",
			Schedule:        "Thursdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 10,
			Participants:    []string{"benjamin@mergington.edu", "charlotte@mergington.edu"},
		},
		"Art Club": {
			Description:     "Explore painting, drawing, and other visual arts",
			Schedule:        "Tuesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 15,
			Participants:    []string{"ava@mergington.edu", "mia@mergington.edu"},
		},
		"Drama Club": {
			Description:     "Act, direct, and produce school theater performances",
			Schedule:        "Mondays and Wednesdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"ella@mergington.edu", "noah@mergington.edu"},
		},
	}
}

// LoadSeedFile reads an activity catalog from a JSON file keyed by activity
// name. Activities with a null participant list get an empty one so every
// record serializes with all four fields.
func LoadSeedFile(path string) (map[string]domain.Activity, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var seed map[string]domain.Activity
	if err := json.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}
	if len(seed) == 0 {
		return nil, fmt.Errorf("seed file %s contains no activities", path)
	}

	for name, a := range seed {
		if a.Participants == nil {
			a.Participants = []string{}
			seed[name] = a
		}
	}
	return seed, nil
}
