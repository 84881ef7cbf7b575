// Package schedule holds the built-in weekly program seeded for every new
// user. Users copy or replace it with their own templates later.
package schedule

import "github.com/granger49/Protocol/pkg/entity"

const (
	DefaultTemplateName        = "Athletic Longevity v1"
	DefaultTemplateDescription = "Full-body athletic longevity program with Achilles recovery focus. Based on Peter Attia protocols."
)

// Categories lists every valid section key, in render order.
var Categories = []string{"warmup", "strength", "stability", "cardio", "mobility", "tone", "rehab", "other"}

func DefaultWeek() entity.WeekSchedule {
	return entity.WeekSchedule{
		Monday: entity.DaySchedule{
			Name: "Full Body A (Push/Lower)",
			Sections: entity.DaySections{
				Warmup:    []string{"Dynamic Leg Swings", "Hip Circles", "Bodyweight Squats", "Arm Circles", "Band Pull-Aparts"},
				Strength:  []string{"Deadlift", "Overhead Press", "Bulgarian Split Squat", "Incline Press", "Face Pulls", "Bicep Curl"},
				Stability: []string{"Clamshells", "Fire Hydrants", "Single-Leg RDL"},
				Cardio:    []string{"Zone 2 Rowing"},
				Mobility:  []string{"90/90 Hip Switches", "World's Greatest Stretch"},
				Tone:      []string{"Foam Roll - Full Body"},
				Rehab:     []string{"Achilles Isometric Holds", "Achilles Eccentric Lowers", "Ankle Circles"},
				Other:     []entity.OtherItem{{Name: "Steam", Duration: "15 min", Type: "recovery"}},
			},
		},
		Tuesday: entity.DaySchedule{
			Name: "Recovery & Stability",
			Sections: entity.DaySections{
				Warmup:    []string{},
				Strength:  []string{},
				Stability: []string{"Dead Bug", "Side Plank", "Bird Dog", "Pallof Press"},
				Cardio:    []string{"Basketball (if scheduled)"},
				Mobility:  []string{"Thread the Needle", "Doorway Pec Stretch", "Cat-Cow"},
				Tone:      []string{"Lacrosse Ball - Feet"},
				Rehab:     []string{"Achilles Isometric Holds", "Ankle Dorsiflexion", "Ankle Circles"},
				Other:     []entity.OtherItem{},
			},
		},
		Wednesday: entity.DaySchedule{
			Name: "VO2 Max Day",
			Sections: entity.DaySections{
				Warmup:    []string{"Arm Circles", "Bodyweight Squats", "Hip Circles"},
				Strength:  []string{},
				Stability: []string{},
				Cardio:    []string{"Basketball (if scheduled)", "Norwegian 4x4 (if no basketball)"},
				Mobility:  []string{"World's Greatest Stretch", "Thoracic Extension Foam Roll", "Cat-Cow"},
				Tone:      []string{},
				Rehab:     []string{"Achilles Isometric Holds", "Ankle Circles"},
				Other:     []entity.OtherItem{},
			},
		},
		Thursday: entity.DaySchedule{
			Name: "Full Body B (Pull/Lower)",
			Sections: entity.DaySections{
				Warmup:    []string{"Band Pull-Aparts", "Bodyweight Squats", "Scapular Push-Ups", "Hip Circles"},
				Strength:  []string{"Back Squat", "Bent-Over Row", "Romanian Deadlift", "Floor Press", "Hammer Curl"},
				Stability: []string{"Pallof Press", "Suitcase Carry", "Copenhagen Plank"},
				Cardio:    []string{"Zone 2 Peloton"},
				Mobility:  []string{"90/90 Hip Switches", "Thread the Needle"},
				Tone:      []string{"Band Shoulder CARs", "Ankle Rockers"},
				Rehab:     []string{"Achilles Isometric Holds", "Achilles Eccentric Lowers", "Ankle Circles"},
				Other:     []entity.OtherItem{{Name: "Steam", Duration: "15 min", Type: "recovery"}},
			},
		},
		Friday: entity.DaySchedule{
			Name: "Accessory & Hypertrophy",
			Sections: entity.DaySections{
				Warmup:    []string{"Arm Circles", "Scapular Push-Ups"},
				Strength:  []string{"Tempo Push-Ups", "DB Chest Fly", "Concentration Curl", "Standing Calf Raise", "KB Swing"},
				Stability: []string{"Dead Bug", "Bosu Ball Single-Leg"},
				Cardio:    []string{},
				Mobility:  []string{"Doorway Pec Stretch"},
				Tone:      []string{"Foam Roll - Full Body"},
				Rehab:     []string{"Achilles Isometric Holds", "Achilles Eccentric Lowers", "Ankle Dorsiflexion", "Ankle Circles"},
				Other:     []entity.OtherItem{{Name: "Steam", Duration: "15 min", Type: "recovery"}},
			},
		},
		Saturday: entity.DaySchedule{
			Name: "Active Recovery",
			Sections: entity.DaySections{
				Warmup:    []string{},
				Strength:  []string{},
				Stability: []string{},
				Cardio:    []string{"Rucking"},
				Mobility:  []string{"World's Greatest Stretch", "90/90 Hip Switches", "Thoracic Extension Foam Roll"},
				Tone:      []string{"Lacrosse Ball - Feet"},
				Rehab:     []string{"Ankle Circles"},
				Other:     []entity.OtherItem{},
			},
		},
		Sunday: entity.DaySchedule{
			Name: "Long Cardio",
			Sections: entity.DaySections{
				Warmup:    []string{},
				Strength:  []string{},
				Stability: []string{},
				Cardio:    []string{"Basketball (if scheduled)", "Zone 2 (40-60 min choice)"},
				Mobility:  []string{"90/90 Hip Switches", "Cat-Cow"},
				Tone:      []string{},
				Rehab:     []string{"Achilles Isometric Holds", "Ankle Circles"},
				Other:     []entity.OtherItem{},
			},
		},
	}
}
