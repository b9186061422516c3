package airquality

import "fmt"

// SafeImpact is the impact text for a pollutant at or below its ideal value.
const SafeImpact = "Safe for most individuals"

// UnknownLevel labels an AQI outside the 1-5 scale.
const UnknownLevel = "Unknown"

// Reference describes a pollutant's display name, ideal threshold and known
// health effects.
type Reference struct {
	Pollutant    Pollutant `json:"pollutant"`
	Name         string    `json:"name"`
	Ideal        float64   `json:"ideal"` // µg/m³
	HealthEffect string    `json:"healthEffect"`
}

// Category describes one AQI level.
type Category struct {
	Level       int    `json:"level"`
	Label       string `json:"label"`
	Range       string `json:"range"`
	Description string `json:"description"`
	HealthInfo  string `json:"healthInfo"`
}

var idealValues = map[Pollutant]float64{
	PollutantPM25: 15,
	PollutantPM10: 50,
	PollutantNO2:  40,
	PollutantCO:   4400,
	PollutantO3:   100,
	PollutantSO2:  20,
	PollutantNH3:  25,
}

var healthEffects = map[Pollutant]string{
	PollutantPM25: "Lung/eye irritation, cancer risk, asthma trigger",
	PollutantPM10: "Coughing, dryness, lung damage",
	PollutantNO2:  "Inflammation, respiratory infections, asthma",
	PollutantCO:   "Headaches, dizziness, cardiovascular issues",
	PollutantO3:   "Chest pain, throat irritation, coughing",
	PollutantSO2:  "Redness, wheezing, respiratory risk",
	PollutantNH3:  "Eye irritation, skin burns, lung damage",
}

var displayNames = map[Pollutant]string{
	PollutantPM25: "Particulate Matter ≤ 2.5µm (PM2.5)",
	PollutantPM10: "Particulate Matter ≤ 10µm (PM10)",
	PollutantNO2:  "Nitrogen Dioxide (NO₂)",
	PollutantCO:   "Carbon Monoxide (CO)",
	PollutantO3:   "Ozone (O₃)",
	PollutantSO2:  "Sulfur Dioxide (SO₂)",
	PollutantNH3:  "Ammonia (NH₃)",
}

var levelLabels = map[int]string{
	1: "Good 😊",
	2: "Fair 🙂",
	3: "Moderate 😐",
	4: "Poor 🤷",
	5: "Very Poor 😱",
}

var categories = map[int]Category{
	1: {
		Level:       1,
		Label:       "Good",
		Range:       "0–50",
		Description: "Air quality is considered satisfactory.",
		HealthInfo:  "No health problems. Ideal for everyone including sensitive groups.",
	},
	2: {
		Level:       2,
		Label:       "Fair",
		Range:       "51–100",
		Description: "Acceptable air quality.",
		HealthInfo:  "Minor irritation possible in very sensitive individuals.",
	},
	3: {
		Level:       3,
		Label:       "Moderate",
		Range:       "101–150",
		Description: "May be unhealthy for sensitive groups.",
		HealthInfo:  "Irritation, redness, and dryness in eyes/skin; possible respiratory infections.",
	},
	4: {
		Level:       4,
		Label:       "Poor",
		Range:       "151–200",
		Description: "Unhealthy for the general public.",
		HealthInfo:  "Respiratory and cardiovascular issues likely.",
	},
	5: {
		Level:       5,
		Label:       "Very Poor",
		Range:       "201–300+",
		Description: "Very unhealthy air quality.",
		HealthInfo:  "Severe health risks — avoid outdoor exposure.",
	},
}

// Lookup returns the reference entry for p.
func Lookup(p Pollutant) (Reference, bool) {
	ideal, ok := idealValues[p]
	if !ok {
		return Reference{}, false
	}
	return Reference{
		Pollutant:    p,
		Name:         displayNames[p],
		Ideal:        ideal,
		HealthEffect: healthEffects[p],
	}, true
}

// References returns the reference entries of all pollutants in declared order.
func References() []Reference {
	refs := make([]Reference, 0, len(declaredOrder))
	for _, p := range declaredOrder {
		ref, _ := Lookup(p)
		refs = append(refs, ref)
	}
	return refs
}

// CategoryInfo returns the AQI category for level. Only levels 1-5 are defined.
func CategoryInfo(level int) (Category, bool) {
	c, ok := categories[level]
	return c, ok
}

// Categories returns the five AQI categories in ascending order.
func Categories() []Category {
	out := make([]Category, 0, len(categories))
	for level := 1; level <= len(categories); level++ {
		out = append(out, categories[level])
	}
	return out
}

// LevelLabel returns the short label for an AQI level, or UnknownLevel.
func LevelLabel(level int) string {
	if label, ok := levelLabels[level]; ok {
		return label
	}
	return UnknownLevel
}

// ValidateReference checks that every pollutant is present in every
// reference table. A failure here is a build defect and should stop startup.
func ValidateReference() error {
	for _, p := range declaredOrder {
		if _, ok := idealValues[p]; !ok {
			return fmt.Errorf("%w: %s has no ideal value", ErrInvalidReference, p)
		}
		if _, ok := healthEffects[p]; !ok {
			return fmt.Errorf("%w: %s has no health effect", ErrInvalidReference, p)
		}
		if _, ok := displayNames[p]; !ok {
			return fmt.Errorf("%w: %s has no display name", ErrInvalidReference, p)
		}
	}
	if len(idealValues) != len(declaredOrder) ||
		len(healthEffects) != len(declaredOrder) ||
		len(displayNames) != len(declaredOrder) {
		return fmt.Errorf("%w: tables contain undeclared pollutants", ErrInvalidReference)
	}
	for level := 1; level <= 5; level++ {
		if _, ok := categories[level]; !ok {
			return fmt.Errorf("%w: AQI level %d has no category", ErrInvalidReference, level)
		}
		if _, ok := levelLabels[level]; !ok {
			return fmt.Errorf("%w: AQI level %d has no label", ErrInvalidReference, level)
		}
	}
	return nil
}
