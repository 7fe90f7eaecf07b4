package engine

import "strings"

// Name fragments used by the simulated path to bucket subjects by strength.
// Matching is case-insensitive substring containment.
var strongSubjects = []string{
	"real madrid", "barcelona", "manchester city", "liverpool", "bayern",
	"lakers", "warriors", "celtics", "heat", "bucks",
}

var weakSubjects = []string{
	"tottenham", "arsenal", "chelsea", "manchester united", "psg",
	"knicks", "pistons", "magic", "hornets", "wizards",
}

// PopularSubjects returns the default subject list for the live odds board
func PopularSubjects() []string {
	return []string{
		"Real Madrid", "Barcelona", "Manchester City", "Liverpool", "Bayern Munich",
		"Lakers", "Warriors", "Celtics", "Heat", "Bucks",
		"PSG", "Chelsea", "Arsenal", "Tottenham", "Manchester United",
	}
}

// subjectStrength rates a subject in [0,1]: known strong names land in
// [0.7,0.9), known weak names in [0.2,0.4), everyone else in [0.4,0.8).
func (p *OddsProvider) subjectStrength(subject string) float64 {
	lower := strings.ToLower(subject)

	for _, strong := range strongSubjects {
		if strings.Contains(lower, strong) {
			return 0.7 + p.rng.Float64()*0.2
		}
	}
	for _, weak := range weakSubjects {
		if strings.Contains(lower, weak) {
			return 0.2 + p.rng.Float64()*0.2
		}
	}
	return 0.4 + p.rng.Float64()*0.4
}
