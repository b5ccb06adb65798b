package gamecode

import (
	"math/rand"
	"time"
)

// adjectives and nouns combine into join codes like "IcyApple".
var adjectives = []string{
	"Icy", "Hot", "Red", "Blue", "Big", "Tiny", "Fast", "Slow", "Wild", "Calm",
	"Dark", "Lite", "Cool", "Warm", "Bold", "Soft", "Hard", "Rare", "Wide", "High",
	"Low", "Neat", "Odd", "Old", "New", "Raw", "Pure", "Rich", "Dull", "Loud",
	"Pink", "Gray", "Gold", "Sour", "Flat", "Deep", "Weak", "Long", "Tall", "Kind",
}

var nouns = []string{
	"Apple", "Bear", "Cloud", "Dog", "Eagle", "Fox", "Game", "Hero", "Iron", "Jade",
	"King", "Lion", "Moon", "Night", "Ocean", "Path", "Queen", "River", "Star", "Tree",
	"Unicorn", "Viper", "Wave", "Xerus", "Yacht", "Zebra", "Fire", "Wind", "Rain", "Snow",
	"Stone", "Pearl", "Flame", "Storm", "Light", "Dawn", "Dusk", "Shark", "Tiger", "Wolf",
}

// Generator produces human-friendly game join codes
type Generator struct {
	random *rand.Rand
}

// Config for the code generator
type Config struct {
	// Optional seed for testing
	Seed int64
}

// New creates a new code generator
func New(cfg *Config) *Generator {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &Generator{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Generate returns a new adjective+noun join code
func (g *Generator) Generate() string {
	adjective := adjectives[g.random.Intn(len(adjectives))]
	noun := nouns[g.random.Intn(len(nouns))]
	return adjective + noun
}
