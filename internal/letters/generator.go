package letters

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/KirkDiggler/initials/internal/models"
)

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// maxRepairAttempts bounds the duplicate-pair repair loop for one row.
// Past the cap the duplicate is accepted rather than failing generation.
const maxRepairAttempts = 100

// maxConfiguredRedraws is how many times the repair loop retries a side's
// configured draw before switching to uniformly random letters. Repetitive
// custom text or a near-degenerate distribution can cycle through the same
// few pairs forever without this cutover.
const maxConfiguredRedraws = 10

// Direction selects how one side's letters are derived across the 26 rows
type Direction string

const (
	// DirectionAToZ walks the alphabet forward, one letter per row
	DirectionAToZ Direction = "a_to_z"

	// DirectionZToA walks the alphabet backward, one letter per row
	DirectionZToA Direction = "z_to_a"

	// DirectionUniqueRandom uses a shuffled permutation of A..Z, each letter once
	DirectionUniqueRandom Direction = "unique_random"

	// DirectionWeighted draws per row from a categorical distribution; repeats allowed
	DirectionWeighted Direction = "weighted"

	// DirectionCustomText takes letters from user-supplied text in order
	DirectionCustomText Direction = "custom_text"
)

// Errors returned for invalid side configurations
var (
	ErrNilSideConfig    = errors.New("side config cannot be nil")
	ErrMissingWeights   = errors.New("weighted direction requires a distribution")
	ErrBadWeightSum     = errors.New("distribution weights must sum to a positive value")
	ErrEmptyCustomText  = errors.New("custom text contains no letters")
	ErrUnknownDirection = errors.New("unknown direction")
)

// SideConfig describes letter derivation for one initial position
type SideConfig struct {
	// Direction selects the derivation pattern
	Direction Direction

	// Weights is the categorical distribution for DirectionWeighted
	Weights *Weights

	// CustomText is the source text for DirectionCustomText
	CustomText string
}

func (c *SideConfig) validate() error {
	if c == nil {
		return ErrNilSideConfig
	}

	switch c.Direction {
	case DirectionAToZ, DirectionZToA, DirectionUniqueRandom:
		return nil
	case DirectionWeighted:
		if c.Weights == nil {
			return ErrMissingWeights
		}
		if c.Weights.Sum() <= 0 {
			return ErrBadWeightSum
		}
		return nil
	case DirectionCustomText:
		if len(extractLetters(c.CustomText)) == 0 {
			return ErrEmptyCustomText
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDirection, c.Direction)
	}
}

// repairable reports whether the side participates in the duplicate-pair
// repair loop. Sequential and unique-random sides never collide with
// themselves by construction.
func (c *SideConfig) repairable() bool {
	return c.Direction == DirectionWeighted || c.Direction == DirectionCustomText
}

// Generator produces row prompts from a pair of side configurations
type Generator struct {
	random *rand.Rand
}

// Config for the generator
type Config struct {
	// Optional seed for testing
	Seed int64
}

// New creates a new letter-pair generator
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

// GeneratePrompts produces the 26 ordered letter pairs for a game. Pairs
// are unique across rows except when the repair cap is exhausted.
func (g *Generator) GeneratePrompts(first, second *SideConfig) ([]models.RowPrompt, error) {
	if err := first.validate(); err != nil {
		return nil, fmt.Errorf("first initial: %w", err)
	}

	if err := second.validate(); err != nil {
		return nil, fmt.Errorf("second initial: %w", err)
	}

	firstSide := g.newSide(first)
	secondSide := g.newSide(second)
	canRepair := first.repairable() || second.repairable()

	used := make(map[string]bool, models.NumRows)
	prompts := make([]models.RowPrompt, 0, models.NumRows)

	for row := 0; row < models.NumRows; row++ {
		pair := string(firstSide.next(g, row)) + string(secondSide.next(g, row))

		for attempts := 0; used[pair] && canRepair && attempts < maxRepairAttempts; attempts++ {
			pair = string(firstSide.redraw(g, row, attempts)) + string(secondSide.redraw(g, row, attempts))
		}

		used[pair] = true
		prompts = append(prompts, models.RowPrompt{
			RowIndex:     row,
			FirstLetter:  pair[:1],
			SecondLetter: pair[1:],
		})
	}

	return prompts, nil
}

// sideState carries the per-generation cursor state for one side
type sideState struct {
	cfg    *SideConfig
	perm   []byte
	custom []byte
	cursor int
}

func (g *Generator) newSide(cfg *SideConfig) *sideState {
	state := &sideState{cfg: cfg}

	switch cfg.Direction {
	case DirectionUniqueRandom:
		state.perm = g.shuffledAlphabet()
	case DirectionCustomText:
		state.custom = extractLetters(cfg.CustomText)
	}

	return state
}

// next derives the side's letter for a row. Weighted sides draw fresh on
// every call and custom sides consume one extracted character per call.
func (s *sideState) next(g *Generator, row int) byte {
	switch s.cfg.Direction {
	case DirectionAToZ:
		return alphabet[row%26]
	case DirectionZToA:
		return alphabet[25-(row%26)]
	case DirectionUniqueRandom:
		return s.perm[row%26]
	case DirectionWeighted:
		return g.weightedLetter(s.cfg.Weights)
	case DirectionCustomText:
		if s.cursor < len(s.custom) {
			letter := s.custom[s.cursor]
			s.cursor++
			return letter
		}
		return g.randomLetter()
	}
	return 'A'
}

// redraw produces a replacement letter while repairing a duplicate pair.
// Fixed-direction sides always restate the same letter for a row. A
// repairable side retries its configured draw a few times, then falls back
// to uniformly random letters so two sides stuck on the same short cycle
// can still break apart.
func (s *sideState) redraw(g *Generator, row, attempts int) byte {
	if !s.cfg.repairable() {
		return s.next(g, row)
	}

	if attempts >= maxConfiguredRedraws {
		return g.randomLetter()
	}

	return s.next(g, row)
}

// shuffledAlphabet returns a Fisher-Yates permutation of A..Z.
func (g *Generator) shuffledAlphabet() []byte {
	perm := []byte(alphabet)
	for i := len(perm) - 1; i > 0; i-- {
		j := g.random.Intn(i + 1)
		perm[i], perm[j] = perm[j], perm[i]
	}
	return perm
}

// weightedLetter samples one letter by cumulative probability. The draw is
// scaled by the distribution's total mass, so tables transcribed from
// census data keep their relative frequencies even when rounding leaves
// them short of summing to 1. The 'A' fallback only covers floating point
// drift at the very top of the range.
func (g *Generator) weightedLetter(weights *Weights) byte {
	u := g.random.Float64() * weights.Sum()

	var cumulative float64
	for i, p := range weights {
		cumulative += p
		if u < cumulative {
			return alphabet[i]
		}
	}

	return 'A'
}

// randomLetter returns a uniformly random letter A..Z.
func (g *Generator) randomLetter() byte {
	return alphabet[g.random.Intn(26)]
}

// extractLetters strips text down to its ASCII letters, uppercased.
func extractLetters(text string) []byte {
	letters := make([]byte, 0, len(text))
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c >= 'A' && c <= 'Z':
			letters = append(letters, c)
		case c >= 'a' && c <= 'z':
			letters = append(letters, c-'a'+'A')
		}
	}
	return letters
}
