package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/danielpatrickdp/taste-trainer/go-trainer/internal/genome"
)

// #region fixture

// Pick is one recorded user action against a drawn card. Best and Worst are
// slot indices into the card (0..3) so fixtures survive catalog reordering
// as long as the seed is fixed.
type Pick struct {
	Action string `json:"action"` // "rank" | "skip"
	Best   int    `json:"best,omitempty"`
	Worst  int    `json:"worst,omitempty"`
}

// Fixture is a recorded training session. Replaying it against the same
// catalog reproduces the same card contents, signals, and scores.
type Fixture struct {
	Seed       int64           `json:"seed"`
	Profile    string          `json:"profile"`
	Primary    string          `json:"primary"`
	Confidence float64         `json:"confidence"`
	Keywords   genome.Keywords `json:"keywords,omitempty"`
	Picks      []Pick          `json:"picks"`
}

// #endregion fixture

// #region load

// LoadFixture reads a fixture from a JSON file and validates its picks.
func LoadFixture(path string) (Fixture, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Fixture{}, fmt.Errorf("read fixture: %w", err)
	}
	var fx Fixture
	if err := json.Unmarshal(raw, &fx); err != nil {
		return Fixture{}, fmt.Errorf("parse fixture: %w", err)
	}
	for i, p := range fx.Picks {
		switch p.Action {
		case "skip":
		case "rank":
			if p.Best < 0 || p.Best > 3 || p.Worst < 0 || p.Worst > 3 {
				return Fixture{}, fmt.Errorf("pick %d: slot indices must be 0..3", i)
			}
			if p.Best == p.Worst {
				return Fixture{}, fmt.Errorf("pick %d: best and worst slots must differ", i)
			}
		default:
			return Fixture{}, fmt.Errorf("pick %d: unknown action %q", i, p.Action)
		}
	}
	return fx, nil
}

// #endregion load
