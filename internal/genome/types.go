package genome

import "github.com/danielpatrickdp/taste-trainer/go-trainer/internal/pool"

// #region archetype

// Archetype identifies one taste profile with the engine's confidence in it.
type Archetype struct {
	Designation string  `json:"designation"`
	Glyph       string  `json:"glyph"`
	Confidence  float64 `json:"confidence"` // 0..1
}

// #endregion archetype

// #region keywords

// Keywords holds the engine's weighted keyword aggregates per dimension.
// Missing maps are nil; the pool builder treats nil as "no derived options".
// Defined in the pool package so pool does not depend on genome; aliased
// here to keep the engine-facing name.
type Keywords = pool.Keywords

// #endregion keywords

// #region genome

// Genome is the engine's derived view of a profile's taste.
type Genome struct {
	Archetype struct {
		Primary      Archetype          `json:"primary"`
		Secondary    *Archetype         `json:"secondary,omitempty"`
		Distribution map[string]float64 `json:"distribution"`
	} `json:"archetype"`
	Keywords Keywords `json:"keywords,omitempty"`
}

// Snapshot is the read-only genome state this subsystem consumes.
type Snapshot struct {
	HasGenome bool    `json:"hasGenome"`
	Genome    *Genome `json:"genome,omitempty"`
}

// PrimaryDesignation returns the primary designation, or "" before the
// engine has computed a genome.
func (s Snapshot) PrimaryDesignation() string {
	if !s.HasGenome || s.Genome == nil {
		return ""
	}
	return s.Genome.Archetype.Primary.Designation
}

// PrimaryConfidence returns the primary confidence, or 0 before the engine
// has computed a genome.
func (s Snapshot) PrimaryConfidence() float64 {
	if !s.HasGenome || s.Genome == nil {
		return 0
	}
	return s.Genome.Archetype.Primary.Confidence
}

// KeywordAggregates returns the keyword maps, zero-valued when absent.
func (s Snapshot) KeywordAggregates() Keywords {
	if !s.HasGenome || s.Genome == nil {
		return Keywords{}
	}
	return s.Genome.Keywords
}

// #endregion genome

// #region catalog

// ArchetypeInfo is the static descriptive metadata for one designation.
type ArchetypeInfo struct {
	Title        string `json:"title"`
	Essence      string `json:"essence"`
	CreativeMode string `json:"creativeMode"`
	Shadow       string `json:"shadow"`
}

// ArchetypeCatalog maps designation → descriptive metadata.
type ArchetypeCatalog struct {
	Archetypes map[string]ArchetypeInfo `json:"archetypes"`
}

// #endregion catalog

// #region gamification

// Gamification is display-only progress data; the scorer never reads it.
type Gamification struct {
	Tier            string   `json:"tier"`
	XP              int      `json:"xp"`
	SignalCount     int      `json:"signalCount"`
	Achievements    []string `json:"achievements"`
	AllAchievements []string `json:"allAchievements"`
}

// #endregion gamification
