package pool

// #region source

// Source tags an Option's provenance.
type Source string

const (
	SourceStatic  Source = "static"  // from the comparison catalog
	SourceDerived Source = "derived" // from observed keyword aggregates
)

// #endregion source

// #region keywords

// Keywords holds the engine's weighted keyword aggregates per dimension.
// Missing maps are nil; the pool builder treats nil as "no derived options".
type Keywords struct {
	Tone   map[string]float64 `json:"tone,omitempty"`
	Hook   map[string]float64 `json:"hook,omitempty"`
	Format map[string]float64 `json:"format,omitempty"`
}

// #endregion keywords

// #region option

// Option is one prompt a card can offer. Topic is the diversity key the
// sampler uses to avoid redundant comparisons within a card and session.
// ArchetypeHint is the designation the prompt is diagnostic of ("" = none).
type Option struct {
	ID            string
	Topic         string
	Prompt        string
	ArchetypeHint string
	Source        Source
}

// #endregion option

// #region builder-config

// BuilderConfig holds tuning knobs for pool construction.
type BuilderConfig struct {
	DerivedPerDimension int // top-N keywords lifted into derived options per map
}

// DefaultBuilderConfig returns sensible defaults.
func DefaultBuilderConfig() BuilderConfig {
	return BuilderConfig{DerivedPerDimension: 3}
}

// #endregion builder-config
