package catalog

// #region entry

// Entry is one comparison prompt in the catalog.
// Archetype is the designation the prompt is diagnostic of ("" = none).
type Entry struct {
	ID        string `yaml:"id"`
	Topic     string `yaml:"topic"`
	Prompt    string `yaml:"prompt"`
	Archetype string `yaml:"archetype,omitempty"`
}

// #endregion entry

// #region designations

// Designations used by the external genome engine. Catalog hints must come
// from this set so the governance scorer can match them against the primary.
const (
	DesignationArchitect  = "A-03"
	DesignationHost       = "H-02"
	DesignationEvangelist = "E-05"
	DesignationMaverick   = "M-07"
	DesignationOracle     = "O-08"
	DesignationScholar    = "S-09"
	DesignationRenegade   = "R-10"
	DesignationCurator    = "C-12"
)

// #endregion designations
