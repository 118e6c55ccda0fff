package config

// FailurePolicy decides how an enumeration-level failure ends the run
type FailurePolicy string

const (
	FailFatal FailurePolicy = "fatal" // Print the error and exit non-zero
	FailWarn  FailurePolicy = "warn"  // Print the error and exit 0
)

// Config is the root configuration structure.
// Classification thresholds are deliberately absent.
type Config struct {
	Strategy           string        `yaml:"strategy" json:"strategy"`                     // "origin" or "preserve-size"
	EnumerationFailure FailurePolicy `yaml:"enumerationFailure" json:"enumerationFailure"` // "fatal" or "warn"
	DryRun             bool          `yaml:"dryRun" json:"dryRun"`
	Summary            bool          `yaml:"summary" json:"summary"`
	Limit              int           `yaml:"limit" json:"limit"` // 0 = no limit
}
