package polylla

// Settings contains the tolerances and sentinel geometry knobs used by
// the kernel Builder.
type Settings struct {
	// Tolerance is the base near-zero tolerance; a corner whose
	// interior angle collapses below it empties the kernel.
	Tolerance float64 `yaml:"tolerance"`

	// ReflexTolerance is the deliberately loose band around 180
	// degrees inside which a corner is still treated as straight by
	// the reflex scan.
	ReflexTolerance float64 `yaml:"reflex_tolerance"`

	// CollinearTolerance bounds the distance from 180 degrees under
	// which consecutive corners are collapsed into one clipping edge.
	CollinearTolerance float64 `yaml:"collinear_tolerance"`

	// DuplicateTolerance bounds the distance under which the two
	// intersections of a dual-hit splice count as the same point and
	// may swap roles to preserve orientation.
	DuplicateTolerance float64 `yaml:"duplicate_tolerance"`

	// SentinelOffset scales the outward rays used to seed the two
	// sentinel far points of an unbounded kernel chain.
	SentinelOffset float64 `yaml:"sentinel_offset"`
}

// NewSettings returns a Settings struct filled with default values.
func NewSettings() Settings {
	return Settings{
		Tolerance:          1e-6,
		ReflexTolerance:    1e-2,
		CollinearTolerance: 1e-4,
		DuplicateTolerance: 1e-4,
		SentinelOffset:     100,
	}
}
