package match

// Options is the immutable weight and threshold configuration for the
// matcher. Weights need not sum to 100: the final score is always scaled
// by 100 / (sum of weights) so scores stay comparable across
// configurations.
type Options struct {
	FirstNameWeight  int
	LastNameWeight   int
	BirthDateWeight  int
	DeathDateWeight  int
	BirthPlaceWeight int
	GenderWeight     int
	RelativesWeight  int

	// MatchThreshold is the minimum score at which a candidate counts as
	// a probable match; AutoMatchThreshold is the minimum at which a
	// caller may link without review.
	MatchThreshold     int
	AutoMatchThreshold int

	// MaxBirthYearGap is the birth-year difference beyond which
	// FindMatches excludes a candidate without running the full
	// comparison.
	MaxBirthYearGap int
}

// DefaultOptions returns the default matching configuration. The weights
// sum to 100, so raw points equal final score points.
func DefaultOptions() *Options {
	return &Options{
		FirstNameWeight:    30,
		LastNameWeight:     25,
		BirthDateWeight:    15,
		DeathDateWeight:    5,
		BirthPlaceWeight:   5,
		GenderWeight:       5,
		RelativesWeight:    15,
		MatchThreshold:     70,
		AutoMatchThreshold: 90,
		MaxBirthYearGap:    10,
	}
}

func (o *Options) weightSum() float64 {
	return float64(o.FirstNameWeight + o.LastNameWeight + o.BirthDateWeight +
		o.DeathDateWeight + o.BirthPlaceWeight + o.GenderWeight + o.RelativesWeight)
}
