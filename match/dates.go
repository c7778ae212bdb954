package match

import "github.com/makhin/gedsync-go/gedmatch"

// dateScore compares two dates in [0,1]. When the years match, the score
// is decided at the lesser of the two precisions; when they differ, the
// score decays with the gap and reaches zero past ten years.
func dateScore(a, b gedmatch.DateInfo) float64 {
	if !a.IsSet() || !b.IsSet() {
		return 0
	}
	if a.Year != b.Year {
		switch gap := abs(a.Year - b.Year); {
		case gap <= 1:
			return 0.80
		case gap <= 2:
			return 0.60
		case gap <= 5:
			return 0.40
		case gap <= 10:
			return 0.20
		default:
			return 0
		}
	}
	switch gedmatch.MinPrecision(a.Precision, b.Precision) {
	case gedmatch.PrecisionDay:
		if a.Month == b.Month && a.Day == b.Day {
			return 1.0
		}
		if a.Month == b.Month {
			return 0.95
		}
		return 0.85
	case gedmatch.PrecisionMonth:
		if a.Month == b.Month {
			return 0.95
		}
		return 0.85
	default:
		return 0.90
	}
}
