package match

import "github.com/makhin/gedsync-go/gedmatch"

// Reason itemizes one field's contribution to a candidate's score. Points
// are in raw (pre-normalization) weight units, except the maiden-match
// bonus, which is applied on the final 0–100 scale.
type Reason struct {
	Field   string
	Points  float64
	Details string
}

// Candidate is the immutable result of comparing two person records:
// a confidence score in [0,100] and the itemized reasons behind it.
type Candidate struct {
	Source  *gedmatch.PersonRecord
	Target  *gedmatch.PersonRecord
	Score   float64
	Reasons []Reason
}
