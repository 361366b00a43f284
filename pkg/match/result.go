package match

// Result represents the result of a single game from White's
// perspective.
type Result int

const (
	Win  Result = +1
	Draw Result = 0
	Loss Result = -1
)

// Score returns the result as a score point for White.
func (result Result) Score() float64 {
	switch result {
	case Win:
		return 1
	case Loss:
		return 0
	default:
		return 0.5
	}
}

// String returns a string representation of the given Result.
func (result Result) String() string {
	switch result {
	case Win:
		return "1-0"
	case Draw:
		return "1/2-1/2"
	case Loss:
		return "0-1"
	default:
		return "?-?"
	}
}
