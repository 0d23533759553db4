package location

// Candidate is a lazily evaluated path source. It reports "" and false when
// the source has nothing to offer.
type Candidate func() (string, bool)

// FirstSome evaluates candidates left to right and returns the first present
// value. Candidates after the first hit are never called.
func FirstSome(candidates ...Candidate) (string, bool) {
	for _, candidate := range candidates {
		if candidate == nil {
			continue
		}
		if path, ok := candidate(); ok {
			return path, true
		}
	}

	return "", false
}
