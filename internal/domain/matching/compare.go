package matching

// MaxCompare is the largest number of providers compared side by side.
const MaxCompare = 3

// ToggleCompare removes id from selection when present, otherwise appends it
// and drops the oldest entries until at most MaxCompare remain. The input
// slice is left untouched.
func ToggleCompare(selection []string, id string) []string {
	out := make([]string, 0, len(selection)+1)
	removed := false
	for _, s := range selection {
		if s == id {
			removed = true
			continue
		}
		out = append(out, s)
	}
	if removed {
		return out
	}

	out = append(out, id)
	if len(out) > MaxCompare {
		out = out[len(out)-MaxCompare:]
	}
	return out
}

// Contains reports whether id is part of selection.
func Contains(selection []string, id string) bool {
	for _, s := range selection {
		if s == id {
			return true
		}
	}
	return false
}
