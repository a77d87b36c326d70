package repository

func nonNil(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
