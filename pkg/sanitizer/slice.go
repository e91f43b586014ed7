package sanitizer

// NormalizeStringSlice applies fn to each element and drops the ones
// that end up empty. A nil slice stays nil.
func NormalizeStringSlice(values []string, fn func(string) string) []string {
	if values == nil {
		return nil
	}

	out := values[:0]
	for _, v := range values {
		if cleaned := fn(v); cleaned != "" {
			out = append(out, cleaned)
		}
	}
	return out
}
