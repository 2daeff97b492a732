package carteira

// set parses raw and stores the result in dst only on success, so a failed Set
// never alters a previously valid value.
func set[T any](dst *T, parse func(string) (T, error), raw string) error {
	v, err := parse(raw)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

// must panics if err is not nil. Used by the Must* constructors.
func must[T any](v T, err error) T {
	if err != nil {
		panic(err.Error())
	}
	return v
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }
func isLower(c byte) bool { return c >= 'a' && c <= 'z' }

// allDigits reports whether s is non empty and only made of ASCII digits.
func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}
