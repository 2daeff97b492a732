package carteira

// CPF is a Brazilian taxpayer identifier formatted as DDD.DDD.DDD-DD.
type CPF struct{ value string }

// ParseCPF validates raw as a formatted CPF, including its two check digits.
func ParseCPF(raw string) (CPF, error) {
	if len(raw) != 14 {
		return CPF{}, invalid("cpf", raw, "want format DDD.DDD.DDD-DD")
	}
	var d [11]int
	n := 0
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch i {
		case 3, 7:
			if c != '.' {
				return CPF{}, invalid("cpf", raw, "want format DDD.DDD.DDD-DD")
			}
		case 11:
			if c != '-' {
				return CPF{}, invalid("cpf", raw, "want format DDD.DDD.DDD-DD")
			}
		default:
			if !isDigit(c) {
				return CPF{}, invalid("cpf", raw, "want format DDD.DDD.DDD-DD")
			}
			d[n] = int(c - '0')
			n++
		}
	}

	same := true
	for _, v := range d[1:] {
		if v != d[0] {
			same = false
			break
		}
	}
	if same {
		return CPF{}, invalid("cpf", raw, "all digits are equal")
	}
	if checkDigit(d[:9]) != d[9] || checkDigit(d[:10]) != d[10] {
		return CPF{}, invalid("cpf", raw, "check digits do not match")
	}
	return CPF{raw}, nil
}

// checkDigit computes the modulo 11 check digit of digits, weighted from
// len(digits)+1 down to 2.
func checkDigit(digits []int) int {
	sum := 0
	w := len(digits) + 1
	for i, v := range digits {
		sum += v * (w - i)
	}
	r := sum % 11
	if r < 2 {
		return 0
	}
	return 11 - r
}

// MustCPF is like ParseCPF but panics on error.
func MustCPF(raw string) CPF { return must(ParseCPF(raw)) }

// Set implements flag.Value.
func (c *CPF) Set(raw string) error { return set(c, ParseCPF, raw) }

// String returns the formatted CPF.
func (c CPF) String() string { return c.value }

// IsZero reports whether the CPF is unset.
func (c CPF) IsZero() bool { return c.value == "" }

func (c CPF) MarshalText() ([]byte, error) { return []byte(c.value), nil }
func (c *CPF) UnmarshalText(b []byte) error { return c.Set(string(b)) }
