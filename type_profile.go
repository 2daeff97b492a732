package carteira

// Risk profiles of a wallet.
const (
	Conservative = "Conservador"
	Moderate     = "Moderado"
	Aggressive   = "Agressivo"
)

// Profiles lists the valid risk profiles, from the least to the most risky.
var Profiles = []string{Conservative, Moderate, Aggressive}

// Profile is the risk profile of a wallet.
type Profile struct{ value string }

// ParseProfile validates raw as a Profile. Matching is exact and case sensitive.
func ParseProfile(raw string) (Profile, error) {
	switch raw {
	case Conservative, Moderate, Aggressive:
		return Profile{raw}, nil
	}
	return Profile{}, invalid("profile", raw, "want one of Conservador, Moderado, Agressivo")
}

// MustProfile is like ParseProfile but panics on error.
func MustProfile(raw string) Profile { return must(ParseProfile(raw)) }

// Set implements flag.Value.
func (p *Profile) Set(raw string) error { return set(p, ParseProfile, raw) }

// String returns the profile.
func (p Profile) String() string { return p.value }

// IsZero reports whether the profile is unset.
func (p Profile) IsZero() bool { return p.value == "" }

func (p Profile) MarshalText() ([]byte, error) { return []byte(p.value), nil }
func (p *Profile) UnmarshalText(b []byte) error { return p.Set(string(b)) }
