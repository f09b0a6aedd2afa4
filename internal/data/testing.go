package data

// MustParseProfile parses a YAML profile and panics on error.
// Intended for tests from other packages that need a small hand-written world.
func MustParseProfile(raw string) *Profile {
	p, err := ParseProfile([]byte(raw))
	if err != nil {
		panic(err)
	}
	return p
}
