package kernel

import "strings"

// City is the free-text location of a provider. Two cities match when they are
// equal ignoring case; no geocoding or normalization beyond trimming is applied.
type City struct {
	name string
}

func NewCity(name string) City {
	return City{name: strings.TrimSpace(name)}
}

func (c City) String() string {
	return c.name
}

func (c City) IsEmpty() bool {
	return c.name == ""
}

// Matches reports a case-insensitive exact match. An empty filter matches every city.
func (c City) Matches(filter string) bool {
	filter = strings.TrimSpace(filter)
	return filter == "" || strings.EqualFold(c.name, filter)
}
