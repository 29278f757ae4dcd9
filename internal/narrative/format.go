package narrative

import (
	"strconv"
	"strings"
)

// PositionalSlots is how many {N} character tokens a template may use
const PositionalSlots = 4

// Lookup supplies values for template tokens
type Lookup struct {
	// Names fills {0}..{3}; tokens past the end of Names resolve to ""
	Names []string
	// Damage fills {dmg} when set
	Damage *int
}

// Format replaces {0}..{3} with names and {dmg} with the damage value
func Format(template string, lookup Lookup) string {
	pairs := make([]string, 0, 2*PositionalSlots+2)
	for i := 0; i < PositionalSlots; i++ {
		name := ""
		if i < len(lookup.Names) {
			name = lookup.Names[i]
		}
		pairs = append(pairs, "{"+strconv.Itoa(i)+"}", name)
	}
	if lookup.Damage != nil {
		pairs = append(pairs, "{dmg}", strconv.Itoa(*lookup.Damage))
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

// Damage is a convenience for building a Lookup
func Damage(n int) *int {
	return &n
}
