package catalog

// DefaultConfig returns the built-in definitions
func DefaultConfig() *Config {
	return &Config{
		Items:         defaultItems(),
		Effects:       defaultEffects(),
		Enemies:       defaultEnemies(),
		Encounters:    defaultEncounters(),
		Chains:        defaultChains(),
		Defaults:      defaultFillers(),
		StartingStash: defaultStash(),
	}
}

// Default builds the built-in catalog
func Default() (*Catalog, error) {
	return New(DefaultConfig())
}

// MustDefault builds the built-in catalog and panics if it is malformed.
// There is no way to run the simulation on a broken catalog.
func MustDefault() *Catalog {
	c, err := Default()
	if err != nil {
		panic(err)
	}
	return c
}
