package cli

import "unitlite/internal/config"

// Flags holds command-line flags
type Flags struct {
	Verbose      bool
	NameFilter   string
	OpenFailures bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Verbose:      f.Verbose,
		NameFilter:   f.NameFilter,
		OpenFailures: f.OpenFailures,
	}
}
