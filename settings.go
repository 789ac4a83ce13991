package wealthguard

import "github.com/etnz/wealthguard/period"

// Settings is the static configuration of the dashboard.
type Settings struct {
	Instruments Instruments   `toml:"instruments"`
	Goals       []Goal        `toml:"goals"`
	Strategy    Strategy      `toml:"strategy"`
	Mantras     []Mantra      `toml:"mantras"`
	Markup      float64       `toml:"markup"` // applied to new contributions in the history
	Locale      period.Locale `toml:"locale"`
}

// DefaultSettings returns the built-in configuration.
func DefaultSettings() Settings {
	return Settings{
		Instruments: append(Instruments(nil), DefaultInstruments...),
		Goals:       append([]Goal(nil), DefaultGoals...),
		Strategy:    DefaultStrategy,
		Mantras:     append([]Mantra(nil), DefaultMantras...),
		Markup:      DefaultMarkup,
		Locale:      period.DefaultLocale,
	}
}
