package wealthguard

import "math/rand/v2"

// Mantra is a reminder shown to keep to the plan.
type Mantra struct {
	Trigger string `json:"trigger" toml:"trigger"`
	Text    string `json:"text" toml:"text"`
}

// Mantra triggers.
const (
	TriggerFall       = "caida"
	TriggerEuphoria   = "euforia"
	TriggerDoubt      = "duda"
	TriggerDefault    = "default"
	TriggerPatience   = "paciencia"
	TriggerDiscipline = "disciplina"
)

// euphoriaReturn is the return percent above which the euphoria mantra is selected.
const euphoriaReturn = 20

var DefaultMantras = []Mantra{
	{Trigger: TriggerFall, Text: "Las caídas son el peaje que pago por las subidas futuras."},
	{Trigger: TriggerEuphoria, Text: "La euforia es tan peligrosa como el pánico."},
	{Trigger: TriggerDoubt, Text: "Esta estrategia se diseñó en frío. Confía en el plan."},
	{Trigger: TriggerDefault, Text: "Mantén el rumbo. El tiempo está de tu lado."},
	{Trigger: TriggerPatience, Text: "La paciencia es la virtud del inversor."},
	{Trigger: TriggerDiscipline, Text: "La disciplina supera a la inteligencia."},
}

// SelectMantra picks the mantra matching the state of the portfolio.
//
// A negative return selects "caida", a return above 20% selects "euforia", a portfolio that
// needs rebalancing selects "disciplina" and anything else "default". When the trigger is not
// in mantras the first mantra is returned. It returns false only if mantras is empty.
func SelectMantra(mantras []Mantra, totals Totals, needsRebalancing bool) (Mantra, bool) {
	if len(mantras) == 0 {
		return Mantra{}, false
	}
	trigger := TriggerDefault
	switch {
	case totals.ReturnPercent < 0:
		trigger = TriggerFall
	case totals.ReturnPercent > euphoriaReturn:
		trigger = TriggerEuphoria
	case needsRebalancing:
		trigger = TriggerDiscipline
	}
	for _, m := range mantras {
		if m.Trigger == trigger {
			return m, true
		}
	}
	return mantras[0], true
}

// RandomMantra picks any mantra using r.
func RandomMantra(mantras []Mantra, r *rand.Rand) (Mantra, bool) {
	if len(mantras) == 0 {
		return Mantra{}, false
	}
	return mantras[r.IntN(len(mantras))], true
}
