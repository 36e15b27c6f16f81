package services

import (
	"time"

	"github.com/terraincognita07/utero/internal/models"
)

type phaseInput struct {
	today           time.Time
	cycles          []models.Cycle
	fertileWindow   []time.Time
	ovulationDay    time.Time
	nextPeriodStart time.Time
}

type phaseRule struct {
	phase   Phase
	applies func(input phaseInput) bool
}

// Every rule is evaluated; a later match overrides an earlier one, so
// menstruation wins over everything and ovulation over the fertile window.
var phaseRules = []phaseRule{
	{
		phase:   PhaseFollicular,
		applies: func(phaseInput) bool { return true },
	},
	{
		phase: PhaseFertile,
		applies: func(input phaseInput) bool {
			return containsDay(input.fertileWindow, input.today)
		},
	},
	{
		phase: PhaseOvulation,
		applies: func(input phaseInput) bool {
			return input.today.Equal(input.ovulationDay)
		},
	},
	{
		phase: PhaseLuteal,
		applies: func(input phaseInput) bool {
			lutealStart := AddDays(input.ovulationDay, 1)
			return !input.today.Before(lutealStart) && input.today.Before(input.nextPeriodStart)
		},
	},
	{
		phase: PhaseMenstruation,
		applies: func(input phaseInput) bool {
			return inAnyCycle(input.cycles, input.today)
		},
	},
}

func derivePhase(input phaseInput) Phase {
	current := PhaseFollicular
	for _, rule := range phaseRules {
		if rule.applies(input) {
			current = rule.phase
		}
	}
	return current
}
