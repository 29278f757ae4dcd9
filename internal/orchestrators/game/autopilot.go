package game

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-caravan/internal/engine/combat"
	"github.com/KirkDiggler/rpg-caravan/internal/errors"
)

// maxAutoTurns bounds the party turns one autopilot fight may take
const maxAutoTurns = 500

// Autopilot plays a run without a presenter: it advances days and fights
// every battle by attacking with each party member, always picking the
// first eligible target.
type Autopilot struct {
	service Service
}

// NewAutopilot creates an autopilot driving service
func NewAutopilot(service Service) (*Autopilot, error) {
	if service == nil {
		return nil, errors.InvalidArgument("service is required")
	}
	return &Autopilot{service: service}, nil
}

// DayReport summarises one autopiloted day
type DayReport struct {
	Day int
	// Turns counts the party actions taken in fights that day
	Turns  int
	Living int
}

// RunDay advances one day and fights any battle it starts to the end
func (a *Autopilot) RunDay(ctx context.Context) (*DayReport, error) {
	advanced, err := a.service.AdvanceDay(ctx, &AdvanceDayInput{})
	if err != nil {
		return nil, err
	}

	report := &DayReport{Day: advanced.Day}
	if advanced.InCombat {
		turns, err := a.Fight(ctx)
		report.Turns = turns
		if err != nil {
			return report, err
		}
	}

	roster, err := a.service.GetRoster(ctx, &GetRosterInput{})
	if err != nil {
		return report, err
	}
	for _, c := range roster.Party {
		if c.Alive {
			report.Living++
		}
	}

	return report, nil
}

// Fight takes party turns until the current fight ends and returns how many
// were taken
func (a *Autopilot) Fight(ctx context.Context) (int, error) {
	for turns := 0; turns < maxAutoTurns; turns++ {
		status, err := a.service.GetCombatStatus(ctx, &GetCombatStatusInput{})
		if err != nil {
			return turns, err
		}
		if !status.Status.Active {
			slog.Debug("Autopilot fight finished",
				"turns", turns,
				"outcome", status.Status.LastOutcome,
			)
			return turns, nil
		}
		if !status.Status.AwaitingAction {
			return turns, errors.Internal("combat is active but no party member is waiting")
		}

		chosen, err := a.service.ChooseCombatAction(ctx, &ChooseCombatActionInput{Action: combat.ActionAttack})
		if err != nil {
			return turns, err
		}
		if chosen.Selection == nil {
			continue
		}
		if err := a.Resolve(ctx, chosen.Selection); err != nil {
			return turns, err
		}
	}
	return maxAutoTurns, errors.Internalf("fight did not end within %d turns", maxAutoTurns)
}

// Resolve completes sel with its first eligible candidate
func (a *Autopilot) Resolve(ctx context.Context, sel *PendingSelection) error {
	for _, c := range sel.Candidates {
		if !c.Eligible {
			continue
		}
		_, err := a.service.ResolveSelection(ctx, &ResolveSelectionInput{
			SelectionID: sel.ID,
			TargetID:    c.CharacterID,
		})
		return err
	}
	return errors.FailedPreconditionf("selection %s has no eligible candidate", sel.ID)
}
