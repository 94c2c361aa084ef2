package engine

import (
	"fmt"

	"github.com/matthewfreeze/rpg-engine/internal/constants"
	"github.com/matthewfreeze/rpg-engine/internal/game"
)

// resolveTurn applies one side's chosen action. On success the actor's
// gauge resets, the outcome joins the encounter log and the phase is
// re-evaluated; a failed cast or invalid action mutates nothing so the side
// can choose again with its gauge still full.
func (b *Battle) resolveTurn(side game.Side, act Action) (game.TurnOutcome, error) {
	actor := b.combatant(side)
	target := b.opponent(side)

	var outcome game.TurnOutcome
	switch act.Kind {
	case game.ActionAttack:
		outcome = b.execAttack(side, actor, target)
	case game.ActionCast:
		var err error
		outcome, err = b.execCast(side, actor, target, act.Ability)
		if err != nil {
			return game.TurnOutcome{}, err
		}
	case game.ActionWait:
		outcome = game.TurnOutcome{
			Side:    side,
			Actor:   actor.Name,
			Kind:    game.ActionWait,
			Message: fmt.Sprintf("%s waits.", actor.Name),
		}
	default:
		return game.TurnOutcome{}, ErrInvalidAction
	}

	actor.ResetReadiness()
	b.enc.AppendLog(outcome)
	b.turns++
	if !b.checkEnd() {
		b.enc.Phase = b.classify()
	}
	b.notify()
	return outcome, nil
}

// execAttack deals strength plus a small random bonus. It always succeeds.
func (b *Battle) execAttack(side game.Side, actor, target *game.Combatant) game.TurnOutcome {
	bonus := b.rng.Intn(constants.AttackBonusRange)
	dealt := target.ApplyDamage(actor.Strength + bonus)
	return game.TurnOutcome{
		Side:    side,
		Actor:   actor.Name,
		Kind:    game.ActionAttack,
		Amount:  dealt,
		Message: fmt.Sprintf("%s attacks %s for %d damage.", actor.Name, target.Name, dealt),
	}
}

// execCast spends mana and applies the ability effect: damage to the
// opponent or healing to the caster. SpendMana is the only gate; its
// failure leaves every stat untouched.
func (b *Battle) execCast(side game.Side, actor, target *game.Combatant, name string) (game.TurnOutcome, error) {
	ability, ok := b.catalog.Get(name)
	if !ok {
		return game.TurnOutcome{}, ErrUnknownAbility
	}
	if !actor.SpendMana(ability.ManaCost) {
		return game.TurnOutcome{}, ErrInsufficientMana
	}

	if ability.IsHealing() {
		amount, _ := ability.Effect(actor, target)
		restored := actor.Heal(amount)
		return game.TurnOutcome{
			Side:    side,
			Actor:   actor.Name,
			Kind:    game.ActionCast,
			Ability: ability.Name,
			Amount:  restored,
			Message: fmt.Sprintf("%s casts %s and recovers %d HP.", actor.Name, ability.Name, restored),
		}, nil
	}

	amount, exploited := ability.Effect(actor, target)
	dealt := target.ApplyDamage(amount)
	msg := fmt.Sprintf("%s casts %s on %s for %d damage.", actor.Name, ability.Name, target.Name, dealt)
	if exploited {
		msg = fmt.Sprintf("%s casts %s on %s for %d damage. It strikes the %s weakness!",
			actor.Name, ability.Name, target.Name, dealt, ability.Element)
	}
	return game.TurnOutcome{
		Side:     side,
		Actor:    actor.Name,
		Kind:     game.ActionCast,
		Ability:  ability.Name,
		Amount:   dealt,
		Weakness: exploited,
		Message:  msg,
	}, nil
}
