package engine

import (
	"errors"
	"fmt"

	"github.com/matthewfreeze/rpg-engine/internal/game"
)

// Run drives the encounter to termination and returns the result. Each
// iteration advances both gauges one tick and resolves whoever is ready;
// when both sides saturate on the same tick the faster one acts first (the
// player wins ties) and the slower one acts only if it survives, with no
// tick between the two turns.
//
// A provider that never returns a resolvable action keeps its side's turn
// pending forever; every real policy must eventually consume a turn.
func (b *Battle) Run() (game.Result, error) {
	for !b.enc.Ended() {
		var err error
		switch b.Tick() {
		case game.PhasePlayerReady:
			err = b.takeTurn(game.SidePlayer)
		case game.PhaseEnemyReady:
			err = b.takeTurn(game.SideEnemy)
		case game.PhaseBothReady:
			err = b.bothReadyTurns()
		}
		if err != nil {
			return game.Result{}, err
		}
	}
	return b.Result(), nil
}

// bothReadyTurns resolves the simultaneous-readiness case in descending
// speed order.
func (b *Battle) bothReadyTurns() error {
	first, second := game.SidePlayer, game.SideEnemy
	if b.enc.Enemy.Speed > b.enc.Player.Speed {
		first, second = game.SideEnemy, game.SidePlayer
	}
	if err := b.takeTurn(first); err != nil {
		return err
	}
	if b.enc.Ended() {
		return nil
	}
	return b.takeTurn(second)
}

// takeTurn polls the side's provider until an action consumes the turn. A
// cancelled selection, an unknown ability or an unaffordable cast leaves
// the gauge full and every stat untouched, so the side simply chooses
// again — no turn economy is spent and the other side does not advance.
func (b *Battle) takeTurn(side game.Side) error {
	provider := b.providers[side]
	for {
		snap := b.enc.Snapshot()
		snap.Acting = side
		act, err := provider.ChooseAction(snap)
		if err != nil {
			return fmt.Errorf("%s input: %w", side, err)
		}
		if act.Kind == game.ActionNone {
			continue
		}
		if _, err := b.resolveTurn(side, act); err != nil {
			if errors.Is(err, ErrInvalidAction) || errors.Is(err, ErrUnknownAbility) || errors.Is(err, ErrInsufficientMana) {
				continue
			}
			return err
		}
		return nil
	}
}
