package game

import errorsmod "cosmossdk.io/errors"

const codespace = "game"

var (
	ErrGameFull             = errorsmod.Register(codespace, 2, "game is full")
	ErrGameStarted          = errorsmod.Register(codespace, 3, "game already started")
	ErrNotEnoughPlayers     = errorsmod.Register(codespace, 4, "not enough players")
	ErrRoundInProgress      = errorsmod.Register(codespace, 5, "a round is in progress")
	ErrGameOver             = errorsmod.Register(codespace, 6, "game is over")
	ErrCorruptCycle         = errorsmod.Register(codespace, 7, "round cycle position out of range")
	ErrInvalidSelectionSize = errorsmod.Register(codespace, 8, "selection must have exactly 5 cards")
	ErrTooManyModifiers     = errorsmod.Register(codespace, 9, "at most 3 jokers can be selected")
	ErrJokerNotOwned        = errorsmod.Register(codespace, 10, "joker not owned")
	ErrNotPlaying           = errorsmod.Register(codespace, 11, "player is not playing")
	ErrUnknownPlayer        = errorsmod.Register(codespace, 12, "unknown player")
	ErrNoRound              = errorsmod.Register(codespace, 13, "no round in progress")
	ErrNotStarted           = errorsmod.Register(codespace, 14, "game not started")
	ErrInvalidConfig        = errorsmod.Register(codespace, 15, "invalid game config")
	ErrUnknownAction        = errorsmod.Register(codespace, 16, "unknown action type")
	ErrWrongGame            = errorsmod.Register(codespace, 17, "action for another game")
	ErrWrongRound           = errorsmod.Register(codespace, 18, "action for another round")
	ErrMalformedAction      = errorsmod.Register(codespace, 19, "malformed action")
)
