package round

import errorsmod "cosmossdk.io/errors"

const codespace = "round"

var (
	ErrRoundAlreadyComplete = errorsmod.Register(codespace, 2, "round already complete")
	ErrRoundComplete        = errorsmod.Register(codespace, 3, "round is complete")
	ErrInvalidSelection     = errorsmod.Register(codespace, 4, "selection must have 5 cards and 3 jokers")
	ErrUnknownPlayer        = errorsmod.Register(codespace, 5, "player is not in this round")
	ErrCardNotAvailable     = errorsmod.Register(codespace, 6, "card not available to player")
	ErrJokerNotAvailable    = errorsmod.Register(codespace, 7, "joker not available to player")
	ErrInvalidPhase         = errorsmod.Register(codespace, 8, "operation not allowed in this phase")
	ErrInvalidDiscard       = errorsmod.Register(codespace, 9, "invalid discard")
	ErrAlreadyDiscarded     = errorsmod.Register(codespace, 10, "player already discarded this phase")
	ErrNoPlayers            = errorsmod.Register(codespace, 11, "round needs at least one player")
	ErrDuplicatePlayer      = errorsmod.Register(codespace, 12, "duplicate player id")
	ErrCommunityPoolEmpty   = errorsmod.Register(codespace, 13, "not enough community jokers to deal")
	ErrDeckExhausted        = errorsmod.Register(codespace, 14, "not enough cards left for the rest of the round")
)
