package poker

import errorsmod "cosmossdk.io/errors"

const codespace = "poker"

var (
	ErrInvalidCard       = errorsmod.Register(codespace, 2, "invalid card")
	ErrEmptyDeck         = errorsmod.Register(codespace, 3, "deck is empty")
	ErrInsufficientCards = errorsmod.Register(codespace, 4, "not enough cards in deck")
	ErrInvalidHandSize   = errorsmod.Register(codespace, 5, "hand must contain exactly 5 cards")
	ErrInvalidPhase      = errorsmod.Register(codespace, 6, "invalid phase")
	ErrInvalidHandRank   = errorsmod.Register(codespace, 7, "unknown hand rank")
)
