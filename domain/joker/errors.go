package joker

import errorsmod "cosmossdk.io/errors"

const codespace = "joker"

var (
	ErrUnknownJoker    = errorsmod.Register(codespace, 2, "unknown joker")
	ErrInvalidLevel    = errorsmod.Register(codespace, 3, "joker level out of range")
	ErrMaxLevelReached = errorsmod.Register(codespace, 4, "joker already at max level")
	ErrPoolEmpty       = errorsmod.Register(codespace, 5, "joker pool is empty")
	ErrInvalidRarity   = errorsmod.Register(codespace, 6, "invalid rarity")
	ErrInvalidOwner    = errorsmod.Register(codespace, 7, "invalid ownership type")
)
