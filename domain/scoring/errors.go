package scoring

import errorsmod "cosmossdk.io/errors"

const codespace = "scoring"

var (
	ErrMissingMaxCardValue = errorsmod.Register(codespace, 2, "MAX_CARD_VALUE handicap requires a cap")
	ErrUnknownHandicap     = errorsmod.Register(codespace, 3, "unknown handicap")
	ErrInvalidMaxCardValue = errorsmod.Register(codespace, 4, "max card value out of range")
	ErrTooManyJokers       = errorsmod.Register(codespace, 5, "too many jokers in selection")
)
