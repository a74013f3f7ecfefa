package ledger

import errorsmod "cosmossdk.io/errors"

const codespace = "ledger"

var (
	ErrEmptyChain      = errorsmod.Register(codespace, 2, "blockchain is empty")
	ErrIndexOutOfRange = errorsmod.Register(codespace, 3, "index out of range")
	ErrInvalidBlock    = errorsmod.Register(codespace, 4, "invalid block")
	ErrInvalidGenesis  = errorsmod.Register(codespace, 5, "invalid genesis block")
)
