package store

import errorsmod "cosmossdk.io/errors"

const codespace = "store"

var (
	ErrTableExists   = errorsmod.Register(codespace, 2, "table already exists")
	ErrTableNotFound = errorsmod.Register(codespace, 3, "table not found")
	ErrNotSaved      = errorsmod.Register(codespace, 4, "no saved game")
	ErrRejected      = errorsmod.Register(codespace, 5, "action rejected")
	ErrCorruptSave   = errorsmod.Register(codespace, 6, "saved game is corrupt")
)
