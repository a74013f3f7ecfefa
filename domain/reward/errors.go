package reward

import errorsmod "cosmossdk.io/errors"

const codespace = "reward"

var (
	ErrUnknownRoundType = errorsmod.Register(codespace, 2, "unknown round type")
	ErrInvalidConfig    = errorsmod.Register(codespace, 3, "invalid round config")
)
