// Package game seats players and runs rounds in the fixed
// SMALL_BLIND, BIG_BLIND, BOSS_BLIND, VS_ROUND cycle, applying the rewards
// and eliminations of each round until a single player is left.
//
// A StateMachine exposes the same operations as serialized actions, so that
// a caller can validate, apply and log them one at a time.
package game
