// Package round runs a single round: FLOP, TURN and RIVER are dealt in turn
// from a private deck and joker pool, players submit one selection per phase
// and their scores accumulate until the round is COMPLETE.
package round
