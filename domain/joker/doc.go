// Package joker implements the modifier system layered on top of the base
// hand score.
//
// Every joker type is a registry entry: an id, display metadata and a pure
// bonus formula of (level, Context). Instances only carry a level in [1,5],
// so they serialise to {"id","level"} and are rebuilt from the registry.
//
// A bonus is either Additive (points added to the base score) or
// Multiplicative (a percentage applied to the total). Heart Multiplier is the
// only multiplicative joker in the catalog.
//
// The Pool hands out level 1 jokers at random, split into jokers a player
// holds privately and community jokers placed on the board.
package joker
