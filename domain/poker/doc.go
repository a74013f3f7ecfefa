// Package poker implements the card layer of the game: cards, the deck and
// the five card hand evaluator that every score is built on.
//
// # Core Types
//
// Card: An immutable suit and rank pair. Cards order by rank and suit tables
// and encode to JSON in short notation ("AH", "10S").
//
// Deck: A stack of cards drawn from the top (the last element). Shuffles go
// through an injected rng.Source so games can be replayed from a seed.
//
// HandEvaluation: The category of a five card hand, its base score and the
// high card, second high card and kickers used to break ties.
//
// Phase: The street a round is in: FLOP, TURN, RIVER and finally COMPLETE.
//
// # Hand Evaluation
//
// Evaluate classifies exactly five cards, testing categories from Royal Flush
// down to High Card. Straights are recognised with the Ace playing either high
// (10-J-Q-K-A) or low (A-2-3-4-5, the wheel), never wrapping (J-Q-K-A-2 is not
// a straight). EvaluateWithRules additionally suppresses pairs, straights or
// flushes when a boss handicap is active, and leaves blank cards out of every
// combination.
package poker
