// Package ledger keeps a tamper-evident log of the actions committed on a
// game.
//
// Blockchain is an append-only list of blocks. Every block stores the
// serialized action, the hash of the game state it produced and the hash of
// the previous block, so that changing any recorded action breaks the chain.
// Verify can be called at any time to check the chain is intact, and Restore
// refuses a chain that is not.
package ledger
