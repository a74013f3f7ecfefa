package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	errorsmod "cosmossdk.io/errors"
)

var genesisAction = json.RawMessage(`{"type":"genesis"}`)

// Blockchain is the append-only log of the actions committed on one game.
type Blockchain struct {
	mu     sync.RWMutex
	blocks []Block
	now    func() time.Time
}

// NewBlockchain creates a chain holding only the genesis block of gameID.
// The genesis block has index 0 and previous hash "0".
func NewBlockchain(gameID string) *Blockchain {
	bc := &Blockchain{now: time.Now}

	// Crea genesis block
	genesis := Block{
		Index:     0,
		Timestamp: bc.now().Unix(),
		PrevHash:  "0",
		Action:    genesisAction,
		Metadata:  Metadata{GameID: gameID},
	}
	genesis.Hash = calculateHash(genesis)
	bc.blocks = append(bc.blocks, genesis)

	return bc
}

// Restore rebuilds a chain from its blocks and verifies it.
func Restore(blocks []Block) (*Blockchain, error) {
	bc := &Blockchain{now: time.Now, blocks: append([]Block(nil), blocks...)}
	if err := bc.Verify(); err != nil {
		return nil, err
	}
	return bc, nil
}

// Append links a new block for action on top of the chain. snapshot is the
// game state once the action has been applied; only its hash is kept.
func (bc *Blockchain) Append(action []byte, snapshot []byte, playerID string, extra ...map[string]string) (Block, error) {
	bc.mu.Lock()
	defer bc.mu.Unlock()

	if len(bc.blocks) == 0 {
		return Block{}, ErrEmptyChain
	}
	if !json.Valid(action) {
		return Block{}, ErrInvalidBlock.Wrap("action is not valid JSON")
	}
	var extraMsg map[string]string
	if len(extra) > 0 {
		extraMsg = extra[0]
	}
	latest := bc.blocks[len(bc.blocks)-1]
	stateHash := sha256.Sum256(snapshot)

	newBlock := Block{
		Index:     latest.Index + 1,
		Timestamp: bc.now().Unix(),
		PrevHash:  latest.Hash,
		Action:    append(json.RawMessage(nil), action...),
		StateHash: hex.EncodeToString(stateHash[:]),
		Metadata: Metadata{
			GameID:   latest.Metadata.GameID,
			PlayerID: playerID,
			Extra:    extraMsg,
		},
	}
	newBlock.Hash = calculateHash(newBlock)

	if err := validateBlock(newBlock, latest); err != nil {
		return Block{}, err
	}
	bc.blocks = append(bc.blocks, newBlock)
	return newBlock, nil
}

// GetLatest returns the most recently added block.
func (bc *Blockchain) GetLatest() (Block, error) {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	if len(bc.blocks) == 0 {
		return Block{}, ErrEmptyChain
	}
	return bc.blocks[len(bc.blocks)-1], nil
}

// GetByIndex returns the block at index.
func (bc *Blockchain) GetByIndex(index int) (Block, error) {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	if index < 0 || index >= len(bc.blocks) {
		return Block{}, errorsmod.Wrapf(ErrIndexOutOfRange, "%d of %d", index, len(bc.blocks))
	}
	return bc.blocks[index], nil
}

func (bc *Blockchain) Len() int {
	bc.mu.RLock()
	defer bc.mu.RUnlock()
	return len(bc.blocks)
}

// Blocks returns a copy of the chain.
func (bc *Blockchain) Blocks() []Block {
	bc.mu.RLock()
	defer bc.mu.RUnlock()
	return append([]Block(nil), bc.blocks...)
}

// Verify checks the genesis block and every link of the chain.
func (bc *Blockchain) Verify() error {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	if len(bc.blocks) == 0 {
		return ErrEmptyChain
	}

	// Verifica genesis
	genesis := bc.blocks[0]
	if genesis.Index != 0 || genesis.PrevHash != "0" || genesis.Hash != calculateHash(genesis) {
		return ErrInvalidGenesis
	}

	// Verifica ogni blocco
	for i := 1; i < len(bc.blocks); i++ {
		if err := validateBlock(bc.blocks[i], bc.blocks[i-1]); err != nil {
			return errorsmod.Wrapf(err, "block %d", i)
		}
	}
	return nil
}

// validateBlock checks index continuity, the link to previous and the hash.
func validateBlock(current, previous Block) error {
	// Verifica indice
	if current.Index != previous.Index+1 {
		return errorsmod.Wrapf(ErrInvalidBlock, "index: expected %d, got %d", previous.Index+1, current.Index)
	}

	// Verifica prev hash
	if current.PrevHash != previous.Hash {
		return errorsmod.Wrapf(ErrInvalidBlock, "prev hash: expected %s, got %s", previous.Hash, current.PrevHash)
	}

	if current.Metadata.GameID != previous.Metadata.GameID {
		return errorsmod.Wrapf(ErrInvalidBlock, "game: expected %s, got %s", previous.Metadata.GameID, current.Metadata.GameID)
	}

	// Verifica hash corrente
	if expected := calculateHash(current); current.Hash != expected {
		return errorsmod.Wrapf(ErrInvalidBlock, "hash: expected %s, got %s", expected, current.Hash)
	}
	return nil
}

// calculateHash is the SHA256 of the index, timestamp, previous hash,
// action, state hash and metadata of a block.
func calculateHash(block Block) string {
	extra, _ := json.Marshal(block.Metadata.Extra)

	data := fmt.Sprintf("%d%d%s%s%s%s%s%s",
		block.Index,
		block.Timestamp,
		block.PrevHash,
		string(block.Action),
		block.StateHash,
		block.Metadata.GameID,
		block.Metadata.PlayerID,
		string(extra),
	)

	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}
