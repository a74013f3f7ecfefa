package ledger

import (
	"encoding/json"
	"errors"
	"testing"
)

func appendN(t *testing.T, bc *Blockchain, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		action := []byte(`{"type":"SUBMIT","n":` + string(rune('0'+i)) + `}`)
		if _, err := bc.Append(action, []byte("state"), "p1"); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}
}

func TestNewBlockchain(t *testing.T) {
	bc := NewBlockchain("g1")
	if bc.Len() != 1 {
		t.Fatalf("expected 1 block (genesis), got %d", bc.Len())
	}
	genesis, err := bc.GetLatest()
	if err != nil {
		t.Fatalf("GetLatest: %v", err)
	}
	if genesis.Index != 0 {
		t.Fatalf("genesis index should be 0, got %d", genesis.Index)
	}
	if genesis.PrevHash != "0" {
		t.Fatalf("genesis PrevHash should be '0', got %s", genesis.PrevHash)
	}
	if genesis.Hash == "" {
		t.Fatal("genesis block should have a hash")
	}
	if genesis.Metadata.GameID != "g1" {
		t.Fatalf("genesis game should be g1, got %s", genesis.Metadata.GameID)
	}
	if err := bc.Verify(); err != nil {
		t.Fatalf("fresh chain should verify: %v", err)
	}
}

func TestAppendLinksBlocks(t *testing.T) {
	bc := NewBlockchain("g1")
	appendN(t, bc, 3)
	if bc.Len() != 4 {
		t.Fatalf("expected 4 blocks, got %d", bc.Len())
	}
	for i := 1; i < bc.Len(); i++ {
		cur, _ := bc.GetByIndex(i)
		prev, _ := bc.GetByIndex(i - 1)
		if cur.PrevHash != prev.Hash {
			t.Fatalf("block %d not linked to %d", i, i-1)
		}
		if cur.Metadata.GameID != "g1" || cur.Metadata.PlayerID != "p1" {
			t.Fatalf("block %d metadata: %+v", i, cur.Metadata)
		}
		if cur.StateHash == "" {
			t.Fatalf("block %d has no state hash", i)
		}
	}
	if err := bc.Verify(); err != nil {
		t.Fatalf("Verify: %v", err)
	}
}

func TestAppendRejectsInvalidAction(t *testing.T) {
	bc := NewBlockchain("g1")
	_, err := bc.Append([]byte("{not json"), nil, "p1")
	if !errors.Is(err, ErrInvalidBlock) {
		t.Fatalf("expected ErrInvalidBlock, got %v", err)
	}
	if bc.Len() != 1 {
		t.Fatal("rejected block must not be appended")
	}
}

func TestGetByIndexOutOfRange(t *testing.T) {
	bc := NewBlockchain("g1")
	for _, i := range []int{-1, 1, 10} {
		if _, err := bc.GetByIndex(i); !errors.Is(err, ErrIndexOutOfRange) {
			t.Fatalf("index %d: expected ErrIndexOutOfRange, got %v", i, err)
		}
	}
}

func TestVerifyDetectsTampering(t *testing.T) {
	tests := []struct {
		name   string
		tamper func(bc *Blockchain)
		want   error
	}{
		{"action", func(bc *Blockchain) { bc.blocks[2].Action = json.RawMessage(`{"type":"FOLD"}`) }, ErrInvalidBlock},
		{"state hash", func(bc *Blockchain) { bc.blocks[1].StateHash = "00" }, ErrInvalidBlock},
		{"index", func(bc *Blockchain) { bc.blocks[3].Index = 7 }, ErrInvalidBlock},
		{"link", func(bc *Blockchain) { bc.blocks[2].PrevHash = "abc" }, ErrInvalidBlock},
		{"game", func(bc *Blockchain) { bc.blocks[1].Metadata.GameID = "g2" }, ErrInvalidBlock},
		{"genesis", func(bc *Blockchain) { bc.blocks[0].PrevHash = "1" }, ErrInvalidGenesis},
		{"empty", func(bc *Blockchain) { bc.blocks = nil }, ErrEmptyChain},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bc := NewBlockchain("g1")
			appendN(t, bc, 3)
			tt.tamper(bc)
			if err := bc.Verify(); !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestRestoreFromJSON(t *testing.T) {
	bc := NewBlockchain("g1")
	appendN(t, bc, 2)
	data, err := json.Marshal(bc.Blocks())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var blocks []Block
	if err := json.Unmarshal(data, &blocks); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	restored, err := Restore(blocks)
	if err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if restored.Len() != 3 {
		t.Fatalf("expected 3 blocks, got %d", restored.Len())
	}
	if _, err := restored.Append([]byte(`{"type":"ADVANCE"}`), nil, ""); err != nil {
		t.Fatalf("append after restore: %v", err)
	}

	blocks[1].Action = json.RawMessage(`{"type":"COMPLETE"}`)
	if _, err := Restore(blocks); !errors.Is(err, ErrInvalidBlock) {
		t.Fatalf("expected tampered chain to be refused, got %v", err)
	}
}
