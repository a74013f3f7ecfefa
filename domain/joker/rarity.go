package joker

import errorsmod "cosmossdk.io/errors"

type Rarity string

const (
	Common    Rarity = "common"
	Uncommon  Rarity = "uncommon"
	Rare      Rarity = "rare"
	Legendary Rarity = "legendary"
	Unique    Rarity = "unique"
)

var rarities = []Rarity{Common, Uncommon, Rare, Legendary, Unique}

// Rarities lists every rarity from most to least frequent.
func Rarities() []Rarity {
	out := make([]Rarity, len(rarities))
	copy(out, rarities)
	return out
}

func (r Rarity) Valid() bool {
	for _, x := range rarities {
		if x == r {
			return true
		}
	}
	return false
}

// ParseRarity validates a rarity name.
func ParseRarity(s string) (Rarity, error) {
	r := Rarity(s)
	if !r.Valid() {
		return "", errorsmod.Wrapf(ErrInvalidRarity, "%q", s)
	}
	return r, nil
}

// Ownership says whose cards a joker looks at.
type Ownership string

const (
	// PlayerOwned jokers only affect the hand of the player holding them.
	PlayerOwned Ownership = "PLAYER"
	// CommunityOwned jokers sit on the board and apply to every player.
	CommunityOwned Ownership = "COMMUNITY"
)

func (o Ownership) Valid() bool {
	return o == PlayerOwned || o == CommunityOwned
}
