package levels

import "fmt"

// Tile is the type stored in a single grid cell.
type Tile int

const (
	Air Tile = iota
	Stone
	Rainbow
	Breakable
	JumpPower
)

// NumTiles is the number of tile types; Cycle wraps at this value.
const NumTiles = 5

func (t Tile) String() string {
	switch t {
	case Air:
		return "air"
	case Stone:
		return "stone"
	case Rainbow:
		return "rainbow"
	case Breakable:
		return "breakable"
	case JumpPower:
		return "jump_power"
	default:
		return fmt.Sprintf("tile(%d)", int(t))
	}
}

// Valid reports whether t is one of the known tile types.
func (t Tile) Valid() bool {
	return t >= Air && t < NumTiles
}

// Next returns the tile that follows t in editor cycling order.
func (t Tile) Next() Tile {
	return Tile((int(t) + 1) % NumTiles)
}

// Power is an ability granted by a power-up tile.
type Power int

const (
	PowerNone Power = iota
	PowerJump
	PowerSmash
)

func (p Power) String() string {
	switch p {
	case PowerNone:
		return "none"
	case PowerJump:
		return "jump"
	case PowerSmash:
		return "smash"
	default:
		return fmt.Sprintf("power(%d)", int(p))
	}
}

// IsSolid reports whether the avatar collides with t.
func IsSolid(t Tile) bool {
	switch t {
	case Air, JumpPower:
		return false
	case Stone, Rainbow, Breakable:
		return true
	default:
		return false
	}
}

// IsPowerUp reports whether touching t grants a power.
func IsPowerUp(t Tile) bool {
	switch t {
	case JumpPower:
		return true
	default:
		return false
	}
}

// TileToPower maps a tile to the power it grants. Only JumpPower grants
// anything today; every other tile maps to PowerNone.
func TileToPower(t Tile) Power {
	switch t {
	case JumpPower:
		return PowerJump
	case Air, Stone, Rainbow, Breakable:
		return PowerNone
	default:
		return PowerNone
	}
}
