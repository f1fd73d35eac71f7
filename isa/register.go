package isa

// Register is a single 8-bit register.
type Register int

//go:generate go tool stringer -linecomment -type=Register
const (
	REG_A    = Register(0) // A
	REG_B    = Register(1) // B
	REG_C    = Register(2) // C
	REG_D    = Register(3) // D
	REG_E    = Register(4) // E
	REG_H    = Register(5) // H
	REG_L    = Register(6) // L
	REG_NONE = Register(7) // ?
)

// RegisterFromChar returns the register named by c, or REG_NONE.
func RegisterFromChar(c byte) Register {
	switch c {
	case 'A':
		return REG_A
	case 'B':
		return REG_B
	case 'C':
		return REG_C
	case 'D':
		return REG_D
	case 'E':
		return REG_E
	case 'H':
		return REG_H
	case 'L':
		return REG_L
	}
	return REG_NONE
}

// Valid returns true for the seven named registers.
func (r Register) Valid() bool {
	return r >= REG_A && r < REG_NONE
}

// RegisterPair is a 16-bit register pair.
type RegisterPair int

//go:generate go tool stringer -linecomment -type=RegisterPair
const (
	PAIR_B  = RegisterPair(0) // B
	PAIR_D  = RegisterPair(1) // D
	PAIR_H  = RegisterPair(2) // H
	PAIR_SP = RegisterPair(3) // SP
)

// pairMap maps register pair names.
var pairMap = map[string]RegisterPair{
	"B":  PAIR_B,
	"D":  PAIR_D,
	"H":  PAIR_H,
	"SP": PAIR_SP,
}

// RegisterPairFromString returns the register pair named by name.
func RegisterPairFromString(name string) (pair RegisterPair, ok bool) {
	pair, ok = pairMap[name]
	return
}

// Valid returns true for the four named register pairs.
func (rp RegisterPair) Valid() bool {
	return rp >= PAIR_B && rp <= PAIR_SP
}
