package mission

// MaxLevel bounds both fuel and health.
const MaxLevel = 100

// Ledger holds the ship's fuel and health. Values are always in
// [0, MaxLevel]; every change goes through Apply.
type Ledger struct {
	Fuel   int `json:"fuel"`
	Health int `json:"health"`
}

// NewLedger returns a ledger with both values clamped.
func NewLedger(fuel, health int) Ledger {
	return Ledger{Fuel: clamp(fuel), Health: clamp(health)}
}

// Apply returns the ledger with the deltas added, each clamped on its own.
func (l Ledger) Apply(dFuel, dHealth int) Ledger {
	return Ledger{Fuel: clamp(l.Fuel + dFuel), Health: clamp(l.Health + dHealth)}
}

// CanAfford reports whether cost fuel can be spent without going negative.
func (l Ledger) CanAfford(cost int) bool {
	return l.Fuel >= cost
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > MaxLevel {
		return MaxLevel
	}
	return v
}
