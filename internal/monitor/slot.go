package monitor

// SlotAlphabet is the symbol cycle every slot steps through.
var SlotAlphabet = [...]string{"┌─", "└─", "└┐", "┌┘"}

// Slot is a restartable cursor into SlotAlphabet.
type Slot struct {
	pos int
}

// Next returns the current symbol and advances the cursor.
func (s *Slot) Next() string {
	sym := SlotAlphabet[s.pos]
	s.pos = (s.pos + 1) % len(SlotAlphabet)
	return sym
}

// Peek returns the symbol Next would return, without advancing.
func (s *Slot) Peek() string {
	return SlotAlphabet[s.pos]
}

// Reset restarts the cycle from the first symbol.
func (s *Slot) Reset() {
	s.pos = 0
}
