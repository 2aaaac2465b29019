// Package input defines the cursor-over-characters contract the parser
// engine consumes, and a default implementation over an in-memory rune
// slice.
package input

// EOF is the sentinel Peek/Consume return once the cursor has passed the
// end of the input. It is outside the rune domain (which is bounded above
// by utf8.MaxRune and below by 0), so it can never collide with a real
// character.
const EOF rune = -1

// Input is a cursor over a sequence of characters, with an attached opaque
// payload ("extended data") that callers may use to carry information tied
// to a specific position, typically state belonging to a pre-parsed
// non-terminal host callback.
//
// SetPosition followed by Peek must be deterministic: restoring a prior
// position must reproduce exactly what Peek would have returned had the
// cursor never moved. A position less than 0 clamps to 0. Restoring a
// position does not implicitly restore extended data; callers that tie
// extended data to position must save and restore both together.
type Input interface {
	// Peek returns the character at the cursor, or EOF, without moving
	// the cursor.
	Peek() rune

	// Consume returns the character at the cursor, or EOF, and advances
	// the cursor by one. Consuming at EOF leaves the cursor unchanged.
	Consume() rune

	// Position returns the current cursor position.
	Position() int

	// SetPosition moves the cursor. Negative values clamp to 0.
	SetPosition(pos int)

	// ExtendedData returns the opaque payload currently attached to
	// the input.
	ExtendedData() any

	// SetExtendedData replaces the opaque payload attached to the
	// input.
	SetExtendedData(data any)
}
