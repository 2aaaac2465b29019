package input

// RuneInput is the default Input implementation, backed by an in-memory
// slice of runes decoded up front from the source text.
type RuneInput struct {
	runes    []rune
	pos      int
	extended any
}

var _ Input = (*RuneInput)(nil)

// NewRuneInput decodes s into runes and returns an Input positioned at 0.
func NewRuneInput(s string) *RuneInput {
	return &RuneInput{runes: []rune(s)}
}

// NewRuneInputFromRunes wraps an existing rune slice without copying it.
// The caller must not mutate runes afterward.
func NewRuneInputFromRunes(runes []rune) *RuneInput {
	return &RuneInput{runes: runes}
}

func (in *RuneInput) Peek() rune {
	if in.pos < 0 || in.pos >= len(in.runes) {
		return EOF
	}
	return in.runes[in.pos]
}

func (in *RuneInput) Consume() rune {
	c := in.Peek()
	if c != EOF {
		in.pos++
	}
	return c
}

func (in *RuneInput) Position() int {
	return in.pos
}

func (in *RuneInput) SetPosition(pos int) {
	if pos < 0 {
		pos = 0
	}
	in.pos = pos
}

func (in *RuneInput) ExtendedData() any {
	return in.extended
}

func (in *RuneInput) SetExtendedData(data any) {
	in.extended = data
}
