package charset

// All returns a Matcher that matches every rune.
func All() Matcher { return mAll{} }

type mAll struct{}

var _ Matcher = mAll{}

func (mAll) Match(rune) bool { return true }
func (mAll) String() string  { return "All" }

// None returns a Matcher that matches no rune.
func None() Matcher { return mNone{} }

type mNone struct{}

var _ Matcher = mNone{}

func (mNone) Match(rune) bool { return false }
func (mNone) String() string  { return "None" }
