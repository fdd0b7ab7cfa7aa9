package emit

// Token is an opaque event key with pointer identity: every NewToken call
// yields a key equal only to itself, never to any string or other Token,
// descriptions included. Use one as a collision-free private key.
type Token struct {
	description string
}

// NewToken creates a fresh Token. The description is purely informational.
func NewToken(description string) *Token {
	return &Token{description: description}
}

func (t *Token) String() string {
	return t.description
}
