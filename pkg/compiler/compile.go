package compiler

// Compile runs the full pipeline — lex, parse and bind, generate — over
// a single translation unit's source text and returns the resulting
// x86-64 assembly. The first error from any stage is returned as-is, so
// callers can type-switch on *LexError, *ParseError, or *SemanticError.
func Compile(src string) (string, error) {
	tokens, err := Lex(src)
	if err != nil {
		return "", err
	}

	tu, err := Parse(tokens, src)
	if err != nil {
		return "", err
	}

	asm, err := Generate(tu)
	if err != nil {
		return "", err
	}

	return asm, nil
}
