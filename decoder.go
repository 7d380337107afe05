package poreader

import "strings"

// decoder is the single-token-lookahead protocol the unit assembler
// runs against.
type decoder interface {
	// fetch consumes the pending Message if its tag equals tag and its
	// obsolete marker matches, then concatenates every directly
	// following Continuation carrying exactly the same flag prefix.
	// A non-matching pending token leaves the stream untouched and
	// reports ok=false.
	fetch(tag string, obsolete bool) (text string, ok bool, err error)

	// expectEnd succeeds at end of input and fails with a parse error
	// naming expected otherwise.
	expectEnd(expected string) error
}

func (ts *tokenStream) fetch(tag string, obsolete bool) (string, bool, error) {
	tok, ok, err := ts.peek()
	if err != nil {
		return "", false, err
	}
	if !ok || tok.kind != lineMessage || tok.tag != tag ||
		strings.HasPrefix(tok.flag, "~") != obsolete {
		return "", false, nil
	}
	ts.advance()
	prefix := tok.flag
	var b strings.Builder
	b.WriteString(tok.text)
	for {
		tok, ok, err := ts.peek()
		if err != nil {
			return "", false, err
		}
		if !ok || tok.kind != lineContinuation || tok.flag != prefix {
			break
		}
		ts.advance()
		b.WriteString(tok.text)
	}
	return b.String(), true, nil
}

func (ts *tokenStream) expectEnd(expected string) error {
	tok, ok, err := ts.peek()
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	switch tok.kind {
	case lineMessage:
		return newParseError(tok.n, tok.flag, expected)
	case lineContinuation:
		return newParseError(tok.n, `"`, expected)
	case lineComment:
		return newParseError(tok.n, "#"+string(tok.ckind), expected)
	}
	return nil
}
