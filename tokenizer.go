package poreader

import (
	"bufio"
	"io"
	"regexp"
	"strings"
)

var (
	// A message line is an optional "#~", "#|" or "#~|" marker, an
	// optional keyword and a double-quoted string. Without a keyword the
	// line continues the preceding message.
	reMessage = regexp.MustCompile(
		`^\s*(?:#(~?\|?))?\s*(msgctxt|msgid|msgid_plural|msgstr(?:\[(?:0|[1-9]\d*)\])?)?\s*"(.*)"\s*$`)

	reComment = regexp.MustCompile(`^\s*#(.)?\s*(.*)$`)

	reEscape = regexp.MustCompile(`\\([rtn"\\])`)
)

// unescape decodes the five escape sequences of PO string content.
// Any other backslash sequence passes through verbatim.
func unescape(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	return reEscape.ReplaceAllStringFunc(s, func(m string) string {
		switch m[1] {
		case 'n':
			return "\n"
		case 'r':
			return "\r"
		case 't':
			return "\t"
		case '"':
			return `"`
		}
		return `\`
	})
}

// classifyLine classifies one physical line.
// Classification is ordered: blank, message, comment.
func classifyLine(line string, n int) (poLine, bool) {
	if strings.TrimSpace(line) == "" {
		return poLine{kind: lineBlank}, true
	}
	if m := reMessage.FindStringSubmatch(line); m != nil {
		flag, tag, text := m[1], m[2], unescape(m[3])
		if tag == "" {
			return poLine{kind: lineContinuation, n: n, flag: flag, text: text}, true
		}
		if strings.HasSuffix(flag, "|") {
			tag = "|" + tag
		}
		return poLine{kind: lineMessage, n: n, flag: flag, tag: tag, text: text}, true
	}
	if m := reComment.FindStringSubmatch(line); m != nil {
		kind := ' '
		if m[1] != "" {
			kind = rune(m[1][0])
		}
		return poLine{kind: lineComment, n: n, ckind: kind, text: m[2]}, true
	}
	return poLine{}, false
}

// lineScanner reads physical lines and yields classified non-blank
// tokens with 1-based line numbers. The scanner stops permanently after
// the first error.
type lineScanner struct {
	r    *bufio.Reader
	n    int
	done bool
}

func newLineScanner(r io.Reader) *lineScanner {
	return &lineScanner{r: bufio.NewReader(r)}
}

// next returns the next non-blank token. ok is false at end of input.
func (s *lineScanner) next() (tok poLine, ok bool, err error) {
	for !s.done {
		line, readErr := s.r.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			s.done = true
			return poLine{}, false, newIOError(s.n+1, readErr)
		}
		eof := readErr == io.EOF
		if eof && line == "" {
			s.done = true
			return poLine{}, false, nil
		}
		s.n++
		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
		tok, ok := classifyLine(line, s.n)
		if !ok {
			s.done = true
			return poLine{}, false, newParseError(s.n, line, "")
		}
		if eof {
			s.done = true
		}
		if tok.kind != lineBlank {
			return tok, true, nil
		}
	}
	return poLine{}, false, nil
}

// tokenStream adds the single-token lookahead the decoding protocol
// relies on. An error is yielded once, afterwards the stream reads as
// exhausted.
type tokenStream struct {
	scan *lineScanner
	tok  poLine
	have bool
	done bool
}

func newTokenStream(r io.Reader) *tokenStream {
	return &tokenStream{scan: newLineScanner(r)}
}

// peek returns the pending token without consuming it.
// ok is false at end of input.
func (ts *tokenStream) peek() (tok poLine, ok bool, err error) {
	if ts.have {
		return ts.tok, true, nil
	}
	if ts.done {
		return poLine{}, false, nil
	}
	tok, ok, err = ts.scan.next()
	if err != nil {
		ts.done = true
		return poLine{}, false, err
	}
	if !ok {
		ts.done = true
		return poLine{}, false, nil
	}
	ts.tok, ts.have = tok, true
	return tok, true, nil
}

// advance consumes the token returned by the last peek.
func (ts *tokenStream) advance() { ts.have = false }
