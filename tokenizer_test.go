package poreader

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifyLine(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		source string
		ok     bool
		want   poLine
	}{
		{source: "---"},
		{source: `"--`},
		{source: `msgid "--`},
		{source: `msgxx "--"`},
		{source: "-# Something"},
		{source: "", ok: true, want: poLine{kind: lineBlank}},
		{source: "      ", ok: true, want: poLine{kind: lineBlank}},
		{source: "   \t\r   ", ok: true, want: poLine{kind: lineBlank}},
		{
			source: `msgid "hello\n\tworld"`,
			ok:     true,
			want: poLine{
				kind: lineMessage, n: 123, tag: "msgid", text: "hello\n\tworld",
			},
		},
		{
			source: `#| msgstr[3] "hello\n\tworld"`,
			ok:     true,
			want: poLine{
				kind: lineMessage, n: 123, flag: "|",
				tag: "|msgstr[3]", text: "hello\n\tworld",
			},
		},
		{
			source: `#~ msgid "old"`,
			ok:     true,
			want: poLine{
				kind: lineMessage, n: 123, flag: "~", tag: "msgid", text: "old",
			},
		},
		{
			source: `#~| msgid "older"`,
			ok:     true,
			want: poLine{
				kind: lineMessage, n: 123, flag: "~|", tag: "|msgid", text: "older",
			},
		},
		{
			source: `"hello\n\tworld"`,
			ok:     true,
			want:   poLine{kind: lineContinuation, n: 123, text: "hello\n\tworld"},
		},
		{
			source: `#| "path: xx\\yy"`,
			ok:     true,
			want: poLine{
				kind: lineContinuation, n: 123, flag: "|", text: `path: xx\yy`,
			},
		},
		{
			source: "#, My comment",
			ok:     true,
			want:   poLine{kind: lineComment, n: 123, ckind: ',', text: "My comment"},
		},
		{
			source: "# Another comment",
			ok:     true,
			want:   poLine{kind: lineComment, n: 123, ckind: ' ', text: "Another comment"},
		},
		{
			source: "#$ Special comment",
			ok:     true,
			want:   poLine{kind: lineComment, n: 123, ckind: '$', text: "Special comment"},
		},
		{
			source: "#",
			ok:     true,
			want:   poLine{kind: lineComment, n: 123, ckind: ' '},
		},
	} {
		t.Run(tt.source, func(t *testing.T) {
			t.Parallel()
			got, ok := classifyLine(tt.source, 123)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				require.Equal(t, tt.want, got)
			}
		})
	}
}

func TestUnescape(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Hello\nworld\r\n\t!", unescape(`Hello\nworld\r\n\t!`))
	require.Equal(t, "Sub\"\tstring", unescape(`Sub\"\tstring`))
	require.Equal(t, "My\\Path: \tValue", unescape(`My\\Path: \tValue`))

	// Unknown sequences pass through verbatim.
	require.Equal(t, `a\x b\0`, unescape(`a\x b\0`))
	require.Equal(t, "plain", unescape("plain"))
}

func TestLineScanner(t *testing.T) {
	t.Parallel()

	t.Run("skips blank lines and numbers from one", func(t *testing.T) {
		t.Parallel()
		s := newLineScanner(strings.NewReader(
			"\n\nmsgid \"a\"\n\nmsgstr \"b\"\n# c\n"))

		tok, ok, err := s.next()
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, 3, tok.n)
		require.Equal(t, "msgid", tok.tag)

		tok, ok, err = s.next()
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, 5, tok.n)
		require.Equal(t, "msgstr", tok.tag)

		tok, ok, err = s.next()
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, 6, tok.n)
		require.Equal(t, lineComment, tok.kind)

		_, ok, err = s.next()
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("blank input yields no tokens", func(t *testing.T) {
		t.Parallel()
		s := newLineScanner(strings.NewReader("\n   \n\t\n\n"))
		_, ok, err := s.next()
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("last line without newline", func(t *testing.T) {
		t.Parallel()
		s := newLineScanner(strings.NewReader("msgid \"a\""))
		tok, ok, err := s.next()
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, "msgid", tok.tag)
		_, ok, err = s.next()
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("windows line endings", func(t *testing.T) {
		t.Parallel()
		s := newLineScanner(strings.NewReader("msgid \"a\"\r\nmsgstr \"b\"\r\n"))
		tok, ok, err := s.next()
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, "a", tok.text)
		tok, ok, err = s.next()
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, "b", tok.text)
	})

	t.Run("unclassifiable line is a parse error", func(t *testing.T) {
		t.Parallel()
		s := newLineScanner(strings.NewReader("msgid \"a\"\n---\n"))
		_, ok, err := s.next()
		require.NoError(t, err)
		require.True(t, ok)

		_, _, err = s.next()
		var perr *Error
		require.ErrorAs(t, err, &perr)
		require.Equal(t, ErrorKindParse, perr.Kind)
		require.Equal(t, 2, perr.Line)
		require.Equal(t, "---", perr.Got)
		require.Empty(t, perr.Expected)

		// The scanner stays exhausted after an error.
		_, ok, err = s.next()
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("io error carries the line number", func(t *testing.T) {
		t.Parallel()
		cause := errors.New("broken pipe")
		s := newLineScanner(&failingReader{
			data: []byte("msgid \"a\"\n"), err: cause,
		})
		_, ok, err := s.next()
		require.NoError(t, err)
		require.True(t, ok)

		_, _, err = s.next()
		var perr *Error
		require.ErrorAs(t, err, &perr)
		require.Equal(t, ErrorKindIO, perr.Kind)
		require.Equal(t, 2, perr.Line)
		require.ErrorIs(t, err, cause)
	})
}

// failingReader yields data, then err.
type failingReader struct {
	data []byte
	err  error
}

func (r *failingReader) Read(p []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, r.err
	}
	n := copy(p, r.data)
	r.data = r.data[n:]
	return n, nil
}
