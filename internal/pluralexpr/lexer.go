package pluralexpr

import "strconv"

type tokenKind uint8

const (
	tokenEOF tokenKind = iota
	tokenVar
	tokenNumber
	tokenOr
	tokenAnd
	tokenEq
	tokenNe
	tokenLt
	tokenLte
	tokenGt
	tokenGte
	tokenPlus
	tokenMinus
	tokenStar
	tokenSlash
	tokenPercent
	tokenNot
	tokenQuestion
	tokenColon
	tokenLParen
	tokenRParen
)

type token struct {
	kind   tokenKind
	offset int
	text   string
	value  int64
}

// lex splits src into tokens. The trailing token is always tokenEOF.
func lex(src string) ([]token, error) {
	var tokens []token
	push := func(kind tokenKind, offset int, text string) {
		tokens = append(tokens, token{kind: kind, offset: offset, text: text})
	}
	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c >= '0' && c <= '9':
			start := i
			for i < len(src) && src[i] >= '0' && src[i] <= '9' {
				i++
			}
			text := src[start:i]
			value, err := strconv.ParseInt(text, 10, 64)
			if err != nil {
				return nil, &ParseError{Offset: start, Got: text, Expected: []string{"integer"}}
			}
			tokens = append(tokens, token{
				kind: tokenNumber, offset: start, text: text, value: value,
			})
		case isLetter(c):
			start := i
			for i < len(src) && isLetter(src[i]) {
				i++
			}
			switch word := src[start:i]; word {
			case "n":
				push(tokenVar, start, word)
			case "or":
				push(tokenOr, start, word)
			default:
				return nil, &ParseError{
					Offset: start, Got: word, Expected: []string{"n", "or"},
				}
			}
		case c == '|':
			if i+1 >= len(src) || src[i+1] != '|' {
				return nil, &ParseError{Offset: i, Got: "|", Expected: []string{"||"}}
			}
			push(tokenOr, i, "||")
			i += 2
		case c == '&':
			if i+1 >= len(src) || src[i+1] != '&' {
				return nil, &ParseError{Offset: i, Got: "&", Expected: []string{"&&"}}
			}
			push(tokenAnd, i, "&&")
			i += 2
		case c == '=':
			if i+1 >= len(src) || src[i+1] != '=' {
				return nil, &ParseError{Offset: i, Got: "=", Expected: []string{"=="}}
			}
			push(tokenEq, i, "==")
			i += 2
		case c == '!':
			if i+1 < len(src) && src[i+1] == '=' {
				push(tokenNe, i, "!=")
				i += 2
			} else {
				push(tokenNot, i, "!")
				i++
			}
		case c == '<':
			if i+1 < len(src) && src[i+1] == '=' {
				push(tokenLte, i, "<=")
				i += 2
			} else {
				push(tokenLt, i, "<")
				i++
			}
		case c == '>':
			if i+1 < len(src) && src[i+1] == '=' {
				push(tokenGte, i, ">=")
				i += 2
			} else {
				push(tokenGt, i, ">")
				i++
			}
		case c == '+':
			push(tokenPlus, i, "+")
			i++
		case c == '-':
			push(tokenMinus, i, "-")
			i++
		case c == '*':
			push(tokenStar, i, "*")
			i++
		case c == '/':
			push(tokenSlash, i, "/")
			i++
		case c == '%':
			push(tokenPercent, i, "%")
			i++
		case c == '?':
			push(tokenQuestion, i, "?")
			i++
		case c == ':':
			push(tokenColon, i, ":")
			i++
		case c == '(':
			push(tokenLParen, i, "(")
			i++
		case c == ')':
			push(tokenRParen, i, ")")
			i++
		default:
			return nil, &ParseError{Offset: i, Got: string(c)}
		}
	}
	push(tokenEOF, len(src), "")
	return tokens, nil
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
