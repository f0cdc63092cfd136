package main

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/Julian-Alberts/gyard"
)

// The conversion library leaves tokenizing to its caller, so this command
// carries its own small lexer for a numeric expression vocabulary.

type inputToken = gyard.InputToken[float64, string, gyard.DefaultOperator]
type outputToken = gyard.OutputToken[float64, string, gyard.DefaultOperator]

var (
	valTok    = gyard.Value[float64, string, gyard.DefaultOperator]
	opTok     = gyard.Op[float64, string, gyard.DefaultOperator]
	fnTok     = gyard.Function[float64, string, gyard.DefaultOperator]
	lparenTok = gyard.LeftParen[float64, string, gyard.DefaultOperator]
	rparenTok = gyard.RightParen[float64, string, gyard.DefaultOperator]
	sepTok    = gyard.ArgSeparator[float64, string, gyard.DefaultOperator]
)

var wordOperators = map[string]gyard.DefaultOperator{
	"and": gyard.OpAnd,
	"or":  gyard.OpOr,
	"xor": gyard.OpXor,
}

type lexer struct {
	expr []rune
	pos  int
}

func tokenize(expr string) ([]inputToken, error) {
	l := &lexer{expr: []rune(expr)}
	var tokens []inputToken

	for {
		tok, ok, err := l.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

func (l *lexer) peek() (rune, bool) {
	if l.pos >= len(l.expr) {
		return 0, false
	}
	return l.expr[l.pos], true
}

func (l *lexer) next() (inputToken, bool, error) {
	for {
		ch, ok := l.peek()
		if !ok {
			return inputToken{}, false, nil
		}
		if !unicode.IsSpace(ch) {
			break
		}
		l.pos++
	}

	ch, _ := l.peek()
	switch {
	case ch == '(':
		l.pos++
		return lparenTok(), true, nil
	case ch == ')':
		l.pos++
		return rparenTok(), true, nil
	case ch == ',':
		l.pos++
		return sepTok(), true, nil
	case unicode.IsDigit(ch) || ch == '.':
		return l.scanNumber()
	case unicode.IsLetter(ch):
		return l.scanWord()
	default:
		return l.scanOperator()
	}
}

func (l *lexer) scanNumber() (inputToken, bool, error) {
	start := l.pos
	for {
		ch, ok := l.peek()
		if !ok || (!unicode.IsDigit(ch) && ch != '.') {
			break
		}
		l.pos++
	}
	text := string(l.expr[start:l.pos])
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return inputToken{}, false, l.errorf(start, "invalid number %q", text)
	}
	return valTok(v), true, nil
}

// scanWord reads an identifier. The word operators and/or/xor become
// operator tokens, everything else is taken as a function name.
func (l *lexer) scanWord() (inputToken, bool, error) {
	start := l.pos
	for {
		ch, ok := l.peek()
		if !ok || (!unicode.IsLetter(ch) && !unicode.IsDigit(ch) && ch != '_') {
			break
		}
		l.pos++
	}
	word := string(l.expr[start:l.pos])
	if op, ok := wordOperators[strings.ToLower(word)]; ok {
		return opTok(op), true, nil
	}
	return fnTok(word), true, nil
}

func (l *lexer) scanOperator() (inputToken, bool, error) {
	start := l.pos
	ch, _ := l.peek()
	l.pos++
	next, hasNext := l.peek()

	var op gyard.DefaultOperator
	switch ch {
	case '+':
		op = gyard.OpAdd
	case '-':
		op = gyard.OpSub
	case '*':
		op = gyard.OpMul
	case '/':
		op = gyard.OpDiv
	case '^':
		op = gyard.OpPow
	case '<':
		op = gyard.OpLess
		if hasNext && next == '=' {
			op = gyard.OpLessEq
			l.pos++
		}
	case '>':
		op = gyard.OpGreater
		if hasNext && next == '=' {
			op = gyard.OpGreaterEq
			l.pos++
		}
	case '=':
		if !hasNext || next != '=' {
			return inputToken{}, false, l.errorf(start, "expected '==' but got '='")
		}
		op = gyard.OpEq
		l.pos++
	case '!':
		if !hasNext || next != '=' {
			return inputToken{}, false, l.errorf(start, "expected '!=' but got '!'")
		}
		op = gyard.OpNotEq
		l.pos++
	default:
		return inputToken{}, false, l.errorf(start, "unexpected character %q", ch)
	}
	return opTok(op), true, nil
}

func (l *lexer) errorf(pos int, msg string, args ...interface{}) error {
	return fmt.Errorf("offset %d: %s", pos, fmt.Sprintf(msg, args...))
}

func render(postfix []outputToken) string {
	parts := make([]string, len(postfix))
	for i, tok := range postfix {
		switch tok.Kind {
		case gyard.KindValue:
			parts[i] = strconv.FormatFloat(tok.Value, 'g', -1, 64)
		case gyard.KindOperator:
			parts[i] = tok.Op.String()
		case gyard.KindFunction:
			parts[i] = tok.Func
		}
	}
	return strings.Join(parts, " ")
}
