package polish

import (
	"strconv"
	"strings"
	"unicode"
)

func isDelimiter(ch rune) bool {
	return unicode.IsSpace(ch) || ch == '(' || ch == ')'
}

// Scan splits a line into tokens. An empty line gives no tokens and no
// error; whether that is a valid line is up to the parser.
func Scan(text string) ([]Token, error) {
	buf := NewBuffer(strings.NewReader(text))
	tokens := []Token{}

	for {
		ch, ok := buf.Peek()
		if !ok {
			return tokens, nil
		}

		if unicode.IsSpace(ch) {
			buf.Pop()
			continue
		}

		switch ch {
		case '(':
			buf.Pop()
			tokens = append(tokens, LPar())
			continue
		case ')':
			buf.Pop()
			tokens = append(tokens, RPar())
			continue
		}

		// ch is not a delimiter, so the word has at least one rune
		word := string(buf.TakeUntil(isDelimiter))

		token, err := interpretWord(word)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, token)
	}
}

func interpretWord(word string) (Token, error) {
	// operators must be matched first, "-" alone is subtraction
	if op, isOp := LookupOperator(word); isOp {
		return OperatorTok(op), nil
	}

	first := []rune(word)[0]

	if ('0' <= first && first <= '9') || first == '-' {
		return matchNumber(word)
	}

	if unicode.IsLetter(first) {
		if k, isKeyword := keywords[word]; isKeyword {
			return KeywordTok(k), nil
		}
		return Name(word), nil
	}

	return Token{}, lexErrorf("Unrecognized token '%s'", word)
}

func matchNumber(word string) (Token, error) {
	// ParseFloat also takes Go literal forms, only plain decimals are numbers
	digits := strings.TrimPrefix(word, "-")
	if strings.ContainsRune(word, '_') || strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		return Token{}, lexErrorf("Invalid number '%s'", word)
	}
	f, err := strconv.ParseFloat(word, 64)
	if err != nil {
		return Token{}, lexErrorf("Invalid number '%s'", word)
	}
	return Literal(f), nil
}
