package polish

import "fmt"

type TokenKind int

const (
	LiteralToken TokenKind = iota
	LParToken
	RParToken
	OperatorToken
	NameToken
	KeywordToken
)

// Keyword introduces a statement.
type Keyword int

const (
	Set Keyword = iota
	Def
)

var keywords = map[string]Keyword{
	"set": Set,
	"def": Def,
}

func (k Keyword) String() string {
	switch k {
	case Set:
		return "set"
	case Def:
		return "def"
	default:
		return fmt.Sprintf("Keyword(%d)", int(k))
	}
}

// Token is one lexical unit. Only the field matching Kind is meaningful.
type Token struct {
	Kind    TokenKind
	Value   float64
	Op      Operator
	Name    string
	Keyword Keyword
}

func Literal(x float64) Token { return Token{Kind: LiteralToken, Value: x} }
func LPar() Token { return Token{Kind: LParToken} }
func RPar() Token { return Token{Kind: RParToken} }
func OperatorTok(op Operator) Token { return Token{Kind: OperatorToken, Op: op} }
func Name(name string) Token { return Token{Kind: NameToken, Name: name} }
func KeywordTok(k Keyword) Token { return Token{Kind: KeywordToken, Keyword: k} }

// String renders the token the way it is written in source.
func (t Token) String() string {
	switch t.Kind {
	case LiteralToken:
		return FormatNumber(t.Value)
	case LParToken:
		return "("
	case RParToken:
		return ")"
	case OperatorToken:
		return t.Op.String()
	case NameToken:
		return t.Name
	case KeywordToken:
		return t.Keyword.String()
	default:
		return fmt.Sprintf("Token(%d)", int(t.Kind))
	}
}

func (k TokenKind) String() string {
	switch k {
	case LiteralToken:
		return "Literal"
	case LParToken:
		return "LPar"
	case RParToken:
		return "RPar"
	case OperatorToken:
		return "Operator"
	case NameToken:
		return "Name"
	case KeywordToken:
		return "Keyword"
	default:
		return fmt.Sprintf("TokenKind(%d)", int(k))
	}
}
