package polish

// Parse builds the tree of one line. Every token has to be used: a line
// that continues after its outer form is rejected.
func Parse(tokens []Token) (Node, error) {
	p := &parser{tokens: tokens}

	t, ok := p.next()
	if !ok || t.Kind != LParToken {
		return nil, syntaxErrorf("Parentheses not present or wrongly formatted")
	}

	node, err := p.parseLine()
	if err != nil {
		return nil, err
	}

	if t, ok := p.next(); ok {
		return nil, syntaxErrorf("Unexpected token '%v' after end of expression", t)
	}
	return node, nil
}

type parser struct {
	tokens []Token
	pos    int
}

func (p *parser) next() (Token, bool) {
	if p.pos >= len(p.tokens) {
		return Token{}, false
	}
	t := p.tokens[p.pos]
	p.pos++
	return t, true
}

// parseLine parses what follows the outer '(': an expression, or a
// statement when the head is a keyword.
func (p *parser) parseLine() (Node, error) {
	t, ok := p.next()
	if ok && t.Kind == KeywordToken {
		stmt, err := p.parseStatement(t.Keyword)
		if err != nil {
			return nil, err
		}
		return stmt, nil
	}

	expr, err := p.parseHead(t, ok)
	if err != nil {
		return nil, err
	}
	return expr, nil
}

// parseHead parses an operator or function call whose head token is t.
func (p *parser) parseHead(t Token, ok bool) (*Expression, error) {
	if !ok {
		return nil, syntaxErrorf("Unable to find last parentheses of expression")
	}
	switch t.Kind {
	case OperatorToken:
		return p.parseArgs(OperatorCall(t.Op))
	case NameToken:
		return p.parseArgs(FunctionCall(t.Name))
	default:
		return nil, syntaxErrorf("Invalid first token '%v'", t)
	}
}

func (p *parser) parseSubExpression() (*Expression, error) {
	t, ok := p.next()
	return p.parseHead(t, ok)
}

// parseArgs reads arguments into expr until the closing ')'.
func (p *parser) parseArgs(expr *Expression) (*Expression, error) {
	for {
		t, ok := p.next()
		if !ok {
			return nil, syntaxErrorf("Unable to find last parentheses of expression")
		}

		switch t.Kind {
		case LParToken:
			sub, err := p.parseSubExpression()
			if err != nil {
				return nil, err
			}
			expr.Args = append(expr.Args, sub)
		case RParToken:
			return expr, nil
		case LiteralToken:
			expr.Args = append(expr.Args, Number(t.Value))
		case NameToken:
			expr.Args = append(expr.Args, Variable(t.Name))
		case OperatorToken:
			return nil, syntaxErrorf("Operator '%v' in wrong position", t.Op)
		case KeywordToken:
			return nil, syntaxErrorf("Keyword '%v' in wrong position", t.Keyword)
		default:
			return nil, syntaxErrorf("Unexpected token %v", t.Kind)
		}
	}
}

func (p *parser) parseStatement(k Keyword) (*Statement, error) {
	switch k {
	case Set:
		return p.parseAssign()
	case Def:
		return nil, notImplementedf("Function definition is not yet implemented")
	default:
		return nil, syntaxErrorf("Unknown keyword %v", k)
	}
}

// parseAssign parses `name value)` where value is a literal or a
// parenthesized expression.
func (p *parser) parseAssign() (*Statement, error) {
	t, ok := p.next()
	if !ok {
		return nil, syntaxErrorf("Unexpected end of token-stream")
	}
	if t.Kind != NameToken {
		return nil, syntaxErrorf("Unexpected %v '%v', expecting Name", t.Kind, t)
	}
	stmt := &Statement{Kind: Assign, Name: t.Name}

	t, ok = p.next()
	if !ok {
		return nil, syntaxErrorf("Unexpected end of token-stream")
	}
	switch t.Kind {
	case LParToken:
		rhs, err := p.parseSubExpression()
		if err != nil {
			return nil, err
		}
		stmt.RHS = rhs
	case LiteralToken:
		stmt.RHS = Number(t.Value)
	default:
		return nil, syntaxErrorf("Unexpected %v '%v', expecting LPar or Literal", t.Kind, t)
	}

	t, ok = p.next()
	if !ok {
		return nil, syntaxErrorf("Unable to find last parentheses of statement")
	}
	if t.Kind != RParToken {
		return nil, syntaxErrorf("Unexpected %v '%v', expecting RPar", t.Kind, t)
	}
	return stmt, nil
}
