package calc

import "fmt"

// Evaluate parses and evaluates expr, returning the rendered result.
func Evaluate(expr string) (string, error) {
	p := &parser{lexer: NewLexer(expr)}
	if err := p.next(); err != nil {
		return "", err
	}
	if p.tok.Type == TokenEOF {
		return "", fmt.Errorf("%w: empty expression", ErrInvalidExpression)
	}

	n, err := p.parseExpr()
	if err != nil {
		return "", err
	}
	if p.tok.Type != TokenEOF {
		return "", p.unexpected()
	}
	return n.String(), nil
}

// parser evaluates while it descends; there is no intermediate tree.
//
//	expr   := term (('+' | '-') term)*
//	term   := factor (('*' | '/' | '//') factor)*
//	factor := ('+' | '-') factor | power
//	power  := NUMBER ['**' factor]
type parser struct {
	lexer *Lexer
	tok   Token
}

func (p *parser) next() error {
	tok, err := p.lexer.NextToken()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

func (p *parser) unexpected() error {
	return fmt.Errorf("%w: unexpected %s at %d", ErrInvalidExpression, p.tok.Type, p.tok.Pos)
}

func (p *parser) parseExpr() (number, error) {
	left, err := p.parseTerm()
	if err != nil {
		return number{}, err
	}

	for p.tok.Type == TokenPlus || p.tok.Type == TokenMinus {
		op := p.tok.Type
		if err := p.next(); err != nil {
			return number{}, err
		}
		right, err := p.parseTerm()
		if err != nil {
			return number{}, err
		}
		if op == TokenPlus {
			left, err = add(left, right)
		} else {
			left, err = sub(left, right)
		}
		if err != nil {
			return number{}, err
		}
	}
	return left, nil
}

func (p *parser) parseTerm() (number, error) {
	left, err := p.parseFactor()
	if err != nil {
		return number{}, err
	}

	for p.tok.Type == TokenStar || p.tok.Type == TokenSlash || p.tok.Type == TokenFloorDiv {
		op := p.tok.Type
		if err := p.next(); err != nil {
			return number{}, err
		}
		right, err := p.parseFactor()
		if err != nil {
			return number{}, err
		}
		switch op {
		case TokenStar:
			left, err = mul(left, right)
		case TokenSlash:
			left, err = div(left, right)
		default:
			left, err = floorDiv(left, right)
		}
		if err != nil {
			return number{}, err
		}
	}
	return left, nil
}

func (p *parser) parseFactor() (number, error) {
	switch p.tok.Type {
	case TokenPlus, TokenMinus:
		op := p.tok.Type
		if err := p.next(); err != nil {
			return number{}, err
		}
		operand, err := p.parseFactor()
		if err != nil {
			return number{}, err
		}
		if op == TokenMinus {
			return negate(operand), nil
		}
		return operand, nil
	default:
		return p.parsePower()
	}
}

func (p *parser) parsePower() (number, error) {
	if p.tok.Type != TokenNumber {
		return number{}, p.unexpected()
	}
	base, err := parseLiteral(p.tok.Value)
	if err != nil {
		return number{}, err
	}
	if err := p.next(); err != nil {
		return number{}, err
	}

	if p.tok.Type != TokenPower {
		return base, nil
	}
	if err := p.next(); err != nil {
		return number{}, err
	}
	exp, err := p.parseFactor()
	if err != nil {
		return number{}, err
	}
	return pow(base, exp)
}
