package internal

import "fmt"

// Parser is a recursive-descent, one-token-lookahead parser over a token
// stream already normalized by Lexer.Tokenize. It fills the external
// collaborator role §1/§6 name but leave unspecified in grammar terms; its
// structure (current int, match/check/consume/advance/peek/previous helpers)
// is grounded on mliezun-grotsky's internal/parser.go, adapted from
// grotsky's Pratt-ish brace grammar to Mython's fixed-precedence,
// indentation-delimited one. See SPEC_FULL.md §4.5 for the grammar.
type Parser struct {
	tokens  []Token
	current int

	classes     map[string]*Class
	methodDepth int // >0 while parsing a method body; gates `return`.
}

// NewParser wraps an already-tokenized stream.
func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens, classes: make(map[string]*Class)}
}

// Parse consumes the whole stream and returns the program's root Compound.
func (p *Parser) Parse() (*CompoundStmt, error) {
	stmts := []Executable{}
	for !p.isAtEnd() {
		// Lexer.Tokenize closes blocks still open at end of input with
		// Dedents followed by one more Newline; that Newline ends no
		// statement and is skipped here.
		if p.match(TokNewline) {
			continue
		}
		s, err := p.statement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
	}
	return &CompoundStmt{Stmts: stmts}, nil
}

func (p *Parser) statement() (Executable, error) {
	switch {
	case p.match(TokClass):
		return p.classDef()
	case p.match(TokIf):
		return p.ifStmt()
	case p.match(TokPrint):
		return p.printStmt()
	case p.match(TokReturn):
		return p.returnStmt()
	default:
		return p.simpleStmt()
	}
}

func (p *Parser) classDef() (Executable, error) {
	name, err := p.consume(TokID)
	if err != nil {
		return nil, err
	}
	var parent *Class
	if p.matchChar('(') {
		parentName, err := p.consume(TokID)
		if err != nil {
			return nil, err
		}
		cls, ok := p.classes[parentName.Text]
		if !ok {
			return nil, p.syntaxErrorf("unknown parent class %q", parentName.Text)
		}
		parent = cls
		if _, err := p.consumeChar(')'); err != nil {
			return nil, err
		}
	}
	if _, err := p.consumeChar(':'); err != nil {
		return nil, err
	}
	if err := p.consumeType(TokNewline); err != nil {
		return nil, err
	}
	if err := p.consumeType(TokIndent); err != nil {
		return nil, err
	}
	cls := &Class{Name: name.Text, Parent: parent}
	for !p.check(TokDedent) && !p.isAtEnd() {
		m, err := p.methodDef()
		if err != nil {
			return nil, err
		}
		cls.Methods = append(cls.Methods, m)
	}
	if err := p.consumeType(TokDedent); err != nil {
		return nil, err
	}
	p.classes[cls.Name] = cls
	return &ClassDefinitionStmt{Class: cls}, nil
}

func (p *Parser) methodDef() (*Method, error) {
	if err := p.consumeType(TokDef); err != nil {
		return nil, err
	}
	name, err := p.consume(TokID)
	if err != nil {
		return nil, err
	}
	if _, err := p.consumeChar('('); err != nil {
		return nil, err
	}
	var params []string
	if !p.checkChar(')') {
		for {
			param, err := p.consume(TokID)
			if err != nil {
				return nil, err
			}
			params = append(params, param.Text)
			if !p.matchChar(',') {
				break
			}
		}
	}
	if _, err := p.consumeChar(')'); err != nil {
		return nil, err
	}
	if _, err := p.consumeChar(':'); err != nil {
		return nil, err
	}
	p.methodDepth++
	body, err := p.block()
	p.methodDepth--
	if err != nil {
		return nil, err
	}
	return &Method{Name: name.Text, FormalParams: params, Body: &MethodBodyStmt{Body: body}}, nil
}

func (p *Parser) ifStmt() (Executable, error) {
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consumeChar(':'); err != nil {
		return nil, err
	}
	thenBranch, err := p.block()
	if err != nil {
		return nil, err
	}
	var elseBranch Executable
	if p.match(TokElse) {
		if _, err := p.consumeChar(':'); err != nil {
			return nil, err
		}
		elseBranch, err = p.block()
		if err != nil {
			return nil, err
		}
	}
	return &IfElseStmt{Cond: cond, Then: thenBranch, Else: elseBranch}, nil
}

func (p *Parser) printStmt() (Executable, error) {
	var args []Executable
	if !p.check(TokNewline) && !p.isAtEnd() {
		for {
			a, err := p.expression()
			if err != nil {
				return nil, err
			}
			args = append(args, a)
			if !p.matchChar(',') {
				break
			}
		}
	}
	if err := p.consumeNewlineOrEOF(); err != nil {
		return nil, err
	}
	return &PrintStmt{Args: args}, nil
}

func (p *Parser) returnStmt() (Executable, error) {
	if p.methodDepth == 0 {
		return nil, p.syntaxErrorf("'return' outside a method body")
	}
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if err := p.consumeNewlineOrEOF(); err != nil {
		return nil, err
	}
	return &ReturnStmt{Expr: expr}, nil
}

func (p *Parser) simpleStmt() (Executable, error) {
	lhs, err := p.expression()
	if err != nil {
		return nil, err
	}
	if p.matchChar('=') {
		rhs, err := p.expression()
		if err != nil {
			return nil, err
		}
		if err := p.consumeNewlineOrEOF(); err != nil {
			return nil, err
		}
		vv, ok := lhs.(*VariableValueExpr)
		if !ok {
			return nil, p.syntaxErrorf("invalid assignment target")
		}
		if len(vv.Path) == 1 {
			return &AssignmentStmt{Name: vv.Path[0], Rhs: rhs}, nil
		}
		return &FieldAssignmentStmt{
			Object: &VariableValueExpr{Path: append([]string{}, vv.Path[:len(vv.Path)-1]...)},
			Field:  vv.Path[len(vv.Path)-1],
			Rhs:    rhs,
		}, nil
	}
	if err := p.consumeNewlineOrEOF(); err != nil {
		return nil, err
	}
	return lhs, nil
}

// block parses "NEWLINE INDENT statement* DEDENT".
func (p *Parser) block() (*CompoundStmt, error) {
	if err := p.consumeType(TokNewline); err != nil {
		return nil, err
	}
	if err := p.consumeType(TokIndent); err != nil {
		return nil, err
	}
	var stmts []Executable
	for !p.check(TokDedent) && !p.isAtEnd() {
		s, err := p.statement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
	}
	if err := p.consumeType(TokDedent); err != nil {
		return nil, err
	}
	return &CompoundStmt{Stmts: stmts}, nil
}

// ---- expression grammar (precedence climbing, fixed levels) ----

func (p *Parser) expression() (Executable, error) { return p.orExpr() }

func (p *Parser) orExpr() (Executable, error) {
	left, err := p.andExpr()
	if err != nil {
		return nil, err
	}
	for p.match(TokOr) {
		right, err := p.andExpr()
		if err != nil {
			return nil, err
		}
		left = &OrExpr{Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) andExpr() (Executable, error) {
	left, err := p.notExpr()
	if err != nil {
		return nil, err
	}
	for p.match(TokAnd) {
		right, err := p.notExpr()
		if err != nil {
			return nil, err
		}
		left = &AndExpr{Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) notExpr() (Executable, error) {
	if p.match(TokNot) {
		arg, err := p.notExpr()
		if err != nil {
			return nil, err
		}
		return &NotExpr{Arg: arg}, nil
	}
	return p.comparison()
}

var comparisonTokens = map[TokenType]Comparator{
	TokEq:          Equal,
	TokNotEq:       NotEqual,
	TokLessOrEq:    LessOrEqual,
	TokGreaterOrEq: GreaterOrEqual,
}

func (p *Parser) comparison() (Executable, error) {
	left, err := p.addition()
	if err != nil {
		return nil, err
	}
	if cmp, ok := comparisonTokens[p.peek().Type]; ok {
		p.advance()
		right, err := p.addition()
		if err != nil {
			return nil, err
		}
		return &ComparisonExpr{Left: left, Right: right, Cmp: cmp}, nil
	}
	if p.checkChar('<') {
		p.advance()
		right, err := p.addition()
		if err != nil {
			return nil, err
		}
		return &ComparisonExpr{Left: left, Right: right, Cmp: Less}, nil
	}
	if p.checkChar('>') {
		p.advance()
		right, err := p.addition()
		if err != nil {
			return nil, err
		}
		return &ComparisonExpr{Left: left, Right: right, Cmp: Greater}, nil
	}
	return left, nil
}

func (p *Parser) addition() (Executable, error) {
	left, err := p.term()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.matchChar('+'):
			right, err := p.term()
			if err != nil {
				return nil, err
			}
			left = &AddExpr{Left: left, Right: right}
		case p.matchChar('-'):
			right, err := p.term()
			if err != nil {
				return nil, err
			}
			left = &SubExpr{Left: left, Right: right}
		default:
			return left, nil
		}
	}
}

func (p *Parser) term() (Executable, error) {
	left, err := p.unary()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.matchChar('*'):
			right, err := p.unary()
			if err != nil {
				return nil, err
			}
			left = &MultExpr{Left: left, Right: right}
		case p.matchChar('/'):
			right, err := p.unary()
			if err != nil {
				return nil, err
			}
			left = &DivExpr{Left: left, Right: right}
		default:
			return left, nil
		}
	}
}

// unary lowers a leading '-' to Sub(0, operand): §4.4's AST node set has no
// dedicated Negate node, so this is the only reading consistent with it.
func (p *Parser) unary() (Executable, error) {
	if p.matchChar('-') {
		operand, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &SubExpr{Left: &NumericConstExpr{Value: 0}, Right: operand}, nil
	}
	return p.call()
}

func (p *Parser) call() (Executable, error) {
	tok := p.peek()
	// "str" is left to primary, which lowers str(x) to Stringify.
	if tok.Type == TokID && tok.Text != "str" {
		p.advance()
		if p.checkChar('(') {
			p.advance()
			args, err := p.argList()
			if err != nil {
				return nil, err
			}
			if _, err := p.consumeChar(')'); err != nil {
				return nil, err
			}
			return &NewInstanceExpr{ClassExpr: &VariableValueExpr{Path: []string{tok.Text}}, Args: args}, nil
		}
		return p.dottedTrailer([]string{tok.Text})
	}
	return p.primary()
}

// dottedTrailer consumes ".id" repeatedly, building a dotted VariableValue
// path, and stops to build a MethodCall the first time a trailing "(" is
// seen (§6: "dotted-name read a.b.c recursively descends"; method calls
// terminate the chain since this grammar doesn't need call chaining).
func (p *Parser) dottedTrailer(path []string) (Executable, error) {
	var result Executable = &VariableValueExpr{Path: path}
	for p.checkChar('.') {
		p.advance()
		field, err := p.consume(TokID)
		if err != nil {
			return nil, err
		}
		if p.checkChar('(') {
			p.advance()
			args, err := p.argList()
			if err != nil {
				return nil, err
			}
			if _, err := p.consumeChar(')'); err != nil {
				return nil, err
			}
			return &MethodCallExpr{Object: result, Name: field.Text, Args: args}, nil
		}
		path = append(append([]string{}, path...), field.Text)
		result = &VariableValueExpr{Path: path}
	}
	return result, nil
}

func (p *Parser) argList() ([]Executable, error) {
	var args []Executable
	if p.checkChar(')') {
		return args, nil
	}
	for {
		a, err := p.expression()
		if err != nil {
			return nil, err
		}
		args = append(args, a)
		if !p.matchChar(',') {
			break
		}
	}
	return args, nil
}

func (p *Parser) primary() (Executable, error) {
	tok := p.peek()
	switch {
	case p.match(TokNumber):
		return &NumericConstExpr{Value: Number(tok.Number)}, nil
	case p.match(TokString):
		return &StringConstExpr{Value: String(tok.Text)}, nil
	case p.match(TokTrue):
		return &BoolConstExpr{Value: Bool(true)}, nil
	case p.match(TokFalse):
		return &BoolConstExpr{Value: Bool(false)}, nil
	case p.match(TokNone):
		return &NoneExpr{}, nil
	case p.checkChar('('):
		p.advance()
		e, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consumeChar(')'); err != nil {
			return nil, err
		}
		return e, nil
	case p.match(TokID):
		if tok.Text == "str" && p.checkChar('(') {
			p.advance()
			arg, err := p.expression()
			if err != nil {
				return nil, err
			}
			if _, err := p.consumeChar(')'); err != nil {
				return nil, err
			}
			return &StringifyExpr{Arg: arg}, nil
		}
		return p.dottedTrailer([]string{tok.Text})
	default:
		return nil, p.syntaxErrorf("unexpected token %v", tok)
	}
}

// ---- token-stream helpers ----

func (p *Parser) isAtEnd() bool { return p.peek().Type == TokEOF }

func (p *Parser) peek() Token { return p.tokens[p.current] }

func (p *Parser) advance() Token {
	tok := p.peek()
	if !p.isAtEnd() {
		p.current++
	}
	return tok
}

func (p *Parser) check(tt TokenType) bool { return p.peek().Type == tt }

func (p *Parser) checkChar(c rune) bool {
	t := p.peek()
	return t.Type == TokChar && t.Char == c
}

func (p *Parser) match(tt TokenType) bool {
	if p.check(tt) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) matchChar(c rune) bool {
	if p.checkChar(c) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) consume(tt TokenType) (Token, error) {
	if p.check(tt) {
		return p.advance(), nil
	}
	return Token{}, p.syntaxErrorf("expected %v, found %v", tt, p.peek())
}

func (p *Parser) consumeType(tt TokenType) error {
	_, err := p.consume(tt)
	return err
}

func (p *Parser) consumeChar(c rune) (Token, error) {
	if p.checkChar(c) {
		return p.advance(), nil
	}
	return Token{}, p.syntaxErrorf("expected %q, found %v", c, p.peek())
}

// consumeNewlineOrEOF accepts a trailing Newline, and also accepts end of
// input or a Dedent directly without consuming it: when the source's last
// line has no Newline and sits inside a block, Lexer.Tokenize emits the
// closing Dedents before the Newline it appends ahead of Eof (I5), so that
// last statement is followed by a Dedent.
func (p *Parser) consumeNewlineOrEOF() error {
	if p.check(TokNewline) {
		p.advance()
		return nil
	}
	if p.isAtEnd() || p.check(TokDedent) {
		return nil
	}
	return p.syntaxErrorf("expected newline, found %v", p.peek())
}

func (p *Parser) syntaxErrorf(format string, args ...interface{}) error {
	return &SyntaxError{Message: fmt.Sprintf(format, args...), Line: p.peek().Line}
}
