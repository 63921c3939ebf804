package query

import (
	"fmt"
)

type parser struct {
	tokens []string // the input tokens
	pos    int      // index of the current token
}

func parse(tokens []string) (result Node, err error) {
	if len(tokens) == 0 {
		return nil, nil
	}

	p := &parser{tokens: tokens}

	defer func() {
		if r := recover(); r != nil {
			parseErr, ok := r.(*ParseError)
			if !ok {
				panic(r)
			}
			result, err = nil, parseErr
		}
	}()

	result = p.Query()
	if !p.atEnd() {
		p.fail("unexpected ')': no group to close")
	}
	return result, nil
}

func (p *parser) atEnd() bool {
	return p.pos >= len(p.tokens)
}

// current returns current token and its class, must not be called at end
func (p *parser) current() (string, TokenKind) {
	token := p.tokens[p.pos]
	return token, Classify(token)
}

func (p *parser) consume() string {
	token := p.tokens[p.pos]
	p.pos++
	return token
}

// fail aborts parsing with error pointing to the current token
func (p *parser) fail(format string, args ...interface{}) {
	err := &ParseError{Pos: p.pos, Message: fmt.Sprintf(format, args...)}
	if !p.atEnd() {
		err.Token = p.tokens[p.pos]
	}
	panic(err)
}

// Query := Term | Query [Join] Term
//
// Returns on ')' without consuming it, the enclosing group does.
func (p *parser) Query() Node {
	q := p.Term()

	for !p.atEnd() {
		token, kind := p.current()

		op := OpAnd
		switch kind {
		case TokenGroupClose:
			return q
		case TokenAnd, TokenOr, TokenXor:
			op = joinOp(kind)
			p.consume()

			if p.atEnd() {
				p.fail("expecting term after %s", token)
			}
			if _, next := p.current(); next.IsJoin() || next == TokenGroupClose {
				p.fail("expecting term after %s", token)
			}
		case TokenValue, TokenField, TokenNot, TokenGroupOpen, TokenComparator:
		}

		q = &Combinator{Op: op, Left: q, Right: p.Term()}
	}

	return q
}

func joinOp(kind TokenKind) Op {
	switch kind {
	case TokenAnd:
		return OpAnd
	case TokenOr:
		return OpOr
	case TokenXor:
		return OpXor
	case TokenValue, TokenField, TokenNot, TokenGroupOpen, TokenGroupClose, TokenComparator:
	}
	panic(fmt.Sprintf("token %s is not a join", kind))
}

// Term := '-not' Term | '-go' Query '-gc' | Predicate
func (p *parser) Term() Node {
	if p.atEnd() {
		p.fail("expecting term")
	}

	token, kind := p.current()
	switch kind {
	case TokenNot:
		p.consume()
		return &Combinator{Op: OpNot, Left: p.Term()}
	case TokenGroupOpen:
		p.consume()
		if !p.atEnd() {
			if _, next := p.current(); next == TokenGroupClose {
				p.fail("empty group")
			}
		}

		q := p.Query()
		if p.atEnd() {
			p.fail("expecting ')' to close group")
		}
		p.consume()
		return q
	case TokenAnd, TokenOr, TokenXor, TokenGroupClose:
		p.fail("unexpected %s: expecting term", token)
	case TokenValue, TokenField, TokenComparator:
	}

	return p.Predicate()
}

// Predicate := value | Comparator value | Field [Comparator] value
func (p *parser) Predicate() Node {
	token, kind := p.current()
	p.consume()

	switch kind {
	case TokenValue:
		// pacman style search
		return anyOf(Default, token, FieldName, FieldDesc, FieldProvides, FieldGroup)
	case TokenComparator:
		cmp, _ := LookupComparator(token)
		return anyOf(cmp, p.Value(token), FieldName, FieldDesc)
	case TokenField:
		field := token[1:]
		cmp := Default
		if !p.atEnd() {
			if next, nextKind := p.current(); nextKind == TokenComparator {
				cmp, _ = LookupComparator(next)
				token = p.consume()
			}
		}
		return &Predicate{Field: field, Comparator: cmp, Value: p.Value(token)}
	case TokenAnd, TokenOr, TokenXor, TokenNot, TokenGroupOpen, TokenGroupClose:
	}

	panic(fmt.Sprintf("token %s is not a predicate", kind))
}

// Value takes next token verbatim
func (p *parser) Value(after string) string {
	if p.atEnd() {
		p.fail("expecting value after %s", after)
	}
	return p.consume()
}

// anyOf builds left-leaning OR chain of the same comparison over several fields
func anyOf(cmp Comparator, value string, fields ...Field) Node {
	var result Node
	for _, field := range fields {
		predicate := &Predicate{Field: field.String(), Comparator: cmp, Value: value}
		if result == nil {
			result = predicate
		} else {
			result = &Combinator{Op: OpOr, Left: result, Right: predicate}
		}
	}
	return result
}
