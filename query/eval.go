package query

import (
	"fmt"

	"github.com/pacfind/pacfind/alpm"
	"github.com/pacfind/pacfind/pacfind"
	"github.com/rs/zerolog/log"
)

// Catalog resolves dependency specifiers to packages
//
// *alpm.Registry implements it.
type Catalog interface {
	FindSatisfier(spec string) *alpm.Package
}

// Check interface
var (
	_ Catalog = &alpm.Registry{}
)

// packageTest is compiled predicate
type packageTest func(*alpm.Package) bool

// Evaluator runs query trees against package lists
//
// Evaluator is not safe for concurrent use: it caches compiled predicates
// and satisfier lookups between calls.
type Evaluator struct {
	catalog    Catalog
	reporter   pacfind.ResultReporter
	reported   map[string]struct{}
	compiled   map[*Predicate]packageTest
	satisfiers map[string]*alpm.Package
}

// NewEvaluator creates evaluator resolving relations via catalog
//
// Non-fatal errors (unknown fields, bad regexps) are sent to reporter, or
// logged when reporter is nil.
func NewEvaluator(catalog Catalog, reporter pacfind.ResultReporter) *Evaluator {
	return &Evaluator{
		catalog:    catalog,
		reporter:   reporter,
		reported:   map[string]struct{}{},
		compiled:   map[*Predicate]packageTest{},
		satisfiers: map[string]*alpm.Package{},
	}
}

// Run evaluates query and returns matching packages without duplicates
func (e *Evaluator) Run(node Node, list *alpm.PackageList) *alpm.PackageList {
	return e.Eval(node, list).Unique()
}

// Eval evaluates query, result might contain the same package several times
func (e *Evaluator) Eval(node Node, list *alpm.PackageList) *alpm.PackageList {
	if node == nil {
		return list.Copy()
	}

	switch n := node.(type) {
	case *Predicate:
		return list.Filter(e.compile(n))
	case *Combinator:
		return e.combine(n, list)
	}

	panic(fmt.Sprintf("unknown node type %T", node))
}

func (e *Evaluator) combine(c *Combinator, list *alpm.PackageList) *alpm.PackageList {
	switch c.Op {
	case OpAnd:
		left := e.Eval(c.Left, list)
		if left.Len() == 0 {
			return left
		}
		return e.Eval(c.Right, left)
	case OpOr:
		result := e.Eval(c.Left, list)
		result.Append(e.Eval(c.Right, list))
		return result
	case OpXor:
		rest := list.Difference(e.Eval(c.Left, list))
		return e.Eval(c.Right, rest)
	case OpNot:
		return list.Difference(e.Eval(c.Left, list))
	}

	panic(fmt.Sprintf("unknown op %d", int(c.Op)))
}

// compile turns predicate into package test, failed predicates match nothing
func (e *Evaluator) compile(predicate *Predicate) packageTest {
	if test, ok := e.compiled[predicate]; ok {
		return test
	}

	test, err := e.build(predicate)
	if err != nil {
		e.warn(err)
		test = func(*alpm.Package) bool { return false }
	}

	e.compiled[predicate] = test
	return test
}

func (e *Evaluator) build(predicate *Predicate) (packageTest, error) {
	path, err := ResolveField(predicate.Field)
	if err != nil {
		return nil, err
	}

	leaf := path.Leaf().Field
	m, err := newMatcher(leaf.Kind(), predicate.Comparator, predicate.Value)
	if err != nil {
		return nil, err
	}

	return e.buildPath(path, m), nil
}

// buildPath creates test for the path: dotted paths match when any related
// package passes the nested test
func (e *Evaluator) buildPath(path *FieldPath, m *matcher) packageTest {
	if path.Nested != nil {
		nested := e.buildPath(path.Nested, m)
		field, transitive := path.Field, path.Transitive

		return func(p *alpm.Package) bool {
			for _, related := range e.related(p, field, transitive) {
				if nested(related) {
					return true
				}
			}
			return false
		}
	}

	field := path.Field
	switch {
	case field.IsRelation():
		return func(p *alpm.Package) bool {
			for _, value := range field.values(p) {
				if m.matchString(value) {
					return true
				}
			}
			return false
		}
	case field.Kind() == KindInteger:
		return func(p *alpm.Package) bool {
			return m.matchInteger(field.integer(p))
		}
	}

	return func(p *alpm.Package) bool {
		return m.matchString(field.scalar(p))
	}
}

// related resolves relation of the package into packages, in relation order
//
// Transitive walk is depth-first; a package is recorded before descending
// into it, which is what stops cycles. The starting package may be part of
// the result if relations lead back to it.
func (e *Evaluator) related(p *alpm.Package, field Field, transitive bool) []*alpm.Package {
	var result []*alpm.Package
	visited := map[*alpm.Package]struct{}{}

	var walk func(*alpm.Package)
	walk = func(pkg *alpm.Package) {
		for _, spec := range field.specifiers(pkg) {
			satisfier := e.satisfier(spec)
			if satisfier == nil {
				continue
			}
			if _, seen := visited[satisfier]; seen {
				continue
			}
			visited[satisfier] = struct{}{}
			result = append(result, satisfier)

			if transitive {
				walk(satisfier)
			}
		}
	}

	walk(p)
	return result
}

func (e *Evaluator) satisfier(spec string) *alpm.Package {
	dep := alpm.ParseDependency(spec)
	dep.Description = ""
	key := dep.String()

	if p, ok := e.satisfiers[key]; ok {
		return p
	}

	p := e.catalog.FindSatisfier(key)
	e.satisfiers[key] = p
	return p
}

// warn reports non-fatal error once per distinct message
func (e *Evaluator) warn(err error) {
	msg := err.Error()
	if _, ok := e.reported[msg]; ok {
		return
	}
	e.reported[msg] = struct{}{}

	if e.reporter == nil {
		log.Warn().Err(err).Msg("query predicate matches nothing")
		return
	}
	e.reporter.Warning("%s", msg)
}
