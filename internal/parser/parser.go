// Package parser evaluates OpenSSL-style cipher-list expressions against
// a cipher catalog.
//
// An expression is a sequence of directives separated by ':' (',' and
// whitespace are accepted too). Each directive is a suite alias, a selector
// keyword, or a '+'-joined compound of keywords, optionally prefixed with an
// operator character:
//
//	(none)  add matching suites to the end of the list
//	+       move matching suites already in the list to the end
//	-       remove matching suites, allowing later directives to re-add them
//	!       remove matching suites permanently for this expression
//
// The token "@STRENGTH" sorts the current list by descending strength.
// Unrecognized tokens are ignored, matching the reference tool.
package parser

import (
	"sort"
	"strings"

	"github.com/cipherlist/cipherlist/internal/catalog"
	"github.com/cipherlist/cipherlist/internal/model"
)

// Operator is the action a directive applies to the working list.
type Operator int

// Directive operators.
const (
	// Add appends matching suites not already present.
	Add Operator = iota
	// MoveAppend moves matching suites to the end of the list.
	MoveAppend
	// RemoveSoft removes matching suites; later directives may re-add them.
	RemoveSoft
	// RemoveHard removes matching suites and bars them from re-insertion.
	RemoveHard
	// SortByStrength stable-sorts the list by descending strength.
	SortByStrength
)

// String returns the operator name.
func (o Operator) String() string {
	switch o {
	case Add:
		return "add"
	case MoveAppend:
		return "move"
	case RemoveSoft:
		return "remove"
	case RemoveHard:
		return "kill"
	case SortByStrength:
		return "sort"
	default:
		return "unknown"
	}
}

// Directive is one parsed token of a cipher-list expression.
type Directive struct {
	Op       Operator
	Selector string
}

// sortToken triggers the strength sort; it takes no selector.
const sortToken = "@STRENGTH"

// defaultExpansion is what the DEFAULT keyword stands for. It carries its
// own removal directives, so the evaluator expands it in place rather than
// treating it as a plain predicate.
const defaultExpansion = "ALL:!aNULL:!eNULL:!SSLv2"

// Parse splits an expression into directives. Parsing never fails: empty
// tokens are dropped and selector validity is decided at evaluation time.
func Parse(expr string) []Directive {
	fields := strings.FieldsFunc(expr, func(r rune) bool {
		return r == ':' || r == ',' || r == ' ' || r == '\t' || r == '\n'
	})

	directives := make([]Directive, 0, len(fields))
	for _, tok := range fields {
		if tok == sortToken {
			directives = append(directives, Directive{Op: SortByStrength})
			continue
		}
		op := Add
		switch tok[0] {
		case '+':
			op = MoveAppend
			tok = tok[1:]
		case '-':
			op = RemoveSoft
			tok = tok[1:]
		case '!':
			op = RemoveHard
			tok = tok[1:]
		}
		if tok == "" {
			continue
		}
		directives = append(directives, Directive{Op: op, Selector: tok})
	}
	return directives
}

// Evaluator resolves expressions against a fixed catalog. It is stateless
// between calls and safe for concurrent use.
type Evaluator struct {
	cat *catalog.Catalog
}

// New returns an evaluator over the given catalog.
func New(cat *catalog.Catalog) *Evaluator {
	return &Evaluator{cat: cat}
}

// evalState is the working list for a single expression evaluation.
type evalState struct {
	list     []*model.CipherRecord
	present  map[*model.CipherRecord]bool
	excluded map[*model.CipherRecord]bool
}

// Evaluate resolves an expression into an ordered, deduplicated suite
// list. It is a pure function of the expression and the catalog.
func (e *Evaluator) Evaluate(expr string) []*model.CipherRecord {
	st := &evalState{
		present:  make(map[*model.CipherRecord]bool),
		excluded: make(map[*model.CipherRecord]bool),
	}
	e.apply(st, Parse(expr))

	out := make([]*model.CipherRecord, len(st.list))
	copy(out, st.list)
	return out
}

func (e *Evaluator) apply(st *evalState, directives []Directive) {
	for _, d := range directives {
		if d.Op == SortByStrength {
			e.sortByStrength(st)
			continue
		}
		if d.Op == Add && d.Selector == "DEFAULT" {
			e.apply(st, Parse(defaultExpansion))
			continue
		}
		matches, ok := e.match(d.Selector)
		if !ok {
			// Unknown token: ignored, per the reference tool.
			continue
		}
		switch d.Op {
		case Add:
			for _, r := range matches {
				st.add(r)
			}
		case MoveAppend:
			// Only reorders: suites not already in the list are untouched.
			for _, r := range matches {
				if st.present[r] {
					st.remove(r)
					st.add(r)
				}
			}
		case RemoveSoft:
			for _, r := range matches {
				if st.present[r] {
					st.remove(r)
				}
			}
		case RemoveHard:
			for _, r := range matches {
				if st.present[r] {
					st.remove(r)
				}
				st.excluded[r] = true
			}
		}
	}
}

// match resolves a selector to catalog records in declaration order.
// The second return is false when the selector is not recognized.
func (e *Evaluator) match(selector string) ([]*model.CipherRecord, bool) {
	if r, ok := e.cat.Lookup(selector); ok {
		return []*model.CipherRecord{r}, true
	}

	parts := strings.Split(selector, "+")
	preds := make([]predicate, 0, len(parts))
	for _, part := range parts {
		p, ok := keywords[part]
		if !ok {
			return nil, false
		}
		preds = append(preds, p)
	}
	pred := and(preds...)

	var matches []*model.CipherRecord
	for _, r := range e.cat.All() {
		if pred(r) {
			matches = append(matches, r)
		}
	}
	return matches, true
}

func (st *evalState) add(r *model.CipherRecord) {
	if st.present[r] || st.excluded[r] {
		return
	}
	st.list = append(st.list, r)
	st.present[r] = true
}

func (st *evalState) remove(r *model.CipherRecord) {
	for i, cur := range st.list {
		if cur == r {
			st.list = append(st.list[:i], st.list[i+1:]...)
			break
		}
	}
	delete(st.present, r)
}

// sortByStrength orders the working list by descending strength class,
// breaking ties by catalog declaration order.
func (e *Evaluator) sortByStrength(st *evalState) {
	sort.SliceStable(st.list, func(i, j int) bool {
		a, b := st.list[i], st.list[j]
		if a.Strength != b.Strength {
			return a.Strength > b.Strength
		}
		return e.cat.Index(a) < e.cat.Index(b)
	})
}
