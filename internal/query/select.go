package query

import (
	"fmt"
	"strings"
)

// Predicate is an equality filter `Column = $n`. Column must be a constant
// chosen by the caller, never request input; Value is always bound.
type Predicate struct {
	Column string
	Value  any
}

// OrderTerm is one ORDER BY expression.
type OrderTerm struct {
	Expr string
	Desc bool
}

// Select describes a SELECT statement. Build compiles it into SQL with `$n`
// placeholders and the matching argument slice.
type Select struct {
	Columns []string
	From    string
	Joins   []string
	Where   []Predicate
	GroupBy []string
	OrderBy []OrderTerm

	// Window is applied as LIMIT/OFFSET when Limit > 0.
	Window Page
}

// Filter returns a copy of s with an extra predicate.
func (s Select) Filter(column string, value any) Select {
	s.Where = append(append([]Predicate(nil), s.Where...), Predicate{Column: column, Value: value})
	return s
}

// Order returns a copy of s ordered by expr, then by tiebreak in the same
// direction so rows sharing a sort value come back in a stable order.
func (s Select) Order(expr string, desc bool, tiebreak string) Select {
	s.OrderBy = []OrderTerm{{Expr: expr, Desc: desc}}
	if tiebreak != "" && tiebreak != expr {
		s.OrderBy = append(s.OrderBy, OrderTerm{Expr: tiebreak, Desc: desc})
	}
	return s
}

// Paginate returns a copy of s limited to the given window.
func (s Select) Paginate(p Page) Select {
	s.Window = p
	return s
}

// Build compiles the full statement including ORDER BY and the window.
func (s Select) Build() (string, []any) {
	var sb strings.Builder
	args := s.writeBase(&sb)

	if len(s.OrderBy) > 0 {
		terms := make([]string, len(s.OrderBy))
		for i, o := range s.OrderBy {
			dir := "ASC"
			if o.Desc {
				dir = "DESC"
			}
			terms[i] = o.Expr + " " + dir
		}
		sb.WriteString(" ORDER BY ")
		sb.WriteString(strings.Join(terms, ", "))
	}

	if s.Window.Limit > 0 {
		args = append(args, s.Window.Limit)
		fmt.Fprintf(&sb, " LIMIT $%d", len(args))
		args = append(args, s.Window.Offset())
		fmt.Fprintf(&sb, " OFFSET $%d", len(args))
	}

	return sb.String(), args
}

// BuildCount compiles a statement returning the number of rows the select
// yields before ordering and windowing. It wraps the same FROM/JOIN/WHERE/
// GROUP BY so the total always agrees with the listed rows.
func (s Select) BuildCount() (string, []any) {
	var sb strings.Builder
	sb.WriteString("SELECT COUNT(*) FROM (")
	args := s.writeBase(&sb)
	sb.WriteString(") AS matched")
	return sb.String(), args
}

// writeBase writes SELECT ... GROUP BY and returns the bound arguments.
func (s Select) writeBase(sb *strings.Builder) []any {
	sb.WriteString("SELECT ")
	if len(s.Columns) == 0 {
		sb.WriteString("*")
	} else {
		sb.WriteString(strings.Join(s.Columns, ", "))
	}
	sb.WriteString(" FROM ")
	sb.WriteString(s.From)

	for _, j := range s.Joins {
		sb.WriteString(" ")
		sb.WriteString(j)
	}

	var args []any
	if len(s.Where) > 0 {
		conds := make([]string, len(s.Where))
		for i, p := range s.Where {
			args = append(args, p.Value)
			conds[i] = fmt.Sprintf("%s = $%d", p.Column, len(args))
		}
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(conds, " AND "))
	}

	if len(s.GroupBy) > 0 {
		sb.WriteString(" GROUP BY ")
		sb.WriteString(strings.Join(s.GroupBy, ", "))
	}
	return args
}
