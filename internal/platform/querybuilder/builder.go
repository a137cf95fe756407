package querybuilder

import (
	"fmt"
	"strconv"
	"strings"
)

// sqlWriter accumulates query text and positional args, handing out
// $N placeholders as values are bound.
type sqlWriter struct {
	sb   strings.Builder
	args []any
}

func (w *sqlWriter) raw(s string) {
	w.sb.WriteString(s)
}

func (w *sqlWriter) bind(value any) {
	w.args = append(w.args, value)
	w.sb.WriteString("$")
	w.sb.WriteString(strconv.Itoa(len(w.args)))
}

// bindExpr copies expr into the query, replacing each ? with the next
// positional placeholder. Extra ? markers past the arg list pass through.
func (w *sqlWriter) bindExpr(expr string, args []any) {
	if len(args) == 0 {
		w.sb.WriteString(expr)
		return
	}
	next := 0
	for i := 0; i < len(expr); i++ {
		if expr[i] == '?' && next < len(args) {
			w.bind(args[next])
			next++
			continue
		}
		w.sb.WriteByte(expr[i])
	}
}

// Condition writes one WHERE predicate into the query.
type Condition func(w *sqlWriter)

func Eq(column string, value any) Condition {
	return func(w *sqlWriter) {
		w.raw(column)
		w.raw(" = ")
		w.bind(value)
	}
}

func In(column string, values []any) Condition {
	return func(w *sqlWriter) {
		if len(values) == 0 {
			w.raw("1=0")
			return
		}
		w.raw(column)
		w.raw(" IN (")
		for i, v := range values {
			if i > 0 {
				w.raw(", ")
			}
			w.bind(v)
		}
		w.raw(")")
	}
}

func IsNull(column string) Condition {
	return func(w *sqlWriter) {
		w.raw(column)
		w.raw(" IS NULL")
	}
}

func Expr(expr string, args ...any) Condition {
	return func(w *sqlWriter) {
		w.bindExpr(expr, args)
	}
}

func writeWhere(w *sqlWriter, conditions []Condition) {
	if len(conditions) == 0 {
		return
	}
	w.raw(" WHERE ")
	for i, c := range conditions {
		if i > 0 {
			w.raw(" AND ")
		}
		c(w)
	}
}

type SelectBuilder struct {
	columns []string
	table   string
	where   []Condition
	orderBy []string
	limit   int
}

func Select(columns ...string) *SelectBuilder {
	return &SelectBuilder{columns: append([]string(nil), columns...)}
}

func (b *SelectBuilder) From(table string) *SelectBuilder {
	b.table = table
	return b
}

func (b *SelectBuilder) Where(conditions ...Condition) *SelectBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *SelectBuilder) OrderBy(parts ...string) *SelectBuilder {
	b.orderBy = append(b.orderBy, parts...)
	return b
}

func (b *SelectBuilder) Limit(limit int) *SelectBuilder {
	b.limit = limit
	return b
}

func (b *SelectBuilder) ToSQL() (string, []any, error) {
	if len(b.columns) == 0 {
		return "", nil, fmt.Errorf("select columns are required")
	}
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("select table is required")
	}

	w := &sqlWriter{args: make([]any, 0, len(b.where))}
	w.raw("SELECT ")
	w.raw(strings.Join(b.columns, ", "))
	w.raw(" FROM ")
	w.raw(b.table)
	writeWhere(w, b.where)
	if len(b.orderBy) > 0 {
		w.raw(" ORDER BY ")
		w.raw(strings.Join(b.orderBy, ", "))
	}
	if b.limit > 0 {
		w.raw(" LIMIT ")
		w.raw(strconv.Itoa(b.limit))
	}
	return w.sb.String(), w.args, nil
}

type InsertBuilder struct {
	table   string
	columns []string
	rows    [][]any
	suffix  string
}

func InsertInto(table string) *InsertBuilder {
	return &InsertBuilder{table: table}
}

func (b *InsertBuilder) Columns(columns ...string) *InsertBuilder {
	b.columns = append([]string(nil), columns...)
	return b
}

func (b *InsertBuilder) Values(values ...any) *InsertBuilder {
	b.rows = append(b.rows, append([]any(nil), values...))
	return b
}

// Suffix appends trailing SQL such as RETURNING or ON CONFLICT clauses.
func (b *InsertBuilder) Suffix(sql string) *InsertBuilder {
	b.suffix = strings.TrimSpace(sql)
	return b
}

func (b *InsertBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("insert table is required")
	}
	if len(b.columns) == 0 {
		return "", nil, fmt.Errorf("insert columns are required")
	}
	if len(b.rows) == 0 {
		return "", nil, fmt.Errorf("insert values are required")
	}
	for i, row := range b.rows {
		if len(row) != len(b.columns) {
			return "", nil, fmt.Errorf("insert row %d has %d values, expected %d", i, len(row), len(b.columns))
		}
	}

	w := &sqlWriter{args: make([]any, 0, len(b.rows)*len(b.columns))}
	w.raw("INSERT INTO ")
	w.raw(b.table)
	w.raw(" (")
	w.raw(strings.Join(b.columns, ", "))
	w.raw(") VALUES ")
	for i, row := range b.rows {
		if i > 0 {
			w.raw(", ")
		}
		w.raw("(")
		for j, value := range row {
			if j > 0 {
				w.raw(", ")
			}
			w.bind(value)
		}
		w.raw(")")
	}
	if b.suffix != "" {
		w.raw(" ")
		w.raw(b.suffix)
	}
	return w.sb.String(), w.args, nil
}

type assignment struct {
	column string
	expr   string
	args   []any
	bound  bool
	value  any
}

type UpdateBuilder struct {
	table string
	sets  []assignment
	where []Condition
}

func Update(table string) *UpdateBuilder {
	return &UpdateBuilder{table: table}
}

func (b *UpdateBuilder) Set(column string, value any) *UpdateBuilder {
	b.sets = append(b.sets, assignment{column: column, bound: true, value: value})
	return b
}

// SetExpr assigns a raw SQL expression; ? markers bind the given args.
func (b *UpdateBuilder) SetExpr(column, expr string, args ...any) *UpdateBuilder {
	b.sets = append(b.sets, assignment{column: column, expr: expr, args: args})
	return b
}

func (b *UpdateBuilder) Where(conditions ...Condition) *UpdateBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *UpdateBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("update table is required")
	}
	if len(b.sets) == 0 {
		return "", nil, fmt.Errorf("update sets are required")
	}

	w := &sqlWriter{args: make([]any, 0, len(b.sets)+len(b.where))}
	w.raw("UPDATE ")
	w.raw(b.table)
	w.raw(" SET ")
	for i, set := range b.sets {
		if i > 0 {
			w.raw(", ")
		}
		w.raw(set.column)
		w.raw(" = ")
		if set.bound {
			w.bind(set.value)
			continue
		}
		w.bindExpr(set.expr, set.args)
	}
	writeWhere(w, b.where)

	return w.sb.String(), w.args, nil
}
