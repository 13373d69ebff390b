// Package querybuilder renders the small set of Postgres statements the
// document store issues. Values are always bound as $n parameters.
package querybuilder

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// params numbers bind parameters in the order they are written.
type params struct {
	values []any
}

func (p *params) bind(v any) string {
	p.values = append(p.values, v)
	return "$" + strconv.Itoa(len(p.values))
}

// expand replaces each ? in expr with the next bound value. Extra ? marks
// are left as they are.
func (p *params) expand(expr string, values []any) string {
	if len(values) == 0 {
		return expr
	}
	var out strings.Builder
	for _, r := range expr {
		if r == '?' && len(values) > 0 {
			out.WriteString(p.bind(values[0]))
			values = values[1:]
			continue
		}
		out.WriteRune(r)
	}
	return out.String()
}

// Condition is one predicate of a WHERE clause.
type Condition interface {
	render(p *params) string
}

type conditionFunc func(p *params) string

func (f conditionFunc) render(p *params) string { return f(p) }

func Eq(column string, value any) Condition {
	return conditionFunc(func(p *params) string {
		return column + " = " + p.bind(value)
	})
}

// JSONContains matches rows whose JSONB column contains doc (Postgres @>).
// An empty or "{}" document matches every row.
func JSONContains(column, doc string) Condition {
	return conditionFunc(func(p *params) string {
		if doc == "" || doc == "{}" {
			return "TRUE"
		}
		return column + " @> " + p.bind(doc) + "::jsonb"
	})
}

func where(conditions []Condition, p *params) string {
	if len(conditions) == 0 {
		return ""
	}
	parts := make([]string, 0, len(conditions))
	for _, c := range conditions {
		parts = append(parts, c.render(p))
	}
	return " WHERE " + strings.Join(parts, " AND ")
}

type SelectBuilder struct {
	columns []string
	table   string
	where   []Condition
	orderBy []string
	limit   int
}

func Select(columns ...string) *SelectBuilder {
	return &SelectBuilder{columns: columns}
}

func (b *SelectBuilder) From(table string) *SelectBuilder {
	b.table = table
	return b
}

func (b *SelectBuilder) Where(conditions ...Condition) *SelectBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *SelectBuilder) OrderBy(columns ...string) *SelectBuilder {
	b.orderBy = append(b.orderBy, columns...)
	return b
}

// Limit caps the result set; zero or less means no limit.
func (b *SelectBuilder) Limit(limit int) *SelectBuilder {
	b.limit = limit
	return b
}

func (b *SelectBuilder) ToSQL() (string, []any, error) {
	if len(b.columns) == 0 {
		return "", nil, errors.New("select columns are required")
	}
	if strings.TrimSpace(b.table) == "" {
		return "", nil, errors.New("select table is required")
	}

	var p params
	sql := "SELECT " + strings.Join(b.columns, ", ") + " FROM " + b.table + where(b.where, &p)
	if len(b.orderBy) > 0 {
		sql += " ORDER BY " + strings.Join(b.orderBy, ", ")
	}
	if b.limit > 0 {
		sql += " LIMIT " + strconv.Itoa(b.limit)
	}
	return sql, p.values, nil
}

// InsertBuilder writes a single row.
type InsertBuilder struct {
	table   string
	columns []string
	values  []any
	suffix  string
}

func InsertInto(table string) *InsertBuilder {
	return &InsertBuilder{table: table}
}

func (b *InsertBuilder) Columns(columns ...string) *InsertBuilder {
	b.columns = columns
	return b
}

func (b *InsertBuilder) Values(values ...any) *InsertBuilder {
	b.values = values
	return b
}

// Suffix appends raw SQL such as RETURNING or ON CONFLICT.
func (b *InsertBuilder) Suffix(sql string) *InsertBuilder {
	b.suffix = strings.TrimSpace(sql)
	return b
}

func (b *InsertBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", nil, errors.New("insert table is required")
	}
	if len(b.columns) == 0 {
		return "", nil, errors.New("insert columns are required")
	}
	if len(b.values) != len(b.columns) {
		return "", nil, fmt.Errorf("insert has %d values for %d columns", len(b.values), len(b.columns))
	}

	var p params
	holders := make([]string, len(b.values))
	for i, v := range b.values {
		holders[i] = p.bind(v)
	}
	sql := "INSERT INTO " + b.table + " (" + strings.Join(b.columns, ", ") + ") VALUES (" + strings.Join(holders, ", ") + ")"
	if b.suffix != "" {
		sql += " " + b.suffix
	}
	return sql, p.values, nil
}

type assignment struct {
	column string
	expr   string
	values []any
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
	return b.SetExpr(column, "?", value)
}

// SetExpr assigns a SQL expression to column; each ? in expr binds the next
// of args.
func (b *UpdateBuilder) SetExpr(column, expr string, args ...any) *UpdateBuilder {
	b.sets = append(b.sets, assignment{column: column, expr: expr, values: args})
	return b
}

func (b *UpdateBuilder) Where(conditions ...Condition) *UpdateBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *UpdateBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", nil, errors.New("update table is required")
	}
	if len(b.sets) == 0 {
		return "", nil, errors.New("update sets are required")
	}
	if len(b.where) == 0 {
		return "", nil, errors.New("update without where clause is not allowed")
	}

	var p params
	sets := make([]string, len(b.sets))
	for i, s := range b.sets {
		sets[i] = s.column + " = " + p.expand(s.expr, s.values)
	}
	sql := "UPDATE " + b.table + " SET " + strings.Join(sets, ", ") + where(b.where, &p)
	return sql, p.values, nil
}

type DeleteBuilder struct {
	table string
	where []Condition
}

func DeleteFrom(table string) *DeleteBuilder {
	return &DeleteBuilder{table: table}
}

func (b *DeleteBuilder) Where(conditions ...Condition) *DeleteBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *DeleteBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", nil, errors.New("delete table is required")
	}
	if len(b.where) == 0 {
		return "", nil, errors.New("delete without where clause is not allowed")
	}

	var p params
	return "DELETE FROM " + b.table + where(b.where, &p), p.values, nil
}
