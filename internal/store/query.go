package store

import (
	"fmt"
	"strings"
)

// listQuery builds the read queries the directory needs: a column list, any
// number of equality predicates, and an ORDER BY. Everything richer than an
// equality predicate (category filters, price ceilings, rating thresholds)
// is deliberately left to the in-memory pipeline, so this builder never
// grows comparison operators.
type listQuery struct {
	table   string
	columns string
	orderBy string
	conds   []string
	args    []any
}

func newListQuery(table, columns, orderBy string) *listQuery {
	return &listQuery{table: table, columns: columns, orderBy: orderBy}
}

// Eq adds an equality predicate on col. Predicates AND together.
func (q *listQuery) Eq(col string, val any) *listQuery {
	q.args = append(q.args, val)
	q.conds = append(q.conds, fmt.Sprintf("%s = $%d", col, len(q.args)))
	return q
}

// SQL renders the final query and its positional parameters.
func (q *listQuery) SQL() (string, []any) {
	var b strings.Builder
	b.WriteString("SELECT ")
	b.WriteString(q.columns)
	b.WriteString(" FROM ")
	b.WriteString(q.table)
	if len(q.conds) > 0 {
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(q.conds, " AND "))
	}
	if q.orderBy != "" {
		b.WriteString(" ORDER BY ")
		b.WriteString(q.orderBy)
	}
	return b.String(), q.args
}
