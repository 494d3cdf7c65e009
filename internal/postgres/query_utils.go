package postgres

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
)

func tableColumn(table, column string) string {
	return fmt.Sprintf("%s.%s", table, column)
}

func tableColumns(table string, columns []string) []string {
	cs := make([]string, 0, len(columns))
	for _, c := range columns {
		cs = append(cs, tableColumn(table, c))
	}
	return cs
}

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

// paginate restricts a select to a 1-based page of perPage rows.
// None of the listing queries use it yet.
func paginate(b sq.SelectBuilder, page, perPage uint64) sq.SelectBuilder {
	if page < 1 {
		page = 1
	}
	return b.Limit(perPage).Offset((page - 1) * perPage)
}
