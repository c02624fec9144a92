package core

// query.go translates a (searchText, sortField, sortOrder) request into
// an injection-safe read specification. Sort fields come from a fixed
// allow-list; everything user-supplied in the search text travels as a
// bind parameter, never as SQL text.

import (
	"fmt"
	"strings"
)

// sortFields is the allow-list of columns permitted in ORDER BY.
// Anything else silently falls back to id.
var sortFields = map[string]bool{
	"id":             true,
	"name":           true,
	"license_number": true,
	"date_of_birth":  true,
	"age":            true,
	"created_at":     true,
}

// buildSortClause maps a requested sort to a safe ORDER BY clause.
// Only a case-insensitive "asc" sorts ascending; any other order value,
// including absence, sorts descending. A secondary id key keeps the
// ordering deterministic when the primary sort has equal values.
func buildSortClause(field, order string) string {
	if !sortFields[field] {
		field = "id"
	}
	dir := "DESC"
	if strings.EqualFold(order, "asc") {
		dir = "ASC"
	}
	clause := fmt.Sprintf("ORDER BY %s %s", field, dir)
	if field != "id" {
		clause += fmt.Sprintf(", id %s", dir)
	}
	return clause
}

// buildSearchClause returns a WHERE fragment matching records whose name
// or license number contains the search text as a case-insensitive
// substring, plus its bind arguments. Empty search text yields no
// clause, so the full dataset is read.
func buildSearchClause(search string) (string, []interface{}) {
	if search == "" {
		return "", nil
	}
	pattern := "%" + escapeLike(search) + "%"
	return " WHERE (name ILIKE $1 OR license_number ILIKE $1)", []interface{}{pattern}
}

// likeEscaper escapes the LIKE metacharacters so search text matches
// literally: a search for "%" finds records containing a percent sign
// instead of matching every row.
var likeEscaper = strings.NewReplacer(
	`\`, `\\`,
	`%`, `\%`,
	`_`, `\_`,
)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
