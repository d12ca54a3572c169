package repository

import (
	"fmt"

	"newsroom-backend/internal/domains/article"
	"newsroom-backend/internal/shared/utils"
)

// buildListWhere dựng WHERE clause động với $n placeholders từ ListFilter.
// Returns (where, args); placeholder tiếp theo cho LIMIT/OFFSET là
// len(args)+1.
func buildListWhere(f article.ListFilter) (string, []interface{}) {
	clauses := []string{}
	args := []interface{}{}
	argIndex := 1

	switch {
	case f.NoMatch:
		// Category name không resolve được → empty result, không error
		clauses = append(clauses, "FALSE")
	case f.CategoryID != nil:
		clauses = append(clauses, fmt.Sprintf("a.category_id = $%d", argIndex))
		args = append(args, *f.CategoryID)
		argIndex++
	}

	if f.Search != "" {
		if f.SlugFragment != "" {
			// Term không dấu: match thêm trên slug (case-sensitive LIKE,
			// slug luôn lowercase sẵn)
			clauses = append(clauses, fmt.Sprintf(
				"(a.title ILIKE $%d OR a.slug LIKE $%d)", argIndex, argIndex+1))
			args = append(args, "%"+f.Search+"%", "%"+f.SlugFragment+"%")
			argIndex += 2
		} else {
			clauses = append(clauses, fmt.Sprintf("a.title ILIKE $%d", argIndex))
			args = append(args, "%"+f.Search+"%")
			argIndex++
		}
	}

	if len(clauses) == 0 {
		return "", args
	}
	return "WHERE " + utils.JoinWithAnd(clauses), args
}

// buildAuthorWhere dựng WHERE cho my-articles: luôn scope theo author_id,
// search match rộng hơn list công khai (title/summary/content).
func buildAuthorWhere(f article.AuthorFilter) (string, []interface{}) {
	clauses := []string{"a.author_id = $1"}
	args := []interface{}{f.AuthorID}
	argIndex := 2

	if f.Search != "" {
		term := fmt.Sprintf(
			"a.title ILIKE $%d OR a.summary ILIKE $%d OR a.content ILIKE $%d",
			argIndex, argIndex, argIndex)
		args = append(args, "%"+f.Search+"%")
		argIndex++

		if f.SlugFragment != "" {
			term = fmt.Sprintf("%s OR a.slug LIKE $%d", term, argIndex)
			args = append(args, "%"+f.SlugFragment+"%")
			argIndex++
		}
		clauses = append(clauses, "("+term+")")
	}

	return "WHERE " + utils.JoinWithAnd(clauses), args
}
