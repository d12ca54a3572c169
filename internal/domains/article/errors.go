package article

import "errors"

var (
	ErrArticleNotFound  = errors.New("article not found")
	ErrNotOwner         = errors.New("article belongs to another author")
	ErrInvalidArticleID = errors.New("invalid article id")

	// ErrInvalidCategory khi category_id không trỏ tới category nào
	// (FK violation lúc insert/update).
	ErrInvalidCategory = errors.New("category does not exist")
)
