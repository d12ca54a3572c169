package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"newsroom-backend/internal/domains/article"
)

// Projection cho list: không SELECT content để giảm payload,
// list endpoints không bao giờ trả content.
const listColumns = `
	a.id, a.slug, a.title, a.summary, a.image_url, a.priority,
	a.category_id, a.author_id, a.published_at, a.created_at, a.updated_at,
	c.name, c.slug, u.name
`

const detailColumns = `
	a.id, a.slug, a.title, a.summary, a.content, a.image_url, a.priority,
	a.category_id, a.author_id, a.published_at, a.created_at, a.updated_at,
	c.name, c.slug, u.name, u.email
`

const articleJoins = `
	FROM articles a
	JOIN categories c ON c.id = a.category_id
	JOIN users u ON u.id = a.author_id
`

// postgresRepository là concrete implementation của article.Repository.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) article.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, a *article.Article) (*article.Article, error) {
	query := `
		INSERT INTO articles (
			slug, title, summary, content, image_url, priority,
			category_id, author_id, published_at, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`

	now := time.Now()
	var id int64
	err := r.pool.QueryRow(ctx, query,
		a.Slug, a.Title, a.Summary, a.Content, a.ImageURL, a.Priority,
		a.CategoryID, a.AuthorID, now, now, now,
	).Scan(&id)
	if err != nil {
		// 23503 = foreign_key_violation: category_id không tồn tại
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, article.ErrInvalidCategory
		}
		return nil, fmt.Errorf("insert article: %w", err)
	}

	return r.GetByID(ctx, id)
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*article.Article, error) {
	query := fmt.Sprintf(`SELECT %s %s WHERE a.id = $1`, detailColumns, articleJoins)
	return r.getOne(ctx, query, id)
}

func (r *postgresRepository) GetBySlug(ctx context.Context, slug string) (*article.Article, error) {
	query := fmt.Sprintf(`SELECT %s %s WHERE a.slug = $1`, detailColumns, articleJoins)
	return r.getOne(ctx, query, slug)
}

func (r *postgresRepository) getOne(ctx context.Context, query string, arg interface{}) (*article.Article, error) {
	a := &article.Article{}
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&a.ID, &a.Slug, &a.Title, &a.Summary, &a.Content, &a.ImageURL, &a.Priority,
		&a.CategoryID, &a.AuthorID, &a.PublishedAt, &a.CreatedAt, &a.UpdatedAt,
		&a.CategoryName, &a.CategorySlug, &a.AuthorName, &a.AuthorEmail,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, article.ErrArticleNotFound
		}
		return nil, fmt.Errorf("get article: %w", err)
	}
	return a, nil
}

func (r *postgresRepository) List(ctx context.Context, f article.ListFilter) ([]article.Article, int64, error) {
	where, args := buildListWhere(f)

	countQuery := fmt.Sprintf(`SELECT COUNT(*) %s %s`, articleJoins, where)
	var total int64
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count articles: %w", err)
	}

	next := len(args) + 1
	listQuery := fmt.Sprintf(`
		SELECT %s %s %s
		ORDER BY a.priority DESC, a.created_at DESC
		LIMIT $%d OFFSET $%d
	`, listColumns, articleJoins, where, next, next+1)
	args = append(args, f.Limit, f.Offset)

	articles, err := r.queryList(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, err
	}
	return articles, total, nil
}

func (r *postgresRepository) ListFeatured(ctx context.Context, f article.ListFilter) ([]article.Article, error) {
	where, args := buildListWhere(f)

	next := len(args) + 1
	query := fmt.Sprintf(`
		SELECT %s %s %s
		%s a.priority > $%d
		ORDER BY a.priority DESC
		LIMIT $%d
	`, listColumns, articleJoins, where, andOrWhere(where), next, next+1)
	args = append(args, article.FeaturedMinPriority, article.FeaturedCap)

	return r.queryList(ctx, query, args...)
}

func (r *postgresRepository) ListLatest(ctx context.Context, f article.ListFilter) ([]article.Article, error) {
	where, args := buildListWhere(f)

	next := len(args) + 1
	query := fmt.Sprintf(`
		SELECT %s %s %s
		ORDER BY a.created_at DESC
		LIMIT $%d OFFSET $%d
	`, listColumns, articleJoins, where, next, next+1)
	args = append(args, article.LatestCap, f.Offset)

	return r.queryList(ctx, query, args...)
}

// andOrWhere nối thêm điều kiện vào WHERE đã có, hoặc mở WHERE mới.
func andOrWhere(where string) string {
	if where == "" {
		return "WHERE"
	}
	return "AND"
}

func (r *postgresRepository) ListByAuthor(ctx context.Context, f article.AuthorFilter) ([]article.Article, int64, error) {
	where, args := buildAuthorWhere(f)

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM articles a %s`, where)
	var total int64
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count author articles: %w", err)
	}

	// SortCol/SortOrder đã qua whitelist ở DTO layer
	next := len(args) + 1
	query := fmt.Sprintf(`
		SELECT %s %s %s
		ORDER BY %s %s
		LIMIT $%d OFFSET $%d
	`, listColumns, articleJoins, where, f.SortCol, f.SortOrder, next, next+1)
	args = append(args, f.Limit, f.Offset)

	articles, err := r.queryList(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	return articles, total, nil
}

func (r *postgresRepository) StatsByAuthor(ctx context.Context, authorID uuid.UUID) ([]article.CategoryStat, error) {
	query := `
		SELECT a.category_id, c.name, COUNT(*) AS cnt
		FROM articles a
		JOIN categories c ON c.id = a.category_id
		WHERE a.author_id = $1
		GROUP BY a.category_id, c.name
		ORDER BY cnt DESC
	`

	rows, err := r.pool.Query(ctx, query, authorID)
	if err != nil {
		return nil, fmt.Errorf("author stats: %w", err)
	}
	defer rows.Close()

	var stats []article.CategoryStat
	for rows.Next() {
		var s article.CategoryStat
		if err := rows.Scan(&s.CategoryID, &s.CategoryName, &s.Count); err != nil {
			return nil, fmt.Errorf("scan author stat: %w", err)
		}
		stats = append(stats, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate author stats: %w", err)
	}

	return stats, nil
}

func (r *postgresRepository) Update(ctx context.Context, a *article.Article) (*article.Article, error) {
	// Conditional write: ownership nằm ngay trong WHERE nên không có
	// window giữa check và update.
	query := `
		UPDATE articles
		SET slug = $1, title = $2, summary = $3, content = $4,
		    image_url = $5, priority = $6, category_id = $7, updated_at = $8
		WHERE id = $9 AND author_id = $10
	`

	tag, err := r.pool.Exec(ctx, query,
		a.Slug, a.Title, a.Summary, a.Content,
		a.ImageURL, a.Priority, a.CategoryID, time.Now(),
		a.ID, a.AuthorID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, article.ErrInvalidCategory
		}
		return nil, fmt.Errorf("update article: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, article.ErrArticleNotFound
	}

	return r.GetByID(ctx, a.ID)
}

func (r *postgresRepository) Delete(ctx context.Context, id int64, authorID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM articles WHERE id = $1 AND author_id = $2`, id, authorID)
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return article.ErrArticleNotFound
	}
	return nil
}

func (r *postgresRepository) ImageURLInUse(ctx context.Context, url string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM articles WHERE image_url = $1)`, url,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check image url: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) queryList(ctx context.Context, query string, args ...interface{}) ([]article.Article, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	defer rows.Close()

	var articles []article.Article
	for rows.Next() {
		var a article.Article
		if err := rows.Scan(
			&a.ID, &a.Slug, &a.Title, &a.Summary, &a.ImageURL, &a.Priority,
			&a.CategoryID, &a.AuthorID, &a.PublishedAt, &a.CreatedAt, &a.UpdatedAt,
			&a.CategoryName, &a.CategorySlug, &a.AuthorName,
		); err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate articles: %w", err)
	}

	return articles, nil
}
