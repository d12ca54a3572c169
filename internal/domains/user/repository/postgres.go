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

	"newsroom-backend/internal/domains/user"
	"newsroom-backend/internal/shared/utils"
)

// postgresRepository là concrete implementation của user.Repository.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) user.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, u *user.User) (*user.User, error) {
	query := `
		INSERT INTO users (id, name, email, password_hash, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, name, email, password_hash, role, created_at, updated_at
	`

	now := time.Now()
	created := &user.User{}
	err := r.pool.QueryRow(ctx, query,
		uuid.New(), u.Name, u.Email, u.PasswordHash, u.Role, now, now,
	).Scan(
		&created.ID, &created.Name, &created.Email, &created.PasswordHash,
		&created.Role, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		// 23505 = unique_violation trên users.email
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, user.ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	return created, nil
}

func (r *postgresRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	query := `
		SELECT id, name, email, password_hash, role, created_at, updated_at
		FROM users
		WHERE email = $1
	`

	u := &user.User{}
	err := r.pool.QueryRow(ctx, query, email).Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}

	return u, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	query := `
		SELECT u.id, u.name, u.email, u.password_hash, u.role, u.created_at, u.updated_at,
		       COUNT(a.id) AS article_count
		FROM users u
		LEFT JOIN articles a ON a.author_id = u.id
		WHERE u.id = $1
		GROUP BY u.id
	`

	u := &user.User{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role,
		&u.CreatedAt, &u.UpdatedAt, &u.ArticleCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}

	return u, nil
}

func (r *postgresRepository) List(ctx context.Context, f user.ListFilter) ([]user.User, int64, error) {
	// Build WHERE động với $n placeholders
	clauses := []string{}
	args := []interface{}{}
	argIndex := 1

	if f.Search != "" {
		clauses = append(clauses, fmt.Sprintf(
			"(u.name ILIKE $%d OR u.email ILIKE $%d)", argIndex, argIndex))
		args = append(args, "%"+f.Search+"%")
		argIndex++
	}
	if f.Role != "" {
		clauses = append(clauses, fmt.Sprintf("u.role = $%d", argIndex))
		args = append(args, f.Role)
		argIndex++
	}

	where := ""
	if len(clauses) > 0 {
		where = "WHERE " + utils.JoinWithAnd(clauses)
	}

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM users u %s`, where)
	var total int64
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	listQuery := fmt.Sprintf(`
		SELECT u.id, u.name, u.email, u.password_hash, u.role, u.created_at, u.updated_at,
		       COUNT(a.id) AS article_count
		FROM users u
		LEFT JOIN articles a ON a.author_id = u.id
		%s
		GROUP BY u.id
		ORDER BY u.created_at DESC
		LIMIT $%d OFFSET $%d
	`, where, argIndex, argIndex+1)
	args = append(args, f.Limit, f.Offset)

	rows, err := r.pool.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		var u user.User
		if err := rows.Scan(
			&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role,
			&u.CreatedAt, &u.UpdatedAt, &u.ArticleCount,
		); err != nil {
			return nil, 0, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate users: %w", err)
	}

	return users, total, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// Conditional DELETE: chỉ xóa khi không còn bài viết tham chiếu.
	// Một statement duy nhất, không có window giữa check và delete.
	query := `
		DELETE FROM users u
		WHERE u.id = $1
		  AND NOT EXISTS (SELECT 1 FROM articles a WHERE a.author_id = u.id)
	`

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	// 0 rows: phân biệt user không tồn tại vs còn bài viết
	var exists bool
	if err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`, id,
	).Scan(&exists); err != nil {
		return fmt.Errorf("check user exists: %w", err)
	}
	if !exists {
		return user.ErrUserNotFound
	}
	return user.ErrUserHasArticles
}
