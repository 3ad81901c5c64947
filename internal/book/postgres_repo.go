package book

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepo implements Repository on a Postgres pool.
type PostgresRepo struct {
	db *pgxpool.Pool
}

func NewPostgresRepo(db *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{db: db}
}

const bookColumns = `id, title, author, isbn, genre, rating, comment, favorite,
	description, published_date, page_count, thumbnail, marketplace_url,
	added_date, owner_id`

func scanBook(row pgx.Row) (Book, error) {
	var b Book
	err := row.Scan(
		&b.ID, &b.Title, &b.Author, &b.ISBN, &b.Genre, &b.Rating, &b.Comment,
		&b.Favorite, &b.Description, &b.PublishedDate, &b.PageCount,
		&b.Thumbnail, &b.MarketplaceURL, &b.AddedDate, &b.OwnerID,
	)
	return b, err
}

// ListAll returns the whole collection. Filtering and sorting are not pushed
// down; the catalog engine handles them in memory.
func (r *PostgresRepo) ListAll(ctx context.Context) ([]Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []Book
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return books, nil
}

func (r *PostgresRepo) GetByID(ctx context.Context, id string) (Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE id = $1`

	b, err := scanBook(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return Book{}, ErrNotFound
	}
	if err != nil {
		return Book{}, err
	}
	return b, nil
}

// Create inserts a record and returns the store-assigned id.
func (r *PostgresRepo) Create(ctx context.Context, b *Book) (string, error) {
	const insertSQL = `
		INSERT INTO books (title, author, isbn, genre, rating, comment, favorite,
			description, published_date, page_count, thumbnail, marketplace_url,
			added_date, owner_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id
	`
	var id string
	err := r.db.QueryRow(ctx, insertSQL,
		b.Title, b.Author, b.ISBN, b.Genre, b.Rating, b.Comment, b.Favorite,
		b.Description, b.PublishedDate, b.PageCount, b.Thumbnail,
		b.MarketplaceURL, b.AddedDate, b.OwnerID,
	).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

// Update writes only the fields present in the patch. id, added_date and
// owner_id are never touched.
func (r *PostgresRepo) Update(ctx context.Context, id string, p Patch) error {
	var (
		sets []string
		args []any
	)
	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if p.Title != nil {
		add("title", *p.Title)
	}
	if p.Author != nil {
		add("author", *p.Author)
	}
	if p.ISBN != nil {
		add("isbn", *p.ISBN)
	}
	if p.Genre != nil {
		add("genre", *p.Genre)
	}
	if p.Rating != nil {
		add("rating", *p.Rating)
	}
	if p.Comment != nil {
		add("comment", *p.Comment)
	}
	if p.Favorite != nil {
		add("favorite", *p.Favorite)
	}
	if p.Description != nil {
		add("description", *p.Description)
	}
	if p.PublishedDate != nil {
		add("published_date", *p.PublishedDate)
	}
	if p.PageCount != nil {
		add("page_count", *p.PageCount)
	}
	if p.Thumbnail != nil {
		add("thumbnail", *p.Thumbnail)
	}
	if p.MarketplaceURL != nil {
		add("marketplace_url", *p.MarketplaceURL)
	}
	if len(sets) == 0 {
		return nil
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE books SET %s WHERE id = $%d",
		strings.Join(sets, ", "), len(args))

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
