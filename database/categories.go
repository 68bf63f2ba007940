package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"

	"github.com/rodrigofez/food-order-admin/models"
)

var (
	// ErrNotFound is returned when no category matches the requested id.
	ErrNotFound = errors.New("category not found")
	// ErrDuplicateName is returned when another category already uses the name.
	ErrDuplicateName = errors.New("category name already exists")
)

const categoryColumns = "id, name, description, active, created_at, updated_at"

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCategory(row rowScanner) (models.Category, error) {
	var c models.Category
	err := row.Scan(&c.ID, &c.Name, &c.Description, &c.Active, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

// ListCategories returns every category ordered by id.
func ListCategories(ctx context.Context, db *sql.DB) ([]models.Category, error) {
	rows, err := db.QueryContext(ctx, "SELECT "+categoryColumns+" FROM categories ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}
	return categories, nil
}

// GetCategory loads a single category.
func GetCategory(ctx context.Context, db *sql.DB, id int) (models.Category, error) {
	row := db.QueryRowContext(ctx, "SELECT "+categoryColumns+" FROM categories WHERE id = ?", id)
	c, err := scanCategory(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Category{}, ErrNotFound
	}
	if err != nil {
		return models.Category{}, fmt.Errorf("get category %d: %w", id, err)
	}
	return c, nil
}

// CreateCategory inserts a category and returns the stored row.
func CreateCategory(ctx context.Context, db *sql.DB, in models.CategoryInput) (models.Category, error) {
	result, err := db.ExecContext(ctx, `
		INSERT INTO categories (name, description, active)
		VALUES (?, ?, ?)
	`, in.Name, in.Description, in.IsActive())
	if isUniqueViolation(err) {
		return models.Category{}, ErrDuplicateName
	}
	if err != nil {
		return models.Category{}, fmt.Errorf("insert category: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return models.Category{}, fmt.Errorf("insert category id: %w", err)
	}
	return GetCategory(ctx, db, int(id))
}

// UpdateCategory overwrites name, description and active flag.
func UpdateCategory(ctx context.Context, db *sql.DB, id int, in models.CategoryInput) (models.Category, error) {
	result, err := db.ExecContext(ctx, `
		UPDATE categories
		SET name = ?, description = ?, active = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, in.Name, in.Description, in.IsActive(), id)
	if isUniqueViolation(err) {
		return models.Category{}, ErrDuplicateName
	}
	if err != nil {
		return models.Category{}, fmt.Errorf("update category %d: %w", id, err)
	}
	if err := expectAffected(result); err != nil {
		return models.Category{}, err
	}
	return GetCategory(ctx, db, id)
}

// DeleteCategory removes a category by id.
func DeleteCategory(ctx context.Context, db *sql.DB, id int) error {
	result, err := db.ExecContext(ctx, "DELETE FROM categories WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete category %d: %w", id, err)
	}
	return expectAffected(result)
}

func expectAffected(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
}
