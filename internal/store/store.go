// Package store implements the record collections on top of gorm. One generic
// Collection serves every document type; the type parameter decides the table.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lingua/api/internal/model"
	"gorm.io/gorm"
)

var (
	ErrNotFound   = errors.New("document not found")
	ErrValidation = errors.New("validation failed")
	ErrInvalidID  = errors.New("invalid document id")
)

// Scope narrows List and Clear. The zero value selects every document.
type Scope struct {
	Owner string
}

type Collection[T any, P model.Record[T]] struct {
	db   *gorm.DB
	name string
}

func NewCollection[T any, P model.Record[T]](db *gorm.DB, name string) *Collection[T, P] {
	return &Collection[T, P]{db: db, name: name}
}

func (c *Collection[T, P]) Name() string {
	return c.name
}

func (c *Collection[T, P]) ownerColumn() string {
	var zero T
	return P(&zero).OwnerColumn()
}

func (c *Collection[T, P]) scoped(ctx context.Context, scope Scope) *gorm.DB {
	tx := c.db.WithContext(ctx)
	if scope.Owner != "" {
		tx = tx.Where(fmt.Sprintf("%s = ?", c.ownerColumn()), scope.Owner)
	}
	return tx
}

func checkID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return nil
}

// Create validates doc and inserts it. doc receives the generated id and
// creation time.
func (c *Collection[T, P]) Create(ctx context.Context, doc P) error {
	if err := doc.Validate(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrValidation, c.name, err)
	}
	if err := c.db.WithContext(ctx).Create(doc).Error; err != nil {
		return fmt.Errorf("create %s: %w", c.name, err)
	}
	return nil
}

// List returns the documents in scope in the order the database yields them.
func (c *Collection[T, P]) List(ctx context.Context, scope Scope) ([]T, error) {
	docs := []T{}
	if err := c.scoped(ctx, scope).Find(&docs).Error; err != nil {
		return nil, fmt.Errorf("list %s: %w", c.name, err)
	}
	return docs, nil
}

// ListBy returns the documents whose column equals value.
func (c *Collection[T, P]) ListBy(ctx context.Context, column, value string) ([]T, error) {
	docs := []T{}
	err := c.db.WithContext(ctx).Where(fmt.Sprintf("%s = ?", column), value).Find(&docs).Error
	if err != nil {
		return nil, fmt.Errorf("list %s by %s: %w", c.name, column, err)
	}
	return docs, nil
}

func (c *Collection[T, P]) Get(ctx context.Context, id string) (P, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}

	doc := P(new(T))
	err := c.db.WithContext(ctx).Where("id = ?", id).First(doc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%s %s: %w", c.name, id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", c.name, err)
	}
	return doc, nil
}

// Update writes only the given columns and returns the document as stored
// afterwards. An empty field set just returns the current document.
func (c *Collection[T, P]) Update(ctx context.Context, id string, fields map[string]any) (P, error) {
	doc, err := c.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return doc, nil
	}

	if err := c.db.WithContext(ctx).Model(doc).Updates(fields).Error; err != nil {
		return nil, fmt.Errorf("update %s: %w", c.name, err)
	}
	return c.Get(ctx, id)
}

func (c *Collection[T, P]) Delete(ctx context.Context, id string) error {
	if err := checkID(id); err != nil {
		return err
	}

	res := c.db.WithContext(ctx).Where("id = ?", id).Delete(P(new(T)))
	if res.Error != nil {
		return fmt.Errorf("delete %s: %w", c.name, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%s %s: %w", c.name, id, ErrNotFound)
	}
	return nil
}

// Clear deletes every document in scope and reports how many were removed.
// With the zero Scope this wipes the whole collection regardless of owner.
func (c *Collection[T, P]) Clear(ctx context.Context, scope Scope) (int64, error) {
	tx := c.scoped(ctx, scope)
	if scope.Owner == "" {
		tx = tx.Session(&gorm.Session{AllowGlobalUpdate: true})
	}

	res := tx.Delete(P(new(T)))
	if res.Error != nil {
		return 0, fmt.Errorf("clear %s: %w", c.name, res.Error)
	}
	return res.RowsAffected, nil
}
