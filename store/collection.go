// collection.go - Document-style query/update access to one table

package store

import (
	"context"

	"go-review-backend/models"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Collection gives services a small, document-store shaped view over one gorm model.
// Records are returned in insertion order unless the query says otherwise.
// Driver failures are reported as models.ErrStore and missing ids as models.ErrNotFound.
type Collection[T any] struct {
	db   *gorm.DB
	name string
}

// NewCollection binds a collection to the model type T. name is only used in error messages.
func NewCollection[T any](db *gorm.DB, name string) *Collection[T] {
	return &Collection[T]{db: db, name: name}
}

// Insert stores doc; ids are assigned by the model's BeforeCreate hook.
func (c *Collection[T]) Insert(ctx context.Context, doc *T) error {
	if err := c.db.WithContext(ctx).Create(doc).Error; err != nil {
		return errors.Wrapf(models.ErrStore, "insert into %s: %v", c.name, err)
	}
	return nil
}

// Find returns every record matching conds (gorm inline conditions, e.g. "email = ?", email).
// No conds means the whole collection. The result is never nil.
func (c *Collection[T]) Find(ctx context.Context, conds ...interface{}) ([]T, error) {
	docs := make([]T, 0)
	if err := c.db.WithContext(ctx).Find(&docs, conds...).Error; err != nil {
		return nil, errors.Wrapf(models.ErrStore, "find in %s: %v", c.name, err)
	}
	return docs, nil
}

// FindOne returns the first stored record matching conds.
func (c *Collection[T]) FindOne(ctx context.Context, conds ...interface{}) (*T, error) {
	var doc T
	err := c.db.WithContext(ctx).Take(&doc, conds...).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.Wrapf(models.ErrNotFound, "%s", c.name)
	}
	if err != nil {
		return nil, errors.Wrapf(models.ErrStore, "find one in %s: %v", c.name, err)
	}
	return &doc, nil
}

// FindByID looks a record up by primary key.
func (c *Collection[T]) FindByID(ctx context.Context, id string) (*T, error) {
	return c.FindOne(ctx, "id = ?", id)
}

// UpdateByID applies fields (column name -> value) to the record and returns it as stored
// afterwards. Empty fields leave the record untouched.
func (c *Collection[T]) UpdateByID(ctx context.Context, id string, fields map[string]interface{}) (*T, error) {
	doc, err := c.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return doc, nil
	}

	res := c.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, errors.Wrapf(models.ErrStore, "update %s: %v", c.name, res.Error)
	}
	if res.RowsAffected == 0 { // deleted between the lookup and the update
		return nil, errors.Wrapf(models.ErrNotFound, "%s", c.name)
	}
	return c.FindByID(ctx, id)
}

// DeleteByID removes the record with the given id.
func (c *Collection[T]) DeleteByID(ctx context.Context, id string) error {
	res := c.db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	if res.Error != nil {
		return errors.Wrapf(models.ErrStore, "delete from %s: %v", c.name, res.Error)
	}
	if res.RowsAffected == 0 {
		return errors.Wrapf(models.ErrNotFound, "%s", c.name)
	}
	return nil
}
