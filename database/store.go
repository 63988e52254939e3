package database

import (
	"context"
	"errors"
	"fmt"

	"kisan/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNotFound is returned when no row has the requested id.
var ErrNotFound = errors.New("record not found")

// ReferentialIntegrityError reports a foreign key pointing at a missing row.
type ReferentialIntegrityError struct {
	Field string
	ID    uint
}

func (e *ReferentialIntegrityError) Error() string {
	return fmt.Sprintf("%s: invalid pk %d - object does not exist", e.Field, e.ID)
}

// Reference is a foreign key that must resolve before a write is applied.
type Reference struct {
	Field string // wire field name reported on failure
	Model any    // pointer to the referenced model type
	ID    uint
}

type dependent struct {
	newModel func() any
	column   string
}

// dependents lists, per parent table, the child rows removed with the parent.
var dependents = map[string][]dependent{
	"farmers": {
		{func() any { return &models.Land{} }, "farmer_id"},
		{func() any { return &models.SchemeApplication{} }, "farmer_id"},
	},
	"schemes": {
		{func() any { return &models.SchemeApplication{} }, "scheme_id"},
	},
}

// WithLands preloads a farmer's lands in insertion order.
func WithLands(db *gorm.DB) *gorm.DB {
	return db.Preload("Lands", func(db *gorm.DB) *gorm.DB { return db.Order("id") })
}

// WithApplicationRefs preloads the farmer and scheme behind an application.
func WithApplicationRefs(db *gorm.DB) *gorm.DB {
	return db.Preload("Farmer").Preload("Scheme")
}

// Create inserts record after checking refs, in one transaction.
func (d DbInstance) Create(ctx context.Context, record any, refs ...Reference) error {
	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkReferences(tx, refs); err != nil {
			return err
		}
		return translate(tx.Omit(clause.Associations).Create(record).Error, refs)
	})
}

// Find loads the row with id into dest.
func (d DbInstance) Find(ctx context.Context, dest any, id uint, scopes ...func(*gorm.DB) *gorm.DB) error {
	err := d.Db.WithContext(ctx).Scopes(scopes...).First(dest, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// List loads every row into dest in insertion order.
func (d DbInstance) List(ctx context.Context, dest any, scopes ...func(*gorm.DB) *gorm.DB) error {
	return d.Db.WithContext(ctx).Scopes(scopes...).Order("id").Find(dest).Error
}

// Update writes columns to the row with id. record must point at the model
// type; it is loaded before the write so a missing row yields ErrNotFound.
func (d DbInstance) Update(ctx context.Context, record any, id uint, columns map[string]any, refs ...Reference) error {
	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(record, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if err := checkReferences(tx, refs); err != nil {
			return err
		}
		if len(columns) == 0 {
			return nil
		}
		return translate(tx.Model(record).Omit(clause.Associations).Updates(columns).Error, refs)
	})
}

// Delete removes the row with id and, in the same transaction, every row
// that depends on it.
func (d DbInstance) Delete(ctx context.Context, model any, id uint) error {
	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(model).Where("id = ?", id).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return ErrNotFound
		}
		return deleteCascade(tx, model, []uint{id})
	})
}

// Count returns the number of rows of model matching the optional condition.
func (d DbInstance) Count(ctx context.Context, model any, conds ...any) (int64, error) {
	q := d.Db.WithContext(ctx).Model(model)
	if len(conds) > 0 {
		q = q.Where(conds[0], conds[1:]...)
	}
	var n int64
	err := q.Count(&n).Error
	return n, err
}

// Ping checks that the database answers.
func (d DbInstance) Ping(ctx context.Context) error {
	if d.Db == nil {
		return errors.New("gorm db is nil")
	}
	sqlDB, err := d.Db.DB()
	if err != nil {
		return fmt.Errorf("db.DB(): %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

func deleteCascade(tx *gorm.DB, model any, ids []uint) error {
	table, err := tableName(tx, model)
	if err != nil {
		return err
	}
	for _, dep := range dependents[table] {
		child := dep.newModel()
		var childIDs []uint
		if err := tx.Model(child).Where(dep.column+" IN ?", ids).Pluck("id", &childIDs).Error; err != nil {
			return err
		}
		if len(childIDs) == 0 {
			continue
		}
		if err := deleteCascade(tx, child, childIDs); err != nil {
			return err
		}
	}
	return tx.Where("id IN ?", ids).Delete(model).Error
}

func checkReferences(tx *gorm.DB, refs []Reference) error {
	for _, ref := range refs {
		var n int64
		if err := tx.Model(ref.Model).Where("id = ?", ref.ID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return &ReferentialIntegrityError{Field: ref.Field, ID: ref.ID}
		}
	}
	return nil
}

// translate maps a driver foreign key violation onto the first reference.
func translate(err error, refs []Reference) error {
	if err != nil && errors.Is(err, gorm.ErrForeignKeyViolated) && len(refs) > 0 {
		return &ReferentialIntegrityError{Field: refs[0].Field, ID: refs[0].ID}
	}
	return err
}

func tableName(tx *gorm.DB, model any) (string, error) {
	stmt := &gorm.Statement{DB: tx}
	if err := stmt.Parse(model); err != nil {
		return "", err
	}
	return stmt.Schema.Table, nil
}
