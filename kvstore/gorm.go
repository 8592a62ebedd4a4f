package kvstore

import (
	"errors"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Entry is the single table behind the GORM-backed store.
type Entry struct {
	Key   string `gorm:"primaryKey"`
	Value []byte
}

func (Entry) TableName() string { return "entries" }

type Gorm struct {
	db *gorm.DB
}

// OpenSQLite opens (or creates) a local database file. This is the
// default backend: one file on disk, same role local storage plays in
// the browser.
func OpenSQLite(path string) (*Gorm, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return newGorm(db)
}

// OpenPostgres connects with a DSN, for deployments that want a shared
// database instead of a local file.
func OpenPostgres(dsn string) (*Gorm, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return newGorm(db)
}

func newGorm(db *gorm.DB) (*Gorm, error) {
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, err
	}
	return &Gorm{db: db}, nil
}

func (g *Gorm) Get(key string) ([]byte, error) {
	var e Entry
	if err := g.db.First(&e, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return e.Value, nil
}

func (g *Gorm) Set(key string, value []byte) error {
	e := Entry{Key: key, Value: value}
	return g.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&e).Error
}

func (g *Gorm) Delete(key string) error {
	return g.db.Delete(&Entry{}, "key = ?", key).Error
}
