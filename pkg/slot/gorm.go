package slot

import (
	"errors"

	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// slotRow is the single table behind the persisted store: one row per
// slot, the value kept as a JSON column.
type slotRow struct {
	Key   string         `gorm:"primaryKey;column:key"`
	Value datatypes.JSON `gorm:"column:value"`
}

func (slotRow) TableName() string { return "slots" }

// GormStore keeps slots in a local SQLite file. This is the process's
// only durable state; it plays the role browser local storage played
// for the original views.
type GormStore struct {
	db *gorm.DB
}

// Open connects to (or creates) the slot database at path and ensures
// the slots table exists.
func Open(path string) (*GormStore, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	}

	db, err := gorm.Open(sqlite.Open(path), gormConfig)
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&slotRow{}); err != nil {
		return nil, err
	}

	return &GormStore{db: db}, nil
}

func (s *GormStore) Get(key string) ([]byte, bool, error) {
	var row slotRow
	err := s.db.First(&row, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(row.Value), true, nil
}

func (s *GormStore) Put(key string, value []byte) error {
	row := slotRow{Key: key, Value: datatypes.JSON(value)}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&row).Error
}

func (s *GormStore) Delete(key string) error {
	return s.db.Delete(&slotRow{}, "key = ?", key).Error
}

// Close releases the underlying connection.
func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
