// database/bootstrap.go
package database

import (
	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"

	"sqlprep/entities"
)

func OpenSQLite(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&entities.PrepPlan{}); err != nil {
		return nil, err
	}
	return db, nil
}
