package services

import (
	"fmt"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/osociohoteleiro/praiabela/models"
)

// newTestDB opens a private in-memory database and migrates the full
// schema. cache=shared keeps every pooled connection on the same DB.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Admin{},
		&models.SiteInfo{},
		&models.Room{},
		&models.Package{},
		&models.Promotion{},
		&models.Experience{},
		&models.GalleryImage{},
		&models.Media{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}
