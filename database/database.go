// database.go - Handles database connection and setup

package database // Declares the package name

import ( // Import required packages
	"go-review-backend/models" // Collection models

	"github.com/pkg/errors"          // Error wrapping
	"gorm.io/driver/sqlite"          // SQLite driver for GORM
	"gorm.io/gorm"                   // GORM ORM
	gormlogger "gorm.io/gorm/logger" // Quieter SQL logging
)

// Connect opens the database and migrates the users, products and reviews collections.
// The returned handle is safe for concurrent use and is passed to the stores explicitly.
func Connect(dbPath string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{ // Open SQLite DB
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil { // If error, return it
		return nil, errors.Wrapf(err, "open %s", dbPath)
	}

	// Auto-migrate the models (create tables if needed)
	if err := db.AutoMigrate(&models.User{}, &models.Product{}, &models.Review{}); err != nil {
		return nil, errors.Wrap(err, "migrate")
	}
	return db, nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
