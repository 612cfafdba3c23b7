package repo

import (
	"strings"

	"windkey/internal/model"

	gormpostgres "gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

// InitDB открывает соединение с БД и прогоняет автомиграции моделей.
// Postgres выбирается по виду DSN, во всех остальных случаях — SQLite
// через драйвер modernc (без cgo).
func InitDB(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		dsn = "windkey.db"
	}

	var dial gorm.Dialector
	if isPostgresDSN(dsn) {
		dial = gormpostgres.Open(dsn)
	} else {
		dial = gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}
	}

	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Password{},
		&model.History{},
	); err != nil {
		return nil, err
	}
	return db, nil
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") ||
		strings.HasPrefix(dsn, "postgresql://") ||
		strings.Contains(dsn, "host=")
}
