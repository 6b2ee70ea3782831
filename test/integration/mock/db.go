package mock

import (
	"database/sql"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/estate-ledger/backend/internal/infra/db"
	"github.com/estate-ledger/backend/internal/integration/persistence/model"
)

var once sync.Once
var database *Db

type Db struct {
	DbConn *gorm.DB
}

// NewDb opens the shared in-memory SQLite database and migrates the schema once.
func NewDb() *Db {
	once.Do(func() {
		database = open()
	})
	return database
}

func open() *Db {
	dbSQL, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}

	// A single connection keeps the shared in-memory database alive and
	// serialises writes.
	dbSQL.SetMaxOpenConns(1)

	dbConn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	if err := db.NewDatabase(dbConn).Migrate(); err != nil {
		panic("failed to migrate database. err: " + err.Error())
	}

	return &Db{DbConn: dbConn}
}

// ClearDB removes every row, children first.
func (d *Db) ClearDB() error {
	for _, m := range []any{&model.ExpenseModel{}, &model.SaleModel{}, &model.ProjectModel{}} {
		if err := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(m).Error; err != nil {
			return err
		}
	}
	return nil
}
