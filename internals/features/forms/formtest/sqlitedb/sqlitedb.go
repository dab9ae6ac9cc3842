// Package sqlitedb membuka database SQLite (file di t.TempDir) dengan skema
// forms/form_questions/form_responses, untuk test repository GORM tanpa Postgres.
package sqlitedb

import (
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	formModel "formku_backend/internals/features/forms/forms/model"
	responseModel "formku_backend/internals/features/forms/responses/model"
)

// Open: satu koneksi saja, SQLite hanya punya satu writer.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "formku.db") + "?_pragma=busy_timeout(5000)"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(
		&formModel.FormModel{},
		&formModel.FormQuestionModel{},
		&responseModel.FormResponseModel{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// Recorder mencatat SQL yang dieksekusi lewat callback query/update/create.
type Recorder struct {
	mu   sync.Mutex
	stmt []string
}

func Record(t testing.TB, db *gorm.DB) *Recorder {
	t.Helper()

	rec := &Recorder{}
	hook := func(tx *gorm.DB) {
		rec.mu.Lock()
		rec.stmt = append(rec.stmt, tx.Statement.SQL.String())
		rec.mu.Unlock()
	}
	cb := db.Callback()
	regs := []error{
		cb.Query().After("gorm:query").Register("sqlitedb:record_query", hook),
		cb.Update().After("gorm:update").Register("sqlitedb:record_update", hook),
		cb.Create().After("gorm:create").Register("sqlitedb:record_create", hook),
	}
	for _, err := range regs {
		if err != nil {
			t.Fatalf("register callback: %v", err)
		}
	}
	return rec
}

// Reset mengosongkan catatan.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.stmt = nil
	r.mu.Unlock()
}

// Matching statement yang mengandung semua potongan (case-insensitive).
func (r *Recorder) Matching(parts ...string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []string
	for _, s := range r.stmt {
		ls := strings.ToLower(s)
		ok := true
		for _, p := range parts {
			if !strings.Contains(ls, strings.ToLower(p)) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, s)
		}
	}
	return out
}
