package database

import (
	"log"
	"net"
	"net/url"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"formku_backend/internals/configs"
	formModel "formku_backend/internals/features/forms/forms/model"
	responseModel "formku_backend/internals/features/forms/responses/model"
	authModel "formku_backend/internals/features/users/auth/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Connecting to PostgreSQL...")

	dsn := BuildDSN()

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // aman untuk PgBouncer (transaction pooling)
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("❌ DB connect failed: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(configs.GetEnvInt("DB_MAX_OPEN_CONNS", 20))
	sqlDB.SetMaxIdleConns(configs.GetEnvInt("DB_MAX_IDLE_CONNS", 10))
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

func WarmUpQueries() {
	go func() {
		time.Sleep(500 * time.Millisecond) // beri waktu server naik
		if err := Ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

// AutoMigrate membuat/menyesuaikan tabel users, token_blacklist, forms, form_questions, form_responses.
// Dimatikan lewat DB_AUTO_MIGRATE=false kalau skema dikelola migration terpisah.
func AutoMigrate(db *gorm.DB) error {
	if !configs.GetEnvBool("DB_AUTO_MIGRATE", true) {
		log.Println("[INFO] DB_AUTO_MIGRATE=false, skip migration")
		return nil
	}
	return db.AutoMigrate(
		&authModel.UserModel{},
		&authModel.TokenBlacklist{},
		&formModel.FormModel{},
		&formModel.FormQuestionModel{},
		&responseModel.FormResponseModel{},
	)
}

func Ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// BuildDSN menyusun DSN URL dari env DB_*. User & password di-escape lewat
// url.UserPassword, jadi karakter seperti @ / # ? aman.
// statement_timeout selaras dengan timeout request di main.go.
func BuildDSN() string {
	q := url.Values{}
	q.Set("sslmode", getenv("DB_SSLMODE", "disable"))
	q.Set("application_name", "formku")
	q.Set("options", "-c statement_timeout=3000")

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD")),
		Host:     net.JoinHostPort(getenv("DB_HOST", "localhost"), getenv("DB_PORT", "5432")),
		Path:     "/" + os.Getenv("DB_NAME"),
		RawQuery: q.Encode(),
	}
	return u.String()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
