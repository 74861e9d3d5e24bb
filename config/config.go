package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// AppConfig menyimpan seluruh konfigurasi aplikasi yang dibaca dari environment.
type AppConfig struct {
	Port      string
	ClientURL string
	JWTSecret string

	// Timer policy (business constants, overridable via env)
	TimerWarningSeconds int64
	TimerExpireSeconds  int64
	TimerSweepInterval  time.Duration

	// Upload limits
	MaxUploadBytes int64
	UploadDir      string
}

var App AppConfig

// Load membaca environment variables dan mengisi App dengan default yang aman.
func Load() {
	App = AppConfig{
		Port:                getEnv("PORT", "8080"),
		ClientURL:           getEnv("CLIENT_URL", "http://localhost:3000"),
		JWTSecret:           getEnv("JWT_SECRET", "siszum-dev-secret"),
		TimerWarningSeconds: getEnvInt64("TIMER_WARNING_SECONDS", 6300),
		TimerExpireSeconds:  getEnvInt64("TIMER_EXPIRE_SECONDS", 7200),
		TimerSweepInterval:  time.Duration(getEnvInt64("TIMER_SWEEP_INTERVAL_SECONDS", 30)) * time.Second,
		MaxUploadBytes:      getEnvInt64("MAX_FILE_SIZE", 5<<20),
		UploadDir:           getEnv("UPLOAD_DIR", "public/uploads"),
	}
}

// InitDB membuka koneksi MySQL berdasarkan env DB_*.
func InitDB() (*gorm.DB, error) {
	host := getEnv("DB_HOST", "127.0.0.1")
	port := getEnv("DB_PORT", "3306")
	user := getEnv("DB_USER", "root")
	pass := os.Getenv("DB_PASSWORD")
	name := getEnv("DB_NAME", "siszum_pos")

	db, err := gorm.Open(mysql.Open(MySQLDSN(user, pass, host, port, name)), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	return db, nil
}

// MySQLDSN menyusun DSN koneksi. clientFoundRows wajib: RowsAffected harus
// menghitung baris yang MATCH, bukan yang berubah, supaya conditional UPDATE
// bernilai sama (mis. occupied -> occupied) tidak terbaca sebagai konflik.
func MySQLDSN(user, pass, host, port, name string) string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local&clientFoundRows=true",
		user, pass, host, port, name)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}
