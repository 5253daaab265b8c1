package config

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// The sync database is optional. When SYNC_DATABASE_URL is not set the whole
// deployment runs against the local backend and both handles stay nil.
var (
	SyncGorm *gorm.DB
	SyncPool *pgxpool.Pool
)

// SyncEnabled reports whether a networked backend was configured at startup.
func SyncEnabled() bool {
	return SyncGorm != nil
}

func InitDB() {
	dbURL := os.Getenv("SYNC_DATABASE_URL")
	if dbURL == "" {
		log.Println("⚠️  SYNC_DATABASE_URL not set, running with local backend only")
		return
	}

	gormLogger := logger.Default.LogMode(logger.Silent)
	if os.Getenv("APP_ENV") != "production" {
		gormLogger = logger.Default.LogMode(logger.Warn)
	}

	var err error
	SyncGorm, err = gorm.Open(postgres.Open(dbURL), &gorm.Config{
		Logger:  gormLogger,
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		// An unreachable sync database is a degradation, not a failure.
		log.Printf("⚠️  sync database unavailable, falling back to local backend: %v", err)
		SyncGorm = nil
		return
	}
	if sqlDB, err := SyncGorm.DB(); err == nil {
		sqlDB.SetMaxOpenConns(5)
		sqlDB.SetMaxIdleConns(2)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
		sqlDB.SetConnMaxIdleTime(2 * time.Minute)
	}
	log.Println("✅ Sync database connected (GORM)")

	// Raw pgx pool for the coordinated counter increments.
	SyncPool, err = pgxpool.New(context.Background(), dbURL)
	if err != nil {
		log.Printf("⚠️  pgx pool unavailable, order numbers use the local sequence: %v", err)
		SyncPool = nil
		return
	}
	if err = SyncPool.Ping(context.Background()); err != nil {
		log.Printf("⚠️  pgx ping failed, order numbers use the local sequence: %v", err)
		SyncPool.Close()
		SyncPool = nil
		return
	}
	log.Println("✅ Sync database connected (pgx)")
}

func CloseDB() {
	if SyncPool != nil {
		SyncPool.Close()
	}
	if SyncGorm != nil {
		if sqlDB, _ := SyncGorm.DB(); sqlDB != nil {
			sqlDB.Close()
		}
	}
}

// WithTimeout returns a context with a 10s timeout (generous for cold starts
// on hosted Postgres).
func WithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

func WithCustomTimeout(duration time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), duration)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// DataDir is where the local backend keeps its entity files.
func DataDir() string {
	return getEnv("DATA_DIR", "./data")
}
