package config

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/AgriSeed/agriseed-cms-backend/models"
	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	// PgPool serves the raw, high-volume paths (visitor log).
	PgPool *pgxpool.Pool
	// DB is the GORM handle used by every CRUD handler.
	DB *gorm.DB
)

func InitDB() {
	initPgx()
	initGORM()
}

func databaseURL() string {
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		url = fmt.Sprintf(
			"postgres://%s:%s@%s:%s/%s?sslmode=disable",
			getEnv("DB_USER", "postgres"),
			getEnv("DB_PASSWORD", ""),
			getEnv("DB_HOST", "localhost"),
			getEnv("DB_PORT", "5432"),
			getEnv("DB_NAME", "agriseed"),
		)
		Log.Warnf("⚠️ DATABASE_URL not set, using local default")
	}
	return url
}

func initPgx() {
	var err error
	PgPool, err = pgxpool.New(context.Background(), databaseURL())
	if err != nil {
		Log.Fatalf("❌ Unable to connect to database: %v", err)
	}

	if err = PgPool.Ping(context.Background()); err != nil {
		Log.Fatalf("❌ Database ping failed: %v", err)
	}

	Log.Infof("✅ Database connected (pgx)")
}

func initGORM() {
	gormLogger := logger.Default.LogMode(logger.Info)
	if os.Getenv("APP_ENV") == "production" {
		gormLogger = logger.Default.LogMode(logger.Silent)
	}

	var err error
	DB, err = gorm.Open(postgres.Open(databaseURL()), &gorm.Config{
		Logger:  gormLogger,
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		Log.Fatalf("❌ Failed to connect to database with GORM: %v", err)
	}
	if sqlDB, err := DB.DB(); err == nil {
		sqlDB.SetMaxOpenConns(5)
		sqlDB.SetMaxIdleConns(2)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
		sqlDB.SetConnMaxIdleTime(2 * time.Minute)
	}
	Log.Infof("✅ Database connected (GORM)")
}

// AutoMigrate creates or updates every table the site owns.
func AutoMigrate() error {
	if DB == nil {
		return fmt.Errorf("database not initialised")
	}
	return DB.AutoMigrate(
		&models.Admin{},
		&models.Product{},
		&models.BlogPost{},
		&models.Testimonial{},
		&models.ContactMessage{},
		&models.VisitorLog{},
		&models.ActivityLog{},
	)
}

func CloseDB() {
	if PgPool != nil {
		PgPool.Close()
		Log.Infof("✅ Database connection closed (pgx)")
	}
	if DB != nil {
		sqlDB, _ := DB.DB()
		if sqlDB != nil {
			sqlDB.Close()
			Log.Infof("✅ Database connection closed (GORM)")
		}
	}
}

// WithTimeout returns a context with a 10s timeout
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
