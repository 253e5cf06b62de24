package configs

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/utils"
)

var (
	AdminUsername     string
	AdminPasswordHash string
	AdminSessionToken string
	DefaultCategory   string
	DefaultImageURL   string
	SiteTitle         string
	SiteDescription   string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("no .env file found, using system ENV")
		}
	}

	AdminUsername = GetEnv("ADMIN_USERNAME", "admin")
	AdminPasswordHash = GetEnv("ADMIN_PASSWORD_HASH")
	AdminSessionToken = GetEnv("ADMIN_SESSION_TOKEN")
	DefaultCategory = GetEnv("DEFAULT_CATEGORY", "news")
	DefaultImageURL = GetEnv("DEFAULT_IMAGE_URL", "/images/default-thumbnail.jpg")
	SiteTitle = GetEnv("SITE_TITLE", "K-Pop News")
	SiteDescription = GetEnv("SITE_DESCRIPTION", "The latest K-pop news, comebacks and concerts.")

	if AdminSessionToken == "" {
		log.Println("ADMIN_SESSION_TOKEN is not set; admin routes will reject every request")
	}
	if AdminPasswordHash == "" {
		log.Println("ADMIN_PASSWORD_HASH is not set; login is disabled (generate one with cmd/tools/hashpass)")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return strings.TrimSpace(value)
}

// =======================
// GORM LOGGER CUSTOM
// =======================
type GormLogger struct {
	SlowThreshold time.Duration
	LogLevel      gormLogger.LogLevel
}

func NewGormLogger() gormLogger.Interface {
	return &GormLogger{
		SlowThreshold: 200 * time.Millisecond,
		LogLevel:      gormLogger.Warn,
	}
}

func (l *GormLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	l.LogLevel = level
	return l
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	log.Printf("[INFO] "+msg, data...)
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	log.Printf("[WARN] "+msg, data...)
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	log.Printf("[ERROR] "+msg, data...)
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)
	sql, rows := fc()
	file := utils.FileWithLineNum()

	if err != nil {
		log.Printf("[ERROR] %s | %v | %s | %d rows | %s", file, err, elapsed, rows, sql)
	} else if elapsed > l.SlowThreshold {
		log.Printf("[SLOW SQL] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	}
}
