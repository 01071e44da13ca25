package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/osociohoteleiro/praiabela/models"
	"github.com/osociohoteleiro/praiabela/services"
)

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

// mysqlDSNFromURL rewrites a mysql:// URL into the DSN format the mysql
// driver expects.
func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

// resolveDialector picks the engine from the DATABASE_URL scheme.
// Postgres is the canonical target; mysql:// keeps working so the
// engine can be swapped without touching any resource module.
func resolveDialector() (gorm.Dialector, error) {
	raw := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if raw == "" {
		user := envOrDefault("DB_USER", "postgres")
		pass := envOrDefault("DB_PASS", "postgres")
		host := envOrDefault("DB_HOST", "127.0.0.1")
		port := envOrDefault("DB_PORT", "5432")
		dbName := envOrDefault("DB_NAME", "praiabela")
		raw = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, pass, host, port, dbName)
	}

	if strings.HasPrefix(raw, "mysql://") {
		dsn, err := mysqlDSNFromURL(raw)
		if err != nil {
			return nil, err
		}
		return mysql.Open(dsn), nil
	}

	return postgres.Open(raw), nil
}

// ConnectDatabase opens the pool, migrates the schema and seeds the
// initial data. The handle is returned so callers inject it into the
// services instead of reaching for a package global.
func ConnectDatabase() (*gorm.DB, error) {
	dialector, err := resolveDialector()
	if err != nil {
		return nil, err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(dialector, &gorm.Config{Logger: newLogger})
	if err != nil {
		return nil, err
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
		return nil, err
	}

	if err := SeedDatabase(db); err != nil {
		return nil, err
	}
	return db, nil
}

// SeedDatabase creates the admin account, the site-info singleton and a
// little sample content on first boot. Re-running is a no-op.
func SeedDatabase(db *gorm.DB) error {
	// ---------------- Admin ----------------
	adminEmail := envOrDefault("ADMIN_EMAIL", "admin@praiabela.com")

	var adminCount int64
	db.Model(&models.Admin{}).Where("email = ?", adminEmail).Count(&adminCount)
	if adminCount == 0 {
		hash, err := services.HashPassword(envOrDefault("ADMIN_PASSWORD", "admin123"))
		if err != nil {
			return fmt.Errorf("hash admin password: %w", err)
		}
		admin := models.Admin{
			Email:    adminEmail,
			Password: hash,
			Name:     "Administrador",
		}
		if err := db.Create(&admin).Error; err != nil {
			return fmt.Errorf("seed admin: %w", err)
		}
		log.Println("✅ Admin padrão criado")
	}

	// ---------------- SiteInfo singleton ----------------
	var infoCount int64
	db.Model(&models.SiteInfo{}).Where("id = ?", models.SiteInfoID).Count(&infoCount)
	if infoCount == 0 {
		whatsapp := "5573987654321"
		info := models.SiteInfo{
			ID:             models.SiteInfoID,
			AboutText:      "A Pousada Praia Bela é o lugar perfeito para suas férias em Ilhéus, Bahia. Localizada à beira-mar, oferecemos conforto, tranquilidade e uma vista paradisíaca do oceano.",
			ContactEmail:   "contato@praiabela.com",
			ContactPhone:   "(73) 3234-5678",
			ContactAddress: "Av. Beira Mar, 1234 - Ilhéus/BA",
			CheckInTime:    "14:00",
			CheckOutTime:   "12:00",
			WhatsappNumber: &whatsapp,
		}
		if err := db.Create(&info).Error; err != nil {
			return fmt.Errorf("seed site info: %w", err)
		}
		log.Println("✅ Informações do site criadas")
	}

	// ---------------- Sample promotions ----------------
	var promoCount int64
	db.Model(&models.Promotion{}).Count(&promoCount)
	if promoCount == 0 {
		summer := "2025-03-31"
		yearEnd := "2025-12-31"
		promotions := []models.Promotion{
			{
				Title:       "Promoção de Verão",
				Description: "Aproveite nossos preços especiais para o verão! Reserve agora e ganhe até 30% de desconto.",
				Discount:    30,
				ValidUntil:  &summer,
				IsActive:    true,
			},
			{
				Title:       "Fim de Semana Romântico",
				Description: "Pacote especial para casais! Inclui jantar à luz de velas na praia.",
				Discount:    20,
				ValidUntil:  &yearEnd,
				IsActive:    true,
			},
		}
		if err := db.Create(&promotions).Error; err != nil {
			return fmt.Errorf("seed promotions: %w", err)
		}
		log.Println("✅ Promoções de exemplo criadas")
	}

	// ---------------- Sample packages ----------------
	var packageCount int64
	db.Model(&models.Package{}).Count(&packageCount)
	if packageCount == 0 {
		packages := []models.Package{
			{
				Name:        "Pacote Lua de Mel",
				Description: "Experiência romântica completa para recém-casados",
				Price:       2500.00,
				Inclusions:  models.JSONArray([]string{"5 diárias", "Café da manhã", "Jantar romântico", "Decoração especial", "Massagem relaxante"}),
				ImageURLs:   models.JSONArray(nil),
				IsFeatured:  true,
				IsActive:    true,
			},
			{
				Name:        "Pacote Família",
				Description: "Diversão garantida para toda a família",
				Price:       3200.00,
				Inclusions:  models.JSONArray([]string{"7 diárias", "Café da manhã", "Atividades para crianças", "Passeio de barco", "Transfer incluído"}),
				ImageURLs:   models.JSONArray(nil),
				IsFeatured:  true,
				IsActive:    true,
			},
			{
				Name:        "Pacote Relax",
				Description: "Descanse e renove suas energias",
				Price:       1800.00,
				Inclusions:  models.JSONArray([]string{"3 diárias", "Café da manhã", "Spa completo", "Yoga na praia", "Jantar especial"}),
				ImageURLs:   models.JSONArray(nil),
				IsActive:    true,
			},
		}
		if err := db.Create(&packages).Error; err != nil {
			return fmt.Errorf("seed packages: %w", err)
		}
		log.Println("✅ Pacotes de exemplo criados")
	}

	return nil
}
