package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"littlelemon/cmd"
	"littlelemon/internal/adapters/out/postgres/cartrepo"
	"littlelemon/internal/adapters/out/postgres/menurepo"
	"littlelemon/internal/adapters/out/postgres/orderrepo"
	"littlelemon/internal/adapters/out/postgres/userrepo"
	"littlelemon/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)
	waitForDatabase(dsn)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err = gormDB.AutoMigrate(
		&userrepo.UserDTO{},
		&userrepo.MembershipDTO{},
		&menurepo.CategoryDTO{},
		&menurepo.MenuItemDTO{},
		&cartrepo.CartLineDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
	); err != nil {
		log.Fatalf("Error migrating database schema: %v", err)
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB)
	if err != nil {
		log.Fatalf("Error wiring application: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(
		app.CreatePurgeStaleCartLinesCommandHandler(),
		configs.CartTTL,
		logger,
	)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:      goDotEnvVariable("HTTP_PORT"),
		DBHost:        goDotEnvVariable("DB_HOST"),
		DBPort:        goDotEnvVariable("DB_PORT"),
		DBUser:        goDotEnvVariable("DB_USER"),
		DBPassword:    goDotEnvVariable("DB_PASSWORD"),
		DBName:        goDotEnvVariable("DB_NAME"),
		DBSslMode:     goDotEnvVariable("DB_SSLMODE"),
		JWTSecret:     goDotEnvVariable("JWT_SECRET"),
		TokenLifetime: hoursEnvVariable("TOKEN_LIFETIME_HOURS"),
		CartTTL:       hoursEnvVariable("CART_TTL_HOURS"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func hoursEnvVariable(key string) time.Duration {
	raw := goDotEnvVariable(key)
	hours, err := strconv.Atoi(raw)
	if err != nil || hours <= 0 {
		log.Fatalf("Error parsing %s: expected a positive hour count, got %q", key, raw)
	}
	return time.Duration(hours) * time.Hour
}

// waitForDatabase pings the database with the plain driver until it accepts
// connections, so a container-orchestrated startup does not race the server.
func waitForDatabase(dsn string) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Error opening database connection: %v", err)
	}
	defer func() { _ = db.Close() }()

	for attempt := 0; attempt < 30; attempt++ {
		if err = db.Ping(); err == nil {
			return
		}
		time.Sleep(time.Second)
	}
	log.Fatalf("Error waiting for database: %v", err)
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := app.CreateHTTPServer()
	server.RegisterRoutes(e, app.CreateAuthMiddleware())

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
