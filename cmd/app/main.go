package main

import (
	"fmt"
	"os"
	"strconv"

	"matching/cmd"
	httpin "matching/internal/adapters/in/http"
	"matching/internal/adapters/out/postgres/offerrepo"
	"matching/internal/adapters/out/postgres/requestrepo"
	"matching/internal/adapters/out/postgres/statsrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	mustMigrate(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)
	defer app.Close()

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),

		SweepIntervalSeconds: goDotEnvInt("SWEEP_INTERVAL_SECONDS"),
		MaxCounterDepth:      goDotEnvInt("MAX_COUNTER_DEPTH"),
		DuplicatePolicy:      goDotEnvVariable("OFFER_DUPLICATE_POLICY"),
		NotifierBufferSize:   goDotEnvInt("NOTIFIER_BUFFER_SIZE"),
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

// goDotEnvInt reads an integer variable. An empty or malformed value yields
// zero, which every consumer treats as "use the default".
func goDotEnvInt(key string) int {
	value, err := strconv.Atoi(goDotEnvVariable(key))
	if err != nil {
		return 0
	}
	return value
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func mustMigrate(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&requestrepo.RequestDTO{},
		&offerrepo.OfferDTO{},
		&statsrepo.CourierStatsDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpin.NewServer(
		app.CreateCreateRequestCommandHandler(),
		app.CreateSubmitOfferCommandHandler(),
		app.CreateCounterOfferCommandHandler(),
		app.CreateAcceptOfferCommandHandler(),
		app.CreateRejectOfferCommandHandler(),
		app.CreateWithdrawOfferCommandHandler(),
		app.CreateCancelRequestCommandHandler(),
		app.CreateGetRequestOffersQueryHandler(),
		app.CreateGetCourierStatsQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
