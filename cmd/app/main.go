package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"logistics/cmd"
	httpadapter "logistics/internal/adapters/in/http"
	"logistics/internal/adapters/out/postgres/agencyrepo"
	"logistics/internal/adapters/out/postgres/outboxrepo"
	"logistics/internal/adapters/out/postgres/parcelrepo"
	"logistics/internal/adapters/out/postgres/shipmentrepo"
	"logistics/internal/adapters/out/postgres/userrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	db := openDatabase(configs)

	root := cmd.NewCompositionRoot(configs, db, logger)

	jobManager := root.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&root, configs)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:        goDotEnvVariable("HTTP_PORT"),
		DBHost:          goDotEnvVariable("DB_HOST"),
		DBPort:          goDotEnvVariable("DB_PORT"),
		DBUser:          goDotEnvVariable("DB_USER"),
		DBPassword:      goDotEnvVariable("DB_PASSWORD"),
		DBName:          goDotEnvVariable("DB_NAME"),
		DBSslMode:       goDotEnvVariable("DB_SSLMODE"),
		JWTSecret:       goDotEnvVariable("JWT_SECRET"),
		OutboxBatchSize: intEnvVariable("OUTBOX_BATCH_SIZE", 100),
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

func intEnvVariable(key string, fallback int) int {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("Invalid %s: %v", key, err)
	}
	return value
}

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	// TranslateError is required: the parcel repository relies on
	// gorm.ErrDuplicatedKey to detect tracking number collisions.
	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&agencyrepo.AgencyDTO{},
		&agencyrepo.LocationDTO{},
		&shipmentrepo.ShipmentDTO{},
		&parcelrepo.ParcelDTO{},
		&userrepo.UserDTO{},
		&userrepo.RoleDTO{},
		&userrepo.UserRoleDTO{},
		&outboxrepo.OutboxMessageDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return db
}

func startWebServer(root *cmd.CompositionRoot, configs cmd.Config) {
	server := httpadapter.NewServer(
		root.CreateCreateAgencyCommandHandler(),
		root.CreateUpdateAgencyCommandHandler(),
		root.CreateSuspendAgencyCommandHandler(),
		root.CreateUnsuspendAgencyCommandHandler(),
		root.CreateCreateShipmentCommandHandler(),
		root.CreateCreateCustomerShipmentCommandHandler(),
		root.CreateConfirmShipmentCommandHandler(),
		root.CreateValidateShipmentCommandHandler(),
		root.CreateRejectShipmentCommandHandler(),
		root.CreateCancelCustomerShipmentCommandHandler(),
		root.CreateRegisterParcelCommandHandler(),
		root.CreateChangeParcelStatusCommandHandler(),
		root.CreateMarkParcelDeliveredCommandHandler(),
		root.CreateMarkParcelFailedCommandHandler(),
		root.CreateGrantRoleCommandHandler(),
		root.CreateGetShipmentQueryHandler(),
		root.CreateGetAgencyShipmentsQueryHandler(),
		root.CreateTrackParcelQueryHandler(),
	)

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	server.RegisterRoutes(e, []byte(configs.JWTSecret))

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
