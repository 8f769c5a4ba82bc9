package main

import (
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	branchapp "github.com/ramadhanif/bakery-inventory/application/branch"
	inventoryapp "github.com/ramadhanif/bakery-inventory/application/inventory"
	itemapp "github.com/ramadhanif/bakery-inventory/application/item"
	reportapp "github.com/ramadhanif/bakery-inventory/application/report"
	transferapp "github.com/ramadhanif/bakery-inventory/application/transfer"
	userapp "github.com/ramadhanif/bakery-inventory/application/user"
	"github.com/ramadhanif/bakery-inventory/cmd/config"
	redisclient "github.com/ramadhanif/bakery-inventory/cmd/redis"
	_ "github.com/ramadhanif/bakery-inventory/docs"
	branchRepo "github.com/ramadhanif/bakery-inventory/repository/branch"
	inventoryRepo "github.com/ramadhanif/bakery-inventory/repository/inventory"
	itemRepo "github.com/ramadhanif/bakery-inventory/repository/item"
	redisRepo "github.com/ramadhanif/bakery-inventory/repository/redis"
	transferRepo "github.com/ramadhanif/bakery-inventory/repository/transfer"
	txRepo "github.com/ramadhanif/bakery-inventory/repository/tx"
	userRepo "github.com/ramadhanif/bakery-inventory/repository/user"
	"github.com/ramadhanif/bakery-inventory/thirdparty/rabbitmq"
	"github.com/ramadhanif/bakery-inventory/transport"
	"github.com/ramadhanif/bakery-inventory/utils/logger"
	"go.uber.org/zap"
)

// @title BAKERY INVENTORY API
// @version 1.0
// @description Multi-branch bakery inventory and stock transfer API
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Connect to RabbitMQ; stock alerts are best-effort, so a broken broker
	// degrades to log-only alerting instead of blocking startup.
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
	if err != nil {
		logger.Warn("err connect rabbitmq, stock alerts disabled", zap.Error(err))
		publisher = nil
	} else {
		defer func() {
			_ = publisher.Close()
		}()
	}

	// Initialize repositories
	TxRepo := txRepo.NewTxRepository(db)
	ItemRepo := itemRepo.NewItemRepository(db)
	BranchRepo := branchRepo.NewBranchRepository(db)
	InventoryRepo := inventoryRepo.NewInventoryRepository(db)
	TransferRepo := transferRepo.NewTransferRepository(db)
	UserRepo := userRepo.NewUserRepository(db)
	RedisRepo := redisRepo.NewRepository()

	// Initialize application layers
	UserApp := userapp.NewUserApp(cfg, UserRepo, RedisRepo)
	ItemApp := itemapp.NewItemApp(ItemRepo)
	BranchApp := branchapp.NewBranchApp(BranchRepo)
	InventoryApp := inventoryapp.NewInventoryApp(cfg, TxRepo, ItemRepo, BranchRepo, InventoryRepo, RedisRepo, publisher)
	TransferApp := transferapp.NewTransferApp(cfg, TxRepo, ItemRepo, BranchRepo, InventoryRepo, TransferRepo, RedisRepo, publisher)
	ReportApp := reportapp.NewReportApp(cfg, ItemRepo, BranchRepo, InventoryRepo, TransferRepo, RedisRepo)

	httpTransport := transport.NewTransport(&transport.RestHandler{
		UserApp:      UserApp,
		ItemApp:      ItemApp,
		BranchApp:    BranchApp,
		InventoryApp: InventoryApp,
		TransferApp:  TransferApp,
		ReportApp:    ReportApp,
	}, cfg.Internal.APIKey)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
