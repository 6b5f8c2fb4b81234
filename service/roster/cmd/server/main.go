package main

import (
	"log/slog"
	"net"
	"os"
	"time"

	catalogv1 "ArmyForge/proto/catalog/v1"
	rosterv1 "ArmyForge/proto/roster/v1"
	"ArmyForge/service/roster/internal/config"
	"ArmyForge/service/roster/internal/db"
	"ArmyForge/service/roster/internal/lock"
	"ArmyForge/service/roster/internal/roster"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/reflection"
)

func main() {
	// Bootstrap di logging e config.
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// Carica le variabili da .env se presente (solo per dev).
	envPath := os.Getenv("GO_DOTENV_PATH")
	if envPath == "" {
		envPath = "service/roster/.env"
	}
	if err := godotenv.Overload(envPath); err != nil {
		// Se manca il file .env, continuiamo con le env già presenti.
		logger.Warn("impossibile caricare .env", "path", envPath, "error", err)
	} else {
		logger.Info(".env caricato", "path", envPath)
	}

	cfg := config.Load()

	// DB richiesto per la persistenza delle sessioni.
	database, err := db.Open(cfg.DBDSN)
	if err != nil {
		logger.Error("db connection failed", "error", err)
		os.Exit(1)
	}
	defer database.Close()

	// Catalog-svc richiesto per risolvere le definizioni di unità.
	catalogConn, err := grpc.Dial(cfg.CatalogGRPCAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		logger.Error("catalog grpc dial failed", "error", err)
		os.Exit(1)
	}
	defer catalogConn.Close()

	// Lock Redis per serializzare le mutazioni per sessione.
	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	locker := lock.NewRedisLock(redisClient, 5*time.Second, 3, 150*time.Millisecond)

	// Registra RosterService.
	server := grpc.NewServer()
	repo := roster.NewRepo(database)
	catalogClient := catalogv1.NewCatalogServiceClient(catalogConn)
	rosterv1.RegisterRosterServiceServer(server, roster.NewServer(logger, repo, catalogClient, locker))
	reflection.Register(server)

	// Avvia il listener gRPC.
	listener, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		logger.Error("grpc listen failed", "error", err)
		os.Exit(1)
	}

	logger.Info("roster grpc listening", "addr", cfg.GRPCAddr)
	if err := server.Serve(listener); err != nil {
		logger.Error("grpc serve failed", "error", err)
		os.Exit(1)
	}
}
