package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net"
	"os"
	"time"

	"ArmyForge/service/catalog/internal/catalog"

	catalogv1 "ArmyForge/proto/catalog/v1"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"
)

func main() {
	// Bootstrap di logging e env.
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// Carica le variabili da .env se presente (solo per dev).
	envPath := os.Getenv("GO_DOTENV_PATH")
	if envPath == "" {
		envPath = "service/catalog/.env"
	}
	if err := godotenv.Overload(envPath); err != nil {
		logger.Warn("impossibile caricare .env", "path", envPath, "error", err)
	} else {
		logger.Info(".env caricato", "path", envPath)
	}

	// DB richiesto per servire il catalogo.
	dsn := os.Getenv("DB_DSN")
	db, err := openDB(dsn)
	if err != nil {
		logger.Error("db connection failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Registra CatalogService.
	server := grpc.NewServer()
	repo := catalog.NewRepo(db)
	service := catalog.NewService(repo)
	catalogv1.RegisterCatalogServiceServer(server, catalog.NewGRPCServer(service))
	reflection.Register(server)

	// Avvia il listener gRPC.
	addr := getEnv("GRPC_ADDR", ":50052")
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("grpc listen failed", "error", err)
		os.Exit(1)
	}

	logger.Info("catalog grpc listening", "addr", addr)
	if err := server.Serve(listener); err != nil {
		logger.Error("grpc serve failed", "error", err)
		os.Exit(1)
	}
}

func openDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}

	return db, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
