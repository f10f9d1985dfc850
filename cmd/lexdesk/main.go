package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/lexdesk-dev/lexdesk/internal/advisor"
	"github.com/lexdesk-dev/lexdesk/internal/config"
	"github.com/lexdesk-dev/lexdesk/internal/handlers"
	"github.com/lexdesk-dev/lexdesk/internal/router"
	"github.com/lexdesk-dev/lexdesk/internal/scheduler"
	"github.com/lexdesk-dev/lexdesk/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	dbPath := config.GetEnv("LEXDESK_DB", "data/lexdesk.db")
	backupDir := config.GetEnv("LEXDESK_BACKUP_DIR", "data/backups")

	st, err := store.Open(dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	sched := scheduler.New(st, backupDir)
	sched.Start()

	h := handlers.New(st, advisor.New(), backupDir)
	r := router.New(h)

	port := config.GetEnv("PORT", "8347")

	// Single local user: bind to loopback only.
	srv := &http.Server{
		Addr:    "127.0.0.1:" + port,
		Handler: r,
	}

	go func() {
		log.Printf("LexDesk running at http://127.0.0.1:%s", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	sched.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown: %v", err)
	}

	if err := st.Close(); err != nil {
		log.Printf("Failed to close database: %v", err)
	}
}
