package main

import (
	"kinovzor/config"
	"kinovzor/database"
	"kinovzor/routers"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const shutdownTimeout = 10 * time.Second

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := routers.NewApp(config.AppConfig)

	ln, err := net.Listen("tcp", ":"+config.AppConfig.Port)
	if err != nil {
		log.Fatal(err)
	}

	stop := make(chan struct{})
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down server...")
		close(stop)
	}()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	if err := routers.Serve(app, ln, stop, shutdownTimeout); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}

	// requests have drained, the pool can go
	if sqlDB, err := database.Database.Db.DB(); err == nil {
		sqlDB.Close()
	}
	log.Println("Server stopped.")
}
