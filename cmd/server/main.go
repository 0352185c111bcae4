package main

import (
	"log"
	"net/http"

	"github.com/opticode/backend/internal/config"
	"github.com/opticode/backend/internal/db"
	"github.com/opticode/backend/internal/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	conn, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	log.Println("database ready (sqlite)")

	r := web.Router(cfg, conn)

	log.Printf("OptiCode backend listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		log.Fatal(err)
	}
}
