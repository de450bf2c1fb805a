package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/sarwaraminy/hostapi/config"
	"github.com/sarwaraminy/hostapi/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "host@example.com"
	password := "password123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id string
	err = db.QueryRow(`
		INSERT INTO users (email, password_hash, first_name, last_name)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO UPDATE SET first_name = EXCLUDED.first_name
		RETURNING id
	`, email, hash, "Demo", "Host").Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s email=%s password=%s\n", id, email, password)

	rooms := []struct {
		name    string
		number  string
		bedInfo string
	}{
		{"Garden View", "101", `{"beds": [{"type": "queen", "count": 1}]}`},
		{"Sea View", "102", `{"beds": [{"type": "king", "count": 1}]}`},
		{"Family Suite", "201", `{"beds": [{"type": "double", "count": 2}, {"type": "single", "count": 1}]}`},
	}
	for _, r := range rooms {
		var roomID int64
		err := db.QueryRow(`
			INSERT INTO room (name, room_number, bed_info)
			VALUES ($1, $2, $3)
			ON CONFLICT (room_number) DO UPDATE SET name = EXCLUDED.name, bed_info = EXCLUDED.bed_info
			RETURNING room_id
		`, r.name, r.number, r.bedInfo).Scan(&roomID)
		if err != nil {
			log.Fatalf("failed to seed room %s: %v", r.number, err)
		}
		fmt.Printf("seeded room: id=%d number=%s name=%s\n", roomID, r.number, r.name)
	}
}
