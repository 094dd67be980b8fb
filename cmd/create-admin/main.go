package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/Siddaarth-Babu/MOOC/internal/config"
	"github.com/Siddaarth-Babu/MOOC/internal/database"
	"github.com/Siddaarth-Babu/MOOC/internal/logger"
	"github.com/Siddaarth-Babu/MOOC/internal/model"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"
)

// create-admin bootstraps the first admin account directly against the
// database, bypassing the enrollment-key check that signup enforces. The
// credential and the admin profile are written in one transaction, same as
// signup does.
func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── CLI Input ─────────────────────────────────────────────────────
	reader := bufio.NewReader(os.Stdin)

	fmt.Println("=== Create New Admin Account ===")

	// Name
	fmt.Print("Enter Name: ")
	name, _ := reader.ReadString('\n')
	name = strings.TrimSpace(name)
	if name == "" {
		fmt.Println("Error: Name is required")
		return
	}

	// Email
	fmt.Print("Enter Email: ")
	email, _ := reader.ReadString('\n')
	email = strings.TrimSpace(email)
	if email == "" {
		fmt.Println("Error: Email is required")
		return
	}

	// Password
	fmt.Print("Enter Password: ")
	bytePassword, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		fmt.Println("\nError reading password")
		return
	}
	password := string(bytePassword)
	fmt.Println() // Newline after password input
	if len(password) < 6 {
		fmt.Println("Error: Password must be at least 6 characters")
		return
	}
	if len(password) > 72 {
		fmt.Println("Error: Password exceeds the maximum supported length")
		return
	}

	// ─── Logic ─────────────────────────────────────────────────────────

	// Hash Password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), cfg.BcryptCost)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to hash password")
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to begin transaction")
	}
	defer tx.Rollback(ctx)

	var userID int
	err = tx.QueryRow(ctx,
		`INSERT INTO users (full_name, email, password_hash, role)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		name, email, string(hashedPassword), model.RoleAdmin,
	).Scan(&userID)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create admin credential")
	}

	var adminID int
	err = tx.QueryRow(ctx,
		`INSERT INTO admins (user_id, name, email) VALUES ($1, $2, $3) RETURNING id`,
		userID, name, email,
	).Scan(&adminID)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create admin profile")
	}

	if err := tx.Commit(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to commit")
	}

	fmt.Printf("\nSuccess! Admin '%s' (%s) created with profile ID: %d\n", name, email, adminID)
}
