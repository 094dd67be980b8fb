package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Siddaarth-Babu/MOOC/internal/config"
	"github.com/Siddaarth-Babu/MOOC/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// Account errors.
var (
	ErrEmailTaken           = errors.New("email already registered")
	ErrInvalidEnrollmentKey = errors.New("invalid enrollment key")
	ErrRoleMismatch         = errors.New("account role does not match")
	ErrProfileMissing       = errors.New("role profile missing for credential")
)

const pgUniqueViolation = "23505"

// AccountService orchestrates signup, login, and identity resolution.
// Signup writes the credential row and the role profile row in one
// transaction; a credential without a profile must never become durable.
type AccountService struct {
	pool *pgxpool.Pool
	cfg  *config.Config
	auth *AuthService
	log  zerolog.Logger
}

// NewAccountService creates a new AccountService.
func NewAccountService(pool *pgxpool.Pool, cfg *config.Config, auth *AuthService, log zerolog.Logger) *AccountService {
	return &AccountService{
		pool: pool,
		cfg:  cfg,
		auth: auth,
		log:  log.With().Str("component", "account_service").Logger(),
	}
}

// Signup registers a new account: credential plus matching role profile,
// atomically. Returns the granted role on success.
func (s *AccountService) Signup(ctx context.Context, req *model.SignupRequest) (model.Role, error) {
	role, err := model.ParseRole(req.Role)
	if err != nil {
		return "", err
	}

	// Fast-path uniqueness check. The users.email UNIQUE constraint is the
	// real arbiter under concurrency; the 23505 mapping below covers races.
	var exists bool
	err = s.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, req.Email).Scan(&exists)
	if err != nil {
		return "", fmt.Errorf("check email: %w", err)
	}
	if exists {
		return "", ErrEmailTaken
	}

	if role.Keyed() {
		key, _ := s.cfg.EnrollmentKey(string(role))
		if key == "" || req.EnrollmentKey != key {
			return "", ErrInvalidEnrollmentKey
		}
	}

	passwordHash, err := s.auth.HashPassword(req.Password)
	if err != nil {
		return "", err
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return "", fmt.Errorf("begin signup tx: %w", err)
	}
	defer tx.Rollback(ctx)

	var userID int
	err = tx.QueryRow(ctx,
		`INSERT INTO users (full_name, email, password_hash, role)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		req.FullName, req.Email, passwordHash, role,
	).Scan(&userID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return "", ErrEmailTaken
		}
		return "", fmt.Errorf("insert credential: %w", err)
	}

	if err := s.insertProfile(ctx, tx, userID, role, req); err != nil {
		return "", fmt.Errorf("insert %s profile: %w", role, err)
	}

	if err := tx.Commit(ctx); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return "", ErrEmailTaken
		}
		return "", fmt.Errorf("commit signup tx: %w", err)
	}

	return role, nil
}

func (s *AccountService) insertProfile(ctx context.Context, tx pgx.Tx, userID int, role model.Role, req *model.SignupRequest) error {
	switch role {
	case model.RoleStudent:
		var dob *time.Time
		if req.DOB != "" {
			parsed, err := time.Parse("2006-01-02", req.DOB)
			if err != nil {
				return fmt.Errorf("parse dob: %w", err)
			}
			dob = &parsed
		}
		_, err := tx.Exec(ctx,
			`INSERT INTO students (user_id, name, email, dob, country, skill_level, contact_number, specialization)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			userID, req.FullName, req.Email, dob,
			nullable(req.Country), nullable(req.SkillLevel), nullable(req.ContactNumber), nullable(req.Specialization),
		)
		return err
	case model.RoleInstructor:
		_, err := tx.Exec(ctx,
			`INSERT INTO instructors (user_id, name, email, department) VALUES ($1, $2, $3, $4)`,
			userID, req.FullName, req.Email, nullable(req.Department),
		)
		return err
	case model.RoleAnalyst:
		_, err := tx.Exec(ctx,
			`INSERT INTO analysts (user_id, name, email) VALUES ($1, $2, $3)`,
			userID, req.FullName, req.Email,
		)
		return err
	case model.RoleAdmin:
		_, err := tx.Exec(ctx,
			`INSERT INTO admins (user_id, name, email) VALUES ($1, $2, $3)`,
			userID, req.FullName, req.Email,
		)
		return err
	}
	return model.ErrInvalidRole
}

// Login verifies credentials and issues a bearer token. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *AccountService) Login(ctx context.Context, email, password string) (*model.LoginResponse, error) {
	var (
		userID       int
		passwordHash string
		role         model.Role
	)
	err := s.pool.QueryRow(ctx,
		`SELECT id, password_hash, role FROM users WHERE email = $1`, email,
	).Scan(&userID, &passwordHash, &role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("lookup credential: %w", err)
	}

	if err := s.auth.CheckPassword(passwordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.auth.IssueToken(email, role, userID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &model.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		Role:        role,
	}, nil
}

// Resolve maps a verified token subject to the role profile it must have.
// ErrRoleMismatch covers both a missing credential and a credential of a
// different role. ErrProfileMissing means the co-creation invariant was
// violated after the fact (e.g. the profile row was deleted on its own) and
// is logged as an integrity failure, not an auth failure.
func (s *AccountService) Resolve(ctx context.Context, email string, role model.Role) (model.Principal, error) {
	var (
		userID     int
		storedRole model.Role
	)
	err := s.pool.QueryRow(ctx,
		`SELECT id, role FROM users WHERE email = $1`, email,
	).Scan(&userID, &storedRole)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRoleMismatch
		}
		return nil, fmt.Errorf("lookup credential: %w", err)
	}
	if storedRole != role {
		return nil, ErrRoleMismatch
	}

	principal, err := s.fetchProfile(ctx, userID, role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.log.Error().
				Str("email", email).
				Str("role", string(role)).
				Int("user_id", userID).
				Msg("credential has no matching role profile")
			return nil, ErrProfileMissing
		}
		return nil, fmt.Errorf("lookup %s profile: %w", role, err)
	}
	return principal, nil
}

func (s *AccountService) fetchProfile(ctx context.Context, userID int, role model.Role) (model.Principal, error) {
	switch role {
	case model.RoleStudent:
		st := &model.Student{}
		err := s.pool.QueryRow(ctx,
			`SELECT id, user_id, name, email, dob, country, skill_level, contact_number, specialization, created_at
			 FROM students WHERE user_id = $1`, userID,
		).Scan(&st.ID, &st.UserID, &st.Name, &st.Email, &st.DOB, &st.Country, &st.SkillLevel, &st.ContactNumber, &st.Specialization, &st.CreatedAt)
		return st, err
	case model.RoleInstructor:
		in := &model.Instructor{}
		err := s.pool.QueryRow(ctx,
			`SELECT id, user_id, name, email, department, created_at
			 FROM instructors WHERE user_id = $1`, userID,
		).Scan(&in.ID, &in.UserID, &in.Name, &in.Email, &in.Department, &in.CreatedAt)
		return in, err
	case model.RoleAnalyst:
		an := &model.Analyst{}
		err := s.pool.QueryRow(ctx,
			`SELECT id, user_id, name, email, created_at
			 FROM analysts WHERE user_id = $1`, userID,
		).Scan(&an.ID, &an.UserID, &an.Name, &an.Email, &an.CreatedAt)
		return an, err
	case model.RoleAdmin:
		ad := &model.Admin{}
		err := s.pool.QueryRow(ctx,
			`SELECT id, user_id, name, email, created_at
			 FROM admins WHERE user_id = $1`, userID,
		).Scan(&ad.ID, &ad.UserID, &ad.Name, &ad.Email, &ad.CreatedAt)
		return ad, err
	}
	return nil, model.ErrInvalidRole
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
