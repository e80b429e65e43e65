package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/tanishkajain081/dabite-restaurant/internal/config"
	"github.com/tanishkajain081/dabite-restaurant/internal/database"
	"github.com/tanishkajain081/dabite-restaurant/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
}

// SetupTestDB starts a PostgreSQL container, opens a pool through
// database.NewPool and applies the portal schema.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	host, err := postgresContainer.Host(ctx)
	if err != nil {
		t.Fatalf("failed to get container host: %v", err)
	}
	port, err := postgresContainer.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("failed to get container port: %v", err)
	}

	dbConfig := config.DatabaseConfig{
		Host:            host,
		Port:            port.Int(),
		User:            "testuser",
		Password:        "testpass",
		Database:        "testdb",
		SSLMode:         "disable",
		MaxConnections:  10,
		MinConnections:  2,
		MaxConnLifetime: 300,
	}

	pool, err := database.NewPool(ctx, dbConfig, zerolog.Nop())
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	if err := repository.Migrate(ctx, pool); err != nil {
		t.Fatalf("failed to apply schema: %v", err)
	}

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
	}
}

// CleanupDB empties every portal table and resets identity sequences.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	query := "TRUNCATE TABLE " + strings.Join(repository.Tables, ", ") + " RESTART IDENTITY CASCADE"
	if _, err := pool.Exec(context.Background(), query); err != nil {
		t.Fatalf("failed to cleanup database: %v", err)
	}
}

// CountRows returns the number of rows in table.
func CountRows(t *testing.T, pool *pgxpool.Pool, table string) int {
	t.Helper()

	var n int
	if err := pool.QueryRow(context.Background(), "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
		t.Fatalf("failed to count %s: %v", table, err)
	}
	return n
}

type fakeAccount struct {
	ID        string
	Email     string
	Password  string
	Confirmed bool
}

// FakeProvider is an in-process stand-in for the hosted GoTrue auth API.
// Accounts start unconfirmed; Confirm simulates the verification email.
type FakeProvider struct {
	Server *httptest.Server

	mu       sync.Mutex
	accounts map[string]*fakeAccount // by email
	tokens   map[string]string       // access token -> email
}

// NewFakeProvider starts a fake auth provider for the duration of the test.
func NewFakeProvider(t *testing.T) *FakeProvider {
	t.Helper()

	p := &FakeProvider{
		accounts: make(map[string]*fakeAccount),
		tokens:   make(map[string]string),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/v1/signup", p.signup)
	mux.HandleFunc("POST /auth/v1/token", p.token)
	mux.HandleFunc("GET /auth/v1/user", p.user)

	p.Server = httptest.NewServer(mux)
	t.Cleanup(p.Server.Close)

	return p
}

// Confirm marks the account as verified.
func (p *FakeProvider) Confirm(email string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if acc, ok := p.accounts[email]; ok {
		acc.Confirmed = true
	}
}

func (p *FakeProvider) signup(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeFakeJSON(w, http.StatusBadRequest, map[string]string{"msg": "Invalid body"})
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if _, exists := p.accounts[body.Email]; exists {
		writeFakeJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
			"code": 422, "error_code": "user_already_exists", "msg": "User already registered",
		})
		return
	}
	if len(body.Password) < 6 {
		writeFakeJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
			"code": 422, "error_code": "weak_password", "msg": "Password should be at least 6 characters.",
		})
		return
	}

	acc := &fakeAccount{ID: uuid.NewString(), Email: body.Email, Password: body.Password}
	p.accounts[body.Email] = acc

	writeFakeJSON(w, http.StatusOK, map[string]interface{}{
		"id": acc.ID, "email": acc.Email, "role": "authenticated",
	})
}

func (p *FakeProvider) token(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	_ = json.NewDecoder(r.Body).Decode(&body)

	p.mu.Lock()
	defer p.mu.Unlock()

	acc, ok := p.accounts[body.Email]
	if !ok || acc.Password != body.Password {
		writeFakeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "invalid_grant", "error_description": "Invalid login credentials",
		})
		return
	}
	if !acc.Confirmed {
		writeFakeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"code": 400, "error_code": "email_not_confirmed", "msg": "Email not confirmed",
		})
		return
	}

	access := "provider-" + uuid.NewString()
	p.tokens[access] = acc.Email

	writeFakeJSON(w, http.StatusOK, map[string]interface{}{
		"access_token":  access,
		"token_type":    "bearer",
		"expires_in":    3600,
		"refresh_token": "refresh-" + acc.ID,
		"user": map[string]interface{}{
			"id":                 acc.ID,
			"email":              acc.Email,
			"email_confirmed_at": time.Now().UTC().Format(time.RFC3339),
		},
	})
}

func (p *FakeProvider) user(w http.ResponseWriter, r *http.Request) {
	access := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")

	p.mu.Lock()
	defer p.mu.Unlock()

	email, ok := p.tokens[access]
	if !ok {
		writeFakeJSON(w, http.StatusUnauthorized, map[string]interface{}{
			"code": 401, "error_code": "bad_jwt", "msg": "invalid JWT: unable to parse or verify signature",
		})
		return
	}

	acc := p.accounts[email]
	writeFakeJSON(w, http.StatusOK, map[string]interface{}{"id": acc.ID, "email": acc.Email})
}

func writeFakeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
