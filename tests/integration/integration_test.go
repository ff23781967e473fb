//go:build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/oolio/order-intake/internal/domain/order"
	"github.com/oolio/order-intake/internal/handler"
	"github.com/oolio/order-intake/internal/storage/postgres"
)

var (
	pool       *pgxpool.Pool
	server     *httptest.Server
	httpClient *http.Client
)

// Response types mirror the wire contract rather than importing handler
// internals, so the assertions stay black-box.

type orderResponse struct {
	OrderID     string  `json:"orderId"`
	TotalAmount float64 `json:"totalAmount"`
	ItemsCount  int     `json:"itemsCount"`
	ProcessedAt string  `json:"processedAt"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func TestMain(m *testing.M) {
	os.Exit(testMain(m))
}

func testMain(m *testing.M) int {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pg, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("orders_db"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		tcpostgres.BasicWaitStrategies(),
	)
	if err != nil {
		log.Fatalf("start postgres container: %v", err)
	}
	defer func() {
		if err := pg.Terminate(context.Background()); err != nil {
			log.Printf("terminate postgres container: %v", err)
		}
	}()

	connStr, err := pg.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		log.Fatalf("connection string: %v", err)
	}

	pool, err = postgres.NewPool(ctx, connStr)
	if err != nil {
		log.Fatalf("create pool: %v", err)
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	repo := postgres.NewOrderRepository(pool, 5*time.Second)
	svc := order.NewService(repo)
	mux := http.NewServeMux()
	handler.NewHandler(svc).Register(mux)

	server = httptest.NewServer(mux)
	defer server.Close()
	httpClient = &http.Client{Timeout: 10 * time.Second}

	return m.Run()
}

func postOrder(t *testing.T, body string) *http.Response {
	t.Helper()
	resp, err := httpClient.Post(server.URL+"/api/orders", "application/json", bytes.NewReader([]byte(body)))
	if err != nil {
		t.Fatalf("post order: %v", err)
	}
	return resp
}

func doGet(t *testing.T, path string) *http.Response {
	t.Helper()
	resp, err := httpClient.Get(server.URL + path)
	if err != nil {
		t.Fatalf("get %s: %v", path, err)
	}
	return resp
}

func decodeJSON[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		t.Fatalf("decode body %q: %v", data, err)
	}
	return v
}
