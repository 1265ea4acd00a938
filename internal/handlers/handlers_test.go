package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/barbapp/booking-api/internal/config"
	dbpkg "github.com/barbapp/booking-api/internal/db"
	"github.com/barbapp/booking-api/internal/routes"
)

// newTestServer wires the full router against a per-test in-memory sqlite
// database, so every test exercises the real HTTP surface end to end.
func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := gorm.Open(
		sqlite.Open("file:"+name+"?mode=memory&cache=shared"),
		&gorm.Config{
			TranslateError: true,
			Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		},
	)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := dbpkg.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	// one connection keeps the in-memory database alive and serializes the
	// async audit writer with the request path
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
	}

	cfg := &config.Config{
		Env:        "test",
		JWTSecret:  "test-secret",
		BcryptCost: bcrypt.MinCost,
	}

	r := gin.New()
	routes.RegisterRoutes(r, db, cfg)
	return r, db
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// ids come back through JSON as float64
func idPath(prefix string, id float64) string {
	return fmt.Sprintf("%s/%d", prefix, int(id))
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

func payloadOf(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	body := decodeBody(t, w)
	if body["success"] != true {
		t.Fatalf("expected success envelope, got %q", w.Body.String())
	}
	payload, ok := body["payload"].(map[string]any)
	if !ok {
		t.Fatalf("expected object payload, got %q", w.Body.String())
	}
	return payload
}

func payloadListOf(t *testing.T, w *httptest.ResponseRecorder) []any {
	t.Helper()

	body := decodeBody(t, w)
	if body["success"] != true {
		t.Fatalf("expected success envelope, got %q", w.Body.String())
	}
	payload, ok := body["payload"].([]any)
	if !ok {
		t.Fatalf("expected list payload, got %q", w.Body.String())
	}
	return payload
}
