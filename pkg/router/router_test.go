package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/newtonbotics/labstore/pkg/router"
)

func ok(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestNamedRoutesAndGroups(t *testing.T) {
	r := router.New()
	r.Get("/", "home", ok)

	api := r.Group("/api")
	api.Get("/products", "products.list", ok)
	api.Post("/orders", "orders.create", ok)

	path, found := r.Path("orders.create")
	if !found {
		t.Fatal("expected orders.create to be registered")
	}
	if path != "/api/orders" {
		t.Errorf("expected /api/orders, got %s", path)
	}

	routes := r.Routes()
	if len(routes) != 3 {
		t.Fatalf("expected 3 routes, got %d", len(routes))
	}
}

func TestURLSubstitutesParams(t *testing.T) {
	r := router.New()
	r.Get("/products/{slug}", "products.show", ok)

	url, err := r.URL("products.show", map[string]string{"slug": "pdb-12v"})
	if err != nil {
		t.Fatalf("URL failed: %v", err)
	}
	if url != "/products/pdb-12v" {
		t.Errorf("expected /products/pdb-12v, got %s", url)
	}

	if _, err := r.URL("products.show", nil); err == nil {
		t.Error("expected an error for missing params")
	}

	if _, err := r.URL("missing.route", nil); err == nil {
		t.Error("expected an error for unknown route name")
	}
}

func TestNotFoundHandler(t *testing.T) {
	r := router.New()
	r.Get("/", "home", ok)
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	})

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
	if rec.Body.String() != "nope\n" {
		t.Errorf("expected custom not-found body, got %q", rec.Body.String())
	}
}

func TestGroupMiddlewareApplies(t *testing.T) {
	r := router.New()

	header := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set("X-Group", "api")
			next.ServeHTTP(w, req)
		})
	}

	api := r.Group("/api", header)
	api.Get("/products", "products.list", ok)
	r.Get("/", "home", ok)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products", nil))
	if rec.Header().Get("X-Group") != "api" {
		t.Error("expected group middleware to run for group routes")
	}

	rec = httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Header().Get("X-Group") != "" {
		t.Error("group middleware must not leak onto root routes")
	}
}
