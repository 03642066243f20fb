//go:build pact
// +build pact

package pacttest

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

const (
	ProviderName = "nursery-haven-api"
	ConsumerName = "nursery-storefront"

	StateCatalogBaseline      = "catalog baseline"
	StateProductExists        = "product plant-101 exists"
	StateProductMissing       = "no product with id plant-404"
	StateConsultationBaseline = "consultations baseline"
)

const (
	ExistingProductID = "plant-101"
	MissingProductID  = "plant-404"
)

const (
	exampleProductName  = "Monstera Deliciosa"
	exampleProductImage = "https://example.pact/plants/monstera.png"
)

// PactDir returns the workspace-level directory for generated pact files.
func PactDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "pacts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact dir: %v", err)
	}
	return dir
}

// PactFile returns the canonical pact file path for the storefront consumer.
func PactFile(t testing.TB) string {
	t.Helper()
	return filepath.Join(PactDir(t), ConsumerName+"-"+ProviderName+".json")
}

// LogDir returns the log output directory for pact-go.
func LogDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "bin", "pact-logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact log dir: %v", err)
	}
	return dir
}

// ExampleProductPayload provides stable test data for catalog interactions.
func ExampleProductPayload() map[string]any {
	return map[string]any{
		"id":       ExistingProductID,
		"name":     exampleProductName,
		"price":    499.0,
		"category": "indoor",
		"image":    exampleProductImage,
		"stock":    10,
		"status":   "active",
	}
}

// ExampleConsultationPayload provides stable test data for the public
// consultation form.
func ExampleConsultationPayload() map[string]any {
	return map[string]any{
		"name":    "Asha Pact",
		"email":   "asha.pact@example.com",
		"message": "My monstera leaves are turning yellow.",
	}
}

// projectRoot walks up from this file to the workspace root.
func projectRoot(t testing.TB) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine caller for pact paths")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(file), "..", ".."))
}
