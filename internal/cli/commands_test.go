package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"testing"

	"github.com/sweet-shop/backend/internal/models"
	"github.com/sweet-shop/backend/internal/repository"
)

// capture stdout during cobra execution
func captureOutput(f func() error) (string, error) {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	err := f()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	return buf.String(), err
}

// reset cobra + global state between tests
func resetCLI() {
	rootCmd.SetArgs(nil)
	sweetStore = nil
	sweets = nil
}

func run(args ...string) (string, error) {
	return captureOutput(func() error {
		rootCmd.SetArgs(args)
		return rootCmd.Execute()
	})
}

func TestAddGetListUpdateDelete(t *testing.T) {
	defer resetCLI()
	sweetStore = repository.NewMemoryRepository()

	// ADD
	out, err := run(
		"add",
		"--name", "Test Fudge",
		"--category", "Chocolate",
		"--price", "5.5",
		"--quantity", "2",
	)
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	var created models.Sweet
	if err := json.Unmarshal([]byte(out), &created); err != nil {
		t.Fatalf("invalid add output: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected a generated id")
	}

	// GET
	out, err = run("get", created.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}

	// LIST
	out, err = run("list")
	if err != nil || out == "" {
		t.Fatalf("list failed")
	}

	// UPDATE
	out, err = run("update", created.ID, "--price", "7.75")
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	var updated models.Sweet
	_ = json.Unmarshal([]byte(out), &updated)
	if updated.Price != 7.75 {
		t.Fatalf("price not updated")
	}

	// DELETE
	_, err = run("delete", "--force", created.ID)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if _, err := sweetStore.GetByID(context.Background(), created.ID); err == nil {
		t.Fatalf("expected sweet to be deleted")
	}
}

func TestPurchaseAndRestock(t *testing.T) {
	defer resetCLI()
	sweetStore = repository.NewMemoryRepository()

	out, err := run(
		"add",
		"--name", "Gummy Bears",
		"--category", "Candy",
		"--price", "3.99",
		"--quantity", "10",
	)
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	var created models.Sweet
	if err := json.Unmarshal([]byte(out), &created); err != nil {
		t.Fatalf("invalid add output: %v", err)
	}

	out, err = run("purchase", created.ID, "--quantity", "4")
	if err != nil {
		t.Fatalf("purchase failed: %v", err)
	}
	var result models.PurchaseResult
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("invalid purchase output: %v", err)
	}
	if result.RemainingStock != 6 {
		t.Fatalf("expected remaining stock 6, got %d", result.RemainingStock)
	}

	if _, err = run("purchase", created.ID, "--quantity", "100"); err == nil {
		t.Fatal("over-limit purchase should fail")
	}

	out, err = run("restock", created.ID, "--quantity", "14")
	if err != nil {
		t.Fatalf("restock failed: %v", err)
	}
	var restock models.RestockResult
	if err := json.Unmarshal([]byte(out), &restock); err != nil {
		t.Fatalf("invalid restock output: %v", err)
	}
	if restock.TotalStock != 20 {
		t.Fatalf("expected total stock 20, got %d", restock.TotalStock)
	}
}

func TestSeedAndSearch(t *testing.T) {
	defer resetCLI()
	sweetStore = repository.NewMemoryRepository()

	if _, err := run("seed"); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	out, err := run("search", "--category", "candy", "--in-stock", "true")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}

	var results []models.Sweet
	if err := json.Unmarshal([]byte(out), &results); err != nil {
		t.Fatalf("invalid search output: %v", err)
	}
	if len(results) != 1 || results[0].Name != "Gummy Bears" {
		t.Fatalf("expected only in-stock candy Gummy Bears, got %+v", results)
	}
}
