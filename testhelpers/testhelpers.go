// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"testing"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"github.com/matyldajandova/handyhands-calculator/collections"
	"github.com/matyldajandova/handyhands-calculator/forms"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// TestRegistry builds a form registry with the price-table date pinned to
// the base year, so coefficients and totals in tests are not affected by
// when the suite runs.
func TestRegistry(t *testing.T) *forms.Registry {
	t.Helper()

	pinned := time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC)
	return forms.NewRegistry(forms.CurrentPrices(pinned))
}

// CreateTestOrderState creates an order_state record for a client id.
func CreateTestOrderState(t *testing.T, app *pocketbase.PocketBase, clientID string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("order_state")
	if err != nil {
		t.Fatalf("failed to find order_state collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("client_id", clientID)
	record.Set("first_name", "Matylda")
	record.Set("last_name", "Janková")
	record.Set("email", "matylda@example.com")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test order state: %v", err)
	}

	return record
}
