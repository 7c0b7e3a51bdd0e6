package main

import (
	"log"
	"os"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"github.com/matyldajandova/handyhands-calculator/collections"
	"github.com/matyldajandova/handyhands-calculator/forms"
	"github.com/matyldajandova/handyhands-calculator/handlers"
)

func main() {
	app := pocketbase.New()

	// Build the form registry once, with the startup date injected so the
	// inflation adjustment is explicit instead of baked into import order.
	registry := forms.NewRegistry(forms.CurrentPrices(time.Now()))

	// Create the order_state collection on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// Serve static files from ./static
		se.Router.GET("/static/{path...}", apis.Static(os.DirFS("./static"), false))

		// Apply client id middleware globally
		se.Router.BindFunc(handlers.ClientIDMiddleware())

		// ── Form catalog ─────────────────────────────────────────
		se.Router.GET("/api/forms", handlers.HandleFormList(registry))
		se.Router.GET("/api/forms/{service}", handlers.HandleFormConfig(registry))

		// ── Pricing ──────────────────────────────────────────────
		se.Router.POST("/api/forms/{service}/calculate", handlers.HandleCalculate(registry))

		// ── Hash state ───────────────────────────────────────────
		se.Router.GET("/api/hash", handlers.HandleHashDecode(registry))

		// ── Poptávka ─────────────────────────────────────────────
		se.Router.POST("/api/poptavka", handlers.HandlePoptavkaSubmit(app))

		// ── Offer downloads ──────────────────────────────────────
		se.Router.GET("/api/offer/pdf", handlers.HandleOfferPDF(registry))
		se.Router.GET("/api/offer/xlsx", handlers.HandleOfferExcel(registry))

		// ── Per-client remembered state ──────────────────────────
		se.Router.GET("/api/order-state", handlers.HandleOrderStateGet(app))
		se.Router.PUT("/api/order-state", handlers.HandleOrderStateUpdate(app))

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
