package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Setup programmatically creates/ensures the order_state collection exists.
// It is the only server-side store: quotes themselves live in URL hash
// tokens, order_state just remembers customer identity and transient
// poptávka data per client.
func Setup(app *pocketbase.PocketBase) {
	ensureCollection(app, "order_state", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "client_id", Required: true})
		c.Fields.Add(&core.TextField{Name: "first_name", Required: false})
		c.Fields.Add(&core.TextField{Name: "last_name", Required: false})
		c.Fields.Add(&core.EmailField{Name: "email", Required: false})
		c.Fields.Add(&core.TextField{Name: "phone", Required: false})
		c.Fields.Add(&core.TextField{Name: "address", Required: false})
		c.Fields.Add(&core.TextField{Name: "company_name", Required: false})
		c.Fields.Add(&core.TextField{Name: "company_id", Required: false})
		c.Fields.Add(&core.TextField{Name: "notes", Required: false})
		c.Fields.Add(&core.TextField{Name: "service_start_date", Required: false})
		c.Fields.Add(&core.TextField{Name: "last_order_id", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
		c.AddIndex("idx_order_state_client", true, "client_id", "")
	})
}

// ensureCollection checks if a collection already exists by name. If it does,
// the existing collection is returned. Otherwise a new base collection is
// created, the addFields callback is invoked to populate its fields, and the
// collection is saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		log.Printf("Collection %q already exists, skipping creation.\n", name)
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Fatalf("Failed to create collection %q: %v", name, err)
	}

	fmt.Printf("Created collection %q (id=%s)\n", name, collection.Id)
	return collection
}
