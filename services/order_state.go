package services

import (
	"fmt"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Customer is the stored customer identity.
type Customer struct {
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// PoptavkaState is the transient order-request data remembered between
// visits: address, company identity, free-text notes and the chosen start
// date.
type PoptavkaState struct {
	Address          string `json:"address,omitempty"`
	CompanyName      string `json:"companyName,omitempty"`
	CompanyID        string `json:"companyId,omitempty"`
	Notes            string `json:"notes,omitempty"`
	ServiceStartDate string `json:"serviceStartDate,omitempty"`
}

// OrderState is everything remembered for one client.
type OrderState struct {
	Customer Customer      `json:"customer"`
	Poptavka PoptavkaState `json:"poptavka"`
}

// GetOrderState loads the remembered state for a client id. A client with
// no stored record gets a zero state, not an error.
func GetOrderState(app *pocketbase.PocketBase, clientID string) (*OrderState, error) {
	record, err := findOrderStateRecord(app, clientID)
	if err != nil {
		return &OrderState{}, nil
	}
	return &OrderState{
		Customer: Customer{
			FirstName: record.GetString("first_name"),
			LastName:  record.GetString("last_name"),
			Email:     record.GetString("email"),
			Phone:     record.GetString("phone"),
		},
		Poptavka: PoptavkaState{
			Address:          record.GetString("address"),
			CompanyName:      record.GetString("company_name"),
			CompanyID:        record.GetString("company_id"),
			Notes:            record.GetString("notes"),
			ServiceStartDate: record.GetString("service_start_date"),
		},
	}, nil
}

// UpdateCustomer upserts the customer identity for a client id.
func UpdateCustomer(app *pocketbase.PocketBase, clientID string, customer Customer) error {
	record, err := findOrCreateOrderStateRecord(app, clientID)
	if err != nil {
		return err
	}
	record.Set("first_name", customer.FirstName)
	record.Set("last_name", customer.LastName)
	record.Set("email", customer.Email)
	record.Set("phone", customer.Phone)
	if err := app.Save(record); err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

// UpdatePoptavka upserts the transient poptávka data for a client id.
func UpdatePoptavka(app *pocketbase.PocketBase, clientID string, state PoptavkaState) error {
	record, err := findOrCreateOrderStateRecord(app, clientID)
	if err != nil {
		return err
	}
	record.Set("address", state.Address)
	record.Set("company_name", state.CompanyName)
	record.Set("company_id", state.CompanyID)
	record.Set("notes", state.Notes)
	record.Set("service_start_date", state.ServiceStartDate)
	if err := app.Save(record); err != nil {
		return fmt.Errorf("update poptavka: %w", err)
	}
	return nil
}

// CheckAndClearNotesForNewOrder compares the stored last-seen order id with
// the current one. On mismatch it clears the poptávka notes and start date
// and remembers the new id, so a previous order's free text never silently
// reappears on an unrelated order. This is a targeted invalidation, not a
// cache eviction policy.
func CheckAndClearNotesForNewOrder(app *pocketbase.PocketBase, clientID, orderID string) error {
	if orderID == "" {
		return nil
	}
	record, err := findOrCreateOrderStateRecord(app, clientID)
	if err != nil {
		return err
	}
	if record.GetString("last_order_id") == orderID {
		return nil
	}

	record.Set("notes", "")
	record.Set("service_start_date", "")
	record.Set("last_order_id", orderID)
	if err := app.Save(record); err != nil {
		return fmt.Errorf("clear notes for new order: %w", err)
	}
	return nil
}

func findOrderStateRecord(app *pocketbase.PocketBase, clientID string) (*core.Record, error) {
	return app.FindFirstRecordByData("order_state", "client_id", clientID)
}

func findOrCreateOrderStateRecord(app *pocketbase.PocketBase, clientID string) (*core.Record, error) {
	if record, err := findOrderStateRecord(app, clientID); err == nil {
		return record, nil
	}

	col, err := app.FindCollectionByNameOrId("order_state")
	if err != nil {
		return nil, fmt.Errorf("order_state collection missing: %w", err)
	}
	record := core.NewRecord(col)
	record.Set("client_id", clientID)
	return record, nil
}
