package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"github.com/matyldajandova/handyhands-calculator/forms"
)

// formListItem is the catalog entry for one service type.
type formListItem struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	BasePrice float64 `json:"basePrice"`
	Hourly    bool    `json:"hourly,omitempty"`
}

// HandleFormList returns a handler listing every service type with its
// headline base price.
func HandleFormList(registry *forms.Registry) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var items []formListItem
		for _, serviceType := range registry.ServiceTypes() {
			config := registry.Get(serviceType)
			items = append(items, formListItem{
				ID:        config.ID,
				Title:     config.Title,
				BasePrice: config.BasePrice,
				Hourly:    config.Hourly,
			})
		}
		return e.JSON(http.StatusOK, map[string]any{"forms": items})
	}
}

// HandleFormConfig returns a handler serving the full form config for one
// service type.
func HandleFormConfig(registry *forms.Registry) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		serviceType := e.Request.PathValue("service")
		config := registry.Get(serviceType)
		if config == nil {
			return apiError(e, http.StatusNotFound, "Unknown service type")
		}
		return e.JSON(http.StatusOK, config)
	}
}
