package forms

// Service type identifiers. These are stable: they appear in encoded hash
// tokens, so renaming one would orphan every link customers have saved.
const (
	ServiceHomeCleaning        = "home-cleaning"
	ServiceOfficeCleaning      = "office-cleaning"
	ServiceResidentialBuilding = "residential-building"
	ServiceOneTimeCleaning     = "one-time-cleaning"
	ServiceHandymanServices    = "handyman-services"
)

// Registry holds the immutable form configs for every service type, built
// once from a price table at startup.
type Registry struct {
	configs map[string]*FormConfig
	order   []string
}

// NewRegistry builds all service configs from the given price table.
func NewRegistry(prices PriceTable) *Registry {
	configs := []*FormConfig{
		homeCleaningConfig(prices),
		officeCleaningConfig(prices),
		residentialBuildingConfig(prices),
		oneTimeCleaningConfig(prices),
		handymanServicesConfig(prices),
	}

	r := &Registry{configs: make(map[string]*FormConfig, len(configs))}
	for _, c := range configs {
		r.configs[c.ID] = c
		r.order = append(r.order, c.ID)
	}
	return r
}

// Get returns the config for a service type, or nil when unknown.
func (r *Registry) Get(serviceType string) *FormConfig {
	return r.configs[serviceType]
}

// ServiceTypes returns service type ids in definition order.
func (r *Registry) ServiceTypes() []string {
	return append([]string(nil), r.order...)
}
