package entities

// DefaultProviderLocation is used when the catalog record has no city.
const DefaultProviderLocation = "KSA"

// ProviderRecord is a construction provider as supplied by the catalog.
//
// Photos, Logo, URL, Website and Phone are opaque to the matching engine.
type ProviderRecord struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Location      string   `json:"location"`
	Rating        float64  `json:"rating"`
	Reviews       int      `json:"reviews"`
	BaseCost      float64  `json:"baseCost"`
	CostPerSqm    float64  `json:"costPerSqm"`
	TimelineSpeed float64  `json:"timelineSpeed"`
	Tech          []string `json:"tech"`
	PastProjects  int      `json:"pastProjects"`

	Photos  []string `json:"photos"`
	Logo    string   `json:"logo,omitempty"`
	URL     string   `json:"url,omitempty"`
	Website string   `json:"website,omitempty"`
	Phone   string   `json:"phone,omitempty"`
}

// Normalize fills the optional fields the engine relies on so that ranking
// stays total over whatever the catalog supplies.
//   - nil tech/photos become empty slices
//   - an empty location becomes DefaultProviderLocation
//   - a non-positive timelineSpeed becomes the 1.0 baseline
func (p ProviderRecord) Normalize() ProviderRecord {
	if p.Tech == nil {
		p.Tech = []string{}
	}
	if p.Photos == nil {
		p.Photos = []string{}
	}
	if p.Location == "" {
		p.Location = DefaultProviderLocation
	}
	if p.TimelineSpeed <= 0 {
		p.TimelineSpeed = 1
	}
	return p
}

// HasTech reports whether the provider lists tag. Matching is exact.
func (p ProviderRecord) HasTech(tag string) bool {
	for _, t := range p.Tech {
		if t == tag {
			return true
		}
	}
	return false
}
