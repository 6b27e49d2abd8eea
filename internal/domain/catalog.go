package domain

// Service represents a studio service. Price is in whole currency units
type Service struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Price       int    `json:"price" yaml:"price"`
	Duration    int    `json:"duration" yaml:"duration"` // minutes, rounded up to whole slots
	Category    string `json:"category" yaml:"category"`
	Description string `json:"description,omitempty" yaml:"description"`
	Image       string `json:"image,omitempty" yaml:"image"`
}

// Master represents a specialist performing services
type Master struct {
	ID             string   `json:"id" yaml:"id"`
	Name           string   `json:"name" yaml:"name"`
	Photo          string   `json:"photo,omitempty" yaml:"photo"`
	Specialization []string `json:"specialization" yaml:"specialization"`
	Rating         float64  `json:"rating" yaml:"rating"`
	Reviews        int      `json:"reviews" yaml:"reviews"`
	Experience     string   `json:"experience,omitempty" yaml:"experience"`
	Description    string   `json:"description,omitempty" yaml:"description"`
}

// HasSpecialization returns true if the master works in the category
func (m *Master) HasSpecialization(category string) bool {
	for _, c := range m.Specialization {
		if c == category {
			return true
		}
	}
	return false
}

// CanPerform returns true if the master is eligible for the service
func (m *Master) CanPerform(s *Service) bool {
	return s != nil && m.HasSpecialization(s.Category)
}

// Clone returns a deep copy of the master
func (m *Master) Clone() *Master {
	if m == nil {
		return nil
	}
	c := *m
	c.Specialization = append([]string(nil), m.Specialization...)
	return &c
}

// Category groups services in the storefront
type Category struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	Icon string `json:"icon" yaml:"icon"`
}

// Studio describes the storefront itself
type Studio struct {
	Name         string `json:"name" yaml:"name"`
	Logo         string `json:"logo" yaml:"logo"`
	Currency     string `json:"currency" yaml:"currency"`
	CurrencyCode string `json:"currencyCode" yaml:"currencyCode"`
	Phone        string `json:"phone" yaml:"phone"`
	Address      string `json:"address" yaml:"address"`
}
