package directory

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// MemoryStore is the in-memory Store implementation, seeded either from a
// YAML file or from the built-in demo directory.
type MemoryStore struct {
	customers  []Customer
	byCustomer map[string][]Equipment
}

var _ Store = (*MemoryStore)(nil)

// seedFile mirrors the layout of the directory YAML file.
type seedFile struct {
	Customers []CustomerWithEquipment `yaml:"customers"`
}

// NewMemoryStore builds a store from pre-assembled records.
func NewMemoryStore(records []CustomerWithEquipment) *MemoryStore {
	s := &MemoryStore{byCustomer: make(map[string][]Equipment)}
	for _, rec := range records {
		s.customers = append(s.customers, rec.Customer)
		s.byCustomer[rec.Customer.ID] = rec.Equipment
	}
	return s
}

// LoadFile reads a directory seed file and builds a MemoryStore from it.
func LoadFile(path string) (*MemoryStore, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory seed %s: %w", path, err)
	}
	var file seedFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse directory seed %s: %w", path, err)
	}
	if len(file.Customers) == 0 {
		return nil, fmt.Errorf("directory seed %s contains no customers", path)
	}
	return NewMemoryStore(file.Customers), nil
}

// CustomerByDocument finds a customer by identity document number.
func (s *MemoryStore) CustomerByDocument(_ context.Context, document string) (*Customer, error) {
	for i := range s.customers {
		if s.customers[i].Document == document {
			c := s.customers[i]
			return &c, nil
		}
	}
	return nil, nil
}

// CustomerByAccount finds a customer by account number.
func (s *MemoryStore) CustomerByAccount(_ context.Context, account string) (*Customer, error) {
	for i := range s.customers {
		if s.customers[i].AccountNumber == account {
			c := s.customers[i]
			return &c, nil
		}
	}
	return nil, nil
}

// EquipmentByCustomer lists the devices on a customer's account. An unknown
// customer id yields an empty slice, not an error.
func (s *MemoryStore) EquipmentByCustomer(_ context.Context, customerID string) ([]Equipment, error) {
	return s.byCustomer[customerID], nil
}
