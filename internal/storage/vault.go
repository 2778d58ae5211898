package storage

import (
	"fmt"
	"strings"
)

// LoadVault reads vault resources from disk.
func (s *Storage) LoadVault() (*VaultStore, error) {
	store := VaultStore{Resources: []Resource{}}
	err := s.loadJSONWithRecovery(vaultFile, &store)
	return &store, err
}

// SaveVault writes vault resources to disk.
func (s *Storage) SaveVault(store *VaultStore) error {
	return s.writeJSONAtomic(vaultFile, store)
}

// AddResource appends a resource to the vault. An empty ID gets a
// generated one.
func (s *Storage) AddResource(res Resource) (*Resource, error) {
	res.Title = strings.TrimSpace(res.Title)
	res.URL = strings.TrimSpace(res.URL)

	if res.Title == "" {
		return nil, fmt.Errorf("resource title is required")
	}
	if len(res.Title) > maxTitleLen {
		return nil, fmt.Errorf("resource title too long (max %d)", maxTitleLen)
	}
	if !validResourceType(res.Type) {
		return nil, fmt.Errorf("invalid resource type: %s", res.Type)
	}

	if strings.TrimSpace(res.ID) == "" {
		id, err := newID("r")
		if err != nil {
			return nil, err
		}
		res.ID = id
	}
	if res.CreatedAt.IsZero() {
		res.CreatedAt = s.Now()
	}

	store, err := s.LoadVault()
	if err != nil {
		return nil, err
	}

	store.Resources = append(store.Resources, res)

	if err := s.SaveVault(store); err != nil {
		return nil, err
	}

	return &res, nil
}

// UpdateResource replaces the resource with a matching ID in place.
// Updating a missing resource is a no-op.
func (s *Storage) UpdateResource(res Resource) error {
	if strings.TrimSpace(res.ID) == "" {
		return fmt.Errorf("resource id is required")
	}
	if strings.TrimSpace(res.Title) == "" {
		return fmt.Errorf("resource title is required")
	}

	store, err := s.LoadVault()
	if err != nil {
		return err
	}

	for i := range store.Resources {
		if store.Resources[i].ID == res.ID {
			store.Resources[i] = res
			return s.SaveVault(store)
		}
	}

	return nil
}

// DeleteResource removes a resource. Deleting a missing resource is a no-op.
func (s *Storage) DeleteResource(id string) error {
	store, err := s.LoadVault()
	if err != nil {
		return err
	}

	for i := range store.Resources {
		if store.Resources[i].ID == id {
			store.Resources = append(store.Resources[:i], store.Resources[i+1:]...)
			return s.SaveVault(store)
		}
	}

	return nil
}

func validResourceType(t ResourceType) bool {
	for _, v := range ResourceTypes {
		if t == v {
			return true
		}
	}
	return false
}
