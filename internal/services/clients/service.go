package clients

import (
	"strings"

	"invoicing-backend/internal/models"
)

// Store is the slice of the client repository the registry needs.
type Store interface {
	Create(client *models.Client) error
	GetByID(id string) (*models.Client, error)
	List() []models.Client
	Update(id string, fields map[string]interface{}) error
	Delete(id string) error
}

// updatableFields are the caller-owned client columns. Anything else in an
// update payload, createdAt included, is discarded.
var updatableFields = []string{"name", "email", "phone", "address", "company"}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// CreateClient persists a new client. Contact fields the caller left out stay
// empty strings, the documented defaults.
func (s *Service) CreateClient(client models.Client) (*models.Client, error) {
	if err := s.store.Create(&client); err != nil {
		return nil, err
	}
	return &client, nil
}

func (s *Service) GetClient(id string) (*models.Client, error) {
	return s.store.GetByID(id)
}

func (s *Service) ListClients() []models.Client {
	return s.store.List()
}

// Search matches the query case-insensitively against name or email over the
// full client list. The empty query deliberately short-circuits to an empty
// result set rather than returning everything.
func (s *Service) Search(query string) []models.Client {
	if query == "" {
		return []models.Client{}
	}
	q := strings.ToLower(query)
	matched := []models.Client{}
	for _, c := range s.store.List() {
		if strings.Contains(strings.ToLower(c.Name), q) ||
			strings.Contains(strings.ToLower(c.Email), q) {
			matched = append(matched, c)
		}
	}
	return matched
}

// UpdateClient applies the caller's partial payload, keeping only the known
// contact fields.
func (s *Service) UpdateClient(id string, payload map[string]interface{}) error {
	fields := map[string]interface{}{}
	for _, key := range updatableFields {
		if v, ok := payload[key]; ok {
			fields[key] = v
		}
	}
	return s.store.Update(id, fields)
}

func (s *Service) DeleteClient(id string) error {
	return s.store.Delete(id)
}
