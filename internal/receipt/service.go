package receipt

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// IDGenerator generates unique storage keys for receipts
type IDGenerator interface {
	Generate() string
}

// uuidGenerator generates random UUID keys in 8-4-4-4-12 hyphenated hex form
type uuidGenerator struct{}

func (g *uuidGenerator) Generate() string {
	return uuid.NewString()
}

// Service handles receipt operations
type Service struct {
	db          DB
	idGenerator IDGenerator
}

// NewService creates a new Service with the default UUID key generator
func NewService(db DB) *Service {
	return &Service{
		db:          db,
		idGenerator: &uuidGenerator{},
	}
}

// NewServiceWithDeps creates a new Service with a custom key generator for testing
func NewServiceWithDeps(db DB, idGen IDGenerator) *Service {
	return &Service{
		db:          db,
		idGenerator: idGen,
	}
}

// ProcessReceipt runs raw input through the full pipeline: assemble, sanitize,
// score, then store under a freshly generated key. Validation failures from
// assembly propagate unchanged; sanitization and scoring cannot fail.
func (s *Service) ProcessReceipt(raw any) (string, *Receipt, error) {
	receipt, err := AssembleReceipt(raw)
	if err != nil {
		return "", nil, err
	}

	SanitizeReceipt(receipt)

	points := CalculatePoints(receipt)
	receipt.Points = &points

	key := s.idGenerator.Generate()
	if err := s.db.SaveReceipt(key, receipt); err != nil {
		return "", nil, fmt.Errorf("saving receipt: %w", err)
	}

	slog.Info("Processed receipt", "id", key, "points", points)
	return key, receipt, nil
}

// GetReceipt retrieves a receipt by key
func (s *Service) GetReceipt(key string) (*Receipt, error) {
	return s.db.GetReceipt(key)
}

// GetPoints returns the points for a stored receipt, computing and persisting
// the score on first lookup. An already-scored receipt is returned as-is with
// no write.
func (s *Service) GetPoints(key string) (int64, error) {
	receipt, err := s.db.GetReceipt(key)
	if err != nil {
		return 0, err
	}

	if receipt.Scored() {
		return *receipt.Points, nil
	}

	points := CalculatePoints(receipt)
	receipt.Points = &points
	if _, err := s.db.UpdateReceipt(key, receipt); err != nil {
		return 0, fmt.Errorf("persisting points: %w", err)
	}

	slog.Info("Backfilled points", "id", key, "points", points)
	return points, nil
}
