package roster

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mcoot/gameutils/internal/model"
	"github.com/mcoot/gameutils/internal/playerxml"
	"github.com/mcoot/gameutils/internal/storage"
)

// Service moves rosters between player XML documents (on disk or in storage)
// and the codec's registry
type Service struct {
	storage storage.Storage
	codec   *playerxml.Codec
	logger  *slog.Logger
}

// New creates a new roster Service
func New(storage storage.Storage, codec *playerxml.Codec, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		codec:   codec,
		logger:  logger,
	}
}

// ImportFile bulk-loads a players file into the registry
func (s *Service) ImportFile(path string) (*playerxml.LoadResult, error) {
	return s.codec.ParsePlayersFile(path)
}

// Import loads the stored roster document called name into the registry.
// A missing document gives an empty result with a diagnostic, like an
// unreadable file does.
func (s *Service) Import(ctx context.Context, name string) (*playerxml.LoadResult, error) {
	data, err := s.storage.GetDocument(ctx, name)
	if errors.Is(err, model.ErrDocumentNotFound) {
		s.logger.Warn("roster not found", slog.String("roster", name))
		return &playerxml.LoadResult{Source: name, Diagnostic: fmt.Errorf("%w: %s", err, name)}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get roster %s: %w", name, err)
	}
	return s.codec.ParsePlayers(name, data)
}

// Export saves every registry player, ordered by id, as the roster called name
func (s *Service) Export(ctx context.Context, name, rootTag string) error {
	players := s.codec.Registry().SortedPlayers()
	data, err := s.codec.EncodeDocument(rootTag, players)
	if err != nil {
		return fmt.Errorf("encode roster %s: %w", name, err)
	}
	if err := s.storage.SaveDocument(ctx, name, data); err != nil {
		return fmt.Errorf("save roster %s: %w", name, err)
	}

	s.logger.Info("roster exported",
		slog.String("roster", name),
		slog.Int("players", len(players)),
	)
	return nil
}

// ExportFile writes every registry player, ordered by id, to path
func (s *Service) ExportFile(path, rootTag string) error {
	return s.codec.WritePlayersFile(path, rootTag, s.codec.Registry().SortedPlayers())
}

// List returns the names of stored rosters
func (s *Service) List(ctx context.Context) ([]string, error) {
	return s.storage.ListDocuments(ctx)
}
