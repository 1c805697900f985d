package playerxml

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/beevik/etree"

	"github.com/mcoot/gameutils/internal/model"
)

// LoadResult is the outcome of a best-effort bulk load.
// When the document could not be read or parsed, Players is empty and
// Diagnostic says why.
type LoadResult struct {
	// Source names what was loaded (a file path or document name)
	Source string
	// Diagnostic is the structural failure that emptied the result, if any
	Diagnostic error

	players []model.Player
}

// Players returns the loaded players in document order
func (r *LoadResult) Players() []model.Player {
	out := make([]model.Player, len(r.players))
	copy(out, r.players)
	return out
}

// OK reports whether the document was read and parsed
func (r *LoadResult) OK() bool {
	return r.Diagnostic == nil
}

// Strict returns the players, or the diagnostic for callers that do not want
// a failed load to look like an empty one
func (r *LoadResult) Strict() ([]model.Player, error) {
	if r.Diagnostic != nil {
		return nil, r.Diagnostic
	}
	return r.Players(), nil
}

// ParsePlayersFile loads every PLAYER element under the root of the file at path.
//
// Unreadable files and malformed documents are logged and reported through
// LoadResult.Diagnostic with an empty player list; the returned error is nil.
// Errors from individual elements (malformed or duplicate ids) are returned;
// players created before the failing element stay in the registry.
func (c *Codec) ParsePlayersFile(path string) (*LoadResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return c.failed(path, fmt.Errorf("%w: %w", model.ErrFileAccess, err)), nil
	}
	return c.parse(path, data)
}

// ParsePlayers is ParsePlayersFile for an in-memory document
func (c *Codec) ParsePlayers(source string, data []byte) (*LoadResult, error) {
	return c.parse(source, data)
}

func (c *Codec) parse(source string, data []byte) (*LoadResult, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return c.failed(source, fmt.Errorf("%w: %w", model.ErrMalformedXML, err)), nil
	}
	root := doc.Root()
	if root == nil {
		return c.failed(source, model.ErrNoRootElement), nil
	}

	elements := playerElements(root)
	players := make([]model.Player, 0, len(elements))
	for _, el := range elements {
		player, err := c.ParsePlayer(el)
		if err != nil {
			return nil, fmt.Errorf("parse player %d of %s: %w", len(players)+1, source, err)
		}
		players = append(players, player)
	}

	c.logger.Debug("players loaded",
		slog.String("source", source),
		slog.Int("count", len(players)),
	)
	return &LoadResult{Source: source, players: players}, nil
}

func (c *Codec) failed(source string, diagnostic error) *LoadResult {
	c.logger.Error("failed to load players",
		slog.String("source", source),
		slog.String("error", diagnostic.Error()),
	)
	return &LoadResult{Source: source, Diagnostic: diagnostic}
}

// EncodeDocument renders players as a document with one PLAYER element per
// player under a rootTag element
func (c *Codec) EncodeDocument(rootTag string, players []model.Player) ([]byte, error) {
	if rootTag == "" {
		rootTag = DefaultRootTag
	}
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement(rootTag)
	for _, p := range players {
		c.WritePlayer(root, p)
	}
	doc.Indent(2)
	return doc.WriteToBytes()
}

// WritePlayersFile writes players to path as an XML document
func (c *Codec) WritePlayersFile(path, rootTag string, players []model.Player) error {
	data, err := c.EncodeDocument(rootTag, players)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	c.logger.Debug("players written",
		slog.String("path", path),
		slog.Int("count", len(players)),
	)
	return nil
}
