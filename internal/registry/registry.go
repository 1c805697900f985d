package registry

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/mcoot/gameutils/internal/model"
)

// firstAutoID is where automatic id allocation starts
const firstAutoID = 1

// cursorStride is how far the auto-id cursor jumps over occupied ids after an
// allocation. Allocation itself still searches linearly, so gaps are only skipped
// by the cursor, never lost.
const cursorStride = 7

// Registry owns player identity: it allocates ids, enforces their uniqueness
// and keeps every created player for its own lifetime.
//
// A Registry is not safe for concurrent use.
type Registry struct {
	players map[int]model.Player
	nextID  int
	logger  *slog.Logger
}

// New creates an empty registry
func New(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &Registry{
		players: make(map[int]model.Player),
		nextID:  firstAutoID,
		logger:  logger,
	}
}

// CreatePlayer creates a player under the next free automatic id.
// Any text is accepted; use IsValidAttributes beforehand if validation matters.
func (r *Registry) CreatePlayer(firstName, lastName, nickName string) model.Player {
	for r.exists(r.nextID) {
		r.nextID++
	}

	player := model.Player{
		ID:        r.nextID,
		FirstName: firstName,
		LastName:  lastName,
		NickName:  nickName,
	}
	r.players[player.ID] = player
	r.advanceCursor()

	r.logger.Debug("player created",
		slog.Int("player_id", player.ID),
		slog.Bool("auto", true),
	)
	return player
}

// CreatePlayerWithID creates a player under an explicit id.
// It fails with model.ErrDuplicateID if the id is taken; the auto-id cursor is
// neither consulted nor moved.
func (r *Registry) CreatePlayerWithID(id int, firstName, lastName, nickName string) (model.Player, error) {
	if id < 0 {
		return model.Player{}, fmt.Errorf("%w: %d", model.ErrInvalidID, id)
	}
	if r.exists(id) {
		return model.Player{}, fmt.Errorf("%w: %d", model.ErrDuplicateID, id)
	}

	player := model.Player{
		ID:        id,
		FirstName: firstName,
		LastName:  lastName,
		NickName:  nickName,
	}
	r.players[id] = player

	r.logger.Debug("player created",
		slog.Int("player_id", player.ID),
		slog.Bool("auto", false),
	)
	return player, nil
}

// GetPlayer returns the player stored under id, if any
func (r *Registry) GetPlayer(id int) (model.Player, bool) {
	player, ok := r.players[id]
	return player, ok
}

// ListPlayers returns a snapshot of every player. Order is unspecified.
func (r *Registry) ListPlayers() []model.Player {
	players := make([]model.Player, 0, len(r.players))
	for _, p := range r.players {
		players = append(players, p)
	}
	return players
}

// SortedPlayers returns a snapshot of every player ordered by id
func (r *Registry) SortedPlayers() []model.Player {
	players := r.ListPlayers()
	sort.Slice(players, func(i, j int) bool {
		return players[i].ID < players[j].ID
	})
	return players
}

// Len returns the number of players in the registry
func (r *Registry) Len() int {
	return len(r.players)
}

// IsValidAttributes reports whether the attributes are suitable for a new player.
// See the package-level IsValidAttributes.
func (r *Registry) IsValidAttributes(firstName, lastName, nickName *string) bool {
	return IsValidAttributes(firstName, lastName, nickName)
}

// IsValidAttributes reports whether all three names are present and non-blank.
// It is advisory only: creation never calls it.
func IsValidAttributes(firstName, lastName, nickName *string) bool {
	if firstName == nil || lastName == nil || nickName == nil {
		return false
	}
	return !isBlank(*firstName) && !isBlank(*lastName) && !isBlank(*nickName)
}

func (r *Registry) exists(id int) bool {
	_, ok := r.players[id]
	return ok
}

// advanceCursor moves past the id just allocated, striding over occupied ids
func (r *Registry) advanceCursor() {
	r.nextID++
	for r.exists(r.nextID) {
		r.nextID += cursorStride
	}
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
