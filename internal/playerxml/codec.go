package playerxml

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/beevik/etree"

	"github.com/mcoot/gameutils/internal/model"
	"github.com/mcoot/gameutils/internal/registry"
)

// XML vocabulary for player records
const (
	PlayerTag     = "PLAYER"
	AttrID        = "id"
	AttrFirstName = "firstName"
	AttrLastName  = "lastName"
	AttrNickName  = "nickName"

	// DefaultRootTag is the root element used when writing whole documents
	DefaultRootTag = "ROOT"
)

// Codec maps players to and from XML elements. Parsed players are created
// in the codec's registry.
type Codec struct {
	registry *registry.Registry
	logger   *slog.Logger
}

// New creates a codec backed by the given registry
func New(reg *registry.Registry, logger *slog.Logger) *Codec {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &Codec{
		registry: reg,
		logger:   logger,
	}
}

// Registry returns the registry players are created in
func (c *Codec) Registry() *registry.Registry {
	return c.registry
}

// ParsePlayer creates a player from a PLAYER element.
// An id attribute selects explicit-id creation; without it an id is allocated.
// Missing name attributes read as empty strings.
func (c *Codec) ParsePlayer(el *etree.Element) (model.Player, error) {
	firstName := el.SelectAttrValue(AttrFirstName, "")
	lastName := el.SelectAttrValue(AttrLastName, "")
	nickName := el.SelectAttrValue(AttrNickName, "")

	idAttr := el.SelectAttr(AttrID)
	if idAttr == nil {
		return c.registry.CreatePlayer(firstName, lastName, nickName), nil
	}

	id, err := strconv.Atoi(idAttr.Value)
	if err != nil {
		return model.Player{}, fmt.Errorf("%w: %q", model.ErrMalformedID, idAttr.Value)
	}
	return c.registry.CreatePlayerWithID(id, firstName, lastName, nickName)
}

// WritePlayer appends a PLAYER element for p to parent and returns it.
// Only id, firstName and lastName are written; the nickname is not persisted,
// so it reads back as empty.
func (c *Codec) WritePlayer(parent *etree.Element, p model.Player) *etree.Element {
	el := parent.CreateElement(PlayerTag)
	el.CreateAttr(AttrID, strconv.Itoa(p.ID))
	el.CreateAttr(AttrFirstName, p.FirstName)
	el.CreateAttr(AttrLastName, p.LastName)
	return el
}

// playerElements collects the PLAYER descendants of root in document order
func playerElements(root *etree.Element) []*etree.Element {
	var found []*etree.Element
	var walk func(el *etree.Element)
	walk = func(el *etree.Element) {
		for _, child := range el.ChildElements() {
			if child.Tag == PlayerTag {
				found = append(found, child)
			}
			walk(child)
		}
	}
	walk(root)
	return found
}
