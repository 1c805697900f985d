package playerxml

import "github.com/beevik/etree"

// GameLoader parses the game-specific section of a document rooted at RootTag.
// Nothing in this module implements it; it is the hook for per-game loaders.
type GameLoader interface {
	// RootTag returns the root element this loader understands
	RootTag() string
	// Parse consumes an element rooted at RootTag
	Parse(el *etree.Element) error
}
