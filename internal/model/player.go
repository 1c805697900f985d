package model

import "fmt"

// Player is an immutable participant record. Players are only created
// through a registry, which owns id allocation.
type Player struct {
	ID        int
	FirstName string
	LastName  string
	NickName  string
}

// String renders the player as "First Last (Nick)"
func (p Player) String() string {
	return fmt.Sprintf("%s %s (%s)", p.FirstName, p.LastName, p.NickName)
}
