package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mcoot/gameutils/internal/model"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	out    io.Writer
	errOut io.Writer
}

// NewOutput creates a new Output formatter
func NewOutput(format string, out, errOut io.Writer) *Output {
	return &Output{format: format, out: out, errOut: errOut}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintWarning reports a non-fatal problem on the error stream
func (o *Output) PrintWarning(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"warning": msg})
		fmt.Fprintln(o.errOut, string(data))
	} else {
		fmt.Fprintf(o.errOut, "Warning: %s\n", msg)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(o.out, string(data))
	} else {
		fmt.Fprintln(o.out, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.out)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case PlayerList:
		o.printPlayerList(v)
	case ValidationResult:
		o.printValidationResult(v)
	case RosterList:
		o.printRosterList(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player output type
type Player struct {
	ID        int    `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	NickName  string `json:"nick_name"`
}

// PlayerList output type
type PlayerList struct {
	Players []Player `json:"players"`
}

// ValidationResult output type
type ValidationResult struct {
	Valid bool `json:"valid"`
}

// RosterList output type
type RosterList struct {
	Rosters []string `json:"rosters"`
}

func toPlayerList(players []model.Player) PlayerList {
	list := PlayerList{Players: make([]Player, 0, len(players))}
	for _, p := range players {
		list.Players = append(list.Players, Player{
			ID:        p.ID,
			FirstName: p.FirstName,
			LastName:  p.LastName,
			NickName:  p.NickName,
		})
	}
	return list
}

func (o *Output) printPlayerList(l PlayerList) {
	fmt.Fprintf(o.out, "Players (%d):\n", len(l.Players))
	for _, p := range l.Players {
		fmt.Fprintf(o.out, "  %d: %s %s (%s)\n", p.ID, p.FirstName, p.LastName, p.NickName)
	}
}

func (o *Output) printValidationResult(v ValidationResult) {
	if v.Valid {
		fmt.Fprintln(o.out, "valid")
	} else {
		fmt.Fprintln(o.out, "invalid")
	}
}

func (o *Output) printRosterList(l RosterList) {
	fmt.Fprintf(o.out, "Rosters (%d):\n", len(l.Rosters))
	for _, name := range l.Rosters {
		fmt.Fprintf(o.out, "  %s\n", name)
	}
}
