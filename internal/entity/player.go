// Package entity provides the player and their inventory.
package entity

import (
	"fmt"
	"strings"

	"github.com/samdwyer/chupacabra/internal/world"
)

// Player tracks where the player is and what they have collected.
// The inventory preserves pickup order for display; duplicates are
// impossible because each item exists in exactly one room.
type Player struct {
	CurrentRoom *world.Room
	Inventory   []string
}

// NewPlayer creates a player standing in the start room with nothing
// collected yet.
func NewPlayer(start *world.Room) *Player {
	return &Player{CurrentRoom: start}
}

// Status renders the player's current room and inventory.
func (p *Player) Status() string {
	inventory := "not picked up any items yet"
	if len(p.Inventory) > 0 {
		inventory = strings.Join(p.Inventory, ", ")
	}
	return fmt.Sprintf("You are in the %s. You have %s.", p.CurrentRoom.Name, inventory)
}

// MoveTo puts the player in the given room.
func (p *Player) MoveTo(room *world.Room) {
	p.CurrentRoom = room
}

// Collect attempts to pick up the named item from the current room.
// It succeeds only when the room holds an item whose name matches
// exactly; the caller is responsible for case normalization. On
// failure the player and room are left unchanged.
func (p *Player) Collect(name string) (string, bool) {
	room := p.CurrentRoom
	if !room.HasItem() || room.Item().Name != name {
		return "Can't get that item.", false
	}

	p.Inventory = append(p.Inventory, name)
	room.RemoveItem()
	return fmt.Sprintf("You picked up a %s.", name), true
}
