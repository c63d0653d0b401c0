package world

import "fmt"

// Item is a collectible tied to exactly one room until picked up.
type Item struct {
	Name string
	Use  string
}

// Room is a node in the fixed navigation graph. It optionally holds one
// item and connects to other rooms by name through cardinal exits. The
// exits never change after construction; only the item slot mutates.
type Room struct {
	Name  string
	item  *Item
	exits map[Direction]string
}

// NewRoom creates a room with the given item (nil for none) and exits.
func NewRoom(name string, item *Item, exits map[Direction]string) *Room {
	if exits == nil {
		exits = map[Direction]string{}
	}
	return &Room{Name: name, item: item, exits: exits}
}

// HasItem returns true if the room still holds its item.
func (r *Room) HasItem() bool {
	return r.item != nil
}

// Item returns the room's item, or nil when it has none.
func (r *Room) Item() *Item {
	return r.item
}

// Describe summarizes the presence and use of the room's item.
func (r *Room) Describe() string {
	if !r.HasItem() {
		return "There are no items in this room."
	}
	return fmt.Sprintf("There is a %s. You can use it to %s.", r.item.Name, r.item.Use)
}

// RemoveItem clears the room's item. Idempotent: removing from an empty
// room is a no-op.
func (r *Room) RemoveItem() {
	r.item = nil
}

// Exit returns the name of the room in the given direction. A missing
// exit is a normal game event, reported through the bool, not an error.
func (r *Room) Exit(dir Direction) (string, bool) {
	target, ok := r.exits[dir]
	return target, ok
}

// ExitDirections returns the directions this room connects through, in
// the fixed cardinal order.
func (r *Room) ExitDirections() []Direction {
	dirs := make([]Direction, 0, len(r.exits))
	for _, dir := range Directions() {
		if _, ok := r.exits[dir]; ok {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}
