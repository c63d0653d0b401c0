package gamedata

import (
	"errors"
	"fmt"
)

// validDirections are the only exit labels a room definition may use.
var validDirections = map[string]bool{
	"north": true,
	"south": true,
	"east":  true,
	"west":  true,
}

// RoomRegistry holds validated room definitions and provides lookup utilities.
// Validation happens once at construction so the rest of the game can treat
// the topology as trusted: every exit resolves to a room that exists.
type RoomRegistry struct {
	rooms     map[string]*RoomDef
	order     []string
	start     string
	terminal  string
	itemCount int
}

// NewRoomRegistry creates a registry from a loaded rooms file, validating
// the topology. Definition order is preserved for deterministic iteration.
func NewRoomRegistry(file RoomsFile) (*RoomRegistry, error) {
	if len(file.Rooms) == 0 {
		return nil, errors.New("no rooms defined in rooms.json")
	}

	registry := &RoomRegistry{
		rooms:    make(map[string]*RoomDef, len(file.Rooms)),
		order:    make([]string, 0, len(file.Rooms)),
		start:    file.Start,
		terminal: file.Terminal,
	}

	for i := range file.Rooms {
		def := &file.Rooms[i]
		if def.Name == "" {
			return nil, fmt.Errorf("room %d has no name", i)
		}
		if _, dup := registry.rooms[def.Name]; dup {
			return nil, fmt.Errorf("duplicate room %q", def.Name)
		}
		registry.rooms[def.Name] = def
		registry.order = append(registry.order, def.Name)
		if def.HasItem() {
			if def.Item.Name == "" {
				return nil, fmt.Errorf("room %q has an item with no name", def.Name)
			}
			registry.itemCount++
		}
	}

	for _, name := range registry.order {
		for dir, target := range registry.rooms[name].Exits {
			if !validDirections[dir] {
				return nil, fmt.Errorf("room %q has invalid exit direction %q", name, dir)
			}
			if _, ok := registry.rooms[target]; !ok {
				return nil, fmt.Errorf("room %q exit %s leads to unknown room %q", name, dir, target)
			}
		}
	}

	if _, ok := registry.rooms[file.Start]; !ok {
		return nil, fmt.Errorf("start room %q not defined", file.Start)
	}
	terminal, ok := registry.rooms[file.Terminal]
	if !ok {
		return nil, fmt.Errorf("terminal room %q not defined", file.Terminal)
	}
	if terminal.HasItem() {
		return nil, fmt.Errorf("terminal room %q must not hold an item", file.Terminal)
	}

	return registry, nil
}

// LoadRoomRegistry loads and validates a registry from the embedded rooms.json.
func LoadRoomRegistry() (*RoomRegistry, error) {
	file, err := LoadRoomsFile()
	if err != nil {
		return nil, err
	}
	return NewRoomRegistry(file)
}

// MustLoadRoomRegistry loads a registry, panicking on error.
func MustLoadRoomRegistry() *RoomRegistry {
	registry, err := LoadRoomRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// Get returns the room definition with the given name, or nil if not found.
func (r *RoomRegistry) Get(name string) *RoomDef {
	return r.rooms[name]
}

// Names returns all room names in definition order.
func (r *RoomRegistry) Names() []string {
	return r.order
}

// Count returns the number of rooms in the registry.
func (r *RoomRegistry) Count() int {
	return len(r.order)
}

// ItemCount returns the number of rooms that start with an item. The player
// must collect this many items to win.
func (r *RoomRegistry) ItemCount() int {
	return r.itemCount
}

// Start returns the name of the room the player begins in.
func (r *RoomRegistry) Start() string {
	return r.start
}

// Terminal returns the name of the room where the outcome is decided.
func (r *RoomRegistry) Terminal() string {
	return r.terminal
}
