package world

import "github.com/samdwyer/chupacabra/internal/gamedata"

// BuildRooms constructs an owned room graph from validated definitions.
// Each call returns a fresh set of rooms so sessions stay independent:
// picking up an item in one game never leaks into the next.
func BuildRooms(registry *gamedata.RoomRegistry) map[string]*Room {
	rooms := make(map[string]*Room, registry.Count())

	for _, name := range registry.Names() {
		def := registry.Get(name)

		var item *Item
		if def.HasItem() {
			item = &Item{Name: def.Item.Name, Use: def.Item.Use}
		}

		exits := make(map[Direction]string, len(def.Exits))
		for dir, target := range def.Exits {
			// Registry validation already rejected unknown labels.
			d, _ := ParseDirection(dir)
			exits[d] = target
		}

		rooms[name] = NewRoom(def.Name, item, exits)
	}

	return rooms
}

// CountItems returns how many rooms currently hold an item.
func CountItems(rooms map[string]*Room) int {
	count := 0
	for _, room := range rooms {
		if room.HasItem() {
			count++
		}
	}
	return count
}
