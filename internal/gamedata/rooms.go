package gamedata

// ItemDef defines a collectible item loaded from JSON.
type ItemDef struct {
	Name string `json:"name"` // Display name, matched exactly against "get" input
	Use  string `json:"use"`  // How the item helps against el Chupacabras
}

// RoomDef defines a room of the house loaded from JSON.
type RoomDef struct {
	Name  string            `json:"name"`            // Unique room name (e.g., "living room")
	Item  *ItemDef          `json:"item,omitempty"`  // At most one item per room; nil when empty
	Exits map[string]string `json:"exits,omitempty"` // Cardinal direction -> room name
}

// HasItem returns true if the room starts with an item in it.
func (r *RoomDef) HasItem() bool {
	return r.Item != nil
}

// RoomsFile represents the structure of rooms.json.
type RoomsFile struct {
	Start    string    `json:"start"`    // Room the player begins in
	Terminal string    `json:"terminal"` // Room where the outcome is decided
	Rooms    []RoomDef `json:"rooms"`
}

// LoadRoomsFile loads the house layout from the embedded rooms.json file.
func LoadRoomsFile() (RoomsFile, error) {
	return Load[RoomsFile]("rooms.json")
}
