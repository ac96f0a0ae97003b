package models

// BoxCounts holds box counts per fixed size category.
type BoxCounts struct {
	Small      int `bson:"small" json:"small"`
	Medium     int `bson:"medium" json:"medium"`
	Large      int `bson:"large" json:"large"`
	ExtraLarge int `bson:"extra_large" json:"extraLarge"`
}

// Total returns the number of boxes across all sizes.
func (b BoxCounts) Total() int {
	return b.Small + b.Medium + b.Large + b.ExtraLarge
}

// FurnitureEntry is one furniture line of the inventory.
type FurnitureEntry struct {
	Item     string `bson:"item" json:"furnitureItem"`
	Quantity int    `bson:"quantity" json:"quantity"`
}

// ApplianceEntry is one appliance line of the inventory.
type ApplianceEntry struct {
	Item     string `bson:"item" json:"applianceItem"`
	Quantity int    `bson:"quantity" json:"quantity"`
}

// SpecialItemEntry describes an item needing individual handling (piano, art...).
type SpecialItemEntry struct {
	Type        string `bson:"type" json:"specialItemType"`
	Description string `bson:"description" json:"description"`
}

// FloorAccess captures lift availability and stair counts at both ends.
type FloorAccess struct {
	PickupLift        bool `bson:"pickup_lift" json:"pickupLift"`
	PickupStairs      int  `bson:"pickup_stairs" json:"pickupStairs"`
	DestinationLift   bool `bson:"destination_lift" json:"destinationLift"`
	DestinationStairs int  `bson:"destination_stairs" json:"destinationStairs"`
}

// InventoryDetails is the full inventory section of a quote request.
type InventoryDetails struct {
	Boxes        BoxCounts          `bson:"boxes" json:"boxes"`
	Furniture    []FurnitureEntry   `bson:"furniture" json:"furniture"`
	Appliances   []ApplianceEntry   `bson:"appliances" json:"appliances"`
	SpecialItems []SpecialItemEntry `bson:"special_items" json:"specialItems"`
	FloorAccess  FloorAccess        `bson:"floor_access" json:"floorAccess"`
}

// HasItems reports whether at least one inventory category is non-empty.
func (d InventoryDetails) HasItems() bool {
	if d.Boxes.Total() > 0 {
		return true
	}
	for _, f := range d.Furniture {
		if f.Quantity > 0 {
			return true
		}
	}
	for _, a := range d.Appliances {
		if a.Quantity > 0 {
			return true
		}
	}
	for _, s := range d.SpecialItems {
		if s.Type != "" {
			return true
		}
	}
	return false
}

// Valid reports whether the inventory is complete enough to quote: at least
// one non-empty category, non-negative quantities, and every populated entry
// carrying both its type and quantity/description.
func (d InventoryDetails) Valid() bool {
	if d.Boxes.Small < 0 || d.Boxes.Medium < 0 || d.Boxes.Large < 0 || d.Boxes.ExtraLarge < 0 {
		return false
	}
	for _, f := range d.Furniture {
		if f.Quantity < 0 {
			return false
		}
		if (f.Item == "") != (f.Quantity == 0) {
			return false
		}
	}
	for _, a := range d.Appliances {
		if a.Quantity < 0 {
			return false
		}
		if (a.Item == "") != (a.Quantity == 0) {
			return false
		}
	}
	for _, s := range d.SpecialItems {
		if s.Type != "" && s.Description == "" {
			return false
		}
		if s.Type == "" && s.Description != "" {
			return false
		}
	}
	if d.FloorAccess.PickupStairs < 0 || d.FloorAccess.DestinationStairs < 0 {
		return false
	}
	return d.HasItems()
}

// AddFurniture returns a new slice with the entry appended.
func AddFurniture(list []FurnitureEntry, entry FurnitureEntry) []FurnitureEntry {
	out := make([]FurnitureEntry, len(list), len(list)+1)
	copy(out, list)
	return append(out, entry)
}

// UpdateFurniture returns a new slice with the entry at index replaced.
// Out-of-range indexes leave the list unchanged.
func UpdateFurniture(list []FurnitureEntry, index int, entry FurnitureEntry) []FurnitureEntry {
	out := make([]FurnitureEntry, len(list))
	copy(out, list)
	if index >= 0 && index < len(out) {
		out[index] = entry
	}
	return out
}

// RemoveFurniture returns a new slice with the entry at index removed.
func RemoveFurniture(list []FurnitureEntry, index int) []FurnitureEntry {
	if index < 0 || index >= len(list) {
		out := make([]FurnitureEntry, len(list))
		copy(out, list)
		return out
	}
	out := make([]FurnitureEntry, 0, len(list)-1)
	out = append(out, list[:index]...)
	return append(out, list[index+1:]...)
}

// AddAppliance returns a new slice with the entry appended.
func AddAppliance(list []ApplianceEntry, entry ApplianceEntry) []ApplianceEntry {
	out := make([]ApplianceEntry, len(list), len(list)+1)
	copy(out, list)
	return append(out, entry)
}

// UpdateAppliance returns a new slice with the entry at index replaced.
func UpdateAppliance(list []ApplianceEntry, index int, entry ApplianceEntry) []ApplianceEntry {
	out := make([]ApplianceEntry, len(list))
	copy(out, list)
	if index >= 0 && index < len(out) {
		out[index] = entry
	}
	return out
}

// RemoveAppliance returns a new slice with the entry at index removed.
func RemoveAppliance(list []ApplianceEntry, index int) []ApplianceEntry {
	if index < 0 || index >= len(list) {
		out := make([]ApplianceEntry, len(list))
		copy(out, list)
		return out
	}
	out := make([]ApplianceEntry, 0, len(list)-1)
	out = append(out, list[:index]...)
	return append(out, list[index+1:]...)
}

// AddSpecialItem returns a new slice with the entry appended.
func AddSpecialItem(list []SpecialItemEntry, entry SpecialItemEntry) []SpecialItemEntry {
	out := make([]SpecialItemEntry, len(list), len(list)+1)
	copy(out, list)
	return append(out, entry)
}

// RemoveSpecialItem returns a new slice with the entry at index removed.
func RemoveSpecialItem(list []SpecialItemEntry, index int) []SpecialItemEntry {
	if index < 0 || index >= len(list) {
		out := make([]SpecialItemEntry, len(list))
		copy(out, list)
		return out
	}
	out := make([]SpecialItemEntry, 0, len(list)-1)
	out = append(out, list[:index]...)
	return append(out, list[index+1:]...)
}
