package item

import "strconv"

// Type identifies a kind of in-game item
type Type uint8

const (
	None Type = iota
	DroppedItem
	Coin
	Heart
	Gib
	Tombstone
	Chest
	Torch
	Furnace
	Anvil
	QuestBoard
	CampFire
	Mannequin
	Door
	Chair
	Table
	Bed
	Portal
	PortalPillar
	CopperVein
	CopperOre
	CopperBar
	IronVein
	IronOre
	IronBar
	SilverVein
	SilverOre
	SilverBar
	GoldVein
	GoldOre
	GoldBar
	CropSoil
	CropWheat
	CropCorn
	CropTomato
	Fence
	BlockGrass
	BlockDirt
	BlockStone
	BlockWood
	BlockLeaf
	BlockSand
	BlockCactus
	BlockRock
	BlockSnow
	TypeCount // Sentinel value for array sizing
)

// DefaultRadius is used for every type without a narrower radius
const DefaultRadius float32 = 1.0

// NameOf returns the serialization tag for t, or "" if t is not a known type
func NameOf(t Type) string {
	if t >= TypeCount {
		return ""
	}
	return names[t]
}

// TypeOf returns the type whose tag is exactly tag, or None
func TypeOf(tag string) Type {
	if t, ok := byName[tag]; ok {
		return t
	}
	return None
}

// AssetPathOf returns the item definition file for t. Types that are built
// procedurally have no file and return "".
func AssetPathOf(t Type) string {
	if t >= TypeCount {
		return ""
	}
	return assetPaths[t]
}

// RadiusOf returns the pickup/collision radius for t
func RadiusOf(t Type) float32 {
	if t >= TypeCount {
		return DefaultRadius
	}
	return radii[t]
}

// All returns every known type in declaration order, None included
func All() []Type {
	out := make([]Type, 0, TypeCount)
	for t := None; t < TypeCount; t++ {
		out = append(out, t)
	}
	return out
}

// Valid reports whether t is a member of the enumeration
func (t Type) Valid() bool {
	return t < TypeCount
}

// Procedural reports whether t is built in code rather than loaded from disk
func (t Type) Procedural() bool {
	return t.Valid() && assetPaths[t] == ""
}

func (t Type) String() string {
	if !t.Valid() {
		return "Type(" + strconv.Itoa(int(t)) + ")"
	}
	return names[t]
}
