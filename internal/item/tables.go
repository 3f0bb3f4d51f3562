package item

// Content files already reference these tags, so the spellings are part of
// the save/content format. "BlockLead" in particular must stay as is.
var names = [TypeCount]string{
	None:         "None",
	DroppedItem:  "DroppedItem",
	Coin:         "Coin",
	Heart:        "Heart",
	Gib:          "Gib",
	Tombstone:    "TombStone",
	Chest:        "Chest",
	Torch:        "Torch",
	Furnace:      "Furnace",
	Anvil:        "Anvil",
	QuestBoard:   "QuestBoard",
	CampFire:     "CampFire",
	Mannequin:    "Mannequin",
	Door:         "Door",
	Chair:        "Chair",
	Table:        "Table",
	Bed:          "Bed",
	Portal:       "Portal",
	PortalPillar: "PortalPillar",
	CopperVein:   "CopperVein",
	CopperOre:    "CopperOre",
	CopperBar:    "CopperBar",
	IronVein:     "IronVein",
	IronOre:      "IronOre",
	IronBar:      "IronBar",
	SilverVein:   "SilverVein",
	SilverOre:    "SilverOre",
	SilverBar:    "SilverBar",
	GoldVein:     "GoldVein",
	GoldOre:      "GoldOre",
	GoldBar:      "GoldBar",
	CropSoil:     "CropSoil",
	CropWheat:    "CropWheat",
	CropCorn:     "CropCorn",
	CropTomato:   "CropTomato",
	Fence:        "Fence",
	BlockGrass:   "BlockGrass",
	BlockDirt:    "BlockDirt",
	BlockStone:   "BlockStone",
	BlockWood:    "BlockWood",
	BlockLeaf:    "BlockLead",
	BlockSand:    "BlockSand",
	BlockCactus:  "BlockCactus",
	BlockRock:    "BlockRock",
	BlockSnow:    "BlockSnow",
}

const itemsDir = "media/gamedata/items/"

// Empty entries are procedural.
var assetPaths = [TypeCount]string{
	Coin:        itemsDir + "Coin/Coin.item",
	Heart:       itemsDir + "Heart/Heart.item",
	Tombstone:   itemsDir + "Tombstone1.item",
	Chest:       itemsDir + "Chest/Chest.item",
	Torch:       itemsDir + "Torch/Torch.item",
	Furnace:     itemsDir + "Furnace/Furnace.item",
	Anvil:       itemsDir + "Anvil/Anvil.item",
	QuestBoard:  itemsDir + "QuestBoard/QuestBoard.item",
	CampFire:    itemsDir + "CampFire.item",
	Mannequin:   itemsDir + "Mannequin/Mannequin.item",
	Door:        itemsDir + "Door/Door.item",
	Chair:       itemsDir + "Chair/Chair.item",
	Table:       itemsDir + "Table/Table.item",
	Bed:         itemsDir + "Bed/Bed.item",
	CopperVein:  itemsDir + "CopperVein/CopperVein0.item",
	CopperOre:   itemsDir + "CopperOre/CopperOre.item",
	CopperBar:   itemsDir + "CopperBar/CopperBar.item",
	IronVein:    itemsDir + "IronVein/IronVein0.item",
	IronOre:     itemsDir + "IronOre/IronOre.item",
	IronBar:     itemsDir + "IronBar/IronBar.item",
	SilverVein:  itemsDir + "SilverVein/SilverVein0.item",
	SilverOre:   itemsDir + "SilverOre/SilverOre.item",
	SilverBar:   itemsDir + "SilverBar/SilverBar.item",
	GoldVein:    itemsDir + "GoldVein/GoldVein0.item",
	GoldOre:     itemsDir + "GoldOre/GoldOre.item",
	GoldBar:     itemsDir + "GoldBar/GoldBar.item",
	BlockGrass:  itemsDir + "BlockGrass/BlockGrass.item",
	BlockDirt:   itemsDir + "BlockDirt/BlockDirt.item",
	BlockStone:  itemsDir + "BlockStone/BlockStone.item",
	BlockWood:   itemsDir + "BlockWood/BlockWood.item",
	BlockLeaf:   itemsDir + "BlockLead/BlockLead.item",
	BlockSand:   itemsDir + "BlockSand/BlockSand.item",
	BlockCactus: itemsDir + "BlockCactus/BlockCactus.item",
	BlockRock:   itemsDir + "BlockRock/BlockRock.item",
	BlockSnow:   itemsDir + "BlockSnow/BlockSnow.item",
}

var radii [TypeCount]float32

var byName = make(map[string]Type, TypeCount)

func init() {
	for t := range radii {
		radii[t] = DefaultRadius
	}
	radii[Coin] = 0.25
	radii[Heart] = 0.25
	radii[Gib] = 0.125
	radii[Chest] = 0.5
	radii[Furnace] = 0.5
	radii[Anvil] = 0.5
	radii[CopperVein] = 0.5
	radii[IronVein] = 0.5
	radii[SilverVein] = 0.5
	radii[GoldVein] = 0.5

	for t, name := range names {
		byName[name] = Type(t)
	}
}
