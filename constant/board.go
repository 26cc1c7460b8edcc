package constant

// Board geometry, in tiles, bottom-left origin
const (
	BoardLeft   = 0
	BoardRight  = 19
	BoardBottom = 0
	BoardTop    = 14

	// TileSize is the edge length of one tile in pixels
	TileSize = 32

	// TileRest is the centered sub-tile offset for an entity at rest
	TileRest = 15
)

// Start placement
const (
	PlayerStartX = 10
	PlayerStartY = BoardBottom
)

// ObstacleMarker is the level-map character denoting an obstacle tile
const ObstacleMarker = '*'
