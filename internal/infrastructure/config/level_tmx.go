package config

import (
	"fmt"

	"github.com/lafriks/go-tiled"

	"github.com/younwookim/gridrun/internal/domain/entity"
)

const (
	tmxTileLayer  = "tiles"
	tmxSpawnGroup = "spawns"
	tmxValueProp  = "value"
	tmxMarkerProp = "marker"
)

// loadTMXLevel reads a Tiled map. Each non-empty cell of the "tiles" layer
// takes the "value" property of its tileset tile, defaulting to solid.
// Objects in the "spawns" group write their "marker" property into the cell
// they sit in.
func (l *Loader) loadTMXLevel(name string) (*LevelData, error) {
	levelMap, err := tiled.LoadFile(name, tiled.WithFileSystem(l.fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", name, err)
	}

	width, height := levelMap.Width, levelMap.Height
	rows := make([][]int, height)
	for i := range rows {
		rows[i] = make([]int, width)
	}

	layer := tileLayer(levelMap)
	if layer == nil {
		return nil, fmt.Errorf("TMX %s: no tile layer", name)
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			tile := layer.Tiles[y*width+x]
			if tile.IsNil() {
				continue
			}

			value := entity.TileSolid
			if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
				if v := tilesetTile.Properties.GetInt(tmxValueProp); v != 0 {
					value = v
				}
			}
			// TMX rows run top-down
			rows[height-1-y][x] = value
		}
	}

	for _, og := range levelMap.ObjectGroups {
		if og.Name != tmxSpawnGroup {
			continue
		}
		for _, o := range og.Objects {
			marker := o.Properties.GetInt(tmxMarkerProp)
			if marker == 0 {
				continue
			}
			x := int(o.X) / levelMap.TileWidth
			y := int(o.Y) / levelMap.TileHeight
			if x < 0 || x >= width || y < 0 || y >= height {
				return nil, fmt.Errorf("TMX %s: spawn object %d outside the map", name, o.ID)
			}
			rows[height-1-y][x] = marker
		}
	}

	return &LevelData{Width: width, Height: height, Rows: rows}, nil
}

func tileLayer(m *tiled.Map) *tiled.Layer {
	for _, layer := range m.Layers {
		if layer.Name == tmxTileLayer {
			return layer
		}
	}
	if len(m.Layers) > 0 {
		return m.Layers[0]
	}
	return nil
}
