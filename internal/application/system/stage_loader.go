package system

import (
	"fmt"

	"github.com/younwookim/gridrun/internal/domain/entity"
	"github.com/younwookim/gridrun/internal/infrastructure/config"
)

// LoadStage builds a Stage holding every level. The stage is as large as
// the largest level and never smaller than the configured grid; smaller
// levels are padded with empty tiles.
func LoadStage(grid config.GridConfig, levels []*config.LevelData) (*entity.Stage, error) {
	if len(levels) == 0 {
		return nil, fmt.Errorf("load stage: no levels")
	}

	width, height := grid.NumTilesX, grid.NumTilesY
	for _, l := range levels {
		width = max(width, l.Width)
		height = max(height, l.Height)
	}

	stage := entity.NewStage(width, height, len(levels), grid.StepsPerTileX, grid.StepsPerTileY, grid.TileWidth, grid.TileHeight)
	for i, l := range levels {
		if err := stage.LoadLevel(i, l.Rows); err != nil {
			return nil, fmt.Errorf("load stage level %q: %w", l.Name, err)
		}
	}
	return stage, nil
}

// ReloadLevel restores a level from its source data, bringing back the
// spawn markers and pickups consumed during the previous run
func ReloadLevel(stage *entity.Stage, index int, level *config.LevelData) error {
	if err := stage.LoadLevel(index, level.Rows); err != nil {
		return fmt.Errorf("reload level %q: %w", level.Name, err)
	}
	return nil
}
