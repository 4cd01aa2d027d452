package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/gridrun/internal/domain/entity"
)

func TestIntentsFromInput(t *testing.T) {
	tests := []struct {
		name   string
		input  InputState
		facing entity.Direction
		want   []Intent
	}{
		{"nothing", InputState{}, entity.DirRight, []Intent{}},
		{"walk left", InputState{Left: true}, entity.DirRight, []Intent{MoveIntent{Direction: entity.DirLeft}}},
		{"left and right cancel", InputState{Left: true, Right: true}, entity.DirRight, []Intent{}},
		{"jump", InputState{JumpPressed: true}, entity.DirRight, []Intent{JumpIntent{}}},
		{"build faces the walk", InputState{Left: true, Build: true}, entity.DirRight, []Intent{
			MoveIntent{Direction: entity.DirLeft},
			BuildIntent{Direction: entity.DirLeft},
		}},
		{"break keeps facing", InputState{Break: true}, entity.DirLeft, []Intent{BreakIntent{Direction: entity.DirLeft}}},
		{"break below", InputState{Down: true, Break: true}, entity.DirRight, []Intent{BreakIntent{Direction: entity.DirDown}}},
		{"build above", InputState{Up: true, Build: true}, entity.DirRight, []Intent{BuildIntent{Direction: entity.DirUp}}},
		{"draw while walking", InputState{Right: true, Fire: true}, entity.DirLeft, []Intent{
			MoveIntent{Direction: entity.DirRight},
			DrawBowIntent{},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IntentsFromInput(tt.input, tt.facing))
		})
	}
}

func TestInputState_IsZero(t *testing.T) {
	assert.True(t, InputState{}.IsZero())
	assert.False(t, InputState{Break: true}.IsZero())
	assert.False(t, InputState{Fire: true}.IsZero())
}
