package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewArrow(t *testing.T) {
	pos := GridPosition{Cell: Cell{Row: 2, Col: 6}, StepX: 3}

	a := NewArrow(4, pos, DirLeft, 2, 2, 10, 40)

	assert.Equal(t, EntityID(4), a.ID)
	assert.True(t, a.Active)
	assert.Equal(t, pos, a.Position)
	assert.Equal(t, DirLeft, a.Heading)
	assert.Equal(t, 2.0, a.Charge)
	assert.Equal(t, 2.0, a.Speed)
	assert.Equal(t, 40, a.Damage)
	assert.Equal(t, -4, a.StopCol)
}

func TestArrow_Spent(t *testing.T) {
	tests := []struct {
		name    string
		heading Direction
		col     int
		want    bool
	}{
		{"right, short of the stop", DirRight, 6, false},
		{"right, at the stop", DirRight, 7, true},
		{"right, past the stop", DirRight, 8, true},
		{"left, short of the stop", DirLeft, 4, false},
		{"left, at the stop", DirLeft, 3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewArrow(1, NewGridPosition(Cell{Row: 0, Col: 5}), tt.heading, 1, 1, 2, 20)
			a.Position.Cell.Col = tt.col
			assert.Equal(t, tt.want, a.Spent())
		})
	}
}
