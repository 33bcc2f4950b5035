package voxel

import "testing"

func TestFromRaw(t *testing.T) {
	tests := []struct {
		raw  uint8
		want Block
	}{
		{0, Air},
		{1, Grass},
		{2, Dirt},
		{3, Stone},
		{4, Sand},
		{5, Water},
		{6, Cobble},
		{7, Air},
		{42, Air},
		{255, Air},
	}
	for _, tt := range tests {
		if got := FromRaw(tt.raw); got != tt.want {
			t.Errorf("FromRaw(%d) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestBlockProperties(t *testing.T) {
	tests := []struct {
		block       Block
		solid       bool
		transparent bool
	}{
		{Air, false, true},
		{Grass, true, false},
		{Dirt, true, false},
		{Stone, true, false},
		{Sand, true, false},
		{Water, false, false},
		{Cobble, true, false},
		{Block(99), false, true}, // unknown values behave as Air
	}
	for _, tt := range tests {
		if got := tt.block.IsSolid(); got != tt.solid {
			t.Errorf("%v.IsSolid() = %v, want %v", tt.block, got, tt.solid)
		}
		if got := tt.block.IsTransparent(); got != tt.transparent {
			t.Errorf("%v.IsTransparent() = %v, want %v", tt.block, got, tt.transparent)
		}
	}
}

func TestBlockColorRange(t *testing.T) {
	for b := Air; b < blockCount; b++ {
		c := b.Color()
		for i, ch := range c {
			if ch < 0 || ch > 1 {
				t.Errorf("%v colour channel %d = %f, out of [0,1]", b, i, ch)
			}
		}
	}
	if got, want := Block(200).Color(), Air.Color(); got != want {
		t.Errorf("unknown block colour = %v, want %v", got, want)
	}
	if got := Stone.String(); got != "stone" {
		t.Errorf("Stone.String() = %q, want %q", got, "stone")
	}
}
