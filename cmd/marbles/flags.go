package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/marbles/scene"
)

// parseVec2 reads "x,y"
func parseVec2(s string) (mgl64.Vec2, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return mgl64.Vec2{}, fmt.Errorf("%q: %w", s, scene.ErrBadVector)
	}
	var v mgl64.Vec2
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return mgl64.Vec2{}, fmt.Errorf("%q: %w", s, err)
		}
		v[i] = f
	}
	return v, nil
}
