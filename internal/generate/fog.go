package generate

import (
	"deepfloor/internal/gamemap"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// scatterFog turns patches of room floor into fog. The pattern comes from
// simplex noise keyed on the floor seed.
func scatterFog(gmap *gamemap.GameMap, style *Style, seed int64) {
	noise := opensimplex.NewNormalized(seed)
	scale := style.FogScale
	if scale <= 0 {
		scale = 1
	}
	threshold := 1 - style.FogDensity
	for y := 0; y < gmap.Height; y++ {
		for x := 0; x < gmap.Width; x++ {
			if gmap.At(x, y) != style.FloorTile {
				continue
			}
			if noise.Eval2(float64(x)/scale, float64(y)/scale) > threshold {
				gmap.Set(x, y, gamemap.TileFog)
			}
		}
	}
}
