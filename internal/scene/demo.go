package scene

import "wireframe-renderer/internal/mathutil"

// Demo returns the built-in scene: a 30×5×5 box and a square pyramid a short
// walk ahead of the default viewpoint.
func Demo() *Scene {
	return &Scene{Sprites: []Sprite{demoBox(), demoPyramid()}}
}

func demoBox() Sprite {
	return Sprite{
		ID: "box",
		Vertices: []mathutil.Vec3{
			{0, 45, 0},
			{0, 40, 0},
			{30, 40, 0},
			{30, 45, 0},
			{0, 45, 5},
			{0, 40, 5},
			{30, 40, 5},
			{30, 45, 5},
		},
		Edges: [][2]int{
			// Bottom
			{0, 1}, {1, 2}, {2, 3}, {3, 0},
			// Top
			{4, 5}, {5, 6}, {6, 7}, {7, 4},
			// Uprights
			{0, 4}, {1, 5}, {2, 6}, {3, 7},
		},
		Faces: [][]int{
			{0, 1, 2, 3},
			{4, 5, 6, 7},
			{0, 4, 7, 3},
			{1, 5, 6, 2},
			{0, 1, 5, 4},
			{3, 2, 6, 7},
		},
	}
}

func demoPyramid() Sprite {
	return Sprite{
		ID: "pyramid",
		Vertices: []mathutil.Vec3{
			{35, 40, 0},
			{45, 40, 0},
			{45, 50, 0},
			{35, 50, 0},
			{40, 45, 10}, // apex
		},
		Edges: [][2]int{
			{0, 1}, {1, 2}, {2, 3}, {3, 0},
			{0, 4}, {1, 4}, {2, 4}, {3, 4},
		},
	}
}
