package snake

import "math/rand"

// spawnAttemptsPerCell bounds rejection sampling before falling back to a scan.
const spawnAttemptsPerCell = 4

// Spawn picks a cell not covered by body and a uniformly random food type.
//
// Cells are drawn uniformly at random until a free one turns up. After
// width*height*spawnAttemptsPerCell misses the free cells are enumerated and
// one is picked uniformly, so a crowded board still terminates. ok is false
// only when every cell is covered.
func Spawn(body []Position, width, height int, rng *rand.Rand) (food Food, ok bool) {
	if width <= 0 || height <= 0 {
		return Food{Pos: OffGrid}, false
	}

	occupied := make(map[Position]struct{}, len(body))
	for _, p := range body {
		occupied[p] = struct{}{}
	}

	pos, found := sampleFree(occupied, width, height, rng)
	if !found {
		return Food{Pos: OffGrid}, false
	}

	foodType := FoodType(rng.Intn(int(foodTypeCount)))
	return Food{Pos: pos, Type: foodType}, true
}

func sampleFree(occupied map[Position]struct{}, width, height int, rng *rand.Rand) (Position, bool) {
	attempts := width * height * spawnAttemptsPerCell
	for iter := 0; iter < attempts; iter++ {
		p := Position{X: rng.Intn(width), Y: rng.Intn(height)}
		if _, taken := occupied[p]; !taken {
			return p, true
		}
	}

	free := freeCells(occupied, width, height)
	if len(free) == 0 {
		return OffGrid, false
	}
	return free[rng.Intn(len(free))], true
}

// freeCells lists every cell in row-major order that occupied does not cover.
func freeCells(occupied map[Position]struct{}, width, height int) []Position {
	var free []Position
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p := Position{X: x, Y: y}
			if _, taken := occupied[p]; !taken {
				free = append(free, p)
			}
		}
	}
	return free
}
