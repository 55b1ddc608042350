package rules

/*
Next applies Conway's Game of Life rules to determine a cell's next state
from its current state and living-neighbor count:

	alive, n < 2       -> dies (underpopulation)
	alive, n == 2 or 3 -> stays alive
	alive, n > 3       -> dies (overpopulation)
	dead,  n == 3      -> becomes alive (reproduction)
	dead,  otherwise   -> stays dead

which collapses to: (alive && neighbors == 2) || neighbors == 3
*/
func Next(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}
