package searcher

import "math"

// Search values of decided boards
const WIN = 1.0
const LOSS = -WIN

var (
	negInf = math.Inf(-1)
	posInf = math.Inf(1)
)
