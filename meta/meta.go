// meta/meta.go
package meta

// SIZE is the number of rows and columns on the board.
const SIZE = 5

// PIECES is the number of pieces each side owns.
const PIECES = 4

// MAX_PIECES is the number of pieces on the board once the drop phase ends.
const MAX_PIECES = 2 * PIECES

// MAX_DEPTH is the default ply limit for minimax.
const MAX_DEPTH = 3

// MAX_TURNS caps a self-play game that cycles without a winner.
const MAX_TURNS = 300
