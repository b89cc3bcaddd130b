package game

import "fmt"

// Move is the instruction handed back to the caller. From is only meaningful
// for a relocation.
type Move struct {
	Action ActionType
	To     Position
	From   Position
}

func Drop(to Position) Move {
	return Move{Action: DropAction, To: to}
}

func Relocate(to, from Position) Move {
	return Move{Action: RelocateAction, To: to, From: from}
}

// Positions returns the external form: [destination] for a drop,
// [destination, source] for a relocation.
func (m Move) Positions() []Position {
	if m.Action == RelocateAction {
		return []Position{m.To, m.From}
	}
	return []Position{m.To}
}

// AsDrop keeps only the destination.
func (m Move) AsDrop() Move {
	return Drop(m.To)
}

func (m Move) String() string {
	if m.Action == RelocateAction {
		return fmt.Sprintf("%s->%s", m.From, m.To)
	}
	return m.To.String()
}

// Apply returns a copy of the board with the move played by piece. The move
// is assumed to have been validated.
func (b Board) Apply(m Move, piece Cell) Board {
	if m.Action == RelocateAction {
		b[m.From.Row][m.From.Col] = Empty
	}
	b[m.To.Row][m.To.Col] = piece
	return b
}

// neighbours in row offset, then column offset order
var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// LegalMoves enumerates the moves of piece in row-major, then direction-major
// order. During the drop phase every empty cell is a destination; during the
// move phase every piece may step to any empty neighbour, including diagonals.
func LegalMoves(b Board, piece Cell) []Move {
	if b.Phase() == DropPhase {
		moves := make([]Move, 0, len(b)*len(b[0])-b.Occupied())
		for _, p := range b.Positions(Empty) {
			moves = append(moves, Drop(p))
		}
		return moves
	}

	var moves []Move
	for _, from := range b.Positions(piece) {
		for _, d := range directions {
			to := Position{Row: from.Row + d[0], Col: from.Col + d[1]}
			if to.InBounds() && b.At(to) == Empty {
				moves = append(moves, Relocate(to, from))
			}
		}
	}
	return moves
}

// Successors returns one independent board per legal move of piece.
func Successors(b Board, piece Cell) []Board {
	moves := LegalMoves(b, piece)
	successors := make([]Board, len(moves))
	for i, m := range moves {
		successors[i] = b.Apply(m, piece)
	}
	return successors
}
