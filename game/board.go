package game

import (
	"errors"
	"fmt"
	"strings"

	"teeko/meta"
	"teeko/utils"
)

var ErrInvalidBoard = errors.New("invalid board")

type Cell uint8

const (
	Empty Cell = iota
	Black
	Red
)

var symbols = []rune{'.', 'b', 'r'}

func (c Cell) Other() Cell {
	switch c {
	case Black:
		return Red
	case Red:
		return Black
	default:
		return Empty
	}
}

func (c Cell) String() string {
	if int(c) >= len(symbols) {
		return "?"
	}
	return string(symbols[c])
}

// ParseCell accepts '.', ' ' or '_' for an empty cell, 'b' and 'r' for pieces.
func ParseCell(r rune) (Cell, error) {
	switch r {
	case ' ', '_':
		return Empty, nil
	}
	i := utils.FindIndex(symbols, r)
	if i < 0 {
		return Empty, fmt.Errorf("unknown cell symbol %q", r)
	}
	return Cell(i), nil
}

type Position struct {
	Row int
	Col int
}

// String uses the board's console notation: column letter then row digit.
func (p Position) String() string {
	return fmt.Sprintf("%c%d", 'A'+p.Col, p.Row)
}

func (p Position) InBounds() bool {
	return p.Row >= 0 && p.Row < meta.SIZE && p.Col >= 0 && p.Col < meta.SIZE
}

// Board is a row-major 5x5 grid. It is a value type, so assigning or passing
// a board copies it.
type Board [meta.SIZE][meta.SIZE]Cell

func (b Board) At(p Position) Cell {
	return b[p.Row][p.Col]
}

func (b Board) Count(c Cell) int {
	n := 0
	for _, row := range b {
		for _, cell := range row {
			if cell == c {
				n++
			}
		}
	}
	return n
}

func (b Board) Occupied() int {
	return b.Count(Black) + b.Count(Red)
}

func (b Board) Phase() Phase {
	return PhaseOf(b.Occupied())
}

// Positions lists the cells holding c in row-major order.
func (b Board) Positions(c Cell) []Position {
	var positions []Position
	for i, row := range b {
		for j, cell := range row {
			if cell == c {
				positions = append(positions, Position{Row: i, Col: j})
			}
		}
	}
	return positions
}

// FirstEmpty returns the first empty cell in row-major order.
func (b Board) FirstEmpty() (Position, bool) {
	for i, row := range b {
		for j, cell := range row {
			if cell == Empty {
				return Position{Row: i, Col: j}, true
			}
		}
	}
	return Position{}, false
}

func (b Board) Validate() error {
	for _, row := range b {
		for _, cell := range row {
			if cell > Red {
				return fmt.Errorf("%w: unknown cell value %d", ErrInvalidBoard, cell)
			}
		}
	}
	if n := b.Count(Black); n > meta.PIECES {
		return fmt.Errorf("%w: %d black pieces", ErrInvalidBoard, n)
	}
	if n := b.Count(Red); n > meta.PIECES {
		return fmt.Errorf("%w: %d red pieces", ErrInvalidBoard, n)
	}
	return nil
}

// String renders the board as five rows of symbols separated by '/'.
func (b Board) String() string {
	var sb strings.Builder
	for i, row := range b {
		if i > 0 {
			sb.WriteByte('/')
		}
		for _, cell := range row {
			sb.WriteString(cell.String())
		}
	}
	return sb.String()
}

// ParseBoard reads the notation produced by Board.String. Rows may also be
// separated by newlines.
func ParseBoard(s string) (Board, error) {
	var b Board
	rows := strings.FieldsFunc(s, func(r rune) bool { return r == '/' || r == '\n' })
	if len(rows) != meta.SIZE {
		return b, fmt.Errorf("%w: expected %d rows, got %d", ErrInvalidBoard, meta.SIZE, len(rows))
	}
	for i, row := range rows {
		row = strings.TrimRight(row, "\r")
		cells := []rune(row)
		if len(cells) != meta.SIZE {
			return b, fmt.Errorf("%w: row %d has %d cells", ErrInvalidBoard, i, len(cells))
		}
		for j, r := range cells {
			c, err := ParseCell(r)
			if err != nil {
				return b, fmt.Errorf("%w: row %d: %v", ErrInvalidBoard, i, err)
			}
			b[i][j] = c
		}
	}
	return b, b.Validate()
}

func MustParseBoard(s string) Board {
	b, err := ParseBoard(s)
	if err != nil {
		panic(err)
	}
	return b
}
