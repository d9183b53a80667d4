package render

import (
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-engine/internal/board"
)

const (
	colorX = "1" // red
	colorO = "4" // blue
)

// Renderer draws boards for a terminal, colouring marks when the terminal supports it.
type Renderer struct {
	output *termenv.Output
}

// New - detects the colour profile of w.
func New(w io.Writer) *Renderer {
	return NewWithOutput(termenv.NewOutput(w))
}

func NewWithOutput(output *termenv.Output) *Renderer {
	return &Renderer{output: output}
}

// Board - returns the bordered grid with every X and O coloured.
func (that *Renderer) Board(content board.Content) string {
	grid := content.String()

	var sb strings.Builder
	sb.Grow(len(grid))

	for _, r := range grid {
		switch r {
		case board.X.Rune():
			sb.WriteString(that.output.String(string(r)).Foreground(that.output.Color(colorX)).String())
		case board.O.Rune():
			sb.WriteString(that.output.String(string(r)).Foreground(that.output.Color(colorO)).String())
		default:
			sb.WriteRune(r)
		}
	}

	return sb.String()
}

// Message - returns s in bold when the terminal supports it.
func (that *Renderer) Message(s string) string {
	return that.output.String(s).Bold().String()
}

// Error - returns s in red when the terminal supports it.
func (that *Renderer) Error(s string) string {
	return that.output.String(s).Foreground(that.output.Color(colorX)).String()
}

// Write - writes s to the underlying writer.
func (that *Renderer) Write(s string) error {
	_, err := io.WriteString(that.output, s)
	return err
}
