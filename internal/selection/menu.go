package selection

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"oppstrength/internal/transfermarkt"

	"github.com/chzyer/readline"
)

const Prompt = "Enter 1, 2, or 3: "

// ErrNoInput is returned when the input ends or is interrupted before a valid choice.
var ErrNoInput = errors.New("no competition selected")

type LineReader interface {
	Readline() (string, error)
}

// NewPrompt creates a terminal line reader showing Prompt, callers must Close it.
func NewPrompt() (*readline.Instance, error) {
	return readline.NewEx(&readline.Config{
		Prompt:          Prompt,
		InterruptPrompt: "^C",
		EOFPrompt:       "\n",
	})
}

func printMenu(out io.Writer) {
	fmt.Fprintln(out, "Select competition:")
	for i, c := range transfermarkt.Competitions {
		fmt.Fprintf(out, "%d. %s\n", i+1, c.Name)
	}
}

// Select shows the competition menu until a valid choice is entered.
// Only the exact menu numbers are accepted, surrounding whitespace is ignored.
func Select(r LineReader, out io.Writer) (transfermarkt.Competition, error) {
	for {
		printMenu(out)

		line, err := r.Readline()
		if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
			return transfermarkt.Competition{}, ErrNoInput
		}
		if err != nil {
			return transfermarkt.Competition{}, err
		}

		choice := strings.TrimSpace(line)
		switch choice {
		case "1", "2", "3":
			c, _ := transfermarkt.LookupCompetition(choice)
			return c, nil
		}
		fmt.Fprintln(out, "Invalid choice. Please enter 1, 2, or 3.")
		fmt.Fprintln(out)
	}
}
