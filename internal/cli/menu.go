package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Console reads trimmed lines from in and writes prompts to out.
type Console struct {
	scanner *bufio.Scanner
	out     io.Writer
	closed  bool
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// ReadLine prints prompt and returns the next input line. ok is false once input is exhausted.
func (c *Console) ReadLine(prompt string) (line string, ok bool) {
	fmt.Fprint(c.out, prompt)
	if c.closed || !c.scanner.Scan() {
		c.closed = true
		return "", false
	}
	return strings.TrimSpace(c.scanner.Text()), true
}

func (c *Console) Println(a ...interface{}) {
	fmt.Fprintln(c.out, a...)
}

func (c *Console) Printf(format string, a ...interface{}) {
	fmt.Fprintf(c.out, format, a...)
}

func (c *Console) Closed() bool {
	return c.closed
}

//------------------------------------------
//------------------------------------------

type Option struct {
	Title  string
	Action func(param int64)
	Param  int64
}

// Menu is a numbered list of options followed by an Exit entry at len(Options)+1.
// ShouldExit, when set, is asked after every action whether the loop is done.
type Menu struct {
	Title      string
	Options    []Option
	ShouldExit func(choice int, exitOption int) bool
}

func (m *Menu) ExitOption() int {
	return len(m.Options) + 1
}

func (m *Menu) display(console *Console) {
	console.Printf("\n%s\n\n", m.Title)
	for i, option := range m.Options {
		console.Printf("%d: %s\n", i+1, option.Title)
	}
	console.Printf("%d: Exit\n", m.ExitOption())
}

// Loop shows the menu until a valid choice ends it and returns that choice.
// Without ShouldExit the loop ends after the first action.
// Exhausted input counts as choosing Exit.
func (m *Menu) Loop(console *Console) int {
	exitOption := m.ExitOption()
	for {
		m.display(console)
		line, ok := console.ReadLine("\nPlease choose an option: ")
		if !ok {
			return exitOption
		}

		choice, err := strconv.Atoi(line)
		if err != nil {
			console.Println("Sorry, you must enter a numerical value. Please try again.")
			continue
		}
		if choice < 1 || choice > exitOption {
			console.Println("Sorry, choice must be from the list. Please try again.")
			continue
		}
		if choice == exitOption {
			return choice
		}

		option := m.Options[choice-1]
		if option.Action != nil {
			option.Action(option.Param)
		}
		if m.ShouldExit == nil || m.ShouldExit(choice, exitOption) || console.Closed() {
			return choice
		}
	}
}
