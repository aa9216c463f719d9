// Package launcher implements the interactive entry menu: a dispatch table
// from a typed selection to the collaborator that handles it.
package launcher

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrExit is returned by an Option's Run to leave the menu.
var ErrExit = errors.New("exit")

// Action runs one menu choice. It may read further answers from in.
type Action func(ctx context.Context, in *bufio.Reader, out io.Writer) error

// Option is one menu entry.
type Option struct {
	Key         string
	Label       string
	Description []string
	Run         Action
}

// Menu is an ordered set of options.
type Menu struct {
	Title   string
	Options []Option

	// Repeat keeps the menu open after a successful action. By default the
	// menu returns after the first action, like a launcher.
	Repeat bool
}

// Lookup returns the option for key.
func (m *Menu) Lookup(key string) (Option, bool) {
	key = strings.TrimSpace(key)
	for _, o := range m.Options {
		if o.Key == key {
			return o, true
		}
	}
	return Option{}, false
}

// Render writes the menu.
func (m *Menu) Render(out io.Writer) {
	rule := strings.Repeat("=", 50)
	fmt.Fprintf(out, "\n%s\n  %s\n%s\n", rule, m.Title, rule)
	fmt.Fprintln(out, "Choose your preferred interface:")
	fmt.Fprintln(out)
	for _, o := range m.Options {
		fmt.Fprintf(out, "%s. %s\n", o.Key, o.Label)
		for _, d := range o.Description {
			fmt.Fprintf(out, "   - %s\n", d)
		}
		if len(o.Description) > 0 {
			fmt.Fprintln(out)
		}
	}
	fmt.Fprintln(out, rule)
}

// Run shows the menu, reads a selection from in and dispatches it.
// Invalid selections re-prompt. End of input, context cancellation or an
// action returning ErrExit end the menu without error.
func (m *Menu) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	r := bufio.NewReader(in)
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		m.Render(out)
		fmt.Fprintf(out, "\nEnter your choice (%s): ", m.keyRange())

		line, err := ReadLine(r)
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(out)
				return nil
			}
			return err
		}

		opt, ok := m.Lookup(line)
		if !ok || opt.Run == nil {
			fmt.Fprintf(out, "Invalid choice. Please enter %s.\n", m.keyList())
			continue
		}

		err = opt.Run(ctx, r, out)
		switch {
		case errors.Is(err, ErrExit):
			return nil
		case err != nil:
			return err
		case !m.Repeat:
			return nil
		}
	}
}

// ReadLine reads one line and trims surrounding whitespace. A final line
// without a newline is returned normally; io.EOF is only returned when
// nothing was read.
func ReadLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Prompt writes question and reads the answer.
func Prompt(r *bufio.Reader, out io.Writer, question string) (string, error) {
	fmt.Fprint(out, question)
	return ReadLine(r)
}

func (m *Menu) keyRange() string {
	if len(m.Options) == 0 {
		return ""
	}
	return m.Options[0].Key + "-" + m.Options[len(m.Options)-1].Key
}

func (m *Menu) keyList() string {
	keys := make([]string, len(m.Options))
	for i, o := range m.Options {
		keys[i] = o.Key
	}
	switch len(keys) {
	case 0:
		return ""
	case 1:
		return keys[0]
	}
	return strings.Join(keys[:len(keys)-1], ", ") + ", or " + keys[len(keys)-1]
}
