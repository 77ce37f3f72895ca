package ipc

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/nstehr/foundry/model"
)

// TurnHandler decides the orders for a freshly read turn.
type TurnHandler func(gs *model.GameState) []model.Move

// Connection is the game referee on the other end of stdin/stdout.
type Connection struct {
	in   *bufio.Scanner
	out  *bufio.Writer
	line int
}

func NewConnection(r io.Reader, w io.Writer) *Connection {
	in := bufio.NewScanner(r)
	in.Buffer(make([]byte, 0, 64*1024), 1<<20)
	return &Connection{in: in, out: bufio.NewWriter(w)}
}

// readLine returns the next input line. io.EOF is passed through untouched
// so callers can tell a finished game from a truncated one.
func (c *Connection) readLine() (string, error) {
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", fmt.Errorf("read line %d: %w", c.line+1, err)
		}
		return "", io.EOF
	}
	c.line++
	return c.in.Text(), nil
}

// mustReadLine is readLine for lines that have to be there.
func (c *Connection) mustReadLine() (string, error) {
	s, err := c.readLine()
	if errors.Is(err, io.EOF) {
		return "", fmt.Errorf("line %d: %w: %w", c.line+1, ErrMalformed, io.ErrUnexpectedEOF)
	}
	return s, err
}

// ReadSetup consumes the startup block and builds the game state with its
// distance matrix.
func (c *Connection) ReadSetup() (*model.GameState, error) {
	setup, err := c.readSetup()
	if err != nil {
		return nil, err
	}
	gs, err := setup.Build()
	if err != nil {
		return nil, err
	}
	log.Info().Int("factories", setup.FactoryCount).Int("links", len(setup.Links)).Msg("graph loaded")
	return gs, nil
}

func (c *Connection) readSetup() (Setup, error) {
	line, err := c.mustReadLine()
	if err != nil {
		return Setup{}, err
	}
	count, err := parseCount(line)
	if err != nil {
		return Setup{}, fmt.Errorf("factory count: %w", err)
	}
	if line, err = c.mustReadLine(); err != nil {
		return Setup{}, err
	}
	links, err := parseCount(line)
	if err != nil {
		return Setup{}, fmt.Errorf("link count: %w", err)
	}

	setup := Setup{FactoryCount: count, Links: make([]Link, 0, links)}
	for i := 0; i < links; i++ {
		line, err := c.mustReadLine()
		if err != nil {
			return Setup{}, err
		}
		l, err := parseLink(line)
		if err != nil {
			return Setup{}, fmt.Errorf("line %d: %w", c.line, err)
		}
		setup.Links = append(setup.Links, l)
	}
	return setup, nil
}

// ReadTurn resets gs and fills it from the next turn block. It returns
// io.EOF when the input ends cleanly before a new turn.
func (c *Connection) ReadTurn(gs *model.GameState) error {
	line, err := c.readLine()
	if err != nil {
		return err
	}
	count, err := parseCount(line)
	if err != nil {
		return fmt.Errorf("entity count: %w", err)
	}

	gs.Reset()
	for i := 0; i < count; i++ {
		line, err := c.mustReadLine()
		if err != nil {
			return err
		}
		e, known, err := ParseEntity(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", c.line, err)
		}
		if !known {
			log.Debug().Str("kind", e.Kind).Int("line", c.line).Msg("skipping unknown entity")
			continue
		}
		if err := e.Apply(gs); err != nil {
			return fmt.Errorf("line %d: %w", c.line, err)
		}
	}
	return nil
}

// Send writes one turn's orders and flushes, the referee blocks on it.
func (c *Connection) Send(moves []model.Move) error {
	if _, err := fmt.Fprintln(c.out, EncodeOrders(moves)); err != nil {
		return fmt.Errorf("write orders: %w", err)
	}
	if err := c.out.Flush(); err != nil {
		return fmt.Errorf("flush orders: %w", err)
	}
	return nil
}

// ReadLoop blocks until the input ends or a turn cannot be read, answering
// every turn through handle. A clean end of input returns nil.
func (c *Connection) ReadLoop(gs *model.GameState, handle TurnHandler) error {
	for {
		err := c.ReadTurn(gs)
		if errors.Is(err, io.EOF) {
			log.Info().Int("turns", gs.Turn).Msg("input closed")
			return nil
		}
		if err != nil {
			return err
		}
		if err := c.Send(handle(gs)); err != nil {
			return err
		}
	}
}
