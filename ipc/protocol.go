package ipc

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/nstehr/foundry/model"
)

// ErrMalformed wraps every unrecoverable input problem.
var ErrMalformed = errors.New("malformed input")

// ParseEntity reads one turn record. Both "<id> <KIND> args..." (the game's
// layout) and "<KIND> <id> args..." are accepted. Unknown kinds come back
// with known=false and are not validated further.
func ParseEntity(line string) (e Entity, known bool, err error) {
	fields := strings.Fields(line)
	switch len(fields) {
	case 0:
		return Entity{}, false, fmt.Errorf("entity %q: %w", line, ErrMalformed)
	case 1:
		if _, known := argCount[fields[0]]; known {
			return Entity{}, false, fmt.Errorf("entity %q: %w", line, ErrMalformed)
		}
		return Entity{Kind: fields[0]}, false, nil
	}

	idTok, kind := fields[1], fields[0]
	if _, err := strconv.Atoi(fields[0]); err == nil {
		idTok, kind = fields[0], fields[1]
	}

	want, known := argCount[kind]
	if !known {
		return Entity{Kind: kind}, false, nil
	}

	id, err := strconv.Atoi(idTok)
	if err != nil {
		return Entity{}, false, fmt.Errorf("entity %q id: %w", line, ErrMalformed)
	}
	if len(fields)-2 < want {
		return Entity{}, false, fmt.Errorf("entity %q: %s needs %d fields: %w", line, kind, want, ErrMalformed)
	}
	args, err := parseInts(fields[2 : 2+want])
	if err != nil {
		return Entity{}, false, fmt.Errorf("entity %q: %w", line, err)
	}
	return Entity{ID: id, Kind: kind, Args: args}, true, nil
}

// Apply writes a known entity into the turn state.
func (e Entity) Apply(gs *model.GameState) error {
	switch e.Kind {
	case KindFactory:
		return gs.ApplyFactory(e.ID, e.Args[0], e.Args[1], e.Args[2])
	case KindTroop:
		dst := e.Args[2]
		return gs.AddTroop(dst, model.Troop{
			Owner: e.Args[0],
			Bots:  e.Args[3],
			Turns: e.Args[4],
		})
	}
	return nil
}

// parseLink reads an "a b distance" startup record.
func parseLink(line string) (Link, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return Link{}, fmt.Errorf("link %q: %w", line, ErrMalformed)
	}
	v, err := parseInts(fields)
	if err != nil {
		return Link{}, fmt.Errorf("link %q: %w", line, err)
	}
	return Link{A: v[0], B: v[1], Distance: v[2]}, nil
}

// parseCount reads a line holding a single non-negative integer.
func parseCount(line string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || n < 0 {
		return 0, fmt.Errorf("count %q: %w", line, ErrMalformed)
	}
	return n, nil
}

func parseInts(tokens []string) ([]int, error) {
	out := make([]int, len(tokens))
	for i, tok := range tokens {
		n, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("token %q: %w", tok, ErrMalformed)
		}
		out[i] = n
	}
	return out, nil
}
