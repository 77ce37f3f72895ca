package ipc

import (
	"errors"
	"testing"

	"github.com/nstehr/foundry/model"
)

func TestParseEntityLayouts(t *testing.T) {
	tests := []struct {
		line string
		want Entity
	}{
		{"FACTORY 0 1 10 3", Entity{ID: 0, Kind: KindFactory, Args: []int{1, 10, 3}}},
		{"0 FACTORY 1 10 3 0 0", Entity{ID: 0, Kind: KindFactory, Args: []int{1, 10, 3}}},
		{"  7 TROOP -1 2 4 12 3  ", Entity{ID: 7, Kind: KindTroop, Args: []int{-1, 2, 4, 12, 3}}},
		{"TROOP 7 1 2 4 12 3", Entity{ID: 7, Kind: KindTroop, Args: []int{1, 2, 4, 12, 3}}},
	}
	for _, tc := range tests {
		got, known, err := ParseEntity(tc.line)
		if err != nil || !known {
			t.Errorf("ParseEntity(%q) = known %v, err %v", tc.line, known, err)
			continue
		}
		if got.ID != tc.want.ID || got.Kind != tc.want.Kind || !equalInts(got.Args, tc.want.Args) {
			t.Errorf("ParseEntity(%q) = %+v, want %+v", tc.line, got, tc.want)
		}
	}
}

func TestParseEntityUnknownKind(t *testing.T) {
	for _, line := range []string{"12 BOMB 1 2 3 -1 0", "BOMB x y", "hello world", "BOMB", "  42  "} {
		e, known, err := ParseEntity(line)
		if err != nil {
			t.Errorf("ParseEntity(%q) err = %v, want nil", line, err)
		}
		if known {
			t.Errorf("ParseEntity(%q) reported known kind %q", line, e.Kind)
		}
	}
}

func TestParseEntityMalformed(t *testing.T) {
	for _, line := range []string{
		"",
		"FACTORY",
		"FACTORY x 1 2 3",
		"FACTORY 0 1 2",
		"0 TROOP 1 2 3 four 5",
	} {
		if _, _, err := ParseEntity(line); !errors.Is(err, ErrMalformed) {
			t.Errorf("ParseEntity(%q) err = %v, want ErrMalformed", line, err)
		}
	}
}

func TestEntityApply(t *testing.T) {
	gs := model.NewGameState(3)

	f := Entity{ID: 1, Kind: KindFactory, Args: []int{-1, 9, 2}}
	if err := f.Apply(gs); err != nil {
		t.Fatal(err)
	}
	if got := gs.Factories[1]; got.Owner != -1 || got.Bots != 9 || got.Production != 2 {
		t.Errorf("factory 1 = %+v", got)
	}

	tr := Entity{ID: 40, Kind: KindTroop, Args: []int{1, 0, 2, 6, 3}}
	if err := tr.Apply(gs); err != nil {
		t.Fatal(err)
	}
	in := gs.Factories[2].Incoming
	if len(in) != 1 || in[0] != (model.Troop{Owner: 1, Bots: 6, Turns: 3}) {
		t.Errorf("incoming of 2 = %+v", in)
	}

	bad := Entity{ID: 5, Kind: KindFactory, Args: []int{1, 1, 1}}
	if err := bad.Apply(gs); !errors.Is(err, model.ErrUnknownFactory) {
		t.Errorf("Apply out of range = %v, want ErrUnknownFactory", err)
	}
}

func TestParseLink(t *testing.T) {
	l, err := parseLink("0 1 5")
	if err != nil || l != (Link{A: 0, B: 1, Distance: 5}) {
		t.Errorf("parseLink = %+v, %v", l, err)
	}
	for _, line := range []string{"0 1", "0 1 x", "0 1 2 3"} {
		if _, err := parseLink(line); !errors.Is(err, ErrMalformed) {
			t.Errorf("parseLink(%q) err = %v, want ErrMalformed", line, err)
		}
	}
}

func TestParseCount(t *testing.T) {
	if n, err := parseCount(" 4 \r"); err != nil || n != 4 {
		t.Errorf("parseCount = %d, %v", n, err)
	}
	for _, line := range []string{"", "-1", "three"} {
		if _, err := parseCount(line); !errors.Is(err, ErrMalformed) {
			t.Errorf("parseCount(%q) err = %v, want ErrMalformed", line, err)
		}
	}
}

func TestEncodeOrders(t *testing.T) {
	if got := EncodeOrders(nil); got != "WAIT" {
		t.Errorf("EncodeOrders(nil) = %q, want WAIT", got)
	}
	got := EncodeOrders([]model.Move{{Src: 0, Dst: 1, Bots: 2}, {Src: 3, Dst: 2, Bots: 7}})
	if got != "MOVE 0 1 2;MOVE 3 2 7" {
		t.Errorf("EncodeOrders = %q", got)
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
