package order

import (
	"errors"
	"sort"
	"strings"

	"github.com/hashicorp/go-set/v3"

	"github.com/roach88/rbin/internal/algebra"
	"github.com/roach88/rbin/internal/ir"
)

// ErrNotLattice indicates a structure without binary meet and join.
var ErrNotLattice = errors.New("order: structure has no binary meet and join")

// Edge is a covering pair of a Hasse diagram: Upper covers Lower.
type Edge struct {
	Upper string `json:"upper"`
	Lower string `json:"lower"`
}

func requireLattice(s *algebra.Structure) error {
	for _, name := range []string{"meet", "join"} {
		op, ok := s.Operation(name)
		if !ok || op.Arity() != 2 {
			return ErrNotLattice
		}
	}
	return nil
}

// relation returns, for every x, the elements y != x with op(x, y) = y,
// listed in symbol order.
func relation(s *algebra.Structure, name string) map[string][]string {
	symbols := s.Symbols()
	rel := make(map[string][]string, len(symbols))
	for _, x := range symbols {
		rel[x] = []string{}
		for _, y := range symbols {
			if v, _ := s.Apply2(name, x, y); v == y && x != y {
				rel[x] = append(rel[x], y)
			}
		}
	}
	return rel
}

// More maps every element to the elements strictly below it.
func More(s *algebra.Structure) (map[string][]string, error) {
	if err := requireLattice(s); err != nil {
		return nil, err
	}
	return relation(s, "meet"), nil
}

// Less maps every element to the elements strictly above it.
func Less(s *algebra.Structure) (map[string][]string, error) {
	if err := requireLattice(s); err != nil {
		return nil, err
	}
	return relation(s, "join"), nil
}

// Rank lists the elements by ascending number of elements below them,
// ties broken by name.
func Rank(s *algebra.Structure) ([]string, error) {
	more, err := More(s)
	if err != nil {
		return nil, err
	}
	return rank(more), nil
}

func rank(more map[string][]string) []string {
	ranked := make([]string, 0, len(more))
	for x := range more {
		ranked = append(ranked, x)
	}
	sort.Slice(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if len(more[a]) != len(more[b]) {
			return len(more[a]) < len(more[b])
		}
		return a < b
	})
	return ranked
}

// CanonicalNames returns n names in rank order: BOT first, TOP last and
// letters in between. Middle names sort lexicographically in the order
// they are handed out.
func CanonicalNames(n int) []string {
	if n <= 0 {
		return []string{}
	}
	names := make([]string, 0, n)
	names = append(names, ir.BOT)
	for i := 0; i < n-2; i++ {
		names = append(names, middleName(i))
	}
	if n > 1 {
		names = append(names, ir.TOP)
	}
	return names
}

func middleName(i int) string {
	return strings.Repeat("z", i/26) + string(rune('a'+i%26))
}

// CanonicalMap zips the rank order with CanonicalNames.
func CanonicalMap(s *algebra.Structure) (map[string]string, error) {
	ranked, err := Rank(s)
	if err != nil {
		return nil, err
	}
	names := CanonicalNames(len(ranked))
	mapping := make(map[string]string, len(ranked))
	for i, x := range ranked {
		mapping[x] = names[i]
	}
	return mapping, nil
}

// Canonise renames the structure's elements canonically in place.
func Canonise(s *algebra.Structure) error {
	mapping, err := CanonicalMap(s)
	if err != nil {
		return err
	}
	return s.RemapSymbols(mapping)
}

// Hasse returns the covering relation: for every element, the elements
// below it that are not below another element below it. Edges are ordered
// by descending number of elements below the upper element, then by
// symbol order of the upper and lower elements.
func Hasse(s *algebra.Structure) ([]Edge, error) {
	more, err := More(s)
	if err != nil {
		return nil, err
	}
	symbols := s.Symbols()

	below := make(map[string]*set.Set[string], len(more))
	for x, ys := range more {
		below[x] = set.From(ys)
	}

	uppers := make([]string, len(symbols))
	copy(uppers, symbols)
	sort.SliceStable(uppers, func(i, j int) bool {
		return len(more[uppers[i]]) > len(more[uppers[j]])
	})

	edges := []Edge{}
	for _, upper := range uppers {
		nearest := below[upper].Copy()
		for _, lower := range more[upper] {
			nearest.RemoveSet(below[lower])
		}
		for _, lower := range symbols {
			if nearest.Contains(lower) {
				edges = append(edges, Edge{Upper: upper, Lower: lower})
			}
		}
	}
	return edges, nil
}
