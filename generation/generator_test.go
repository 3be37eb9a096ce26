package generation

import (
	"errors"
	"testing"
)

func defaultParams() Params {
	return Params{
		Generations:   3,
		Substitutions: 5,
		SmallPruned:   0,
		BigPruned:     1,
		Width:         700,
		Height:        450,
	}
}

func count(t *testing.T, p Params) int {
	t.Helper()
	tiles, err := Generate(p)
	if err != nil {
		t.Fatalf("Expected no error for %+v, got %v", p, err)
	}
	return len(tiles)
}

// TestGenerateZeroGenerations verifies n = 0 yields the prototile alone
func TestGenerateZeroGenerations(t *testing.T) {
	for _, k := range []int{0, 1, 5} {
		p := defaultParams()
		p.Generations = 0
		p.Substitutions = k
		p.SmallPruned = 3

		tiles, err := Generate(p)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if len(tiles) != 1 || tiles[0] != Prototile(700, 450) {
			t.Errorf("Expected only the prototile for k=%d, got %+v", k, tiles)
		}
	}
}

// TestGenerateSingleStep verifies one generation of one substitution
func TestGenerateSingleStep(t *testing.T) {
	p := Params{Generations: 1, Substitutions: 1, Width: 700, Height: 450}

	tiles, err := Generate(p)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(tiles) != 1 {
		t.Fatalf("Expected 1 tile, got %d", len(tiles))
	}

	want := Deflate([]Tile{Prototile(700, 450)}, 1)[0]
	if tiles[0] != want {
		t.Errorf("Expected %+v, got %+v", want, tiles[0])
	}
}

// TestGenerateUnprunedMatchesDeflate verifies both branches advance k steps
func TestGenerateUnprunedMatchesDeflate(t *testing.T) {
	p := Params{Generations: 2, Substitutions: 3, Width: 700, Height: 450}

	tiles, err := Generate(p)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	deflated := Deflate([]Tile{Prototile(700, 450)}, 6)

	if len(tiles) != len(deflated) {
		t.Fatalf("Expected %d tiles, got %d", len(deflated), len(tiles))
	}

	poses := make(map[pose]bool, len(deflated))
	for _, d := range deflated {
		poses[d.pose()] = true
	}
	for _, tile := range tiles {
		if !poses[tile.pose()] {
			t.Errorf("Expected %+v to appear in the six-step deflation", tile)
		}
	}

	if len(tiles) != p.UpperBound() {
		t.Errorf("Expected unpruned count to reach the bound %d, got %d", p.UpperBound(), len(tiles))
	}
}

// TestGenerateZeroSubstitutions verifies the k = 0 edge
func TestGenerateZeroSubstitutions(t *testing.T) {
	p := Params{Generations: 3, Substitutions: 0, Width: 700, Height: 450}
	if got := count(t, p); got != 1 {
		t.Errorf("Expected the small seed to stay alone, got %d tiles", got)
	}

	p.SmallPruned = 1
	if got := count(t, p); got != 0 {
		t.Errorf("Expected the seed to be pruned away, got %d tiles", got)
	}
}

// TestGenerateDefault verifies the default run stays below its bound
func TestGenerateDefault(t *testing.T) {
	p := defaultParams()
	got := count(t, p)

	if got == 0 {
		t.Fatal("Expected tiles from the default run")
	}
	if got >= p.UpperBound() {
		t.Errorf("Expected pruning to keep %d below the bound %d", got, p.UpperBound())
	}
}

// TestGenerateDeterministic verifies identical inputs give identical output
func TestGenerateDeterministic(t *testing.T) {
	first, err := Generate(defaultParams())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	second, _ := Generate(defaultParams())

	if len(first) != len(second) {
		t.Fatalf("Expected equal lengths, got %d and %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("Expected tile %d to match, got %+v and %+v", i, first[i], second[i])
		}
	}
}

// TestGenerateMonotonicInDepth verifies counts never drop as n or k grow without pruning
func TestGenerateMonotonicInDepth(t *testing.T) {
	counts := make([][]int, 5)
	for n := range counts {
		counts[n] = make([]int, 5)
		for k := range counts[n] {
			counts[n][k] = count(t, Params{Generations: n, Substitutions: k, Width: 700, Height: 450})
		}
	}

	for n := 0; n < 5; n++ {
		for k := 0; k < 5; k++ {
			if n > 0 && counts[n][k] < counts[n-1][k] {
				t.Errorf("Expected count(n=%d, k=%d)=%d >= count(n=%d)=%d", n, k, counts[n][k], n-1, counts[n-1][k])
			}
			if k > 0 && counts[n][k] < counts[n][k-1] {
				t.Errorf("Expected count(n=%d, k=%d)=%d >= count(k=%d)=%d", n, k, counts[n][k], k-1, counts[n][k-1])
			}
		}
	}
}

// TestGenerateMonotonicInPruning verifies counts never grow as a or b grow
func TestGenerateMonotonicInPruning(t *testing.T) {
	base := Params{Generations: 2, Substitutions: 4, Width: 700, Height: 450}

	counts := make([][]int, 4)
	for a := range counts {
		counts[a] = make([]int, 4)
		for b := range counts[a] {
			p := base
			p.SmallPruned = a
			p.BigPruned = b
			counts[a][b] = count(t, p)
		}
	}

	for a := 0; a < 4; a++ {
		for b := 0; b < 4; b++ {
			if a > 0 && counts[a][b] > counts[a-1][b] {
				t.Errorf("Expected count(a=%d, b=%d)=%d <= count(a=%d)=%d", a, b, counts[a][b], a-1, counts[a-1][b])
			}
			if b > 0 && counts[a][b] > counts[a][b-1] {
				t.Errorf("Expected count(a=%d, b=%d)=%d <= count(b=%d)=%d", a, b, counts[a][b], b-1, counts[a][b-1])
			}
		}
	}
}

// TestGenerateRejectsInvalidParameters verifies validation happens first
func TestGenerateRejectsInvalidParameters(t *testing.T) {
	p := defaultParams()
	p.Substitutions = -1

	tiles, err := Generate(p)
	if !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("Expected ErrInvalidParameter, got %v", err)
	}
	if tiles != nil {
		t.Errorf("Expected no tiles, got %d", len(tiles))
	}
}

// TestGenerateTileLimit verifies the ceiling fails the run
func TestGenerateTileLimit(t *testing.T) {
	p := Params{Generations: 4, Substitutions: 5, Width: 700, Height: 450, MaxTiles: 50}

	_, err := Generate(p)
	if !errors.Is(err, ErrTileLimit) {
		t.Errorf("Expected ErrTileLimit, got %v", err)
	}

	p.MaxTiles = p.UpperBound()
	if _, err := Generate(p); err != nil {
		t.Errorf("Expected the run to fit its own bound, got %v", err)
	}
}

// TestEvolveNonPositive verifies the base case returns the input
func TestEvolveNonPositive(t *testing.T) {
	seed := []Tile{{Type: Big, X: 1, Size: 1, Sign: 1}}
	for _, n := range []int{0, -2} {
		got := Evolve(seed, n, 3, 0, 0)
		if len(got) != 1 || got[0] != seed[0] {
			t.Errorf("Expected input unchanged for n=%d, got %+v", n, got)
		}
	}
}

// TestEvolveBigBranch verifies a big seed takes k-1 steps, a prune, then one more
func TestEvolveBigBranch(t *testing.T) {
	seed := []Tile{{Type: Big, X: 0, Y: 0, Angle: 0, Size: 1, Sign: 1}}

	got := Evolve(seed, 1, 3, 1, 0)
	want := Deflate(Prune(Deflate(seed, 2), 1, 0), 1)

	if len(got) != len(want) {
		t.Fatalf("Expected %d tiles, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Expected tile %d to be %+v, got %+v", i, want[i], got[i])
		}
	}
}
