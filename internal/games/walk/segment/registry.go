package segment

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-walk/internal/games/walk/obstacle"
)

// Generator builds the obstacles of one segment starting at offsetX. It must
// draw all of its randomness from rng and never place an obstacle whose right
// edge is behind offsetX.
type Generator func(kit *Kit, rng *rand.Rand, offsetX int) []obstacle.Obstacle

// Segment is the output of one generator call.
type Segment struct {
	Name      string
	Obstacles []obstacle.Obstacle
	RightEdge int // Rightmost x across Obstacles, or the offset when empty
}

var (
	generators = make(map[string]Generator)
	mu         sync.RWMutex
)

// Register adds a generator under name. Typically called from init().
// Panics if name is already registered.
func Register(name string, g Generator) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := generators[name]; exists {
		panic(fmt.Sprintf("segment: generator %q already registered", name))
	}
	generators[name] = g
}

// Names returns every registered generator name, sorted.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(generators))
	for name := range generators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Exists checks if a generator with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := generators[name]
	return ok
}

// Generate runs the named generator.
func Generate(name string, kit *Kit, rng *rand.Rand, offsetX int) (Segment, error) {
	mu.RLock()
	g, ok := generators[name]
	mu.RUnlock()
	if !ok {
		return Segment{}, fmt.Errorf("segment: unknown generator %q", name)
	}
	return build(name, g, kit, rng, offsetX), nil
}

// Random picks a generator uniformly with rng and runs it. Selection walks
// the sorted name list so a seed always picks the same sequence.
func Random(kit *Kit, rng *rand.Rand, offsetX int) Segment {
	names := Names()
	name := names[rng.Intn(len(names))]

	mu.RLock()
	g := generators[name]
	mu.RUnlock()
	return build(name, g, kit, rng, offsetX)
}

func build(name string, g Generator, kit *Kit, rng *rand.Rand, offsetX int) Segment {
	obstacles := g(kit, rng, offsetX)
	right := offsetX
	for _, o := range obstacles {
		right = max(right, o.RightEdge())
	}
	return Segment{Name: name, Obstacles: obstacles, RightEdge: right}
}
