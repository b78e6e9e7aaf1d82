package bfs

import (
	"github.com/katalvlaran/metro/core"
)

// queueItem pairs a station with its depth.
type queueItem struct {
	name  string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	net     *core.Network
	opts    Options
	queue   []queueItem
	visited map[string]bool
	res     *Result
}

// BFS runs breadth-first search from start. An unknown start (or nil
// network) yields an empty Result.
func BFS(n *core.Network, start string, opts ...Option) *Result {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	res := &Result{
		Order:  []string{},
		Depth:  map[string]int{},
		Parent: map[string]string{},
	}
	if n == nil || !n.HasStation(start) {
		return res
	}

	w := &walker{net: n, opts: o, visited: map[string]bool{}, res: res}
	w.run(start)

	return res
}

// Components returns the connected components of n: one BFS per
// not-yet-visited station, in station insertion order.
func Components(n *core.Network) [][]string {
	components := [][]string{}
	if n == nil {
		return components
	}
	visited := map[string]bool{}
	for _, name := range n.Stations() {
		if visited[name] {
			continue
		}
		w := &walker{
			net:     n,
			visited: visited,
			res:     &Result{Order: []string{}, Depth: map[string]int{}, Parent: map[string]string{}},
		}
		w.run(name)
		components = append(components, w.res.Order)
	}

	return components
}

// run seeds the queue with start and drains it.
func (w *walker) run(start string) {
	w.enqueue(start, 0, "")
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.name)
		if w.opts.OnVisit != nil {
			w.opts.OnVisit(item.name, item.depth)
		}
		if w.opts.MaxDepth > 0 && item.depth >= w.opts.MaxDepth {
			continue
		}
		neighbors, _ := w.net.Neighbors(item.name)
		for _, nb := range neighbors {
			if !w.visited[nb.Name] {
				w.enqueue(nb.Name, item.depth+1, item.name)
			}
		}
	}
}

// enqueue marks name visited and records its depth and parent.
func (w *walker) enqueue(name string, depth int, parent string) {
	w.visited[name] = true
	w.res.Depth[name] = depth
	if parent != "" {
		w.res.Parent[name] = parent
	}
	w.queue = append(w.queue, queueItem{name: name, depth: depth})
}
