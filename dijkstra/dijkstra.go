package dijkstra

import (
	"container/heap"
	"math"
	"sort"

	"github.com/katalvlaran/metro/core"
)

// ShortestPath computes the minimum-distance route from source to
// destination. Unknown stations or an unreachable destination return the
// NoPath sentinel; source == destination returns a one-station path with
// zero distance and zero transfers.
//
// Complexity: O((V + E) log V).
func ShortestPath(n *core.Network, source, destination string, opts ...Option) PathResult {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if n == nil || !n.HasStation(source) || !n.HasStation(destination) {
		return noPath()
	}

	stations := n.Stations()
	r := &runner{
		net:     n,
		target:  destination,
		dist:    make(map[string]float64, len(stations)),
		prev:    make(map[string]string, len(stations)),
		visited: make(map[string]bool, len(stations)),
		pq:      make(nodePQ, 0, len(stations)),
	}
	for _, s := range stations {
		r.dist[s] = math.Inf(1)
	}
	r.dist[source] = 0
	heap.Init(&r.pq)
	r.push(source, 0)
	r.process()

	if math.IsInf(r.dist[destination], 1) {
		return noPath()
	}

	res := PathResult{Distance: r.dist[destination]}
	res.Path = r.reconstruct(source, destination)
	annotate(n, &res)
	res.Fare = cfg.Fare(res.Distance, res.MaxZone)

	return res
}

// runner holds the mutable state for a single search.
type runner struct {
	net     *core.Network
	target  string
	dist    map[string]float64
	prev    map[string]string
	visited map[string]bool
	pq      nodePQ
	seq     uint64
}

// process pops the closest station until the heap is empty or the target
// has been finalized.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id
		if r.visited[u] {
			continue // stale entry
		}
		r.visited[u] = true
		if u == r.target {
			return
		}
		if item.dist > r.dist[u] {
			continue
		}
		r.relax(u)
	}
}

// relax improves every unfinished neighbour of u reachable through u.
func (r *runner) relax(u string) {
	neighbors, _ := r.net.Neighbors(u)
	for _, nb := range neighbors {
		if r.visited[nb.Name] {
			continue
		}
		d, known := r.dist[nb.Name]
		if !known {
			// station added after the search started
			continue
		}
		if alt := r.dist[u] + nb.Distance; alt < d {
			r.dist[nb.Name] = alt
			r.prev[nb.Name] = u
			r.push(nb.Name, alt)
		}
	}
}

func (r *runner) push(id string, d float64) {
	r.seq++
	heap.Push(&r.pq, &nodeItem{id: id, dist: d, seq: r.seq})
}

// reconstruct walks prev backwards from dst and reverses the result.
func (r *runner) reconstruct(src, dst string) []string {
	path := []string{dst}
	for cur := dst; cur != src; {
		p, ok := r.prev[cur]
		if !ok {
			break
		}
		cur = p
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// annotate fills Lines, Transfers and MaxZone from the stations on res.Path.
func annotate(n *core.Network, res *PathResult) {
	seen := make(map[string]struct{})
	res.Lines = make([]string, 0)
	prevLine := ""
	for i, name := range res.Path {
		s, _ := n.Station(name)
		if _, ok := seen[s.Line]; !ok {
			seen[s.Line] = struct{}{}
			res.Lines = append(res.Lines, s.Line)
		}
		if i > 0 && s.Line != prevLine {
			res.Transfers++
		}
		prevLine = s.Line
		if s.Zone > res.MaxZone {
			res.MaxZone = s.Zone
		}
	}
	sort.Strings(res.Lines)
}

// nodeItem is a station and its tentative distance. seq breaks ties in push
// order so equal-distance expansions are deterministic.
type nodeItem struct {
	id   string
	dist float64
	seq  uint64
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, seq).
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].seq < pq[j].seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
