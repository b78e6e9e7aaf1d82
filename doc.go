// Package metro is an in-memory engine for metro and transit networks:
// stations with line, zone and coordinates, joined by weighted undirected
// connections, plus the algorithms a journey planner needs.
//
// Everything is organized in subpackages:
//
//	core/         - Network: thread-safe station and connection store
//	dijkstra/     - shortest route with lines, transfers, zones and fare
//	bfs/, dfs/    - traversals, connected components, all simple paths, cycles
//	prim_kruskal/ - minimum spanning tree (Prim) and forest (Kruskal)
//	search/       - name, line, zone, prefix and proximity lookups
//	fare/         - distance and zone tariff with fare bands
//	planner/      - cached route lookups keyed by network version
//	loader/       - CSV and YAML import, CSV export
//	builder/      - synthetic lines, rings and grids for tests and benchmarks
//	render/       - terminal output for the CLI
//	config/, cli/ - configuration and the cobra command tree (cmd/metro)
//
// Quick start:
//
//	n := core.NewNetwork()
//	n.AddStation("Central", "Red", 1, 51.50, -0.12)
//	n.AddStation("Museum", "Red", 1, 51.52, -0.13)
//	n.AddEdge("Central", "Museum", 2.5)
//	res := dijkstra.ShortestPath(n, "Central", "Museum")
//	fmt.Println(res.Path, res.Distance)
package metro
