package reach

import "github.com/sdahmani/atakoris/network"

// adjacency is an undirected capacity map: adjacency[u][v] mirrors
// adjacency[v][u]. Hydraulic links carry flow in either direction, so
// both directions of a link get the same capacity.
type adjacency map[string]map[string]float64

func newAdjacency() adjacency {
	return make(adjacency)
}

func (a adjacency) join(u, v string, cap float64) {
	if _, ok := a[u]; !ok {
		a[u] = make(map[string]float64)
	}
	if _, ok := a[v]; !ok {
		a[v] = make(map[string]float64)
	}
	a[u][v] += cap
	a[v][u] += cap
}

// linkCapacity returns the pure-topology capacity (1, regardless of
// status) when statusAware is false, or a status-respecting capacity
// (0 for Closed, infCap for Open) when true.
func linkCapacity(status network.LinkStatus, statusAware bool) float64 {
	if !statusAware {
		return 1
	}
	if status == network.Open {
		return infCap
	}
	return 0
}

// buildAdjacency joins a synthetic super-source to every tank and
// reservoir with unbounded capacity, then joins every link's two
// endpoints with the capacity linkCapacity assigns.
func buildAdjacency(n *network.Network, statusAware bool) adjacency {
	a := newAdjacency()
	for _, t := range n.Tanks {
		a.join(source, t.ID, infCap)
	}
	for _, r := range n.Reservoirs {
		a.join(source, r.ID, infCap)
	}
	for _, p := range n.Pipes {
		a.join(p.Start, p.End, linkCapacity(p.Status, statusAware))
	}
	for _, pu := range n.Pumps {
		a.join(pu.Start, pu.End, linkCapacity(pu.Status, statusAware))
	}
	for _, v := range n.Valves {
		a.join(v.Start, v.End, linkCapacity(v.Status, statusAware))
	}

	return a
}

// bfsReachable runs breadth-first search from source over edges with
// capacity > 0, returning the set of visited vertex IDs.
func bfsReachable(a adjacency, start string) map[string]bool {
	visited := map[string]bool{start: true}
	queue := []string{start}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for v, cap := range a[u] {
			if cap <= 0 || visited[v] {
				continue
			}
			visited[v] = true
			queue = append(queue, v)
		}
	}

	return visited
}

// Reachable returns the IDs of junctions with no path to any tank or
// reservoir, ignoring link status entirely (a purely topological check:
// even a network with every link Closed reports no unreached junctions
// here, since Feasible is what looks at status).
func Reachable(n *network.Network) []string {
	a := buildAdjacency(n, false)
	visited := bfsReachable(a, source)

	var unreached []string
	for _, j := range n.Junctions {
		if !visited[j.ID] {
			unreached = append(unreached, j.ID)
		}
	}

	return unreached
}

// Feasible returns the IDs of junctions unreachable from any tank or
// reservoir once Closed links are removed from the graph. A junction can
// appear here even when it is absent from Reachable's result, whenever
// the only paths to it pass through a Closed link.
func Feasible(n *network.Network) []string {
	a := buildAdjacency(n, true)
	visited := bfsReachable(a, source)

	var undeliverable []string
	for _, j := range n.Junctions {
		if !visited[j.ID] {
			undeliverable = append(undeliverable, j.ID)
		}
	}

	return undeliverable
}
