package reach

import "github.com/sdahmani/atakoris/network"

// MaxSupply answers a capacitated sanity question Reachable/Feasible
// cannot: even when every junction has SOME path to a fixed-head node,
// can the topology carry enough simultaneous flow to satisfy every
// demand at once, given current link statuses? It runs Dinic's
// level-graph/blocking-flow algorithm (Open link capacity infCap,
// Closed link capacity 0) from the super-source to a super-sink joined
// to every junction at capacity equal to its demand, in the network's SI
// flow unit.
//
// It returns the achieved max-flow and the total demand; a caller treats
// achieved < demand as a non-fatal capacity warning, not a structural
// error — MaxSupply ignores head-loss entirely and so is only a coarse,
// optimistic bound.
func MaxSupply(n *network.Network) (achieved, demand float64) {
	a := buildAdjacency(n, true)
	for _, j := range n.Junctions {
		d := j.Demand * n.Options.FlowUnit.Multiplier() * n.Options.DemandMultiplier
		if d <= 0 {
			continue
		}
		a.join(j.ID, sink, d)
		demand += d
	}

	return dinicMaxFlow(a, source, sink), demand
}

// dinicMaxFlow adapts the blocking-flow loop: repeatedly build a level
// graph by BFS from src, then push blocking flow along it by DFS, until
// sink becomes unreachable.
func dinicMaxFlow(a adjacency, src, dst string) float64 {
	var total float64
	for {
		level := bfsLevels(a, src)
		if _, ok := level[dst]; !ok {
			break
		}
		iter := make(map[string]int)
		for {
			pushed := dinicDFS(a, level, iter, src, dst, infCap)
			if pushed <= 0 {
				break
			}
			total += pushed
		}
	}

	return total
}

func bfsLevels(a adjacency, src string) map[string]int {
	level := map[string]int{src: 0}
	queue := []string{src}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for v, cap := range a[u] {
			if cap <= 0 {
				continue
			}
			if _, seen := level[v]; seen {
				continue
			}
			level[v] = level[u] + 1
			queue = append(queue, v)
		}
	}

	return level
}

func dinicDFS(a adjacency, level map[string]int, iter map[string]int, u, dst string, available float64) float64 {
	if u == dst {
		return available
	}
	neighbors := a[u]
	keys := sortedKeys(neighbors)
	for i := iter[u]; i < len(keys); i++ {
		iter[u] = i + 1
		v := keys[i]
		cap := neighbors[v]
		if cap <= 0 || level[v] != level[u]+1 {
			continue
		}
		send := available
		if cap < send {
			send = cap
		}
		pushed := dinicDFS(a, level, iter, v, dst, send)
		if pushed > 0 {
			a[u][v] -= pushed
			a[v][u] += pushed

			return pushed
		}
	}

	return 0
}

// sortedKeys gives dinicDFS a deterministic iteration order; map
// iteration order is not stable in Go and a nondeterministic augmenting
// path order would make results harder to reproduce across runs.
func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j-1] > keys[j]; j-- {
			keys[j-1], keys[j] = keys[j], keys[j-1]
		}
	}

	return keys
}
