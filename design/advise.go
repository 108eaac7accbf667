package design

import (
	"container/heap"
	"fmt"
	"sort"

	"github.com/sdahmani/atakoris/network"
)

// edge is a pipe-length-weighted undirected edge between two node IDs.
type edge struct {
	from, to string
	pipeID   string
	weight   float64
}

// edgePQ is a min-heap over edge.weight, the same shape as
// prim_kruskal's edgePQ adapted to a local edge type carrying the pipe
// ID it came from (Prim itself only needs endpoints and weight; the
// pipe ID rides along so the caller can map MST membership back to
// pipes instead of raw vertex pairs).
type edgePQ []*edge

func (pq edgePQ) Len() int            { return len(pq) }
func (pq edgePQ) Less(i, j int) bool  { return pq[i].weight < pq[j].weight }
func (pq edgePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(*edge)) }
func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	e := old[n-1]
	*pq = old[:n-1]

	return e
}

// Advise recommends a diameter for every pipe in n: pipes on the
// minimum spanning tree of the pipe-length graph (the backbone carrying
// flow over the shortest aggregate distance) get candidates[last] (the
// largest); every other pipe gets candidates[0] (the smallest).
// candidates need not be pre-sorted; Advise sorts a copy ascending.
//
// This is a coarse, pre-solve sizing heuristic — it knows nothing about
// demand magnitude or head-loss, only topology and length. Callers are
// expected to run the network through solver.Compute afterward and
// iterate if heads or velocities are unacceptable.
func Advise(n *network.Network, candidates []float64) (map[string]float64, error) {
	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}
	if len(n.Pipes) == 0 {
		return nil, ErrNoPipes
	}
	sorted := append([]float64(nil), candidates...)
	sort.Float64s(sorted)
	smallest, largest := sorted[0], sorted[len(sorted)-1]

	adj := make(map[string][]*edge)
	nodes := make(map[string]bool)
	for _, p := range n.Pipes {
		e := &edge{from: p.Start, to: p.End, pipeID: p.ID, weight: p.Length}
		adj[p.Start] = append(adj[p.Start], e)
		adj[p.End] = append(adj[p.End], &edge{from: p.End, to: p.Start, pipeID: p.ID, weight: p.Length})
		nodes[p.Start] = true
		nodes[p.End] = true
	}

	root := smallestID(nodes)
	mstPipes, err := prim(adj, nodes, root)
	if err != nil {
		return nil, fmt.Errorf("design.Advise: %w", err)
	}

	recs := make(map[string]float64, len(n.Pipes))
	for _, p := range n.Pipes {
		if mstPipes[p.ID] {
			recs[p.ID] = largest
		} else {
			recs[p.ID] = smallest
		}
	}

	return recs, nil
}

func smallestID(nodes map[string]bool) string {
	ids := make([]string, 0, len(nodes))
	for id := range nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids[0]
}

// prim grows a minimum spanning tree from root over adj, returning the
// set of pipe IDs whose edge was selected into the tree.
func prim(adj map[string][]*edge, nodes map[string]bool, root string) (map[string]bool, error) {
	n := len(nodes)
	visited := make(map[string]bool, n)
	mstPipes := make(map[string]bool, n-1)

	pq := &edgePQ{}
	heap.Init(pq)
	visited[root] = true
	for _, e := range adj[root] {
		if !visited[e.to] {
			heap.Push(pq, e)
		}
	}

	for pq.Len() > 0 && len(mstPipes) < n-1 {
		e := heap.Pop(pq).(*edge)
		if visited[e.to] {
			continue
		}
		visited[e.to] = true
		mstPipes[e.pipeID] = true
		for _, ne := range adj[e.to] {
			if !visited[ne.to] {
				heap.Push(pq, ne)
			}
		}
	}

	if len(mstPipes) < n-1 {
		return nil, ErrDisconnected
	}

	return mstPipes, nil
}
