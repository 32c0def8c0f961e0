package algo

import (
	"math"

	"github.com/hexlattice/graphbridge/engine"
	"github.com/hexlattice/graphbridge/errors"
)

// flowEpsilon bounds the residual capacities treated as exhausted.
const flowEpsilon = 1e-9

// MaxFlowResult carries everything a maximum-flow run produces: the flow
// value, the per-edge flow amounts, and the source side of a minimum cut
// with the same capacity.
type MaxFlowResult struct {
	Value           float64
	EdgeFlows       *engine.LongDoubleMap
	SourcePartition *engine.LongSet
}

// flowArc is one direction of a residual arc pair. cap is the remaining
// residual capacity; rev points at the opposite direction.
type flowArc struct {
	to  int64
	cap float64
	rev *flowArc
}

type flowPair struct {
	edge     int64
	forward  *flowArc
	backward *flowArc
}

type flowNetwork struct {
	adj      map[int64][]*flowArc
	pairs    []flowPair
	directed bool
}

// buildFlowNetwork turns the graph into a residual network. Directed edges
// become a capacity/zero arc pair; undirected edges get full capacity in
// both directions. Self loops carry no flow and are skipped.
func buildFlowNetwork(g *engine.Graph, op string, source, sink int64) (*flowNetwork, error) {
	if !g.ContainsVertex(source) {
		return nil, errors.IllegalArgument(op, "no such vertex %d", source)
	}
	if !g.ContainsVertex(sink) {
		return nil, errors.IllegalArgument(op, "no such vertex %d", sink)
	}
	if source == sink {
		return nil, errors.IllegalArgument(op, "source and sink coincide at %d", source)
	}

	net := &flowNetwork{adj: map[int64][]*flowArc{}, directed: g.Directed()}
	for _, v := range g.Vertices() {
		net.adj[v] = nil
	}
	for _, eid := range g.Edges() {
		e, err := g.EdgeByID(eid)
		if err != nil {
			return nil, err
		}
		w, err := g.EdgeWeight(eid)
		if err != nil {
			return nil, err
		}
		if w < 0 {
			return nil, errors.IllegalArgument(op, "negative capacity on edge %d", eid)
		}
		if e.Source == e.Target {
			continue
		}
		back := w
		if g.Directed() {
			back = 0
		}
		f := &flowArc{to: e.Target, cap: w}
		b := &flowArc{to: e.Source, cap: back}
		f.rev, b.rev = b, f
		net.adj[e.Source] = append(net.adj[e.Source], f)
		net.adj[e.Target] = append(net.adj[e.Target], b)
		net.pairs = append(net.pairs, flowPair{edge: eid, forward: f, backward: b})
	}
	return net, nil
}

// result reads the finished residual network back into edge flows and the
// source-side partition of a minimum cut.
func (net *flowNetwork) result(g *engine.Graph, source int64, value float64) *MaxFlowResult {
	flows := engine.NewLongDoubleMap(true)
	for _, eid := range g.Edges() {
		flows.Put(eid, 0)
	}
	for _, p := range net.pairs {
		pushed := p.backward.cap
		if !net.directed {
			pushed = math.Abs(p.backward.cap-p.forward.cap) / 2
		}
		if pushed < flowEpsilon {
			pushed = 0
		}
		flows.Put(p.edge, pushed)
	}

	// Residual reachability from the source is a minimum cut.
	partition := engine.NewLongSet(true)
	visited := map[int64]bool{source: true}
	queue := []int64{source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		partition.Add(u)
		for _, a := range net.adj[u] {
			if a.cap > flowEpsilon && !visited[a.to] {
				visited[a.to] = true
				queue = append(queue, a.to)
			}
		}
	}

	return &MaxFlowResult{Value: value, EdgeFlows: flows, SourcePartition: partition}
}

// EdmondsKarpMaxFlow computes a maximum source-sink flow with breadth-first
// augmenting paths.
func EdmondsKarpMaxFlow(g *engine.Graph, source, sink int64) (*MaxFlowResult, error) {
	net, err := buildFlowNetwork(g, "maxflow_edmonds_karp", source, sink)
	if err != nil {
		return nil, err
	}

	var value float64
	for {
		parent := map[int64]*flowArc{}
		visited := map[int64]bool{source: true}
		queue := []int64{source}
		for len(queue) > 0 && !visited[sink] {
			u := queue[0]
			queue = queue[1:]
			for _, a := range net.adj[u] {
				if a.cap > flowEpsilon && !visited[a.to] {
					visited[a.to] = true
					parent[a.to] = a
					queue = append(queue, a.to)
				}
			}
		}
		if !visited[sink] {
			break
		}

		bottleneck := math.Inf(1)
		for v := sink; v != source; {
			a := parent[v]
			if a.cap < bottleneck {
				bottleneck = a.cap
			}
			v = a.rev.to
		}
		for v := sink; v != source; {
			a := parent[v]
			a.cap -= bottleneck
			a.rev.cap += bottleneck
			v = a.rev.to
		}
		value += bottleneck
	}

	return net.result(g, source, value), nil
}

// DinicMaxFlow computes a maximum source-sink flow with level graphs and
// blocking flows.
func DinicMaxFlow(g *engine.Graph, source, sink int64) (*MaxFlowResult, error) {
	net, err := buildFlowNetwork(g, "maxflow_dinic", source, sink)
	if err != nil {
		return nil, err
	}

	level := map[int64]int{}
	bfs := func() bool {
		for v := range level {
			delete(level, v)
		}
		level[source] = 0
		queue := []int64{source}
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			for _, a := range net.adj[u] {
				if _, seen := level[a.to]; !seen && a.cap > flowEpsilon {
					level[a.to] = level[u] + 1
					queue = append(queue, a.to)
				}
			}
		}
		_, reached := level[sink]
		return reached
	}

	iter := map[int64]int{}
	var push func(u int64, limit float64) float64
	push = func(u int64, limit float64) float64 {
		if u == sink {
			return limit
		}
		for ; iter[u] < len(net.adj[u]); iter[u]++ {
			a := net.adj[u][iter[u]]
			if a.cap <= flowEpsilon || level[a.to] != level[u]+1 {
				continue
			}
			sent := push(a.to, math.Min(limit, a.cap))
			if sent > 0 {
				a.cap -= sent
				a.rev.cap += sent
				return sent
			}
		}
		return 0
	}

	var value float64
	for bfs() {
		for v := range iter {
			delete(iter, v)
		}
		for {
			sent := push(source, math.Inf(1))
			if sent <= 0 {
				break
			}
			value += sent
		}
	}

	return net.result(g, source, value), nil
}

// PushRelabelMaxFlow computes a maximum source-sink flow with the FIFO
// push-relabel method.
func PushRelabelMaxFlow(g *engine.Graph, source, sink int64) (*MaxFlowResult, error) {
	net, err := buildFlowNetwork(g, "maxflow_push_relabel", source, sink)
	if err != nil {
		return nil, err
	}

	n := len(net.adj)
	height := map[int64]int{source: n}
	excess := map[int64]float64{}
	var active []int64

	enqueue := func(v int64) {
		if v != source && v != sink && excess[v] > flowEpsilon {
			active = append(active, v)
		}
	}
	pushArc := func(u int64, a *flowArc) {
		amount := math.Min(excess[u], a.cap)
		a.cap -= amount
		a.rev.cap += amount
		excess[u] -= amount
		hadNone := excess[a.to] <= flowEpsilon
		excess[a.to] += amount
		if hadNone {
			enqueue(a.to)
		}
	}

	for _, a := range net.adj[source] {
		if a.cap > flowEpsilon {
			excess[source] += a.cap
			pushArc(source, a)
		}
	}

	for len(active) > 0 {
		u := active[0]
		active = active[1:]
		for excess[u] > flowEpsilon {
			pushed := false
			for _, a := range net.adj[u] {
				if a.cap > flowEpsilon && height[u] == height[a.to]+1 {
					pushArc(u, a)
					pushed = true
					if excess[u] <= flowEpsilon {
						break
					}
				}
			}
			if excess[u] <= flowEpsilon {
				break
			}
			if !pushed {
				// Relabel to one above the lowest admissible neighbor.
				lowest := math.MaxInt32
				for _, a := range net.adj[u] {
					if a.cap > flowEpsilon && height[a.to] < lowest {
						lowest = height[a.to]
					}
				}
				if lowest == math.MaxInt32 {
					excess[u] = 0
					break
				}
				height[u] = lowest + 1
			}
		}
	}

	return net.result(g, source, excess[sink]), nil
}
