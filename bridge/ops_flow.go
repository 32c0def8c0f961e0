package bridge

import (
	"github.com/hexlattice/graphbridge/algo"
	"github.com/hexlattice/graphbridge/engine"
	"github.com/hexlattice/graphbridge/errors"
	"github.com/hexlattice/graphbridge/resource"
)

// Flow, cut, and metric operations. Maximum-flow operations return the
// flow value together with two handles: a map of per-edge flow amounts and
// the source side of a minimum cut.

func init() {
	registerMaxFlow("maxflow_exec_edmonds_karp", algo.EdmondsKarpMaxFlow)
	registerMaxFlow("maxflow_exec_dinic", algo.DinicMaxFlow)
	registerMaxFlow("maxflow_exec_push_relabel", algo.PushRelabelMaxFlow)

	register(OpSpec{
		Name:   "cut_exec_min_st_cut",
		Params: []ValueKind{KindHandle, KindLong, KindLong},
		Outs:   []ValueKind{KindDouble, KindHandle},
		Call: func(_ *Thread, args []Value) ([]Value, error) {
			const op = "cut_exec_min_st_cut"
			g, err := getGraph(op, args[0].Handle())
			if err != nil {
				return nil, err
			}
			weight, partition, err := algo.MinSTCut(g, args[1].Long(), args[2].Long())
			if err != nil {
				return nil, err
			}
			hv, err := longSetHandle(op, partition)
			if err != nil {
				return nil, err
			}
			return []Value{DoubleValue(weight), hv}, nil
		},
	})

	register(OpSpec{
		Name:   "cut_mincut_exec_stoer_wagner",
		Params: []ValueKind{KindHandle},
		Outs:   []ValueKind{KindDouble, KindHandle},
		Call: func(_ *Thread, args []Value) ([]Value, error) {
			const op = "cut_mincut_exec_stoer_wagner"
			g, err := getGraph(op, args[0].Handle())
			if err != nil {
				return nil, err
			}
			weight, partition, err := algo.MinCutStoerWagner(g)
			if err != nil {
				return nil, err
			}
			hv, err := longSetHandle(op, partition)
			if err != nil {
				return nil, err
			}
			return []Value{DoubleValue(weight), hv}, nil
		},
	})

	registerCutTree("cut_gomoryhu_exec_gusfield", algo.GomoryHuTree)
	registerCutTree("equivalentflowtree_exec_gusfield", algo.EquivalentFlowTree)

	registerMetric("metrics_diameter", algo.Diameter)
	registerMetric("metrics_radius", algo.Radius)
	registerMetric("metrics_girth", algo.Girth)

	register(OpSpec{
		Name:   "metrics_triangles",
		Params: []ValueKind{KindHandle},
		Outs:   []ValueKind{KindLong},
		Call: func(_ *Thread, args []Value) ([]Value, error) {
			const op = "metrics_triangles"
			g, err := getGraph(op, args[0].Handle())
			if err != nil {
				return nil, err
			}
			count, err := algo.CountTriangles(g)
			if err != nil {
				return nil, err
			}
			return []Value{LongValue(count)}, nil
		},
	})
}

func registerMaxFlow(name string, compute func(*engine.Graph, int64, int64) (*algo.MaxFlowResult, error)) {
	register(OpSpec{
		Name:   name,
		Params: []ValueKind{KindHandle, KindLong, KindLong},
		Outs:   []ValueKind{KindDouble, KindHandle, KindHandle},
		Call: func(_ *Thread, args []Value) ([]Value, error) {
			g, err := getGraph(name, args[0].Handle())
			if err != nil {
				return nil, err
			}
			res, err := compute(g, args[1].Long(), args[2].Long())
			if err != nil {
				return nil, err
			}
			fh, err := insertHandle(name, resource.KindDoubleMap, res.EdgeFlows)
			if err != nil {
				return nil, err
			}
			cv, err := longSetHandle(name, res.SourcePartition)
			if err != nil {
				return nil, err
			}
			return []Value{DoubleValue(res.Value), HandleValue(fh), cv}, nil
		},
	})
}

func registerCutTree(name string, compute func(*engine.Graph) (*engine.Graph, error)) {
	register(OpSpec{
		Name:   name,
		Params: []ValueKind{KindHandle},
		Outs:   []ValueKind{KindHandle},
		Call: func(_ *Thread, args []Value) ([]Value, error) {
			g, err := getGraph(name, args[0].Handle())
			if err != nil {
				return nil, err
			}
			tree, err := compute(g)
			if err != nil {
				return nil, err
			}
			h, err := insertHandle(name, resource.KindGraph, tree)
			if err != nil {
				return nil, err
			}
			return []Value{HandleValue(h)}, nil
		},
	})
}

func registerMetric(name string, compute func(*engine.Graph) (float64, error)) {
	register(OpSpec{
		Name:   name,
		Params: []ValueKind{KindHandle},
		Outs:   []ValueKind{KindDouble},
		Call: func(_ *Thread, args []Value) ([]Value, error) {
			g, err := getGraph(name, args[0].Handle())
			if err != nil {
				return nil, err
			}
			v, err := compute(g)
			if err != nil {
				return nil, err
			}
			return []Value{DoubleValue(v)}, nil
		},
	})
}

func (t *Thread) EdmondsKarpMaxFlow(g resource.Handle, source, sink int64, value *float64, flows, cut *resource.Handle) errors.Status {
	return t.call("maxflow_exec_edmonds_karp", []Value{HandleValue(g), LongValue(source), LongValue(sink)}, value, flows, cut)
}

func (t *Thread) DinicMaxFlow(g resource.Handle, source, sink int64, value *float64, flows, cut *resource.Handle) errors.Status {
	return t.call("maxflow_exec_dinic", []Value{HandleValue(g), LongValue(source), LongValue(sink)}, value, flows, cut)
}

func (t *Thread) PushRelabelMaxFlow(g resource.Handle, source, sink int64, value *float64, flows, cut *resource.Handle) errors.Status {
	return t.call("maxflow_exec_push_relabel", []Value{HandleValue(g), LongValue(source), LongValue(sink)}, value, flows, cut)
}

func (t *Thread) MinSTCut(g resource.Handle, source, sink int64, weight *float64, partition *resource.Handle) errors.Status {
	return t.call("cut_exec_min_st_cut", []Value{HandleValue(g), LongValue(source), LongValue(sink)}, weight, partition)
}

func (t *Thread) MinCutStoerWagner(g resource.Handle, weight *float64, partition *resource.Handle) errors.Status {
	return t.call("cut_mincut_exec_stoer_wagner", []Value{HandleValue(g)}, weight, partition)
}

func (t *Thread) GomoryHuTree(g resource.Handle, tree *resource.Handle) errors.Status {
	return t.call("cut_gomoryhu_exec_gusfield", []Value{HandleValue(g)}, tree)
}

func (t *Thread) EquivalentFlowTree(g resource.Handle, tree *resource.Handle) errors.Status {
	return t.call("equivalentflowtree_exec_gusfield", []Value{HandleValue(g)}, tree)
}

func (t *Thread) Diameter(g resource.Handle, out *float64) errors.Status {
	return t.call("metrics_diameter", []Value{HandleValue(g)}, out)
}

func (t *Thread) Radius(g resource.Handle, out *float64) errors.Status {
	return t.call("metrics_radius", []Value{HandleValue(g)}, out)
}

func (t *Thread) Girth(g resource.Handle, out *float64) errors.Status {
	return t.call("metrics_girth", []Value{HandleValue(g)}, out)
}

func (t *Thread) CountTriangles(g resource.Handle, out *int64) errors.Status {
	return t.call("metrics_triangles", []Value{HandleValue(g)}, out)
}
