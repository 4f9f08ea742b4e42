package main

import (
	"fmt"

	"github.com/rs/zerolog"
)

type SearchStats struct {
	Nodes          uint64 // #nodes visited
	Leafs          uint64 // #terminal or depth-limited nodes
	NonLeafs       uint64 // #nodes whose children were searched
	CutNodes       uint64 // #nodes that returned early on alpha >= beta
	FirstChildCuts uint64 // #cut nodes that cut on the first child searched

	NonLeafsAt [DefaultSearchDepth + 1]uint64 // non-leafs by depth from root
}

func (s *SearchStats) Add(other *SearchStats) {
	if s == nil || other == nil {
		return
	}
	s.Nodes += other.Nodes
	s.Leafs += other.Leafs
	s.NonLeafs += other.NonLeafs
	s.CutNodes += other.CutNodes
	s.FirstChildCuts += other.FirstChildCuts
	for i := range s.NonLeafsAt {
		s.NonLeafsAt[i] += other.NonLeafsAt[i]
	}
}

func PerC(n uint64, N uint64) string {
	if N == 0 {
		return fmt.Sprintf("%d [-]", n)
	}
	return fmt.Sprintf("%d [%.2f%%]", n, float64(n)/float64(N)*100)
}

// MarshalZerologObject lets the stats be logged with Object().
func (s *SearchStats) MarshalZerologObject(e *zerolog.Event) {
	e.Uint64("nodes", s.Nodes).
		Uint64("leafs", s.Leafs).
		Str("non-leafs", PerC(s.NonLeafs, s.Nodes)).
		Str("cuts", PerC(s.CutNodes, s.NonLeafs)).
		Str("1st-child-cuts", PerC(s.FirstChildCuts, s.CutNodes))
}
