// Package heatpath finds cheapest routes across cost grids for walkers whose
// legal moves depend on how far they have already gone in a straight line.
//
// What is heatpath?
//
//	A small, dependency-light library plus command:
//		• gridgraph — immutable grid of non-negative cell costs, coordinates, headings
//		• crucible  — Dijkstra over (cell, heading, run) states with min/max run rules
//		• cmd/heatpath — reads a digit grid and an optional HCL rule-set file
//
// Under the hood:
//
//	gridgraph/         — CostGrid, Coord, Heading, ParseDigits
//	crucible/          — Rules, State, Successors, FindMinCost, MinCost, SolveAll
//	internal/config/   — HCL rule-set files (width/height usable in expressions)
//	internal/ctxlog/   — slog logger carried on context
//	internal/cli/      — flag parsing
//	internal/app/      — glue between the above
//
// Quick ASCII example, MinRun 0, MaxRun 1 (turn after every step):
//
//	S→1 1
//	  ↓
//	1 1→1
//	    ↓
//	1 1 G     cost 4
//
//	go get github.com/katalvlaran/heatpath
package heatpath
