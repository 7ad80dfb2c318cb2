// Package cubestate models the move group of a 3x3x3 cube at cubie level
// and projects any state onto a sticker grid for display.
//
// # State and moves
//
// A State holds four vectors: corner permutation and twist (CP, CO) and
// edge permutation and flip (EP, EO). A face turn is itself a State: the
// change it makes to a solved cube. Compose applies one to another:
//
//	catalog := cubestate.NewCatalog()
//	r, _ := catalog.Lookup("R")
//	s := cubestate.Compose(cubestate.Solved, r)
//
// # Move catalog
//
// NewCatalog derives the 18 single-face moves (U, U2, U', ... B') from six
// quarter-turn generators. Build it once and share it; it is read-only.
//
// # Scrambles
//
// Scramble folds a notation string over a base state:
//
//	s, err := cubestate.Scramble("R U R' U'", cubestate.WithCatalog(catalog))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Stickers
//
// Project turns a State into a Grid of colors, six faces of 3x3 stickers
// in U, D, R, L, F, B order:
//
//	grid := cubestate.Project(s)
//	fmt.Print(grid.String())
//	fmt.Println("Phase:", grid.DetectPhase().DisplayName())
//
// # Tracking
//
// A Tracker keeps a running state with history and undo for interactive
// use.
package cubestate
