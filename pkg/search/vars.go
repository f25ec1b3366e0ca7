package search

import "github.com/quenio/gomoku/pkg/gomoku"

// Bound beyond any reachable score, used to seed alpha and beta
var infinity = gomoku.Win + 1

// Deepest level accepted by NewTree
const MaxDepth = 16
