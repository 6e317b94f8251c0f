// meta/meta.go
package meta

// DEPTH defines the default search depth, in rounds.
const DEPTH = 2

// STRATEGY defines the default search strategy.
const STRATEGY = "alphabeta"

// EVALUATION defines the default evaluation function.
const EVALUATION = "better"

// LAYOUT defines the default maze layout.
const LAYOUT = "minimaxClassic"

// GAMES defines the number of games per config in a comparison.
const GAMES = 10

// MAX_ROUNDS bounds the length of a game.
const MAX_ROUNDS = 500

const LOG_LEVEL = "info"

const SEED = 1

// OUTPUT is where comparisons write their records.
const OUTPUT = "results"
