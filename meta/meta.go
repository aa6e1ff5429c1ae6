// meta/meta.go
package meta

// DEFAULT_DEPTH is the search depth of adversarial agents, in full turns.
const DEFAULT_DEPTH = 2

// DEFAULT_EVALUATION names the evaluation function of adversarial agents.
const DEFAULT_EVALUATION = "score"

// SCARED_TIME is the number of ghost moves a capsule keeps ghosts scared.
const SCARED_TIME = 40

// MAX_MOVES caps the number of moves in a game.
const MAX_MOVES = 1000

// GO_ROUTINES bounds the number of concurrent experiment jobs.
const GO_ROUTINES = 8
