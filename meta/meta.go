// meta/meta.go
package meta

// DefaultSize is the board edge length used when none is configured.
const DefaultSize = 6

// MaxTurns caps the number of placements in one game.
const MaxTurns = 1000

// GamesPerMatchUp is the default number of games played per experiment match-up.
const GamesPerMatchUp = 10

const OutputDir = "results"
