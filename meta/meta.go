// meta/meta.go
package meta

// MAX_PIP is the highest pip on a standard double-six set.
const MAX_PIP = 6

// PLAYERS is the standard table size.
const PLAYERS = 4

// GO_ROUTINES defines the number of goroutines used by batch runs.
const GO_ROUTINES = 8

// GAMES defines the number of games in a batch run.
const GAMES = 10000

// MAX_TURNS guards the turn loop of a single game.
const MAX_TURNS = 1000

// CONFIG_NAME is the configuration file read when none is given.
const CONFIG_NAME = "dominoes.yaml"
