// meta/meta.go
package meta

// MAZE_HEIGHT, MAZE_WIDTH and MAZE_END_TURN define the single-agent scenario.
const MAZE_HEIGHT = 30
const MAZE_WIDTH = 30
const MAZE_END_TURN = 100

// AUTO_MAZE_* define the multi-agent placement scenario.
const AUTO_MAZE_HEIGHT = 20
const AUTO_MAZE_WIDTH = 20
const AUTO_MAZE_END_TURN = 50
const AUTO_MAZE_CHARACTERS = 3

// DUEL_* define the two-player alternating scenario.
const DUEL_HEIGHT = 3
const DUEL_WIDTH = 3
const DUEL_END_TURN = 4

// MAX_POINT is the exclusive upper bound of a cell's reward.
const MAX_POINT = 10

// GAMES defines the number of games per experiment.
const GAMES = 10

// SEED defines the base seed of an experiment; game i uses SEED+i.
const SEED = 14

// PLAN_ITERATIONS defines the number of perturbations tried by local search.
const PLAN_ITERATIONS = 10000

// ANNEAL_START_TEMP and ANNEAL_END_TEMP bound the annealing schedule.
const ANNEAL_START_TEMP = 100.0
const ANNEAL_END_TEMP = 0.0
