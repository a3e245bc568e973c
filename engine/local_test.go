package engine

import (
	"errors"
	"slices"
	"testing"

	"dominoes/game"
	"dominoes/player"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// eventLog keeps every event it sees.
type eventLog struct {
	events []Event
}

func (l *eventLog) Record(ev Event) {
	l.events = append(l.events, ev)
}

func (l *eventLog) kinds() []EventKind {
	kinds := make([]EventKind, len(l.events))
	for i, ev := range l.events {
		kinds[i] = ev.Kind
	}
	return kinds
}

// scripted returns a fixed error on every call.
type scripted struct {
	err error
}

func (s scripted) Decide(*game.Hand, *game.Chain) (game.Move, bool, error) {
	return game.Move{}, false, s.err
}

// cheater always claims a tile it does not hold.
type cheater struct{}

func (cheater) Decide(*game.Hand, *game.Chain) (game.Move, bool, error) {
	return game.Move{Tile: game.MustTile(9, 9), Side: game.SideOne, End: game.Left}, true, nil
}

func firstMatch(n int) []game.Decider {
	deciders := make([]game.Decider, n)
	for i := range deciders {
		deciders[i] = player.NewFirstMatch()
	}
	return deciders
}

func newEngine(t *testing.T, hands [][]game.Tile, options ...Option) *Engine {
	t.Helper()
	players := make([]*game.Player, len(hands))
	for i, hand := range hands {
		players[i] = game.NewPlayer(i+1, hand...)
	}
	options = append([]Option{WithLogger(zerolog.Nop())}, options...)
	e, err := New(players, firstMatch(len(players)), options...)
	require.NoError(t, err)
	return e
}

func TestNew(t *testing.T) {
	_, err := New(nil, nil)
	require.ErrorIs(t, err, game.ErrInvalidConfig)

	players, _ := game.MakePlayers(2)
	_, err = New(players, firstMatch(3))
	require.ErrorIs(t, err, game.ErrInvalidConfig)
}

func TestRunCompletion(t *testing.T) {
	t.Run("single tile empties the hand on the first turn", func(t *testing.T) {
		log := &eventLog{}
		e := newEngine(t, [][]game.Tile{
			{game.MustTile(3, 4)},
			{game.MustTile(0, 0)},
			{game.MustTile(1, 1)},
			{game.MustTile(2, 2)},
		}, WithRecorder(log))

		result, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, Result{Status: Completed, Winner: 1, Remaining: 0, Turns: 1}, result)
		require.Equal(t, []EventKind{Played, Ended}, log.kinds())
		require.Equal(t, []game.Tile{game.MustTile(3, 4)}, log.events[0].Chain)
	})

	t.Run("later player completes", func(t *testing.T) {
		e := newEngine(t, [][]game.Tile{
			{game.MustTile(1, 2), game.MustTile(6, 6)},
			{game.MustTile(2, 3)},
		})

		result, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, Completed, result.Status)
		require.Equal(t, 2, result.Winner)
		require.Equal(t, 2, result.Turns)
		require.Equal(t, "[1|2][2|3]", e.Chain().String())
	})
}

func TestRunBlocked(t *testing.T) {
	t.Run("lowest remaining value wins", func(t *testing.T) {
		log := &eventLog{}
		e := newEngine(t, [][]game.Tile{
			{game.MustTile(0, 1), game.MustTile(5, 5)},
			{game.MustTile(6, 6)},
			{game.MustTile(4, 4), game.MustTile(2, 2)},
			{game.MustTile(3, 3)},
		}, WithRecorder(log))

		result, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, Result{Status: Blocked, Winner: 4, Remaining: 6, Turns: 5}, result)
		require.Equal(t, []EventKind{Played, Passed, Passed, Passed, Passed, Ended}, log.kinds())
	})

	t.Run("ties go to the lowest order", func(t *testing.T) {
		e := newEngine(t, [][]game.Tile{
			{game.MustTile(0, 1), game.MustTile(5, 5)},
			{game.MustTile(6, 6)},
			{game.MustTile(4, 4), game.MustTile(2, 2)},
			{game.MustTile(4, 6)},
		})

		result, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, Blocked, result.Status)
		require.Equal(t, 1, result.Winner)
		require.Equal(t, 10, result.Remaining)
	})

	t.Run("a success resets the pass counter", func(t *testing.T) {
		// Players 2 and 3 pass, then player 4 plays [1|2] and the count starts
		// over, so the board only blocks on turn 8.
		e := newEngine(t, [][]game.Tile{
			{game.MustTile(0, 1), game.MustTile(6, 6)},
			{game.MustTile(5, 5)},
			{game.MustTile(4, 4)},
			{game.MustTile(1, 2), game.MustTile(3, 3)},
		})

		result, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, Blocked, result.Status)
		require.Equal(t, 8, result.Turns)
		require.Equal(t, 4, result.Winner)
		require.Equal(t, 6, result.Remaining)
	})

	t.Run("table size sets the block threshold", func(t *testing.T) {
		e := newEngine(t, [][]game.Tile{
			{game.MustTile(0, 1), game.MustTile(6, 6)},
			{game.MustTile(5, 5)},
		})

		result, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, Blocked, result.Status)
		require.Equal(t, 3, result.Turns)
		require.Equal(t, 2, result.Winner)
	})
}

func TestRunQuit(t *testing.T) {
	players, _ := game.MakePlayers(2)
	players[0].Hand().Add(game.MustTile(1, 2))
	players[0].Hand().Add(game.MustTile(3, 3))
	players[1].Hand().Add(game.MustTile(4, 4))
	log := &eventLog{}
	e, err := New(players, []game.Decider{player.NewFirstMatch(), scripted{err: game.ErrQuit}},
		WithLogger(zerolog.Nop()), WithRecorder(log))
	require.NoError(t, err)

	result, err := e.Run()

	require.NoError(t, err)
	require.Equal(t, Quit, result.Status)
	require.Equal(t, 0, result.Winner)
	require.Equal(t, []EventKind{Played, Ended}, log.kinds())
	require.ErrorIs(t, e.Step(), ErrGameOver)
}

func TestRunAborts(t *testing.T) {
	t.Run("decider failure", func(t *testing.T) {
		boom := errors.New("boom")
		players, _ := game.MakePlayers(1)
		players[0].Hand().Add(game.MustTile(1, 1))
		e, err := New(players, []game.Decider{scripted{err: boom}}, WithLogger(zerolog.Nop()))
		require.NoError(t, err)

		_, err = e.Run()
		require.ErrorIs(t, err, boom)
	})

	t.Run("tile not in hand", func(t *testing.T) {
		players, _ := game.MakePlayers(1)
		players[0].Hand().Add(game.MustTile(1, 1))
		e, err := New(players, []game.Decider{cheater{}}, WithLogger(zerolog.Nop()))
		require.NoError(t, err)

		_, err = e.Run()
		require.ErrorIs(t, err, game.ErrNotFound)
		require.Contains(t, err.Error(), "player 1")
	})

	t.Run("turn limit", func(t *testing.T) {
		e := newEngine(t, [][]game.Tile{
			{game.MustTile(0, 1), game.MustTile(1, 2), game.MustTile(2, 3)},
			{game.MustTile(6, 6)},
		}, WithMaxTurns(2))

		result, err := e.Run()
		require.ErrorIs(t, err, ErrTurnLimit)
		require.Equal(t, Playing, result.Status)
		require.Equal(t, 2, result.Turns)
	})
}

func TestStepChangesOneEnd(t *testing.T) {
	tiles, err := game.NewSet(6)
	require.NoError(t, err)
	players, _ := game.MakePlayers(4)
	game.Deal(tiles, players, rand.New(rand.NewSource(3)))
	e, err := New(players, firstMatch(4), WithLogger(zerolog.Nop()))
	require.NoError(t, err)

	require.NoError(t, e.Step())
	require.Equal(t, 1, e.Chain().Len())

	for e.Result().Status == Playing {
		before := e.Chain().Tiles()

		require.NoError(t, e.Step())

		after := e.Chain().Tiles()
		if len(after) == len(before) {
			continue
		}
		require.Len(t, after, len(before)+1)
		if slices.Equal(after[1:], before) {
			// placed on the left: the new tile's inner pip meets the old left end
			inner, _ := after[0].Side(game.SideTwo)
			outer, _ := before[0].Side(game.SideOne)
			require.Equal(t, outer, inner)
		} else {
			require.Equal(t, before, after[:len(before)], "Only one end should change")
			inner, _ := after[len(after)-1].Side(game.SideOne)
			outer, _ := before[len(before)-1].Side(game.SideTwo)
			require.Equal(t, outer, inner)
		}
	}
}

func TestRandomGamesTerminate(t *testing.T) {
	tiles, err := game.NewSet(6)
	require.NoError(t, err)

	for seed := uint64(1); seed <= 200; seed++ {
		players, _ := game.MakePlayers(4)
		game.Deal(tiles, players, rand.New(rand.NewSource(seed)))
		e, err := New(players, firstMatch(4), WithLogger(zerolog.Nop()), WithMaxTurns(200))
		require.NoError(t, err)

		result, err := e.Run()

		require.NoError(t, err, "seed %d", seed)
		require.Contains(t, []Status{Completed, Blocked}, result.Status)
		require.GreaterOrEqual(t, result.Winner, 1)
		require.LessOrEqual(t, result.Winner, 4)

		played := 0
		for _, p := range players {
			played += 7 - p.Hand().Len()
		}
		require.Equal(t, played, e.Chain().Len(), "Every played tile should be on the chain")
		if result.Status == Completed {
			require.True(t, players[result.Winner-1].Hand().IsEmpty())
		}
	}
}

func TestLogRecorder(t *testing.T) {
	var out []byte
	w := zerolog.New(writerFunc(func(p []byte) (int, error) {
		out = append(out, p...)
		return len(p), nil
	}))
	e := newEngine(t, [][]game.Tile{{game.MustTile(3, 4)}}, WithRecorder(NewLogRecorder(w, zerolog.InfoLevel)))

	_, err := e.Run()
	require.NoError(t, err)
	require.Contains(t, string(out), `"message":"played"`)
	require.Contains(t, string(out), `"status":"completed"`)
}

type writerFunc func([]byte) (int, error)

func (f writerFunc) Write(p []byte) (int, error) {
	return f(p)
}

func TestRecorders(t *testing.T) {
	a, b := &eventLog{}, &eventLog{}
	e := newEngine(t, [][]game.Tile{{game.MustTile(1, 1)}}, WithRecorder(Recorders{a, b}))

	_, err := e.Run()
	require.NoError(t, err)
	require.Equal(t, a.events, b.events)
	require.Len(t, a.events, 2)
}
