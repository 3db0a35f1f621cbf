// Package runner implements the endless-runner simulation core: the player
// state machine, procedural spawning, pooled entities, collision resolution,
// and run progression. The package is pure game logic; persistence, audio,
// assets, and presentation are collaborators injected at construction and
// every one of them is optional.
package runner

import (
	"github.com/vovakirdan/tui-runner/internal/assets"
)

// Persisted stat keys used by the simulation.
const (
	StatBestScore  = "best_score"
	StatTotalCoins = "total_coins"
	StatTotalJumps = "total_jumps"
	StatTotalGames = "total_games"
)

// Purchasable upgrade IDs.
const (
	PurchaseDoubleScore = "double_score"
)

// SaveStore is the persistence collaborator. Writes happen only at run
// boundaries and are treated as fire-and-forget: errors degrade to stale
// progression, never to a broken run.
type SaveStore interface {
	Stat(key string) (int64, error)
	SetStat(key string, value int64) error
	UpdateStat(key string, fn func(int64) int64) (int64, error)
	RecordScore(score int) error
	Achievements() (map[string]bool, error)
	UnlockAchievement(id string) error
	Purchases() (map[string]bool, error)
}

// AudioPlayer is the audio collaborator. Play is fire-and-forget; music
// controls are idempotent.
type AudioPlayer interface {
	Play(sound string)
	StartMusic()
	StopMusic()
}

// Summary is the end-of-run report handed to the presenter.
type Summary struct {
	Score     int
	Coins     int
	Jumps     int
	Best      int
	NewRecord bool
}

// Presenter is the presentation collaborator, invoked on state transitions.
type Presenter interface {
	Notify(text string)
	GameOver(summary Summary)
}

// Deps bundles the collaborators owned by the simulation controller. Any
// field may be nil; nil collaborators are replaced with silent no-ops.
type Deps struct {
	Store     SaveStore
	Audio     AudioPlayer
	Presenter Presenter
	Assets    *assets.Library
}

// nopStore satisfies SaveStore when no persistence is wired (e.g. tests or
// SSH sessions without a database).
type nopStore struct{}

func (nopStore) Stat(string) (int64, error)                          { return 0, nil }
func (nopStore) SetStat(string, int64) error                         { return nil }
func (nopStore) UpdateStat(string, func(int64) int64) (int64, error) { return 0, nil }
func (nopStore) RecordScore(int) error                               { return nil }
func (nopStore) Achievements() (map[string]bool, error)              { return nil, nil }
func (nopStore) UnlockAchievement(string) error                      { return nil }
func (nopStore) Purchases() (map[string]bool, error)                 { return nil, nil }

type nopAudio struct{}

func (nopAudio) Play(string) {}
func (nopAudio) StartMusic() {}
func (nopAudio) StopMusic()  {}

type nopPresenter struct{}

func (nopPresenter) Notify(string)    {}
func (nopPresenter) GameOver(Summary) {}

// fill replaces nil collaborators with no-ops.
func (d Deps) fill() Deps {
	if d.Store == nil {
		d.Store = nopStore{}
	}
	if d.Audio == nil {
		d.Audio = nopAudio{}
	}
	if d.Presenter == nil {
		d.Presenter = nopPresenter{}
	}
	return d
}
