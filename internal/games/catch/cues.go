package catch

// Cue names a sound the game asks its audio collaborator to play.
type Cue string

const (
	CueTreasure Cue = "treasure"
	CueHeart    Cue = "heart"
	CueSlow     Cue = "slow"
	CueBombHit  Cue = "bomb_hit"
	CueBombShot Cue = "bomb_shot"
	CueShoot    Cue = "shoot"
	CueGameOver Cue = "game_over"
)

// Cues lists every cue the game can emit.
var Cues = []Cue{CueTreasure, CueHeart, CueSlow, CueBombHit, CueBombShot, CueShoot, CueGameOver}

// AudioSink receives fire-and-forget sound cues.
// Implementations must not block and must never panic on a missing sound.
type AudioSink interface {
	Play(cue Cue)
}

// nopSink discards every cue.
type nopSink struct{}

func (nopSink) Play(Cue) {}
