// Package replay records platformer runs as input logs and replays them to
// check that the simulation is deterministic.
package replay

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/world"
)

// FormatVersion is bumped whenever the encoded layout changes.
const FormatVersion = 1

var (
	// ErrMismatch is returned by Verify when a replay diverges from its recording.
	ErrMismatch = errors.New("replay: snapshot mismatch")
	// ErrVersion is returned when a file was written by an incompatible version.
	ErrVersion = errors.New("replay: unsupported format version")
)

// Frame is the input held during one Animate call.
type Frame struct {
	DT    float64 `msgpack:"dt"`
	Left  bool    `msgpack:"l,omitempty"`
	Right bool    `msgpack:"r,omitempty"`
	Up    bool    `msgpack:"u,omitempty"`
}

// Input converts the frame back into simulation input.
func (f Frame) Input() world.Input {
	return world.Input{Left: f.Left, Right: f.Right, Up: f.Up}
}

// Snapshot is the observable end state of a run.
type Snapshot struct {
	Player    core.Vector `msgpack:"player"`
	Speed     core.Vector `msgpack:"speed"`
	Actors    int         `msgpack:"actors"`
	CoinsLeft int         `msgpack:"coins_left"`
	Deaths    int         `msgpack:"deaths"`
}

// Capture reads a snapshot from a level.
func Capture(lvl *world.Level, deaths int) Snapshot {
	return Snapshot{
		Player:    lvl.Player().Pos(),
		Speed:     lvl.Player().Speed(),
		Actors:    len(lvl.Actors()),
		CoinsLeft: lvl.CoinsLeft(),
		Deaths:    deaths,
	}
}

// Session is a recorded run of a single level.
type Session struct {
	Version  int           `msgpack:"version"`
	ID       string        `msgpack:"id"`
	LevelID  string        `msgpack:"level_id"`
	Rows     []string      `msgpack:"rows"`
	Physics  world.Physics `msgpack:"physics"`
	Seed     int64         `msgpack:"seed"`
	Frames   []Frame       `msgpack:"frames"`
	Final    Snapshot      `msgpack:"final"`
	Recorded time.Time     `msgpack:"recorded"`
}

// Duration returns the simulated time covered by the frames.
func (s *Session) Duration() time.Duration {
	total := 0.0
	for _, f := range s.Frames {
		total += f.DT
	}
	return time.Duration(total * float64(time.Second))
}

// Build recreates the level the session was recorded on.
func (s *Session) Build() (*world.Level, error) {
	return world.ParsePlan(s.Rows,
		world.WithPhysics(s.Physics),
		world.WithPhase(world.PhaseFromSeed(s.Seed)),
	)
}

// Recorder accumulates frames for a level run.
type Recorder struct {
	session Session
	deaths  int
}

// NewRecorder starts a recording. lvl must be freshly built from rows with
// the given seed so that Verify can rebuild it.
func NewRecorder(levelID string, rows []string, lvl *world.Level, seed int64) *Recorder {
	return &Recorder{
		session: Session{
			Version:  FormatVersion,
			ID:       uuid.NewString(),
			LevelID:  levelID,
			Rows:     append([]string(nil), rows...),
			Physics:  lvl.Physics(),
			Seed:     seed,
			Recorded: time.Now().UTC(),
		},
	}
}

// Record appends one Animate call and the events it produced.
func (r *Recorder) Record(dt float64, in world.Input, events []world.Event) {
	r.session.Frames = append(r.session.Frames, Frame{DT: dt, Left: in.Left, Right: in.Right, Up: in.Up})
	for _, e := range events {
		if e.Kind == world.EventDeath {
			r.deaths++
		}
	}
}

// Frames returns the number of recorded frames.
func (r *Recorder) Frames() int {
	return len(r.session.Frames)
}

// Finish seals the session with the level's current state.
func (r *Recorder) Finish(lvl *world.Level) *Session {
	s := r.session
	s.Frames = append([]Frame(nil), r.session.Frames...)
	s.Final = Capture(lvl, r.deaths)
	return &s
}

// Verify rebuilds the level, replays every frame and compares the result
// with the recorded snapshot.
func Verify(s *Session) (Snapshot, error) {
	lvl, err := s.Build()
	if err != nil {
		return Snapshot{}, fmt.Errorf("replay: rebuild level %s: %w", s.LevelID, err)
	}

	deaths := 0
	for _, f := range s.Frames {
		lvl.Animate(f.DT, f.Input())
		for _, e := range lvl.DrainEvents() {
			if e.Kind == world.EventDeath {
				deaths++
			}
		}
	}

	got := Capture(lvl, deaths)
	if got != s.Final {
		return got, fmt.Errorf("%w: got %+v, recorded %+v", ErrMismatch, got, s.Final)
	}
	return got, nil
}

// Encode writes a session in msgpack form.
func Encode(w io.Writer, s *Session) error {
	if err := msgpack.NewEncoder(w).Encode(s); err != nil {
		return fmt.Errorf("replay: encode: %w", err)
	}
	return nil
}

// Decode reads a session written by Encode.
func Decode(r io.Reader) (*Session, error) {
	var s Session
	if err := msgpack.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("replay: decode: %w", err)
	}
	if s.Version != FormatVersion {
		return nil, fmt.Errorf("%w: %d", ErrVersion, s.Version)
	}
	return &s, nil
}

// Save writes a session to a file.
func Save(path string, s *Session) error {
	data, err := msgpack.Marshal(s)
	if err != nil {
		return fmt.Errorf("replay: encode: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("replay: write %s: %w", path, err)
	}
	return nil
}

// Load reads a session from a file.
func Load(path string) (*Session, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("replay: open %s: %w", path, err)
	}
	defer f.Close()
	return Decode(f)
}

// FileName returns the conventional file name for a session.
func FileName(s *Session) string {
	return fmt.Sprintf("%s-%s.replay", s.LevelID, s.ID)
}
