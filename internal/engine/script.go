package engine

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-miner/internal/core"
)

// ScriptSource replays a fixed list of frames.
//
// Each token is one frame: "d" holds d, "a+d" holds a and d together,
// "." holds nothing, and a "*N" suffix repeats the frame N times.
// Keys held in one frame are released before the next.
type ScriptSource struct {
	frames [][]core.Key
	pos    int
	held   []core.Key
}

// ParseScript builds a source from tokens such as {"d", "s*3", ".", "e"}.
func ParseScript(tokens []string) (*ScriptSource, error) {
	src := &ScriptSource{}
	for _, tok := range tokens {
		keys, count, err := parseToken(tok)
		if err != nil {
			return nil, err
		}
		for i := 0; i < count; i++ {
			src.frames = append(src.frames, keys)
		}
	}
	return src, nil
}

func parseToken(tok string) ([]core.Key, int, error) {
	count := 1
	if body, rep, ok := strings.Cut(tok, "*"); ok {
		n, err := strconv.Atoi(rep)
		if err != nil || n < 1 {
			return nil, 0, fmt.Errorf("script: bad repeat in %q", tok)
		}
		tok, count = body, n
	}
	if tok == "" {
		return nil, 0, fmt.Errorf("script: empty frame")
	}
	if tok == "." {
		return nil, count, nil
	}

	parts := strings.Split(tok, "+")
	keys := make([]core.Key, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			return nil, 0, fmt.Errorf("script: empty key in %q", tok)
		}
		keys = append(keys, core.Key(p))
	}
	return keys, count, nil
}

// Len returns the number of frames in the script.
func (s *ScriptSource) Len() int { return len(s.frames) }

// Next returns key-ups for the previous frame followed by key-downs for this one.
func (s *ScriptSource) Next(ctx context.Context) ([]core.KeyEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.pos >= len(s.frames) {
		return nil, io.EOF
	}

	keys := s.frames[s.pos]
	s.pos++

	events := make([]core.KeyEvent, 0, len(s.held)+len(keys))
	for _, k := range s.held {
		events = append(events, core.KeyEvent{Key: k})
	}
	for _, k := range keys {
		events = append(events, core.KeyEvent{Key: k, Down: true})
	}
	s.held = keys
	return events, nil
}
