package avatar

import (
	"fmt"
	"os"
	"strings"
)

// SpriteSet holds the three text-art frames the avatar cycles through.
type SpriteSet struct {
	paths [3]string
	art   [3]string
}

// ValidateSpritePaths checks that every sprite file exists and returns
// one error per missing file. The caller prints each and exits before
// any UI is created.
func ValidateSpritePaths(idle, talk, blink string) []error {
	var errs []error
	for _, p := range []string{idle, talk, blink} {
		if p == "" {
			errs = append(errs, fmt.Errorf("missing sprite: path not set"))
			continue
		}
		if _, err := os.Stat(p); err != nil {
			errs = append(errs, fmt.Errorf("missing sprite: %s", p))
		}
	}
	return errs
}

// LoadSprites reads the three sprite files. Trailing newlines are
// trimmed so frames of equal height line up in the pane.
func LoadSprites(idle, talk, blink string) (*SpriteSet, error) {
	s := &SpriteSet{paths: [3]string{idle, talk, blink}}
	for i, p := range s.paths {
		art, err := readFrame(p)
		if err != nil {
			return nil, err
		}
		s.art[i] = art
	}
	return s, nil
}

// Reload rereads every sprite file in place. On error the previous art
// is kept so a half-written file never blanks the pet.
func (s *SpriteSet) Reload() error {
	for i, p := range s.paths {
		art, err := readFrame(p)
		if err != nil {
			return err
		}
		s.art[i] = art
	}
	return nil
}

// Paths returns the sprite file paths, for the change watcher.
func (s *SpriteSet) Paths() []string {
	return []string{s.paths[0], s.paths[1], s.paths[2]}
}

// Frame returns the art for the given animation state.
func (s *SpriteSet) Frame(st State) string {
	switch st {
	case StateTalking:
		return s.art[1]
	case StateBlinking:
		return s.art[2]
	default:
		return s.art[0]
	}
}

func readFrame(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read sprite %s: %w", path, err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}
