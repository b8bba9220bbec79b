package polish

import (
	"strings"

	"github.com/golang/glog"
	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"
)

// DefaultCacheSize is the number of parsed lines a Session remembers.
const DefaultCacheSize = 128

// Session runs lines against one Environment. Parsed lines are cached by
// their text; names in a cached tree are still resolved when it is
// evaluated, so a cached line follows later changes to the environment.
type Session struct {
	env   *Environment
	cache *lru.Cache
}

// NewSession creates a session with an empty environment. A cacheSize of
// zero or less disables the parse cache.
func NewSession(cacheSize int) (*Session, error) {
	s := &Session{env: NewEnvironment()}
	if cacheSize > 0 {
		cache, err := lru.New(cacheSize)
		if err != nil {
			return nil, errors.Wrapf(err, "creating parse cache of size %d", cacheSize)
		}
		s.cache = cache
	}
	return s, nil
}

func (s *Session) Env() *Environment {
	return s.env
}

// Run evaluates one line. Statements give 0.
func (s *Session) Run(line string) (float64, error) {
	node, err := s.Parse(line)
	if err != nil {
		glog.V(1).Infof("rejected %q: %v", line, err)
		return 0, err
	}

	ret, err := Exec(node, s.env)
	if err != nil {
		glog.V(1).Infof("failed %s: %v", node, err)
		return 0, err
	}
	if glog.V(1) {
		glog.Infof("%s => %s", node, FormatNumber(ret))
	}
	return ret, nil
}

// Parse parses line, going through the cache when there is one. Lines
// that fail to parse are not cached.
func (s *Session) Parse(line string) (Node, error) {
	key := strings.TrimSpace(line)
	if s.cache != nil {
		if cached, ok := s.cache.Get(key); ok {
			glog.V(2).Infof("parse cache hit for %q", key)
			return cached.(Node), nil
		}
	}

	tokens, err := Scan(key)
	if err != nil {
		return nil, err
	}
	if glog.V(2) {
		glog.Infof("tokens: %s", PrintTokens(tokens))
	}

	node, err := Parse(tokens)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Add(key, node)
	}
	return node, nil
}

// CachedLines returns how many parsed lines are cached.
func (s *Session) CachedLines() int {
	if s.cache == nil {
		return 0
	}
	return s.cache.Len()
}

// Reset forgets every variable and function, and the parse cache.
func (s *Session) Reset() {
	s.env.Clear()
	if s.cache != nil {
		s.cache.Purge()
	}
}
