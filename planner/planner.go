package planner

import (
	"time"

	"github.com/bluele/gcache"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/metro/core"
	"github.com/katalvlaran/metro/dijkstra"
)

// Defaults for New.
const (
	DefaultCacheSize = 1024
	DefaultTTL       = 10 * time.Minute
)

// Options configures a Planner.
type Options struct {
	// Fare prices every route. nil keeps dijkstra's estimate.
	Fare dijkstra.FareFunc

	// CacheSize bounds the number of cached routes; 0 disables caching.
	CacheSize int

	// TTL expires cached routes; 0 keeps them until evicted.
	TTL time.Duration

	Logger logrus.FieldLogger
}

// Option represents a functional option for configuring a Planner.
type Option func(*Options)

// WithFare sets the fare function passed to ShortestPath.
func WithFare(fn dijkstra.FareFunc) Option {
	return func(o *Options) { o.Fare = fn }
}

// WithCacheSize bounds the cache; values <= 0 disable it.
func WithCacheSize(size int) Option {
	return func(o *Options) {
		if size < 0 {
			size = 0
		}
		o.CacheSize = size
	}
}

// WithTTL sets the cache entry lifetime; values <= 0 mean no expiry.
func WithTTL(ttl time.Duration) Option {
	return func(o *Options) {
		if ttl < 0 {
			ttl = 0
		}
		o.TTL = ttl
	}
}

// WithLogger sets the logger used for cache diagnostics.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns a cached planner with dijkstra's fare estimate.
func DefaultOptions() Options {
	return Options{
		CacheSize: DefaultCacheSize,
		TTL:       DefaultTTL,
		Logger:    logrus.StandardLogger(),
	}
}

// Stats reports cache effectiveness.
type Stats struct {
	Hits   uint64
	Misses uint64
}

// Planner answers Route queries for one network.
type Planner struct {
	net   *core.Network
	opts  Options
	cache gcache.Cache
	log   logrus.FieldLogger
}

// New returns a Planner over n.
func New(n *core.Network, opts ...Option) *Planner {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	p := &Planner{net: n, opts: o, log: o.Logger.WithField("component", "planner")}
	if o.CacheSize > 0 {
		b := gcache.New(o.CacheSize).LRU()
		if o.TTL > 0 {
			b = b.Expiration(o.TTL)
		}
		p.cache = b.Build()
	}

	return p
}

// Route returns the shortest route from src to dst, from cache when the
// network has not changed since it was computed.
func (p *Planner) Route(src, dst string) dijkstra.PathResult {
	if p.cache == nil {
		return p.compute(src, dst)
	}

	key := routeKey{version: p.net.Version(), src: src, dst: dst}
	if v, err := p.cache.Get(key); err == nil {
		p.log.WithFields(key.fields()).Debug("route cache hit")

		return clone(v.(dijkstra.PathResult))
	}

	res := p.compute(src, dst)
	if err := p.cache.Set(key, clone(res)); err != nil {
		p.log.WithError(err).WithFields(key.fields()).Warn("route cache set failed")
	}

	return res
}

// Stats returns hit and miss counters. A planner without a cache counts
// nothing.
func (p *Planner) Stats() Stats {
	if p.cache == nil {
		return Stats{}
	}

	return Stats{Hits: p.cache.HitCount(), Misses: p.cache.MissCount()}
}

// Purge drops every cached route.
func (p *Planner) Purge() {
	if p.cache != nil {
		p.cache.Purge()
	}
}

func (p *Planner) compute(src, dst string) dijkstra.PathResult {
	var opts []dijkstra.Option
	if p.opts.Fare != nil {
		opts = append(opts, dijkstra.WithFare(p.opts.Fare))
	}

	return dijkstra.ShortestPath(p.net, src, dst, opts...)
}

// routeKey identifies a cached route. Station names may contain any
// character, so the key stays a struct rather than a joined string.
type routeKey struct {
	version  uint64
	src, dst string
}

func (k routeKey) fields() logrus.Fields {
	return logrus.Fields{"version": k.version, "src": k.src, "dst": k.dst}
}

func clone(r dijkstra.PathResult) dijkstra.PathResult {
	r.Path = append([]string(nil), r.Path...)
	r.Lines = append([]string(nil), r.Lines...)
	if r.Path == nil {
		r.Path = []string{}
	}
	if r.Lines == nil {
		r.Lines = []string{}
	}

	return r
}
