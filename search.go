package uszipcode

import (
	"errors"
	"fmt"
	"log/slog"
)

// DefaultLimit is the result count of the By* convenience searches.
const DefaultLimit = 5

// DefaultSearchRadius is the radius in miles of ByCoordinates.
const DefaultSearchRadius = 25.0

// Config contains configuration options for a SearchEngine.
type Config struct {
	DBFilePath    string // Dataset file (default: ~/.uszipcode/<variant>_db.sqlite)
	DownloadURL   string `validate:"omitempty,url"` // Where a missing dataset file is fetched from
	Variant       Variant
	MinSimilarity int          `validate:"gte=0,lte=100"` // Fuzzy match floor, 0-100
	Store         Store        `validate:"-"`             // Overrides the dataset file
	Logger        *slog.Logger `validate:"-"`
}

// Option is a functional option for configuring a SearchEngine.
type Option func(*Config)

// WithDBFilePath sets the dataset file location.
func WithDBFilePath(path string) Option {
	return func(c *Config) {
		c.DBFilePath = path
	}
}

// WithDownloadURL sets the URL a missing dataset file is downloaded from.
func WithDownloadURL(url string) Option {
	return func(c *Config) {
		c.DownloadURL = url
	}
}

// WithComprehensive selects the comprehensive dataset.
func WithComprehensive() Option {
	return func(c *Config) {
		c.Variant = ComprehensiveDataset
	}
}

// WithStore makes the engine read from s instead of a dataset file. The
// engine takes ownership and closes s.
func WithStore(s Store) Option {
	return func(c *Config) {
		c.Store = s
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) {
		c.Logger = l
	}
}

// WithMinSimilarity sets the fuzzy match floor.
func WithMinSimilarity(n int) Option {
	return func(c *Config) {
		c.MinSimilarity = n
	}
}

func defaultConfig() *Config {
	return &Config{
		Variant:       SimpleDataset,
		MinSimilarity: DefaultMinSimilarity,
	}
}

// SearchEngine answers zipcode queries against one dataset. It owns its
// store connection and name corpus; it is not safe for concurrent use, so
// each goroutine should create its own engine.
type SearchEngine struct {
	store  Store
	cfg    *Config
	logger *slog.Logger
	corpus *nameCorpus
	closed bool
}

// NewSearchEngine opens a search engine. Without WithStore it opens the
// dataset file, downloading it first when it is missing.
func NewSearchEngine(opts ...Option) (*SearchEngine, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.DownloadURL == "" {
		cfg.DownloadURL = DefaultDownloadURL(cfg.Variant)
	}
	if err := validateStruct(cfg); err != nil {
		return nil, fmt.Errorf("engine config: %w", err)
	}

	store := cfg.Store
	if store == nil {
		if cfg.DBFilePath == "" {
			path, err := DefaultDBFilePath(cfg.Variant)
			if err != nil {
				return nil, err
			}
			cfg.DBFilePath = path
		}
		if err := ensureDBFile(cfg.DBFilePath, cfg.DownloadURL, cfg.Logger); err != nil {
			return nil, err
		}
		s, err := OpenSQLite(cfg.DBFilePath, cfg.Variant)
		if err != nil {
			return nil, err
		}
		store = s
	}

	return &SearchEngine{store: store, cfg: cfg, logger: cfg.Logger}, nil
}

// WithSearchEngine opens an engine, passes it to fn and always closes it.
func WithSearchEngine(fn func(*SearchEngine) error, opts ...Option) error {
	e, err := NewSearchEngine(opts...)
	if err != nil {
		return err
	}
	defer func() {
		if r := recover(); r != nil {
			e.Close()
			panic(r)
		}
	}()
	return errors.Join(fn(e), e.Close())
}

// Close releases the store and the name corpus. Closing twice is a no-op.
func (e *SearchEngine) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true
	e.corpus = nil
	if err := e.store.Close(); err != nil {
		return fmt.Errorf("close store: %w", err)
	}
	return nil
}

// Query runs a search combining any of the filters in p. Conflicting or
// invalid parameters fail before the store is touched, and a city or state
// nobody can resolve fails with ErrUnresolvableName.
func (e *SearchEngine) Query(p QueryParams) ([]Zipcode, error) {
	if e.closed {
		return nil, errors.New("search engine is closed")
	}
	if err := validateParams(p); err != nil {
		return nil, err
	}
	city, state, err := e.resolveCityState(p.City, p.State)
	if err != nil {
		return nil, err
	}

	q := buildQuery(p, city, state)
	if q.radius == nil {
		e.logger.Debug("query.dispatch", "path", "store", "predicates", len(q.stmt.Where), "limit", q.limit)
		return e.store.Select(q.stmt)
	}

	if q.radius.Miles >= largeRadiusMiles {
		e.logger.Warn("query.large_radius", "radius_miles", q.radius.Miles,
			"hint", "searching by radius over 250 miles scans many rows and can be slow")
	}
	e.logger.Debug("query.dispatch", "path", "radius", "predicates", len(q.stmt.Where),
		"limit", q.limit, "by_distance", q.byDistance)
	candidates, err := e.store.Select(q.stmt)
	if err != nil {
		return nil, err
	}
	return radiusFilter(candidates, q.radius.Lat, q.radius.Lng, q.radius.Miles, q.byDistance, q.descending, q.limit), nil
}

// ByZipcode returns the record of a zipcode, zero padding short codes. A
// miss returns the empty Zipcode, never an error.
func (e *SearchEngine) ByZipcode(code string) (Zipcode, error) {
	if e.closed {
		return Zipcode{}, errors.New("search engine is closed")
	}
	return e.store.Get(PadZipcode(code))
}

// ByZipcodeNumber is ByZipcode for a numeric code, e.g. 1001 for "01001".
func (e *SearchEngine) ByZipcodeNumber(code int) (Zipcode, error) {
	if code < 0 {
		return Zipcode{}, nil
	}
	return e.ByZipcode(fmt.Sprintf("%05d", code))
}
