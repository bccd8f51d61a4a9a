package config

import (
	"fmt"
	"log"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Options are the drop-down lists and constants shared by the app screens.
type Options struct {
	propertyTypes     []string
	propertyStatuses  []string
	publishStatuses   []string
	leadStatuses      []string
	agentStatuses     []string
	constructionYears []int
	propertyFor       []string
	visitSlots        []string
	agentFeeAmount    float64
	pageSize          int
}

func (o Options) PropertyTypes() []string    { return slices.Clone(o.propertyTypes) }
func (o Options) PropertyStatuses() []string { return slices.Clone(o.propertyStatuses) }
func (o Options) PublishStatuses() []string  { return slices.Clone(o.publishStatuses) }
func (o Options) LeadStatuses() []string     { return slices.Clone(o.leadStatuses) }
func (o Options) AgentStatuses() []string    { return slices.Clone(o.agentStatuses) }
func (o Options) ConstructionYears() []int   { return slices.Clone(o.constructionYears) }
func (o Options) PropertyFor() []string      { return slices.Clone(o.propertyFor) }
func (o Options) VisitSlots() []string       { return slices.Clone(o.visitSlots) }
func (o Options) AgentFeeAmount() float64    { return o.agentFeeAmount }
func (o Options) PageSize() int              { return o.pageSize }

func defaultOptions() Options {
	years := make([]int, 0, 26)
	for y := 2001; y <= 2026; y++ {
		if y == 2012 {
			continue
		}
		years = append(years, y)
	}
	return Options{
		propertyTypes:     []string{"Apartment", "Plot", "Villa", "Condos", "Family", "Single Room"},
		propertyStatuses:  []string{"Ready To Move", "Mid Stage Construction", "Under Construction", "New Launch"},
		publishStatuses:   []string{"Unpublished", "Published"},
		leadStatuses:      []string{"open", "closed", "lost"},
		agentStatuses:     []string{"Active", "Inactive"},
		constructionYears: years,
		propertyFor:       []string{"Rent", "Sale", "Both"},
		visitSlots: []string{
			"09:00 AM", "10:00 AM", "11:00 AM", "12:00 PM", "01:00 PM",
			"02:00 PM", "03:00 PM", "04:00 PM", "05:00 PM", "06:00 PM",
		},
		agentFeeAmount: 5000,
		pageSize:       5,
	}
}

type Config struct {
	Port           string
	BaseURL        string
	BackendTimeout time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration

	// CatalogRefresh is a cron spec; empty disables the background refresh.
	CatalogRefresh string

	RateLimit    int
	RateWindow   time.Duration
	LiveDebounce time.Duration
	StrictBounds bool

	Options Options
}

// Load reads .env when present and then the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	return FromEnv()
}

// FromEnv builds a Config from the process environment only.
func FromEnv() (Config, error) {
	var errs []string
	dur := func(key string, def time.Duration) time.Duration {
		v, err := parseDuration(key, def)
		if err != nil {
			errs = append(errs, err.Error())
		}
		return v
	}
	num := func(key string, def int) int {
		v, err := parseInt(key, def)
		if err != nil {
			errs = append(errs, err.Error())
		}
		return v
	}

	cfg := Config{
		Port:           getenvOrDefault("PORT", "8080"),
		BaseURL:        normalizeBaseURL(getenvOrDefault("BASE_URL", "localhost:3000")),
		BackendTimeout: dur("BACKEND_TIMEOUT", 10*time.Second),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		RedisDB:        num("REDIS_DB", 0),
		CacheTTL:       dur("CACHE_TTL", 5*time.Minute),
		CatalogRefresh: getenvOrDefault("CATALOG_REFRESH", "@every 5m"),
		RateLimit:      num("RATE_LIMIT", 60),
		RateWindow:     dur("RATE_WINDOW", time.Minute),
		LiveDebounce:   dur("LIVE_DEBOUNCE", 300*time.Millisecond),
		Options:        defaultOptions(),
	}
	if v, ok := os.LookupEnv("CATALOG_REFRESH"); ok && v == "" {
		cfg.CatalogRefresh = ""
	}

	strict, err := strconv.ParseBool(getenvOrDefault("EMI_STRICT_BOUNDS", "false"))
	if err != nil {
		errs = append(errs, fmt.Sprintf("EMI_STRICT_BOUNDS: %v", err))
	}
	cfg.StrictBounds = strict

	cfg.Options.pageSize = num("PAGE_SIZE", cfg.Options.pageSize)
	if cfg.Options.pageSize <= 0 {
		errs = append(errs, "PAGE_SIZE: must be positive")
	}
	if v := os.Getenv("AGENT_FEE"); v != "" {
		fee, err := strconv.ParseFloat(v, 64)
		if err != nil || fee < 0 {
			errs = append(errs, fmt.Sprintf("AGENT_FEE: invalid value %q", v))
		} else {
			cfg.Options.agentFeeAmount = fee
		}
	}
	if cfg.RateLimit <= 0 {
		errs = append(errs, "RATE_LIMIT: must be positive")
	}
	for _, d := range []struct {
		key string
		val time.Duration
	}{
		{"RATE_WINDOW", cfg.RateWindow},
		{"BACKEND_TIMEOUT", cfg.BackendTimeout},
		{"CACHE_TTL", cfg.CacheTTL},
	} {
		if d.val <= 0 {
			errs = append(errs, d.key+": must be positive")
		}
	}

	if len(errs) > 0 {
		return Config{}, fmt.Errorf("invalid configuration: %s", strings.Join(errs, "; "))
	}
	return cfg, nil
}

// getenvOrDefault returns the environment variable value if set, otherwise returns def
func getenvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def, fmt.Errorf("%s: %v", key, err)
	}
	return d, nil
}

func parseInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def, fmt.Errorf("%s: %v", key, err)
	}
	return n, nil
}

// normalizeBaseURL adds the scheme the app used to prepend to BASE_URL.
func normalizeBaseURL(raw string) string {
	raw = strings.TrimRight(strings.TrimSpace(raw), "/")
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}
	return raw
}
