package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress        string
	DatabaseURI       string
	RedisAddress      string
	PaymentGateway    string
	JWTSecret         string
	TaxRate           float64
	ShippingCost      float64
	OrderNumberPrefix string
	CartTTL           time.Duration
	CartSweepInterval time.Duration
	CartSweepBatch    int
	WorkerPoolSize    int
	ShutdownTimeout   time.Duration
}

const (
	defaultRunAddress        = ":8080"
	defaultJWTSecret         = "change-me-in-production"
	defaultTaxRate           = 0.16
	defaultShippingCost      = 0
	defaultOrderNumberPrefix = "ORD-"
	defaultCartTTL           = 30 * 24 * time.Hour
	defaultCartSweepInterval = 5 * time.Minute
	defaultCartSweepBatch    = 64
	defaultWorkerPoolSize    = 4
	defaultShutdownTimeout   = 10 * time.Second
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:        getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:       getString(lookup, "DATABASE_URI", ""),
		RedisAddress:      getString(lookup, "REDIS_ADDR", ""),
		PaymentGateway:    getString(lookup, "PAYMENT_GATEWAY_ADDRESS", ""),
		JWTSecret:         getString(lookup, "JWT_SECRET", defaultJWTSecret),
		TaxRate:           getFloat(lookup, "TAX_RATE", defaultTaxRate),
		ShippingCost:      getFloat(lookup, "SHIPPING_COST", defaultShippingCost),
		OrderNumberPrefix: getString(lookup, "ORDER_NUMBER_PREFIX", defaultOrderNumberPrefix),
		CartTTL:           getDuration(lookup, "CART_TTL", defaultCartTTL),
		CartSweepInterval: getDuration(lookup, "CART_SWEEP_INTERVAL", defaultCartSweepInterval),
		CartSweepBatch:    getInt(lookup, "CART_SWEEP_BATCH", defaultCartSweepBatch),
		WorkerPoolSize:    getInt(lookup, "WORKER_POOL_SIZE", defaultWorkerPoolSize),
		ShutdownTimeout:   getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("aurafix", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		cartTTLStr         = cfg.CartTTL.String()
		sweepIntervalStr   = cfg.CartSweepInterval.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.RedisAddress, "r", cfg.RedisAddress, "Redis address for cart storage")
	fs.StringVar(&cfg.PaymentGateway, "p", cfg.PaymentGateway, "Push payment gateway base URL")
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", cfg.JWTSecret, "Secret for signing auth tokens")
	fs.Float64Var(&cfg.TaxRate, "tax-rate", cfg.TaxRate, "Flat VAT rate applied to cart subtotals")
	fs.Float64Var(&cfg.ShippingCost, "shipping-cost", cfg.ShippingCost, "Flat shipping cost per order")
	fs.StringVar(&cfg.OrderNumberPrefix, "order-prefix", cfg.OrderNumberPrefix, "Prefix for human-facing order numbers")
	fs.StringVar(&cartTTLStr, "cart-ttl", cartTTLStr, "Persisted cart lifetime")
	fs.StringVar(&sweepIntervalStr, "sweep-interval", sweepIntervalStr, "Interval between cart validation sweeps")
	fs.IntVar(&cfg.CartSweepBatch, "sweep-batch", cfg.CartSweepBatch, "Maximum carts per validation sweep")
	fs.IntVar(&cfg.WorkerPoolSize, "worker-pool", cfg.WorkerPoolSize, "Number of concurrent sweep workers")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.CartTTL, err = time.ParseDuration(cartTTLStr); err != nil {
		return nil, fmt.Errorf("invalid cart ttl: %w", err)
	}

	if cfg.CartSweepInterval, err = time.ParseDuration(sweepIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid sweep interval: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("JWT_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read jwt secret file: %w", err)
		}
		cfg.JWTSecret = string(content)
	}

	if cfg.TaxRate < 0 || cfg.TaxRate >= 1 {
		return nil, fmt.Errorf("tax rate must be within [0, 1)")
	}

	if cfg.ShippingCost < 0 {
		return nil, fmt.Errorf("shipping cost must be non-negative")
	}

	if cfg.WorkerPoolSize <= 0 {
		cfg.WorkerPoolSize = defaultWorkerPoolSize
	}

	if cfg.CartSweepBatch <= 0 {
		cfg.CartSweepBatch = defaultCartSweepBatch
	}

	if cfg.CartTTL <= 0 {
		cfg.CartTTL = defaultCartTTL
	}

	if cfg.CartSweepInterval <= 0 {
		cfg.CartSweepInterval = defaultCartSweepInterval
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	if cfg.RedisAddress == "" {
		return nil, fmt.Errorf("redis address must be provided")
	}

	if cfg.PaymentGateway == "" {
		return nil, fmt.Errorf("payment gateway address must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getFloat(lookup envLookup, key string, def float64) float64 {
	if v, ok := lookup(key); ok && v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
