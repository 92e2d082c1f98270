package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const configFileEnvName = "STOREFRONT_CONFIG_FILE"

type catalog struct {
	Endpoint      string        `mapstructure:"endpoint"`
	FetchTimeout  time.Duration `mapstructure:"fetch_timeout"`
	FetchAttempts int           `mapstructure:"fetch_attempts"`
}

type cart struct {
	SnapshotPath string        `mapstructure:"snapshot_path"`
	SnapshotTTL  time.Duration `mapstructure:"snapshot_ttl"`
}

type reveal struct {
	Delay time.Duration `mapstructure:"delay"`
}

type checkout struct {
	StorePhone string `mapstructure:"store_phone"`
}

type Config struct {
	LogLevel       slog.Level `mapstructure:"log_level"`
	HTTPServerAddr string     `mapstructure:"http_server_addr"`
	Catalog        catalog    `mapstructure:"catalog"`
	Cart           cart       `mapstructure:"cart"`
	Reveal         reveal     `mapstructure:"reveal"`
	Checkout       checkout   `mapstructure:"checkout"`
}

// Load reads the config file when one exists; a client app runs fine
// on defaults alone, so a missing file is not fatal.
func Load() Config {
	setDefaults()
	viper.SetConfigFile(getConfigFilepath())

	err := viper.ReadInConfig()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		die(err)
	}

	var cfg Config
	err = viper.UnmarshalExact(&cfg)
	if err != nil {
		die(err)
	}

	return cfg
}

func setDefaults() {
	viper.SetDefault("log_level", int(slog.LevelInfo))
	viper.SetDefault("http_server_addr", ":8080")
	viper.SetDefault("catalog.endpoint",
		"https://timekeepersserver.onrender.com/product/all?result=99999")
	viper.SetDefault("catalog.fetch_timeout", "15s")
	viper.SetDefault("catalog.fetch_attempts", 3)
	viper.SetDefault("cart.snapshot_path", "cart.json")
	viper.SetDefault("cart.snapshot_ttl", "168h")
	viper.SetDefault("reveal.delay", "1s")
	viper.SetDefault("checkout.store_phone", "919876543210")
}

func getConfigFilepath() string {
	cmdLine := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	arg := cmdLine.String("config", "storefront.yaml", "config file")
	_ = cmdLine.Parse(os.Args[1:])
	env, ok := os.LookupEnv(configFileEnvName)
	if ok {
		return env
	}
	return *arg
}

func die(err error) {
	fmt.Printf("failed to load config file: %v\n", err)
	os.Exit(2)
}

func (c Config) Print() {
	tamplate := `
	General:
	LogLevel=%q
	HTTPServerAddr=%q

	Catalog:
	Endpoint=%q
	FetchTimeout=%q
	FetchAttempts=%d

	Cart:
	SnapshotPath=%q
	SnapshotTTL=%q

	Reveal:
	Delay=%q

	Checkout:
	StorePhone=%q

`
	fmt.Println("Loaded config:")
	fmt.Printf(
		strings.TrimLeft(tamplate, "\n"),
		c.LogLevel,
		c.HTTPServerAddr,
		c.Catalog.Endpoint,
		c.Catalog.FetchTimeout,
		c.Catalog.FetchAttempts,
		c.Cart.SnapshotPath,
		c.Cart.SnapshotTTL,
		c.Reveal.Delay,
		c.Checkout.StorePhone,
	)
}
