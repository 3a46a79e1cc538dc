package cmd

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"gofood/order-app/internal/pricing"
	"gofood/order-app/internal/service"
	"gofood/order-app/internal/storage"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type Config struct {
	APIURL         string        `mapstructure:"api_url"`
	Timeout        time.Duration `mapstructure:"timeout"`
	CurrencySymbol string        `mapstructure:"currency_symbol"`
}

type app struct {
	v       *viper.Viper
	cfgFile string
	client  storage.HTTPClient
}

// NewRootCmd builds the command tree. client may be nil, in which case a
// plain http.Client with the configured timeout is used.
func NewRootCmd(client storage.HTTPClient) *cobra.Command {
	a := &app{v: viper.New(), client: client}

	root := &cobra.Command{
		Use:           "order-app",
		Short:         "Configure, price and submit food orders",
		Long:          `order-app drives the order composition engine from a terminal: pick a dish, add extras, review the total, submit it and browse past orders.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initConfig()
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.order-app.yaml)")
	root.PersistentFlags().String("api-url", "http://localhost:8081", "Base URL of the food service")
	root.PersistentFlags().Duration("timeout", 10*time.Second, "Timeout for each remote call")
	root.PersistentFlags().String("currency-symbol", pricing.BRL.Symbol, "Currency symbol used when printing prices")

	a.v.BindPFlag("api_url", root.PersistentFlags().Lookup("api-url"))
	a.v.BindPFlag("timeout", root.PersistentFlags().Lookup("timeout"))
	a.v.BindPFlag("currency_symbol", root.PersistentFlags().Lookup("currency-symbol"))

	root.AddCommand(a.newDishCmd(), a.newOrdersCmd())
	return root
}

func (a *app) initConfig() error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			a.v.AddConfigPath(home)
		}
		a.v.SetConfigType("yaml")
		a.v.SetConfigName(".order-app")
	}

	a.v.SetEnvPrefix("ORDER_APP")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if a.cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}
	return nil
}

func (a *app) config() (Config, error) {
	var cfg Config
	if err := a.v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decode config: %w", err)
	}
	if cfg.APIURL == "" {
		return cfg, fmt.Errorf("api_url is not set")
	}
	return cfg, nil
}

func (a *app) gateway(cfg Config) *storage.RemoteGateway {
	client := a.client
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	return storage.NewRemoteGateway(cfg.APIURL, client)
}

func (a *app) composer(cfg Config) *service.Composer {
	return service.NewComposer(a.gateway(cfg), pricing.NewFormatter(cfg.CurrencySymbol))
}

func (a *app) history(cfg Config) *service.History {
	return service.NewHistory(a.gateway(cfg), pricing.NewFormatter(cfg.CurrencySymbol))
}

func Execute() {
	if err := NewRootCmd(nil).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
