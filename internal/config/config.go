// Package config carries the storefront settings: contact number, currency
// presentation, file locations and timer windows. Defaults match the live
// store; a config file or STOREFRONT_* environment variables override them.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	WhatsAppNumber   string `mapstructure:"whatsapp_number"`
	CurrencySymbol   string `mapstructure:"currency_symbol"`
	Locale           string `mapstructure:"locale"`
	PlaceholderImage string `mapstructure:"placeholder_image"`
	CartPath         string `mapstructure:"cart_path"`

	BannerIntervalMs int `mapstructure:"banner_interval_ms"`
	SearchDebounceMs int `mapstructure:"search_debounce_ms"`
	ClickDebounceMs  int `mapstructure:"click_debounce_ms"`
	FrameIntervalMs  int `mapstructure:"frame_interval_ms"`
}

func (c Config) BannerInterval() time.Duration {
	return time.Duration(c.BannerIntervalMs) * time.Millisecond
}

func (c Config) SearchDebounce() time.Duration {
	return time.Duration(c.SearchDebounceMs) * time.Millisecond
}

func (c Config) ClickDebounce() time.Duration {
	return time.Duration(c.ClickDebounceMs) * time.Millisecond
}

func (c Config) FrameInterval() time.Duration {
	return time.Duration(c.FrameIntervalMs) * time.Millisecond
}

// Load reads the configuration. Path may be empty, then only defaults and
// environment variables apply; a named file that cannot be read is an error,
// bad settings must not fail silently.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("whatsapp_number", "244994779159")
	v.SetDefault("currency_symbol", "Kz")
	v.SetDefault("locale", "pt-AO")
	v.SetDefault("placeholder_image", "Assets/Images/Produtos/sem-imagem.jpg")
	v.SetDefault("cart_path", "cart.json")
	v.SetDefault("banner_interval_ms", 5000)
	v.SetDefault("search_debounce_ms", 300)
	v.SetDefault("click_debounce_ms", 150)
	v.SetDefault("frame_interval_ms", 16)

	v.SetEnvPrefix("storefront")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("v.ReadInConfig: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("v.Unmarshal: %w", err)
	}

	return cfg, nil
}
