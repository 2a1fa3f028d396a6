package configs

import (
	"fmt"

	"github.com/railwayapp/changelog/constants"
	"github.com/railwayapp/changelog/entity"
)

func (c *Configs) GetChangelogConfig() (*entity.ChangelogConfig, error) {
	if err := c.readInConfig(); err != nil {
		return nil, fmt.Errorf("read config %s: %w", c.viper.ConfigFileUsed(), err)
	}

	var cfg entity.ChangelogConfig
	if err := c.viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.Output == "" {
		cfg.Output = constants.DefaultOutput
		cfg.OutputDefaulted = true
	}

	return &cfg, nil
}
