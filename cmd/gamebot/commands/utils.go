package commands

import (
	"github.com/spf13/viper"

	"gamestore/gamebot/internal/app/config"
)

func loadConfig() config.Config {
	return config.MustLoad(viper.GetViper())
}
