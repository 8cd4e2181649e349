package common

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// ConfigFile overrides the search path when set (--config).
var ConfigFile string

// ConfInit reads <configName>.yaml from /etc/mono or the working directory and
// unmarshals it into config. Environment variables prefixed with HOSTCHECK_
// override file values. A missing file is fine, defaults registered through
// viper.SetDefault still apply.
func ConfInit(configName string, config interface{}) error {
	if ConfigFile != "" {
		if !FileExists(ConfigFile) {
			return fmt.Errorf("config file %s does not exist", ConfigFile)
		}
		viper.SetConfigFile(ConfigFile)
	} else {
		viper.SetConfigName(configName)
		viper.AddConfigPath("/etc/mono")
		viper.AddConfigPath(".")
	}
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("HOSTCHECK")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Error().Err(err).Str("config", configName).Msg("Failed to parse the config file")
			return err
		}
		log.Debug().Str("config", configName).Msg("No config file found, using defaults")
	} else {
		log.Debug().Str("file", viper.ConfigFileUsed()).Msg("Loaded config file")
	}

	if err := viper.Unmarshal(config); err != nil {
		log.Error().Err(err).Str("config", configName).Msg("Failed to unmarshal the config file")
		return err
	}

	return nil
}
