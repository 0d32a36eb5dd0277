package commands

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

const projectConfigName = "yml2block"

// ProjectConfig holds the optional per-project settings read from
// yml2block.yml in the working directory. Rule lists from the config are
// merged with the command-line flags; flags always win on conflicts because
// they are applied last.
type ProjectConfig struct {
	ErrorRules   []string
	WarnRules    []string
	SkipRules    []string
	WarnExitCode int
}

// LoadProjectConfig reads yml2block.yml from the current directory if it
// exists. A missing file is not an error; a malformed one is.
func LoadProjectConfig() (*ProjectConfig, error) {
	if _, err := os.Stat(projectConfigName + ".yml"); os.IsNotExist(err) {
		return &ProjectConfig{}, nil
	}

	v := viper.New()
	v.SetConfigName(projectConfigName)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix("YML2BLOCK")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading %s.yml: %w", projectConfigName, err)
	}

	return &ProjectConfig{
		ErrorRules:   v.GetStringSlice("lint.error"),
		WarnRules:    v.GetStringSlice("lint.warn"),
		SkipRules:    v.GetStringSlice("lint.skip"),
		WarnExitCode: v.GetInt("lint.warn_exit_code"),
	}, nil
}
