package main

import (
	"github.com/robfig/config"
	"go.uber.org/zap"
)

const configGroup = "dbfdump"

type dumpConfig struct {
	Encoding string
	Strict   bool
}

func defaultConfig() dumpConfig {
	return dumpConfig{Encoding: "utf-8"}
}

// readConfig loads the [dbfdump] group of an ini file. Missing keys keep their
// defaults; an empty path returns the defaults.
func readConfig(path string, logger *zap.Logger) (dumpConfig, error) {
	conf := defaultConfig()
	if path == "" {
		return conf, nil
	}
	confReader, err := config.ReadDefault(path)
	if err != nil {
		return conf, err
	}
	if v, err := confReader.String(configGroup, "encoding"); err == nil {
		conf.Encoding = v
	} else {
		logger.Info("using default value", zap.String("field", "encoding"), zap.String("default", conf.Encoding), zap.Error(err))
	}
	if v, err := confReader.Bool(configGroup, "strict"); err == nil {
		conf.Strict = v
	} else {
		logger.Info("using default value", zap.String("field", "strict"), zap.Bool("default", conf.Strict), zap.Error(err))
	}
	return conf, nil
}
