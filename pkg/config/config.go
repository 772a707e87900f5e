package config

import (
	"bytes"
	"com.github.tunahansezen/karm/pkg/config/model"
	"com.github.tunahansezen/karm/pkg/constant"
	"com.github.tunahansezen/karm/pkg/path"
	"fmt"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
	"os"
)

var (
	InstallCfg     model.InstallConfig
	installCfgFile string
)

// ReadConfig loads the install config, falling back to defaults. A missing
// config file is materialized with the defaults so later runs can be tuned.
func ReadConfig() error {
	installCfgFile = fmt.Sprintf("%s/%s.%s", path.GetKarmCfgDir(), constant.InstallCfgName, constant.DefaultCfgType)
	InstallCfg = model.DefaultInstallConfig()
	if _, err := os.Stat(installCfgFile); err == nil {
		viper.SetConfigName(constant.InstallCfgName)
		viper.SetConfigType(constant.DefaultCfgType)
		viper.AddConfigPath(path.GetKarmCfgDir())
		if err = viper.ReadInConfig(); err != nil {
			return err
		}
		log.Debugf("Using install config file: %s", installCfgFile)
		if err = viper.Unmarshal(&InstallCfg, model.InstallCfgViperDecodeHook()); err != nil {
			return fmt.Errorf("error occurred while reading install config file\n%s", err.Error())
		}
		return nil
	}
	return writeConfig()
}

func writeConfig() error {
	if err := os.MkdirAll(path.GetKarmCfgDir(), os.FileMode(0755)); err != nil {
		return err
	}
	var b bytes.Buffer
	yamlEncoder := yaml.NewEncoder(&b)
	yamlEncoder.SetIndent(2)
	if err := yamlEncoder.Encode(&InstallCfg); err != nil {
		return err
	}
	log.Debugf("Writing default install config to: %s", installCfgFile)
	return os.WriteFile(installCfgFile, b.Bytes(), os.FileMode(0644))
}
