package model

import (
	"com.github.tunahansezen/karm/pkg/constant"
	"encoding/json"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"strings"
)

type InstallConfig struct {
	Arch       string     `yaml:"arch"`
	Packages   []string   `yaml:"packages"`
	Docker     Docker     `yaml:"docker"`
	Kubernetes Kubernetes `yaml:"kubernetes"`
}

type Docker struct {
	Repo   Repo            `yaml:"repo"`
	Daemon DockerDaemonCfg `yaml:"daemon"`
}

type Kubernetes struct {
	Repo Repo `yaml:"repo"`
}

type Repo struct {
	Name    string `yaml:"name"`
	Address string `yaml:"address"`
	Key     string `yaml:"key"`
}

func (repo Repo) ShortName() string {
	return strings.ReplaceAll(strings.ToLower(repo.Name), " ", "")
}

// ExactAddress resolves the {distro} and {codename} placeholders against the
// detected host distribution.
func (repo Repo) ExactAddress(distro, codename string) string {
	address := strings.ReplaceAll(repo.Address, "{distro}", distro)
	return strings.ReplaceAll(address, "{codename}", codename)
}

func (repo Repo) ExactKey(distro string) string {
	return strings.ReplaceAll(repo.Key, "{distro}", distro)
}

type DockerDaemonCfg struct {
	StorageDriver string `yaml:"storageDriver" json:"storage-driver"`
}

func (ddc DockerDaemonCfg) MarshallJson() []byte {
	bytes, _ := json.MarshalIndent(ddc, "", "  ")
	return append(bytes, []byte("\n")...)
}

func InstallCfgViperDecodeHook() viper.DecoderConfigOption {
	return viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToSliceHookFunc(","),
		),
	)
}

func DefaultInstallConfig() InstallConfig {
	var ic InstallConfig
	ic.Arch = constant.DefaultArch
	ic.Packages = constant.DefaultPackages
	ic.Docker.Repo = Repo{
		Name:    constant.DefaultDockerRepoName,
		Address: constant.DefaultDockerRepoAddress,
		Key:     constant.DefaultDockerRepoKey,
	}
	ic.Docker.Daemon.StorageDriver = constant.DefaultStorageDriver
	ic.Kubernetes.Repo = Repo{
		Name:    constant.DefaultKubeRepoName,
		Address: constant.DefaultKubeRepoAddress,
		Key:     constant.DefaultKubeRepoKey,
	}
	return ic
}
