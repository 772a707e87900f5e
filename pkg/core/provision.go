package core

import (
	"com.github.tunahansezen/karm/pkg/config/model"
	"com.github.tunahansezen/karm/pkg/constant"
	"com.github.tunahansezen/karm/pkg/os"
	"com.github.tunahansezen/karm/pkg/util"
	"fmt"
	"github.com/fatih/color"
	"github.com/guumaster/logsymbols"
	log "github.com/sirupsen/logrus"
	"strings"
)

// PackageManager is the narrow capability the pipeline needs from the host
// package manager. *os.Apt implements it; tests inject a fake.
type PackageManager interface {
	UpdateRepos() error
	Install(pkgs ...string) error
	InstallExact(pkg, version string) error
	Purge(pkg string) error
	AutoRemove() error
	Hold(pkg string) error
	AvailableVersion(pkg, filter string) (string, error)
	AddGpgKey(url, name string) (string, error)
	AddRepository(repoFileName, arch, address, keyPath string) error
	RemoveRepoFile(name string) error
	RestartService(service string) error
	CommandExists(command string) bool
	WriteFile(data []byte, dstFile string) error
}

type Provisioner struct {
	Cfg           model.InstallConfig
	DockerVersion string
	PM            PackageManager
	Runner        os.Runner
}

// Provision runs the install sequence. Each step short-circuits the rest on
// failure; there are no retries and no rollback of earlier steps.
func (p *Provisioner) Provision() error {
	if err := p.updateIndex(); err != nil {
		return err
	}
	if err := p.installDependencies(); err != nil {
		return err
	}
	if err := p.removePreviousDocker(); err != nil {
		return err
	}
	if err := p.installDocker(); err != nil {
		return err
	}
	if err := p.installKubePackages(); err != nil {
		return err
	}
	p.printSummary()
	return nil
}

func (p *Provisioner) updateIndex() error {
	util.StartSpinner("Updating repos")
	if err := p.PM.UpdateRepos(); err != nil {
		util.StopSpinner("", logsymbols.Error)
		return err
	}
	util.StopSpinner("", logsymbols.Success)
	return nil
}

func (p *Provisioner) installDependencies() error {
	util.StartSpinner(fmt.Sprintf("Installing dependencies \"%s\"", strings.Join(p.Cfg.Packages, " ")))
	if err := p.PM.Install(p.Cfg.Packages...); err != nil {
		util.StopSpinner("", logsymbols.Error)
		return err
	}
	util.StopSpinner("", logsymbols.Success)
	return nil
}

func (p *Provisioner) removePreviousDocker() error {
	if !p.PM.CommandExists("docker") {
		log.Debugf("No previous docker binary found. Skipping removal...")
		return nil
	}
	util.StartSpinner("Removing previous docker installation")
	for _, legacyPkg := range constant.LegacyDockerPackages {
		if err := p.PM.Purge(legacyPkg); err != nil {
			util.StopSpinner("", logsymbols.Error)
			return err
		}
	}
	if err := p.PM.AutoRemove(); err != nil {
		util.StopSpinner("", logsymbols.Error)
		return err
	}
	if err := p.PM.RemoveRepoFile(p.Cfg.Docker.Repo.ShortName()); err != nil {
		util.StopSpinner("", logsymbols.Error)
		return err
	}
	util.StopSpinner("", logsymbols.Success)
	return nil
}

func (p *Provisioner) installDocker() error {
	repo := p.Cfg.Docker.Repo
	util.StartSpinner("Adding docker repo")
	keyPath, err := p.PM.AddGpgKey(repo.ExactKey(os.DistroID), repo.ShortName())
	if err != nil {
		util.StopSpinner("", logsymbols.Error)
		return err
	}
	if err = p.PM.AddRepository(repo.ShortName(), p.Cfg.Arch,
		repo.ExactAddress(os.DistroID, os.Codename), keyPath); err != nil {
		util.StopSpinner("", logsymbols.Error)
		return err
	}
	if err = p.PM.UpdateRepos(); err != nil {
		util.StopSpinner("", logsymbols.Error)
		return err
	}
	util.StopSpinner("", logsymbols.Success)

	exactVer, err := p.PM.AvailableVersion(constant.DockerPackage, p.DockerVersion)
	if err != nil {
		return err
	}
	util.StartSpinner(fmt.Sprintf("Installing \"%s=%s\"", constant.DockerPackage, exactVer))
	if err = p.PM.InstallExact(constant.DockerPackage, exactVer); err != nil {
		util.StopSpinner("", logsymbols.Error)
		return err
	}
	if err = p.PM.Hold(constant.DockerPackage); err != nil {
		util.StopSpinner("", logsymbols.Error)
		return err
	}
	if err = p.PM.WriteFile(p.Cfg.Docker.Daemon.MarshallJson(), constant.DockerDaemonCfgPath); err != nil {
		util.StopSpinner("", logsymbols.Error)
		return err
	}
	if err = p.PM.RestartService("docker"); err != nil {
		util.StopSpinner("", logsymbols.Error)
		return err
	}
	util.StopSpinner("", logsymbols.Success)
	return nil
}

func (p *Provisioner) installKubePackages() error {
	repo := p.Cfg.Kubernetes.Repo
	util.StartSpinner("Adding kubernetes repo")
	keyPath, err := p.PM.AddGpgKey(repo.Key, repo.ShortName())
	if err != nil {
		util.StopSpinner("", logsymbols.Error)
		return err
	}
	if err = p.PM.AddRepository(repo.ShortName(), p.Cfg.Arch, repo.Address, keyPath); err != nil {
		util.StopSpinner("", logsymbols.Error)
		return err
	}
	if err = p.PM.UpdateRepos(); err != nil {
		util.StopSpinner("", logsymbols.Error)
		return err
	}
	util.StopSpinner("", logsymbols.Success)

	util.StartSpinner(fmt.Sprintf("Installing \"%s\"", strings.Join(constant.KubePackages, " ")))
	if err = p.PM.Install(constant.KubePackages...); err != nil {
		util.StopSpinner("", logsymbols.Error)
		return err
	}
	util.StopSpinner("", logsymbols.Success)
	return nil
}

// printSummary echoes the installed component versions for manual
// inspection. Failures here do not fail the run.
func (p *Provisioner) printSummary() {
	color.Green("Provisioning completed. Installed component versions:")
	summaryCommands := []string{
		"docker --version",
		"kubelet --version",
		"kubeadm version",
		"kubectl version --client",
	}
	for _, command := range summaryCommands {
		if _, err := p.Runner.Run(command, false); err != nil {
			log.Debugf("\"%s\" failed: %s", command, err.Error())
		}
	}
}
