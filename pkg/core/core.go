package core

import (
	cfg "com.github.tunahansezen/karm/pkg/config"
	"com.github.tunahansezen/karm/pkg/constant"
	"com.github.tunahansezen/karm/pkg/os"
	"com.github.tunahansezen/karm/pkg/path"
	"com.github.tunahansezen/karm/pkg/util"
	"errors"
	"fmt"
	"github.com/hashicorp/go-version"
	"os/exec"
	"strings"
)

var (
	DefaultDockerVersion = constant.KnownDockerVersions[0]
	DockerVersion        string
)

// PreRun validates the environment before anything touches the host: root
// privileges, a parseable docker version and a Debian-family OS.
func PreRun() {
	toggleDebug()
	uid, err := os.ShellRunner{}.Run("id -u", true)
	if err != nil {
		os.Exit(err.Error(), 1)
	}
	if uid != "0" {
		os.Exit("karm must be run as root. Try again with \"sudo\"", 1)
	}
	dockerSemVer, err := version.NewVersion(DockerVersion)
	if err != nil {
		os.Exit(fmt.Sprintf("Cannot parse docker version \"%s\"", DockerVersion), 1)
	}
	minSemVer, _ := version.NewVersion(DefaultDockerVersion)
	if dockerSemVer.LessThan(minSemVer) {
		os.Exit(fmt.Sprintf("Minimum supported docker version is \"%s\"", minSemVer), 1)
	}
	known := false
	for _, knownVersion := range constant.KnownDockerVersions {
		if strings.HasPrefix(DockerVersion, knownVersion) {
			known = true
			break
		}
	}
	if !known {
		util.PrintWarning(fmt.Sprintf("docker version \"%s\" is not in the known-good list (see --list)",
			DockerVersion))
	}
	if err = os.DetectOS(os.ShellRunner{}); err != nil {
		os.Exit(err.Error(), 1)
	}
	if err = path.CalculatePaths(); err != nil {
		os.Exit(err.Error(), 1)
	}
	if err = cfg.ReadConfig(); err != nil {
		os.Exit(err.Error(), 1)
	}
}

// RunProvision wires the real runner and package manager and executes the
// pipeline. Any step error aborts with the step's message.
func RunProvision() {
	runner := os.ShellRunner{}
	p := &Provisioner{
		Cfg:           cfg.InstallCfg,
		DockerVersion: DockerVersion,
		PM:            os.NewApt(runner),
		Runner:        runner,
	}
	if err := p.Provision(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(err.Error(), exitErr.ExitCode())
		}
		os.Exit(err.Error(), 1)
	}
}
