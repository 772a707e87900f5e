package os

import (
	"bytes"
	"com.github.tunahansezen/karm/pkg/util"
	"fmt"
	"github.com/fatih/color"
	"github.com/guumaster/logsymbols"
	log "github.com/sirupsen/logrus"
	"io"
	"os"
	"os/exec"
	"strings"
)

var (
	OS       Type
	DistroID string
	Codename string
)

type Type int

const (
	Ubuntu Type = iota
	Debian
	Raspbian
)

// Runner executes a shell command and returns its trimmed output. Silent
// commands keep their output off the terminal.
type Runner interface {
	Run(command string, silent bool) (string, error)
}

type ShellRunner struct{}

func (ShellRunner) Run(command string, silent bool) (string, error) {
	log.Tracef("CMD - \"%s\"", command)
	cmd := exec.Command("/bin/sh", "-c", command)
	if silent {
		out, err := cmd.CombinedOutput()
		returnStr := strings.TrimSuffix(string(out), "\n")
		if err != nil {
			log.Debug(returnStr)
		}
		log.Tracef("RETURNSTR - \"%s\"", returnStr)
		return returnStr, err
	}
	var bs bytes.Buffer
	cmd.Stdout = io.MultiWriter(os.Stdout, &bs)
	cmd.Stderr = os.Stderr
	err := cmd.Run()
	return strings.TrimSuffix(bs.String(), "\n"), err
}

// DetectOS resolves the distribution family, apt distro id and release
// codename from /etc/os-release. Only Debian-family hosts are supported.
func DetectOS(r Runner) error {
	osOutput, err := r.Run("awk -F= '/^NAME/{print $2}' /etc/os-release | tr -d '\"'", true)
	if err != nil {
		return err
	}
	osOutputLower := strings.ToLower(osOutput)
	if strings.Contains(osOutputLower, "ubuntu") {
		OS = Ubuntu
	} else if strings.Contains(osOutputLower, "raspbian") {
		OS = Raspbian
	} else if strings.Contains(osOutputLower, "debian") {
		OS = Debian
	} else {
		return fmt.Errorf("unsupported OS: %s", osOutput)
	}
	DistroID, err = r.Run("awk -F= '/^ID=/{print $2}' /etc/os-release | tr -d '\"'", true)
	if err != nil {
		return err
	}
	Codename, err = r.Run("awk -F= '/^VERSION_CODENAME/{print $2}' /etc/os-release | tr -d '\"'", true)
	return err
}

func Exit(message string, code int) {
	if util.GetSpinner() != nil {
		suffix := util.GetSpinner().Suffix
		if code != 0 {
			util.StopSpinner(suffix[1:], logsymbols.Error)
		} else {
			util.StopSpinner(suffix[1:], logsymbols.Success)
		}
	}
	if message != "" {
		if code == 0 {
			color.Green(message)
		} else {
			color.Red(message)
		}
	}
	fmt.Print("\033[?25h") // make cursor visible
	os.Exit(code)
}
