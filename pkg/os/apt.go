package os

import (
	"com.github.tunahansezen/karm/pkg/constant"
	"fmt"
	log "github.com/sirupsen/logrus"
	"os"
	"strings"
)

// Apt drives the system package manager through a Runner. All methods return
// the underlying command error untouched; callers decide how to abort.
type Apt struct {
	run Runner
}

func NewApt(r Runner) *Apt {
	return &Apt{run: r}
}

func (a *Apt) UpdateRepos() error {
	_, err := a.run.Run("sudo apt-get update -y", true)
	return err
}

func (a *Apt) Install(pkgs ...string) error {
	_, err := a.run.Run(fmt.Sprintf("sudo apt-get install -f -y --allow-unauthenticated --allow-downgrades "+
		"-o DPkg::Options::=\"--force-confnew\" %s", strings.Join(pkgs, " ")), true)
	return err
}

func (a *Apt) InstallExact(p, version string) error {
	return a.Install(fmt.Sprintf("%s=%s", p, version))
}

// Purge removes and purges a package. Packages that are not installed are
// skipped rather than treated as failures.
func (a *Apt) Purge(p string) error {
	installed, _, err := a.PackageInstalled(p)
	if err != nil {
		return err
	}
	if !installed {
		log.Debugf("\"%s\" is not installed. Skipping...", p)
		return nil
	}
	if _, err = a.run.Run(fmt.Sprintf("sudo apt-get purge -y %s --allow-change-held-packages", p), true); err != nil {
		return err
	}
	_, err = a.run.Run(fmt.Sprintf("sudo dpkg -P %s", p), true)
	return err
}

func (a *Apt) AutoRemove() error {
	_, err := a.run.Run("sudo apt-get autoremove -y", true)
	return err
}

func (a *Apt) Hold(p string) error {
	_, err := a.run.Run(fmt.Sprintf("sudo apt-mark hold %s", p), true)
	return err
}

// AvailableVersion returns the first package-index version of p whose line
// matches the filter substring. With multiple matching entries the index
// order decides which one wins.
func (a *Apt) AvailableVersion(p, filter string) (string, error) {
	out, err := a.run.Run(fmt.Sprintf("sudo apt list -a %s 2>/dev/null | cut -d '[' -f1 | grep %s"+
		" | head -1 | xargs | cut -d ' ' -f2", p, filter), true)
	if err != nil {
		return "", err
	}
	if out == "" {
		return "", fmt.Errorf("version \"%s\" for \"%s\" was not found", filter, p)
	}
	return out, nil
}

func (a *Apt) PackageInstalled(p string) (bool, string, error) {
	out, err := a.run.Run(fmt.Sprintf("dpkg --list %s 2>/dev/null | tail -n 1", p), true)
	if err != nil {
		return false, "", nil // dpkg exits nonzero for unknown packages
	}
	fields := strings.Fields(strings.TrimSpace(out))
	if len(fields) < 3 || !strings.HasPrefix(fields[0], "ii") {
		return false, "", nil
	}
	return true, fields[2], nil
}

func (a *Apt) AddGpgKey(url, name string) (string, error) {
	if url == "" {
		log.Debugf("No key found for %s repo.", name)
		return "", nil
	}
	if _, err := a.run.Run(fmt.Sprintf("sudo mkdir -p %s", constant.AptKeyringsDir), true); err != nil {
		return "", err
	}
	path := fmt.Sprintf("%s/%s.gpg", constant.AptKeyringsDir, name)
	if _, err := a.run.Run(fmt.Sprintf("curl -fsSL %s | sudo gpg --dearmor --yes -o %s", url, path), true); err != nil {
		return "", err
	}
	return path, nil
}

// AddRepository overwrites the apt source file for the repo with a single
// deb line. An empty keyPath marks the repo trusted instead of signed.
func (a *Apt) AddRepository(repoFileName, arch, address, keyPath string) error {
	var keyPart string
	if keyPath == "" {
		keyPart = " trusted=yes"
	} else {
		keyPart = fmt.Sprintf(" signed-by=%s", keyPath)
	}
	_, err := a.run.Run(fmt.Sprintf("echo \"deb [arch=%s%s] %s\" | sudo tee %s/%s.list",
		arch, keyPart, address, constant.AptSourcesDir, repoFileName), true)
	return err
}

func (a *Apt) RemoveRepoFile(name string) error {
	_, err := a.run.Run(fmt.Sprintf("sudo rm -f %s/%s*.list", constant.AptSourcesDir, name), true)
	return err
}

func (a *Apt) RestartService(service string) error {
	_, err := a.run.Run(fmt.Sprintf("sudo service %s restart", service), true)
	return err
}

func (a *Apt) CommandExists(command string) bool {
	output, _ := a.run.Run(fmt.Sprintf("command -v %s | xargs", command), true)
	return output != ""
}

// WriteFile places data at a root-owned destination by staging it in /tmp
// and moving it with sudo. The destination is overwritten unconditionally.
func (a *Apt) WriteFile(data []byte, dstFile string) error {
	folder := dstFile[:strings.LastIndexAny(dstFile, "/")]
	fileName := dstFile[strings.LastIndexAny(dstFile, "/")+1:]
	tempDst := fmt.Sprintf("/tmp/%s", fileName)
	if err := os.WriteFile(tempDst, data, os.FileMode(0666)); err != nil {
		log.Debugf("Error occurred while writing \"%s\" file", dstFile)
		return err
	}
	if _, err := a.run.Run(fmt.Sprintf("sudo mkdir -p %s", folder), true); err != nil {
		return err
	}
	_, err := a.run.Run(fmt.Sprintf("sudo mv %s %s", tempDst, dstFile), true)
	return err
}
