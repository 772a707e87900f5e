package core

import (
	"com.github.tunahansezen/karm/pkg/config/model"
	"com.github.tunahansezen/karm/pkg/os"
	"errors"
	"fmt"
	"strings"
	"testing"
)

type fakePM struct {
	calls            []string
	dockerOnPath     bool
	availableVersion string
	failOn           string
}

func (f *fakePM) record(call string) error {
	f.calls = append(f.calls, call)
	if f.failOn != "" && strings.HasPrefix(call, f.failOn) {
		return errors.New(call + " failed")
	}
	return nil
}

func (f *fakePM) UpdateRepos() error { return f.record("update") }

func (f *fakePM) Install(pkgs ...string) error {
	return f.record("install " + strings.Join(pkgs, " "))
}

func (f *fakePM) InstallExact(p, version string) error {
	return f.record(fmt.Sprintf("install-exact %s=%s", p, version))
}

func (f *fakePM) Purge(p string) error { return f.record("purge " + p) }

func (f *fakePM) AutoRemove() error { return f.record("autoremove") }

func (f *fakePM) Hold(p string) error { return f.record("hold " + p) }

func (f *fakePM) AvailableVersion(p, filter string) (string, error) {
	if err := f.record(fmt.Sprintf("available %s %s", p, filter)); err != nil {
		return "", err
	}
	if f.availableVersion == "" {
		return "", fmt.Errorf("version \"%s\" for \"%s\" was not found", filter, p)
	}
	return f.availableVersion, nil
}

func (f *fakePM) AddGpgKey(url, name string) (string, error) {
	if err := f.record("add-key " + name); err != nil {
		return "", err
	}
	return fmt.Sprintf("/etc/apt/keyrings/%s.gpg", name), nil
}

func (f *fakePM) AddRepository(repoFileName, arch, address, keyPath string) error {
	return f.record(fmt.Sprintf("add-repo %s %s %s", repoFileName, arch, address))
}

func (f *fakePM) RemoveRepoFile(name string) error { return f.record("remove-repo " + name) }

func (f *fakePM) RestartService(service string) error { return f.record("restart " + service) }

func (f *fakePM) CommandExists(command string) bool { return f.dockerOnPath }

func (f *fakePM) WriteFile(data []byte, dstFile string) error { return f.record("write " + dstFile) }

type nopRunner struct {
	commands []string
}

func (r *nopRunner) Run(command string, silent bool) (string, error) {
	r.commands = append(r.commands, command)
	return "", nil
}

func newTestProvisioner(pm *fakePM, runner *nopRunner) *Provisioner {
	os.DistroID = "ubuntu"
	os.Codename = "focal"
	return &Provisioner{
		Cfg:           model.DefaultInstallConfig(),
		DockerVersion: DefaultDockerVersion,
		PM:            pm,
		Runner:        runner,
	}
}

func TestProvisionSequenceFreshHost(t *testing.T) {
	pm := &fakePM{availableVersion: "17.03.2~ce-0~ubuntu-xenial"}
	runner := &nopRunner{}
	p := newTestProvisioner(pm, runner)
	if err := p.Provision(); err != nil {
		t.Fatal(err)
	}
	expected := []string{
		"update",
		"install apt-transport-https ca-certificates curl gnupg lsb-release software-properties-common",
		"add-key docker",
		"add-repo docker armhf https://download.docker.com/linux/ubuntu focal stable",
		"update",
		"available docker-ce 17.03",
		"install-exact docker-ce=17.03.2~ce-0~ubuntu-xenial",
		"hold docker-ce",
		"write /etc/docker/daemon.json",
		"restart docker",
		"add-key kubernetes",
		"add-repo kubernetes armhf https://apt.kubernetes.io/ kubernetes-xenial main",
		"update",
		"install kubelet kubeadm kubectl",
	}
	if len(pm.calls) != len(expected) {
		t.Fatalf("expected %d calls, got %d: %v", len(expected), len(pm.calls), pm.calls)
	}
	for i, call := range expected {
		if pm.calls[i] != call {
			t.Errorf("call %d: got %q, want %q", i, pm.calls[i], call)
		}
	}
	var summaryPrinted bool
	for _, command := range runner.commands {
		if command == "docker --version" {
			summaryPrinted = true
		}
	}
	if !summaryPrinted {
		t.Error("expected summary to echo docker --version")
	}
}

func TestProvisionRemovesPreviousDocker(t *testing.T) {
	pm := &fakePM{availableVersion: "17.03.2~ce-0~ubuntu-xenial", dockerOnPath: true}
	p := newTestProvisioner(pm, &nopRunner{})
	if err := p.Provision(); err != nil {
		t.Fatal(err)
	}
	expected := []string{"purge docker", "purge docker-ce", "purge docker.io",
		"purge docker-engine", "autoremove", "remove-repo docker"}
	joined := strings.Join(pm.calls, "\n")
	lastIdx := -1
	for _, call := range expected {
		idx := strings.Index(joined, call)
		if idx < 0 {
			t.Fatalf("missing call %q in %v", call, pm.calls)
		}
		if idx < lastIdx {
			t.Errorf("call %q out of order", call)
		}
		lastIdx = idx
	}
}

func TestProvisionAbortsWhenNoVersionMatches(t *testing.T) {
	pm := &fakePM{availableVersion: ""}
	p := newTestProvisioner(pm, &nopRunner{})
	if err := p.Provision(); err == nil {
		t.Fatal("expected error for unmatched docker version")
	}
	for _, call := range pm.calls {
		if strings.HasPrefix(call, "install-exact") || strings.HasPrefix(call, "hold") {
			t.Errorf("pipeline continued after version lookup failure: %s", call)
		}
	}
}

func TestProvisionShortCircuitsOnFailure(t *testing.T) {
	pm := &fakePM{availableVersion: "17.03.2~ce-0~ubuntu-xenial", failOn: "restart"}
	p := newTestProvisioner(pm, &nopRunner{})
	if err := p.Provision(); err == nil {
		t.Fatal("expected error from failing service restart")
	}
	for _, call := range pm.calls {
		if call == "add-key kubernetes" || strings.HasPrefix(call, "install kubelet") {
			t.Errorf("kubernetes steps ran after docker failure: %s", call)
		}
	}
}

func TestDefaultDockerVersion(t *testing.T) {
	if DefaultDockerVersion != "17.03" {
		t.Errorf("unexpected default docker version: %s", DefaultDockerVersion)
	}
}
