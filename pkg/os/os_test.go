package os

import (
	"testing"
)

func TestDetectOSUbuntu(t *testing.T) {
	r := &fakeRunner{outputs: map[string]string{
		"/^NAME":             "Ubuntu",
		"/^ID=":              "ubuntu",
		"/^VERSION_CODENAME": "focal",
	}}
	if err := DetectOS(r); err != nil {
		t.Fatal(err)
	}
	if OS != Ubuntu || DistroID != "ubuntu" || Codename != "focal" {
		t.Errorf("unexpected detection: os=%d distro=%s codename=%s", OS, DistroID, Codename)
	}
}

func TestDetectOSRaspbian(t *testing.T) {
	r := &fakeRunner{outputs: map[string]string{
		"/^NAME":             "Raspbian GNU/Linux",
		"/^ID=":              "raspbian",
		"/^VERSION_CODENAME": "stretch",
	}}
	if err := DetectOS(r); err != nil {
		t.Fatal(err)
	}
	if OS != Raspbian || DistroID != "raspbian" || Codename != "stretch" {
		t.Errorf("unexpected detection: os=%d distro=%s codename=%s", OS, DistroID, Codename)
	}
}

func TestDetectOSUnsupported(t *testing.T) {
	r := &fakeRunner{outputs: map[string]string{
		"/^NAME": "CentOS Linux",
	}}
	if err := DetectOS(r); err == nil {
		t.Error("expected error for non-Debian OS")
	}
}
