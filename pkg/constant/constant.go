package constant

const (
	CfgRootFolder  = ".karm"
	CfgFolder      = "config"
	InstallCfgName = "install"
	DefaultCfgType = "yaml"

	DefaultArch          = "armhf"
	DefaultStorageDriver = "overlay2"

	AptKeyringsDir      = "/etc/apt/keyrings"
	AptSourcesDir       = "/etc/apt/sources.list.d"
	DockerDaemonCfgPath = "/etc/docker/daemon.json"

	DockerPackage = "docker-ce"

	DefaultDockerRepoName    = "Docker"
	DefaultDockerRepoAddress = "https://download.docker.com/linux/{distro} {codename} stable"
	DefaultDockerRepoKey     = "https://download.docker.com/linux/{distro}/gpg"
	DefaultKubeRepoName      = "Kubernetes"
	DefaultKubeRepoAddress   = "https://apt.kubernetes.io/ kubernetes-xenial main"
	DefaultKubeRepoKey       = "https://packages.cloud.google.com/apt/doc/apt-key.gpg"
)

var (
	// KnownDockerVersions lists the docker releases verified on armhf hosts,
	// oldest first. The first entry is the default and the minimum accepted.
	KnownDockerVersions = []string{"17.03", "17.06", "17.09", "17.12", "18.03", "18.06"}

	// LegacyDockerPackages are purged before a fresh docker installation.
	LegacyDockerPackages = []string{"docker", "docker-ce", "docker.io", "docker-engine"}

	DefaultPackages = []string{"apt-transport-https", "ca-certificates", "curl", "gnupg",
		"lsb-release", "software-properties-common"}

	KubePackages = []string{"kubelet", "kubeadm", "kubectl"}
)
