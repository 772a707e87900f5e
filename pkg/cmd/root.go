package cmd

import (
	"com.github.tunahansezen/karm/pkg/constant"
	"com.github.tunahansezen/karm/pkg/core"
	"com.github.tunahansezen/karm/pkg/os"
	"com.github.tunahansezen/karm/pkg/util"
	"fmt"
	"github.com/lithammer/dedent"
	"github.com/spf13/cobra"
)

const (
	fDebug          = "debug"
	fsDebug         = "d"
	fTrace          = "trace"
	fVersion        = "version"
	fsVersion       = "v"
	fList           = "list"
	fsList          = "l"
	fDockerVersion  = "docker"
	fsDockerVersion = "i"
)

var (
	toolVersion  string
	showVersion  bool
	listVersions bool
)

// RootCmd is the whole CLI surface: karm has no subcommands.
var RootCmd = &cobra.Command{
	Use:   "karm",
	Short: "karm docker and kubernetes installer for ARM hosts",
	Long: dedent.Dedent(`
		karm removes any previous docker installation, installs a pinned docker
		version and the kubernetes packages (kubelet, kubeadm, kubectl) on a
		Debian/Ubuntu ARM host.`),
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		if showVersion {
			fmt.Printf("karm v%s\n", toolVersion)
			os.Exit("", 1)
		}
		if listVersions {
			fmt.Println("Known-good docker versions:")
			for _, knownVersion := range constant.KnownDockerVersions {
				fmt.Printf("  %s\n", knownVersion)
			}
			os.Exit("", 1)
		}
		core.PreRun()
		if core.DockerVersion == core.DefaultDockerVersion {
			fmt.Printf("karm will install the default docker version \"%s\" (pinned) "+
				"and the kubernetes packages\n", core.DockerVersion)
		} else {
			fmt.Printf("karm will install docker version \"%s\" (pinned) "+
				"and the kubernetes packages\n", core.DockerVersion)
		}
		confirmed, err := util.UserConfirmation("Do you want to continue?")
		if err != nil || !confirmed {
			os.Exit("", 0)
		}
		core.RunProvision()
	},
}

// Execute runs the root command. This is called by main.main().
func Execute(version string) {
	toolVersion = version
	err := RootCmd.Execute()
	if err != nil {
		os.Exit(err.Error(), 1)
	}
}

func init() {
	RootCmd.CompletionOptions.HiddenDefaultCmd = true
	RootCmd.CompletionOptions.DisableDescriptions = true
	helpFunc := RootCmd.HelpFunc()
	RootCmd.SetHelpFunc(func(c *cobra.Command, args []string) {
		helpFunc(c, args)
		os.Exit("", 1)
	})

	RootCmd.PersistentFlags().BoolVarP(&core.Debug, fDebug, fsDebug, false, "debug logging for karm")
	RootCmd.PersistentFlags().BoolVarP(&core.Trace, fTrace, "", false, "trace logging for karm")
	RootCmd.Flags().BoolVarP(&showVersion, fVersion, fsVersion, false, "version for karm")
	RootCmd.Flags().BoolVarP(&listVersions, fList, fsList, false, "list known-good docker versions")
	RootCmd.Flags().StringVarP(&core.DockerVersion, fDockerVersion, fsDockerVersion, core.DefaultDockerVersion,
		"docker version to install (substring match against the package index)")
}
