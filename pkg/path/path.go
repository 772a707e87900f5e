package path

import (
	"com.github.tunahansezen/karm/pkg/constant"
	"fmt"
	"os"
)

var (
	homePath    string
	karmMainDir string
	karmCfgDir  string
)

func GetKarmMainDir() string {
	return karmMainDir
}

func GetKarmCfgDir() string {
	return karmCfgDir
}

func CalculatePaths() error {
	var err error
	homePath, err = os.UserHomeDir()
	if err != nil {
		return err
	}
	karmMainDir = fmt.Sprintf("%s/%s", homePath, constant.CfgRootFolder)
	karmCfgDir = fmt.Sprintf("%s/%s", karmMainDir, constant.CfgFolder)
	return nil
}
