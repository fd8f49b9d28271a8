package control

import (
	"os"
	"strings"
)

// EnvData represents the environment data.
type EnvData struct {
	BaseDirPath string
}

// NewEnvData resolves the application's base directory from the environment:
// ${TIMEAFTERTIME_HOME} if set, ${HOME}/.config/timeaftertime otherwise.
func NewEnvData() EnvData {
	var envData EnvData

	home := os.Getenv("TIMEAFTERTIME_HOME")
	if home == "" {
		envData.BaseDirPath = os.Getenv("HOME") + "/.config/timeaftertime"
	} else {
		envData.BaseDirPath = strings.TrimRight(home, "/")
	}

	return envData
}

// ConfigFilePath returns the path of the (optional) config file.
func (e EnvData) ConfigFilePath() string {
	return e.BaseDirPath + "/" + "config.yaml"
}
