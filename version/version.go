package version

var (
	Version = "1.0"
	GitHash = "devXXX"
	BuildTS = "2022-03-09T16:14:05.999999999Z07:00" // to be replaced at build time
	Model   = "RPM4D" // 4-digit shift register display
	Agent   = "rpmcounter/" + Version
)

type VersionConfig struct {
	Version string `json:"Version"`
	GitHash string `json:"GitHash"`
	BuildTS string `json:"BuildTS"`
	Model   string `json:"Model"`
	Agent   string `json:"Agent"`
}

var versionconfig = VersionConfig{
	Version: Version,
	GitHash: GitHash,
	BuildTS: BuildTS,
	Model:   Model,
	Agent:   Agent,
}

func GetVersionConfig() VersionConfig {
	return versionconfig
}
