package repo

// Config is the on-disk configuration of a governance node. Addresses are
// hex encoded; the admin is always registered as a voter with weight 1 and
// does not need to appear in the voters list.
type Config struct {
	RepoRoot      string        `mapstructure:"-" toml:"-"`
	Admin         string        `mapstructure:"admin" toml:"admin"`
	QuorumPercent uint64        `mapstructure:"quorum_percent" toml:"quorum_percent"`
	Voters        []VoterConfig `mapstructure:"voters" toml:"voters"`
	Log           Log           `mapstructure:"log" toml:"log"`
}

// VoterConfig is a voter registered at startup.
type VoterConfig struct {
	Address string `mapstructure:"address" toml:"address"`
	Weight  uint64 `mapstructure:"weight" toml:"weight"`
}

type Log struct {
	Level        string `mapstructure:"level" toml:"level"`
	ReportCaller bool   `mapstructure:"report_caller" toml:"report_caller"`
}

func DefaultConfig(repoRoot string) *Config {
	return &Config{
		RepoRoot:      repoRoot,
		Admin:         "0x0000000000000000000000000000000000000001",
		QuorumPercent: 50,
		Voters:        []VoterConfig{},
		Log: Log{
			Level:        "info",
			ReportCaller: false,
		},
	}
}
