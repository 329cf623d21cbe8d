package config

import "flag"

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-local-dir local config directory
//	-gh-token GitHub API token
//	-gh-owner GitHub repository owner
//	-gh-repo GitHub repository name
//	-gh-branch GitHub branch (default branch is resolved during validation)
//	-admin-username operator login name
//	-admin-password operator password
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var serverAddress string
	var localDir string
	var ghToken, ghOwner, ghRepo, ghBranch string
	var adminUsername, adminPassword string
	var jsonConfigPath string

	flag.StringVar(&serverAddress, "a", "", "Net address host:port")
	flag.StringVar(&localDir, "local-dir", "", "Local config directory")
	flag.StringVar(&ghToken, "gh-token", "", "GitHub API token")
	flag.StringVar(&ghOwner, "gh-owner", "", "GitHub repository owner")
	flag.StringVar(&ghRepo, "gh-repo", "", "GitHub repository name")
	flag.StringVar(&ghBranch, "gh-branch", "", "GitHub branch")
	flag.StringVar(&adminUsername, "admin-username", "", "Operator login name")
	flag.StringVar(&adminPassword, "admin-password", "", "Operator password")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		Auth: Auth{
			Username: adminUsername,
			Password: adminPassword,
		},
		Storage: Storage{
			Local: Local{
				Dir: localDir,
			},
			GitHub: GitHub{
				Token:  ghToken,
				Owner:  ghOwner,
				Repo:   ghRepo,
				Branch: ghBranch,
			},
		},
		Server: Server{
			HTTPAddress: serverAddress,
		},
		JSONFilePath: jsonConfigPath,
	}
}
