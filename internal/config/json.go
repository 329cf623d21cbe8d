package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// StructuredJSONConfig mirrors [StructuredConfig] with json tags so that a
// configuration file can be decoded independently of the env/flag sources.
// The JSON file is the only source that can supply the per-page remote path
// overrides as a nested object.
type StructuredJSONConfig struct {
	Auth struct {
		Username string            `json:"username"`
		Password string            `json:"password"`
		Users    map[string]string `json:"users,omitempty"`
	} `json:"auth,omitempty"`

	Storage struct {
		Local struct {
			Dir string `json:"dir"`
		} `json:"local,omitempty"`

		GitHub struct {
			Token     string            `json:"token"`
			Owner     string            `json:"owner"`
			Repo      string            `json:"repo"`
			Branch    string            `json:"branch"`
			APIURL    string            `json:"api_url"`
			PagePaths map[string]string `json:"page_paths,omitempty"`
		} `json:"github,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress string `json:"http_address"`
	} `json:"server,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	var usersJSON string
	if len(jsonCfg.Auth.Users) > 0 {
		raw, err := json.Marshal(jsonCfg.Auth.Users)
		if err != nil {
			return nil, fmt.Errorf("error re-encoding auth users: %w", err)
		}
		usersJSON = string(raw)
	}

	cfg := &StructuredConfig{
		Auth: Auth{
			Username:  jsonCfg.Auth.Username,
			Password:  jsonCfg.Auth.Password,
			UsersJSON: usersJSON,
		},
		Storage: Storage{
			Local: Local{
				Dir: jsonCfg.Storage.Local.Dir,
			},
			GitHub: GitHub{
				Token:     jsonCfg.Storage.GitHub.Token,
				Owner:     jsonCfg.Storage.GitHub.Owner,
				Repo:      jsonCfg.Storage.GitHub.Repo,
				Branch:    jsonCfg.Storage.GitHub.Branch,
				APIURL:    jsonCfg.Storage.GitHub.APIURL,
				PagePaths: jsonCfg.Storage.GitHub.PagePaths,
			},
		},
		Server: Server{
			HTTPAddress: jsonCfg.Server.HTTPAddress,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}
