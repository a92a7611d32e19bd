// Copyright 2025 NetApp, Inc. All Rights Reserved.

package config

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/afero"

	"github.com/netapp/dataops/utils/errors"
)

const (
	configDirName       = ".netapp_dataops"
	legacyConfigDirName = ".ntap_dsutil"
	configFileName      = "config.json"
)

// requiredKeys must be present in every config file.
var requiredKeys = []string{
	"connectionType",
	"hostname",
	"svm",
	"dataLif",
	"defaultVolumeType",
	"defaultExportPolicy",
	"defaultSnapshotPolicy",
	"defaultUnixUID",
	"defaultUnixGID",
	"defaultUnixPermissions",
	"defaultAggregate",
	"username",
	"password",
	"verifySSLCert",
}

// StringValue accepts either a JSON string or a JSON number, since older config files store
// UIDs and GIDs as numbers.
type StringValue string

func (s *StringValue) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*s = StringValue(str)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("expected a string or number, got %s", string(data))
	}
	*s = StringValue(num.String())
	return nil
}

// Config is the local toolkit config file. Secret fields are base64 encoded on disk and
// decoded by Load.
type Config struct {
	ConnectionType         ConnectionType `json:"connectionType"`
	Hostname               string         `json:"hostname"`
	SVM                    string         `json:"svm"`
	DataLIF                string         `json:"dataLif"`
	DefaultVolumeType      string         `json:"defaultVolumeType"`
	DefaultExportPolicy    string         `json:"defaultExportPolicy"`
	DefaultSnapshotPolicy  string         `json:"defaultSnapshotPolicy"`
	DefaultUnixUID         StringValue    `json:"defaultUnixUID"`
	DefaultUnixGID         StringValue    `json:"defaultUnixGID"`
	DefaultUnixPermissions string         `json:"defaultUnixPermissions"`
	DefaultAggregate       string         `json:"defaultAggregate"`
	Username               string         `json:"username"`
	Password               string         `json:"password"`
	VerifySSLCert          bool           `json:"verifySSLCert"`

	CloudCentralRefreshToken string `json:"cloudCentralRefreshToken,omitempty"`

	S3Endpoint        string `json:"s3Endpoint,omitempty"`
	S3AccessKeyID     string `json:"s3AccessKeyId,omitempty"`
	S3SecretAccessKey string `json:"s3SecretAccessKey,omitempty"`
	S3VerifySSLCert   bool   `json:"s3VerifySSLCert,omitempty"`
	S3CACertBundle    string `json:"s3CACertBundle,omitempty"`

	GCNVProjectNumber string `json:"gcnvProjectNumber,omitempty"`
	GCNVLocation      string `json:"gcnvLocation,omitempty"`
	GCNVCapacityPool  string `json:"gcnvCapacityPool,omitempty"`
	GCNVNetwork       string `json:"gcnvNetwork,omitempty"`
	GCNVAPIKeyFile    string `json:"gcnvApiKeyFile,omitempty"`
}

// DefaultConfigPath returns the config file under the user's home directory, falling back to
// the legacy location when only that one exists.
func DefaultConfigPath(fs afero.Fs, homeDir string) string {
	path := filepath.Join(homeDir, configDirName, configFileName)
	if exists, _ := afero.Exists(fs, path); exists {
		return path
	}
	legacy := filepath.Join(homeDir, legacyConfigDirName, configFileName)
	if exists, _ := afero.Exists(fs, legacy); exists {
		return legacy
	}
	return path
}

// LoadDefault loads the config file from the current user's home directory.
func LoadDefault(fs afero.Fs) (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, errors.WrapWithInvalidConfigError(err, "could not determine home directory")
	}
	return Load(fs, DefaultConfigPath(fs, home))
}

// Load reads, validates and decodes the config file at path.
func Load(fs afero.Fs, path string) (*Config, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.WrapWithInvalidConfigError(err, "config file %s could not be read", path)
	}

	raw := make(map[string]json.RawMessage)
	if err = json.Unmarshal(data, &raw); err != nil {
		return nil, errors.WrapWithInvalidConfigError(err, "config file %s is not valid JSON", path)
	}

	var missing []string
	for _, key := range requiredKeys {
		if _, ok := raw[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, errors.InvalidConfigError("config file %s is missing required keys: %s",
			path, strings.Join(missing, ", "))
	}

	cfg := &Config{}
	if err = json.Unmarshal(data, cfg); err != nil {
		return nil, errors.WrapWithInvalidConfigError(err, "config file %s has invalid values", path)
	}

	if err = cfg.decodeSecrets(); err != nil {
		return nil, err
	}

	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) decodeSecrets() error {
	decode := func(name string, value *string) error {
		if *value == "" {
			return nil
		}
		decoded, err := base64.StdEncoding.DecodeString(*value)
		if err != nil {
			return errors.WrapWithInvalidConfigError(err, "%s in config file is not valid base64", name)
		}
		*value = string(decoded)
		return nil
	}

	if err := decode("password", &c.Password); err != nil {
		return err
	}
	if err := decode("cloudCentralRefreshToken", &c.CloudCentralRefreshToken); err != nil {
		return err
	}
	return decode("s3SecretAccessKey", &c.S3SecretAccessKey)
}

// Validate checks values whose shape can be verified locally.
func (c *Config) Validate() error {
	if c.ConnectionType != ConnectionTypeONTAP {
		return errors.ConnectionTypeError(string(c.ConnectionType))
	}
	switch c.DefaultVolumeType {
	case VolumeTypeFlexVol, VolumeTypeFlexGroup:
	default:
		return errors.InvalidConfigError("defaultVolumeType must be '%s' or '%s'",
			VolumeTypeFlexVol, VolumeTypeFlexGroup)
	}
	if _, err := strconv.Atoi(string(c.DefaultUnixUID)); err != nil {
		return errors.InvalidConfigError("defaultUnixUID '%s' is not an integer", c.DefaultUnixUID)
	}
	if _, err := strconv.Atoi(string(c.DefaultUnixGID)); err != nil {
		return errors.InvalidConfigError("defaultUnixGID '%s' is not an integer", c.DefaultUnixGID)
	}
	if strings.TrimSpace(c.Hostname) == "" {
		return errors.InvalidConfigError("hostname must not be empty")
	}
	return nil
}

// Aggregates returns the default aggregate list; the config value may be comma separated.
func (c *Config) Aggregates() []string {
	var aggrs []string
	for _, aggr := range strings.Split(c.DefaultAggregate, ",") {
		if aggr = strings.TrimSpace(aggr); aggr != "" {
			aggrs = append(aggrs, aggr)
		}
	}
	return aggrs
}
