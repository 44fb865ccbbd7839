package config

import (
	"encoding/json"
	"os"
	"time"

	"linkup_client/helpers"

	"github.com/joho/godotenv"
)

// Config file (global)
var Config JSONConfig

// JSONConfig structure based on config.json
type JSONConfig struct {
	APIBaseURL     string      `json:"apiBaseUrl"`
	RequestTimeout int         `json:"requestTimeoutSec"`
	StoragePath    string      `json:"storagePath"`
	Version        string      `json:"version"`
	Cache          CacheConfig `json:"cache"`
	MaxRecents     int         `json:"maxRecents"`
}

// CacheConfig structure holds the per-resource cache windows (seconds)
type CacheConfig struct {
	FeedFreshness     int `json:"feedFreshnessSec"`
	SearchFreshness   int `json:"searchFreshnessSec"`
	SettingsFreshness int `json:"settingsFreshnessSec"`
	GCWindow          int `json:"gcWindowSec"`
	SweepInterval     int `json:"sweepIntervalSec"`
}

func init() {
	applyDefaults()
}

// Load reads config.json if present, applies env overrides and fills defaults
func Load(path string) error {
	godotenv.Load()

	Config = JSONConfig{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			if err = json.Unmarshal(data, &Config); err != nil {
				return err
			}
		} else if !os.IsNotExist(err) {
			return err
		}
	}

	if v := os.Getenv("LINKUP_API_BASE_URL"); v != "" {
		Config.APIBaseURL = v
	}
	if v := os.Getenv("LINKUP_STORAGE_PATH"); v != "" {
		Config.StoragePath = v
	}
	if v := os.Getenv("LINKUP_REQUEST_TIMEOUT_SEC"); v != "" {
		if sec, err := helpers.ParseStringToInt(v); err == nil {
			Config.RequestTimeout = int(sec)
		}
	}

	applyDefaults()
	return nil
}

func applyDefaults() {
	if Config.APIBaseURL == "" {
		Config.APIBaseURL = "https://api.linkup.app/v1"
	}
	if Config.RequestTimeout <= 0 {
		Config.RequestTimeout = 10
	}
	if Config.StoragePath == "" {
		Config.StoragePath = "linkup.db"
	}
	if Config.Cache.FeedFreshness <= 0 {
		Config.Cache.FeedFreshness = 120
	}
	if Config.Cache.SearchFreshness <= 0 {
		Config.Cache.SearchFreshness = 60
	}
	if Config.Cache.SettingsFreshness <= 0 {
		Config.Cache.SettingsFreshness = 1800
	}
	if Config.Cache.GCWindow <= 0 {
		Config.Cache.GCWindow = 1800
	}
	if Config.Cache.SweepInterval <= 0 {
		Config.Cache.SweepInterval = 300
	}
	if Config.MaxRecents <= 0 {
		Config.MaxRecents = 20
	}
}

// RequestTimeoutDuration returns the request timeout as a duration
func RequestTimeoutDuration() time.Duration {
	return time.Duration(Config.RequestTimeout) * time.Second
}

// FeedFreshnessDuration returns the feed freshness window as a duration
func FeedFreshnessDuration() time.Duration {
	return time.Duration(Config.Cache.FeedFreshness) * time.Second
}

// SearchFreshnessDuration returns the search freshness window as a duration
func SearchFreshnessDuration() time.Duration {
	return time.Duration(Config.Cache.SearchFreshness) * time.Second
}

// SettingsFreshnessDuration returns the settings freshness window as a duration
func SettingsFreshnessDuration() time.Duration {
	return time.Duration(Config.Cache.SettingsFreshness) * time.Second
}

// GCWindowDuration returns the cache garbage-collection window as a duration
func GCWindowDuration() time.Duration {
	return time.Duration(Config.Cache.GCWindow) * time.Second
}

// SweepIntervalDuration returns the cache sweep interval as a duration
func SweepIntervalDuration() time.Duration {
	return time.Duration(Config.Cache.SweepInterval) * time.Second
}
