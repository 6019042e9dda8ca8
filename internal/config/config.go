package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/btcsuite/btcd/btcutil"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	// DatadirKey is the local data directory to store the wallet state
	DatadirKey = "DATADIR"
	// LogLevelKey are the different logging levels. For reference on the values https://godoc.org/github.com/sirupsen/logrus#Level
	LogLevelKey = "LOG_LEVEL"

	// DbLocation is the folder inside the datadir containing the store files
	DbLocation = "db"
)

var vip *viper.Viper
var defaultDatadir = btcutil.AppDataDir("trinity-wallet", false)

// InitConfig sets the default configuration and reads the environment for
// overrides. It must be called before any other function of this package.
func InitConfig() error {
	vip = viper.New()
	vip.SetEnvPrefix("TRINITY")
	vip.AutomaticEnv()

	vip.SetDefault(DatadirKey, defaultDatadir)
	vip.SetDefault(LogLevelKey, int(log.InfoLevel))

	log.SetLevel(log.Level(GetInt(LogLevelKey)))

	if err := initDatadir(); err != nil {
		return fmt.Errorf("error while creating datadir: %w", err)
	}

	return nil
}

func GetString(key string) string {
	return vip.GetString(key)
}

func GetInt(key string) int {
	return vip.GetInt(key)
}

func Set(key string, val interface{}) {
	vip.Set(key, val)
}

// GetDatadir returns the data directory of the wallet
func GetDatadir() string {
	return GetString(DatadirKey)
}

// GetDbDir returns the directory holding the store files
func GetDbDir() string {
	return filepath.Join(GetDatadir(), DbLocation)
}

func initDatadir() error {
	return makeDirectoryIfNotExists(GetDbDir())
}

func makeDirectoryIfNotExists(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return os.MkdirAll(path, os.ModeDir|0755)
	}
	return nil
}
