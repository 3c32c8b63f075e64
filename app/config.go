package app

import (
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/dright-io/dright-core/models"
	"gopkg.in/yaml.v2"
)

var (
	Config models.Config
)

func InitConfig(configFile string, envFile string) {
	readConfigFromConfigFile(configFile)
	readConfigFromENV(envFile)
	readSecretsFromGSM()
	validateConfig()
}

func readConfigFromConfigFile(configFile string) bool {
	if configFile == "" {
		log.Debug("[CONFIG] No config file provided")
		return false
	}
	log.Debug("[CONFIG] Reading config file: ", configFile)
	var yamlFile, err = os.ReadFile(configFile)
	if err != nil {
		log.Fatalf("[CONFIG] Error reading config file %q: %s\n", configFile, err.Error())
	}
	err = yaml.Unmarshal(yamlFile, &Config)
	if err != nil {
		log.Fatalf("[CONFIG] Error unmarshalling config file %q: %s\n", configFile, err.Error())
	}
	return true
}

func validateConfig() {
	log.Debug("[CONFIG] Validating config")
	if Config.MongoDB.URI == "" {
		log.Fatal("[CONFIG] MongoDB.URI is required")
	}
	if Config.MongoDB.Database == "" {
		log.Fatal("[CONFIG] MongoDB.Database is required")
	}
	if Config.MongoDB.TimeoutMillis == 0 {
		log.Fatal("[CONFIG] MongoDB.TimeoutMillis is required")
	}
	if Config.Redis.URI == "" {
		log.Fatal("[CONFIG] Redis.URI is required")
	}
	if Config.Catalog.BaseURL == "" {
		log.Fatal("[CONFIG] Catalog.BaseURL is required")
	}
	if Config.Metadata.BaseURL == "" {
		log.Fatal("[CONFIG] Metadata.BaseURL is required")
	}
	if Config.Ethereum.RPCURL == "" {
		log.Fatal("[CONFIG] Ethereum.RPCURL is required")
	}
	if Config.Ethereum.ChainId == "" {
		log.Fatal("[CONFIG] Ethereum.ChainId is required")
	}
	if Config.Ethereum.TokenContract == "" {
		log.Fatal("[CONFIG] Ethereum.TokenContract is required")
	}
	if Config.Wallet.Mnemonic == "" && Config.Wallet.GcpKmsKeyName == "" &&
		Config.Wallet.RelayURL == "" && Config.Wallet.ManualAccount == "" {
		log.Fatal("[CONFIG] At least one wallet backend must be configured")
	}
	if Config.HealthCheck.IntervalMillis == 0 {
		log.Fatal("[CONFIG] HealthCheck.IntervalMillis is required")
	}
	if Config.MintRunner.Enabled && Config.MintRunner.IntervalMillis == 0 {
		log.Fatal("[CONFIG] MintRunner.IntervalMillis is required")
	}
	log.Info("[CONFIG] Config validated")
}
