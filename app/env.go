package app

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func parseIntFromENV(name string, value *int64) {
	if os.Getenv(name) == "" {
		return
	}
	parsed, err := strconv.ParseInt(os.Getenv(name), 10, 64)
	if err != nil {
		log.Warnf("[ENV] Error parsing %s: %s", name, err.Error())
		return
	}
	*value = parsed
}

func readConfigFromENV(envFile string) {
	if envFile != "" {
		err := godotenv.Load(envFile)
		if err != nil {
			log.Warn("[ENV] Error loading .env file: ", err.Error())
		}
	}

	// mongodb
	if os.Getenv("MONGODB_URI") != "" {
		Config.MongoDB.URI = os.Getenv("MONGODB_URI")
	}
	if os.Getenv("MONGODB_DATABASE") != "" {
		Config.MongoDB.Database = os.Getenv("MONGODB_DATABASE")
	}
	parseIntFromENV("MONGODB_TIMEOUT_MS", &Config.MongoDB.TimeoutMillis)

	// redis
	if os.Getenv("REDIS_URI") != "" {
		Config.Redis.URI = os.Getenv("REDIS_URI")
	}
	parseIntFromENV("REDIS_TIMEOUT_MS", &Config.Redis.TimeoutMillis)

	// catalog
	if os.Getenv("CATALOG_BASE_URL") != "" {
		Config.Catalog.BaseURL = os.Getenv("CATALOG_BASE_URL")
	}
	if os.Getenv("CATALOG_API_KEY") != "" {
		Config.Catalog.APIKey = os.Getenv("CATALOG_API_KEY")
	}
	parseIntFromENV("CATALOG_TIMEOUT_MS", &Config.Catalog.TimeoutMillis)

	// metadata provider
	if os.Getenv("METADATA_BASE_URL") != "" {
		Config.Metadata.BaseURL = os.Getenv("METADATA_BASE_URL")
	}
	parseIntFromENV("METADATA_TIMEOUT_MS", &Config.Metadata.TimeoutMillis)

	// wallet
	if os.Getenv("WALLET_MNEMONIC") != "" {
		Config.Wallet.Mnemonic = os.Getenv("WALLET_MNEMONIC")
	}
	if os.Getenv("WALLET_GCP_KMS_KEY_NAME") != "" {
		Config.Wallet.GcpKmsKeyName = os.Getenv("WALLET_GCP_KMS_KEY_NAME")
	}
	if os.Getenv("WALLET_RELAY_URL") != "" {
		Config.Wallet.RelayURL = os.Getenv("WALLET_RELAY_URL")
	}
	if os.Getenv("WALLET_MANUAL_ACCOUNT") != "" {
		Config.Wallet.ManualAccount = os.Getenv("WALLET_MANUAL_ACCOUNT")
	}
	parseIntFromENV("WALLET_CONNECT_TIMEOUT_MS", &Config.Wallet.ConnectTimeoutMillis)
	parseIntFromENV("WALLET_SIGN_TIMEOUT_MS", &Config.Wallet.SignTimeoutMillis)

	// ethereum
	if os.Getenv("ETH_RPC_URL") != "" {
		Config.Ethereum.RPCURL = os.Getenv("ETH_RPC_URL")
	}
	if os.Getenv("ETH_CHAIN_ID") != "" {
		Config.Ethereum.ChainId = os.Getenv("ETH_CHAIN_ID")
	}
	if os.Getenv("ETH_TOKEN_CONTRACT") != "" {
		Config.Ethereum.TokenContract = os.Getenv("ETH_TOKEN_CONTRACT")
	}
	parseIntFromENV("ETH_RPC_TIMEOUT_MS", &Config.Ethereum.RPCTimeoutMillis)
	parseIntFromENV("ETH_MAX_RECEIPT_POLLS", &Config.Ethereum.MaxReceiptPolls)
	parseIntFromENV("ETH_RECEIPT_POLL_MS", &Config.Ethereum.ReceiptPollMillis)
	parseIntFromENV("ETH_RECEIPT_POLL_MAX_SECS", &Config.Ethereum.ReceiptPollMaxSecs)

	// google secret manager
	if os.Getenv("GSM_ENABLED") != "" {
		Config.GoogleSecretManager.Enabled = os.Getenv("GSM_ENABLED") == "true"
	}
	if os.Getenv("GSM_PROJECT_ID") != "" {
		Config.GoogleSecretManager.ProjectId = os.Getenv("GSM_PROJECT_ID")
	}
	if os.Getenv("GSM_MONGO_SECRET_NAME") != "" {
		Config.GoogleSecretManager.MongoSecretName = os.Getenv("GSM_MONGO_SECRET_NAME")
	}
	if os.Getenv("GSM_MNEMONIC_SECRET_NAME") != "" {
		Config.GoogleSecretManager.MnemonicSecretName = os.Getenv("GSM_MNEMONIC_SECRET_NAME")
	}

	// logger
	if os.Getenv("LOGGER_LEVEL") != "" {
		Config.Logger.Level = os.Getenv("LOGGER_LEVEL")
	}
	if os.Getenv("LOGGER_FORMAT") != "" {
		Config.Logger.Format = os.Getenv("LOGGER_FORMAT")
	}

	// services
	parseIntFromENV("HEALTH_CHECK_INTERVAL_MS", &Config.HealthCheck.IntervalMillis)
	if os.Getenv("MINT_RUNNER_ENABLED") != "" {
		Config.MintRunner.Enabled = os.Getenv("MINT_RUNNER_ENABLED") == "true"
	}
	parseIntFromENV("MINT_RUNNER_INTERVAL_MS", &Config.MintRunner.IntervalMillis)

	// api
	if os.Getenv("API_ENABLED") != "" {
		Config.API.Enabled = os.Getenv("API_ENABLED") == "true"
	}
	if os.Getenv("API_PORT") != "" {
		port, err := strconv.ParseUint(os.Getenv("API_PORT"), 10, 64)
		if err != nil {
			log.Warn("[ENV] Error parsing API_PORT: ", err.Error())
		} else {
			Config.API.Port = port
		}
	}
}
