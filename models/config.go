package models

type Config struct {
	GoogleSecretManager GoogleSecretManagerConfig `yaml:"google_secret_manager" json:"google_secret_manager"`
	HealthCheck         HealthCheckConfig         `yaml:"health_check" json:"health_check"`
	Logger              LoggerConfig              `yaml:"logger" json:"logger"`
	MongoDB             MongoConfig               `yaml:"mongodb" json:"mongo_db"`
	Redis               RedisConfig               `yaml:"redis" json:"redis"`
	Catalog             CatalogConfig             `yaml:"catalog" json:"catalog"`
	Metadata            MetadataConfig            `yaml:"metadata" json:"metadata"`
	Wallet              WalletConfig              `yaml:"wallet" json:"wallet"`
	Ethereum            EthereumConfig            `yaml:"ethereum" json:"ethereum"`
	MintRunner          ServiceConfig             `yaml:"mint_runner" json:"mint_runner"`
	API                 APIConfig                 `yaml:"api" json:"api"`
}

type GoogleSecretManagerConfig struct {
	Enabled            bool   `yaml:"enabled" json:"enabled"`
	ProjectId          string `yaml:"project_id" json:"project_id"`
	MongoSecretName    string `yaml:"mongo_secret_name" json:"mongo_secret_name"`
	MnemonicSecretName string `yaml:"mnemonic_secret_name" json:"mnemonic_secret_name"`
}

type HealthCheckConfig struct {
	IntervalMillis int64 `yaml:"interval_ms" json:"interval_ms"`
}

type LoggerConfig struct {
	Level  string `yaml:"level" json:"level"`
	Format string `yaml:"format" json:"format"`
}

type MongoConfig struct {
	URI           string `yaml:"uri" json:"uri"`
	Database      string `yaml:"database" json:"database"`
	TimeoutMillis int64  `yaml:"timeout_ms" json:"timeout_ms"`
}

type RedisConfig struct {
	URI           string `yaml:"uri" json:"uri"`
	TimeoutMillis int64  `yaml:"timeout_ms" json:"timeout_ms"`
}

type CatalogConfig struct {
	BaseURL       string `yaml:"base_url" json:"base_url"`
	APIKey        string `yaml:"api_key" json:"api_key"`
	TimeoutMillis int64  `yaml:"timeout_ms" json:"timeout_ms"`
}

type MetadataConfig struct {
	BaseURL       string `yaml:"base_url" json:"base_url"`
	TimeoutMillis int64  `yaml:"timeout_ms" json:"timeout_ms"`
}

type WalletConfig struct {
	Mnemonic             string `yaml:"mnemonic" json:"mnemonic"`
	GcpKmsKeyName        string `yaml:"gcp_kms_key_name" json:"gcp_kms_key_name"`
	RelayURL             string `yaml:"relay_url" json:"relay_url"`
	ManualAccount        string `yaml:"manual_account" json:"manual_account"`
	ConnectTimeoutMillis int64  `yaml:"connect_timeout_ms" json:"connect_timeout_ms"`
	SignTimeoutMillis    int64  `yaml:"sign_timeout_ms" json:"sign_timeout_ms"`
}

type EthereumConfig struct {
	RPCURL             string `yaml:"rpc_url" json:"rpcurl"`
	ChainId            string `yaml:"chain_id" json:"chain_id"`
	RPCTimeoutMillis   int64  `yaml:"rpc_timeout_ms" json:"rpc_timeout_ms"`
	TokenContract      string `yaml:"token_contract" json:"token_contract"`
	MaxReceiptPolls    int64  `yaml:"max_receipt_polls" json:"max_receipt_polls"`
	ReceiptPollMillis  int64  `yaml:"receipt_poll_ms" json:"receipt_poll_ms"`
	ReceiptPollMaxSecs int64  `yaml:"receipt_poll_max_secs" json:"receipt_poll_max_secs"`
}

type ServiceConfig struct {
	Enabled        bool  `yaml:"enabled" json:"enabled"`
	IntervalMillis int64 `yaml:"interval_ms" json:"interval_ms"`
}

type APIConfig struct {
	Enabled bool   `yaml:"enabled" json:"enabled"`
	Port    uint64 `yaml:"port" json:"port"`
}
