package config

// Config 配置主体
type Config struct {
	Server            ServerConfig      `mapstructure:"server"`
	DB                DBConfig          `mapstructure:"database"`
	Redis             RedisConfig       `mapstructure:"redis"`
	Logstash          LogstashConfig    `mapstructure:"logstash"`
	Kafka             KafkaConfig       `mapstructure:"kafka"`
	KafkaSyncConsumer KafkaSyncConsumer `mapstructure:"kafka_sync_consumer"`
	Apify             ApifyConfig       `mapstructure:"apify"`
	Sync              SyncConfig        `mapstructure:"sync"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// DBConfig 数据库配置
type DBConfig struct {
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

type LogstashConfig struct {
	Address string `mapstructure:"address"`
	Index   string `mapstructure:"index"`
	Token   string `mapstructure:"token"`
}

type KafkaConfig struct {
	Brokers  []string       `mapstructure:"brokers"`
	Sasl     SaslConfig     `mapstructure:"sasl"`
	Consumer ConsumerConfig `mapstructure:"consumer"`
}

type SaslConfig struct {
	Enable   bool   `mapstructure:"enable"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type ConsumerConfig struct {
	SessionTimeout    int `mapstructure:"session_timeout"`
	HeartbeatInterval int `mapstructure:"heartbeat_interval"`
	RebalanceTimeout  int `mapstructure:"rebalance_timeout"`
	MaxProcessingTime int `mapstructure:"max_processing_time"`
}

type KafkaSyncConsumer struct {
	Topic   string `mapstructure:"topic"`
	GroupID string `mapstructure:"group_id"`
}

// ApifyConfig Apify 抓取服务配置
type ApifyConfig struct {
	Token string `mapstructure:"token"`
	// BaseURL 默认 https://api.apify.com/v2
	BaseURL string `mapstructure:"base_url"`
	// PollInterval 轮询 Actor 运行状态的间隔（秒）
	PollInterval int `mapstructure:"poll_interval"`
	// MaxPollAttempts 轮询最大次数，超过视为运行超时
	MaxPollAttempts int `mapstructure:"max_poll_attempts"`
	// MinRequestInterval 两次请求之间的最小间隔（毫秒）
	MinRequestInterval int `mapstructure:"min_request_interval"`
}

type SyncConfig struct {
	// PostsLimit 单次同步每个平台抓取的帖子数上限
	PostsLimit int `mapstructure:"posts_limit"`
}
