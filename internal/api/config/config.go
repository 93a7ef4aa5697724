package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Cfg 全局可访问的配置实例
var Cfg *Config

// LoadConfig 从文件加载配置并填充到 Cfg
func LoadConfig() error {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")

	v.SetEnvPrefix("FOLIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	Cfg = &cfg

	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("database.max_idle", 10)
	v.SetDefault("database.max_open", 100)
	v.SetDefault("database.max_lifetime", 60)
	v.SetDefault("database.auto_migrate", true)
	v.SetDefault("redis.pool_size", 10)
	v.SetDefault("minio.bucket", "public")
	v.SetDefault("logstash.index", "logstash-folio")
	v.SetDefault("media.max_size_mb", 10)
	v.SetDefault("media.temp_ttl_hours", 24)
	v.SetDefault("media.cleanup_spec", "@hourly")
}
