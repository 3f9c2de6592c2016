package config

import (
	"time"

	"github.com/zeromicro/go-zero/core/service"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

type Config struct {
	service.ServiceConf
	Host string `json:",default=0.0.0.0"`
	Port int    `json:",default=8000"`

	// Redis caches search results. Leave Host empty to search every time.
	Redis redis.RedisConf `json:",optional"`

	// MongoConf stores match records. Leave Url empty to skip recording.
	MongoConf struct {
		Url          string `json:",optional"`
		DataBaseName string `json:",default=dots_and_boxes"`
		PassWord     string `json:",optional,env=MONGO_PASSWORD"`
	}

	Search struct {
		MaxBoardSize int           `json:",default=15"`
		MaxDepth     int           `json:",default=4"`
		CacheSeconds int           `json:",default=600"`
		LockSeconds  int           `json:",default=30"`
		Timeout      time.Duration `json:",default=30s"`
	}

	Match struct {
		Expire         time.Duration `json:",default=30m"`
		RecordInterval time.Duration `json:",default=1s"`
	}
}
