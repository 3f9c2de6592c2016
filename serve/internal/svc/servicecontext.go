package svc

import (
	"context"
	"fmt"
	"strings"

	"github.com/HuXin0817/power-boxes/pkg/match"
	"github.com/HuXin0817/power-boxes/pkg/models/record"
	"github.com/HuXin0817/power-boxes/serve/internal/config"
	"github.com/zeromicro/go-zero/core/collection"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

type ServiceContext struct {
	Config config.Config
	// RedisClient is nil when no redis is configured.
	RedisClient *redis.Redis
	// MatchRecorder is nil when no mongo is configured.
	MatchRecorder match.Recorder
	Matches       *collection.Cache

	recorder *record.Recorder
}

func NewServiceContext(c config.Config) *ServiceContext {
	matches, err := collection.NewCache(c.Match.Expire, collection.WithName("matches"))
	logx.Must(err)

	svcCtx := &ServiceContext{
		Config:  c,
		Matches: matches,
	}

	if c.Redis.Host != "" {
		svcCtx.RedisClient = redis.MustNewRedis(c.Redis)
	}

	if c.MongoConf.Url != "" {
		url := c.MongoConf.Url
		if strings.Contains(url, "%s") {
			url = fmt.Sprintf(url, c.MongoConf.PassWord)
		}

		svcCtx.recorder = record.NewRecorder(record.NewMoveRecordModel(url, c.MongoConf.DataBaseName), c.Match.RecordInterval)
		svcCtx.recorder.Start()
		svcCtx.MatchRecorder = svcCtx.recorder
	}

	return svcCtx
}

// Close flushes pending match records.
func (s *ServiceContext) Close(ctx context.Context) {
	if s.recorder == nil {
		return
	}
	if err := s.recorder.Stop(ctx); err != nil {
		logx.Errorf("flush match records: %v", err)
	}
}
