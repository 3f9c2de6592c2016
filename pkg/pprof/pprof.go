package pprof

import (
	"fmt"
	"math/rand"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/zeromicro/go-zero/core/logx"
)

// Register mounts the profiling handlers under /debug/pprof.
func Register(router *gin.Engine) {
	pprof.Register(router)
}

// Serve runs a profiling server in the background. An empty addr picks a
// random local port, retrying until one is free.
func Serve(addr string) {
	go func() {
		for {
			listen := addr
			if listen == "" {
				listen = fmt.Sprintf("localhost:%d", 1024+rand.Intn(0xffff-1024))
			}

			router := gin.New()
			Register(router)
			logx.Infof("pprof listening on %s", listen)
			err := router.Run(listen)
			logx.Errorf("pprof on %s: %v", listen, err)
			if addr != "" {
				return
			}
		}
	}()
}
