// FILE: example/fasthttp/main.go
package main

import (
	"github.com/dfsio/dfslog"
	"github.com/dfsio/dfslog/compat"
	"github.com/valyala/fasthttp"
)

func main() {
	builder := compat.NewBuilder().WithConfig(&dfslog.Config{
		Level:           "info",
		Components:      "rpc",
		Sink:            "console",
		ConsoleTarget:   "stderr",
		ShowLevel:       true,
		ShowComponent:   true,
		ShowTimestamp:   true,
		TimestampFormat: "2006-01-02T15:04:05Z07:00",
	})

	fasthttpLogger, err := builder.BuildFastHTTP()
	if err != nil {
		panic(err)
	}

	server := &fasthttp.Server{
		Handler: func(ctx *fasthttp.RequestCtx) {
			ctx.WriteString("Hello, world!")
		},
		Logger: fasthttpLogger,
	}

	if err := server.ListenAndServe(":8080"); err != nil {
		panic(err)
	}
}
