package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/FrumiousOwl/Teses-front-sub000/server"
)

func main() {

	srv := server.ServerInit()
	go srv.Start()
	srv.Logger.GetLogger().Info("shell initialized...")
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	<-done
	srv.Stop()
	srv.Logger.GetLogger().Info("shell stopped...")
}
