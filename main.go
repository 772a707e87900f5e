package main

import (
	"com.github.tunahansezen/karm/pkg/cmd"
	oskarm "com.github.tunahansezen/karm/pkg/os"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

var version = "TMP_VERSION"

func main() {
	signalChannel := make(chan os.Signal, 2)
	signal.Notify(signalChannel, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-signalChannel
		fmt.Println("\033[?25h") // make cursor visible
		os.Exit(1)
	}()
	cmd.Execute(version)
	oskarm.Exit("", 0)
}
