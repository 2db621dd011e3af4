package main

import "github.com/thereayou/spyfall-lite/cmd/server"

func main() {
	server.NewServer().Run()
}
