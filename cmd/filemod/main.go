package main

import (
	"github.com/mcdonaldj/filemod/internal/cli"
)

// version is set via ldflags at build time: -ldflags "-X main.version=x.y.z"
var version = "dev"

func main() {
	c := cli.New(version)
	c.Run()
}
