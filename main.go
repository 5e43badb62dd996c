package main

import "github.com/devicelab-dev/robot-runner/pkg/cli"

func main() {
	cli.Execute()
}
