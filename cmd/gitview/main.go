package main

import "github.com/traceyt-cree8/gitterm-sub000/cli"

func main() {
	cli.Execute()
}
