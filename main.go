// Package main is the entry point for the wepprunner CLI.
package main

import "weppcloud.dev/pkg/wepprunner/cmd"

func main() {
	cmd.Execute()
}
