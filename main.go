// Package main is the entry point for the jibfiles CLI.
package main

import "jibfiles.dev/pkg/jibfiles/cmd"

func main() {
	cmd.Execute()
}
