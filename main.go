package main

import "github.com/emrgen/wikt/cmd"

func main() {
	cmd.Execute()
}
