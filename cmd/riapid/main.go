package main

import "github.com/rollinitiative/rollinit/cmd/riapid/cmd"

func main() {
	cmd.Execute()
}
