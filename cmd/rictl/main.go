package main

import "github.com/rollinitiative/rollinit/cmd/rictl/cmd"

func main() {
	cmd.Execute()
}
