package main

import (
	"gatepost/cmd/client/cmd"
)

func main() {
	cmd.Execute()
}
