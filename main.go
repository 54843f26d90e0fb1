package main

import (
	"habitd/cmd"
)

func main() {
	cmd.Execute()
}
