package main

import "github.com/maxvaer/recontools/cmd"

func main() {
	cmd.Execute()
}
