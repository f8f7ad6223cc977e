package main

import "github.com/Tryny8/App-budget-flow/cmd"

func main() {
	cmd.Execute()
}
