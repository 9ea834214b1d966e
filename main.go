package main

import "github.com/jsphweid/munotes/cmd"

func main() {
	cmd.Execute()
}
