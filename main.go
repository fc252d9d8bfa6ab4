package main

import "github.com/jsphweid/chordcoach/cmd"

func main() {
	cmd.Execute()
}
