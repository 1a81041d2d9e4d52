package main

import "github.com/nycpoi/poiconcierge/cmd"

func main() {
	cmd.Execute()
}
