package main

import "scene-audit/cmd"

func main() {
	cmd.Execute()
}
