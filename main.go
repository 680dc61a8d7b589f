package main

import "stock-migrator/cmd"

func main() {
	cmd.Execute()
}
