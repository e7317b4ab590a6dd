package main

import "medusa/cmd/medusa/root"

func main() {
	root.Execute()
}
