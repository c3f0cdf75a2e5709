package main

import "github.com/duynguyendang/docdates/cmd"

func main() {
	cmd.Execute()
}
