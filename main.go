package main

import "github.com/yraslan/gosrf/cmd"

func main() {
	cmd.Execute()
}
