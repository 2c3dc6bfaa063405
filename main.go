package main

import "github.com/rajeshthapaliya/cross-platform-calorie-calc/cmd/calpro"

func main() {
	calpro.Execute()
}
