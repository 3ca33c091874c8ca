package main

import "github.com/mvpathlete/athlete/cmd/athlete"

func main() {
	athlete.Execute()
}
