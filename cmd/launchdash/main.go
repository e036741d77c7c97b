package main

import "github.com/vietddude/launchdash/internal/cli"

func main() {
	cli.Execute()
}
