package main

import (
	"context"

	"github.com/scott-cotton/cli"
)

func main() {
	ctx := context.Background()
	cli.MainContext(ctx, MainCommand(ctx))
}
