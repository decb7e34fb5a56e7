package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/delaneyj/proxyparty/cmd/codegen/templates"
	"github.com/urfave/cli/v3"
)

const genericParamCountKey = "count"

func main() {
	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate typed watcher wrappers",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  genericParamCountKey,
				Usage: "Number of generic parameters to generate",
				Value: 8,
			},
		},
		Action: generate,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func generate(ctx context.Context, cmd *cli.Command) error {
	start := time.Now()
	log.Printf("Codegen for typed watchers started!")
	defer func() {
		log.Printf("Codegen for typed watchers finished in %v", time.Since(start))
	}()

	genericParamCount := cmd.Uint(genericParamCountKey)

	contents := templates.WatchersGen(int(genericParamCount))
	if err := os.WriteFile("typed/watchers.go", []byte(contents), 0644); err != nil {
		return err
	}

	return nil
}
