package main

import (
	"context"
	"log"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	orderFlags := []cli.Flag{
		&cli.BoolFlag{
			Name:  "numeric",
			Usage: "parse values as numbers",
		},
		&cli.BoolFlag{
			Name:  "reverse",
			Usage: "emit the largest values first",
		},
		&cli.StringFlag{
			Name:  "locale",
			Usage: "BCP 47 tag selecting the collation for text values",
		},
	}

	app := &cli.Command{
		Name:      "heap_tools",
		Usage:     "order values through a binary heap",
		UsageText: "values are read from the arguments, or one per line from stdin",
		Commands: []*cli.Command{
			{
				Name:   "sort",
				Usage:  "print all values in priority order",
				Action: sortCommand,
				Flags: append([]cli.Flag{
					&cli.StringSliceFlag{
						Name:  "exclude",
						Usage: "drop one occurrence of this value before sorting",
					},
				}, orderFlags...),
			},
			{
				Name:   "top",
				Usage:  "print the highest priority values",
				Action: topCommand,
				Flags: append([]cli.Flag{
					&cli.UintFlag{
						Name:        "count",
						DefaultText: "10",
						Value:       10,
						Usage:       "number of values to print",
					},
				}, orderFlags...),
			},
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
