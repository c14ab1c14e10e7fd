package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/navijation/njcontainers/util/heap"
	"github.com/urfave/cli/v3"
)

func topCommand(_ context.Context, cmd *cli.Command) error {
	args, err := orderArgsFromCommand(cmd)
	if err != nil {
		return err
	}

	values, err := readValues(cmd.Args().Slice(), os.Stdin)
	if err != nil {
		return fmt.Errorf("failed to read values: %w", err)
	}

	return topValues(os.Stdout, values, int(cmd.Uint("count")), args)
}

func topValues(out io.Writer, values []string, count int, args orderArgs) error {
	if !args.Numeric {
		comparator := heap.Collated(args.Locale)
		if args.Reverse {
			comparator = heap.Reverse(comparator)
		}
		return printTop(out, heap.NewHeap(comparator, values...), count, func(v string) string {
			return v
		})
	}

	numbers, err := parseNumbers(values)
	if err != nil {
		return err
	}

	comparator := heap.Ascending[float64]
	if args.Reverse {
		comparator = heap.Descending[float64]
	}
	return printTop(out, heap.NewHeap(comparator, numbers...), count, formatNumber)
}

func printTop[T any](out io.Writer, h *heap.Heap[T], count int, format func(T) string) error {
	for ; count > 0; count-- {
		item, exists := h.Pop()
		if !exists {
			break
		}
		if _, err := fmt.Fprintln(out, format(item)); err != nil {
			return err
		}
	}
	return nil
}
