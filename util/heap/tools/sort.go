package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/navijation/njcontainers/util/heap"
	"github.com/urfave/cli/v3"
)

func sortCommand(_ context.Context, cmd *cli.Command) error {
	args, err := orderArgsFromCommand(cmd)
	if err != nil {
		return err
	}

	values, err := readValues(cmd.Args().Slice(), os.Stdin)
	if err != nil {
		return fmt.Errorf("failed to read values: %w", err)
	}

	return sortValues(os.Stdout, values, cmd.StringSlice("exclude"), args)
}

func sortValues(out io.Writer, values, exclude []string, args orderArgs) error {
	items, err := toItems(values, args)
	if err != nil {
		return err
	}
	excludedItems, err := toItems(exclude, args)
	if err != nil {
		return err
	}

	h, err := heap.NewDynamicHeap(heap.DynamicHeapArgs{
		Locale:     args.Locale,
		Descending: args.Reverse,
		Items:      items,
	})
	if err != nil {
		return err
	}

	for _, item := range excludedItems {
		if _, err := h.Remove(item); err != nil {
			return err
		}
	}

	sorted, err := h.ToSlice()
	if err != nil {
		return err
	}

	for _, item := range sorted {
		if number, ok := item.(float64); ok {
			item = formatNumber(number)
		}
		if _, err := fmt.Fprintln(out, item); err != nil {
			return err
		}
	}

	return nil
}

func toItems(values []string, args orderArgs) ([]any, error) {
	out := make([]any, 0, len(values))
	if !args.Numeric {
		for _, value := range values {
			out = append(out, value)
		}
		return out, nil
	}

	numbers, err := parseNumbers(values)
	if err != nil {
		return nil, err
	}
	for _, number := range numbers {
		out = append(out, number)
	}
	return out, nil
}
