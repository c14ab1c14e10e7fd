package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"
	"golang.org/x/text/language"
)

type orderArgs struct {
	Numeric bool
	Reverse bool
	Locale  language.Tag
}

func orderArgsFromCommand(cmd *cli.Command) (out orderArgs, _ error) {
	out = orderArgs{
		Numeric: cmd.Bool("numeric"),
		Reverse: cmd.Bool("reverse"),
		Locale:  language.Und,
	}

	if locale := cmd.String("locale"); locale != "" {
		tag, err := language.Parse(locale)
		if err != nil {
			return out, fmt.Errorf("invalid locale %q: %w", locale, err)
		}
		out.Locale = tag
	}

	return out, nil
}

// readValues returns args if any were given, otherwise the non-blank lines of
// reader.
func readValues(args []string, reader io.Reader) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	var out []string
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out, scanner.Err()
}

func parseNumbers(values []string) ([]float64, error) {
	out := make([]float64, 0, len(values))
	for _, value := range values {
		number, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("value %q is not a number: %w", value, err)
		}
		out = append(out, number)
	}
	return out, nil
}

func formatNumber(number float64) string {
	return strconv.FormatFloat(number, 'f', -1, 64)
}
