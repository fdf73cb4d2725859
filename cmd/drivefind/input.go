package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"drivefind/internal/resolver"
)

var errNoFileID = errors.New("no file ID given; pass one as an argument or pipe it on stdin")

// Drive share URLs paste a lot of chrome around the ID; a generous cap still
// covers any of them.
const maxStdinBytes = 4096

// fileIDFromInput takes the identifier from the first positional argument or,
// when input is piped, from stdin. An interactive terminal on stdin is not
// read; the user forgot the argument.
func fileIDFromInput(cmd *cobra.Command, args []string) (string, error) {
	var id string
	if len(args) > 0 {
		id = strings.TrimSpace(args[0])
	} else {
		stdin := cmd.InOrStdin()
		if file, ok := stdin.(*os.File); ok {
			if isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd()) {
				return "", errNoFileID
			}
		}
		data, err := io.ReadAll(io.LimitReader(stdin, maxStdinBytes))
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		id = strings.TrimSpace(string(data))
	}

	if id == "" {
		return "", errNoFileID
	}
	if !resolver.ValidFileID(id) {
		return "", fmt.Errorf("malformed file ID %q; expected letters, digits, '-' or '_'", id)
	}
	return id, nil
}
