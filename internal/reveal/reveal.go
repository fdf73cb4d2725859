package reveal

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Reveal shows path in the host file manager. The path is passed as a literal
// argument; nothing is interpreted by a shell.
func Reveal(ctx context.Context, path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("reveal target: %w", err)
	}

	argv := revealArgv(path)
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		detail := strings.TrimSpace(string(output))
		if detail != "" {
			return fmt.Errorf("%s: %s: %w", argv[0], detail, err)
		}
		return fmt.Errorf("%s: %w", argv[0], err)
	}
	return nil
}
