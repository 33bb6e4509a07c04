// pkg/platform/utils.go
package platform

import (
	"os/exec"
)

// CommandExists checks if a command is available in PATH
func CommandExists(cmd string) bool {
	_, err := exec.LookPath(cmd)
	return err == nil
}

// MissingCommands returns the commands not found in PATH, in order
func MissingCommands(cmds ...string) []string {
	var missing []string
	for _, c := range cmds {
		if c != "" && !CommandExists(c) {
			missing = append(missing, c)
		}
	}
	return missing
}
