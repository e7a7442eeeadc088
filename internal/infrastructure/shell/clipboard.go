package shell

import (
	"bytes"
	"fmt"
	"os/exec"
	"runtime"

	"github.com/doeshing/shellmate-go/internal/ports"
)

type clipboardTool struct {
	bin  string
	args []string
}

// SystemClipboard copies text through an ordered list of platform utilities;
// the first tool present on PATH is used.
type SystemClipboard struct {
	tools []clipboardTool
}

// NewSystemClipboard builds the clipboard helper for the current platform.
func NewSystemClipboard() *SystemClipboard {
	switch runtime.GOOS {
	case "darwin":
		return &SystemClipboard{tools: []clipboardTool{
			{bin: "pbcopy"},
		}}
	case "linux":
		return &SystemClipboard{tools: []clipboardTool{
			{bin: "xclip", args: []string{"-selection", "clipboard"}},
			{bin: "wl-copy"},
			{bin: "xsel", args: []string{"--clipboard", "--input"}},
		}}
	default:
		return &SystemClipboard{}
	}
}

// Enabled reports whether any clipboard utility is available.
func (c *SystemClipboard) Enabled() bool {
	return c.pick() != nil
}

// Copy pipes text into the first available utility.
func (c *SystemClipboard) Copy(text string) error {
	tool := c.pick()
	if tool == nil {
		return fmt.Errorf("no clipboard utility found")
	}
	cmd := exec.Command(tool.bin, tool.args...)
	cmd.Stdin = bytes.NewBufferString(text)
	return cmd.Run()
}

func (c *SystemClipboard) pick() *clipboardTool {
	for i := range c.tools {
		if _, err := exec.LookPath(c.tools[i].bin); err == nil {
			return &c.tools[i]
		}
	}
	return nil
}

var _ ports.Clipboard = (*SystemClipboard)(nil)
