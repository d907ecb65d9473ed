//go:build darwin

package sound

func candidates(file string) []playerCommand {
	return []playerCommand{{name: "afplay", args: []string{file}}}
}
