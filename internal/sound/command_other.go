//go:build !linux && !darwin && !windows

package sound

func candidates(file string) []playerCommand {
	return []playerCommand{{name: "ffplay", args: []string{"-nodisp", "-autoexit", "-loglevel", "quiet", file}}}
}
