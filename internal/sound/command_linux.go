//go:build linux

package sound

func candidates(file string) []playerCommand {
	ffplay := playerCommand{name: "ffplay", args: []string{"-nodisp", "-autoexit", "-loglevel", "quiet", file}}

	if !soundFileFormat(file) {
		commands := []playerCommand{ffplay}
		if extension(file) == ".mp3" {
			commands = append(commands, playerCommand{name: "mpg123", args: []string{"-q", file}})
		}
		return commands
	}

	commands := []playerCommand{
		{name: "paplay", args: []string{file}},
		{name: "pw-play", args: []string{file}},
		ffplay,
	}
	if extension(file) == ".wav" {
		commands = append(commands, playerCommand{name: "aplay", args: []string{"-q", file}})
	}
	return commands
}
