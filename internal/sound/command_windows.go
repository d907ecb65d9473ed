//go:build windows

package sound

import "strings"

func candidates(file string) []playerCommand {
	quoted := "'" + strings.ReplaceAll(file, "'", "''") + "'"
	script := "(New-Object Media.SoundPlayer " + quoted + ").PlaySync()"
	if extension(file) != ".wav" {
		script = "Add-Type -AssemblyName PresentationCore; " +
			"$player = New-Object System.Windows.Media.MediaPlayer; " +
			"$player.Open([uri](Resolve-Path " + quoted + ").Path); " +
			"$player.Play(); Start-Sleep -Seconds 5"
	}
	return []playerCommand{{name: "powershell", args: []string{"-NoProfile", "-NonInteractive", "-Command", script}}}
}
