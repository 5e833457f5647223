// Package shell provides the preexec hook snippets installed into shells
package shell

// ZshHook is the zsh integration snippet. It installs a preexec hook that
// hands every command to termtrack in the background.
const ZshHook = `# termtrack zsh hook - add to your ~/.zshrc:
#   eval "$(termtrack install zsh)"

_termtrack_preexec() {
  termtrack --cwd "$PWD" --timestamp "$EPOCHREALTIME" -- "$1" &>/dev/null &!
}

autoload -Uz add-zsh-hook
add-zsh-hook preexec _termtrack_preexec
`

// BashHook is the bash integration snippet, using a DEBUG trap since bash
// has no native preexec.
const BashHook = `# termtrack bash hook - add to your ~/.bashrc:
#   eval "$(termtrack install bash)"

_termtrack_preexec() {
  [ -n "$COMP_LINE" ] && return                # completion in progress
  [ "$BASH_COMMAND" = "$PROMPT_COMMAND" ] && return
  (termtrack --cwd "$PWD" -- "$BASH_COMMAND" &>/dev/null &)
}

trap '_termtrack_preexec' DEBUG
`

// FishHook is the fish integration snippet.
const FishHook = `# termtrack fish hook - add to your ~/.config/fish/config.fish:
#   termtrack install fish | source

function _termtrack_preexec --on-event fish_preexec
  termtrack --cwd "$PWD" -- "$argv" &>/dev/null &
  disown 2>/dev/null
end
`

// Hook returns the integration snippet for a shell name. The second return
// reports whether the shell is supported.
func Hook(name string) (string, bool) {
	switch name {
	case "zsh":
		return ZshHook, true
	case "bash":
		return BashHook, true
	case "fish":
		return FishHook, true
	}
	return "", false
}

// Supported lists the shells an integration snippet exists for.
func Supported() []string {
	return []string{"zsh", "bash", "fish"}
}
