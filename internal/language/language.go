// Package language maps commands to the language or category they represent
package language

import "strings"

// FromCommand determines the language/category for a command line by looking
// up its first token. Unknown commands fall back to "Shell".
func FromCommand(command string) string {
	fields := strings.Fields(strings.TrimSpace(command))
	if len(fields) == 0 {
		return "Shell"
	}

	if lang, ok := commandLanguages[fields[0]]; ok {
		return lang
	}
	return "Shell"
}

var commandLanguages = map[string]string{
	// Python
	"python": "Python", "python3": "Python", "python2": "Python", "py": "Python",
	"pip": "Python", "pip3": "Python", "pip2": "Python", "pipenv": "Python", "poetry": "Python",
	"conda": "Python", "mamba": "Python", "micromamba": "Python", "pixi": "Python",
	"jupyter": "Python", "ipython": "Python", "pytest": "Python", "mypy": "Python",
	"black": "Python", "flake8": "Python", "pylint": "Python", "isort": "Python",
	"bandit": "Python", "autopep8": "Python", "pydocstyle": "Python",

	// JavaScript/Node
	"node": "JavaScript", "npm": "JavaScript", "yarn": "JavaScript",
	"npx": "JavaScript", "pnpm": "JavaScript", "bun": "JavaScript",

	// Web development
	"webpack": "JavaScript", "vite": "JavaScript", "parcel": "JavaScript",
	"next": "JavaScript", "nuxt": "JavaScript", "gatsby": "JavaScript",

	// System languages
	"go": "Go", "cargo": "Rust", "rustc": "Rust", "rustup": "Rust",
	"gcc": "C", "g++": "C++", "clang": "C", "clang++": "C++",
	"zig": "Zig", "nim": "Nim", "crystal": "Crystal",

	// JVM languages
	"java": "Java", "javac": "Java", "mvn": "Java", "gradle": "Java",
	"kotlin": "Kotlin", "scala": "Scala", "sbt": "Scala",

	// Other languages
	"ruby": "Ruby", "gem": "Ruby", "bundle": "Ruby", "rails": "Ruby",
	"php": "PHP", "composer": "PHP", "artisan": "PHP",
	"dotnet": "C#", "nuget": "C#",
	"swift": "Swift", "swiftc": "Swift",
	"dart": "Dart", "flutter": "Dart",
	"elixir": "Elixir", "mix": "Elixir",
	"lua": "Lua", "luarocks": "Lua",
	"perl": "Perl", "cpan": "Perl",
	"r": "R", "rscript": "R",

	// Tools and infrastructure
	"docker": "Docker", "docker-compose": "Docker", "podman": "Docker",
	"kubectl": "Kubernetes", "helm": "Kubernetes", "k9s": "Kubernetes",
	"terraform": "Terraform", "terragrunt": "Terraform",
	"ansible": "Ansible", "ansible-playbook": "Ansible",
	"vagrant": "Vagrant",

	// Version control
	"git": "Git", "gh": "Git", "hub": "Git", "gitk": "Git",
	"svn": "Subversion", "hg": "Mercurial",

	// Editors
	"vim": "Vim", "nvim": "Neovim", "emacs": "Emacs", "nano": "Nano",
	"code": "VS Code", "subl": "Sublime Text", "atom": "Atom",

	// Build systems
	"make": "Make", "cmake": "CMake", "ninja": "Ninja",
	"bazel": "Bazel", "buck": "Buck",

	// Network/system
	"ssh": "SSH", "scp": "SSH", "sftp": "SSH", "rsync": "File Transfer",
	"curl": "HTTP", "wget": "HTTP", "httpie": "HTTP", "http": "HTTP", "https": "HTTP",
	"ping": "Network", "netstat": "Network", "ss": "Network", "nmap": "Network",
	"iptables": "Network", "ufw": "Network", "firewall-cmd": "Network",

	// System administration
	"systemctl": "System Admin", "service": "System Admin", "launchctl": "System Admin",
	"crontab": "System Admin", "at": "System Admin", "jobs": "System Admin",
	"ps": "System Admin", "top": "System Admin", "htop": "System Admin", "btop": "System Admin",
	"kill": "System Admin", "killall": "System Admin", "pkill": "System Admin",
	"mount": "System Admin", "umount": "System Admin", "lsblk": "System Admin",
	"df": "System Admin", "du": "System Admin", "fdisk": "System Admin",
	"free": "System Admin", "uptime": "System Admin", "uname": "System Admin",
	"whoami": "System Admin", "id": "System Admin", "groups": "System Admin",
	"sudo": "System Admin", "su": "System Admin", "chmod": "System Admin",
	"chown": "System Admin", "chgrp": "System Admin",

	// File operations
	"ls": "File Operations", "dir": "File Operations", "find": "File Operations",
	"locate": "File Operations", "which": "File Operations", "whereis": "File Operations",
	"cp": "File Operations", "mv": "File Operations", "rm": "File Operations",
	"mkdir": "File Operations", "rmdir": "File Operations", "touch": "File Operations",
	"ln": "File Operations", "readlink": "File Operations",
	"tar": "Archive", "gzip": "Archive", "gunzip": "Archive", "zip": "Archive",
	"unzip": "Archive", "7z": "Archive", "rar": "Archive", "unrar": "Archive",

	// Text processing
	"cat": "Text Processing", "less": "Text Processing", "more": "Text Processing",
	"head": "Text Processing", "tail": "Text Processing", "grep": "Text Processing",
	"egrep": "Text Processing", "fgrep": "Text Processing", "rg": "Text Processing",
	"ag": "Text Processing", "ack": "Text Processing", "sed": "Text Processing",
	"awk": "Text Processing", "sort": "Text Processing", "uniq": "Text Processing",
	"wc": "Text Processing", "cut": "Text Processing", "tr": "Text Processing",
	"jq": "Text Processing", "yq": "Text Processing",

	// Databases
	"mysql": "SQL", "psql": "PostgreSQL", "sqlite3": "SQLite",
	"mongo": "MongoDB", "mongosh": "MongoDB", "redis-cli": "Redis",
	"influx": "Database", "clickhouse": "Database", "cassandra": "Database",

	// Package managers
	"brew": "Package Manager", "apt": "Package Manager", "apt-get": "Package Manager",
	"yum": "Package Manager", "dnf": "Package Manager", "zypper": "Package Manager",
	"pacman": "Package Manager", "portage": "Package Manager", "emerge": "Package Manager",
	"choco": "Package Manager", "scoop": "Package Manager", "winget": "Package Manager",
	"flatpak": "Package Manager", "snap": "Package Manager", "appimage": "Package Manager",

	// Shell navigation
	"cd": "Navigation", "pushd": "Navigation", "popd": "Navigation", "dirs": "Navigation",
	"pwd": "Navigation", "tree": "Navigation", "exa": "Navigation", "lsd": "Navigation",

	// Shell features
	"history": "Shell", "alias": "Shell", "unalias": "Shell", "type": "Shell",
	"command": "Shell", "builtin": "Shell", "hash": "Shell", "help": "Shell",
	"man": "Documentation", "info": "Documentation", "tldr": "Documentation",
	"whatis": "Documentation", "apropos": "Documentation",
}
