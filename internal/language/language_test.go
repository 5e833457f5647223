package language

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromCommand(t *testing.T) {
	tests := []struct {
		command string
		want    string
	}{
		{command: "python3 manage.py runserver", want: "Python"},
		{command: "git commit -m 'x'", want: "Git"},
		{command: "cargo build --release", want: "Rust"},
		{command: "docker ps -a", want: "Docker"},
		{command: "kubectl get pods", want: "Kubernetes"},
		{command: "nvim main.go", want: "Neovim"},
		{command: "  make test", want: "Make"},
		{command: "some-unknown-tool --flag", want: "Shell"},
		{command: "", want: "Shell"},
		{command: "   ", want: "Shell"},
	}

	for _, tt := range tests {
		t.Run(tt.command, func(t *testing.T) {
			assert.Equal(t, tt.want, FromCommand(tt.command))
		})
	}
}
